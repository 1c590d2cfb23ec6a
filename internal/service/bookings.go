package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

// startGrace is how far in the past a booking start may lie.
const startGrace = time.Hour

func (s *Service) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	c := s.caches.Bookings

	b, err := fetch(ctx, s.logger, "booking:"+id,
		func() (model.Booking, bool) { return c.GetEntity(id) },
		func() (model.Booking, error) {
			b, err := s.repo.GetBooking(ctx, id)
			if err != nil {
				return model.Booking{}, err
			}
			return *b, nil
		},
		func(b model.Booking) { c.SetEntity(id, b, s.ttl.Booking) },
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "service GetBooking", slog.String("id", id), slog.Any("error", err))
		return nil, err
	}

	return &b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]model.Booking, error) {
	c := s.caches.Bookings

	return fetch(ctx, s.logger, "all_bookings",
		c.GetAll,
		func() ([]model.Booking, error) { return s.repo.ListBookings(ctx) },
		func(list []model.Booking) { c.SetAll(list, s.ttl.BookingList) },
	)
}

func (s *Service) ListBookingsByStatus(ctx context.Context, status string) ([]model.Booking, error) {
	status = model.NormalizeStatus(status)
	if err := model.ValidateBookingStatus(status); err != nil {
		return nil, err
	}

	c := s.caches.Bookings

	return fetch(ctx, s.logger, "bookings_by_status:"+status,
		func() ([]model.Booking, bool) { return c.GetByStatus(status) },
		func() ([]model.Booking, error) { return s.repo.ListBookingsByStatus(ctx, status) },
		func(list []model.Booking) { c.SetByStatus(status, list, s.ttl.BookingsByStatus) },
	)
}

func (s *Service) ListBookingsByAccount(ctx context.Context, accountID string) ([]model.Booking, error) {
	c := s.caches.Bookings

	return fetch(ctx, s.logger, "bookings_by_account:"+accountID,
		func() ([]model.Booking, bool) { return c.GetByAccount(accountID) },
		func() ([]model.Booking, error) { return s.repo.ListBookingsByAccount(ctx, accountID) },
		func(list []model.Booking) { c.SetByAccount(accountID, list, s.ttl.BookingsByAccount) },
	)
}

func (s *Service) BookingMetrics(ctx context.Context) (*model.BookingMetrics, error) {
	c := s.caches.Bookings

	m, err := fetch(ctx, s.logger, "booking_metrics",
		c.GetMetrics,
		func() (model.BookingMetrics, error) {
			m, err := s.repo.BookingMetrics(ctx)
			if err != nil {
				return model.BookingMetrics{}, err
			}
			return *m, nil
		},
		func(m model.BookingMetrics) { c.SetMetrics(m, s.ttl.BookingMetrics) },
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// CreateBooking books an available vehicle for an existing account. The
// availability check, the insert and marking the vehicle rented happen in one
// storage transaction, so the vehicle is never judged on a cached entry.
func (s *Service) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}
	if req.StartDate.Before(s.now().Add(-startGrace)) {
		return nil, model.ErrStartInPast
	}

	if _, err := s.GetAccount(ctx, req.AccountID); err != nil {
		return nil, fmt.Errorf("booking account: %w", err)
	}

	b := &model.Booking{
		ID:             uuid.NewString(),
		AccountID:      req.AccountID,
		VehicleID:      req.VehicleID,
		StartDate:      req.StartDate.UTC(),
		EndDate:        req.EndDate.UTC(),
		Status:         model.BookingPending,
		PickupLocation: req.PickupLocation,
		ReturnLocation: req.ReturnLocation,
	}
	if err := s.repo.BookVehicle(ctx, b); err != nil {
		s.logger.WarnContext(ctx, "service CreateBooking",
			slog.String("vehicle_id", req.VehicleID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.caches.Bookings.InvalidateWrite(b.ID)
	s.caches.Vehicles.InvalidateWrite(b.VehicleID)

	s.logger.InfoContext(ctx, "booking created", slog.String("id", b.ID))
	return b, nil
}

// UpdateBookingStatus moves a booking to a new status. Completing or
// cancelling it releases the vehicle in the same transaction.
func (s *Service) UpdateBookingStatus(ctx context.Context, id string, req *model.BookingStatusRequest) (*model.Booking, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	b, err := s.repo.TransitionBooking(ctx, id, req.Status)
	if err != nil {
		s.logger.ErrorContext(ctx, "service UpdateBookingStatus", slog.String("id", id), slog.Any("error", err))
		return nil, err
	}

	s.caches.Bookings.InvalidateWrite(id)
	if req.Status == model.BookingCompleted || req.Status == model.BookingCancelled {
		s.caches.Vehicles.InvalidateWrite(b.VehicleID)
	}

	s.logger.InfoContext(ctx, "booking status updated", slog.String("id", id), slog.String("status", req.Status))
	return b, nil
}

// Describe attaches the account name and vehicle summary to each booking,
// resolved through the account and vehicle caches. A reference that cannot
// be resolved leaves its field empty.
func (s *Service) Describe(ctx context.Context, bookings ...model.Booking) []model.BookingDetails {
	details := make([]model.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		d := model.BookingDetails{Booking: b}
		if acc, err := s.GetAccount(ctx, b.AccountID); err == nil {
			d.AccountName = acc.FullName()
		}
		if v, err := s.GetVehicle(ctx, b.VehicleID); err == nil {
			d.VehicleInfo = v.Summary()
		}
		details = append(details, d)
	}
	return details
}

func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.caches.Bookings.InvalidateWrite(id)
	s.logger.InfoContext(ctx, "booking deleted", slog.String("id", id))

	return nil
}
