package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

func (r *Repository) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id, notFound(err))
	}
	return &b, nil
}

func (r *Repository) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Order("created_at").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *Repository) ListBookingsByStatus(ctx context.Context, status string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).Where("LOWER(status) = LOWER(?)", status).Order("created_at").Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings by status %s: %w", status, err)
	}
	return bookings, nil
}

func (r *Repository) ListBookingsByAccount(ctx context.Context, accountID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).Where("LOWER(account_id) = LOWER(?)", accountID).Order("created_at").Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings for account %s: %w", accountID, err)
	}
	return bookings, nil
}

// BookVehicle prices b from its vehicle, stores it and marks the vehicle
// rented in one transaction. It fails with model.ErrVehicleUnavailable when
// the vehicle is not available, including when a concurrent booking took it
// first, and nothing is written.
func (r *Repository) BookVehicle(ctx context.Context, b *model.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v model.Vehicle
		if err := tx.First(&v, "id = ?", b.VehicleID).Error; err != nil {
			return fmt.Errorf("get vehicle %s: %w", b.VehicleID, notFound(err))
		}
		if v.Status != model.VehicleAvailable {
			return fmt.Errorf("%w: status %s", model.ErrVehicleUnavailable, v.Status)
		}

		b.TotalAmount = v.Quote(b.StartDate, b.EndDate)
		if err := tx.Create(b).Error; err != nil {
			return fmt.Errorf("create booking: %w", duplicate(err))
		}

		res := tx.Model(&model.Vehicle{}).
			Where("id = ? AND status = ?", v.ID, model.VehicleAvailable).
			Update("status", model.VehicleRented)
		if res.Error != nil {
			return fmt.Errorf("mark vehicle %s rented: %w", v.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return model.ErrVehicleUnavailable
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("book vehicle %s: %w", b.VehicleID, err)
	}
	return nil
}

// TransitionBooking sets the status of booking id and, when the new status
// is completed or cancelled, returns its vehicle to available, all in one
// transaction. It returns the updated booking.
func (r *Repository) TransitionBooking(ctx context.Context, id, status string) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return notFound(err)
		}

		if err := tx.Model(&b).Update("status", status).Error; err != nil {
			return err
		}
		b.Status = status

		if status != model.BookingCompleted && status != model.BookingCancelled {
			return nil
		}
		return tx.Model(&model.Vehicle{}).
			Where("id = ?", b.VehicleID).
			Update("status", model.VehicleAvailable).Error
	})
	if err != nil {
		return nil, fmt.Errorf("transition booking %s to %s: %w", id, status, err)
	}
	return &b, nil
}

func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	if err := affected(r.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id)); err != nil {
		return fmt.Errorf("delete booking %s: %w", id, err)
	}
	return nil
}

type statusTotals struct {
	Status  string
	Count   int64
	Revenue float64
}

func (r *Repository) BookingMetrics(ctx context.Context) (*model.BookingMetrics, error) {
	var rows []statusTotals
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("booking metrics: %w", err)
	}

	m := &model.BookingMetrics{GeneratedAt: time.Now().UTC()}
	var total float64
	for _, row := range rows {
		m.TotalBookings += row.Count
		total += row.Revenue
		switch row.Status {
		case model.BookingPending:
			m.PendingBookings = row.Count
		case model.BookingActive:
			m.ActiveBookings = row.Count
			m.ActiveRevenue = row.Revenue
		case model.BookingCompleted:
			m.CompletedBookings = row.Count
			m.CompletedRevenue = row.Revenue
		case model.BookingCancelled:
			m.CancelledBookings = row.Count
		}
	}
	if m.TotalBookings > 0 {
		m.AverageAmount = total / float64(m.TotalBookings)
	}

	return m, nil
}
