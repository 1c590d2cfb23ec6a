package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

func (s *Service) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	c := s.caches.Vehicles

	v, err := fetch(ctx, s.logger, "vehicle:"+id,
		func() (model.Vehicle, bool) { return c.GetEntity(id) },
		func() (model.Vehicle, error) {
			v, err := s.repo.GetVehicle(ctx, id)
			if err != nil {
				return model.Vehicle{}, err
			}
			return *v, nil
		},
		func(v model.Vehicle) { c.SetEntity(id, v, s.ttl.Vehicle) },
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "service GetVehicle", slog.String("id", id), slog.Any("error", err))
		return nil, err
	}

	return &v, nil
}

func (s *Service) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	c := s.caches.Vehicles

	return fetch(ctx, s.logger, "all_vehicles",
		c.GetAll,
		func() ([]model.Vehicle, error) { return s.repo.ListVehicles(ctx) },
		func(list []model.Vehicle) { c.SetAll(list, s.ttl.VehicleList) },
	)
}

// ListVehiclesByStatus serves the by-status view. Unknown statuses are
// rejected before the cache is consulted so they never become keys.
func (s *Service) ListVehiclesByStatus(ctx context.Context, status string) ([]model.Vehicle, error) {
	status = model.NormalizeStatus(status)
	if err := model.ValidateVehicleStatus(status); err != nil {
		return nil, err
	}

	c := s.caches.Vehicles

	return fetch(ctx, s.logger, "vehicles_by_status:"+status,
		func() ([]model.Vehicle, bool) { return c.GetByStatus(status) },
		func() ([]model.Vehicle, error) { return s.repo.ListVehiclesByStatus(ctx, status) },
		func(list []model.Vehicle) { c.SetByStatus(status, list, s.ttl.VehiclesByStatus) },
	)
}

func (s *Service) ListAvailableVehicles(ctx context.Context, location string) ([]model.Vehicle, error) {
	c := s.caches.Vehicles

	return fetch(ctx, s.logger, "available_vehicles:"+location,
		func() ([]model.Vehicle, bool) { return c.GetAvailableByLocation(location) },
		func() ([]model.Vehicle, error) { return s.repo.ListAvailableVehicles(ctx, location) },
		func(list []model.Vehicle) { c.SetAvailableByLocation(location, list, s.ttl.AvailableVehicles) },
	)
}

func (s *Service) CreateVehicle(ctx context.Context, req *model.VehicleRequest) (*model.Vehicle, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	v := &model.Vehicle{
		ID:           uuid.NewString(),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Status:       model.VehicleAvailable,
		DailyRate:    req.DailyRate,
		Location:     req.Location,
	}
	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		s.logger.ErrorContext(ctx, "service CreateVehicle", slog.Any("error", err))
		return nil, err
	}

	s.caches.Vehicles.InvalidateWrite(v.ID)
	s.logger.InfoContext(ctx, "vehicle created", slog.String("id", v.ID))

	return v, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, id string, req *model.VehicleRequest) (*model.Vehicle, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	v, err := s.repo.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Make = req.Make
	v.Model = req.Model
	v.Year = req.Year
	v.LicensePlate = req.LicensePlate
	v.DailyRate = req.DailyRate
	v.Location = req.Location
	if req.Status != "" {
		v.Status = req.Status
	}

	if err = s.repo.UpdateVehicle(ctx, v); err != nil {
		s.logger.ErrorContext(ctx, "service UpdateVehicle", slog.String("id", id), slog.Any("error", err))
		return nil, err
	}

	s.caches.Vehicles.InvalidateWrite(id)
	s.logger.InfoContext(ctx, "vehicle updated", slog.String("id", id))

	return v, nil
}

func (s *Service) DeleteVehicle(ctx context.Context, id string) error {
	if err := s.repo.DeleteVehicle(ctx, id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}

	s.caches.Vehicles.InvalidateWrite(id)
	s.logger.InfoContext(ctx, "vehicle deleted", slog.String("id", id))

	return nil
}
