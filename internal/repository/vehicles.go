package repository

import (
	"context"
	"fmt"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

func (r *Repository) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get vehicle %s: %w", id, notFound(err))
	}
	return &v, nil
}

func (r *Repository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Order("created_at").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *Repository) ListVehiclesByStatus(ctx context.Context, status string) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Where("LOWER(status) = LOWER(?)", status).Order("created_at").Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("list vehicles by status %s: %w", status, err)
	}
	return vehicles, nil
}

// ListAvailableVehicles returns available vehicles whose location contains
// location, ignoring case.
func (r *Repository) ListAvailableVehicles(ctx context.Context, location string) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).
		Where(`status = ? AND LOWER(location) LIKE ? ESCAPE '\'`, model.VehicleAvailable, containsPattern(location)).
		Order("daily_rate").
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("list available vehicles in %s: %w", location, err)
	}
	return vehicles, nil
}

func (r *Repository) CreateVehicle(ctx context.Context, v *model.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("create vehicle %s: %w", v.LicensePlate, duplicate(err))
	}
	return nil
}

func (r *Repository) UpdateVehicle(ctx context.Context, v *model.Vehicle) error {
	res := r.db.WithContext(ctx).Model(&model.Vehicle{}).Where("id = ?", v.ID).
		Select("make", "model", "year", "license_plate", "status", "daily_rate", "location", "updated_at").
		Updates(v)
	if err := affected(res); err != nil {
		return fmt.Errorf("update vehicle %s: %w", v.ID, duplicate(err))
	}
	return nil
}

func (r *Repository) DeleteVehicle(ctx context.Context, id string) error {
	if err := affected(r.db.WithContext(ctx).Delete(&model.Vehicle{}, "id = ?", id)); err != nil {
		return fmt.Errorf("delete vehicle %s: %w", id, err)
	}
	return nil
}
