package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*model.Account)
	return resp, args.Error(1)
}

func (m *mockRepository) ListAccounts(ctx context.Context) ([]model.Account, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]model.Account)
	return resp, args.Error(1)
}

func (m *mockRepository) SearchAccountsByEmail(ctx context.Context, query string) ([]model.Account, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).([]model.Account)
	return resp, args.Error(1)
}

func (m *mockRepository) CreateAccount(ctx context.Context, a *model.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepository) UpdateAccount(ctx context.Context, a *model.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepository) DeleteAccount(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*model.Vehicle)
	return resp, args.Error(1)
}

func (m *mockRepository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]model.Vehicle)
	return resp, args.Error(1)
}

func (m *mockRepository) ListVehiclesByStatus(ctx context.Context, status string) ([]model.Vehicle, error) {
	args := m.Called(ctx, status)
	resp, _ := args.Get(0).([]model.Vehicle)
	return resp, args.Error(1)
}

func (m *mockRepository) ListAvailableVehicles(ctx context.Context, location string) ([]model.Vehicle, error) {
	args := m.Called(ctx, location)
	resp, _ := args.Get(0).([]model.Vehicle)
	return resp, args.Error(1)
}

func (m *mockRepository) CreateVehicle(ctx context.Context, v *model.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockRepository) UpdateVehicle(ctx context.Context, v *model.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockRepository) DeleteVehicle(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*model.Booking)
	return resp, args.Error(1)
}

func (m *mockRepository) ListBookings(ctx context.Context) ([]model.Booking, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]model.Booking)
	return resp, args.Error(1)
}

func (m *mockRepository) ListBookingsByStatus(ctx context.Context, status string) ([]model.Booking, error) {
	args := m.Called(ctx, status)
	resp, _ := args.Get(0).([]model.Booking)
	return resp, args.Error(1)
}

func (m *mockRepository) ListBookingsByAccount(ctx context.Context, accountID string) ([]model.Booking, error) {
	args := m.Called(ctx, accountID)
	resp, _ := args.Get(0).([]model.Booking)
	return resp, args.Error(1)
}

func (m *mockRepository) BookVehicle(ctx context.Context, b *model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepository) TransitionBooking(ctx context.Context, id, status string) (*model.Booking, error) {
	args := m.Called(ctx, id, status)
	resp, _ := args.Get(0).(*model.Booking)
	return resp, args.Error(1)
}

func (m *mockRepository) DeleteBooking(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) BookingMetrics(ctx context.Context) (*model.BookingMetrics, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*model.BookingMetrics)
	return resp, args.Error(1)
}
