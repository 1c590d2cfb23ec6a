package service_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/rental-cache/internal/domaincache"
	"github.com/vladislavprovich/rental-cache/internal/model"
	"github.com/vladislavprovich/rental-cache/internal/service"
)

func newTestService(t *testing.T) (*service.Service, *mockRepository, *domaincache.Registry) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	repo := new(mockRepository)

	caches, err := domaincache.NewRegistry(domaincache.DefaultConfig())
	require.NoError(t, err)

	svc := service.NewRentalService(context.Background(), logger, repo, caches, service.DefaultTTLPolicy())
	return svc, repo, caches
}

func TestService_GetVehicle_CacheAside(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()

	repo.On("GetVehicle", mock.Anything, "v1").
		Return(&model.Vehicle{ID: "v1", Status: model.VehicleAvailable}, nil).
		Once()

	first, err := svc.GetVehicle(ctx, "v1")
	require.NoError(t, err)
	second, err := svc.GetVehicle(ctx, "v1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)

	stats := caches.Vehicles.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestService_GetVehicle_ErrorIsNotCached(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()

	repo.On("GetVehicle", mock.Anything, "missing").Return(nil, model.ErrNotFound).Twice()

	_, err := svc.GetVehicle(ctx, "missing")
	require.ErrorIs(t, err, model.ErrNotFound)
	_, err = svc.GetVehicle(ctx, "missing")
	require.ErrorIs(t, err, model.ErrNotFound)

	assert.Empty(t, caches.Vehicles.Keys())
	repo.AssertExpectations(t)
}

func TestService_CreateVehicle_InvalidatesViews(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()

	repo.On("ListAvailableVehicles", mock.Anything, "Vilnius").
		Return([]model.Vehicle{{ID: "v1"}}, nil).
		Twice()
	repo.On("ListVehicles", mock.Anything).Return([]model.Vehicle{{ID: "v1"}}, nil).Once()
	repo.On("CreateVehicle", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(nil).Once()

	_, err := svc.ListAvailableVehicles(ctx, "Vilnius")
	require.NoError(t, err)
	_, err = svc.ListAvailableVehicles(ctx, "vilnius")
	require.NoError(t, err, "criterion is case-insensitive")
	_, err = svc.ListVehicles(ctx)
	require.NoError(t, err)

	created, err := svc.CreateVehicle(ctx, &model.VehicleRequest{
		Make:         "Toyota",
		Model:        "Yaris",
		Year:         2023,
		LicensePlate: "NEW001",
		DailyRate:    30,
		Location:     "Vilnius",
	})
	require.NoError(t, err)
	assert.Equal(t, model.VehicleAvailable, created.Status)
	assert.NotEmpty(t, created.ID)

	assert.Empty(t, caches.Vehicles.Keys())

	_, err = svc.ListAvailableVehicles(ctx, "Vilnius")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_UpdateVehicle_RefreshesEntity(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	repo.On("GetVehicle", mock.Anything, "v1").
		Return(&model.Vehicle{ID: "v1", Status: model.VehicleAvailable, DailyRate: 40}, nil).
		Once()
	repo.On("GetVehicle", mock.Anything, "v1").
		Return(&model.Vehicle{ID: "v1", Status: model.VehicleAvailable, DailyRate: 40}, nil).
		Once()
	repo.On("UpdateVehicle", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(nil).Once()
	repo.On("GetVehicle", mock.Anything, "v1").
		Return(&model.Vehicle{ID: "v1", Status: model.VehicleMaintenance, DailyRate: 55}, nil).
		Once()

	got, err := svc.GetVehicle(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.DailyRate)

	_, err = svc.UpdateVehicle(ctx, "v1", &model.VehicleRequest{
		Make:         "Toyota",
		Model:        "Yaris",
		Year:         2023,
		LicensePlate: "NEW001",
		DailyRate:    55,
		Location:     "Vilnius",
		Status:       model.VehicleMaintenance,
	})
	require.NoError(t, err)

	got, err = svc.GetVehicle(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, model.VehicleMaintenance, got.Status)
	repo.AssertExpectations(t)
}

func TestService_CreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.AccountRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     &model.AccountRequest{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
			wantErr: false,
		},
		{
			name:    "bad email",
			req:     &model.AccountRequest{Email: "not-an-email", FirstName: "Ada", LastName: "Lovelace"},
			wantErr: true,
		},
		{
			name:    "missing name",
			req:     &model.AccountRequest{Email: "ada@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)
			repo.On("CreateAccount", mock.Anything, mock.AnythingOfType("*model.Account")).Return(nil).Maybe()

			_, err := svc.CreateAccount(context.Background(), tt.req)
			if tt.wantErr {
				var verrs validation.Errors
				require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
				repo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
		})
	}
}

func bookingRequest(start time.Time, days int) *model.BookingRequest {
	return &model.BookingRequest{
		AccountID:      "a1",
		VehicleID:      "v1",
		StartDate:      start,
		EndDate:        start.Add(time.Duration(days) * 24 * time.Hour),
		PickupLocation: "Vilnius",
		ReturnLocation: "Vilnius",
	}
}

func TestService_CreateBooking(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()
	start := time.Now().Add(24 * time.Hour)

	caches.Vehicles.SetEntity("v1", model.Vehicle{ID: "v1", Status: model.VehicleAvailable}, time.Minute)
	caches.Vehicles.SetAll([]model.Vehicle{{ID: "v1"}}, time.Minute)
	caches.Vehicles.SetAvailableByLocation("Vilnius", []model.Vehicle{{ID: "v1"}}, time.Minute)
	caches.Bookings.SetMetrics(model.BookingMetrics{}, time.Minute)

	repo.On("GetAccount", mock.Anything, "a1").Return(&model.Account{ID: "a1"}, nil).Once()
	repo.On("BookVehicle", mock.Anything, mock.AnythingOfType("*model.Booking")).
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*model.Booking)
			b.TotalAmount = model.Vehicle{DailyRate: 50}.Quote(b.StartDate, b.EndDate)
		}).
		Return(nil).
		Once()

	b, err := svc.CreateBooking(ctx, bookingRequest(start, 3))
	require.NoError(t, err)

	assert.Equal(t, 150.0, b.TotalAmount)
	assert.Equal(t, model.BookingPending, b.Status)
	assert.Empty(t, caches.Vehicles.Keys())
	assert.Empty(t, caches.Bookings.Keys())
	assert.Equal(t, []string{"account:a1"}, caches.Accounts.Keys())
	repo.AssertExpectations(t)
}

func TestService_CreateBooking_Rejections(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)

	t.Run("vehicle unavailable", func(t *testing.T) {
		svc, repo, caches := newTestService(t)
		caches.Vehicles.SetEntity("v1", model.Vehicle{ID: "v1", Status: model.VehicleAvailable}, time.Minute)

		repo.On("GetAccount", mock.Anything, "a1").Return(&model.Account{ID: "a1"}, nil)
		repo.On("BookVehicle", mock.Anything, mock.AnythingOfType("*model.Booking")).
			Return(fmt.Errorf("book vehicle v1: %w", model.ErrVehicleUnavailable))

		_, err := svc.CreateBooking(context.Background(), bookingRequest(start, 2))
		require.ErrorIs(t, err, model.ErrVehicleUnavailable)

		_, ok := caches.Vehicles.GetEntity("v1")
		assert.True(t, ok, "a rejected booking leaves the vehicle cache alone")
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.On("GetAccount", mock.Anything, "a1").Return(nil, model.ErrNotFound)

		_, err := svc.CreateBooking(context.Background(), bookingRequest(start, 2))
		require.ErrorIs(t, err, model.ErrNotFound)
		repo.AssertNotCalled(t, "BookVehicle", mock.Anything, mock.Anything)
	})

	t.Run("start in the past", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.CreateBooking(context.Background(), bookingRequest(time.Now().Add(-48*time.Hour), 2))
		require.ErrorIs(t, err, model.ErrStartInPast)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req := bookingRequest(start, 2)
		req.EndDate = start.Add(-time.Hour)

		_, err := svc.CreateBooking(context.Background(), req)
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
	})
}

func TestService_UpdateBookingStatus_ReleasesVehicle(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()

	caches.Bookings.SetEntity("b1", model.Booking{ID: "b1", Status: model.BookingActive}, time.Minute)
	caches.Vehicles.SetEntity("v1", model.Vehicle{ID: "v1", Status: model.VehicleRented}, time.Minute)

	repo.On("TransitionBooking", mock.Anything, "b1", model.BookingCompleted).
		Return(&model.Booking{ID: "b1", VehicleID: "v1", Status: model.BookingCompleted}, nil).
		Once()

	b, err := svc.UpdateBookingStatus(ctx, "b1", &model.BookingStatusRequest{Status: model.BookingCompleted})
	require.NoError(t, err)
	assert.Equal(t, model.BookingCompleted, b.Status)

	_, ok := caches.Bookings.GetEntity("b1")
	assert.False(t, ok)
	_, ok = caches.Vehicles.GetEntity("v1")
	assert.False(t, ok)
	repo.AssertExpectations(t)
}

func TestService_UpdateBookingStatus_ActiveKeepsVehicle(t *testing.T) {
	svc, repo, caches := newTestService(t)

	caches.Vehicles.SetEntity("v1", model.Vehicle{ID: "v1", Status: model.VehicleRented}, time.Minute)
	repo.On("TransitionBooking", mock.Anything, "b1", model.BookingActive).
		Return(&model.Booking{ID: "b1", VehicleID: "v1", Status: model.BookingActive}, nil).
		Once()

	_, err := svc.UpdateBookingStatus(context.Background(), "b1", &model.BookingStatusRequest{Status: model.BookingActive})
	require.NoError(t, err)

	_, ok := caches.Vehicles.GetEntity("v1")
	assert.True(t, ok)
}

func TestService_ListByStatus_RejectsUnknownStatus(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()

	for _, status := range []string{"bogus", "", "rented; drop table"} {
		_, err := svc.ListVehiclesByStatus(ctx, status)
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs, "vehicle status %q", status)
		assert.Contains(t, verrs, "status")

		_, err = svc.ListBookingsByStatus(ctx, status)
		require.ErrorAs(t, err, &verrs, "booking status %q", status)
	}

	assert.Empty(t, caches.Vehicles.Keys())
	assert.Empty(t, caches.Bookings.Keys())
	assert.Zero(t, caches.Vehicles.Stats().TotalRequests)
	repo.AssertNotCalled(t, "ListVehiclesByStatus", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ListBookingsByStatus", mock.Anything, mock.Anything)
}

func TestService_ListVehiclesByStatus_Normalized(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()

	repo.On("ListVehiclesByStatus", mock.Anything, model.VehicleRented).
		Return([]model.Vehicle{{ID: "v2"}}, nil).
		Once()

	_, err := svc.ListVehiclesByStatus(ctx, " Rented ")
	require.NoError(t, err)
	got, err := svc.ListVehiclesByStatus(ctx, "RENTED")
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, []string{"filtered_vehicles_by_status:rented"}, caches.Vehicles.Keys())
	repo.AssertExpectations(t)
}

func TestService_Describe(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()

	repo.On("GetAccount", mock.Anything, "a1").
		Return(&model.Account{ID: "a1", FirstName: "Ada", LastName: "Lovelace"}, nil).
		Once()
	repo.On("GetVehicle", mock.Anything, "v1").
		Return(&model.Vehicle{ID: "v1", Make: "VW", Model: "Golf", LicensePlate: "GOLF01"}, nil).
		Once()
	repo.On("GetAccount", mock.Anything, "gone").Return(nil, model.ErrNotFound).Once()

	details := svc.Describe(ctx,
		model.Booking{ID: "b1", AccountID: "a1", VehicleID: "v1"},
		model.Booking{ID: "b2", AccountID: "a1", VehicleID: "v1"},
		model.Booking{ID: "b3", AccountID: "gone", VehicleID: "v1"},
	)

	require.Len(t, details, 3)
	assert.Equal(t, "Ada Lovelace", details[0].AccountName)
	assert.Equal(t, "VW Golf (GOLF01)", details[0].VehicleInfo)
	assert.Equal(t, "b2", details[1].ID)
	assert.Equal(t, "Ada Lovelace", details[1].AccountName)
	assert.Empty(t, details[2].AccountName)
	assert.Equal(t, "VW Golf (GOLF01)", details[2].VehicleInfo)

	assert.Equal(t, int64(3), caches.Vehicles.Stats().TotalRequests)
	assert.Equal(t, int64(2), caches.Vehicles.Stats().Hits)
	repo.AssertExpectations(t)
}

func TestService_SearchAccounts(t *testing.T) {
	svc, repo, caches := newTestService(t)
	ctx := context.Background()

	repo.On("SearchAccountsByEmail", mock.Anything, "EXAMPLE").
		Return([]model.Account{{ID: "a1", Email: "ada@example.com"}}, nil).
		Once()

	got, err := svc.SearchAccounts(ctx, "EXAMPLE")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Empty(t, caches.Accounts.Keys())

	_, err = svc.SearchAccounts(ctx, "")
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	repo.AssertExpectations(t)
}

func TestService_BookingMetrics_CachedUntilWrite(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	repo.On("BookingMetrics", mock.Anything).Return(&model.BookingMetrics{TotalBookings: 2}, nil).Once()
	repo.On("DeleteBooking", mock.Anything, "b1").Return(nil).Once()
	repo.On("BookingMetrics", mock.Anything).Return(&model.BookingMetrics{TotalBookings: 1}, nil).Once()

	m, err := svc.BookingMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.TotalBookings)

	m, err = svc.BookingMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.TotalBookings)

	require.NoError(t, svc.DeleteBooking(ctx, "b1"))

	m, err = svc.BookingMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.TotalBookings)
	repo.AssertExpectations(t)
}

func TestService_DeleteAccount_NotFound(t *testing.T) {
	svc, repo, caches := newTestService(t)

	caches.Accounts.SetEntity("a1", model.Account{ID: "a1"}, time.Minute)
	repo.On("DeleteAccount", mock.Anything, "a1").Return(model.ErrNotFound).Once()

	err := svc.DeleteAccount(context.Background(), "a1")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, ok := caches.Accounts.GetEntity("a1")
	assert.True(t, ok, "failed writes do not invalidate")
}

func TestService_Health(t *testing.T) {
	svc, _, caches := newTestService(t)

	caches.Accounts.SetEntity("a1", model.Account{ID: "a1"}, time.Minute)

	resp, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, 1, resp.TotalCacheEntries)
}
