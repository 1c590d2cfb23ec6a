package service

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vladislavprovich/rental-cache/internal/domaincache"
	"github.com/vladislavprovich/rental-cache/internal/model"
)

type AccountRepository interface {
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	SearchAccountsByEmail(ctx context.Context, query string) ([]model.Account, error)
	CreateAccount(ctx context.Context, a *model.Account) error
	UpdateAccount(ctx context.Context, a *model.Account) error
	DeleteAccount(ctx context.Context, id string) error
}

type VehicleRepository interface {
	GetVehicle(ctx context.Context, id string) (*model.Vehicle, error)
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListVehiclesByStatus(ctx context.Context, status string) ([]model.Vehicle, error)
	ListAvailableVehicles(ctx context.Context, location string) ([]model.Vehicle, error)
	CreateVehicle(ctx context.Context, v *model.Vehicle) error
	UpdateVehicle(ctx context.Context, v *model.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
}

type BookingRepository interface {
	GetBooking(ctx context.Context, id string) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	ListBookingsByStatus(ctx context.Context, status string) ([]model.Booking, error)
	ListBookingsByAccount(ctx context.Context, accountID string) ([]model.Booking, error)
	BookVehicle(ctx context.Context, b *model.Booking) error
	TransitionBooking(ctx context.Context, id, status string) (*model.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	BookingMetrics(ctx context.Context) (*model.BookingMetrics, error)
}

type Repository interface {
	AccountRepository
	VehicleRepository
	BookingRepository
}

// TTLPolicy holds how long each kind of cached read stays fresh.
type TTLPolicy struct {
	Account           time.Duration `envconfig:"CACHE_TTL_ACCOUNT" default:"600s"`
	AccountList       time.Duration `envconfig:"CACHE_TTL_ACCOUNT_LIST" default:"300s"`
	Vehicle           time.Duration `envconfig:"CACHE_TTL_VEHICLE" default:"300s"`
	VehicleList       time.Duration `envconfig:"CACHE_TTL_VEHICLE_LIST" default:"300s"`
	AvailableVehicles time.Duration `envconfig:"CACHE_TTL_AVAILABLE_VEHICLES" default:"120s"`
	VehiclesByStatus  time.Duration `envconfig:"CACHE_TTL_VEHICLES_BY_STATUS" default:"180s"`
	Booking           time.Duration `envconfig:"CACHE_TTL_BOOKING" default:"180s"`
	BookingList       time.Duration `envconfig:"CACHE_TTL_BOOKING_LIST" default:"180s"`
	BookingsByStatus  time.Duration `envconfig:"CACHE_TTL_BOOKINGS_BY_STATUS" default:"180s"`
	BookingsByAccount time.Duration `envconfig:"CACHE_TTL_BOOKINGS_BY_ACCOUNT" default:"180s"`
	BookingMetrics    time.Duration `envconfig:"CACHE_TTL_BOOKING_METRICS" default:"60s"`
}

func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Account:           600 * time.Second,
		AccountList:       300 * time.Second,
		Vehicle:           300 * time.Second,
		VehicleList:       300 * time.Second,
		AvailableVehicles: 120 * time.Second,
		VehiclesByStatus:  180 * time.Second,
		Booking:           180 * time.Second,
		BookingList:       180 * time.Second,
		BookingsByStatus:  180 * time.Second,
		BookingsByAccount: 180 * time.Second,
		BookingMetrics:    60 * time.Second,
	}
}

func (p TTLPolicy) ValidateWithContext(ctx context.Context) error {
	positive := validation.Min(time.Second)
	return validation.ValidateStructWithContext(ctx, &p,
		validation.Field(&p.Account, positive),
		validation.Field(&p.AccountList, positive),
		validation.Field(&p.Vehicle, positive),
		validation.Field(&p.VehicleList, positive),
		validation.Field(&p.AvailableVehicles, positive),
		validation.Field(&p.VehiclesByStatus, positive),
		validation.Field(&p.Booking, positive),
		validation.Field(&p.BookingList, positive),
		validation.Field(&p.BookingsByStatus, positive),
		validation.Field(&p.BookingsByAccount, positive),
		validation.Field(&p.BookingMetrics, positive),
	)
}

// Service serves reads cache-aside and invalidates the affected caches after
// every successful write. Storage is never called while a cache lock is held;
// two concurrent misses may both load and both populate, last write wins.
type Service struct {
	logger *slog.Logger
	repo   Repository
	caches *domaincache.Registry
	ttl    TTLPolicy
	now    func() time.Time
}

func NewRentalService(
	_ context.Context,
	log *slog.Logger,
	repo Repository,
	caches *domaincache.Registry,
	ttl TTLPolicy,
) *Service {
	return &Service{
		logger: log,
		repo:   repo,
		caches: caches,
		ttl:    ttl,
		now:    time.Now,
	}
}

// fetch returns the cached value when present, otherwise loads it and
// populates the cache. Load errors are returned as-is and nothing is cached.
func fetch[T any](
	ctx context.Context,
	logger *slog.Logger,
	key string,
	cached func() (T, bool),
	load func() (T, error),
	store func(T),
) (T, error) {
	if v, ok := cached(); ok {
		logger.DebugContext(ctx, "cache hit", slog.String("key", key))
		return v, nil
	}

	logger.DebugContext(ctx, "cache miss", slog.String("key", key))
	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	store(v)
	return v, nil
}
