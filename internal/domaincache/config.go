package domaincache

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vladislavprovich/rental-cache/pkg/cache"
)

const (
	DefaultAccountsTTL     = 600 * time.Second
	DefaultAccountsMaxSize = 500
	DefaultVehiclesTTL     = 300 * time.Second
	DefaultVehiclesMaxSize = 1000
	DefaultBookingsTTL     = 180 * time.Second
	DefaultBookingsMaxSize = 2000
)

// Config sizes the three domain caches. Zero fields fall back to the defaults
// above; a negative SweepInterval disables the periodic sweep.
type Config struct {
	AccountsTTL     time.Duration `envconfig:"CACHE_ACCOUNTS_TTL" default:"600s"`
	AccountsMaxSize int           `envconfig:"CACHE_ACCOUNTS_MAX_SIZE" default:"500"`
	VehiclesTTL     time.Duration `envconfig:"CACHE_VEHICLES_TTL" default:"300s"`
	VehiclesMaxSize int           `envconfig:"CACHE_VEHICLES_MAX_SIZE" default:"1000"`
	BookingsTTL     time.Duration `envconfig:"CACHE_BOOKINGS_TTL" default:"180s"`
	BookingsMaxSize int           `envconfig:"CACHE_BOOKINGS_MAX_SIZE" default:"2000"`
	SweepInterval   int           `envconfig:"CACHE_SWEEP_INTERVAL" default:"50"`
}

func DefaultConfig() Config {
	return Config{
		AccountsTTL:     DefaultAccountsTTL,
		AccountsMaxSize: DefaultAccountsMaxSize,
		VehiclesTTL:     DefaultVehiclesTTL,
		VehiclesMaxSize: DefaultVehiclesMaxSize,
		BookingsTTL:     DefaultBookingsTTL,
		BookingsMaxSize: DefaultBookingsMaxSize,
		SweepInterval:   cache.DefaultSweepInterval,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.AccountsTTL == 0 {
		c.AccountsTTL = d.AccountsTTL
	}
	if c.AccountsMaxSize == 0 {
		c.AccountsMaxSize = d.AccountsMaxSize
	}
	if c.VehiclesTTL == 0 {
		c.VehiclesTTL = d.VehiclesTTL
	}
	if c.VehiclesMaxSize == 0 {
		c.VehiclesMaxSize = d.VehiclesMaxSize
	}
	if c.BookingsTTL == 0 {
		c.BookingsTTL = d.BookingsTTL
	}
	if c.BookingsMaxSize == 0 {
		c.BookingsMaxSize = d.BookingsMaxSize
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = d.SweepInterval
	}
	return c
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.AccountsTTL, validation.Min(time.Duration(0))),
		validation.Field(&c.AccountsMaxSize, validation.Min(0)),
		validation.Field(&c.VehiclesTTL, validation.Min(time.Duration(0))),
		validation.Field(&c.VehiclesMaxSize, validation.Min(0)),
		validation.Field(&c.BookingsTTL, validation.Min(time.Duration(0))),
		validation.Field(&c.BookingsMaxSize, validation.Min(0)),
	)
}
