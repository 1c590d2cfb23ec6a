// Package domaincache owns the per-domain caches of the rental service and
// the policy that keeps them consistent with storage.
package domaincache

import (
	"errors"
	"fmt"

	"github.com/vladislavprovich/rental-cache/internal/model"
	"github.com/vladislavprovich/rental-cache/pkg/cache"
)

var ErrUnknownDomain = errors.New("unknown cache domain")

// Admin is the domain-independent surface used by administrative routes.
type Admin interface {
	Name() Domain
	Stats() cache.Stats
	Keys() []string
	Inspect(key string) (cache.EntryInfo, bool)
	Clear() int
	Breakdown() KeyBreakdown
}

// Registry holds one cache per domain. It is built once by the composition
// root and passed to the code that needs it.
type Registry struct {
	Accounts *AccountCache
	Vehicles *VehicleCache
	Bookings *BookingCache
}

func NewRegistry(cfg Config, opts ...cache.Option) (*Registry, error) {
	cfg = cfg.withDefaults()
	opts = append([]cache.Option{cache.WithSweepInterval(cfg.SweepInterval)}, opts...)

	accounts, err := newDomainCache[model.Account](Accounts, accountKeys, cfg.AccountsTTL, cfg.AccountsMaxSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("accounts cache: %w", err)
	}

	vehicles, err := newDomainCache[model.Vehicle](Vehicles, vehicleKeys, cfg.VehiclesTTL, cfg.VehiclesMaxSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("vehicles cache: %w", err)
	}

	bookings, err := newDomainCache[model.Booking](Bookings, bookingKeys, cfg.BookingsTTL, cfg.BookingsMaxSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("bookings cache: %w", err)
	}

	return &Registry{
		Accounts: &AccountCache{accounts},
		Vehicles: &VehicleCache{vehicles},
		Bookings: &BookingCache{bookings},
	}, nil
}

// Domains returns the caches in a fixed order.
func (r *Registry) Domains() []Admin {
	return []Admin{r.Accounts, r.Vehicles, r.Bookings}
}

func (r *Registry) Domain(name string) (Admin, error) {
	for _, d := range r.Domains() {
		if string(d.Name()) == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
}

// AllStats is the registry-wide stats view.
type AllStats struct {
	Accounts          cache.Stats `json:"account_cache"`
	Vehicles          cache.Stats `json:"vehicle_cache"`
	Bookings          cache.Stats `json:"booking_cache"`
	TotalCacheEntries int         `json:"total_cache_entries"`
}

func (r *Registry) AllStats() AllStats {
	s := AllStats{
		Accounts: r.Accounts.Stats(),
		Vehicles: r.Vehicles.Stats(),
		Bookings: r.Bookings.Stats(),
	}
	s.TotalCacheEntries = s.Accounts.TotalEntries + s.Vehicles.TotalEntries + s.Bookings.TotalEntries
	return s
}

// ClearAll clears every domain and returns the total number of entries removed.
func (r *Registry) ClearAll() int {
	removed := 0
	for _, d := range r.Domains() {
		removed += d.Clear()
	}
	return removed
}
