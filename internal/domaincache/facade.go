package domaincache

import (
	"time"

	"github.com/vladislavprovich/rental-cache/internal/model"
	"github.com/vladislavprovich/rental-cache/pkg/cache"
)

// Payload is what a domain cache stores under a key: one entity, a list of
// entities, or a metrics snapshot. Exactly one field is set.
type Payload[E any] struct {
	Entity  *E
	List    []E
	Metrics *model.BookingMetrics
}

// DomainCache applies one domain's caching policy on top of a cache.Cache:
// key naming, cache-aside reads and write invalidation.
type DomainCache[E any] struct {
	name  Domain
	store *cache.Cache[Payload[E]]
	keys  keyScheme
}

func newDomainCache[E any](name Domain, keys keyScheme, ttl time.Duration, size int, opts ...cache.Option) (*DomainCache[E], error) {
	store, err := cache.New[Payload[E]](ttl, size, opts...)
	if err != nil {
		return nil, err
	}
	return &DomainCache[E]{name: name, store: store, keys: keys}, nil
}

func (d *DomainCache[E]) Name() Domain {
	return d.name
}

func (d *DomainCache[E]) GetEntity(id string) (E, bool) {
	var zero E
	p, ok := d.store.Get(d.keys.entity(id))
	if !ok || p.Entity == nil {
		return zero, false
	}
	return *p.Entity, true
}

func (d *DomainCache[E]) SetEntity(id string, entity E, ttl time.Duration) {
	d.store.SetWithTTL(d.keys.entity(id), Payload[E]{Entity: &entity}, ttl)
}

func (d *DomainCache[E]) GetAll() ([]E, bool) {
	return d.getList(d.keys.collectionKey)
}

func (d *DomainCache[E]) SetAll(list []E, ttl time.Duration) {
	d.store.SetWithTTL(d.keys.collectionKey, listPayload(list), ttl)
}

// GetFiltered reads a derived view. Views that do not belong to this domain
// are always a miss and are not counted as requests.
func (d *DomainCache[E]) GetFiltered(view View, criterion string) ([]E, bool) {
	if !d.keys.hasView(view) {
		return nil, false
	}
	return d.getList(view.key(criterion))
}

// SetFiltered caches a derived view keyed by the lower-cased criterion.
// Views that do not belong to this domain are ignored.
func (d *DomainCache[E]) SetFiltered(view View, criterion string, list []E, ttl time.Duration) {
	if !d.keys.hasView(view) {
		return
	}
	d.store.SetWithTTL(view.key(criterion), listPayload(list), ttl)
}

// InvalidateEntity drops the entity and every collection-wide key.
func (d *DomainCache[E]) InvalidateEntity(id string) {
	d.store.Delete(d.keys.entity(id))
	d.dropCollection()
}

// InvalidateDomain drops every collection-wide key and every filtered view.
// It returns the number of keys removed.
//
// Views are found by a linear prefix scan over a key snapshot; domains hold
// at most a few thousand keys.
func (d *DomainCache[E]) InvalidateDomain() int {
	removed := d.dropCollection()
	if len(d.keys.views) == 0 {
		return removed
	}
	for _, k := range d.store.Keys() {
		if d.keys.isFiltered(k) && d.store.Delete(k) {
			removed++
		}
	}
	return removed
}

// InvalidateWrite is called after an entity is created, updated or deleted.
// Filtered views cannot be patched in place, so all of them go as well.
func (d *DomainCache[E]) InvalidateWrite(id string) {
	d.store.Delete(d.keys.entity(id))
	d.InvalidateDomain()
}

func (d *DomainCache[E]) Clear() int {
	return d.store.Clear()
}

func (d *DomainCache[E]) Stats() cache.Stats {
	return d.store.Stats()
}

func (d *DomainCache[E]) Keys() []string {
	return d.store.Keys()
}

func (d *DomainCache[E]) Inspect(key string) (cache.EntryInfo, bool) {
	return d.store.Inspect(key)
}

func (d *DomainCache[E]) Breakdown() KeyBreakdown {
	return d.keys.breakdown(d.store.Keys())
}

func (d *DomainCache[E]) getList(key string) ([]E, bool) {
	p, ok := d.store.Get(key)
	if !ok || p.List == nil {
		return nil, false
	}
	return p.List, true
}

// listPayload keeps an empty result cacheable: a nil List reads as a miss.
func listPayload[E any](list []E) Payload[E] {
	if list == nil {
		list = []E{}
	}
	return Payload[E]{List: list}
}

func (d *DomainCache[E]) dropCollection() int {
	removed := 0
	if d.store.Delete(d.keys.collectionKey) {
		removed++
	}
	for _, k := range d.keys.aggregateKeys {
		if d.store.Delete(k) {
			removed++
		}
	}
	return removed
}

type AccountCache struct {
	*DomainCache[model.Account]
}

type VehicleCache struct {
	*DomainCache[model.Vehicle]
}

func (c *VehicleCache) GetAvailableByLocation(location string) ([]model.Vehicle, bool) {
	return c.GetFiltered(VehiclesByLocation, location)
}

func (c *VehicleCache) SetAvailableByLocation(location string, list []model.Vehicle, ttl time.Duration) {
	c.SetFiltered(VehiclesByLocation, location, list, ttl)
}

func (c *VehicleCache) GetByStatus(status string) ([]model.Vehicle, bool) {
	return c.GetFiltered(VehiclesByStatus, status)
}

func (c *VehicleCache) SetByStatus(status string, list []model.Vehicle, ttl time.Duration) {
	c.SetFiltered(VehiclesByStatus, status, list, ttl)
}

type BookingCache struct {
	*DomainCache[model.Booking]
}

func (c *BookingCache) GetByStatus(status string) ([]model.Booking, bool) {
	return c.GetFiltered(BookingsByStatus, status)
}

func (c *BookingCache) SetByStatus(status string, list []model.Booking, ttl time.Duration) {
	c.SetFiltered(BookingsByStatus, status, list, ttl)
}

func (c *BookingCache) GetByAccount(accountID string) ([]model.Booking, bool) {
	return c.GetFiltered(BookingsByAccount, accountID)
}

func (c *BookingCache) SetByAccount(accountID string, list []model.Booking, ttl time.Duration) {
	c.SetFiltered(BookingsByAccount, accountID, list, ttl)
}

func (c *BookingCache) GetMetrics() (model.BookingMetrics, bool) {
	p, ok := c.store.Get(bookingMetricsKey)
	if !ok || p.Metrics == nil {
		return model.BookingMetrics{}, false
	}
	return *p.Metrics, true
}

func (c *BookingCache) SetMetrics(m model.BookingMetrics, ttl time.Duration) {
	c.store.SetWithTTL(bookingMetricsKey, Payload[model.Booking]{Metrics: &m}, ttl)
}
