package domaincache

import "strings"

// Domain names one of the registry's caches.
type Domain string

const (
	Accounts Domain = "accounts"
	Vehicles Domain = "vehicles"
	Bookings Domain = "bookings"
)

// View is the key prefix of a derived, filtered list cached by criterion.
type View string

const (
	VehiclesByLocation View = "filtered_vehicles_by_location"
	VehiclesByStatus   View = "filtered_vehicles_by_status"
	BookingsByStatus   View = "filtered_bookings_by_status"
	BookingsByAccount  View = "filtered_bookings_by_account"
)

const bookingMetricsKey = "booking_metrics"

func (v View) key(criterion string) string {
	return string(v) + ":" + strings.ToLower(strings.TrimSpace(criterion))
}

func (v View) prefix() string {
	return string(v) + ":"
}

// keyScheme is one domain's key naming convention.
type keyScheme struct {
	entityPrefix  string
	collectionKey string
	// aggregateKeys are derived from the whole collection and go stale with it.
	aggregateKeys []string
	views         []View
}

var (
	accountKeys = keyScheme{
		entityPrefix:  "account:",
		collectionKey: "all_accounts",
	}
	vehicleKeys = keyScheme{
		entityPrefix:  "vehicle:",
		collectionKey: "all_vehicles",
		views:         []View{VehiclesByLocation, VehiclesByStatus},
	}
	bookingKeys = keyScheme{
		entityPrefix:  "booking:",
		collectionKey: "all_bookings",
		aggregateKeys: []string{bookingMetricsKey},
		views:         []View{BookingsByStatus, BookingsByAccount},
	}
)

func (s keyScheme) entity(id string) string {
	return s.entityPrefix + id
}

func (s keyScheme) hasView(v View) bool {
	for _, own := range s.views {
		if own == v {
			return true
		}
	}
	return false
}

func (s keyScheme) isFiltered(key string) bool {
	for _, v := range s.views {
		if strings.HasPrefix(key, v.prefix()) {
			return true
		}
	}
	return false
}

func (s keyScheme) isCollection(key string) bool {
	if key == s.collectionKey {
		return true
	}
	for _, k := range s.aggregateKeys {
		if key == k {
			return true
		}
	}
	return false
}

// KeyBreakdown counts a domain's keys by kind.
type KeyBreakdown struct {
	Individual int `json:"individual"`
	Collection int `json:"collection"`
	Filtered   int `json:"filtered"`
}

func (s keyScheme) breakdown(keys []string) KeyBreakdown {
	var b KeyBreakdown
	for _, k := range keys {
		switch {
		case strings.HasPrefix(k, s.entityPrefix):
			b.Individual++
		case s.isCollection(k):
			b.Collection++
		case s.isFiltered(k):
			b.Filtered++
		}
	}
	return b
}
