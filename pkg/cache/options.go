package cache

import "time"

// DefaultSweepInterval is how many sets happen between full expiry sweeps.
const DefaultSweepInterval = 50

// Option configures a Cache at construction time.
type Option func(*options)

type options struct {
	now           func() time.Time
	sweepInterval int
}

func defaultOptions() options {
	return options{
		now:           time.Now,
		sweepInterval: DefaultSweepInterval,
	}
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSweepInterval sets the number of sets between expiry sweeps.
// A value <= 0 disables the sweep; expired entries are then only
// dropped when read.
func WithSweepInterval(n int) Option {
	return func(o *options) {
		o.sweepInterval = n
	}
}
