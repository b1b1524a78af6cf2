package engine

import "time"

// Clock abstracts the wall-clock source used for frame pacing
// Simulation logic never reads it; all gameplay timers accumulate the
// externally supplied dt so ticks stay deterministic
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
