package engine

import "time"

// Timer is a pending single-shot callback returned by Scheduler.AfterFunc
type Timer interface {
	// Stop prevents the callback from running, returns false if it already ran or was stopped
	Stop() bool
}

// Scheduler provides the current time and single-shot deferred callbacks
// Implementations run callbacks on their own goroutine, callers serialize as needed
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeProvider provides the real system time with monotonic clock readings
// Used for wall-clock sequencing that should never pause
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f on its own goroutine once d has elapsed
func (p *TimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
