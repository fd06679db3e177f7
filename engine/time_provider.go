package engine

import "time"

// TimeProvider is the frame clock
// A zero reading means the clock is not running yet and Frame refuses to tick
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns time.Now, which carries a monotonic reading so wall clock jumps do not skew durations
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
