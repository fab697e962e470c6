package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/giveaway-bot/internal/common/clock Clock

// Clock is the source of "now" for deadline checks and the sweeper
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock, always in UTC
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time in UTC
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
