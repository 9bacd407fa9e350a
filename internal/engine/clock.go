package engine

import "fmt"

// Clock is a monotonic tick counter. Logical milliseconds are derived from
// the tick number so timers never drift regardless of wall-clock jitter.
type Clock struct {
	tick     int64
	tickRate int
}

// NewClock creates a clock for the given ticks per second.
func NewClock(tickRate int) (*Clock, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("engine: tick rate must be positive, got %d", tickRate)
	}
	return &Clock{tickRate: tickRate}, nil
}

// Advance moves to the next tick.
func (c *Clock) Advance() {
	c.tick++
}

// Tick returns the number of ticks advanced so far.
func (c *Clock) Tick() int64 {
	return c.tick
}

// Millis returns the logical elapsed time in milliseconds.
func (c *Clock) Millis() int64 {
	return c.tick * 1000 / int64(c.tickRate)
}

// TickRate returns ticks per second.
func (c *Clock) TickRate() int {
	return c.tickRate
}
