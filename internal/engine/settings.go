package engine

import (
	"errors"
	"fmt"
)

// Settings are the per-session constants the scheduler needs. They are fixed
// for the lifetime of a Loop.
type Settings struct {
	TickRate              int // ticks per second
	InitVelocity          int // starting scroll velocity
	VelocityIncrement     int // added on every speed-up event
	MaxLevel              int // level cap; 0 disables level tracking
	SpawnIntervalMillis   int // spawn timer period
	SpeedUpIntervalMillis int // speed-up timer period
}

// Validate checks that the settings describe a runnable session.
func (s Settings) Validate() error {
	var errs []error
	if s.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", s.TickRate))
	}
	if s.InitVelocity <= 0 {
		errs = append(errs, fmt.Errorf("initial velocity must be positive, got %d", s.InitVelocity))
	}
	if s.VelocityIncrement < 0 {
		errs = append(errs, fmt.Errorf("velocity increment must not be negative, got %d", s.VelocityIncrement))
	}
	if s.MaxLevel < 0 {
		errs = append(errs, fmt.Errorf("max level must not be negative, got %d", s.MaxLevel))
	}
	if s.SpawnIntervalMillis <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be positive, got %d", s.SpawnIntervalMillis))
	}
	if s.SpeedUpIntervalMillis <= 0 {
		errs = append(errs, fmt.Errorf("speed-up interval must be positive, got %d", s.SpeedUpIntervalMillis))
	}
	if len(errs) > 0 {
		return fmt.Errorf("engine: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
