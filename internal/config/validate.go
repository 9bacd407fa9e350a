package config

import (
	"errors"
	"fmt"
)

// Validate checks the timing block.
func (t Timing) Validate() error {
	var errs []error
	if t.InitialVelocity <= 0 {
		errs = append(errs, fmt.Errorf("timing.initial_velocity must be positive, got %d", t.InitialVelocity))
	}
	if t.VelocityIncrement < 0 {
		errs = append(errs, fmt.Errorf("timing.velocity_increment must not be negative, got %d", t.VelocityIncrement))
	}
	if t.MaxLevel < 0 {
		errs = append(errs, fmt.Errorf("timing.max_level must not be negative, got %d", t.MaxLevel))
	}
	if t.SpawnIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.spawn_interval_ms must be positive, got %d", t.SpawnIntervalMS))
	}
	if t.SpeedUpIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.speedup_interval_ms must be positive, got %d", t.SpeedUpIntervalMS))
	}
	return errors.Join(errs...)
}

// Validate checks the jump runner configuration for values the simulation
// cannot run with.
func (c JumpConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Ground.Y <= 0 || c.Ground.Y > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("ground.y must be within (0, %d], got %d", c.Playfield.Height, c.Ground.Y))
	}
	if c.Player.Width <= 0 || c.Player.Height < 2 {
		errs = append(errs, fmt.Errorf("player must be at least 1x2, got %dx%d", c.Player.Width, c.Player.Height))
	}
	if c.Player.Height > c.Ground.Y {
		errs = append(errs, fmt.Errorf("player.height %d does not fit above ground.y %d", c.Player.Height, c.Ground.Y))
	}
	if c.Physics.JumpVelocity <= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be positive, got %d", c.Physics.JumpVelocity))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %d", c.Physics.Gravity))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, fmt.Errorf("obstacles must be positive, got %dx%d", c.Obstacles.Width, c.Obstacles.Height))
	}
	if p := c.Obstacles.GroundProbability; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("obstacles.ground_probability must be within [0, 1], got %v", p))
	}
	if err := c.Timing.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid jump config: %w", errors.Join(errs...))
	}
	return nil
}

// LaneCount is the number of lanes on the track.
const LaneCount = 3

// Validate checks the lane runner configuration.
func (c LanesConfig) Validate() error {
	var errs []error
	if c.Playfield.Width < LaneCount || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield too small, got %dx%d", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player must be positive, got %dx%d", c.Player.Width, c.Player.Height))
	}
	if c.Player.BottomMargin < 0 || c.Player.Height+c.Player.BottomMargin > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("player does not fit the playfield with bottom_margin %d", c.Player.BottomMargin))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, fmt.Errorf("obstacles must be positive, got %dx%d", c.Obstacles.Width, c.Obstacles.Height))
	}
	if c.Obstacles.BurstSize < 1 || c.Obstacles.BurstSize > LaneCount {
		errs = append(errs, fmt.Errorf("obstacles.burst_size must be within [1, %d], got %d", LaneCount, c.Obstacles.BurstSize))
	}
	if err := c.Timing.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid lanes config: %w", errors.Join(errs...))
	}
	return nil
}
