package config

import (
	_ "embed"
)

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

//go:embed defaults/lanes.yaml
var defaultLanesYAML []byte

// DefaultJumpConfig returns the default jump runner configuration.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		Playfield: Playfield{Width: 900, Height: 500},
		Ground:    JumpGround{Y: 375, Thickness: 20},
		Player:    JumpPlayer{X: 205, Width: 40, Height: 65},
		Physics:   JumpPhysics{JumpVelocity: 25, Gravity: 2},
		Obstacles: JumpObstacles{Width: 50, Height: 50, GroundProbability: 0.6},
		Timing: Timing{
			InitialVelocity:   10,
			VelocityIncrement: 2,
			MaxLevel:          0,
			SpawnIntervalMS:   3000,
			SpeedUpIntervalMS: 8000,
		},
	}
}

// DefaultLanesConfig returns the default lane runner configuration.
func DefaultLanesConfig() LanesConfig {
	return LanesConfig{
		Playfield: Playfield{Width: 700, Height: 1200},
		Player:    LanesPlayer{Width: 90, Height: 90, BottomMargin: 120},
		Obstacles: LanesObstacles{Width: 120, Height: 120, BurstSize: 2},
		Timing: Timing{
			InitialVelocity:   7,
			VelocityIncrement: 2,
			MaxLevel:          99,
			SpawnIntervalMS:   2000,
			SpeedUpIntervalMS: 6000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "jump":
		return defaultJumpYAML
	case "lanes":
		return defaultLanesYAML
	default:
		return nil
	}
}
