// Package config provides YAML-based configuration loading for the runner
// variants, difficulty presets, and config file watching.
package config

// Playfield is the logical playing area in playfield units.
type Playfield struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Timing defines the two periodic triggers and the linear speed-up.
type Timing struct {
	InitialVelocity   int `yaml:"initial_velocity"`
	VelocityIncrement int `yaml:"velocity_increment"`
	MaxLevel          int `yaml:"max_level"` // 0 disables level tracking
	SpawnIntervalMS   int `yaml:"spawn_interval_ms"`
	SpeedUpIntervalMS int `yaml:"speedup_interval_ms"`
}

// JumpConfig contains all configuration for the jump/duck runner.
type JumpConfig struct {
	Playfield Playfield     `yaml:"playfield"`
	Ground    JumpGround    `yaml:"ground"`
	Player    JumpPlayer    `yaml:"player"`
	Physics   JumpPhysics   `yaml:"physics"`
	Obstacles JumpObstacles `yaml:"obstacles"`
	Timing    Timing        `yaml:"timing"`
}

// JumpGround defines the floor line.
type JumpGround struct {
	Y         int `yaml:"y"`         // top edge of the floor
	Thickness int `yaml:"thickness"` // drawn height of the floor
}

// JumpPlayer defines the player's standing hitbox.
type JumpPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// JumpPhysics defines the integer jump arc.
type JumpPhysics struct {
	JumpVelocity int `yaml:"jump_velocity"`
	Gravity      int `yaml:"gravity"`
}

// JumpObstacles defines obstacle size and the ground/air mix.
type JumpObstacles struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	GroundProbability float64 `yaml:"ground_probability"`
}

// LanesConfig contains all configuration for the three-lane runner.
type LanesConfig struct {
	Playfield Playfield      `yaml:"playfield"`
	Player    LanesPlayer    `yaml:"player"`
	Obstacles LanesObstacles `yaml:"obstacles"`
	Timing    Timing         `yaml:"timing"`
}

// LanesPlayer defines the player's hitbox and distance from the bottom edge.
type LanesPlayer struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomMargin int `yaml:"bottom_margin"`
}

// LanesObstacles defines obstacle size and burst spawning.
type LanesObstacles struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BurstSize int `yaml:"burst_size"` // obstacles in a level-driven burst, at most one per lane
}
