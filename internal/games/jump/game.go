// Package jump implements the side-scrolling runner: the player jumps over
// ground obstacles and ducks under air obstacles while the world speeds up.
package jump

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// ID is the registry identifier and config file name of this variant.
const ID = "jump"

// Game is one jump runner session. It implements engine.Simulation.
type Game struct {
	cfg       config.JumpConfig
	player    *Player
	obstacles *ObstacleManager
	ground    core.Rect
}

// NewGame creates a session in its initial state.
func NewGame(cfg config.JumpConfig, seed int64) *Game {
	return &Game{
		cfg:       cfg,
		player:    NewPlayer(cfg),
		obstacles: NewObstacleManager(seed, cfg),
		ground:    core.NewRect(0, cfg.Ground.Y, cfg.Playfield.Width, cfg.Ground.Thickness),
	}
}

// Spawn adds one obstacle. Level does not affect this variant.
func (g *Game) Spawn(engine.Difficulty) {
	g.obstacles.Spawn()
}

// ApplyInput forwards the command to the player.
func (g *Game) ApplyInput(cmd core.Command) error {
	return g.player.ApplyInput(cmd)
}

// Advance moves the player along its jump arc.
func (g *Game) Advance() error {
	return g.player.Advance()
}

// AdvanceObstacles scrolls obstacles toward the player.
func (g *Game) AdvanceObstacles(velocity int) {
	g.obstacles.AdvanceAll(velocity)
}

// Collides reports whether the player touches any obstacle.
func (g *Game) Collides() bool {
	return engine.CheckCollision(g.player.Rect(), g.obstacles.Obstacles())
}

// Draw hands the ground, obstacles, and player to r, back to front.
func (g *Game) Draw(r engine.Renderer) {
	r.DrawRect(g.ground, core.ColorGround)
	for _, o := range g.obstacles.Obstacles() {
		color := core.ColorObstacle
		if o.Kind == KindAir {
			color = core.ColorAirObstacle
		}
		r.DrawRect(o.Rect, color)
	}
	r.DrawRect(g.player.Rect(), core.ColorPlayer)
}

// Player returns the player state machine.
func (g *Game) Player() *Player { return g.player }

// Obstacles returns the live obstacles.
func (g *Game) Obstacles() []Obstacle { return g.obstacles.Obstacles() }

// Playfield returns the logical playing area.
func (g *Game) Playfield() core.Rect {
	return core.NewRect(0, 0, g.cfg.Playfield.Width, g.cfg.Playfield.Height)
}

// Variant registers the jump runner.
type Variant struct{}

// ID returns "jump".
func (Variant) ID() string { return ID }

// Title returns the display name.
func (Variant) Title() string { return "Jump Runner" }

// NewSession loads the jump config and builds a fresh session.
func (Variant) NewSession(rt core.RuntimeConfig) (registry.Session, error) {
	preset, ok := config.ParsePreset(rt.Difficulty)
	if !ok {
		return registry.Session{}, fmt.Errorf("unknown difficulty %q", rt.Difficulty)
	}

	cfg, path, err := config.LoadJump(rt.ConfigPath)
	if err != nil {
		return registry.Session{}, err
	}

	g := NewGame(cfg, rt.Seed)
	return registry.Session{
		Sim:        g,
		Settings:   cfg.Timing.Settings(rt.TickRate, preset),
		Playfield:  g.Playfield(),
		ConfigPath: path,
	}, nil
}

func init() {
	registry.Register(Variant{})
}
