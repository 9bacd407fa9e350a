// Package lanes implements the vertical three-lane runner: obstacles fall
// toward the player, who dodges by switching lanes.
package lanes

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// ID is the registry identifier and config file name of this variant.
const ID = "lanes"

// Game is one lane runner session. It implements engine.Simulation.
type Game struct {
	cfg       config.LanesConfig
	track     Track
	player    *Player
	obstacles *ObstacleManager
}

// NewGame creates a session in its initial state.
func NewGame(cfg config.LanesConfig, seed int64) *Game {
	track := NewTrack(cfg.Playfield)
	return &Game{
		cfg:       cfg,
		track:     track,
		player:    NewPlayer(cfg, track),
		obstacles: NewObstacleManager(seed, cfg, track),
	}
}

// Spawn drops one obstacle, or a burst at higher levels.
func (g *Game) Spawn(d engine.Difficulty) {
	g.obstacles.Spawn(d.Level)
}

// ApplyInput forwards the command to the player.
func (g *Game) ApplyInput(cmd core.Command) error {
	return g.player.ApplyInput(cmd)
}

// Advance checks the player state.
func (g *Game) Advance() error {
	return g.player.Advance()
}

// AdvanceObstacles moves obstacles down the track.
func (g *Game) AdvanceObstacles(velocity int) {
	g.obstacles.AdvanceAll(velocity)
}

// Collides reports whether the player touches any obstacle.
func (g *Game) Collides() bool {
	return engine.CheckCollision(g.player.Rect(), g.obstacles.Obstacles())
}

// Draw hands the dividers, obstacles, and player to r, back to front.
func (g *Game) Draw(r engine.Renderer) {
	for _, d := range g.track.Dividers() {
		r.DrawRect(d, core.ColorDivider)
	}
	for _, o := range g.obstacles.Obstacles() {
		r.DrawRect(o.Rect, core.ColorObstacle)
	}
	r.DrawRect(g.player.Rect(), core.ColorPlayer)
}

// Player returns the lane player.
func (g *Game) Player() *Player { return g.player }

// Obstacles returns the live obstacles.
func (g *Game) Obstacles() []Obstacle { return g.obstacles.Obstacles() }

// Playfield returns the logical playing area.
func (g *Game) Playfield() core.Rect {
	return core.NewRect(0, 0, g.cfg.Playfield.Width, g.cfg.Playfield.Height)
}

// Variant registers the lane runner.
type Variant struct{}

// ID returns "lanes".
func (Variant) ID() string { return ID }

// Title returns the display name.
func (Variant) Title() string { return "Lane Runner" }

// NewSession loads the lanes config and builds a fresh session.
func (Variant) NewSession(rt core.RuntimeConfig) (registry.Session, error) {
	preset, ok := config.ParsePreset(rt.Difficulty)
	if !ok {
		return registry.Session{}, fmt.Errorf("unknown difficulty %q", rt.Difficulty)
	}

	cfg, path, err := config.LoadLanes(rt.ConfigPath)
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
