package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Simulation is the per-variant game state driven by the Loop. All methods
// are called from the loop's single control flow.
type Simulation interface {
	// Spawn handles one spawn event at the current difficulty.
	Spawn(d Difficulty)
	// ApplyInput feeds this tick's command to the player state machine.
	ApplyInput(cmd core.Command) error
	// Advance moves the player by one tick regardless of input.
	Advance() error
	// AdvanceObstacles scrolls every obstacle and removes the expired ones.
	AdvanceObstacles(velocity int)
	// Collides reports whether the player overlaps any live obstacle.
	Collides() bool
	// Draw hands every entity rectangle to the renderer.
	Draw(r Renderer)
}

// InputSource yields the logical command for the current tick.
// Poll is called at most once per tick.
type InputSource interface {
	Poll() core.Command
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.Command

// Poll calls f.
func (f InputFunc) Poll() core.Command {
	return f()
}

// NoInput is an InputSource that never issues a command.
var NoInput InputSource = InputFunc(func() core.Command { return core.CommandNone })

// Renderer receives a tick-consistent snapshot of colored rectangles.
type Renderer interface {
	DrawRect(r core.Rect, color core.Color)
	Present()
}

// Pacer waits between ticks.
type Pacer interface {
	Wait(ctx context.Context) error
}

// TickerPacer paces ticks with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer firing tickRate times per second.
func NewTickerPacer(tickRate int) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Wait blocks until the next tick or until ctx is done.
func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}
