package jump

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// State is the player's movement state.
type State int

const (
	StateRunning State = iota
	StateJumping
	StateDucking
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateDucking:
		return "ducking"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Player is the jump/duck state machine. Y grows downward; while jumping,
// velocity is the upward speed and shrinks by gravity every tick.
//
// A jump cannot be interrupted: commands are ignored until landing.
type Player struct {
	rect     core.Rect
	state    State
	velocity int

	standingY  int // top edge when standing on the ground
	duckingY   int // top edge when ducking
	height     int
	duckHeight int

	jumpVelocity int
	gravity      int
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(cfg config.JumpConfig) *Player {
	height := cfg.Player.Height
	duckHeight := height / 2
	standingY := cfg.Ground.Y - height

	return &Player{
		rect:         core.NewRect(cfg.Player.X, standingY, cfg.Player.Width, height),
		state:        StateRunning,
		standingY:    standingY,
		duckingY:     cfg.Ground.Y - duckHeight,
		height:       height,
		duckHeight:   duckHeight,
		jumpVelocity: cfg.Physics.JumpVelocity,
		gravity:      cfg.Physics.Gravity,
	}
}

// Rect returns the player's hitbox.
func (p *Player) Rect() core.Rect { return p.rect }

// State returns the movement state.
func (p *Player) State() State { return p.state }

// Velocity returns the current upward velocity; zero unless jumping.
func (p *Player) Velocity() int { return p.velocity }

// ApplyInput feeds one tick's command to the state machine.
func (p *Player) ApplyInput(cmd core.Command) error {
	switch p.state {
	case StateRunning:
		switch cmd {
		case core.CommandUp:
			p.jump()
		case core.CommandDown:
			p.duck()
		}
	case StateJumping:
		// airborne
	case StateDucking:
		switch cmd {
		case core.CommandUp:
			p.stand()
			p.jump()
		case core.CommandDown:
		default:
			p.stand()
		}
	default:
		return p.invalid()
	}
	return nil
}

// Advance moves the player one tick along the jump arc. Running and ducking
// players stay put.
func (p *Player) Advance() error {
	switch p.state {
	case StateRunning, StateDucking:
		return nil
	case StateJumping:
		p.rect.Y -= p.velocity
		p.velocity -= p.gravity
		if p.rect.Y >= p.standingY {
			p.rect.Y = p.standingY
			p.velocity = 0
			p.state = StateRunning
		}
		return nil
	default:
		return p.invalid()
	}
}

func (p *Player) jump() {
	p.state = StateJumping
	p.velocity = p.jumpVelocity
}

// duck halves the hitbox, keeping the bottom edge on the ground.
func (p *Player) duck() {
	p.state = StateDucking
	p.rect.H = p.duckHeight
	p.rect.Y = p.duckingY
}

func (p *Player) stand() {
	p.state = StateRunning
	p.rect.H = p.height
	p.rect.Y = p.standingY
}

func (p *Player) invalid() error {
	return &engine.InvariantError{Component: "jump player", Field: "state", Value: int(p.state)}
}
