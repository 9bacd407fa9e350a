package lanes

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Player sits near the bottom of the track and switches lanes. Its x
// position is always derived from the lane.
type Player struct {
	rect  core.Rect
	lane  Lane
	track Track
}

// NewPlayer creates a player in the middle lane.
func NewPlayer(cfg config.LanesConfig, track Track) *Player {
	y := cfg.Playfield.Height - cfg.Player.Height - cfg.Player.BottomMargin
	return &Player{
		rect:  track.Place(LaneMid, y, cfg.Player.Width, cfg.Player.Height),
		lane:  LaneMid,
		track: track,
	}
}

// Rect returns the player's hitbox.
func (p *Player) Rect() core.Rect { return p.rect }

// Lane returns the current lane.
func (p *Player) Lane() Lane { return p.lane }

// ApplyInput moves one lane left or right, stopping at the edges. Other
// commands are ignored.
func (p *Player) ApplyInput(cmd core.Command) error {
	if !p.lane.Valid() {
		return p.invalid()
	}
	switch cmd {
	case core.CommandLeft:
		p.lane = Lane(core.Clamp(int(p.lane)-1, int(LaneLeft), int(LaneRight)))
	case core.CommandRight:
		p.lane = Lane(core.Clamp(int(p.lane)+1, int(LaneLeft), int(LaneRight)))
	}
	p.rect = p.track.Place(p.lane, p.rect.Y, p.rect.W, p.rect.H)
	return nil
}

// Advance has nothing to integrate; it only checks the lane.
func (p *Player) Advance() error {
	if !p.lane.Valid() {
		return p.invalid()
	}
	return nil
}

func (p *Player) invalid() error {
	return &engine.InvariantError{Component: "lane player", Field: "lane", Value: int(p.lane)}
}
