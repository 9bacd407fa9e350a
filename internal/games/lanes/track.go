package lanes

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Lane is one of the three parallel tracks.
type Lane int

const (
	LaneLeft Lane = iota
	LaneMid
	LaneRight
)

// Valid reports whether l is a declared lane.
func (l Lane) Valid() bool {
	return l >= LaneLeft && l <= LaneRight
}

// String returns the lane name.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneMid:
		return "mid"
	case LaneRight:
		return "right"
	default:
		return fmt.Sprintf("Lane(%d)", int(l))
	}
}

// Track derives lane geometry from the playfield width.
type Track struct {
	width  int
	height int
}

// NewTrack creates a track spanning the playfield.
func NewTrack(pf config.Playfield) Track {
	return Track{width: pf.Width, height: pf.Height}
}

// Center returns the x coordinate of the middle of lane l.
func (t Track) Center(l Lane) int {
	laneW := t.width / config.LaneCount
	return ((int(l)+1)*t.width)/config.LaneCount - laneW/2
}

// Place returns a w x h rectangle centred horizontally in lane l.
func (t Track) Place(l Lane, y, w, h int) core.Rect {
	return core.NewRect(t.Center(l)-w/2, y, w, h)
}

// Dividers returns the lines separating the lanes.
func (t Track) Dividers() []core.Rect {
	thickness := core.Max(1, t.width/50)
	out := make([]core.Rect, 0, config.LaneCount-1)
	for i := 1; i < config.LaneCount; i++ {
		x := i*t.width/config.LaneCount - thickness/2
		out = append(out, core.NewRect(x, 0, thickness, t.height))
	}
	return out
}
