package core

// FillRune is the character used to rasterize solid rectangles.
const FillRune = '█'

// Viewport rasterizes playfield rectangles onto a character grid.
// Playfield units are scaled independently on each axis so the whole
// playfield fits the screen. Any non-empty rectangle covers at least one cell.
//
// Drawing goes to a back buffer; Present publishes it as the front frame,
// so readers only ever see a complete tick.
type Viewport struct {
	playfield Rect
	back      *Screen
	front     *Screen
}

// NewViewport creates a viewport mapping playfield onto a width x height grid.
func NewViewport(playfield Rect, width, height int) *Viewport {
	return &Viewport{
		playfield: playfield,
		back:      NewScreen(width, height),
		front:     NewScreen(width, height),
	}
}

// Resize changes the target grid size. The current frame is kept until the
// next Present.
func (v *Viewport) Resize(width, height int) {
	v.back.Resize(width, height)
}

// Project maps a playfield rectangle to screen cells.
func (v *Viewport) Project(r Rect) Rect {
	pf := v.playfield
	if pf.Empty() {
		return Rect{}
	}
	sw, sh := v.back.Width(), v.back.Height()

	x0 := scale(r.X-pf.X, sw, pf.W)
	y0 := scale(r.Y-pf.Y, sh, pf.H)
	x1 := scale(r.Right()-pf.X, sw, pf.W)
	y1 := scale(r.Bottom()-pf.Y, sh, pf.H)

	if !r.Empty() {
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawRect rasterizes r into the back buffer.
func (v *Viewport) DrawRect(r Rect, color Color) {
	v.back.FillRect(v.Project(r), FillRune, color)
}

// Present publishes the back buffer and starts a fresh one.
func (v *Viewport) Present() {
	v.front, v.back = v.back, v.front
	v.back.Resize(v.front.Width(), v.front.Height())
	v.back.Clear()
}

// Frame returns the last presented frame. Callers must not modify it.
func (v *Viewport) Frame() *Screen {
	return v.front
}

// scale maps n from [0, from) onto [0, to) using floor division that stays
// correct for negative n.
func scale(n, to, from int) int {
	p := n * to
	q := p / from
	if p%from != 0 && p < 0 {
		q--
	}
	return q
}
