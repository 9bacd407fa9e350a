package core

// DrawItem is one colored rectangle in playfield units.
type DrawItem struct {
	Rect  Rect
	Color Color
}

// DisplayList records rectangles without rasterizing them, for frontends
// that draw in playfield units. Like Viewport it double-buffers, so Frame
// always returns a complete tick.
type DisplayList struct {
	back  []DrawItem
	front []DrawItem
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// DrawRect appends a rectangle to the frame being built.
func (d *DisplayList) DrawRect(r Rect, color Color) {
	d.back = append(d.back, DrawItem{Rect: r, Color: color})
}

// Present publishes the frame being built.
func (d *DisplayList) Present() {
	d.front, d.back = d.back, d.front[:0]
}

// Frame returns the last presented frame in draw order. Callers must not
// modify it.
func (d *DisplayList) Frame() []DrawItem {
	return d.front
}
