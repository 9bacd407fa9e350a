// Package window provides a desktop frontend drawing the runner as plain
// colored rectangles with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// maxWindowH caps the initial window height; taller playfields are scaled
// down to fit common displays.
const maxWindowH = 800

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}

	palette = map[core.Color]color.RGBA{
		core.ColorDefault: {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		core.ColorRed:     {R: 0xe0, G: 0x40, B: 0x40, A: 0xff},
		core.ColorGreen:   {R: 0x40, G: 0xc0, B: 0x60, A: 0xff},
		core.ColorYellow:  {R: 0xe0, G: 0xc0, B: 0x40, A: 0xff},
		core.ColorBlue:    {R: 0x40, G: 0x80, B: 0xf0, A: 0xff},
		core.ColorMagenta: {R: 0xc0, G: 0x50, B: 0xc0, A: 0xff},
		core.ColorCyan:    {R: 0x40, G: 0xc0, B: 0xc0, A: 0xff},
		core.ColorWhite:   {R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		core.ColorBlack:   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		core.ColorOrange:  {R: 0xf0, G: 0x90, B: 0x30, A: 0xff},
		core.ColorGray:    {R: 0x60, G: 0x60, B: 0x68, A: 0xff},
	}
)

// Game implements ebiten.Game. Every Update is exactly one simulation tick;
// Ebitengine's TPS is set to the session tick rate.
type Game struct {
	variant  registry.Variant
	rt       core.RuntimeConfig
	randSeed bool
	logger   *log.Logger

	session registry.Session
	loop    *engine.Loop
	list    *core.DisplayList
	paused  bool
	err     error
}

// NewGame creates a window game and starts the first session.
func NewGame(v registry.Variant, rt core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		variant:  v,
		rt:       rt,
		randSeed: rt.Seed == 0,
		logger:   logger,
		list:     core.NewDisplayList(),
	}
	if err := g.start(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) start() error {
	rt := g.rt
	if g.randSeed {
		rt.Seed = time.Now().UnixNano()
	}
	s, err := g.variant.NewSession(rt)
	if err != nil {
		return err
	}
	loop, err := engine.NewLoop(s.Sim, s.Settings,
		engine.WithLogger(g.logger),
		engine.WithRenderer(g.list),
	)
	if err != nil {
		return err
	}
	g.session = s
	g.loop = loop
	g.paused = false
	return nil
}

// Update runs one tick.
func (g *Game) Update() error {
	if !g.loop.Running() {
		switch {
		case quitPressed():
			return ebiten.Termination
		case restartPressed():
			return g.start()
		}
		return nil
	}

	if quitPressed() {
		g.loop.RequestQuit()
		g.paused = false
	} else if pausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	done, err := g.loop.Step(keyboard{})
	if err != nil {
		g.err = err
		return err
	}
	if done && g.loop.Result().Reason == engine.EndQuit {
		return ebiten.Termination
	}
	return nil
}

// Draw fills every rectangle of the last presented tick.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, item := range g.list.Frame() {
		r := item.Rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), palette[item.Color], false)
	}

	res := g.loop.Result()
	status := fmt.Sprintf("%s  velocity %d  level %d  tick %d", g.variant.Title(), res.Velocity, res.Level, res.Ticks)
	switch {
	case g.paused:
		status += "  PAUSED"
	case res.Reason == engine.EndCollision:
		status += "  GAME OVER - R to restart, Esc to quit"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout keeps the logical screen in playfield units; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	pf := g.session.Playfield
	return pf.W, pf.H
}

// Result returns the outcome of the current session.
func (g *Game) Result() engine.Result {
	return g.loop.Result()
}

// windowSize scales the playfield down so its height fits maxWindowH.
func windowSize(pf core.Rect) (int, int) {
	if pf.H <= maxWindowH {
		return pf.W, pf.H
	}
	return pf.W * maxWindowH / pf.H, maxWindowH
}

// Run opens a window and plays the variant until the user quits.
func Run(v registry.Variant, rt core.RuntimeConfig, logger *log.Logger) (engine.Result, error) {
	g, err := NewGame(v, rt, logger)
	if err != nil {
		return engine.Result{}, err
	}

	ebiten.SetTPS(g.session.Settings.TickRate)
	ebiten.SetWindowSize(windowSize(g.session.Playfield))
	ebiten.SetWindowTitle(v.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return g.Result(), err
	}
	return g.Result(), nil
}
