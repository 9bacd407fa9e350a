package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// chromeLines is the number of rows reserved below the playfield for the
// HUD and the help footer.
const chromeLines = 2

// Options configures the frontend.
type Options struct {
	Logger      *log.Logger
	WatchConfig bool // report config file edits; they apply on restart
}

// Model is the Bubble Tea model for one runner variant. Each game is a
// fresh session; the model survives restarts.
type Model struct {
	variant  registry.Variant
	rt       core.RuntimeConfig
	randSeed bool // pick a new seed per session
	session  registry.Session
	loop     *engine.Loop
	viewport *core.Viewport
	canvas   *core.Screen
	latch    *InputLatch
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	watcher  *config.Watcher

	configChanged bool
	ticking       bool // a TickMsg is in flight
	paused        bool
	exitOnEnd     bool // quit the program once the session has ended
	quitting      bool
	err           error
	width         int
	height        int
}

// NewModel creates a model and starts the first session.
func NewModel(v registry.Variant, rt core.RuntimeConfig, opts Options) (Model, error) {
	m := Model{
		variant:  v,
		rt:       rt,
		randSeed: rt.Seed == 0,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   opts.Logger,
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.canvas = core.NewScreen(m.playW(), m.playH())

	if err := m.startSession(); err != nil {
		return Model{}, err
	}

	// Init schedules the first tick
	m.ticking = true

	if opts.WatchConfig && m.session.ConfigPath != "" {
		w, err := config.NewWatcher(m.session.ConfigPath)
		if err != nil {
			m.logger.Warn("config watch disabled", "path", m.session.ConfigPath, "error", err)
		} else {
			m.watcher = w
			m.logger.Debug("watching config", "path", w.Path())
		}
	}
	return m, nil
}

// startSession builds a new session and loop. The config file is read
// again, so edits take effect here and nowhere else.
func (m *Model) startSession() error {
	rt := m.rt
	if m.randSeed {
		rt.Seed = time.Now().UnixNano()
	}

	s, err := m.variant.NewSession(rt)
	if err != nil {
		return err
	}
	viewport := core.NewViewport(s.Playfield, m.playW(), m.playH())
	loop, err := engine.NewLoop(s.Sim, s.Settings,
		engine.WithLogger(m.logger),
		engine.WithRenderer(viewport),
	)
	if err != nil {
		return err
	}

	m.viewport = viewport
	m.session = s
	m.loop = loop
	m.latch = NewInputLatch(HoldTicks(s.Settings.TickRate))
	m.paused = false
	m.configChanged = false
	m.logger.Info("session started", "variant", m.variant.ID(), "seed", rt.Seed)
	return nil
}

func (m Model) playW() int {
	return core.Max(1, m.width)
}

func (m Model) playH() int {
	return core.Max(1, m.height-chromeLines)
}

// Init starts the tick loop and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.loop.Settings().TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configChangedMsg:
		m.configChanged = true
		m.logger.Info("config changed, applies on restart", "path", msg.path)
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config watch error", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()

	case key.Matches(msg, m.keys.Quit):
		if !m.loop.Running() {
			return m.quit()
		}
		// End through the event queue so the result is recorded as a quit.
		m.loop.RequestQuit()
		m.exitOnEnd = true
		m.paused = false
		return m, m.scheduleTick()

	case key.Matches(msg, m.keys.Pause):
		if !m.loop.Running() {
			return m, nil
		}
		m.paused = !m.paused
		// keys pressed before pausing must not fire on resume
		m.latch.Reset()
		if !m.paused {
			return m, m.scheduleTick()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.loop.Running() {
			return m, nil
		}
		if err := m.startSession(); err != nil {
			// Keep the finished session on screen and show why.
			m.err = err
			m.logger.Error("restart failed", "error", err)
			return m, nil
		}
		m.err = nil
		return m, m.scheduleTick()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.paused {
		m.latch.Press(m.keys.Command(msg))
	}
	return m, nil
}

// handleResize rescales the viewport. The simulation is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.viewport.Resize(m.playW(), m.playH())
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false
	if m.paused || !m.loop.Running() {
		// stop ticking; pause and restart schedule a new tick
		return m, nil
	}

	done, err := m.loop.Step(m.latch)
	if err != nil {
		m.err = err
		m.logger.Error("session aborted", "error", err)
		return m.quit()
	}
	if done && m.exitOnEnd {
		return m.quit()
	}
	if done {
		return m, nil
	}
	return m, m.scheduleTick()
}

// scheduleTick starts the next tick unless one is already pending, so
// pausing and resuming never runs two tick chains.
func (m *Model) scheduleTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.loop.Settings().TickRate)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.logger.Warn("closing config watcher", "error", err)
		}
	}
	return m, tea.Quit
}

// View renders the current frame, HUD, and help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.CopyFrom(m.viewport.Frame())

	res := m.loop.Result()
	switch {
	case m.err != nil:
		drawMessage(m.canvas, "ERROR", m.err.Error())
	case m.paused:
		drawMessage(m.canvas, "PAUSED", "Press P to resume")
	case res.Reason == engine.EndCollision:
		drawMessage(m.canvas, "GAME OVER", fmt.Sprintf("Tick %d  |  R to restart, Q to quit", res.Ticks))
	}

	return RenderScreen(m.canvas) + "\n" + m.hud(res) + "\n" + m.help.View(m.keys)
}

func (m Model) hud(res engine.Result) string {
	line := hudStyle.Render(m.variant.Title()) + "  " +
		statStyle.Render(fmt.Sprintf("velocity %d  level %d  tick %d", res.Velocity, res.Level, res.Ticks))
	if m.configChanged {
		line += "  " + alertStyle.Render("config changed, R after game over to apply")
	}
	return line
}

// Result returns the outcome of the current session.
func (m Model) Result() engine.Result {
	return m.loop.Result()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays the variant in the terminal until the user quits. It returns
// the result of the last session.
func Run(v registry.Variant, rt core.RuntimeConfig, opts Options) (engine.Result, error) {
	model, err := NewModel(v, rt, opts)
	if err != nil {
		return engine.Result{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return engine.Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return engine.Result{}, errors.New("tui: unexpected final model")
	}
	if m.Result().Reason == engine.EndAborted {
		return m.Result(), m.Err()
	}
	return m.Result(), nil
}
