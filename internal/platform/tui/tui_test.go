package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/games/jump"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Command
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.CommandUp},
		{keyRunes("w"), core.CommandUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.CommandDown},
		{keyRunes("s"), core.CommandDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.CommandLeft},
		{keyRunes("a"), core.CommandLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.CommandRight},
		{keyRunes("d"), core.CommandRight},
		{keyRunes("x"), core.CommandNone},
		{keyRunes("p"), core.CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := keys.Command(tc.msg); got != tc.expected {
				t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestInputLatchLastPressWins(t *testing.T) {
	l := NewInputLatch(0)
	l.Press(core.CommandUp)
	l.Press(core.CommandLeft)

	if got := l.Poll(); got != core.CommandLeft {
		t.Errorf("Poll() = %v, expected left", got)
	}
	if got := l.Poll(); got != core.CommandNone {
		t.Errorf("second Poll() = %v, expected none", got)
	}
}

func TestInputLatchHoldsDown(t *testing.T) {
	l := NewInputLatch(3)
	l.Press(core.CommandDown)

	for i := 0; i < 4; i++ {
		if got := l.Poll(); got != core.CommandDown {
			t.Errorf("poll %d = %v, expected down", i, got)
		}
	}
	if got := l.Poll(); got != core.CommandNone {
		t.Errorf("Poll() after hold = %v, expected none", got)
	}

	// another command releases the hold
	l.Press(core.CommandDown)
	_ = l.Poll()
	l.Press(core.CommandUp)
	if got := l.Poll(); got != core.CommandUp {
		t.Errorf("Poll() = %v, expected up", got)
	}
	if got := l.Poll(); got != core.CommandNone {
		t.Errorf("Poll() = %v, expected hold released", got)
	}
}

func TestHoldTicks(t *testing.T) {
	if got := HoldTicks(30); got != 9 {
		t.Errorf("HoldTicks(30) = %d, expected 9", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.FillRect(core.NewRect(0, 0, 3, 1), core.FillRune, core.ColorRed)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	if !strings.Contains(out, "███") || !strings.Contains(out, "ok") {
		t.Errorf("RenderScreen() = %q, expected fill and text", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30, Seed: 1}
	m, err := NewModel(jump.Variant{}, rt, Options{})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return mm, cmd
}

func TestModelQuitEndsSessionAsQuit(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, keyRunes("q"))
	if !m.loop.Running() {
		t.Fatal("quit must take effect on the next tick, not immediately")
	}

	m, cmd := update(t, m, TickMsg{})
	if m.Result().Reason != engine.EndQuit {
		t.Errorf("Reason = %v, expected quit", m.Result().Reason)
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit after the quit tick")
	}
}

func TestModelPauseStopsTicks(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, keyRunes("p"))
	before := m.loop.Tick()

	m, cmd := update(t, m, TickMsg{})
	if m.loop.Tick() != before {
		t.Errorf("tick advanced while paused: %d -> %d", before, m.loop.Tick())
	}
	if cmd != nil {
		t.Error("paused model should not schedule ticks")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show the pause overlay")
	}

	m, cmd = update(t, m, keyRunes("p"))
	if cmd == nil {
		t.Error("resume should schedule a tick")
	}
	// a second toggle pair must not start a second tick chain
	m, _ = update(t, m, keyRunes("p"))
	_, cmd = update(t, m, keyRunes("p"))
	if cmd != nil {
		t.Error("resume with a tick already pending should not schedule another")
	}
}

func TestModelResizeKeepsSimulation(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	before := m.Result()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Result() != before {
		t.Errorf("Result() = %+v after resize, expected %+v", m.Result(), before)
	}

	m, _ = update(t, m, TickMsg{})
	lines := strings.Split(m.canvasText(), "\n")
	if len(lines) != 40-chromeLines {
		t.Errorf("frame has %d rows, expected %d", len(lines), 40-chromeLines)
	}
}

func (m Model) canvasText() string {
	return m.viewport.Frame().String()
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 1000 && m.loop.Running(); i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if m.Result().Reason != engine.EndCollision {
		t.Fatalf("Reason = %v, expected collision", m.Result().Reason)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() should show the game over overlay")
	}

	m, cmd := update(t, m, keyRunes("r"))
	if !m.loop.Running() || m.loop.Tick() != 0 {
		t.Errorf("restart should build a fresh session, got running=%v tick=%d", m.loop.Running(), m.loop.Tick())
	}
	if cmd == nil {
		t.Error("restart should schedule a tick")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(80, 24)
	if len(m.items) == 0 {
		t.Fatal("menu has no variants")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)

	want := m.items[min(1, len(m.items)-1)].ID
	if menu.Selected() != want {
		t.Errorf("Selected() = %q, expected %q", menu.Selected(), want)
	}
	if cmd == nil {
		t.Error("select should quit the menu program")
	}
}

func TestInputLatchReset(t *testing.T) {
	l := NewInputLatch(5)
	l.Press(core.CommandDown)
	l.Reset()

	if got := l.Poll(); got != core.CommandNone {
		t.Errorf("Poll() after Reset() = %v, expected None", got)
	}
}

func TestModelPauseDropsPendingInput(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, keyRunes("p"))
	m, _ = update(t, m, keyRunes("p"))

	if got := m.latch.Poll(); got != core.CommandNone {
		t.Errorf("Poll() after pause = %v, expected None", got)
	}
}

func TestDrawMessageCentersText(t *testing.T) {
	s := core.NewScreen(21, 9)
	drawMessage(s, "HI", "press R")

	if s.Get(9, 3) != 'H' || s.Get(10, 3) != 'I' {
		t.Errorf("title not centred:\n%s", s.String())
	}
}
