package tui

import "github.com/vovakirdan/tui-runner/internal/core"

// DownHoldMillis is how long a single Down key event keeps the player
// ducking. Terminals report key presses, not key state, and the first
// auto-repeat can arrive several hundred milliseconds after the press.
const DownHoldMillis = 300

// InputLatch turns asynchronous key events into one command per tick.
// The last key pressed since the previous poll wins. Down is held for a
// fixed number of ticks; any other command releases it.
//
// InputLatch implements engine.InputSource. It is not safe for concurrent
// use; Bubble Tea delivers key and tick messages on the same goroutine.
type InputLatch struct {
	pending   core.Command
	hold      int
	holdTicks int
}

// NewInputLatch creates a latch holding Down for holdTicks extra ticks.
func NewInputLatch(holdTicks int) *InputLatch {
	return &InputLatch{holdTicks: holdTicks}
}

// HoldTicks converts DownHoldMillis to ticks at tickRate.
func HoldTicks(tickRate int) int {
	return DownHoldMillis * tickRate / 1000
}

// Press records a key event.
func (l *InputLatch) Press(cmd core.Command) {
	if cmd == core.CommandNone {
		return
	}
	l.pending = cmd
	if cmd == core.CommandDown {
		l.hold = l.holdTicks
	} else {
		l.hold = 0
	}
}

// Poll returns the command for this tick.
func (l *InputLatch) Poll() core.Command {
	if cmd := l.pending; cmd != core.CommandNone {
		l.pending = core.CommandNone
		return cmd
	}
	if l.hold > 0 {
		l.hold--
		return core.CommandDown
	}
	return core.CommandNone
}

// Reset drops any pending or held command.
func (l *InputLatch) Reset() {
	l.pending = core.CommandNone
	l.hold = 0
}
