package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// fakeSim records every call so tests can check the per-tick order.
type fakeSim struct {
	calls      []string
	spawns     int
	inputs     []core.Command
	velocities []int
	collideAt  int // collide on this AdvanceObstacles call (1-based); 0 never
	advances   int
	inputErr   error
}

func (f *fakeSim) Spawn(d Difficulty) {
	f.calls = append(f.calls, "spawn")
	f.spawns++
}

func (f *fakeSim) ApplyInput(cmd core.Command) error {
	f.calls = append(f.calls, "input")
	f.inputs = append(f.inputs, cmd)
	return f.inputErr
}

func (f *fakeSim) Advance() error {
	f.calls = append(f.calls, "advance")
	return nil
}

func (f *fakeSim) AdvanceObstacles(v int) {
	f.calls = append(f.calls, "obstacles")
	f.advances++
	f.velocities = append(f.velocities, v)
}

func (f *fakeSim) Collides() bool {
	f.calls = append(f.calls, "collides")
	return f.collideAt > 0 && f.advances >= f.collideAt
}

func (f *fakeSim) Draw(r Renderer) {
	f.calls = append(f.calls, "draw")
	r.DrawRect(core.NewRect(0, 0, 1, 1), core.ColorPlayer)
}

type countingRenderer struct {
	rects    int
	presents int
}

func (c *countingRenderer) DrawRect(core.Rect, core.Color) { c.rects++ }
func (c *countingRenderer) Present()                       { c.presents++ }

func testSettings() Settings {
	return Settings{
		TickRate:              10, // 100ms per tick
		InitVelocity:          7,
		VelocityIncrement:     2,
		MaxLevel:              99,
		SpawnIntervalMillis:   300,
		SpeedUpIntervalMillis: 500,
	}
}

func TestNewLoopValidates(t *testing.T) {
	s := testSettings()
	s.SpawnIntervalMillis = 0
	if _, err := NewLoop(&fakeSim{}, s); err == nil {
		t.Error("NewLoop() should reject a zero spawn interval")
	}
	if _, err := NewLoop(nil, testSettings()); err == nil {
		t.Error("NewLoop() should reject a nil simulation")
	}
}

func TestLoopTickOrder(t *testing.T) {
	sim := &fakeSim{}
	r := &countingRenderer{}
	l, err := NewLoop(sim, testSettings(), WithRenderer(r))
	if err != nil {
		t.Fatalf("NewLoop() failed: %v", err)
	}

	// Ticks 1 and 2: no timers yet
	for i := 0; i < 2; i++ {
		if done, err := l.Step(NoInput); done || err != nil {
			t.Fatalf("Step() = (%v, %v), expected running", done, err)
		}
	}
	sim.calls = nil

	// Tick 3 crosses the 300ms spawn threshold
	if _, err := l.Step(NoInput); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	want := "spawn,input,advance,obstacles,collides,draw"
	if got := strings.Join(sim.calls, ","); got != want {
		t.Errorf("tick order = %s, expected %s", got, want)
	}
	if r.presents != 3 {
		t.Errorf("Present() called %d times, expected once per tick (3)", r.presents)
	}
}

func TestLoopTimersFireOncePerThreshold(t *testing.T) {
	sim := &fakeSim{}
	l, err := NewLoop(sim, testSettings())
	if err != nil {
		t.Fatalf("NewLoop() failed: %v", err)
	}

	// 30 ticks = 3000ms: 10 spawns, 6 speed-ups
	for i := 0; i < 30; i++ {
		if _, err := l.Step(NoInput); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
	}

	if sim.spawns != 10 {
		t.Errorf("spawns = %d, expected 10", sim.spawns)
	}
	d := l.Difficulty()
	if d.Velocity != 7+6*2 || d.Level != 7 {
		t.Errorf("difficulty = %+v, expected velocity 19 level 7", d)
	}
	// The speed-up at tick 5 is visible to the obstacle step of tick 5
	if sim.velocities[3] != 7 || sim.velocities[4] != 9 {
		t.Errorf("velocities around first speed-up = %v, expected 7 then 9", sim.velocities[3:5])
	}
}

func TestLoopCollisionTerminatesNextTick(t *testing.T) {
	sim := &fakeSim{collideAt: 4}
	l, err := NewLoop(sim, testSettings())
	if err != nil {
		t.Fatalf("NewLoop() failed: %v", err)
	}

	var ticks int
	for {
		done, err := l.Step(NoInput)
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		ticks++
		if done {
			break
		}
		if ticks > 100 {
			t.Fatal("loop never terminated")
		}
	}

	if ticks != 5 {
		t.Errorf("terminated on tick %d, expected 5", ticks)
	}
	if sim.advances != 4 {
		t.Errorf("obstacles advanced %d times, expected 4 (none after the hit)", sim.advances)
	}
	res := l.Result()
	if res.Reason != EndCollision || res.Ticks != 5 {
		t.Errorf("Result() = %+v, expected collision at tick 5", res)
	}

	// Further steps are no-ops
	if done, err := l.Step(NoInput); !done || err != nil {
		t.Errorf("Step() after termination = (%v, %v), expected (true, nil)", done, err)
	}
	if sim.advances != 4 {
		t.Error("no obstacle advance may happen after termination")
	}
}

func TestLoopPostsCollisionOnce(t *testing.T) {
	sim := &fakeSim{collideAt: 1}
	l, err := NewLoop(sim, testSettings())
	if err != nil {
		t.Fatalf("NewLoop() failed: %v", err)
	}

	if _, err := l.Step(NoInput); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if got := l.bus.Pending(); got != 1 {
		t.Errorf("pending events after hit = %d, expected 1", got)
	}
}

func TestLoopQuitDistinctFromCollision(t *testing.T) {
	sim := &fakeSim{}
	l, err := NewLoop(sim, testSettings())
	if err != nil {
		t.Fatalf("NewLoop() failed: %v", err)
	}

	l.Step(NoInput)
	l.RequestQuit()
	done, err := l.Step(NoInput)
	if !done || err != nil {
		t.Fatalf("Step() after quit = (%v, %v), expected (true, nil)", done, err)
	}
	if l.Result().Reason != EndQuit {
		t.Errorf("Reason = %v, expected quit", l.Result().Reason)
	}
	if len(sim.inputs) != 1 {
		t.Errorf("input polled %d times, expected only on the first tick", len(sim.inputs))
	}
}

func TestLoopInvariantAborts(t *testing.T) {
	sim := &fakeSim{inputErr: &InvariantError{Component: "test player", Field: "state", Value: 7}}
	l, err := NewLoop(sim, testSettings())
	if err != nil {
		t.Fatalf("NewLoop() failed: %v", err)
	}

	done, err := l.Step(NoInput)
	if !done || err == nil {
		t.Fatalf("Step() = (%v, %v), expected abort", done, err)
	}

	var inv *InvariantError
	if !errors.As(err, &inv) || inv.Value != 7 {
		t.Errorf("error %v should wrap InvariantError with value 7", err)
	}
	if !strings.Contains(err.Error(), "7") {
		t.Errorf("diagnostic %q should name the offending value", err.Error())
	}
	if l.Result().Reason != EndAborted {
		t.Errorf("Reason = %v, expected aborted", l.Result().Reason)
	}
	if l.Running() {
		t.Error("loop must not keep running after an invariant violation")
	}
}

func TestLoopRunWithScript(t *testing.T) {
	sim := &fakeSim{collideAt: 12}
	l, err := NewLoop(sim, testSettings())
	if err != nil {
		t.Fatalf("NewLoop() failed: %v", err)
	}

	script := NewScript().At(2, core.CommandUp).At(3, core.CommandDown)
	res, err := l.Run(context.Background(), script, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Reason != EndCollision || res.Ticks != 13 {
		t.Errorf("Run() = %+v, expected collision ending on tick 13", res)
	}
	if sim.inputs[1] != core.CommandUp || sim.inputs[2] != core.CommandDown {
		t.Errorf("inputs = %v, expected Up on tick 2 and Down on tick 3", sim.inputs[:3])
	}
}

func TestLoopRunCancelledIsQuit(t *testing.T) {
	l, err := NewLoop(&fakeSim{}, testSettings())
	if err != nil {
		t.Fatalf("NewLoop() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := l.Run(ctx, NoInput, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Reason != EndQuit {
		t.Errorf("Reason = %v, expected quit", res.Reason)
	}
}
