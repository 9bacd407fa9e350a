package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Loop is the fixed-tick scheduler for one session. It is the exclusive
// owner of the simulation, the difficulty state and the event queue.
//
// State machine: Running -> Terminated. Terminated is final; a new game is
// a new Loop built by the caller.
type Loop struct {
	sim        Simulation
	settings   Settings
	bus        *Bus
	clock      *Clock
	difficulty Difficulty
	renderer   Renderer
	logger     *log.Logger

	running  bool
	collided bool
	result   Result
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRenderer sets the renderer that receives a snapshot after every tick.
func WithRenderer(r Renderer) Option {
	return func(l *Loop) {
		l.renderer = r
	}
}

// NewLoop creates a running loop with both periodic timers scheduled.
func NewLoop(sim Simulation, settings Settings, opts ...Option) (*Loop, error) {
	if sim == nil {
		return nil, errors.New("engine: nil simulation")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	clock, err := NewClock(settings.TickRate)
	if err != nil {
		return nil, err
	}

	l := &Loop{
		sim:        sim,
		settings:   settings,
		bus:        NewBus(),
		clock:      clock,
		difficulty: NewDifficulty(settings.InitVelocity),
		logger:     log.New(io.Discard),
		running:    true,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.bus.Schedule(settings.SpawnIntervalMillis, EventSpawn); err != nil {
		return nil, err
	}
	if err := l.bus.Schedule(settings.SpeedUpIntervalMillis, EventSpeedUp); err != nil {
		return nil, err
	}

	l.logger.Debug("session started",
		"tick_rate", settings.TickRate,
		"velocity", l.difficulty.Velocity,
		"spawn_ms", settings.SpawnIntervalMillis,
		"speedup_ms", settings.SpeedUpIntervalMillis,
	)
	return l, nil
}

// Step executes one tick:
//
//  1. fire crossed timers and drain every pending event in FIFO order;
//     quit or collision terminates and skips the rest of the tick
//  2. poll the input source once
//  3. update the player state machine
//  4. advance and prune obstacles
//  5. test collisions, queuing a terminal event on the first hit
//  6. hand the snapshot to the renderer
//
// It returns done once the loop has terminated. A non-nil error means the
// session was aborted by an invariant violation.
func (l *Loop) Step(in InputSource) (bool, error) {
	if !l.running {
		return true, nil
	}

	l.clock.Advance()
	l.bus.Advance(l.clock.Millis())

	for _, ev := range l.bus.Drain() {
		switch ev.Kind {
		case EventQuit:
			l.terminate(EndQuit)
			return true, nil
		case EventCollision:
			l.terminate(EndCollision)
			return true, nil
		case EventSpawn:
			l.sim.Spawn(l.difficulty)
			l.logger.Debug("spawn", "tick", l.clock.Tick(), "level", l.difficulty.Level)
		case EventSpeedUp:
			l.difficulty.SpeedUp(l.settings.VelocityIncrement, l.settings.MaxLevel)
			l.logger.Debug("speed up",
				"tick", l.clock.Tick(),
				"velocity", l.difficulty.Velocity,
				"level", l.difficulty.Level,
			)
		default:
			return true, l.abort(&InvariantError{Component: "scheduler", Field: "event kind", Value: int(ev.Kind)})
		}
	}

	cmd := core.CommandNone
	if in != nil {
		cmd = in.Poll()
	}

	if err := l.sim.ApplyInput(cmd); err != nil {
		return true, l.abort(err)
	}
	if err := l.sim.Advance(); err != nil {
		return true, l.abort(err)
	}

	l.sim.AdvanceObstacles(l.difficulty.Velocity)

	if !l.collided && l.sim.Collides() {
		l.collided = true
		l.bus.Post(EventCollision)
		l.logger.Debug("collision", "tick", l.clock.Tick())
	}

	if l.renderer != nil {
		l.sim.Draw(l.renderer)
		l.renderer.Present()
	}
	return false, nil
}

// Run steps the loop until it terminates, pacing ticks with pacer. A nil
// pacer runs ticks back to back. Cancelling ctx is treated as a quit request.
func (l *Loop) Run(ctx context.Context, in InputSource, pacer Pacer) (Result, error) {
	for {
		done, err := l.Step(in)
		if err != nil {
			return l.result, err
		}
		if done {
			return l.result, nil
		}

		if pacer != nil {
			if err := pacer.Wait(ctx); err != nil {
				l.RequestQuit()
			}
		} else if ctx.Err() != nil {
			l.RequestQuit()
		}
	}
}

// RequestQuit queues a quit event; the session ends on the next tick.
func (l *Loop) RequestQuit() {
	if l.running {
		l.bus.Post(EventQuit)
	}
}

// Running reports whether the loop has not yet terminated.
func (l *Loop) Running() bool {
	return l.running
}

// Result returns the session outcome. Reason is EndNone while running.
func (l *Loop) Result() Result {
	if l.running {
		return Result{
			Reason:   EndNone,
			Ticks:    l.clock.Tick(),
			Velocity: l.difficulty.Velocity,
			Level:    l.difficulty.Level,
		}
	}
	return l.result
}

// Difficulty returns the current difficulty.
func (l *Loop) Difficulty() Difficulty {
	return l.difficulty
}

// Tick returns the number of ticks executed.
func (l *Loop) Tick() int64 {
	return l.clock.Tick()
}

// Settings returns the session constants.
func (l *Loop) Settings() Settings {
	return l.settings
}

func (l *Loop) terminate(reason EndReason) {
	l.running = false
	l.result = Result{
		Reason:   reason,
		Ticks:    l.clock.Tick(),
		Velocity: l.difficulty.Velocity,
		Level:    l.difficulty.Level,
	}
	l.logger.Info("session ended",
		"reason", reason,
		"ticks", l.result.Ticks,
		"velocity", l.result.Velocity,
		"level", l.result.Level,
	)
}

func (l *Loop) abort(err error) error {
	l.terminate(EndAborted)
	l.logger.Error("session aborted", "tick", l.clock.Tick(), "error", err)
	return fmt.Errorf("session aborted at tick %d: %w", l.clock.Tick(), err)
}
