// Package engine is the fixed-tick scheduler shared by every runner variant.
// It owns the event queue, the logical timers, the tick clock and the
// difficulty state, and drives a Simulation through one tick at a time.
//
// Everything here is single-threaded: timers are counters checked once per
// tick, never callbacks preempting the loop.
package engine

import "fmt"

// EventKind tags an event in the scheduler queue.
type EventKind int

const (
	EventQuit      EventKind = iota // external quit request
	EventSpawn                      // spawn timer fired
	EventSpeedUp                    // speed-up timer fired
	EventCollision                  // player hit an obstacle last tick
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventSpawn:
		return "spawn"
	case EventSpeedUp:
		return "speedup"
	case EventCollision:
		return "collision"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Terminal reports whether the event ends the session.
func (k EventKind) Terminal() bool {
	return k == EventQuit || k == EventCollision
}

// Event is a plain tagged value. At is the logical time in milliseconds at
// which it was raised (the threshold time for timer events).
type Event struct {
	Kind EventKind
	At   int64
}

// timer is a recurring logical timer.
type timer struct {
	kind     EventKind
	interval int64
	next     int64
}

// Bus is the scheduler's owned event queue plus its recurring timers.
type Bus struct {
	timers []timer
	queue  []Event
	now    int64
}

// NewBus creates an empty bus at logical time zero.
func NewBus() *Bus {
	return &Bus{}
}

// Schedule registers a recurring timer that raises kind every intervalMillis.
// The first firing happens one full interval after the current time.
func (b *Bus) Schedule(intervalMillis int, kind EventKind) error {
	if intervalMillis <= 0 {
		return fmt.Errorf("engine: %s interval must be positive, got %d", kind, intervalMillis)
	}
	iv := int64(intervalMillis)
	b.timers = append(b.timers, timer{kind: kind, interval: iv, next: b.now + iv})
	return nil
}

// Post appends an event raised by the loop itself.
func (b *Bus) Post(kind EventKind) {
	b.queue = append(b.queue, Event{Kind: kind, At: b.now})
}

// Advance moves logical time to nowMillis and queues one event per timer
// threshold crossed, ordered by threshold time (registration order on ties).
// Time never moves backwards.
func (b *Bus) Advance(nowMillis int64) {
	if nowMillis < b.now {
		return
	}
	b.now = nowMillis

	for {
		idx := -1
		for i := range b.timers {
			if b.timers[i].next > b.now {
				continue
			}
			if idx < 0 || b.timers[i].next < b.timers[idx].next {
				idx = i
			}
		}
		if idx < 0 {
			return
		}
		t := &b.timers[idx]
		b.queue = append(b.queue, Event{Kind: t.kind, At: t.next})
		t.next += t.interval
	}
}

// Drain returns every queued event in arrival order and empties the queue.
func (b *Bus) Drain() []Event {
	if len(b.queue) == 0 {
		return nil
	}
	out := b.queue
	b.queue = nil
	return out
}

// Pending returns the number of queued events.
func (b *Bus) Pending() int {
	return len(b.queue)
}

// Now returns the bus's current logical time in milliseconds.
func (b *Bus) Now() int64 {
	return b.now
}
