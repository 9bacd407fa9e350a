package engine

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func equalKinds(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBusScheduleRejectsNonPositive(t *testing.T) {
	b := NewBus()
	if err := b.Schedule(0, EventSpawn); err == nil {
		t.Error("Schedule(0) should fail")
	}
	if err := b.Schedule(-5, EventSpawn); err == nil {
		t.Error("Schedule(-5) should fail")
	}
}

func TestBusFiresOncePerCrossing(t *testing.T) {
	b := NewBus()
	if err := b.Schedule(100, EventSpawn); err != nil {
		t.Fatalf("Schedule() failed: %v", err)
	}

	b.Advance(99)
	if got := b.Drain(); len(got) != 0 {
		t.Fatalf("no event expected before threshold, got %v", kinds(got))
	}

	b.Advance(100)
	if got := b.Drain(); len(got) != 1 || got[0].At != 100 {
		t.Fatalf("expected exactly one event at 100, got %+v", got)
	}

	// Overshooting the threshold does not repeat it
	b.Advance(150)
	b.Advance(199)
	if got := b.Drain(); len(got) != 0 {
		t.Fatalf("no event expected between thresholds, got %v", kinds(got))
	}

	// Jumping over two thresholds yields two events
	b.Advance(320)
	got := b.Drain()
	if len(got) != 2 || got[0].At != 200 || got[1].At != 300 {
		t.Fatalf("expected events at 200 and 300, got %+v", got)
	}
}

func TestBusOrdersByThreshold(t *testing.T) {
	b := NewBus()
	_ = b.Schedule(300, EventSpeedUp)
	_ = b.Schedule(100, EventSpawn)

	b.Advance(300)
	want := []EventKind{EventSpawn, EventSpawn, EventSpeedUp, EventSpawn}
	if got := kinds(b.Drain()); !equalKinds(got, want) {
		t.Errorf("Drain() = %v, expected %v", got, want)
	}
}

func TestBusFIFOWithPosts(t *testing.T) {
	b := NewBus()
	_ = b.Schedule(50, EventSpawn)

	b.Post(EventCollision)
	b.Advance(50)
	b.Post(EventQuit)

	want := []EventKind{EventCollision, EventSpawn, EventQuit}
	if got := kinds(b.Drain()); !equalKinds(got, want) {
		t.Errorf("Drain() = %v, expected %v", got, want)
	}
	if b.Pending() != 0 {
		t.Errorf("Pending() = %d after Drain, expected 0", b.Pending())
	}
}

func TestBusTimeIsMonotonic(t *testing.T) {
	b := NewBus()
	_ = b.Schedule(100, EventSpawn)
	b.Advance(100)
	b.Drain()

	b.Advance(50)
	if b.Now() != 100 {
		t.Errorf("Now() = %d, time must not move backwards", b.Now())
	}
	if got := b.Drain(); len(got) != 0 {
		t.Errorf("moving backwards must not fire timers, got %v", kinds(got))
	}
}

func TestClockMillis(t *testing.T) {
	c, err := NewClock(30)
	if err != nil {
		t.Fatalf("NewClock() failed: %v", err)
	}

	for i := 0; i < 90; i++ {
		c.Advance()
	}
	if c.Millis() != 3000 {
		t.Errorf("Millis() after 90 ticks at 30Hz = %d, expected 3000", c.Millis())
	}

	if _, err := NewClock(0); err == nil {
		t.Error("NewClock(0) should fail")
	}
}

func TestDifficultySpeedUp(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		maxLevel  int
		wantVel   int
		wantLevel int
	}{
		{"no speed-ups", 0, 99, 7, 1},
		{"five speed-ups", 5, 99, 17, 6},
		{"level capped", 150, 99, 307, 99},
		{"level disabled", 4, 0, 15, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficulty(7)
			for i := 0; i < tc.n; i++ {
				d.SpeedUp(2, tc.maxLevel)
			}
			if d.Velocity != tc.wantVel || d.Level != tc.wantLevel {
				t.Errorf("after %d speed-ups: velocity=%d level=%d, expected %d/%d",
					tc.n, d.Velocity, d.Level, tc.wantVel, tc.wantLevel)
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript("up@2, down@4-5,right@7")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	want := []string{"None", "Up", "None", "Down", "Down", "None", "Right", "None"}
	for i, w := range want {
		if got := s.Poll().String(); got != w {
			t.Errorf("poll %d = %s, expected %s", i+1, got, w)
		}
	}

	bad := []string{"up", "fly@3", "up@0", "up@x", "down@5-3"}
	for _, spec := range bad {
		if _, err := ParseScript(spec); err == nil {
			t.Errorf("ParseScript(%q) should fail", spec)
		}
	}
}

func TestScriptLongHold(t *testing.T) {
	s, err := ParseScript("down@1-9000000000000000,up@3")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	if n := len(s.spans); n != 2 {
		t.Fatalf("len(spans) = %d, expected 2", n)
	}

	want := []core.Command{core.CommandDown, core.CommandDown, core.CommandUp, core.CommandDown}
	for i, w := range want {
		if got := s.Poll(); got != w {
			t.Errorf("poll %d = %v, expected %v", i+1, got, w)
		}
	}
}
