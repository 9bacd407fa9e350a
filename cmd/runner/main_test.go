package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)

	out := buf.String()
	for _, id := range []string{"jump", "lanes"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output should contain %q:\n%s", id, out)
		}
	}
}

func runSimulation(t *testing.T, id string, maxTicks int64, inputs string) string {
	t.Helper()
	v, err := registry.Get(id)
	if err != nil {
		t.Fatalf("registry.Get(%q) failed: %v", id, err)
	}
	script, err := engine.ParseScript(inputs)
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	var buf bytes.Buffer
	err = simulate(context.Background(), &buf, v, simOptions{
		rt:       core.RuntimeConfig{TickRate: 30, Seed: 1},
		maxTicks: maxTicks,
		script:   script,
		width:    40,
		height:   12,
	})
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	return buf.String()
}

func TestSimulateCollision(t *testing.T) {
	out := runSimulation(t, "jump", 1000, "")

	if !strings.Contains(out, "reason=collision ticks=156") {
		t.Errorf("unexpected result line:\n%s", out)
	}
	// result line plus 12 frame rows
	if lines := strings.Count(out, "\n"); lines != 13 {
		t.Errorf("output has %d lines, expected 13", lines)
	}
	if !strings.ContainsRune(out, core.FillRune) {
		t.Error("frame should contain filled cells")
	}
}

func TestSimulateTickLimitQuits(t *testing.T) {
	out := runSimulation(t, "lanes", 50, "left@5,right@20")

	if !strings.Contains(out, "reason=quit ticks=51") {
		t.Errorf("unexpected result line:\n%s", out)
	}
}

func TestSimTicksFlagUsage(t *testing.T) {
	flag := simCmd.Flags().Lookup("ticks")
	if flag == nil {
		t.Fatal("sim command has no --ticks flag")
	}
	if !strings.Contains(flag.Usage, "ends on the next tick") {
		t.Errorf("--ticks usage = %q, expected it to state the session ends on the next tick", flag.Usage)
	}
}
