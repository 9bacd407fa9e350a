package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "runner.log")
	opts.Level = "debug"

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("session started", "variant", "jump")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"runner", "session started", "variant=jump"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "runner.log")
	opts.Level = "warn"

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	_ = closer.Close()

	data, _ := os.ReadFile(opts.File)
	if strings.Contains(string(data), "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn message missing")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = "chatty"
	if _, _, err := New(opts); err == nil {
		t.Error("New() with unknown level should fail")
	}
}

func TestNewDiscardsByDefault(t *testing.T) {
	logger, closer, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}
