package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/logging"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// runtimeConfig builds the session parameters from the global flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return core.RuntimeConfig{}, fmt.Errorf("unknown difficulty %q (use easy, normal, hard, fixed)", flagDifficulty)
	}

	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	rt.ConfigPath = flagConfig
	rt.Difficulty = flagDifficulty
	return rt, nil
}

// newLogger builds the logger from the global flags.
func newLogger() (*log.Logger, io.Closer, error) {
	opts := logging.DefaultOptions()
	opts.File = flagLogFile
	opts.Level = flagLogLevel
	return logging.New(opts)
}

// lookupVariant resolves a mode ID with a helpful error.
func lookupVariant(id string) (registry.Variant, error) {
	v, err := registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("unknown mode %q; run 'runner list' to see available modes", id)
	}
	return v, nil
}
