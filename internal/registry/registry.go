// Package registry provides a global registry for runner variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Session is one freshly built game: the simulation plus the constants the
// scheduler needs to drive it.
type Session struct {
	Sim       engine.Simulation
	Settings  engine.Settings
	Playfield core.Rect // logical playing area in playfield units
	// ConfigPath is the YAML file the session was loaded from, or empty
	// when the embedded default was used.
	ConfigPath string
}

// Variant is a runner game mode. Variants contain pure logic with no
// frontend dependencies; the platform handles input mapping, pacing, and
// drawing.
type Variant interface {
	// ID returns a unique identifier (e.g., "jump", "lanes").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// NewSession loads the variant's config and builds a session in its
	// initial state. Restarting a game means calling NewSession again.
	NewSession(rt core.RuntimeConfig) (Session, error)
}

// Info contains metadata about a registered variant.
type Info struct {
	ID    string
	Title string
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	id := v.ID()
	if _, exists := variants[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	variants[id] = v
}

// List returns information about all registered variants, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(variants))
	for id, v := range variants {
		result = append(result, Info{ID: id, Title: v.Title()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the variant registered under id.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Create builds a new session of the variant registered under id.
func Create(id string, rt core.RuntimeConfig) (Session, error) {
	v, err := Get(id)
	if err != nil {
		return Session{}, err
	}
	s, err := v.NewSession(rt)
	if err != nil {
		return Session{}, fmt.Errorf("registry: %s: %w", id, err)
	}
	return s, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
