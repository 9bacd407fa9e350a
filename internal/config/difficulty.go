package config

import "github.com/vovakirdan/tui-runner/internal/engine"

// DifficultyPreset represents a named difficulty level. Presets only shift
// the linear speed-up parameters; the curve stays linear.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	}
	return "", false
}

// ApplyPreset adjusts t for the preset:
//
//	easy   - speed-ups come half as often
//	normal - unchanged
//	hard   - starts two increments faster
//	fixed  - velocity never changes
func ApplyPreset(t *Timing, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		t.SpeedUpIntervalMS *= 2
	case DifficultyHard:
		t.InitialVelocity += 2 * t.VelocityIncrement
	case DifficultyFixed:
		t.VelocityIncrement = 0
	}
}

// Settings converts t into the scheduler constants for a session running
// at tickRate, after applying preset.
func (t Timing) Settings(tickRate int, preset DifficultyPreset) engine.Settings {
	ApplyPreset(&t, preset)
	return engine.Settings{
		TickRate:              tickRate,
		InitVelocity:          t.InitialVelocity,
		VelocityIncrement:     t.VelocityIncrement,
		MaxLevel:              t.MaxLevel,
		SpawnIntervalMillis:   t.SpawnIntervalMS,
		SpeedUpIntervalMillis: t.SpeedUpIntervalMS,
	}
}
