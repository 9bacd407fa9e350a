package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJump loads the jump runner configuration and returns the file it was
// read from, or empty for the embedded default.
// Search order: customPath -> ~/.runner/configs/jump.yaml -> ./configs/jump.yaml -> embedded default
func LoadJump(customPath string) (JumpConfig, string, error) {
	cfg, path, err := load("jump", customPath, defaultJumpYAML, DefaultJumpConfig)
	if err != nil {
		return cfg, path, err
	}
	return cfg, path, cfg.Validate()
}

// LoadLanes loads the lane runner configuration and returns the file it was
// read from, or empty for the embedded default.
// Search order: customPath -> ~/.runner/configs/lanes.yaml -> ./configs/lanes.yaml -> embedded default
func LoadLanes(customPath string) (LanesConfig, string, error) {
	cfg, path, err := load("lanes", customPath, defaultLanesYAML, DefaultLanesConfig)
	if err != nil {
		return cfg, path, err
	}
	return cfg, path, cfg.Validate()
}

// load resolves a config by the search order above. Fields missing from a
// file keep their default values. A custom path that cannot be read or
// parsed is an error; the other locations are skipped silently, so the
// returned path is always the file whose values were applied.
func load[T any](id, customPath string, embedded []byte, fallback func() T) (T, string, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	filename := id + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, path, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// UserConfigDir returns ~/.runner/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
