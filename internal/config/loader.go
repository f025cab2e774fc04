package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "platformer.yaml"

// LoadPlatformer loads the game configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Files are applied on top of the defaults, so they only need the keys they change.
// A file that exists but fails to parse is an error, never skipped.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := Parse(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPreset adjusts lives, contact damage and fall damage for a difficulty preset.
// Normal and empty presets leave the config untouched.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Enemy.ContactDamage = 5
		cfg.Player.FallDamage = 25
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Enemy.ContactDamage = 20
		cfg.Enemy.Speed *= 1.5
		cfg.Player.FallDamage = 75
	}
}
