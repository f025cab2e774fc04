package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultPlatformerConfig(), cfg)
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultPlatformerConfig()

	assert.Equal(t, 800.0, cfg.Scene.Width)
	assert.Equal(t, 600.0, cfg.Scene.Height)
	assert.Equal(t, 0.5, cfg.Scene.Gravity)
	assert.Equal(t, 40.0, cfg.Player.Width)
	assert.Equal(t, 50.0, cfg.Player.Height)
	assert.Equal(t, -12.0, cfg.Player.JumpVelocity)
	assert.Equal(t, 15.0, cfg.Player.MaxFallSpeed)
	assert.Equal(t, 100.0, cfg.Enemy.PatrolDistance)
	assert.Equal(t, 10, cfg.Sword.Lifetime)
	assert.Equal(t, 20, cfg.Sword.Cooldown)
	assert.Equal(t, 3, cfg.Session.Lives)
	assert.Equal(t, 20.0, cfg.Coin.Size)
	assert.Equal(t, 30, cfg.Input.HoldTicks, "a hold must outlast the keyboard auto-repeat delay")
	assert.NoError(t, cfg.Validate())
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("scene:\n  gravity: 0.8\nsession:\n  lives: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.Scene.Gravity)
	assert.Equal(t, 7, cfg.Session.Lives)
	assert.Equal(t, 800.0, cfg.Scene.Width, "unset keys keep their defaults")
	assert.Equal(t, 50, cfg.Scoring.Enemy)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero gravity", "scene:\n  gravity: 0\n"},
		{"upward jump must be negative", "player:\n  jump_velocity: 12\n"},
		{"no lives", "session:\n  lives: 0\n"},
		{"zero sword lifetime", "sword:\n  lifetime: 0\n"},
		{"player wider than scene", "player:\n  width: 900\n"},
		{"zero coin size", "coin:\n  size: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("scene: [unclosed"))
	assert.Error(t, err)
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  speed: 3\n"), 0o600))

	cfg, err := LoadPlatformer(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Enemy.Speed)
}

func TestLoadPlatformerMissingCustomPath(t *testing.T) {
	_, err := LoadPlatformer(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func writeUserConfig(t *testing.T, data string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".platformer", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, configFile)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadPlatformerUserConfig(t *testing.T) {
	writeUserConfig(t, "session:\n  lives: 9\n")

	cfg, err := LoadPlatformer("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Session.Lives)
}

func TestLoadPlatformerInvalidUserConfig(t *testing.T) {
	path := writeUserConfig(t, "scene: [unclosed")

	_, err := LoadPlatformer("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	writeUserConfig(t, "session:\n  lives: 0\n")
	_, err = LoadPlatformer("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultPlatformerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	assert.Equal(t, 5, easy.Session.Lives)
	assert.Equal(t, 5, easy.Enemy.ContactDamage)

	hard := DefaultPlatformerConfig()
	ApplyPreset(&hard, DifficultyHard)
	assert.Equal(t, 2, hard.Session.Lives)
	assert.Equal(t, 20, hard.Enemy.ContactDamage)
	assert.Equal(t, 3.0, hard.Enemy.Speed)
	assert.Equal(t, 75, hard.Player.FallDamage)

	normal := DefaultPlatformerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultPlatformerConfig(), normal)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("nightmare"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset(""))
}
