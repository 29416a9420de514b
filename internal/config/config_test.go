package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/chippiles/internal/game"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadHCL(t *testing.T) {
	path := writeConfig(t, "chippiles.hcl", `
game {
  players = 3
}

ui {
  log_level = "debug"
  no_color  = true
}

transcript {
  directory = "matches"
}

player "A" {
  name = "Alice"
}

player "b" {
  name = "Bob"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Game.Players)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "chippiles.log", cfg.UI.LogFile, "unset values take defaults")
	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, "matches", cfg.Transcript.Directory)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.Equal(t, map[game.Letter]string{'A': "Alice", 'B': "Bob"}, cfg.Names())
}

func TestLoadHCLPartialBlocks(t *testing.T) {
	path := writeConfig(t, "chippiles.hcl", `
player "C" {
  name = "Carol"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, game.DefaultPlayers, cfg.Game.Players)
	assert.Equal(t, "info", cfg.UI.LogLevel)
	assert.Empty(t, cfg.Transcript.Directory)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "chippiles.yaml", `
game:
  players: 2
ui:
  log_file: game.log
transcript:
  directory: /tmp/matches
players:
  - letter: B
    name: Bea
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.Game.Players)
	assert.Equal(t, "game.log", cfg.UI.LogFile)
	assert.Equal(t, "info", cfg.UI.LogLevel)
	assert.Equal(t, "/tmp/matches", cfg.Transcript.Directory)
	assert.Equal(t, map[game.Letter]string{'B': "Bea"}, cfg.Names())
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"broken hcl", "bad.hcl", "game {"},
		{"unknown hcl attribute", "bad.hcl", "game {\n  seats = 4\n}\n"},
		{"broken yaml", "bad.yml", "game: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"too few players", func(c *Config) { c.Game.Players = 1 }, "players must be between"},
		{"too many players", func(c *Config) { c.Game.Players = 5 }, "players must be between"},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "loud" }, "invalid log level"},
		{"unknown letter", func(c *Config) {
			c.Players = []PlayerSettings{{Letter: "Z", Name: "Zed"}}
		}, "unknown player letter"},
		{"letter not seated", func(c *Config) {
			c.Game.Players = 2
			c.Players = []PlayerSettings{{Letter: "C", Name: "Carol"}}
		}, "not seated"},
		{"duplicate letter", func(c *Config) {
			c.Players = []PlayerSettings{{Letter: "A", Name: "Al"}, {Letter: "a", Name: "Ali"}}
		}, "configured twice"},
		{"empty name", func(c *Config) {
			c.Players = []PlayerSettings{{Letter: "A", Name: "  "}}
		}, "empty name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
