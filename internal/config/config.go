// Package config loads chippiles settings from an HCL or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/lox/chippiles/internal/game"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = "chippiles.hcl"

// Config represents the complete configuration
type Config struct {
	Game       *GameSettings       `hcl:"game,block" yaml:"game"`
	UI         *UISettings         `hcl:"ui,block" yaml:"ui"`
	Transcript *TranscriptSettings `hcl:"transcript,block" yaml:"transcript"`
	Players    []PlayerSettings    `hcl:"player,block" yaml:"players"`
}

// GameSettings contains match settings
type GameSettings struct {
	Players int `hcl:"players,optional" yaml:"players"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional" yaml:"log_level"`
	LogFile  string `hcl:"log_file,optional" yaml:"log_file"`
	NoColor  bool   `hcl:"no_color,optional" yaml:"no_color"`
}

// TranscriptSettings controls match transcripts. An empty directory
// disables them.
type TranscriptSettings struct {
	Directory string `hcl:"directory,optional" yaml:"directory"`
}

// PlayerSettings names the player with the given letter.
type PlayerSettings struct {
	Letter string `hcl:"letter,label" yaml:"letter"`
	Name   string `hcl:"name" yaml:"name"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			Players: game.DefaultPlayers,
		},
		UI: &UISettings{
			LogLevel: "info",
			LogFile:  "chippiles.log",
		},
		Transcript: &TranscriptSettings{},
	}
}

// Load reads the configuration from filename. A missing file yields the
// defaults. Files ending in .yaml or .yml are parsed as YAML, everything
// else as HCL.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file: %w", err)
		}
	default:
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &cfg)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.Game.Players == 0 {
		c.Game.Players = defaults.Game.Players
	}

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}

	if c.Transcript == nil {
		c.Transcript = defaults.Transcript
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Players < game.MinPlayers || c.Game.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d",
			game.MinPlayers, game.MaxPlayers, c.Game.Players)
	}

	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	seen := make(map[game.Letter]bool)
	for _, p := range c.Players {
		l, err := game.ParseLetter(p.Letter)
		if err != nil {
			return fmt.Errorf("player %q: %w", p.Letter, err)
		}
		if l.Index() >= c.Game.Players {
			return fmt.Errorf("player %s is not seated in a %d-player game", l, c.Game.Players)
		}
		if seen[l] {
			return fmt.Errorf("player %s is configured twice", l)
		}
		seen[l] = true
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("player %s has an empty name", l)
		}
	}

	return nil
}

// Names returns the configured display names keyed by letter. Call after
// Validate; unparseable letters are skipped.
func (c *Config) Names() map[game.Letter]string {
	names := make(map[game.Letter]string, len(c.Players))
	for _, p := range c.Players {
		if l, err := game.ParseLetter(p.Letter); err == nil {
			names[l] = strings.TrimSpace(p.Name)
		}
	}
	return names
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
