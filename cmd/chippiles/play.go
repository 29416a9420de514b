package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/chippiles/internal/config"
	"github.com/lox/chippiles/internal/game"
	"github.com/lox/chippiles/internal/history"
	"github.com/lox/chippiles/internal/tui"
)

// PlayCmd runs an interactive match. Flags override the config file.
type PlayCmd struct {
	Players       int    `short:"p" help:"Number of players (2-4)"`
	Config        string `short:"c" default:"${config_file}" help:"Config file (.hcl, .yaml or .yml)"`
	LogFile       string `help:"Write logs to this file"`
	LogLevel      string `help:"Log level: debug, info, warn, error"`
	TranscriptDir string `help:"Write a transcript of the match to this directory"`
	NoColor       bool   `help:"Disable colours"`
}

func (cmd *PlayCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cmd.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := setupFileLogger(cfg.UI.LogFile, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	tui.ConfigureColor(cfg.UI.NoColor)

	names := cfg.Names()
	var writer history.Writer = history.NoOpWriter{}
	if cfg.Transcript.Directory != "" {
		writer = history.NewFileWriter(cfg.Transcript.Directory)
	}
	transcript := history.New(quartz.NewReal(),
		history.WithNames(names),
		history.WithWriter(writer),
		history.WithLogger(logger),
	)
	model := tui.NewModel(logger, names)

	bus := game.NewEventBus()
	bus.Subscribe(model)
	bus.Subscribe(transcript)

	g, err := game.New(
		game.WithPlayers(cfg.Game.Players),
		game.WithLogger(logger),
		game.WithEventBus(bus),
	)
	if err != nil {
		return err
	}
	model.SetGame(g)
	logger.Info("Starting match", "match", transcript.MatchID, "players", cfg.Game.Players)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	if winner, ok := g.Winner(); ok {
		logger.Info("Match finished", "match", transcript.MatchID, "winner", winner.Letter)
		fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("Player %s wins!", winner.Letter)))
	} else {
		logger.Info("Match abandoned", "match", transcript.MatchID)
	}

	if err := transcript.Save(g.Snapshot()); err != nil {
		return err
	}
	if fw, ok := writer.(*history.FileWriter); ok {
		fmt.Println(tui.InfoStyle.Render("Transcript: " + fw.Path(transcript.MatchID)))
	}
	return nil
}

func (cmd *PlayCmd) applyOverrides(cfg *config.Config) {
	if cmd.Players != 0 {
		cfg.Game.Players = cmd.Players
	}
	if cmd.LogFile != "" {
		cfg.UI.LogFile = cmd.LogFile
	}
	if cmd.LogLevel != "" {
		cfg.UI.LogLevel = cmd.LogLevel
	}
	if cmd.TranscriptDir != "" {
		cfg.Transcript.Directory = cmd.TranscriptDir
	}
	if cmd.NoColor {
		cfg.UI.NoColor = true
	}
}
