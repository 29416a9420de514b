package main

import (
	"fmt"
	"time"

	"github.com/lox/chippiles/internal/game"
	"github.com/lox/chippiles/internal/simulate"
	"github.com/lox/chippiles/internal/tui"
)

// SimulateCmd plays random games and reports how they went.
type SimulateCmd struct {
	Games    int   `short:"n" default:"1000" help:"Number of games to play"`
	Seed     int64 `default:"0" help:"RNG seed (0 for random)"`
	Workers  int   `short:"w" default:"0" help:"Concurrent games (0 = one per CPU)"`
	Players  int   `short:"p" default:"4" help:"Number of players (2-4)"`
	MaxMoves int   `default:"5000" help:"Give up on a game after this many moves"`
	Verbose  bool  `help:"Verbose logging"`
}

func (cmd *SimulateCmd) Run() error {
	logger := setupConsoleLogger(cmd.Verbose)

	if cmd.Players < game.MinPlayers || cmd.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d", game.MinPlayers, game.MaxPlayers)
	}
	if cmd.Games <= 0 {
		return fmt.Errorf("games must be positive")
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	start := time.Now()
	summary, _, err := simulate.Run(ctx, simulate.Config{
		Games:    cmd.Games,
		Players:  cmd.Players,
		Seed:     seed,
		Workers:  cmd.Workers,
		MaxMoves: cmd.MaxMoves,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	printSummary(summary, cmd.Players, seed, time.Since(start))
	return nil
}

func printSummary(s *simulate.Summary, players int, seed int64, elapsed time.Duration) {
	fmt.Println(tui.HeaderStyle.Render(" Simulation "))
	fmt.Printf("Seed:          %d\n", seed)
	fmt.Printf("Games:         %d (%d finished) in %s\n", s.Games, s.Finished, elapsed.Round(time.Millisecond))
	fmt.Printf("Moves:         %.1f avg, %d longest\n", s.AverageMoves(), s.LongestGame)
	fmt.Printf("Captures:      %d (%d to the deadzone)\n", s.Captures, s.Deadzoned)
	fmt.Printf("Eliminations:  %d\n", s.Eliminations)
	fmt.Println()

	fmt.Println(tui.InfoStyle.Render("Wins by seat:"))
	for _, l := range game.Letters(players) {
		wins := s.Wins[l]
		pct := 0.0
		if s.Finished > 0 {
			pct = 100 * float64(wins) / float64(s.Finished)
		}
		fmt.Println(tui.PlayerStyle(l).Render(fmt.Sprintf("  %s: %5d  %5.1f%%", l, wins, pct)))
	}
}
