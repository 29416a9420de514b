// Package simulate plays many random games concurrently and checks the
// game's internal invariants after every move.
package simulate

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/chippiles/internal/game"
	"github.com/lox/chippiles/internal/randutil"
)

// DefaultMaxMoves bounds a single game. Random play nearly always finishes
// well inside it.
const DefaultMaxMoves = 5000

// Config holds configuration for a simulation run
type Config struct {
	Games    int
	Players  int
	Seed     int64
	Workers  int
	MaxMoves int
	Logger   *log.Logger
}

// Result is the outcome of one simulated game
type Result struct {
	Game         int
	Seed         int64
	Winner       game.Letter
	Finished     bool
	Moves        int
	Captures     int
	Deadzoned    int
	Eliminations int
}

// Summary aggregates a run
type Summary struct {
	Games        int
	Finished     int
	Wins         map[game.Letter]int
	Moves        int
	LongestGame  int
	Captures     int
	Deadzoned    int
	Eliminations int
}

// AverageMoves returns the mean number of moves per game
func (s *Summary) AverageMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Moves) / float64(s.Games)
}

// Add folds a game result into the summary
func (s *Summary) Add(r Result) {
	s.Games++
	s.Moves += r.Moves
	s.LongestGame = max(s.LongestGame, r.Moves)
	s.Captures += r.Captures
	s.Deadzoned += r.Deadzoned
	s.Eliminations += r.Eliminations
	if r.Finished {
		s.Finished++
		s.Wins[r.Winner]++
	}
}

// Run plays cfg.Games games across cfg.Workers goroutines. The first game to
// break an invariant cancels the run and its error is returned.
func Run(ctx context.Context, cfg Config) (*Summary, []Result, error) {
	cfg = withDefaults(cfg)
	logger := cfg.Logger.WithPrefix("simulate")

	results := make([]Result, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range cfg.Games {
		seed := randutil.Derive(cfg.Seed, i)
		g.Go(func() error {
			r, err := PlayGame(ctx, cfg.Players, seed, cfg.MaxMoves)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			r.Game = i + 1
			results[i] = r
			logger.Debug("Game finished", "game", r.Game, "winner", r.Winner, "moves", r.Moves)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	summary := &Summary{Wins: make(map[game.Letter]int)}
	for _, r := range results {
		summary.Add(r)
	}
	logger.Info("Simulation complete", "games", summary.Games, "finished", summary.Finished)
	return summary, results, nil
}

// PlayGame plays one random game from seed. It stops after maxMoves moves,
// returning an unfinished result.
func PlayGame(ctx context.Context, players int, seed int64, maxMoves int) (Result, error) {
	result := Result{Seed: seed}

	bus := game.NewEventBus()
	bus.Subscribe(game.EventSubscriberFunc(func(e game.GameEvent) {
		switch e := e.(type) {
		case game.PileCapturedEvent:
			result.Captures++
		case game.ChipEliminatedEvent:
			if e.Deadzoned {
				result.Deadzoned++
			}
		case game.PlayerEliminatedEvent:
			result.Eliminations++
		}
	}))

	g, err := game.New(game.WithPlayers(players), game.WithEventBus(bus))
	if err != nil {
		return result, err
	}
	rng := randutil.New(seed)

	for !g.IsGameOver() && result.Moves < maxMoves {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		before := g.Snapshot()
		if err := RandomMove(g, rng); err != nil {
			return result, fmt.Errorf("move %d in %s: %w", result.Moves+1, before.Phase.Kind(), err)
		}
		result.Moves++
		if err := g.CheckInvariants(); err != nil {
			return result, fmt.Errorf("after move %d: %w", result.Moves, err)
		}
		if err := checkMonotonic(before, g.Snapshot()); err != nil {
			return result, fmt.Errorf("after move %d: %w", result.Moves, err)
		}
	}

	if winner, ok := g.Winner(); ok {
		result.Winner = winner.Letter
		result.Finished = true
	}
	return result, nil
}

// checkMonotonic verifies that eliminations are permanent and that
// eliminated players never reappear in the turn history.
func checkMonotonic(before, after game.Snapshot) error {
	for i, p := range before.Players {
		if p.Eliminated && !after.Players[i].Eliminated {
			return fmt.Errorf("%w: %s was reinstated", game.ErrInvariant, p.Letter)
		}
		if after.Players[i].Eliminated && slices.Contains(after.TurnHistory, p.Letter) {
			return fmt.Errorf("%w: eliminated %s still in turn history", game.ErrInvariant, p.Letter)
		}
	}
	return nil
}

func withDefaults(cfg Config) Config {
	if cfg.Players == 0 {
		cfg.Players = game.DefaultPlayers
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.MaxMoves <= 0 {
		cfg.MaxMoves = DefaultMaxMoves
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return cfg
}
