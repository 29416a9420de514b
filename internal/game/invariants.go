package game

import (
	"errors"
	"fmt"
	"slices"
)

// CheckInvariants verifies the properties every reachable state must have:
// chips of each colour are conserved, eliminated players hold nothing and are
// absent from turn history, and the current player is valid.
func (g *GameState) CheckInvariants() error {
	var errs []error

	onPiles := make([]int, len(g.players))
	for _, pile := range g.piles {
		for _, chip := range pile {
			i := chip.Index()
			if i < 0 || i >= len(g.players) {
				errs = append(errs, fmt.Errorf("pile holds unknown chip %q", chip.String()))
				continue
			}
			onPiles[i]++
		}
	}

	for i, owner := range g.players {
		total := onPiles[i] + owner.DeadChips
		for _, p := range g.players {
			total += p.Chips[i]
		}
		if total != MaxChips {
			errs = append(errs, fmt.Errorf("colour %s: %d chips accounted for, want %d", owner.Letter, total, MaxChips))
		}
	}

	for i, p := range g.players {
		if p.Eliminated && p.TotalChips() > 0 {
			errs = append(errs, fmt.Errorf("eliminated player %s holds %d chips", p.Letter, p.TotalChips()))
		}
		if p.Eliminated && slices.Contains(g.turnHistory, i) {
			errs = append(errs, fmt.Errorf("eliminated player %s is in turn history", p.Letter))
		}
	}

	if g.current < 0 || g.current >= len(g.players) {
		errs = append(errs, fmt.Errorf("current player index %d out of range", g.current))
	} else if g.players[g.current].Eliminated && !g.IsGameOver() {
		errs = append(errs, fmt.Errorf("current player %s is eliminated", LetterAt(g.current)))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	return nil
}
