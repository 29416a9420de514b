package game

import (
	"fmt"
	"slices"
)

// EliminateChip resolves the captured pile by sending one chip of the given
// colour to the deadzone. The colour must be on the captured pile.
//
// If the colour's owner is active, the current player takes every chip of
// the pile except that one. If the owner is eliminated, or the captured
// colour itself belongs to an eliminated player, the whole pile goes to the
// deadzone. Either way the pile is emptied and play returns to ChoosePile.
func (g *GameState) EliminateChip(chip Letter) error {
	if err := g.requirePhase(PhaseEliminateChip); err != nil {
		return err
	}
	phase := g.phase.(EliminateChip)
	ci, err := g.index(chip)
	if err != nil {
		return err
	}
	pile := g.piles[phase.pile]
	if !slices.Contains(pile, chip) {
		return fmt.Errorf("%w: %s not on pile %d", ErrNotInPile, chip, phase.Pile())
	}

	owner := g.players[ci]
	receiver := g.players[g.current]
	event := ChipEliminatedEvent{
		Pile:     phase.Pile(),
		Chip:     chip,
		Receiver: receiver.Letter,
	}

	if owner.IsActive() && !phase.deadzone {
		for _, c := range pile {
			receiver.Chips[c.Index()]++
		}
		receiver.Chips[ci]--
		owner.DeadChips++
		event.Gained = len(pile) - 1
	} else {
		for _, c := range pile {
			g.players[c.Index()].DeadChips++
		}
		event.Deadzoned = true
	}

	g.piles[phase.pile] = nil
	g.phase = ChoosePile{}

	g.logger.Debug("Capture resolved", "pile", event.Pile, "chip", chip, "receiver", receiver.Letter, "gained", event.Gained, "deadzoned", event.Deadzoned)
	event.timestamp = g.clock.Now()
	g.bus.Publish(event)

	// A deadzoned pile can leave the player who captured it empty handed.
	g.eliminationCascade()
	return nil
}
