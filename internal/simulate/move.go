package simulate

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/chippiles/internal/game"
)

// RandomMove makes one legal move for whoever the game is waiting on.
// Chip plays alternate between PlayChip and the SelectPile/ChooseChip flow
// so both entry points are exercised.
func RandomMove(g *game.GameState, rng *rand.Rand) error {
	if g.IsGameOver() {
		return game.ErrGameOver
	}

	switch phase := g.Phase().(type) {
	case game.ChoosePile:
		player := g.CurrentPlayer()
		types := player.ChipTypes()
		if len(types) == 0 {
			return fmt.Errorf("%w: %s holds no chips on its turn", game.ErrInvariant, player.Letter)
		}
		pile := rng.IntN(game.Rows) + 1
		if rng.IntN(2) == 0 {
			return g.PlayChip(pile, pick(rng, types))
		}
		return g.SelectPile(pile)

	case game.ChooseChip:
		return g.ChooseChip(pick(rng, g.CurrentPlayer().ChipTypes()))

	case game.ChooseNextPlayer:
		return g.ChooseNextPlayer(pick(rng, phase.Eligible()))

	case game.EliminateChip:
		return g.EliminateChip(pick(rng, g.CapturableLetters()))

	default:
		return fmt.Errorf("unexpected phase %T", phase)
	}
}

func pick(rng *rand.Rand, letters []game.Letter) game.Letter {
	return letters[rng.IntN(len(letters))]
}
