package game

import (
	"fmt"
	"slices"
)

// nextTurn is the outcome of next-player determination for a pile.
type nextTurn struct {
	next     int
	reason   TurnReason
	eligible []int // set when the current player must choose
}

// PlayChip places a chip of the given colour from the current player's
// holdings on pile n (1-based). It is valid while choosing a pile, or while
// choosing a chip for the already selected pile n.
//
// A chip matching the pile's top chip captures the pile and moves the game to
// EliminateChip; otherwise the next player is determined from the pile.
func (g *GameState) PlayChip(pile int, chip Letter) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	switch p := g.phase.(type) {
	case ChoosePile:
	case ChooseChip:
		if pile != p.Pile() {
			return fmt.Errorf("%w: pile %d is selected, not %d", ErrWrongPhase, p.Pile(), pile)
		}
	default:
		return fmt.Errorf("%w: waiting on %s, not a chip", ErrWrongPhase, g.phase.Kind())
	}
	return g.play(pile, chip)
}

// SelectPile picks pile n (1-based) for the current player. When the player
// holds a single colour it is played straight away, otherwise the game waits
// in ChooseChip.
func (g *GameState) SelectPile(pile int) error {
	if err := g.requirePhase(PhaseChoosePile); err != nil {
		return err
	}
	if pile < 1 || pile > Rows {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidPile, pile, Rows)
	}

	player := g.players[g.current]
	if chip, ok := player.OnlyChipType(); ok {
		return g.play(pile, chip)
	}
	if player.TotalChips() == 0 {
		return fmt.Errorf("%w: player %s holds no chips", ErrNoChip, player.Letter)
	}

	g.phase = ChooseChip{pile: pile - 1}
	return nil
}

// ChooseChip plays the given colour on the pile picked with SelectPile.
func (g *GameState) ChooseChip(chip Letter) error {
	if err := g.requirePhase(PhaseChooseChip); err != nil {
		return err
	}
	return g.play(g.phase.(ChooseChip).Pile(), chip)
}

// CancelSelection drops the pile picked with SelectPile.
func (g *GameState) CancelSelection() error {
	if err := g.requirePhase(PhaseChooseChip); err != nil {
		return err
	}
	g.phase = ChoosePile{}
	return nil
}

// ChooseNextPlayer hands the turn to one of the eligible players.
func (g *GameState) ChooseNextPlayer(l Letter) error {
	if err := g.requirePhase(PhaseChooseNextPlayer); err != nil {
		return err
	}
	idx, err := g.index(l)
	if err != nil {
		return err
	}
	if !g.phase.(ChooseNextPlayer).allows(idx) {
		return fmt.Errorf("%w: %s", ErrNotEligible, l)
	}

	g.phase = ChoosePile{}
	g.setNextPlayer(idx, TurnChosen)
	return nil
}

func (g *GameState) play(pile int, chip Letter) error {
	if pile < 1 || pile > Rows {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidPile, pile, Rows)
	}
	ci, err := g.index(chip)
	if err != nil {
		return err
	}
	player := g.players[g.current]
	if player.Chips[ci] == 0 {
		return fmt.Errorf("%w: player %s has no %s chips", ErrNoChip, player.Letter, chip)
	}

	row := pile - 1
	after := append(slices.Clone(g.piles[row]), chip)

	if isCapture(after) {
		g.commitPlay(row, ci, after)
		g.capture(row, ci)
		return nil
	}

	// Work out the next player before touching state so an inconsistent
	// pile cannot leave a half-applied move behind.
	turn, err := g.determineNextPlayers(after)
	if err != nil {
		return err
	}

	g.commitPlay(row, ci, after)
	if len(turn.eligible) > 1 {
		g.phase = ChooseNextPlayer{eligible: turn.eligible}
		return nil
	}
	g.phase = ChoosePile{}
	g.setNextPlayer(turn.next, turn.reason)
	return nil
}

func (g *GameState) commitPlay(row, chip int, after []Letter) {
	player := g.players[g.current]
	g.piles[row] = after
	player.Chips[chip]--

	g.bus.Publish(ChipPlayedEvent{
		Player:    player.Letter,
		Chip:      LetterAt(chip),
		Pile:      row + 1,
		PileAfter: slices.Clone(after),
		timestamp: g.clock.Now(),
	})
}

func isCapture(pile []Letter) bool {
	n := len(pile)
	return n > 1 && pile[n-1] == pile[n-2]
}

// capture moves the game to EliminateChip for a pile whose top two chips are
// the given colour. The colour's owner resolves the capture if still active.
func (g *GameState) capture(row, chip int) {
	owner := g.players[chip]
	deadzone := owner.Eliminated
	if !deadzone {
		g.current = chip
	}
	g.phase = EliminateChip{pile: row, captured: chip, deadzone: deadzone}

	g.logger.Debug("Pile captured", "pile", row+1, "colour", owner.Letter, "resolver", LetterAt(g.current), "deadzone", deadzone)
	g.bus.Publish(PileCapturedEvent{
		Pile:      row + 1,
		Chip:      owner.Letter,
		Resolver:  LetterAt(g.current),
		Deadzoned: deadzone,
		timestamp: g.clock.Now(),
	})
}

// determineNextPlayers applies the turn rule to a pile after a non-capturing
// play. If the pile holds every active colour the colour played longest ago
// moves next; otherwise the turn goes to an active colour missing from the
// pile, chosen by the current player when more than one is missing.
// Colours of eliminated players are ignored.
func (g *GameState) determineNextPlayers(pile []Letter) (nextTurn, error) {
	inPile := make([]bool, len(g.players))
	lastSeen := make([]int, len(g.players))
	for i, chip := range pile {
		idx := chip.Index()
		if g.players[idx].IsActive() {
			inPile[idx] = true
			lastSeen[idx] = i
		}
	}

	allPresent := true
	for i, p := range g.players {
		if p.IsActive() && !inPile[i] {
			allPresent = false
			break
		}
	}

	if allPresent {
		best := -1
		for i, p := range g.players {
			if p.IsActive() && (best < 0 || lastSeen[i] < lastSeen[best]) {
				best = i
			}
		}
		if best < 0 {
			return nextTurn{}, fmt.Errorf("%w: no active players", ErrInvariant)
		}
		return nextTurn{next: best, reason: TurnLeastRecent}, nil
	}

	var eligible []int
	for i, p := range g.players {
		if p.IsActive() && !inPile[i] {
			eligible = append(eligible, i)
		}
	}

	switch len(eligible) {
	case 0:
		return nextTurn{}, fmt.Errorf("%w: no eligible next player", ErrInvariant)
	case 1:
		return nextTurn{next: eligible[0], reason: TurnOnlyAbsent}, nil
	default:
		return nextTurn{eligible: eligible}, nil
	}
}
