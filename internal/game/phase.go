package game

// PhaseKind names the step of a turn the game is waiting on.
type PhaseKind int

const (
	PhaseChoosePile PhaseKind = iota
	PhaseChooseChip
	PhaseChooseNextPlayer
	PhaseEliminateChip
)

// String returns the string representation of the phase kind
func (k PhaseKind) String() string {
	switch k {
	case PhaseChoosePile:
		return "choose_pile"
	case PhaseChooseChip:
		return "choose_chip"
	case PhaseChooseNextPlayer:
		return "choose_next_player"
	case PhaseEliminateChip:
		return "eliminate_chip"
	default:
		return "unknown"
	}
}

// Phase is the current step of the turn together with the data only that
// step needs. The concrete types are ChoosePile, ChooseChip,
// ChooseNextPlayer and EliminateChip.
type Phase interface {
	Kind() PhaseKind
	sealed()
}

// ChoosePile waits for the current player to pick a pile.
type ChoosePile struct{}

func (ChoosePile) Kind() PhaseKind { return PhaseChoosePile }
func (ChoosePile) sealed()         {}

// ChooseChip waits for the current player to pick which colour to play on the
// selected pile.
type ChooseChip struct {
	pile int
}

func (ChooseChip) Kind() PhaseKind { return PhaseChooseChip }
func (ChooseChip) sealed()         {}

// Pile returns the selected pile number (1-based).
func (p ChooseChip) Pile() int { return p.pile + 1 }

// ChooseNextPlayer waits for the current player to hand the turn to one of
// several eligible players.
type ChooseNextPlayer struct {
	eligible []int
}

func (ChooseNextPlayer) Kind() PhaseKind { return PhaseChooseNextPlayer }
func (ChooseNextPlayer) sealed()         {}

// Eligible returns the letters the turn may be handed to, in turn order.
func (p ChooseNextPlayer) Eligible() []Letter {
	letters := make([]Letter, len(p.eligible))
	for i, idx := range p.eligible {
		letters[i] = LetterAt(idx)
	}
	return letters
}

func (p ChooseNextPlayer) allows(idx int) bool {
	for _, e := range p.eligible {
		if e == idx {
			return true
		}
	}
	return false
}

// EliminateChip waits for the current player to pick the chip of a captured
// pile that goes to the deadzone.
type EliminateChip struct {
	pile     int
	captured int
	deadzone bool
}

func (EliminateChip) Kind() PhaseKind { return PhaseEliminateChip }
func (EliminateChip) sealed()         {}

// Pile returns the captured pile number (1-based).
func (p EliminateChip) Pile() int { return p.pile + 1 }

// Captured returns the colour of the two matching chips on top of the pile.
func (p EliminateChip) Captured() Letter { return LetterAt(p.captured) }

// Deadzone reports whether the captured colour's owner is eliminated. The
// whole pile then goes to the deadzone whichever chip is named.
func (p EliminateChip) Deadzone() bool { return p.deadzone }

func clonePhase(p Phase) Phase {
	if next, ok := p.(ChooseNextPlayer); ok {
		return ChooseNextPlayer{eligible: append([]int(nil), next.eligible...)}
	}
	return p
}
