package game

// Player represents one seat in the game. Players live in the GameState arena
// and are addressed by their turn-order index.
type Player struct {
	Letter     Letter
	Color      string
	Chips      []int // Chips held, indexed by the owning player's index
	DeadChips  int   // Own-coloured chips retired to the deadzone
	Eliminated bool
}

func newPlayer(index, players int) *Player {
	letter := LetterAt(index)
	chips := make([]int, players)
	chips[index] = MaxChips
	return &Player{
		Letter: letter,
		Color:  letter.Color(),
		Chips:  chips,
	}
}

// Held returns how many chips of the given colour the player holds.
func (p *Player) Held(l Letter) int {
	i := l.Index()
	if i < 0 || i >= len(p.Chips) {
		return 0
	}
	return p.Chips[i]
}

// TotalChips returns the number of chips held across all colours
func (p *Player) TotalChips() int {
	total := 0
	for _, n := range p.Chips {
		total += n
	}
	return total
}

// ChipTypes returns the colours the player holds at least one chip of.
func (p *Player) ChipTypes() []Letter {
	var types []Letter
	for i, n := range p.Chips {
		if n > 0 {
			types = append(types, LetterAt(i))
		}
	}
	return types
}

// OnlyChipType returns the single colour the player holds, if they hold
// exactly one.
func (p *Player) OnlyChipType() (Letter, bool) {
	types := p.ChipTypes()
	if len(types) != 1 {
		return 0, false
	}
	return types[0], true
}

// IsActive returns true if the player has not been eliminated
func (p *Player) IsActive() bool {
	return !p.Eliminated
}

func (p *Player) clone() Player {
	c := *p
	c.Chips = append([]int(nil), p.Chips...)
	return c
}
