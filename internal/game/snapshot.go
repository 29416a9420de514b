package game

// Snapshot is a deep copy of all observable game state. Two snapshots taken
// around a failed operation compare equal.
type Snapshot struct {
	Players     []Player
	Current     Letter
	Piles       [][]Letter
	Phase       Phase
	TurnHistory []Letter
}

// Snapshot returns a deep copy of the current state
func (g *GameState) Snapshot() Snapshot {
	players := make([]Player, len(g.players))
	for i, p := range g.players {
		players[i] = p.clone()
	}
	return Snapshot{
		Players:     players,
		Current:     LetterAt(g.current),
		Piles:       g.Piles(),
		Phase:       g.Phase(),
		TurnHistory: g.TurnHistory(),
	}
}

// Player returns the snapshot of the player with the given letter.
func (s Snapshot) Player(l Letter) (Player, bool) {
	i := l.Index()
	if i < 0 || i >= len(s.Players) {
		return Player{}, false
	}
	return s.Players[i], true
}
