package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// GameState owns every piece of game data and is the only place rules are
// enforced. All mutation goes through its exported operations, each of which
// either succeeds completely or returns an error and leaves the state as it
// was.
//
// GameState is not safe for concurrent use.
type GameState struct {
	players     []*Player
	current     int
	piles       [Rows][]Letter
	phase       Phase
	turnHistory []int
	over        bool

	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
}

// New creates a game with every player holding MaxChips of their own colour.
// Player A moves first.
func New(opts ...Option) (*GameState, error) {
	cfg := defaultGameConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.players < MinPlayers || cfg.players > MaxPlayers {
		return nil, fmt.Errorf("player count must be between %d and %d, got %d", MinPlayers, MaxPlayers, cfg.players)
	}

	players := make([]*Player, cfg.players)
	for i := range players {
		players[i] = newPlayer(i, cfg.players)
	}

	g := &GameState{
		players:     players,
		current:     0,
		phase:       ChoosePile{},
		turnHistory: []int{0},
		logger:      cfg.logger.WithPrefix("game"),
		clock:       cfg.clock,
		bus:         cfg.bus,
	}

	g.logger.Debug("Game created", "players", len(players))
	g.bus.Publish(GameStartEvent{
		Players:   Letters(len(players)),
		First:     LetterAt(0),
		timestamp: g.clock.Now(),
	})

	return g, nil
}

// Phase returns the step of the turn the game is waiting on
func (g *GameState) Phase() Phase {
	return clonePhase(g.phase)
}

// CurrentPlayer returns the player whose action the game is waiting on
func (g *GameState) CurrentPlayer() *Player {
	return g.players[g.current]
}

// Players returns all players in turn order, eliminated ones included.
func (g *GameState) Players() []*Player {
	return g.players
}

// Player returns the player with the given letter.
func (g *GameState) Player(l Letter) (*Player, error) {
	i, err := g.index(l)
	if err != nil {
		return nil, err
	}
	return g.players[i], nil
}

// ActivePlayers returns the players that have not been eliminated.
func (g *GameState) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range g.players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Pile returns a copy of the chips on pile n (1-based), bottom first.
func (g *GameState) Pile(n int) ([]Letter, error) {
	if n < 1 || n > Rows {
		return nil, fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidPile, n, Rows)
	}
	return append([]Letter(nil), g.piles[n-1]...), nil
}

// Piles returns a copy of every pile in board order.
func (g *GameState) Piles() [][]Letter {
	piles := make([][]Letter, Rows)
	for i, pile := range g.piles {
		piles[i] = append([]Letter(nil), pile...)
	}
	return piles
}

// EligibleNextPlayers returns the letters the turn may be handed to. It is
// empty unless the game is waiting in ChooseNextPlayer.
func (g *GameState) EligibleNextPlayers() []Letter {
	if p, ok := g.phase.(ChooseNextPlayer); ok {
		return p.Eligible()
	}
	return nil
}

// CapturableLetters returns the distinct colours on the captured pile, in
// alphabet order. It is empty unless the game is waiting in EliminateChip.
func (g *GameState) CapturableLetters() []Letter {
	p, ok := g.phase.(EliminateChip)
	if !ok {
		return nil
	}
	seen := make([]bool, len(g.players))
	for _, chip := range g.piles[p.pile] {
		seen[chip.Index()] = true
	}
	var letters []Letter
	for i, ok := range seen {
		if ok {
			letters = append(letters, LetterAt(i))
		}
	}
	return letters
}

// TurnHistory returns the letters of the players that have held the turn,
// oldest first, with eliminated players purged.
func (g *GameState) TurnHistory() []Letter {
	letters := make([]Letter, len(g.turnHistory))
	for i, idx := range g.turnHistory {
		letters[i] = LetterAt(idx)
	}
	return letters
}

// IsGameOver returns true once at most one active player remains
func (g *GameState) IsGameOver() bool {
	return g.countActive() <= 1
}

// Winner returns the last active player once the game is over.
func (g *GameState) Winner() (*Player, bool) {
	if !g.IsGameOver() {
		return nil, false
	}
	for _, p := range g.players {
		if p.IsActive() {
			return p, true
		}
	}
	return nil, false
}

func (g *GameState) countActive() int {
	n := 0
	for _, p := range g.players {
		if p.IsActive() {
			n++
		}
	}
	return n
}

func (g *GameState) index(l Letter) (int, error) {
	i := l.Index()
	if i < 0 || i >= len(g.players) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, l.String())
	}
	return i, nil
}

func (g *GameState) requirePhase(kind PhaseKind) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if g.phase.Kind() != kind {
		return fmt.Errorf("%w: waiting on %s, not %s", ErrWrongPhase, g.phase.Kind(), kind)
	}
	return nil
}
