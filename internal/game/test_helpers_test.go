package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

// eventRecorder collects published events for assertions
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) ofType(et EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}

// newTestGame creates a game with a quiet logger, a mock clock and an event
// recorder subscribed to its bus.
func newTestGame(t *testing.T, opts ...Option) (*GameState, *eventRecorder) {
	t.Helper()

	bus := NewEventBus()
	rec := &eventRecorder{}
	bus.Subscribe(rec)

	base := []Option{
		WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})),
		WithClock(quartz.NewMock(t)),
		WithEventBus(bus),
	}
	g, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return g, rec
}

// arrange overwrites holdings, deadzone counts and piles so a test can start
// from a specific position. Colours are listed in letter order.
type arrangement struct {
	chips      map[Letter][]int
	dead       map[Letter]int
	eliminated []Letter
	piles      map[int][]Letter // 1-based pile number
	current    Letter
	history    []Letter
	phase      Phase
}

func arrange(t *testing.T, g *GameState, a arrangement) {
	t.Helper()

	for l, chips := range a.chips {
		require.Len(t, chips, len(g.players))
		g.players[l.Index()].Chips = append([]int(nil), chips...)
	}
	for l, n := range a.dead {
		g.players[l.Index()].DeadChips = n
	}
	for _, l := range a.eliminated {
		g.players[l.Index()].Eliminated = true
	}
	for n, pile := range a.piles {
		g.piles[n-1] = append([]Letter(nil), pile...)
	}
	if a.current != 0 {
		g.current = a.current.Index()
	}
	if a.history != nil {
		g.turnHistory = nil
		for _, l := range a.history {
			g.turnHistory = append(g.turnHistory, l.Index())
		}
	}
	if a.phase != nil {
		g.phase = a.phase
	}

	require.NoError(t, g.CheckInvariants(), "arranged position must be consistent")
}

func chooseNext(letters ...Letter) ChooseNextPlayer {
	eligible := make([]int, len(letters))
	for i, l := range letters {
		eligible[i] = l.Index()
	}
	return ChooseNextPlayer{eligible: eligible}
}
