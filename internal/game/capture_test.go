package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedPosition leaves B resolving a capture of pile 1 = [A C B B].
func capturedPosition(t *testing.T) (*GameState, *eventRecorder) {
	t.Helper()
	g, rec := newTestGame(t)
	arrange(t, g, arrangement{
		chips: map[Letter][]int{
			'A': {1, 1, 0, 0},
			'B': {0, 0, 0, 0},
			'C': {0, 0, 1, 0},
		},
		piles: map[int][]Letter{1: {'A', 'C', 'B'}},
	})
	require.NoError(t, g.PlayChip(1, 'B'))
	require.Equal(t, PhaseEliminateChip, g.Phase().Kind())
	return g, rec
}

func TestEliminateChipOwnerActive(t *testing.T) {
	t.Parallel()
	g, rec := capturedPosition(t)

	require.NoError(t, g.EliminateChip('C'))

	b, _ := g.Player('B')
	c, _ := g.Player('C')
	assert.Equal(t, []int{1, 2, 0, 0}, b.Chips, "B takes the pile minus one C")
	assert.Equal(t, 1, c.DeadChips)
	assert.Zero(t, b.DeadChips)

	pile, _ := g.Pile(1)
	assert.Empty(t, pile)
	assert.Equal(t, PhaseChoosePile, g.Phase().Kind())
	assert.Equal(t, Letter('B'), g.CurrentPlayer().Letter, "resolver keeps the turn")
	require.NoError(t, g.CheckInvariants())

	eliminated := rec.ofType(EventTypeChipEliminated)
	require.Len(t, eliminated, 1)
	e := eliminated[0].(ChipEliminatedEvent)
	assert.Equal(t, 3, e.Gained)
	assert.Equal(t, Letter('B'), e.Receiver)
	assert.False(t, e.Deadzoned)
}

func TestEliminateOwnColour(t *testing.T) {
	t.Parallel()
	g, _ := capturedPosition(t)

	require.NoError(t, g.EliminateChip('B'))

	b, _ := g.Player('B')
	assert.Equal(t, []int{1, 1, 1, 0}, b.Chips)
	assert.Equal(t, 1, b.DeadChips)
	require.NoError(t, g.CheckInvariants())
}

func TestEliminateChipNotInPile(t *testing.T) {
	t.Parallel()
	g, rec := capturedPosition(t)
	before := g.Snapshot()

	assert.ErrorIs(t, g.EliminateChip('D'), ErrNotInPile)
	assert.ErrorIs(t, g.EliminateChip('X'), ErrUnknownLetter)
	assert.Equal(t, before, g.Snapshot())
	assert.Empty(t, rec.ofType(EventTypeChipEliminated))
}

func TestEliminateChipOfEliminatedPlayer(t *testing.T) {
	t.Parallel()
	g, _ := newTestGame(t)
	// D is out, its chips sit on pile 1 and in A's hand; B captures B.
	arrange(t, g, arrangement{
		chips: map[Letter][]int{
			'A': {2, 1, 0, 1},
			'B': {0, 0, 0, 0},
			'D': {0, 0, 0, 0},
		},
		eliminated: []Letter{'D'},
		piles:      map[int][]Letter{1: {'D', 'B'}},
	})

	require.NoError(t, g.PlayChip(1, 'B'))
	require.Equal(t, Letter('B'), g.CurrentPlayer().Letter)

	require.NoError(t, g.EliminateChip('D'))

	b, _ := g.Player('B')
	d, _ := g.Player('D')
	assert.Equal(t, 0, b.TotalChips(), "naming an eliminated colour deadzones the pile")
	assert.Equal(t, 2, b.DeadChips)
	assert.Equal(t, 1, d.DeadChips)

	// B was left with nothing and drops out; A took the last turn.
	assert.True(t, b.Eliminated)
	assert.Equal(t, Letter('A'), g.CurrentPlayer().Letter)
	require.NoError(t, g.CheckInvariants())
}

func TestCaptureOfEliminatedColour(t *testing.T) {
	t.Parallel()

	// C is out. A holds a C chip and plays it onto pile 1 = [B C].
	setup := func(t *testing.T, aChips []int, aDead int) (*GameState, *eventRecorder) {
		g, rec := newTestGame(t)
		arrange(t, g, arrangement{
			chips: map[Letter][]int{
				'A': aChips,
				'B': {0, 1, 0, 0},
				'C': {0, 0, 0, 0},
			},
			dead:       map[Letter]int{'A': aDead},
			eliminated: []Letter{'C'},
			piles:      map[int][]Letter{1: {'B', 'C'}},
		})
		return g, rec
	}

	t.Run("whole pile to the deadzone", func(t *testing.T) {
		g, rec := setup(t, []int{2, 0, 1, 0}, 0)

		require.NoError(t, g.PlayChip(1, 'C'))
		phase, ok := g.Phase().(EliminateChip)
		require.True(t, ok)
		assert.True(t, phase.Deadzone())
		assert.Equal(t, Letter('A'), g.CurrentPlayer().Letter, "no live owner to hand the capture to")

		captured := rec.ofType(EventTypePileCaptured)
		require.Len(t, captured, 1)
		assert.True(t, captured[0].(PileCapturedEvent).Deadzoned)

		// Naming a live colour still deadzones everything.
		require.NoError(t, g.EliminateChip('B'))

		a, _ := g.Player('A')
		b, _ := g.Player('B')
		c, _ := g.Player('C')
		assert.Equal(t, []int{2, 0, 0, 0}, a.Chips)
		assert.Equal(t, 1, b.DeadChips)
		assert.Equal(t, 2, c.DeadChips)
		assert.Equal(t, Letter('A'), g.CurrentPlayer().Letter)
		require.NoError(t, g.CheckInvariants())
	})

	t.Run("capturing the last chip eliminates the capturer", func(t *testing.T) {
		g, rec := setup(t, []int{0, 0, 1, 0}, 2)

		require.NoError(t, g.PlayChip(1, 'C'))
		require.NoError(t, g.EliminateChip('C'))

		a, _ := g.Player('A')
		assert.True(t, a.Eliminated)
		assert.Equal(t, Letter('B'), g.CurrentPlayer().Letter, "history exhausted, lowest active player")
		assert.Empty(t, g.TurnHistory())

		out := rec.ofType(EventTypePlayerEliminated)
		require.Len(t, out, 1)
		assert.True(t, out[0].(PlayerEliminatedEvent).Fallback)
		require.NoError(t, g.CheckInvariants())
	})
}
