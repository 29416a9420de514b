package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/chippiles/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newTestModel wires a model to a fresh game the way the play command does.
func newTestModel(t *testing.T, players int, names map[game.Letter]string) (*Model, *game.GameState) {
	t.Helper()
	ConfigureColor(true)

	bus := game.NewEventBus()
	m := NewModel(quietLogger(), names)
	bus.Subscribe(m)

	g, err := game.New(game.WithPlayers(players), game.WithEventBus(bus), game.WithClock(quartz.NewMock(t)))
	require.NoError(t, err)
	m.SetGame(g)
	return m, g
}

func submitAll(t *testing.T, m *Model, inputs ...string) {
	t.Helper()
	for _, in := range inputs {
		require.Nil(t, m.Submit(in), "input %q", in)
		require.Empty(t, m.Status(), "input %q", in)
	}
}

func TestParseCommandChoosePile(t *testing.T) {
	_, g := newTestModel(t, 4, nil)

	tests := []struct {
		input   string
		want    Command
		wantErr error
	}{
		{"7", Command{Kind: CmdSelectPile, Pile: 7}, nil},
		{"  12 ", Command{Kind: CmdSelectPile, Pile: 12}, nil},
		{"3 a", Command{Kind: CmdPlayChip, Pile: 3, Letter: 'A'}, nil},
		{"quit", Command{Kind: CmdQuit}, nil},
		{"Q", Command{Kind: CmdQuit}, nil},
		{"", Command{}, ErrBadInput},
		{"x", Command{}, ErrBadInput},
		{"1 2 3", Command{}, ErrBadInput},
		{"4 z", Command{}, game.ErrUnknownLetter},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(g, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandLetterPhases(t *testing.T) {
	m, g := newTestModel(t, 4, nil)

	// Pile 1 is missing B, C and D after A plays, so A must choose.
	submitAll(t, m, "1")
	assert.Equal(t, game.PhaseChooseNextPlayer, g.Phase().Kind())

	cmd, err := ParseCommand(g, "c")
	require.NoError(t, err)
	assert.Equal(t, Command{Kind: CmdChooseNext, Letter: 'C'}, cmd)

	_, err = ParseCommand(g, "")
	assert.ErrorIs(t, err, ErrBadInput)
	_, err = ParseCommand(g, "c d")
	assert.ErrorIs(t, err, ErrBadInput)
	_, err = ParseCommand(g, "back")
	assert.ErrorIs(t, err, game.ErrUnknownLetter)
}

func TestSubmitPlaysAndHandsOver(t *testing.T) {
	m, g := newTestModel(t, 4, map[game.Letter]string{'A': "Alice"})

	submitAll(t, m, "1", "b")
	assert.Equal(t, game.Letter('B'), g.CurrentPlayer().Letter)
	assert.Equal(t, []game.Letter{'A', 'B'}, g.TurnHistory())

	entries := m.Log()
	assert.Contains(t, entries, "Alice (A): plays A on pile 1")
	assert.Contains(t, entries, "Turn: Alice (A) -> Player B")
	assert.Contains(t, entries, "Turn history: A -> B")
}

func TestSubmitRejectsBadInput(t *testing.T) {
	m, g := newTestModel(t, 4, nil)
	before := g.Snapshot()

	assert.Nil(t, m.Submit("21"))
	assert.Contains(t, m.Status(), "no such pile")

	assert.Nil(t, m.Submit("2 b"))
	assert.Equal(t, "You don't have that chip", m.Status())

	assert.Nil(t, m.Submit("hello"))
	assert.Contains(t, m.Status(), "not a pile number")

	assert.Equal(t, before, g.Snapshot())

	// A good move clears the status line.
	submitAll(t, m, "2")
}

func TestSubmitChooseChipAndCancel(t *testing.T) {
	m, g := newTestModel(t, 3, nil)

	// A opens pile 1 for B, C completes it and A moves on to pile 2 before
	// handing back to C, who captures pile 1 on C.
	submitAll(t, m, "1", "b", "1", "1", "2", "c", "1")
	require.Equal(t, game.PhaseEliminateChip, g.Phase().Kind())
	assert.Equal(t, "Choose chip to eliminate (A, B, C) and press Enter", Prompt(g))

	// C eliminates an A chip and takes the other three.
	submitAll(t, m, "a")
	c, err := g.Player('C')
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, c.Chips)
	assert.Equal(t, game.Letter('C'), g.CurrentPlayer().Letter)

	// C holds two colours so selecting a pile waits for a chip.
	submitAll(t, m, "5")
	require.Equal(t, game.PhaseChooseChip, g.Phase().Kind())
	assert.Equal(t, "Choose chip to play on pile 5 (B, C) and press Enter", Prompt(g))

	submitAll(t, m, "back")
	assert.Equal(t, game.PhaseChoosePile, g.Phase().Kind())

	submitAll(t, m, "5", "b")
	pile, err := g.Pile(5)
	require.NoError(t, err)
	assert.Equal(t, []game.Letter{'B'}, pile)
}

func TestPrompts(t *testing.T) {
	m, g := newTestModel(t, 4, nil)
	assert.Equal(t, "Type which pile you want to play on and press Enter", Prompt(g))

	submitAll(t, m, "1")
	assert.Equal(t, "Choose next player (B, C, D) and press Enter", Prompt(g))
}

func TestGameOverQuitsOnEnter(t *testing.T) {
	m, g := newTestModel(t, 2, nil)

	submitAll(t, m, "1", "1", "2", "2")
	require.True(t, g.IsGameOver())
	assert.Equal(t, "Game over! Player B wins! Press Enter to exit", Prompt(g))
	assert.Contains(t, m.Log(), "*** GAME OVER *** Player B wins!")

	cmd := m.Submit("")
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting())
}

func TestQuitCommand(t *testing.T) {
	m, _ := newTestModel(t, 4, nil)

	cmd := m.Submit("quit")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestUpdateHandlesKeys(t *testing.T) {
	m, g := newTestModel(t, 4, nil)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	m.input.SetValue("3")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, game.PhaseChooseNextPlayer, g.Phase().Kind())
	assert.Empty(t, m.input.Value())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting())
}

func TestViewRendersBoard(t *testing.T) {
	m, g := newTestModel(t, 3, map[game.Letter]string{'B': "Bob"})
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})

	submitAll(t, m, "4", "c")
	require.Equal(t, game.Letter('C'), g.CurrentPlayer().Letter)

	view := m.View()
	assert.Contains(t, view, "Current Player: C")
	assert.Contains(t, view, " 4: A")
	assert.Contains(t, view, "20:")
	assert.Contains(t, view, "Bob (B):")
	assert.Contains(t, view, "Own chips: 1")
	assert.Contains(t, view, "> Player C:")
	assert.Contains(t, view, "Type which pile you want to play on")
}

func TestRenderPlayersShowsEliminated(t *testing.T) {
	m, g := newTestModel(t, 2, nil)
	submitAll(t, m, "1", "1", "2", "2")

	text := renderPlayers(g.Snapshot(), nil)
	assert.Contains(t, text, "Player A is eliminated")
	assert.Contains(t, text, "No chips")
	assert.Equal(t, 2, strings.Count(text, "Deadzone: 0"))
}
