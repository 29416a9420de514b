package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/chippiles/internal/game"
)

// ErrBadInput is returned for text that is not a command in the current phase.
var ErrBadInput = errors.New("invalid input")

// CommandKind is the game operation a line of input maps to
type CommandKind int

const (
	CmdSelectPile CommandKind = iota
	CmdPlayChip
	CmdChooseChip
	CmdCancel
	CmdChooseNext
	CmdEliminate
	CmdQuit
)

// Command is a parsed line of input
type Command struct {
	Kind   CommandKind
	Pile   int
	Letter game.Letter
}

// ParseCommand interprets input for the phase the game is waiting on.
//
//	choose pile:        "7" selects pile 7, "7 b" plays a B chip on it
//	choose chip:        a letter, or "back" to pick another pile
//	choose next player: a letter
//	eliminate chip:     a letter; empty input resolves a deadzoned pile
//
// "quit" or "q" quits in every phase.
func ParseCommand(g *game.GameState, input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 1 && (fields[0] == "quit" || fields[0] == "q") {
		return Command{Kind: CmdQuit}, nil
	}

	switch phase := g.Phase().(type) {
	case game.ChoosePile:
		if len(fields) == 0 || len(fields) > 2 {
			return Command{}, fmt.Errorf("%w: enter a pile number from 1 to %d", ErrBadInput, game.Rows)
		}
		pile, err := strconv.Atoi(fields[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q is not a pile number", ErrBadInput, fields[0])
		}
		if len(fields) == 1 {
			return Command{Kind: CmdSelectPile, Pile: pile}, nil
		}
		l, err := game.ParseLetter(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdPlayChip, Pile: pile, Letter: l}, nil

	case game.ChooseChip:
		if len(fields) == 1 && (fields[0] == "back" || fields[0] == "cancel") {
			return Command{Kind: CmdCancel}, nil
		}
		l, err := parseSingleLetter(fields)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdChooseChip, Letter: l}, nil

	case game.ChooseNextPlayer:
		l, err := parseSingleLetter(fields)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdChooseNext, Letter: l}, nil

	case game.EliminateChip:
		if len(fields) == 0 && phase.Deadzone() {
			// Any chip will do: the whole pile goes to the deadzone.
			return Command{Kind: CmdEliminate, Letter: g.CapturableLetters()[0]}, nil
		}
		l, err := parseSingleLetter(fields)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdEliminate, Letter: l}, nil

	default:
		return Command{}, fmt.Errorf("%w: unexpected phase %s", ErrBadInput, phase.Kind())
	}
}

func parseSingleLetter(fields []string) (game.Letter, error) {
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: enter a single player letter", ErrBadInput)
	}
	return game.ParseLetter(fields[0])
}

// Apply runs the command against the game. CmdQuit is a no-op.
func (c Command) Apply(g *game.GameState) error {
	switch c.Kind {
	case CmdSelectPile:
		return g.SelectPile(c.Pile)
	case CmdPlayChip:
		return g.PlayChip(c.Pile, c.Letter)
	case CmdChooseChip:
		return g.ChooseChip(c.Letter)
	case CmdCancel:
		return g.CancelSelection()
	case CmdChooseNext:
		return g.ChooseNextPlayer(c.Letter)
	case CmdEliminate:
		return g.EliminateChip(c.Letter)
	case CmdQuit:
		return nil
	default:
		return fmt.Errorf("%w: unknown command %d", ErrBadInput, c.Kind)
	}
}
