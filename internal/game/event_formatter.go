package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	Names     map[Letter]string // Display names; letters are used when missing
	ShowPiles bool              // Include pile contents after each play (for transcripts)
	ShowRules bool              // Explain which rule handed over the turn
}

// EventFormatter provides centralized formatting for all game events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format renders any game event as a single human-readable line
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case GameStartEvent:
		return ef.FormatGameStart(e)
	case ChipPlayedEvent:
		return ef.FormatChipPlayed(e)
	case PileCapturedEvent:
		return ef.FormatPileCaptured(e)
	case ChipEliminatedEvent:
		return ef.FormatChipEliminated(e)
	case TurnPassedEvent:
		return ef.FormatTurnPassed(e)
	case PlayerEliminatedEvent:
		return ef.FormatPlayerEliminated(e)
	case GameOverEvent:
		return ef.FormatGameOver(e)
	default:
		return fmt.Sprintf("unknown event %s", event.EventType())
	}
}

// FormatGameStart formats a game start event
func (ef *EventFormatter) FormatGameStart(e GameStartEvent) string {
	names := make([]string, len(e.Players))
	for i, l := range e.Players {
		names[i] = ef.name(l)
	}
	return fmt.Sprintf("*** NEW GAME *** %d players: %s. %s moves first",
		len(e.Players), strings.Join(names, ", "), ef.name(e.First))
}

// FormatChipPlayed formats a chip placement
func (ef *EventFormatter) FormatChipPlayed(e ChipPlayedEvent) string {
	text := fmt.Sprintf("%s: plays %s on pile %d", ef.name(e.Player), e.Chip, e.Pile)
	if ef.opts.ShowPiles {
		text += fmt.Sprintf(" [%s]", FormatPile(e.PileAfter))
	}
	return text
}

// FormatPileCaptured formats a capture
func (ef *EventFormatter) FormatPileCaptured(e PileCapturedEvent) string {
	if e.Deadzoned {
		return fmt.Sprintf("*** CAPTURE *** pile %d on %s (eliminated colour, whole pile to the deadzone)", e.Pile, e.Chip)
	}
	return fmt.Sprintf("*** CAPTURE *** pile %d on %s, %s picks a chip to eliminate", e.Pile, e.Chip, ef.name(e.Resolver))
}

// FormatChipEliminated formats the resolution of a capture
func (ef *EventFormatter) FormatChipEliminated(e ChipEliminatedEvent) string {
	if e.Deadzoned {
		return fmt.Sprintf("Pile %d sent to the deadzone", e.Pile)
	}
	return fmt.Sprintf("%s: eliminates a %s chip and takes %d chips from pile %d", ef.name(e.Receiver), e.Chip, e.Gained, e.Pile)
}

// FormatTurnPassed formats a turn change
func (ef *EventFormatter) FormatTurnPassed(e TurnPassedEvent) string {
	text := fmt.Sprintf("Turn: %s -> %s", ef.name(e.From), ef.name(e.To))
	if !ef.opts.ShowRules {
		return text
	}
	switch e.Reason {
	case TurnLeastRecent:
		text += " (played longest ago on a full pile)"
	case TurnOnlyAbsent:
		text += " (only colour missing from the pile)"
	case TurnChosen:
		text += " (chosen)"
	}
	return text
}

// FormatPlayerEliminated formats an elimination
func (ef *EventFormatter) FormatPlayerEliminated(e PlayerEliminatedEvent) string {
	text := fmt.Sprintf("%s got eliminated. Current player now is %s", ef.name(e.Player), ef.name(e.Current))
	if e.Fallback {
		text += " (turn history exhausted)"
	}
	return text
}

// FormatGameOver formats the end of the game
func (ef *EventFormatter) FormatGameOver(e GameOverEvent) string {
	return fmt.Sprintf("*** GAME OVER *** %s wins!", ef.name(e.Winner))
}

// FormatTurnHistory renders turn history the way it is printed after a
// player hands over the turn: "A -> B -> C"
func FormatTurnHistory(history []Letter) string {
	parts := make([]string, len(history))
	for i, l := range history {
		parts[i] = l.String()
	}
	return strings.Join(parts, " -> ")
}

// FormatPile renders a pile bottom first: "A B C"
func FormatPile(pile []Letter) string {
	parts := make([]string, len(pile))
	for i, l := range pile {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

func (ef *EventFormatter) name(l Letter) string {
	if name, ok := ef.opts.Names[l]; ok && name != "" {
		return fmt.Sprintf("%s (%s)", name, l)
	}
	return "Player " + l.String()
}
