package tui

import (
	"fmt"
	"strings"

	"github.com/lox/chippiles/internal/game"
)

// Prompt returns the instruction for the phase the game is waiting on.
func Prompt(g *game.GameState) string {
	if winner, ok := g.Winner(); ok {
		return fmt.Sprintf("Game over! Player %s wins! Press Enter to exit", winner.Letter)
	}

	switch phase := g.Phase().(type) {
	case game.ChoosePile:
		return "Type which pile you want to play on and press Enter"
	case game.ChooseChip:
		return fmt.Sprintf("Choose chip to play on pile %d (%s) and press Enter",
			phase.Pile(), joinLetters(g.CurrentPlayer().ChipTypes()))
	case game.ChooseNextPlayer:
		return fmt.Sprintf("Choose next player (%s) and press Enter", joinLetters(phase.Eligible()))
	case game.EliminateChip:
		if phase.Deadzone() {
			return fmt.Sprintf("Pile %d goes to the deadzone, press Enter", phase.Pile())
		}
		return fmt.Sprintf("Choose chip to eliminate (%s) and press Enter", joinLetters(g.CapturableLetters()))
	default:
		return ""
	}
}

func joinLetters(letters []game.Letter) string {
	parts := make([]string, len(letters))
	for i, l := range letters {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}

// chipStyle renders one chip in its owner's colour, greyed once the owner
// is out.
func chipStyle(snap game.Snapshot, l game.Letter) string {
	if p, ok := snap.Player(l); ok && p.Eliminated {
		return EliminatedStyle.Render(l.String())
	}
	return PlayerStyle(l).Render(l.String())
}

// renderPiles draws the board, one numbered line per pile, bottom chip first.
// The pile being played or captured is marked.
func renderPiles(snap game.Snapshot) string {
	marked := 0
	switch p := snap.Phase.(type) {
	case game.ChooseChip:
		marked = p.Pile()
	case game.EliminateChip:
		marked = p.Pile()
	}

	var sb strings.Builder
	for i, pile := range snap.Piles {
		n := i + 1
		cursor := " "
		if n == marked {
			cursor = ">"
		}
		fmt.Fprintf(&sb, "%s%2d:", cursor, n)
		for _, chip := range pile {
			sb.WriteString(" ")
			sb.WriteString(chipStyle(snap, chip))
		}
		if i < len(snap.Piles)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderPlayers lists every player's holdings, deadzone count and status.
func renderPlayers(snap game.Snapshot, names map[game.Letter]string) string {
	var sb strings.Builder

	for _, p := range snap.Players {
		style := PlayerStyle(p.Letter)
		label := "Player " + p.Letter.String()
		if name := names[p.Letter]; name != "" {
			label = fmt.Sprintf("%s (%s)", name, p.Letter)
		}

		if p.Eliminated {
			sb.WriteString(EliminatedStyle.Render(label + " is eliminated"))
			sb.WriteString("\n")
			fmt.Fprintf(&sb, "  Deadzone: %d\n", p.DeadChips)
			continue
		}

		if p.Letter == snap.Current {
			label = "> " + label
		}
		sb.WriteString(style.Render(label + ":"))
		sb.WriteString("\n")
		for _, l := range p.ChipTypes() {
			count := p.Held(l)
			if l == p.Letter {
				sb.WriteString(style.Render(fmt.Sprintf("  Own chips: %d", count)))
			} else {
				sb.WriteString(PlayerStyle(l).Render(fmt.Sprintf("  %s's chips: %d", l, count)))
			}
			sb.WriteString("\n")
		}
		if p.TotalChips() == 0 {
			sb.WriteString(InfoStyle.Render("  No chips"))
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "  Deadzone: %d\n", p.DeadChips)
	}

	return strings.TrimRight(sb.String(), "\n")
}
