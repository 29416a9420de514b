package game

import (
	"fmt"
	"strings"
)

const (
	// MaxChips is the number of own-coloured chips each player starts with.
	MaxChips = 2
	// Rows is the number of piles on the board.
	Rows = 20
	// DefaultPlayers is the player count used when none is configured.
	DefaultPlayers = 4
	// MinPlayers is the smallest game that can produce a winner.
	MinPlayers = 2
	// MaxPlayers is the size of the player alphabet.
	MaxPlayers = len(playerColors)
)

// playerColors pairs each letter of the alphabet with its display colour.
var playerColors = [...]string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00"}

// Letter identifies a player and the colour of that player's chips.
type Letter byte

// LetterAt returns the letter of the player at the given turn-order index.
func LetterAt(index int) Letter {
	return Letter('A' + index)
}

// Index returns the turn-order index of the letter.
func (l Letter) Index() int {
	return int(l - 'A')
}

// String returns the letter as a one character string
func (l Letter) String() string {
	return string(rune(l))
}

// Color returns the display colour for the letter, or the empty string when
// the letter is outside the alphabet.
func (l Letter) Color() string {
	i := l.Index()
	if i < 0 || i >= len(playerColors) {
		return ""
	}
	return playerColors[i]
}

// ParseLetter parses a single case-insensitive player letter.
func ParseLetter(s string) (Letter, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, s)
	}
	l := Letter(strings.ToUpper(s)[0])
	if l.Index() < 0 || l.Index() >= MaxPlayers {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, s)
	}
	return l, nil
}

// Letters returns the letters of the first n players in turn order.
func Letters(n int) []Letter {
	letters := make([]Letter, n)
	for i := range letters {
		letters[i] = LetterAt(i)
	}
	return letters
}
