// Package history records match transcripts: a header, one line per game
// event and the final standings. Transcripts are write-only logs.
package history

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/chippiles/internal/game"
	"github.com/lox/chippiles/internal/matchid"
)

// Entry is one recorded event line
type Entry struct {
	Time time.Time
	Type game.EventType
	Text string
}

// Transcript collects the events of a single match. Subscribe it to the
// game's event bus before the game is created so the start event is seen.
type Transcript struct {
	MatchID   string
	StartTime time.Time
	Players   []game.Letter
	Entries   []Entry
	Winner    game.Letter
	Finished  bool

	names     map[game.Letter]string
	formatter *game.EventFormatter
	writer    Writer
	logger    *log.Logger
}

// Option configures a Transcript
type Option func(*Transcript)

// WithMatchID overrides the generated match id
func WithMatchID(id string) Option {
	return func(t *Transcript) { t.MatchID = id }
}

// WithNames sets player display names
func WithNames(names map[game.Letter]string) Option {
	return func(t *Transcript) { t.names = names }
}

// WithWriter sets where Save writes the transcript. Default discards it.
func WithWriter(w Writer) Option {
	return func(t *Transcript) { t.writer = w }
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(t *Transcript) { t.logger = logger }
}

// New creates an empty transcript stamped with the clock's current time.
func New(clock quartz.Clock, opts ...Option) *Transcript {
	t := &Transcript{
		StartTime: clock.Now(),
		writer:    NoOpWriter{},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.MatchID == "" {
		t.MatchID = matchid.Generate()
	}
	t.logger = t.logger.WithPrefix("history")
	t.formatter = game.NewEventFormatter(game.FormattingOptions{
		Names:     t.names,
		ShowPiles: true,
		ShowRules: true,
	})
	return t
}

// OnEvent implements game.EventSubscriber
func (t *Transcript) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.GameStartEvent:
		t.Players = append([]game.Letter(nil), e.Players...)
	case game.GameOverEvent:
		t.Winner = e.Winner
		t.Finished = true
	}
	t.Entries = append(t.Entries, Entry{
		Time: event.Timestamp(),
		Type: event.EventType(),
		Text: t.formatter.Format(event),
	})
}

// Text renders the transcript. Standings are taken from the given snapshot,
// which may come from a match that was quit before it finished.
func (t *Transcript) Text(final game.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== MATCH %s ===\n", t.MatchID)
	fmt.Fprintf(&sb, "Date: %s\n", t.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Players: %d\n", len(t.Players))
	for _, l := range t.Players {
		fmt.Fprintf(&sb, "  %s\n", t.displayName(l))
	}
	sb.WriteString("\n")

	sb.WriteString("EVENTS:\n")
	for _, e := range t.Entries {
		fmt.Fprintf(&sb, "[%s] %s\n", e.Time.Format("15:04:05"), e.Text)
	}
	sb.WriteString("\n")

	sb.WriteString("STANDINGS:\n")
	for _, p := range final.Players {
		status := "active"
		switch {
		case t.Finished && p.Letter == t.Winner:
			status = "winner"
		case p.Eliminated:
			status = "eliminated"
		}
		fmt.Fprintf(&sb, "  %s: %d chips held, %d dead (%s)\n",
			t.displayName(p.Letter), p.TotalChips(), p.DeadChips, status)
	}

	if t.Finished {
		fmt.Fprintf(&sb, "\nResult: %s wins\n", t.displayName(t.Winner))
	} else {
		sb.WriteString("\nResult: match abandoned\n")
	}

	return sb.String()
}

// Save renders the transcript and hands it to the configured writer.
func (t *Transcript) Save(final game.Snapshot) error {
	if err := t.writer.WriteTranscript(t.MatchID, t.Text(final)); err != nil {
		return err
	}
	t.logger.Debug("Transcript saved", "match", t.MatchID, "events", len(t.Entries))
	return nil
}

func (t *Transcript) displayName(l game.Letter) string {
	if name := t.names[l]; name != "" {
		return fmt.Sprintf("%s (%s)", name, l)
	}
	return "Player " + l.String()
}
