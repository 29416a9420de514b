// Package tui is the terminal front end: a Bubble Tea model that shows the
// board and feeds typed commands to a local hot-seat game.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/chippiles/internal/game"
)

// Model is the Bubble Tea model for a match. Subscribe it to the game's
// event bus before the game is created, then hand it the game with SetGame.
type Model struct {
	game      *game.GameState
	logger    *log.Logger
	formatter *game.EventFormatter
	names     map[game.Letter]string

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	gameLog     []string
	status      string
	statusIsErr bool
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width  int
	height int
}

// NewModel creates a model. names maps letters to display names and may be
// nil.
func NewModel(logger *log.Logger, names map[game.Letter]string) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "pile number, letter, or quit"
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		formatter:   game.NewEventFormatter(game.FormattingOptions{Names: names}),
		names:       names,
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
	}
}

// SetGame attaches the game the model drives
func (m *Model) SetGame(g *game.GameState) {
	m.game = g
}

// OnEvent implements game.EventSubscriber by appending each event to the log.
func (m *Model) OnEvent(event game.GameEvent) {
	m.AddLogEntry(m.formatter.Format(event))

	if e, ok := event.(game.TurnPassedEvent); ok && e.Reason == game.TurnChosen && m.game != nil {
		m.AddLogEntry("Turn history: " + game.FormatTurnHistory(m.game.TurnHistory()))
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				cmd := m.Submit(m.input.Value())
				m.input.SetValue("")
				if cmd != nil {
					return m, cmd
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit handles one line of input. It returns tea.Quit when the player
// quits or acknowledges the end of the game.
func (m *Model) Submit(input string) tea.Cmd {
	if m.game == nil {
		return nil
	}
	if m.game.IsGameOver() {
		m.quitting = true
		return tea.Quit
	}

	cmd, err := ParseCommand(m.game, input)
	if err == nil && cmd.Kind == CmdQuit {
		m.logger.Info("Player quit")
		m.quitting = true
		return tea.Quit
	}
	if err == nil {
		err = cmd.Apply(m.game)
	}
	if err != nil {
		m.logger.Debug("Rejected input", "input", input, "error", err)
		m.setStatus(describeError(err), true)
		return nil
	}

	m.setStatus("", false)
	return nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// describeError turns an operation error into a short message for the
// status line.
func describeError(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidPile):
		return fmt.Sprintf("There is no such pile, pick 1 to %d", game.Rows)
	case errors.Is(err, game.ErrNoChip):
		return "You don't have that chip"
	case errors.Is(err, game.ErrNotEligible):
		return "That player can't take the turn"
	case errors.Is(err, game.ErrNotInPile):
		return "That chip isn't on the captured pile"
	case errors.Is(err, game.ErrUnknownLetter):
		return "Unknown player letter"
	default:
		return err.Error()
	}
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns a copy of the game log
func (m *Model) Log() []string {
	return append([]string(nil), m.gameLog...)
}

// Status returns the status line text
func (m *Model) Status() string {
	return m.status
}

// Quitting reports whether the model has asked the program to exit
func (m *Model) Quitting() bool {
	return m.quitting
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.game == nil || m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.game.Snapshot()

	header := HeaderStyle.Render(" Chip Piles ")
	current := PlayerStyle(snap.Current).Render("Current Player: " + snap.Current.String())
	top := lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", current)

	board := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Padding(0, 1).
		Render(renderPiles(snap))
	players := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Padding(0, 1).
		Render(renderPlayers(snap, m.names))
	middle := lipgloss.JoinHorizontal(lipgloss.Top, board, players)

	action := m.renderActionPane()

	logHeight := max(m.height-lipgloss.Height(top)-lipgloss.Height(middle)-lipgloss.Height(action)-2, 1)
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = logHeight

	logBorder := lipgloss.Color("#626262")
	if m.focusedPane == 0 {
		logBorder = lipgloss.Color("#04B575")
	}
	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(logBorder).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, logPane, action)
}

// renderActionPane renders the prompt, status line and input
func (m *Model) renderActionPane() string {
	var content strings.Builder

	if m.game.IsGameOver() {
		content.WriteString(SuccessStyle.Render(Prompt(m.game)))
	} else {
		content.WriteString(PromptStyle.Render(Prompt(m.game)))
	}
	content.WriteString("\n")

	if m.status != "" {
		if m.statusIsErr {
			content.WriteString(ErrorStyle.Render(m.status))
		} else {
			content.WriteString(WarningStyle.Render(m.status))
		}
		content.WriteString("\n")
	}

	content.WriteString(m.input.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}

	return content.String()
}
