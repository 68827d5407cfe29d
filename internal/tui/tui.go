// Package tui is the interactive bubbletea front end for a video poker session.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/game"
)

// GoodbyeMessage is shown when the balance runs out
const GoodbyeMessage = "We have enjoyed taking all of your money. Bye! :D"

const historyHeight = 6

// Model is the Bubble Tea model for one session
type Model struct {
	session *game.Session
	logger  *log.Logger

	// UI components
	keys        keyMap
	help        help.Model
	betInput    textinput.Model
	logViewport viewport.Model

	// State
	gameLog      []string
	message      string
	failed       bool
	showPaytable bool
	paytable     string
	quitting     bool

	width int
}

// New creates a model driving session
func New(session *game.Session, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("bet 1-%d", session.MaxBet())
	ti.Focus()
	ti.CharLimit = 9
	ti.Width = 20
	ti.PromptStyle = display.HeldStyle
	ti.TextStyle = display.InputStyle
	ti.Prompt = "Bet $"

	vp := viewport.New(60, historyHeight)
	vp.SetContent("")

	table, err := display.Paytable(session.Paytable())
	if err != nil {
		table = err.Error()
	}

	return &Model{
		session:     session,
		logger:      logger.WithPrefix("tui"),
		keys:        defaultKeyMap(),
		help:        help.New(),
		betInput:    ti,
		logViewport: vp,
		gameLog:     []string{},
		paytable:    table,
		message:     "Enter a bet to deal",
	}
}

// Run starts the program and blocks until the player quits
func Run(session *game.Session, logger *log.Logger, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(session, logger), opts...).Run()
	return err
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.logViewport.Width = max(msg.Width-2, 1)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Phase() == game.PhaseBroke {
		return m.quit()
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Paytable):
		m.showPaytable = !m.showPaytable
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.session.Phase() == game.PhaseHolding {
		switch {
		case key.Matches(msg, m.keys.Hold):
			pos, _ := strconv.Atoi(msg.String())
			if err := m.session.ToggleHold(pos); err != nil {
				m.setError(err)
			}
		case key.Matches(msg, m.keys.Deal):
			m.draw()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Deal) {
		m.placeBet()
		return m, nil
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Debug("Quitting", "hands", m.session.HandsPlayed(), "balance", m.session.Balance())
	return m, tea.Sequence(tea.ClearScreen, tea.Quit)
}

// placeBet reads the bet input, takes the stake and deals a hand
func (m *Model) placeBet() {
	input := strings.TrimSpace(m.betInput.Value())
	m.betInput.SetValue("")

	amount, err := strconv.Atoi(input)
	if err != nil {
		m.setError(fmt.Errorf("%w: %q is not a number", game.ErrInvalidBet, input))
		return
	}
	if err := m.session.Bet(amount); err != nil {
		m.setError(err)
		return
	}
	if _, err := m.session.Deal(); err != nil {
		m.setError(err)
		return
	}

	m.betInput.Blur()
	m.failed = false
	m.message = "Choose cards to hold, then press enter to draw"
}

// draw replaces the unheld cards and settles the hand
func (m *Model) draw() {
	outcome, err := m.session.Draw()
	if err != nil {
		m.setError(err)
		return
	}

	m.failed = !outcome.Won
	m.message = strings.Join(display.ResultLines(outcome), "  ")
	m.AddLogEntry(fmt.Sprintf("#%d %s  %s  bet $%d paid $%d",
		m.session.HandsPlayed(), deck.Format(outcome.Hand), outcome.Result.Describe(), outcome.Bet, outcome.Payout))

	if m.session.Phase() == game.PhaseBroke {
		m.message = GoodbyeMessage
		return
	}
	m.betInput.Focus()
}

func (m *Model) setError(err error) {
	m.logger.Debug("Rejected input", "error", err)
	m.failed = true
	m.message = err.Error()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(display.MarqueeStyle.Render("VIDEO POKER  Jacks or Better"))
	b.WriteString("\n\n")

	status := display.Balance(m.session.Balance())
	if bet := m.session.CurrentBet(); bet > 0 {
		status += "  " + display.BetStyle.Render(fmt.Sprintf("Bet: $%d", bet))
	}
	b.WriteString(status)
	b.WriteString("\n\n")

	b.WriteString(m.renderHand())
	b.WriteString("\n\n")

	if m.failed {
		b.WriteString(display.LossStyle.Render(m.message))
	} else {
		b.WriteString(display.PromptStyle.Render(m.message))
	}
	b.WriteString("\n\n")

	switch m.session.Phase() {
	case game.PhaseBetting, game.PhaseSettled:
		b.WriteString(m.betInput.View())
		b.WriteString("\n\n")
	case game.PhaseBroke:
		b.WriteString(display.HintStyle.Render("Press any key to exit"))
		b.WriteString("\n\n")
	}

	if m.showPaytable {
		b.WriteString(m.paytable)
		b.WriteString("\n")
	}

	if len(m.gameLog) > 0 {
		logStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(display.DimColor)
		b.WriteString(logStyle.Render(m.logViewport.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHand shows the current hand, or the last settled one between hands
func (m *Model) renderHand() string {
	if m.session.Phase() == game.PhaseHolding {
		held := m.session.Held()
		return display.Cards(m.session.Hand(), held[:])
	}
	if last, ok := m.session.Last(); ok {
		held := make([]bool, len(last.Hand))
		for _, pos := range last.Held {
			held[pos-1] = true
		}
		return display.Cards(last.Hand, held)
	}
	return display.HintStyle.Render("No cards dealt yet")
}

// AddLogEntry appends a line to the hand log and scrolls to it
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns a copy of the hand log
func (m *Model) Log() []string {
	result := make([]string, len(m.gameLog))
	copy(result, m.gameLog)
	return result
}

// Message returns the status line currently shown
func (m *Model) Message() string {
	return m.message
}
