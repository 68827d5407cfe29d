// Package display renders cards, results and tables for the terminal.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/lox/videopoker/internal/game"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/lox/videopoker/internal/simulator"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// LostMessage is shown when a hand pays nothing
const LostMessage = "Sorry, you lost!"

// ConfigureColor switches every renderer to plain ASCII when noColor is set
// or the environment asks for it (NO_COLOR, CLICOLOR=0). It reports whether
// colour stays enabled.
func ConfigureColor(noColor bool) bool {
	if noColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
		return false
	}
	return true
}

// Card renders a single card, red suits in red
func Card(c deck.Card) string {
	if c.IsRed() {
		return RedSuitStyle.Render(c.String())
	}
	return BlackSuitStyle.Render(c.String())
}

// Cards renders a hand as a row of cards with a row of labels beneath:
// HELD for held cards and the 1-based position otherwise.
func Cards(cards []deck.Card, held []bool) string {
	cols := make([]string, 0, len(cards))
	for i, c := range cards {
		label := HintStyle.Render(strconv.Itoa(i + 1))
		if i < len(held) && held[i] {
			label = HeldStyle.Render("HELD")
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center,
			slotStyle.Render(Card(c)),
			slotStyle.Render(label),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// ResultLines returns the unstyled announcement for a settled hand: the
// hand description when it names ranks, then the winning line or the
// losing message. A losing hand is always named, including one whose line
// the table pays nothing.
func ResultLines(o game.Outcome) []string {
	var lines []string
	switch {
	case o.Result.Category == evaluator.NoPair:
		lines = append(lines, "No pair")
	case !o.Won:
		lines = append(lines, o.Result.Describe())
	case o.Result.Category == evaluator.OnePair,
		o.Result.Category == evaluator.ThreeOfAKind,
		o.Result.Category == evaluator.FourOfAKind:
		lines = append(lines, o.Result.Describe())
	}
	if o.Won {
		lines = append(lines, o.Line.String()+"!")
	} else {
		lines = append(lines, LostMessage)
	}
	return lines
}

// Result renders the announcement for a settled hand
func Result(o game.Outcome) string {
	lines := ResultLines(o)
	last := len(lines) - 1
	for i, line := range lines[:last] {
		lines[i] = PromptStyle.Render(line)
	}
	if o.Won {
		lines[last] = WinStyle.Render(fmt.Sprintf("%s  +$%d", lines[last], o.Payout))
	} else {
		lines[last] = LossStyle.Render(lines[last])
	}
	return strings.Join(lines, "\n")
}

// Balance renders the player's balance
func Balance(balance int) string {
	return BalanceStyle.Render(fmt.Sprintf("Balance: $%d", balance))
}

// Paytable renders the paying lines as a table, strongest first
func Paytable(pt paytable.Paytable) (string, error) {
	data := pterm.TableData{{"Hand", "Multiplier"}}
	for _, row := range pt.Rows() {
		data = append(data, []string{row.Label, strconv.Itoa(row.Multiplier)})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

// Report renders a simulation report: a frequency table per category
// followed by the money summary.
func Report(r simulator.Report) (string, error) {
	data := pterm.TableData{{"Hand", "Count", "Frequency"}}
	categories := evaluator.Categories()
	for i := len(categories) - 1; i >= 0; i-- {
		c := categories[i]
		data = append(data, []string{
			c.String(),
			strconv.Itoa(r.Counts[c]),
			fmt.Sprintf("%.4f%%", 100*r.Frequency(c)),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return "", err
	}

	lo, hi := r.RTPInterval()
	var b strings.Builder
	b.WriteString(table)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hands:    %d\n", r.Hands)
	fmt.Fprintf(&b, "Wagered:  $%d\n", r.Wagered)
	fmt.Fprintf(&b, "Returned: $%d\n", r.Returned)
	fmt.Fprintf(&b, "RTP:      %.2f%% (95%% CI %.2f%% to %.2f%%)\n", 100*r.RTP(), 100*lo, 100*hi)
	fmt.Fprintf(&b, "Elapsed:  %s\n", r.Elapsed)
	return b.String(), nil
}
