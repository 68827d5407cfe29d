// Package console plays a session over a plain line-oriented terminal,
// for pipes and terminals without cursor control.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/game"
	"github.com/lox/videopoker/internal/paytable"
)

// Prompts and messages
const (
	BetPrompt        = "Enter bet (0 > bet < balance): "
	BetRetryPrompt   = "Please enter valid bet: "
	HoldPrompt       = "Enter positions (1-5) of cards to keep (e.g. 1 4 5): "
	RetryPrompt      = "Incorrect input. Please enter again: "
	PlayAgainPrompt  = "Would you like to play again? (y or n): "
	ShowTablePrompt  = "Would you like to see the payout table? (y or n): "
	GoodbyeMessage   = "We have enjoyed taking all of your money. Bye! :D"
	ThanksMessage    = "Thanks for playing!"
	separator        = "----------------------------------------"
	paytableHeader   = "Payout Table         Multiplier   "
	paytableDivider  = "======================================="
	paytableRowSplit = "\t|\t"
)

// errInputClosed ends the loop quietly when the input runs out
var errInputClosed = errors.New("input closed")

// inputLine is one line read from the input, or the error that ended it
type inputLine struct {
	text string
	err  error
}

// Console runs one session against a reader and writer
type Console struct {
	session *game.Session
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger

	lines chan inputLine
	done  chan struct{}
}

// New creates a console for session reading from r and writing to w
func New(session *game.Session, r io.Reader, w io.Writer, logger *log.Logger) *Console {
	return &Console{
		session: session,
		in:      bufio.NewScanner(r),
		out:     w,
		logger:  logger.WithPrefix("console"),
	}
}

// Run plays hands until the player stops, the balance runs out, the input
// ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.lines = make(chan inputLine)
	c.done = make(chan struct{})
	defer close(c.done)
	go c.scan()

	err := c.run(ctx)
	if errors.Is(err, errInputClosed) {
		c.logger.Debug("Input closed", "hands", c.session.HandsPlayed())
		return nil
	}
	return err
}

func (c *Console) run(ctx context.Context) error {
	c.printPaytable()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println(separator)
		c.println(display.Balance(c.session.Balance()))

		if err := c.playHand(ctx); err != nil {
			return err
		}

		c.println("")
		c.printf("Your balance: $%d\n", c.session.Balance())

		if c.session.Phase() == game.PhaseBroke {
			c.println(GoodbyeMessage)
			return nil
		}

		again, err := c.askYesNo(ctx, PlayAgainPrompt)
		if err != nil {
			return err
		}
		if !again {
			c.println(ThanksMessage)
			return nil
		}

		show, err := c.askYesNo(ctx, ShowTablePrompt)
		if err != nil {
			return err
		}
		if show {
			c.printPaytable()
		}
	}
}

// playHand takes a bet, deals, reads the holds and draws
func (c *Console) playHand(ctx context.Context) error {
	c.printf("%s", BetPrompt)
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return err
		}
		amount, err := strconv.Atoi(line)
		if err != nil {
			c.printf("%s", BetRetryPrompt)
			continue
		}
		err = c.session.Bet(amount)
		if err == nil {
			break
		}
		if !errors.Is(err, game.ErrInvalidBet) {
			return err
		}
		c.logger.Debug("Rejected bet", "input", line, "error", err)
		c.printf("%s", BetRetryPrompt)
	}

	hand, err := c.session.Deal()
	if err != nil {
		return err
	}
	c.printf("Hand: %s\n", formatHand(hand))

	c.printf("%s", HoldPrompt)
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return err
		}
		positions, err := game.ParsePositions(line)
		if err != nil {
			c.printf("%s", RetryPrompt)
			continue
		}
		if err := c.session.Hold(positions...); err != nil {
			return err
		}
		break
	}

	outcome, err := c.session.Draw()
	if err != nil {
		return err
	}

	c.println("")
	c.printf("Hand: %s\n", formatHand(outcome.Hand))
	for _, line := range display.ResultLines(outcome) {
		c.printf("\n\t%s", line)
	}
	c.println("")
	return nil
}

// askYesNo prompts until the player answers y or n
func (c *Console) askYesNo(ctx context.Context, prompt string) (bool, error) {
	c.printf("%s", prompt)
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch line {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		c.printf("%s", RetryPrompt)
	}
}

// scan feeds input lines to readLine until the input ends or Run returns.
// A read blocked on the terminal outlives Run; it exits with the next line.
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		select {
		case c.lines <- inputLine{text: c.in.Text()}:
		case <-c.done:
			return
		}
	}
	if err := c.in.Err(); err != nil {
		select {
		case c.lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}:
		case <-c.done:
		}
	}
}

// readLine waits for the next input line or for ctx to be cancelled
func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", errInputClosed
		}
		if line.err != nil {
			return "", line.err
		}
		return strings.TrimSpace(line.text), nil
	}
}

func (c *Console) printPaytable() {
	c.printf("%s", Paytable(c.session.Paytable()))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Paytable renders the pay table in the classic plain layout
func Paytable(pt paytable.Paytable) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(paytableHeader + "\n")
	b.WriteString(paytableDivider + "\n")
	for _, row := range pt.Rows() {
		fmt.Fprintf(&b, "%s%s%d\n", row.Label, paytableRowSplit, row.Multiplier)
	}
	b.WriteString("\n\n\n")
	return b.String()
}

func formatHand(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = display.Card(c)
	}
	return strings.Join(parts, " ")
}
