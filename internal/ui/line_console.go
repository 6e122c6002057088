package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/rpgbattle/internal/game"
)

// LineConsole is a game.Console over plain text streams, one line per message.
type LineConsole struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineConsole creates a console reading operator input from in and writing to out.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Emit writes message on its own line.
func (c *LineConsole) Emit(message string) {
	fmt.Fprintln(c.out, message)
}

// RequestHeroName prompts for and reads the hero's name.
func (c *LineConsole) RequestHeroName(ctx context.Context) (string, error) {
	fmt.Fprint(c.out, heroNamePrompt)
	return c.readLine(ctx)
}

// RequestActionChoice prompts actor for an action code.
func (c *LineConsole) RequestActionChoice(ctx context.Context, actor string) (int, error) {
	fmt.Fprint(c.out, actionPrompt(actor))
	line, err := c.readLine(ctx)
	if err != nil {
		return 0, err
	}
	return ParseChoice(line), nil
}

// readLine returns the next input line without its line ending, however long it is.
// End of input is reported as game.ErrInterrupted wrapping io.EOF.
func (c *LineConsole) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// A last line without a newline still counts.
		if line == "" {
			return "", fmt.Errorf("%w: %w", game.ErrInterrupted, io.EOF)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ensure LineConsole implements game.Console
var _ game.Console = (*LineConsole)(nil)
