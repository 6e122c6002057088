package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgbattle/internal/game"
)

// ScreenConsole is a full-screen game.Console: a scrolling battle log with an input line.
type ScreenConsole struct {
	screen   *Screen
	renderer *Renderer
	lines    []string
}

// NewScreenConsole creates a console drawing on screen.
func NewScreenConsole(screen *Screen) *ScreenConsole {
	return &ScreenConsole{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// Emit appends a line to the battle log and redraws.
func (c *ScreenConsole) Emit(message string) {
	c.lines = append(c.lines, message)
	c.renderer.Render(c.lines, "", "")
}

// Lines returns the battle log so far.
func (c *ScreenConsole) Lines() []string {
	return c.lines
}

// RequestHeroName reads the hero's name from the input line.
func (c *ScreenConsole) RequestHeroName(ctx context.Context) (string, error) {
	return c.readLine(ctx, heroNamePrompt)
}

// RequestActionChoice reads an action code for actor from the input line.
func (c *ScreenConsole) RequestActionChoice(ctx context.Context, actor string) (int, error) {
	line, err := c.readLine(ctx, actionPrompt(actor))
	if err != nil {
		return 0, err
	}
	return ParseChoice(line), nil
}

// readLine collects key presses until Enter.
// Esc, Ctrl-C or a closed screen abandon input with game.ErrInterrupted.
func (c *ScreenConsole) readLine(ctx context.Context, prompt string) (string, error) {
	var input []rune
	c.renderer.Render(c.lines, prompt, "")

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		ev := c.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return "", game.ErrInterrupted
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", game.ErrInterrupted
			case tcell.KeyEnter:
				return string(input), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		}
		c.renderer.Render(c.lines, prompt, string(input))
	}
}

// Ensure ScreenConsole implements game.Console
var _ game.Console = (*ScreenConsole)(nil)
