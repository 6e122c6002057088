package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/rpgbattle/internal/gamedata"
)

// Styles holds one style per kind of log line.
type Styles struct {
	Banner   tcell.Style
	Defeated tcell.Style
	Fallen   tcell.Style
	Spell    tcell.Style
	Prompt   tcell.Style
	Text     tcell.Style
}

// StylesFromPalette builds the line styles from palette colors.
func StylesFromPalette(p *gamedata.PaletteDef) Styles {
	fg := func(hex string) tcell.Style {
		return tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(hex))
	}
	return Styles{
		Banner:   fg(p.Banner).Bold(true),
		Defeated: fg(p.Defeated),
		Fallen:   fg(p.Fallen),
		Spell:    fg(p.Spell),
		Prompt:   fg(p.Prompt),
		Text:     fg(p.Text),
	}
}

// Renderer handles drawing the battle log and prompt to the screen.
type Renderer struct {
	screen *Screen
	styles Styles
}

// NewRenderer creates a new renderer for the given screen using the embedded palette.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: StylesFromPalette(gamedata.MustLoadPalette()),
	}
}

// Render draws the most recent log lines that fit, with the prompt and
// pending input on the bottom row.
func (r *Renderer) Render(lines []string, prompt, input string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	if height <= 0 || width <= 0 {
		return
	}

	// Bottom row is reserved for the prompt.
	logRows := height - 1
	start := 0
	if len(lines) > logRows {
		start = len(lines) - logRows
	}
	for y, line := range lines[start:] {
		r.drawText(0, y, width, line, r.lineStyle(line))
	}

	inputX := r.drawText(0, height-1, width, prompt, r.styles.Prompt)
	cursorX := r.drawText(inputX, height-1, width, input, r.styles.Text)
	if prompt != "" {
		r.screen.ShowCursor(cursorX, height-1)
	} else {
		r.screen.HideCursor()
	}

	r.screen.Show()
}

// drawText writes text starting at x on row y, clipped to width, and returns
// the column after the last cell written. Wide graphemes take two cells.
func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		runes := g.Runes()
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

// lineStyle picks a style for a log line based on what it narrates.
func (r *Renderer) lineStyle(line string) tcell.Style {
	switch {
	case strings.HasPrefix(line, "==="), strings.HasPrefix(line, "---"):
		return r.styles.Banner
	case strings.HasSuffix(line, "(defeated)"):
		return r.styles.Defeated
	case strings.HasSuffix(line, "was defeated!"):
		return r.styles.Fallen
	case strings.Contains(line, "casts a spell"):
		return r.styles.Spell
	default:
		return r.styles.Text
	}
}
