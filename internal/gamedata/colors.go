package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// PaletteDef assigns a hex color to each kind of battle log line.
type PaletteDef struct {
	Banner   string `yaml:"banner"`   // Round headers and the closing banner
	Defeated string `yaml:"defeated"` // Status lines of fallen characters
	Fallen   string `yaml:"fallen"`   // "X was defeated!" narration
	Spell    string `yaml:"spell"`    // Magic attacks
	Prompt   string `yaml:"prompt"`   // Input prompt
	Text     string `yaml:"text"`     // Everything else
}

// LoadPalette loads the embedded palette.yaml and checks every color parses.
func LoadPalette() (*PaletteDef, error) {
	palette, err := Load[PaletteDef]("palette.yaml")
	if err != nil {
		return nil, err
	}
	for _, hex := range []string{palette.Banner, palette.Defeated, palette.Fallen, palette.Spell, palette.Prompt, palette.Text} {
		if _, err := ParseHexColor(hex); err != nil {
			return nil, fmt.Errorf("invalid palette.yaml: %w", err)
		}
	}
	return &palette, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *PaletteDef {
	palette, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return palette
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
