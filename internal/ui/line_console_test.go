package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/rpgbattle/internal/game"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1", 1},
		{"2", 2},
		{" 2 ", 2},
		{"99", 99},
		{"", 0},
		{"abc", 0},
		{"1a", 0},
		{"-3", -3},
	}

	for _, tt := range tests {
		if got := ParseChoice(tt.input); got != tt.expected {
			t.Errorf("ParseChoice(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestLineConsoleReadsInput(t *testing.T) {
	var out bytes.Buffer
	console := NewLineConsole(strings.NewReader("Arus\nabc\n2\n"), &out)
	ctx := context.Background()

	name, err := console.RequestHeroName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Arus", name)

	code, err := console.RequestActionChoice(ctx, "Arus")
	require.NoError(t, err)
	assert.Equal(t, 0, code, "non-numeric input reads as 0")

	code, err = console.RequestActionChoice(ctx, "Arus")
	require.NoError(t, err)
	assert.Equal(t, 2, code)

	_, err = console.RequestActionChoice(ctx, "Arus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, game.ErrInterrupted))
	assert.True(t, errors.Is(err, io.EOF))

	assert.Contains(t, out.String(), "Enter the hero's name: ")
	assert.Contains(t, out.String(), "What will Arus do? 1: Attack  2: Escape > ")
}

func TestLineConsoleEmit(t *testing.T) {
	var out bytes.Buffer
	console := NewLineConsole(strings.NewReader(""), &out)

	console.Emit("=== Round 1 ===")
	console.Emit("Arus attacks Goblin!")

	assert.Equal(t, "=== Round 1 ===\nArus attacks Goblin!\n", out.String())
}

func TestLineConsoleCancelledContext(t *testing.T) {
	console := NewLineConsole(strings.NewReader("1\n"), io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := console.RequestActionChoice(ctx, "Arus")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineConsolePlaysEscape(t *testing.T) {
	var out bytes.Buffer
	console := NewLineConsole(strings.NewReader("Arus\n7\n2\n"), &out)

	g, err := game.New(game.Config{Seed: 12345}, console)
	require.NoError(t, err)

	result, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.PhaseHeroesEscaped, result.Outcome)
	text := out.String()
	assert.Contains(t, text, "The hero's name is Arus.")
	assert.Contains(t, text, game.MsgInvalidSelection)
	assert.Contains(t, text, "Arus fled from the battle!")
	assert.True(t, strings.HasSuffix(text, game.MsgBattleOver+"\n"))
}

func TestLineConsoleLongLineIsInvalidSelection(t *testing.T) {
	var out bytes.Buffer
	input := "Arus\n" + strings.Repeat("9", 70000) + "\n2\n"
	console := NewLineConsole(strings.NewReader(input), &out)

	g, err := game.New(game.Config{Seed: 12345}, console)
	require.NoError(t, err)

	result, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.PhaseHeroesEscaped, result.Outcome)
	assert.Equal(t, 1, strings.Count(out.String(), game.MsgInvalidSelection))
	assert.Contains(t, out.String(), "Arus fled from the battle!")
}

func TestLineConsoleLastLineWithoutNewline(t *testing.T) {
	console := NewLineConsole(strings.NewReader("Arus\r\n2"), io.Discard)
	ctx := context.Background()

	name, err := console.RequestHeroName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Arus", name)

	code, err := console.RequestActionChoice(ctx, "Arus")
	require.NoError(t, err)
	assert.Equal(t, 2, code)

	_, err = console.RequestActionChoice(ctx, "Arus")
	assert.ErrorIs(t, err, game.ErrInterrupted)
}
