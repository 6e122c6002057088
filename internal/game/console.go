package game

import (
	"context"
	"errors"
)

// ErrInterrupted is returned by a Console when the operator abandons input
// (end of input stream, Ctrl-C, Esc).
var ErrInterrupted = errors.New("input interrupted")

// Console is the text boundary between the battle and its operator.
type Console interface {
	// RequestHeroName blocks until the operator enters the hero's name.
	RequestHeroName(ctx context.Context) (string, error)

	// RequestActionChoice blocks until the operator enters an action code for actor.
	// Input that is not a number is reported as 0.
	RequestActionChoice(ctx context.Context, actor string) (int, error)

	// Emit displays one line of narration or status.
	Emit(message string)
}
