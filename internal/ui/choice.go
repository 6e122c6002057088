package ui

import (
	"strconv"
	"strings"
)

// ParseChoice converts operator input to an action code.
// Anything that is not an integer becomes 0, which the battle rejects.
func ParseChoice(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0
	}
	return n
}

const (
	heroNamePrompt = "Enter the hero's name: "
	actionMenu     = "1: Attack  2: Escape"
)

func actionPrompt(actor string) string {
	return "What will " + actor + " do? " + actionMenu + " > "
}
