package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Console kinds selectable through RPGBATTLE_CONSOLE.
const (
	ConsoleLine   = "line"
	ConsoleScreen = "screen"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible battles.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Console selects the operator interface: ConsoleLine or ConsoleScreen.
	Console string

	// Debug enables verbose engine logging.
	Debug bool
}

// DefaultConfig returns the configuration used when no environment overrides are set.
func DefaultConfig() Config {
	return Config{Console: ConsoleLine}
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv reads the configuration through getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv("RPGBATTLE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid RPGBATTLE_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if v := getenv("RPGBATTLE_CONSOLE"); v != "" {
		switch kind := strings.ToLower(strings.TrimSpace(v)); kind {
		case ConsoleLine, ConsoleScreen:
			cfg.Console = kind
		default:
			return cfg, fmt.Errorf("invalid RPGBATTLE_CONSOLE %q: want %q or %q", v, ConsoleLine, ConsoleScreen)
		}
	}

	if v := getenv("RPGBATTLE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid RPGBATTLE_DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}
