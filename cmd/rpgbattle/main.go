// Package main is the entry point for rpgbattle.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rpgbattle/internal/game"
	"github.com/samdwyer/rpgbattle/internal/telemetry"
	"github.com/samdwyer/rpgbattle/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_RPGBATTLE_API_KEY and RPGBATTLE_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	if err := run(context.Background()); err != nil {
		log.Fatalf("Battle error: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	logger := telemetry.NewLogger(cfg.Debug)

	shutdown, err := telemetry.Setup(ctx, logger)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Battle will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	console, closeConsole, err := newConsole(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize console: %w", err)
	}

	g, err := game.New(cfg, console)
	if err != nil {
		closeConsole()
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	g.SetLogger(logger)

	result, err := g.Run(ctx)

	// The screen has to be released before anything else is printed.
	closeConsole()
	if err != nil {
		return err
	}

	logger.V(1).Info("battle finished",
		"battle", result.BattleID.String(),
		"outcome", result.Outcome.String(),
		"rounds", result.Rounds,
		"seed", g.Seed(),
	)
	return nil
}

// newConsole builds the operator console selected by the config.
// The returned function releases it.
func newConsole(cfg game.Config) (game.Console, func(), error) {
	switch cfg.Console {
	case game.ConsoleScreen:
		screen, err := ui.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		console := ui.NewScreenConsole(screen)
		return console, func() {
			screen.Close()
			// Replay the battle log so it survives the screen teardown.
			for _, line := range console.Lines() {
				fmt.Println(line)
			}
		}, nil
	default:
		return ui.NewLineConsole(os.Stdin, os.Stdout), func() {}, nil
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Without an API key nothing is set and tracing stays disabled.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_RPGBATTLE_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_RPGBATTLE_DATASET")
	if dataset == "" {
		dataset = "rpgbattle" // default dataset name
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
