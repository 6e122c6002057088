package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rpgbattle/internal/dice"
	"github.com/samdwyer/rpgbattle/internal/entity"
	"github.com/samdwyer/rpgbattle/internal/gamedata"
	"github.com/samdwyer/rpgbattle/internal/telemetry"
)

// DefaultHeroName is used when the operator enters a blank name.
const DefaultHeroName = "Hero"

// Game sets up a battle from the embedded roster and runs it.
type Game struct {
	cfg     Config
	console Console
	roster  *gamedata.RosterDef
	rng     dice.Source
	seed    int64 // seed behind rng; 0 once a custom source is set
	log     logr.Logger
}

// New creates a new game instance talking to the operator through console.
func New(cfg Config, console Console) (*Game, error) {
	roster, err := gamedata.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	seed := dice.ResolveSeed(cfg.Seed)
	return &Game{
		cfg:     cfg,
		console: console,
		roster:  roster,
		rng:     dice.New(seed),
		seed:    seed,
		log:     logr.Discard(),
	}, nil
}

// SetLogger sets the logger passed on to the battle engine.
func (g *Game) SetLogger(l logr.Logger) {
	g.log = l
}

// SetRandomSource replaces the seeded source built from the config.
func (g *Game) SetRandomSource(src dice.Source) {
	g.rng = src
	g.seed = 0
}

// Seed returns the seed the game's rolls are drawn from. Running again with it
// in Config.Seed replays the battle. It is 0 after SetRandomSource.
func (g *Game) Seed() int64 {
	return g.seed
}

// Run asks for the hero's name, builds both parties and plays the battle to its end.
func (g *Game) Run(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("game")
	initCtx, initSpan := tracer.Start(ctx, "game.init")

	name, err := g.console.RequestHeroName(initCtx)
	if err != nil {
		initSpan.End()
		return Result{}, fmt.Errorf("request hero name: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultHeroName
	}
	g.console.Emit(fmt.Sprintf("The hero's name is %s.", name))

	heroes, monsters, err := g.buildParties(name)
	if err != nil {
		initSpan.End()
		return Result{}, err
	}

	initSpan.SetAttributes(
		attribute.String("hero.name", name),
		attribute.Int("party.heroes", heroes.Len()),
		attribute.Int("party.monsters", monsters.Len()),
	)
	if g.seed != 0 {
		initSpan.SetAttributes(attribute.Int64("seed", g.seed))
	}
	initSpan.End()

	battle := NewBattle(heroes, monsters, g.console, g.rng)
	battle.SetLogger(g.log)
	return battle.Run(ctx)
}

// buildParties creates fresh characters from the roster.
// The player-controlled hero without a roster name takes heroName.
func (g *Game) buildParties(heroName string) (*entity.Party, *entity.Party, error) {
	heroes, err := g.buildParty("Heroes", g.roster.Heroes, heroName)
	if err != nil {
		return nil, nil, err
	}
	monsters, err := g.buildParty("Monsters", g.roster.Monsters, heroName)
	if err != nil {
		return nil, nil, err
	}
	return heroes, monsters, nil
}

func (g *Game) buildParty(name string, defs []gamedata.CharacterDef, heroName string) (*entity.Party, error) {
	members := make([]*entity.Character, 0, len(defs))
	for i := range defs {
		c := entity.NewCharacterFromDef(&defs[i])
		if c.Name == "" {
			if c.PlayerControlled {
				c.Name = heroName
			} else {
				c.Name = defs[i].ID
			}
		}
		members = append(members, c)
	}

	party, err := entity.NewParty(name, members...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", strings.ToLower(name), err)
	}
	return party, nil
}
