package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/rpgbattle/internal/combat"
	"github.com/samdwyer/rpgbattle/internal/dice"
	"github.com/samdwyer/rpgbattle/internal/entity"
	"github.com/samdwyer/rpgbattle/internal/telemetry"
)

// Fixed narration lines.
const (
	MsgInvalidSelection = "Invalid selection."
	MsgVictory          = "All monsters have been defeated. The heroes are victorious!"
	MsgDefeat           = "The heroes have been defeated..."
	MsgBattleOver       = "--- Battle Over ---"
)

// ErrInvalidTransition is returned when the battle is asked to move to a phase
// its current phase does not lead to, e.g. running a finished battle again.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Result summarizes a finished (or aborted) battle.
type Result struct {
	BattleID uuid.UUID
	Outcome  Phase
	Rounds   int
}

// Battle runs one fight between the hero party and the monster party.
type Battle struct {
	id       uuid.UUID
	heroes   *entity.Party
	monsters *entity.Party
	console  Console
	rng      dice.Source
	resolver *combat.Resolver
	log      logr.Logger

	phase           Phase
	round           int
	turnCount       int
	escapeRequested bool
}

// NewBattle creates a battle between heroes and monsters.
// All randomness (damage rolls and targeting) is drawn from rng.
func NewBattle(heroes, monsters *entity.Party, console Console, rng dice.Source) *Battle {
	return &Battle{
		id:       uuid.New(),
		heroes:   heroes,
		monsters: monsters,
		console:  console,
		rng:      rng,
		resolver: combat.NewResolver(rng),
		log:      logr.Discard(),
		phase:    PhaseNotStarted,
	}
}

// SetLogger sets the logger used for engine diagnostics.
func (b *Battle) SetLogger(l logr.Logger) {
	b.log = l.WithValues("battle", b.id.String())
}

// ID returns the battle's unique identifier.
func (b *Battle) ID() uuid.UUID { return b.id }

// Phase returns the current phase.
func (b *Battle) Phase() Phase { return b.phase }

// EscapeRequested reports whether a hero has fled.
func (b *Battle) EscapeRequested() bool { return b.escapeRequested }

// Run plays rounds until one side is destroyed or a hero escapes,
// then announces the outcome.
// It returns early with an error only if the console fails to deliver input.
func (b *Battle) Run(ctx context.Context) (Result, error) {
	if err := b.transition(PhaseRoundInProgress); err != nil {
		return b.result(), err
	}
	b.startBattle(ctx)

	for !b.phase.IsTerminal() {
		if err := b.playRound(ctx); err != nil {
			b.endBattle(ctx, err)
			return b.result(), err
		}
	}

	b.announceOutcome()
	b.endBattle(ctx, nil)
	return b.result(), nil
}

func (b *Battle) result() Result {
	return Result{BattleID: b.id, Outcome: b.phase, Rounds: b.round}
}

// playRound plays one round: status, hero phase, then monster phase.
// The end of the battle is checked after each phase separately.
func (b *Battle) playRound(ctx context.Context) error {
	b.round++

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.round")
	span.SetAttributes(attribute.Int("round", b.round))
	defer span.End()

	b.log.V(1).Info("round start", "round", b.round)
	b.emitStatus()

	if err := b.heroPhase(ctx); err != nil {
		return err
	}
	if b.escapeRequested {
		return b.transition(PhaseHeroesEscaped)
	}
	if next, over := b.checkBattleEnd(); over {
		return b.transition(next)
	}

	b.monsterPhase(ctx)
	if next, over := b.checkBattleEnd(); over {
		return b.transition(next)
	}
	return nil
}

// emitStatus shows the round header and every character, defeated ones included.
func (b *Battle) emitStatus() {
	b.console.Emit(fmt.Sprintf("=== Round %d ===", b.round))
	for _, party := range []*entity.Party{b.heroes, b.monsters} {
		for _, m := range party.Members() {
			b.console.Emit(m.Status())
		}
	}
}

// heroPhase gives each living hero a turn in order.
// An escape ends the phase at once; later heroes do not act.
func (b *Battle) heroPhase(ctx context.Context) error {
	for _, hero := range b.heroes.Members() {
		if !hero.IsAlive() {
			continue
		}

		action, err := b.chooseAction(ctx, hero)
		if err != nil {
			return err
		}

		switch action {
		case ActionEscape:
			b.escape(ctx, hero)
			return nil
		default:
			b.attack(ctx, hero, b.monsters)
		}
	}
	return nil
}

// chooseAction asks the operator for a player-controlled hero's action until a valid
// code arrives. Other heroes always attack.
func (b *Battle) chooseAction(ctx context.Context, hero *entity.Character) (Action, error) {
	if !hero.PlayerControlled {
		return ActionAttack, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		code, err := b.console.RequestActionChoice(ctx, hero.Name)
		if err != nil {
			return 0, fmt.Errorf("request action for %s: %w", hero.Name, err)
		}

		if action, ok := ParseAction(code); ok {
			b.log.V(1).Info("action chosen", "actor", hero.Name, "action", action.String())
			return action, nil
		}

		b.log.V(1).Info("invalid action code", "actor", hero.Name, "code", code)
		b.console.Emit(MsgInvalidSelection)
	}
}

// monsterPhase lets each living monster attack a random living hero.
func (b *Battle) monsterPhase(ctx context.Context) {
	for _, monster := range b.monsters.Members() {
		if !monster.IsAlive() {
			continue
		}
		b.attack(ctx, monster, b.heroes)
	}
}

// attack resolves one attack against a random living member of targets.
// Nothing happens if targets has no living member.
func (b *Battle) attack(ctx context.Context, attacker *entity.Character, targets *entity.Party) {
	target := targets.PickRandomLivingTarget(b.rng)
	if target == nil {
		return
	}

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.turn")
	defer span.End()

	result := b.resolver.Resolve(attacker, target)
	for _, line := range result.Messages() {
		b.console.Emit(line)
	}

	span.SetAttributes(
		attribute.String("actor", attacker.GetName()),
		attribute.String("action", ActionAttack.String()),
		attribute.String("attack_kind", string(attacker.GetAttackKind())),
		attribute.String("target", target.GetName()),
		attribute.Int("damage", result.Damage),
		attribute.Bool("target_defeated", result.Defeated),
		attribute.Int("round", b.round),
	)
	b.turnCount++
}

// escape ends the hero phase and, with it, the battle.
func (b *Battle) escape(ctx context.Context, hero *entity.Character) {
	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.turn")
	span.SetAttributes(
		attribute.String("actor", hero.GetName()),
		attribute.String("action", ActionEscape.String()),
		attribute.Int("round", b.round),
	)
	span.End()

	b.console.Emit(hero.Name + " fled from the battle!")
	b.escapeRequested = true
	b.turnCount++
}

// checkBattleEnd returns the terminal phase if either party is destroyed.
// Hero destruction is checked first.
func (b *Battle) checkBattleEnd() (Phase, bool) {
	if b.heroes.IsDestroyed() {
		return PhaseHeroesDefeated, true
	}
	if b.monsters.IsDestroyed() {
		return PhaseHeroesVictorious, true
	}
	return b.phase, false
}

// announceOutcome emits the closing lines for the terminal phase.
// A victory is announced without the closing banner.
func (b *Battle) announceOutcome() {
	switch b.phase {
	case PhaseHeroesVictorious:
		b.console.Emit(MsgVictory)
	case PhaseHeroesDefeated:
		b.console.Emit(MsgDefeat)
		b.console.Emit(MsgBattleOver)
	case PhaseHeroesEscaped:
		b.console.Emit(MsgBattleOver)
	}
}

func (b *Battle) transition(next Phase) error {
	if !b.phase.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.phase, next)
	}
	b.log.V(1).Info("phase change", "from", b.phase.String(), "to", next.String(), "round", b.round)
	b.phase = next
	return nil
}

func (b *Battle) startBattle(ctx context.Context) {
	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.id", b.id.String()),
		attribute.Int("hero_count", b.heroes.Len()),
		attribute.Int("monster_count", b.monsters.Len()),
	)
	span.End()
}

func (b *Battle) endBattle(ctx context.Context, err error) {
	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", b.id.String()),
		attribute.String("outcome", b.phase.String()),
		attribute.Int("rounds", b.round),
		attribute.Int("turns_taken", b.turnCount),
		attribute.Int("hero_hp_remaining", b.heroes.TotalHP()),
		attribute.Int("monster_hp_remaining", b.monsters.TotalHP()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
