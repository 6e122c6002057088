// Package combat resolves attacks between combatants.
package combat

import (
	"fmt"

	"github.com/samdwyer/rpgbattle/internal/dice"
	"github.com/samdwyer/rpgbattle/internal/gamedata"
)

// Combatant is the interface for any entity that can participate in combat.
// Both heroes and monsters implement this interface.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetAttack() int
	GetAttackKind() gamedata.AttackKind

	// Damage
	CalculateDamage(src dice.Source) int
	ReceiveDamage(amount int)
}

// AttackResult contains the outcome of resolving one attack.
type AttackResult struct {
	Attacker string
	Target   string
	Damage   int  // Damage rolled and applied
	Defeated bool // True if the target went down from this attack
	Message  string
}

// Messages returns the narration lines for the attack in display order:
// the attack itself, the damage dealt and, if the target fell, a defeat notice.
func (r AttackResult) Messages() []string {
	lines := []string{
		r.Message,
		fmt.Sprintf("%s takes %d damage!", r.Target, r.Damage),
	}
	if r.Defeated {
		lines = append(lines, r.Target+" was defeated!")
	}
	return lines
}

// Resolver rolls and applies attack damage.
type Resolver struct {
	rng dice.Source
}

// NewResolver creates a new resolver drawing damage rolls from rng.
func NewResolver(rng dice.Source) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve rolls the attacker's damage, applies it to the target and describes the result.
func (r *Resolver) Resolve(attacker, target Combatant) AttackResult {
	damage := attacker.CalculateDamage(r.rng)
	wasAlive := target.IsAlive()
	target.ReceiveDamage(damage)

	return AttackResult{
		Attacker: attacker.GetName(),
		Target:   target.GetName(),
		Damage:   damage,
		Defeated: wasAlive && !target.IsAlive(),
		Message:  AttackMessage(attacker.GetAttackKind(), attacker.GetName(), target.GetName()),
	}
}

// AttackMessage narrates an attack according to its kind.
func AttackMessage(kind gamedata.AttackKind, attacker, target string) string {
	switch kind {
	case gamedata.AttackMagic:
		return attacker + " casts a spell at " + target + "!"
	default:
		return attacker + " attacks " + target + "!"
	}
}
