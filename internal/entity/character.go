// Package entity provides the combatants and parties that fight in a battle.
package entity

import (
	"fmt"

	"github.com/samdwyer/rpgbattle/internal/combat"
	"github.com/samdwyer/rpgbattle/internal/dice"
	"github.com/samdwyer/rpgbattle/internal/gamedata"
)

// DamageVariance is how far a damage roll may stray from attack power, in either direction.
const DamageVariance = 3

// Character is a single combatant, hero or monster.
type Character struct {
	Name             string              // Display name
	Attack           int                 // Attack power
	Kind             gamedata.AttackKind // Attack kind (narration only)
	PlayerControlled bool                // Actions chosen by the operator

	hp    int
	alive bool
}

// NewCharacter creates a character with the given starting stats.
// A negative hp is treated as 0, leaving the character defeated.
func NewCharacter(name string, hp, attack int, kind gamedata.AttackKind, playerControlled bool) *Character {
	if hp < 0 {
		hp = 0
	}
	return &Character{
		Name:             name,
		Attack:           attack,
		Kind:             kind,
		PlayerControlled: playerControlled,
		hp:               hp,
		alive:            hp > 0,
	}
}

// NewCharacterFromDef creates a character from a roster definition.
func NewCharacterFromDef(def *gamedata.CharacterDef) *Character {
	return NewCharacter(def.Name, def.HP, def.Attack, def.AttackKind, def.PlayerControlled)
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the character's name.
func (c *Character) GetName() string { return c.Name }

// IsAlive returns true if the character has HP remaining.
func (c *Character) IsAlive() bool { return c.alive }

// GetHP returns current HP.
func (c *Character) GetHP() int { return c.hp }

// GetAttack returns attack power.
func (c *Character) GetAttack() int { return c.Attack }

// GetAttackKind returns how the character attacks.
func (c *Character) GetAttackKind() gamedata.AttackKind { return c.Kind }

// CalculateDamage rolls damage uniformly in [Attack-DamageVariance, Attack+DamageVariance].
// Rolls below zero are clamped to 0.
func (c *Character) CalculateDamage(src dice.Source) int {
	damage := dice.Range(src, c.Attack-DamageVariance, c.Attack+DamageVariance)
	if damage < 0 {
		return 0
	}
	return damage
}

// ReceiveDamage subtracts amount from HP, clamping at 0.
// Negative amounts are ignored.
func (c *Character) ReceiveDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.hp -= amount
	if c.hp <= 0 {
		c.hp = 0
		c.alive = false
	}
}

// Status returns the round-start status line for the character.
func (c *Character) Status() string {
	line := fmt.Sprintf("%s  HP:%d  ATK:%d", c.Name, c.hp, c.Attack)
	if !c.alive {
		line += "  (defeated)"
	}
	return line
}

// Ensure Character implements combat.Combatant
var _ combat.Combatant = (*Character)(nil)
