package gamedata

import (
	"errors"
	"fmt"
)

// AttackKind classifies how a character attacks. It only affects narration.
type AttackKind string

const (
	AttackNormal AttackKind = "normal"
	AttackMagic  AttackKind = "magic"
)

// String returns the display name of the attack kind.
func (k AttackKind) String() string {
	switch k {
	case AttackNormal:
		return "Normal"
	case AttackMagic:
		return "Magic"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the known attack kinds.
func (k AttackKind) Valid() bool {
	return k == AttackNormal || k == AttackMagic
}

// CharacterDef defines a combatant's starting stats.
type CharacterDef struct {
	ID               string     `yaml:"id"`               // Unique identifier (e.g., "goblin")
	Name             string     `yaml:"name"`             // Display name; empty for the player's hero
	HP               int        `yaml:"hp"`               // Starting hit points
	Attack           int        `yaml:"attack"`           // Attack power
	AttackKind       AttackKind `yaml:"attackKind"`       // normal or magic
	PlayerControlled bool       `yaml:"playerControlled"` // Actions chosen by the operator
}

// RosterDef is the structure of roster.yaml.
type RosterDef struct {
	Heroes   []CharacterDef `yaml:"heroes"`
	Monsters []CharacterDef `yaml:"monsters"`
}

// Validate checks the roster for values the battle cannot run with.
func (r *RosterDef) Validate() error {
	if len(r.Heroes) == 0 {
		return errors.New("roster has no heroes")
	}
	if len(r.Monsters) == 0 {
		return errors.New("roster has no monsters")
	}
	for _, group := range [][]CharacterDef{r.Heroes, r.Monsters} {
		for _, def := range group {
			if def.HP <= 0 {
				return fmt.Errorf("character %q: hp must be positive, got %d", def.ID, def.HP)
			}
			if def.Attack <= 0 {
				return fmt.Errorf("character %q: attack must be positive, got %d", def.ID, def.Attack)
			}
			if !def.AttackKind.Valid() {
				return fmt.Errorf("character %q: unknown attack kind %q", def.ID, def.AttackKind)
			}
		}
	}
	for _, def := range r.Monsters {
		if def.PlayerControlled {
			return fmt.Errorf("monster %q cannot be player controlled", def.ID)
		}
	}
	return nil
}

// LoadRoster loads and validates the embedded roster.yaml.
func LoadRoster() (*RosterDef, error) {
	roster, err := Load[RosterDef]("roster.yaml")
	if err != nil {
		return nil, err
	}
	if err := roster.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roster.yaml: %w", err)
	}
	return &roster, nil
}
