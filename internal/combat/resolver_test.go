package combat

import (
	"testing"

	"github.com/samdwyer/rpgbattle/internal/dice"
	"github.com/samdwyer/rpgbattle/internal/gamedata"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name   string
	hp     int
	attack int
	kind   gamedata.AttackKind
	roll   int // fixed damage returned by CalculateDamage
}

func newMockCombatant(name string, hp, attack int, kind gamedata.AttackKind) *mockCombatant {
	return &mockCombatant{name: name, hp: hp, attack: attack, kind: kind, roll: attack}
}

func (m *mockCombatant) GetName() string                    { return m.name }
func (m *mockCombatant) IsAlive() bool                      { return m.hp > 0 }
func (m *mockCombatant) GetHP() int                         { return m.hp }
func (m *mockCombatant) GetAttack() int                     { return m.attack }
func (m *mockCombatant) GetAttackKind() gamedata.AttackKind { return m.kind }
func (m *mockCombatant) CalculateDamage(dice.Source) int    { return m.roll }

func (m *mockCombatant) ReceiveDamage(amount int) {
	if amount <= 0 {
		return
	}
	m.hp -= amount
	if m.hp < 0 {
		m.hp = 0
	}
}

// zeroSource always rolls the lowest value.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func TestResolveAppliesDamage(t *testing.T) {
	resolver := NewResolver(zeroSource{})

	warrior := newMockCombatant("Warrior", 30, 6, gamedata.AttackNormal)
	goblin := newMockCombatant("Goblin", 30, 8, gamedata.AttackNormal)

	result := resolver.Resolve(warrior, goblin)

	if result.Damage != 6 {
		t.Errorf("Expected 6 damage, got %d", result.Damage)
	}
	if goblin.GetHP() != 24 {
		t.Errorf("Expected target HP 24, got %d", goblin.GetHP())
	}
	if result.Defeated {
		t.Error("Target should not be defeated")
	}
	if result.Message != "Warrior attacks Goblin!" {
		t.Errorf("Unexpected message %q", result.Message)
	}
}

func TestResolveDefeat(t *testing.T) {
	resolver := NewResolver(zeroSource{})

	wizard := newMockCombatant("Wizard", 20, 8, gamedata.AttackMagic)
	slime := newMockCombatant("Slime", 5, 6, gamedata.AttackNormal)

	result := resolver.Resolve(wizard, slime)

	if !result.Defeated {
		t.Error("Expected target to be defeated")
	}
	if slime.GetHP() != 0 {
		t.Errorf("Expected target HP 0, got %d", slime.GetHP())
	}

	lines := result.Messages()
	want := []string{
		"Wizard casts a spell at Slime!",
		"Slime takes 8 damage!",
		"Slime was defeated!",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestResolveZeroDamageNoDefeatNotice(t *testing.T) {
	resolver := NewResolver(zeroSource{})

	weak := newMockCombatant("Weakling", 10, 1, gamedata.AttackNormal)
	weak.roll = 0
	target := newMockCombatant("Goblin", 3, 8, gamedata.AttackNormal)

	result := resolver.Resolve(weak, target)

	if result.Defeated {
		t.Error("Zero damage should not defeat the target")
	}
	if len(result.Messages()) != 2 {
		t.Errorf("Expected attack and damage lines only, got %v", result.Messages())
	}
}

func TestAttackMessage(t *testing.T) {
	tests := []struct {
		kind     gamedata.AttackKind
		expected string
	}{
		{gamedata.AttackNormal, "A attacks B!"},
		{gamedata.AttackMagic, "A casts a spell at B!"},
	}

	for _, tt := range tests {
		if got := AttackMessage(tt.kind, "A", "B"); got != tt.expected {
			t.Errorf("AttackMessage(%s) = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
