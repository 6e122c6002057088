package entity

import (
	"errors"

	"github.com/samdwyer/rpgbattle/internal/dice"
)

// ErrEmptyParty is returned when a party is created without members.
var ErrEmptyParty = errors.New("party must have at least one member")

// Party is an ordered group of characters fighting together.
// Member order is turn order. Defeated members stay in the party.
type Party struct {
	Name    string // Display name (e.g., "Heroes")
	members []*Character
}

// NewParty creates a party from the given members.
func NewParty(name string, members ...*Character) (*Party, error) {
	if len(members) == 0 {
		return nil, ErrEmptyParty
	}
	m := make([]*Character, len(members))
	copy(m, members)
	return &Party{Name: name, members: m}, nil
}

// Members returns every member in turn order, including defeated ones.
func (p *Party) Members() []*Character {
	return p.members
}

// Len returns the number of members, alive or not.
func (p *Party) Len() int {
	return len(p.members)
}

// LivingMembers returns the members still alive, in turn order.
func (p *Party) LivingMembers() []*Character {
	alive := make([]*Character, 0, len(p.members))
	for _, m := range p.members {
		if m.IsAlive() {
			alive = append(alive, m)
		}
	}
	return alive
}

// AliveMemberCount returns the number of members still alive.
func (p *Party) AliveMemberCount() int {
	count := 0
	for _, m := range p.members {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// IsDestroyed returns true if no member is alive.
func (p *Party) IsDestroyed() bool {
	return p.AliveMemberCount() == 0
}

// PickRandomLivingTarget selects a living member uniformly at random.
// Returns nil if the party is destroyed.
func (p *Party) PickRandomLivingTarget(src dice.Source) *Character {
	alive := p.LivingMembers()
	if len(alive) == 0 {
		return nil
	}
	return alive[src.Intn(len(alive))]
}

// TotalHP returns the sum of all members' current HP.
func (p *Party) TotalHP() int {
	total := 0
	for _, m := range p.members {
		total += m.GetHP()
	}
	return total
}
