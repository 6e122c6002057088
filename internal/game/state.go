// Package game provides the battle engine and the setup that drives it.
package game

// Phase represents where a battle is in its lifecycle.
type Phase int

const (
	// PhaseNotStarted - battle created, no round played yet
	PhaseNotStarted Phase = iota
	// PhaseRoundInProgress - rounds are being played
	PhaseRoundInProgress
	// PhaseHeroesVictorious - all monsters defeated
	PhaseHeroesVictorious
	// PhaseHeroesDefeated - all heroes defeated
	PhaseHeroesDefeated
	// PhaseHeroesEscaped - a hero fled, no winner
	PhaseHeroesEscaped
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRoundInProgress:
		return "round_in_progress"
	case PhaseHeroesVictorious:
		return "heroes_victorious"
	case PhaseHeroesDefeated:
		return "heroes_defeated"
	case PhaseHeroesEscaped:
		return "heroes_escaped"
	default:
		return "unknown"
	}
}

// IsTerminal returns true for phases that end the battle.
func (p Phase) IsTerminal() bool {
	return p == PhaseHeroesVictorious || p == PhaseHeroesDefeated || p == PhaseHeroesEscaped
}

var phaseTransitions = map[Phase][]Phase{
	PhaseNotStarted:      {PhaseRoundInProgress},
	PhaseRoundInProgress: {PhaseHeroesVictorious, PhaseHeroesDefeated, PhaseHeroesEscaped},
}

// CanTransitionTo reports whether a battle in phase p may move to next.
func (p Phase) CanTransitionTo(next Phase) bool {
	for _, allowed := range phaseTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Action is a hero's choice for its turn. The values are the codes the operator enters.
type Action int

const (
	ActionAttack Action = 1
	ActionEscape Action = 2
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// ParseAction maps an operator-entered code to an action.
// Any code other than 1 or 2 is invalid.
func ParseAction(code int) (Action, bool) {
	switch Action(code) {
	case ActionAttack, ActionEscape:
		return Action(code), true
	default:
		return 0, false
	}
}
