package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseInitializing - board generation, level loading
	PhaseInitializing GamePhase = iota

	// PhasePlaying - commands are accepted; there is no terminal phase after it
	PhasePlaying

	// PhaseError - setup failed and the board is unusable
	PhaseError
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhasePlaying:
		return "Playing"
	case PhaseError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// CanReceiveCommands returns true if player commands are processed in this phase
func (p GamePhase) CanReceiveCommands() bool {
	return p == PhasePlaying
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhasePlaying, PhaseError}
	case PhaseError:
		return []GamePhase{PhaseInitializing}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) GamePhase {
	switch s {
	case "Playing":
		return PhasePlaying
	case "Error":
		return PhaseError
	default:
		return PhaseInitializing
	}
}
