package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/CrystalCaves/internal/game/events"
)

// maxHistory bounds the transition log. A game sees a handful of transitions
// over its life, so hitting the cap means something is looping.
const maxHistory = 64

// State is one phase's lifecycle hooks
type State interface {
	Phase() GamePhase

	// Enter runs after the phase changes; an error puts the old phase back
	Enter(ctx *GameContext) error

	// Exit runs before leaving; errors are logged and ignored
	Exit(ctx *GameContext) error

	// Validate decides whether the context allows entering this phase
	Validate(ctx *GameContext) error
}

// Transition is one entry in the machine's log
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

// StateMachine tracks the engine's lifecycle phase
type StateMachine struct {
	mu       sync.RWMutex
	phase    GamePhase
	states   map[GamePhase]State
	context  *GameContext
	history  []Transition
	eventBus *events.EventBus
}

// NewStateMachine returns a machine in PhaseInitializing. eventBus may be nil.
func NewStateMachine(ctx *GameContext, eventBus *events.EventBus) *StateMachine {
	sm := &StateMachine{
		phase:    PhaseInitializing,
		states:   make(map[GamePhase]State, 3),
		context:  ctx,
		eventBus: eventBus,
	}
	for _, s := range []State{NewInitializingState(), NewPlayingState(), NewErrorState()} {
		sm.states[s.Phase()] = s
	}
	return sm
}

// RegisterState replaces the hooks for a phase
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	sm.states[state.Phase()] = state
	sm.mu.Unlock()
}

func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.phase
}

// TransitionTo moves the machine to target if the phase graph and the
// target's Validate both allow it
func (sm *StateMachine) TransitionTo(target GamePhase, reason string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.transitionLocked(target, reason)
}

func (sm *StateMachine) transitionLocked(target GamePhase, reason string) error {
	from := sm.phase
	if !from.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", from, target)
	}
	next, ok := sm.states[target]
	if !ok {
		return fmt.Errorf("no state implementation for phase %s", target)
	}
	if err := next.Validate(sm.context); err != nil {
		return fmt.Errorf("target state validation failed: %w", err)
	}

	log := sm.context.Logger.With().
		Str("from_phase", from.String()).
		Str("to_phase", target.String()).
		Logger()

	if cur, ok := sm.states[from]; ok {
		if err := cur.Exit(sm.context); err != nil {
			log.Error().Err(err).Msg("Error exiting state")
		}
	}

	sm.phase = target
	if err := next.Enter(sm.context); err != nil {
		sm.phase = from
		return fmt.Errorf("failed to enter state %s: %w", target, err)
	}

	sm.history = append(sm.history, Transition{From: from, To: target, Timestamp: time.Now(), Reason: reason})
	if over := len(sm.history) - maxHistory; over > 0 {
		sm.history = sm.history[over:]
	}

	if sm.eventBus != nil {
		sm.eventBus.Publish(events.NewStateTransitionEvent(sm.context.GameID, from.String(), target.String(), reason))
	}
	log.Info().Str("reason", reason).Msg("State transition completed")
	return nil
}

// GetHistory returns a copy of the transition log, oldest first
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return append([]Transition(nil), sm.history...)
}

func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.context
}

// CanTransitionTo reports whether the phase graph allows moving to target.
// It does not run the target's Validate.
func (sm *StateMachine) CanTransitionTo(target GamePhase) bool {
	return sm.CurrentPhase().CanTransitionTo(target)
}

// Fail records err on the context and moves the machine into PhaseError
func (sm *StateMachine) Fail(err error) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.context.Error = err
	return sm.transitionLocked(PhaseError, err.Error())
}

// Reset clears the log and returns an errored game to initialization
func (sm *StateMachine) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.history = nil
	return sm.transitionLocked(PhaseInitializing, "Reset requested")
}
