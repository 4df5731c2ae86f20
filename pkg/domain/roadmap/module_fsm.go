package roadmap

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration.
// These must remain as untyped string constants for statekit.StateID
// compatibility. Values are kept in sync with ModuleStatus in status.go.
const (
	StatePending    = "pending"
	StateInProgress = "in_progress"
	StateCompleted  = "completed"
	StateSkipped    = "skipped"
)

// init validates at startup that FSM state constants match ModuleStatus
// values, so the machine and the value object cannot drift apart.
func init() {
	stateMap := map[string]ModuleStatus{
		StatePending:    StatusPending,
		StateInProgress: StatusInProgress,
		StateCompleted:  StatusCompleted,
		StateSkipped:    StatusSkipped,
	}

	for fsmState, status := range stateMap {
		if fsmState != string(status) {
			panic(fmt.Sprintf("FSM state %q does not match ModuleStatus %q - constants are out of sync", fsmState, status))
		}
	}
}

// ModuleContext carries state data for the progress machine.
type ModuleContext struct {
	SkillID string
	Guard   func(skillID string, event string) bool
}

// ModuleStateMachine governs the tracker-owned module lifecycle. The guard
// lets the caller veto transitions, e.g. refusing to start a module whose
// prerequisites are unfinished.
type ModuleStateMachine struct {
	skillID     string
	interpreter *statekit.Interpreter[ModuleContext]
}

// NewModuleStateMachine builds a machine starting in the given status.
func NewModuleStateMachine(initialState string, skillID string, guard func(string, string) bool) (*ModuleStateMachine, error) {
	if guard == nil {
		guard = func(string, string) bool { return true }
	}

	builder := statekit.NewMachine[ModuleContext]("module-machine").
		WithInitial(statekit.StateID(initialState)).
		WithContext(ModuleContext{
			SkillID: skillID,
			Guard:   guard,
		}).
		WithGuard("prereqGuard", func(ctx ModuleContext, e statekit.Event) bool {
			return ctx.Guard(ctx.SkillID, string(e.Type))
		})

	builder.State(StatePending).
		On("start").Target(StateInProgress).Guard("prereqGuard").
		On("skip").Target(StateSkipped).
		Done()

	builder.State(StateInProgress).
		On("complete").Target(StateCompleted).
		On("stop").Target(StatePending).
		Done()

	builder.State(StateCompleted).
		On("reopen").Target(StatePending).
		Done()

	builder.State(StateSkipped).
		On("reopen").Target(StatePending).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &ModuleStateMachine{skillID: skillID, interpreter: interpreter}, nil
}

// Transition attempts to apply an event to the module.
func (sm *ModuleStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}

	// In statekit, if no transition matches or a guard rejects, the state
	// stays put. Either way the event did not apply.
	return &TransitionError{
		SkillID:    sm.skillID,
		FromStatus: ModuleStatus(before),
		Event:      event,
	}
}

// Current returns the current state id.
func (sm *ModuleStateMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// CurrentStatus returns the current state as a ModuleStatus value object.
func (sm *ModuleStateMachine) CurrentStatus() ModuleStatus {
	return ModuleStatus(sm.Current())
}

// CanTransition checks if the given event is valid for the current state.
// This delegates to the ModuleStatus value object for consistency.
func (sm *ModuleStateMachine) CanTransition(event string) bool {
	return sm.CurrentStatus().CanTransitionWith(event)
}

// ValidEvents returns the valid events for the current state.
func (sm *ModuleStateMachine) ValidEvents() []string {
	return sm.CurrentStatus().ValidEvents()
}

// IsDone returns true if the module no longer needs work.
func (sm *ModuleStateMachine) IsDone() bool {
	return sm.CurrentStatus().IsDone()
}
