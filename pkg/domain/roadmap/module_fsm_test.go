package roadmap_test

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

func TestModuleStateMachine_Lifecycle(t *testing.T) {
	sm, err := roadmap.NewModuleStateMachine(roadmap.StatePending, "go-basics", nil)
	if err != nil {
		t.Fatalf("NewModuleStateMachine() error = %v", err)
	}

	steps := []struct {
		event string
		want  roadmap.ModuleStatus
	}{
		{"start", roadmap.StatusInProgress},
		{"stop", roadmap.StatusPending},
		{"start", roadmap.StatusInProgress},
		{"complete", roadmap.StatusCompleted},
		{"reopen", roadmap.StatusPending},
		{"skip", roadmap.StatusSkipped},
	}

	for _, step := range steps {
		if err := sm.Transition(step.event); err != nil {
			t.Fatalf("Transition(%s) error = %v", step.event, err)
		}
		if got := sm.CurrentStatus(); got != step.want {
			t.Errorf("after %s: status = %v, want %v", step.event, got, step.want)
		}
	}
}

func TestModuleStateMachine_InvalidTransition(t *testing.T) {
	sm, err := roadmap.NewModuleStateMachine(roadmap.StatePending, "go-basics", nil)
	if err != nil {
		t.Fatalf("NewModuleStateMachine() error = %v", err)
	}

	err = sm.Transition("complete")
	var transErr *roadmap.TransitionError
	if !errors.As(err, &transErr) {
		t.Fatalf("Transition(complete) error = %v, want TransitionError", err)
	}
	if transErr.SkillID != "go-basics" || transErr.FromStatus != roadmap.StatusPending {
		t.Errorf("TransitionError = %+v, want go-basics/pending", transErr)
	}
	if sm.CurrentStatus() != roadmap.StatusPending {
		t.Errorf("status after rejected event = %v, want pending", sm.CurrentStatus())
	}
}

func TestModuleStateMachine_GuardBlocksStart(t *testing.T) {
	guard := func(skillID, event string) bool {
		return event != "start"
	}

	sm, err := roadmap.NewModuleStateMachine(roadmap.StatePending, "go-basics", guard)
	if err != nil {
		t.Fatalf("NewModuleStateMachine() error = %v", err)
	}

	if err := sm.Transition("start"); err == nil {
		t.Error("Transition(start) should be blocked by guard")
	}
	// Skip is not guarded.
	if err := sm.Transition("skip"); err != nil {
		t.Errorf("Transition(skip) error = %v", err)
	}
}

func TestModuleStateMachine_CanTransition(t *testing.T) {
	sm, err := roadmap.NewModuleStateMachine(roadmap.StateInProgress, "go-basics", nil)
	if err != nil {
		t.Fatalf("NewModuleStateMachine() error = %v", err)
	}

	if !sm.CanTransition("complete") {
		t.Error("CanTransition(complete) = false, want true")
	}
	if sm.CanTransition("skip") {
		t.Error("CanTransition(skip) = true, want false")
	}
	if sm.IsDone() {
		t.Error("IsDone() = true for in_progress")
	}
}
