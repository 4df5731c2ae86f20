package roadmap

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// ModuleStatus is the tracker-owned lifecycle of a roadmap module.
// Generation always emits pending; transitions happen through the progress
// tracker, never inside the engine.
type ModuleStatus string

const (
	StatusPending    ModuleStatus = "pending"
	StatusInProgress ModuleStatus = "in_progress"
	StatusCompleted  ModuleStatus = "completed"
	StatusSkipped    ModuleStatus = "skipped"
)

// statusTransitions defines the allowed transitions and their events.
// Map: currentStatus -> event -> targetStatus
var statusTransitions = map[ModuleStatus]map[string]ModuleStatus{
	StatusPending: {
		"start": StatusInProgress,
		"skip":  StatusSkipped,
	},
	StatusInProgress: {
		"complete": StatusCompleted,
		"stop":     StatusPending,
	},
	StatusCompleted: {
		"reopen": StatusPending,
	},
	StatusSkipped: {
		"reopen": StatusPending,
	},
}

// AllModuleStatuses returns all valid module statuses.
func AllModuleStatuses() []ModuleStatus {
	return []ModuleStatus{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
		StatusSkipped,
	}
}

// IsValid returns true if the status is a valid module status.
func (s ModuleStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusSkipped:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s ModuleStatus) String() string {
	return string(s)
}

// CanTransitionWith returns true if the event can trigger a transition from
// this status.
func (s ModuleStatus) CanTransitionWith(event string) bool {
	transitions, ok := statusTransitions[s]
	if !ok {
		return false
	}
	_, ok = transitions[event]
	return ok
}

// TransitionWith applies an event and returns the resulting status.
func (s ModuleStatus) TransitionWith(event string) (ModuleStatus, bool) {
	transitions, ok := statusTransitions[s]
	if !ok {
		return s, false
	}
	target, ok := transitions[event]
	if !ok {
		return s, false
	}
	return target, true
}

// ValidEvents returns the events accepted in the current status, sorted.
func (s ModuleStatus) ValidEvents() []string {
	transitions := statusTransitions[s]
	events := make([]string, 0, len(transitions))
	for ev := range transitions {
		events = append(events, ev)
	}
	sort.Strings(events)
	return events
}

// IsDone returns true if the module no longer needs work.
func (s ModuleStatus) IsDone() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// UnmarshalJSON validates the status on decode.
func (s *ModuleStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status := ModuleStatus(raw)
	if !status.IsValid() {
		return fmt.Errorf("invalid module status: %q", raw)
	}
	*s = status
	return nil
}

// ProgressState is the tracker's persisted view of module statuses, keyed by
// skill id. It lives beside the roadmap, never inside it: the roadmap value
// stays immutable.
type ProgressState struct {
	Statuses  map[string]ModuleStatus `json:"statuses"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// NewProgressState creates an empty progress state.
func NewProgressState() *ProgressState {
	return &ProgressState{Statuses: make(map[string]ModuleStatus)}
}

// Status returns the tracked status for a skill, defaulting to pending.
func (p *ProgressState) Status(skillID string) ModuleStatus {
	if p == nil || p.Statuses == nil {
		return StatusPending
	}
	if s, ok := p.Statuses[skillID]; ok {
		return s
	}
	return StatusPending
}

// Set records a status and stamps the update time.
func (p *ProgressState) Set(skillID string, status ModuleStatus) {
	if p.Statuses == nil {
		p.Statuses = make(map[string]ModuleStatus)
	}
	p.Statuses[skillID] = status
	p.UpdatedAt = time.Now()
}

// Prune drops statuses for skills not in the given set, returning the
// dropped ids sorted. Used after regeneration to discard stale entries.
func (p *ProgressState) Prune(keep map[string]struct{}) []string {
	var dropped []string
	for id := range p.Statuses {
		if _, ok := keep[id]; !ok {
			dropped = append(dropped, id)
			delete(p.Statuses, id)
		}
	}
	sort.Strings(dropped)
	return dropped
}
