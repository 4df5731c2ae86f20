package roadmap

import (
	"errors"
	"fmt"
)

// Roadmap domain errors.
var (
	// ErrNoRoadmap indicates no roadmap has been generated yet.
	ErrNoRoadmap = errors.New("no roadmap found")
	// ErrModuleNotFound indicates a skill id is not part of the roadmap.
	ErrModuleNotFound = errors.New("module not found in roadmap")
)

// InvalidInputError reports a caller contract violation on a generation
// request. Unlike catalog-structural errors, the caller can correct the
// input and retry.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PrerequisiteError reports a module action blocked by an unfinished
// prerequisite module.
type PrerequisiteError struct {
	SkillID        string
	PrerequisiteID string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("module %q is blocked by unfinished prerequisite %q", e.SkillID, e.PrerequisiteID)
}

// TransitionError reports an invalid module status transition.
type TransitionError struct {
	SkillID    string
	FromStatus ModuleStatus
	Event      string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s module %q while it is %q", e.Event, e.SkillID, e.FromStatus)
}
