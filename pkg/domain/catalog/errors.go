package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog domain errors. Structural errors (unknown skill, cycle, phase
// ordering) indicate corrupted reference data and are surfaced to operators,
// not to end users.
var (
	// ErrRoleNotFound indicates the requested role is not in the catalog.
	ErrRoleNotFound = errors.New("role not found")
	// ErrDuplicateSkill indicates two catalog entries share a skill id.
	ErrDuplicateSkill = errors.New("duplicate skill id")
	// ErrEmptyCatalog indicates the catalog contains no skills.
	ErrEmptyCatalog = errors.New("catalog contains no skills")
)

// UnknownSkillError reports a reference to a skill id absent from the catalog.
type UnknownSkillError struct {
	// SkillID is the id that could not be resolved.
	SkillID string
	// Context names where the reference came from, e.g. "edge a -> b".
	Context string
}

func (e *UnknownSkillError) Error() string {
	return fmt.Sprintf("unknown skill %q referenced by %s", e.SkillID, e.Context)
}

// CycleError reports a prerequisite cycle. Path lists the participating
// skill ids in traversal order, ending where the cycle closes.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("prerequisite cycle detected: %s", strings.Join(e.Path, " -> "))
}

// PhaseOrderError reports a skill whose prerequisite is assigned to a later
// phase than the skill itself. This is a catalog authoring error.
type PhaseOrderError struct {
	SkillID           string
	SkillPhase        Phase
	PrerequisiteID    string
	PrerequisitePhase Phase
}

func (e *PhaseOrderError) Error() string {
	return fmt.Sprintf("skill %q (%s) has prerequisite %q in later phase %s",
		e.SkillID, e.SkillPhase, e.PrerequisiteID, e.PrerequisitePhase)
}
