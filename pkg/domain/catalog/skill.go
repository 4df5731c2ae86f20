package catalog

import "fmt"

// Skill is one learnable unit in the catalog. Skills are reference data
// authored by content curation and are read-only to the engine.
type Skill struct {
	// ID uniquely identifies the skill across the catalog.
	ID string `json:"id" yaml:"id"`
	// Slug is the URL-safe short name.
	Slug string `json:"slug" yaml:"slug"`
	// Name is the display name.
	Name string `json:"name" yaml:"name"`
	// Description explains what the skill covers.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Phase places the skill in the ordered learning stages.
	Phase Phase `json:"phase" yaml:"phase"`
	// EstimatedHours is the resource time to work through the material.
	EstimatedHours float64 `json:"estimated_hours" yaml:"estimated_hours"`
	// IsOptional marks skills that can be dropped without blocking dependents.
	IsOptional bool `json:"is_optional,omitempty" yaml:"is_optional,omitempty"`
	// SequenceOrder breaks ties between otherwise-equal skills within a phase.
	SequenceOrder int `json:"sequence_order" yaml:"sequence_order"`
}

// Validate checks the skill's own fields, independent of the graph.
func (s Skill) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("skill id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("skill %s: name is required", s.ID)
	}
	if !s.Phase.IsValid() {
		return fmt.Errorf("skill %s: invalid phase %q", s.ID, s.Phase)
	}
	if s.EstimatedHours <= 0 {
		return fmt.Errorf("skill %s: estimated hours must be positive, got %g", s.ID, s.EstimatedHours)
	}
	return nil
}

// PrerequisiteEdge declares that SkillID requires PrerequisiteID first.
// Edges are directed; the full edge set must form a DAG over the catalog.
type PrerequisiteEdge struct {
	SkillID        string `json:"skill_id" yaml:"skill_id"`
	PrerequisiteID string `json:"prerequisite_id" yaml:"prerequisite_id"`
}

// Role maps a target role to the skills it requires.
type Role struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	RequiredSkillIDs []string `json:"required_skill_ids" yaml:"required_skill_ids"`
}

// Document is the serialized catalog shape: skills, prerequisite edges and
// role mappings as authored in catalog.yaml.
type Document struct {
	Skills        []Skill            `json:"skills" yaml:"skills"`
	Prerequisites []PrerequisiteEdge `json:"prerequisites" yaml:"prerequisites"`
	Roles         []Role             `json:"roles" yaml:"roles"`
}

// Role resolves a role by id.
func (d *Document) Role(id string) (Role, bool) {
	for _, r := range d.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}
