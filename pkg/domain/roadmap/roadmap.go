package roadmap

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
)

// Module is one sequenced learning unit in a roadmap: a gap skill annotated
// with its position, phase and time breakdown.
type Module struct {
	SkillID string        `json:"skill_id"`
	Slug    string        `json:"slug"`
	Name    string        `json:"name"`
	Phase   catalog.Phase `json:"phase"`
	// Position is the 1-based place in the learning sequence.
	Position int          `json:"position"`
	Status   ModuleStatus `json:"status"`
	Optional bool         `json:"optional,omitempty"`
	// ResourceHours is the catalog estimate for working through material.
	ResourceHours float64 `json:"resource_hours"`
	// PracticeHours is derived from ResourceHours by the practice ratio.
	PracticeHours float64 `json:"practice_hours"`
	// Hours is resource plus practice.
	Hours float64 `json:"hours"`
}

// Roadmap is the generation output: the ordered module list grouped by
// phase plus the time projection. A roadmap is immutable once produced;
// recalculation is a fresh generation call, never an in-place mutation.
type Roadmap struct {
	ID          string        `json:"id"`
	RoleID      string        `json:"role_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	WeeklyHours int           `json:"weekly_hours"`
	Modules     []Module      `json:"modules"`
	Phases      []PhaseGroup  `json:"phases"`
	Projection  TimeProjection `json:"projection"`
}

// newModule builds a module from a skill with its time breakdown applied.
func newModule(skill catalog.Skill, opts EstimateOptions) Module {
	practice := skill.EstimatedHours * opts.PracticeRatio
	return Module{
		SkillID:       skill.ID,
		Slug:          skill.Slug,
		Name:          skill.Name,
		Phase:         skill.Phase,
		Status:        StatusPending,
		Optional:      skill.IsOptional,
		ResourceHours: skill.EstimatedHours,
		PracticeHours: practice,
		Hours:         skill.EstimatedHours + practice,
	}
}

// Module looks up a module by skill id.
func (r *Roadmap) Module(skillID string) (Module, bool) {
	for _, m := range r.Modules {
		if m.SkillID == skillID {
			return m, true
		}
	}
	return Module{}, false
}

// SkillIDSet returns the module skill ids as a set.
func (r *Roadmap) SkillIDSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(r.Modules))
	for _, m := range r.Modules {
		ids[m.SkillID] = struct{}{}
	}
	return ids
}

// Fingerprint returns a deterministic hash of the roadmap structure.
// Identical generation inputs produce identical fingerprints.
func (r *Roadmap) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(r.RoleID))
	fmt.Fprintf(h, "|%d|%d", r.WeeklyHours, r.GeneratedAt.Unix())
	for _, m := range r.Modules {
		h.Write([]byte("|"))
		h.Write([]byte(m.SkillID))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// roadmapID derives the roadmap identity from its fingerprint. Derived, not
// random: regenerating from identical inputs must be byte-identical.
func roadmapID(r *Roadmap) string {
	return "rm-" + r.Fingerprint()[:12]
}
