package roadmap

import (
	"fmt"

	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
)

// PhaseGroup is one contiguous run of modules belonging to a single phase.
type PhaseGroup struct {
	Phase    catalog.Phase `json:"phase"`
	SkillIDs []string      `json:"skill_ids"`
	Hours    float64       `json:"hours"`
}

// assignPhases verifies phase ordering over the sequenced gap and groups the
// modules by phase. A gap skill whose prerequisite sits in a strictly later
// phase is a catalog authoring error and is reported, never reordered around.
func assignPhases(g *catalog.Graph, gap map[string]struct{}, modules []Module) ([]PhaseGroup, error) {
	for _, m := range modules {
		skill, _ := g.Skill(m.SkillID)
		for _, pre := range g.Prerequisites(m.SkillID) {
			if _, inGap := gap[pre]; !inGap {
				continue
			}
			preSkill, _ := g.Skill(pre)
			if preSkill.Phase.Order() > skill.Phase.Order() {
				return nil, &catalog.PhaseOrderError{
					SkillID:           skill.ID,
					SkillPhase:        skill.Phase,
					PrerequisiteID:    preSkill.ID,
					PrerequisitePhase: preSkill.Phase,
				}
			}
		}
	}

	// With per-pair ordering intact and the phase-first tie-break, the sorted
	// sequence must be monotonic non-decreasing in phase. Verified, not
	// assumed.
	for i := 1; i < len(modules); i++ {
		if modules[i].Phase.Order() < modules[i-1].Phase.Order() {
			return nil, fmt.Errorf("sequence not monotonic in phase: %s (%s) follows %s (%s)",
				modules[i].SkillID, modules[i].Phase, modules[i-1].SkillID, modules[i-1].Phase)
		}
	}

	var groups []PhaseGroup
	for _, m := range modules {
		if len(groups) == 0 || groups[len(groups)-1].Phase != m.Phase {
			groups = append(groups, PhaseGroup{Phase: m.Phase})
		}
		last := &groups[len(groups)-1]
		last.SkillIDs = append(last.SkillIDs, m.SkillID)
		last.Hours += m.Hours
	}

	return groups, nil
}
