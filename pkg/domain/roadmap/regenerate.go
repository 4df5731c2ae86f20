package roadmap

import "sort"

// PreservedStatus records a module whose non-pending status survived
// regeneration.
type PreservedStatus struct {
	SkillID string       `json:"skill_id"`
	Status  ModuleStatus `json:"status"`
}

// RegenerationResult pairs a fresh roadmap with the diff against the
// previous one: which module statuses carried over, which modules are new,
// and which dropped out of the sequence.
type RegenerationResult struct {
	Roadmap   *Roadmap          `json:"roadmap"`
	Preserved []PreservedStatus `json:"preserved,omitempty"`
	Added     []string          `json:"added,omitempty"`
	Dropped   []string          `json:"dropped,omitempty"`
}

// Regenerate runs a fresh generation and carries in-progress, completed and
// skipped statuses forward for modules present in both sequences. The new
// roadmap is a full recomputation; only statuses are copied, never ordering
// or hours.
func Regenerate(previous *Roadmap, input GenerationInput) (*RegenerationResult, error) {
	next, err := Generate(input)
	if err != nil {
		return nil, err
	}

	result := &RegenerationResult{Roadmap: next}
	if previous == nil {
		return result, nil
	}

	prevModules := make(map[string]Module, len(previous.Modules))
	for _, m := range previous.Modules {
		prevModules[m.SkillID] = m
	}

	for i := range next.Modules {
		m := &next.Modules[i]
		prev, existed := prevModules[m.SkillID]
		if !existed {
			result.Added = append(result.Added, m.SkillID)
			continue
		}
		if prev.Status != StatusPending {
			m.Status = prev.Status
			result.Preserved = append(result.Preserved, PreservedStatus{
				SkillID: m.SkillID,
				Status:  prev.Status,
			})
		}
	}

	nextIDs := next.SkillIDSet()
	for _, m := range previous.Modules {
		if _, ok := nextIDs[m.SkillID]; !ok {
			result.Dropped = append(result.Dropped, m.SkillID)
		}
	}
	sort.Strings(result.Dropped)

	return result, nil
}
