package roadmap

import (
	"time"

	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
)

// GenerationInput carries everything a generation run needs. The engine
// performs no I/O and reads no clocks: the caller materializes the graph,
// resolves the role, and supplies the generation timestamp.
type GenerationInput struct {
	Graph         *catalog.Graph
	Role          catalog.Role
	KnownSkillIDs []string
	WeeklyHours   int
	Now           time.Time
	Options       EstimateOptions
}

// Generate is the single engine entry point: gap analysis, topological
// sequencing, phase assignment, time projection and assembly, strictly in
// that order. Any stage error aborts the whole call; the engine never
// produces a partial roadmap.
//
// Generation is deterministic: identical inputs yield identical roadmaps,
// including the derived roadmap id.
func Generate(input GenerationInput) (*Roadmap, error) {
	if input.Graph == nil {
		return nil, &InvalidInputError{Field: "graph", Reason: "skill graph is required"}
	}
	if input.Now.IsZero() {
		return nil, &InvalidInputError{Field: "now", Reason: "generation timestamp is required"}
	}
	if len(input.Role.RequiredSkillIDs) == 0 {
		return nil, &InvalidInputError{Field: "target_role", Reason: "role requires no skills"}
	}

	known, err := knownSet(input.Graph, input.KnownSkillIDs)
	if err != nil {
		return nil, err
	}

	gap, err := AnalyzeGap(input.Graph, input.Role, known)
	if err != nil {
		return nil, err
	}

	ordered, err := sequenceGap(input.Graph, gap)
	if err != nil {
		return nil, err
	}

	opts := input.Options.normalized()
	modules := make([]Module, 0, len(ordered))
	for i, skill := range ordered {
		m := newModule(skill, opts)
		m.Position = i + 1
		modules = append(modules, m)
	}

	phases, err := assignPhases(input.Graph, gap, modules)
	if err != nil {
		return nil, err
	}

	projection, err := project(modules, input.WeeklyHours, input.Now, opts)
	if err != nil {
		return nil, err
	}

	r := &Roadmap{
		RoleID:      input.Role.ID,
		GeneratedAt: input.Now,
		WeeklyHours: input.WeeklyHours,
		Modules:     modules,
		Phases:      phases,
		Projection:  projection,
	}
	r.ID = roadmapID(r)
	return r, nil
}
