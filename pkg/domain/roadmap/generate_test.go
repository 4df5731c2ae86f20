package roadmap_test

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

var genTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func skill(id string, phase catalog.Phase, hours float64, seq int) catalog.Skill {
	return catalog.Skill{
		ID:             id,
		Slug:           id,
		Name:           id,
		Phase:          phase,
		EstimatedHours: hours,
		SequenceOrder:  seq,
	}
}

func edge(skillID, prereqID string) catalog.PrerequisiteEdge {
	return catalog.PrerequisiteEdge{SkillID: skillID, PrerequisiteID: prereqID}
}

func mustGraph(t *testing.T, skills []catalog.Skill, edges []catalog.PrerequisiteEdge) *catalog.Graph {
	t.Helper()
	g, err := catalog.BuildGraph(skills, edges)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	return g
}

// chainGraph is the A<-B<-C fixture: C depends on B depends on A.
func chainGraph(t *testing.T) *catalog.Graph {
	t.Helper()
	return mustGraph(t,
		[]catalog.Skill{
			skill("a", catalog.PhaseFoundation, 10, 1),
			skill("b", catalog.PhaseCore, 20, 1),
			skill("c", catalog.PhaseCore, 30, 2),
		},
		[]catalog.PrerequisiteEdge{
			edge("b", "a"),
			edge("c", "b"),
		},
	)
}

func chainRole() catalog.Role {
	return catalog.Role{ID: "backend", Name: "Backend", RequiredSkillIDs: []string{"a", "b", "c"}}
}

func sequenceIDs(r *roadmap.Roadmap) []string {
	ids := make([]string, 0, len(r.Modules))
	for _, m := range r.Modules {
		ids = append(ids, m.SkillID)
	}
	return ids
}

func TestGenerate_ChainSequence(t *testing.T) {
	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       chainGraph(t),
		Role:        chainRole(),
		WeeklyHours: 10,
		Now:         genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got := sequenceIDs(r); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("sequence = %v, want [a b c]", got)
	}
	for i, m := range r.Modules {
		if m.Position != i+1 {
			t.Errorf("module %s position = %d, want %d", m.SkillID, m.Position, i+1)
		}
		if m.Status != roadmap.StatusPending {
			t.Errorf("module %s status = %s, want pending", m.SkillID, m.Status)
		}
	}
}

func TestGenerate_KnownSkillsAreOmitted(t *testing.T) {
	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:         chainGraph(t),
		Role:          chainRole(),
		KnownSkillIDs: []string{"a"},
		WeeklyHours:   10,
		Now:           genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got := sequenceIDs(r); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("sequence = %v, want [b c]", got)
	}
}

func TestGenerate_PullsInUnlistedPrerequisites(t *testing.T) {
	// The role only asks for c, but b and a are unknown prerequisites and
	// must join the roadmap anyway.
	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       chainGraph(t),
		Role:        catalog.Role{ID: "solo", RequiredSkillIDs: []string{"c"}},
		WeeklyHours: 10,
		Now:         genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got := sequenceIDs(r); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("sequence = %v, want [a b c]", got)
	}
}

func TestGenerate_PrerequisiteCompleteness(t *testing.T) {
	g := mustGraph(t,
		[]catalog.Skill{
			skill("sql", catalog.PhaseFoundation, 8, 1),
			skill("http", catalog.PhaseFoundation, 6, 2),
			skill("api", catalog.PhaseCore, 14, 1),
			skill("db", catalog.PhaseCore, 12, 2),
			skill("perf", catalog.PhaseAdvanced, 20, 1),
		},
		[]catalog.PrerequisiteEdge{
			edge("api", "http"),
			edge("db", "sql"),
			edge("perf", "api"),
			edge("perf", "db"),
		},
	)
	known := []string{"sql"}

	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:         g,
		Role:          catalog.Role{ID: "backend", RequiredSkillIDs: []string{"perf"}},
		KnownSkillIDs: known,
		WeeklyHours:   10,
		Now:           genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	knownSet := map[string]bool{"sql": true}
	position := make(map[string]int)
	for _, m := range r.Modules {
		position[m.SkillID] = m.Position
	}

	// Every prerequisite of every module is known or appears earlier.
	for _, m := range r.Modules {
		for _, pre := range g.Prerequisites(m.SkillID) {
			if knownSet[pre] {
				continue
			}
			prePos, ok := position[pre]
			if !ok {
				t.Errorf("prerequisite %s of %s missing from roadmap", pre, m.SkillID)
				continue
			}
			if prePos >= m.Position {
				t.Errorf("prerequisite %s (pos %d) not before %s (pos %d)", pre, prePos, m.SkillID, m.Position)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	input := roadmap.GenerationInput{
		Graph:         chainGraph(t),
		Role:          chainRole(),
		KnownSkillIDs: []string{"a"},
		WeeklyHours:   6,
		Now:           genTime,
	}

	first, err := roadmap.Generate(input)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := roadmap.Generate(input)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two generations from identical input differ:\n%+v\n%+v", first, second)
	}
	if first.ID != second.ID {
		t.Errorf("roadmap ids differ: %s vs %s", first.ID, second.ID)
	}
}

func TestGenerate_TieBreakOrder(t *testing.T) {
	// No edges at all: ordering falls back entirely to the
	// (phase, sequence order, id) tuple.
	g := mustGraph(t,
		[]catalog.Skill{
			skill("z-late", catalog.PhaseFoundation, 5, 2),
			skill("m-early", catalog.PhaseFoundation, 5, 1),
			skill("b-adv", catalog.PhaseAdvanced, 5, 1),
			skill("a-core", catalog.PhaseCore, 5, 1),
			skill("b-core", catalog.PhaseCore, 5, 1),
		},
		nil,
	)

	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       g,
		Role:        catalog.Role{ID: "any", RequiredSkillIDs: []string{"z-late", "m-early", "b-adv", "a-core", "b-core"}},
		WeeklyHours: 10,
		Now:         genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := []string{"m-early", "z-late", "a-core", "b-core", "b-adv"}
	if got := sequenceIDs(r); !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestGenerate_MonotonicPhases(t *testing.T) {
	g := mustGraph(t,
		[]catalog.Skill{
			skill("f1", catalog.PhaseFoundation, 5, 1),
			skill("f2", catalog.PhaseFoundation, 5, 2),
			skill("c1", catalog.PhaseCore, 5, 1),
			skill("c2", catalog.PhaseCore, 5, 2),
			skill("a1", catalog.PhaseAdvanced, 5, 1),
		},
		[]catalog.PrerequisiteEdge{
			edge("c1", "f1"),
			edge("a1", "c2"),
		},
	)

	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       g,
		Role:        catalog.Role{ID: "any", RequiredSkillIDs: []string{"f1", "f2", "c1", "c2", "a1"}},
		WeeklyHours: 10,
		Now:         genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i := 1; i < len(r.Modules); i++ {
		if r.Modules[i].Phase.Order() < r.Modules[i-1].Phase.Order() {
			t.Errorf("phase order decreases at %s -> %s", r.Modules[i-1].SkillID, r.Modules[i].SkillID)
		}
	}

	wantPhases := []catalog.Phase{catalog.PhaseFoundation, catalog.PhaseCore, catalog.PhaseAdvanced}
	if len(r.Phases) != len(wantPhases) {
		t.Fatalf("got %d phase groups, want %d", len(r.Phases), len(wantPhases))
	}
	for i, group := range r.Phases {
		if group.Phase != wantPhases[i] {
			t.Errorf("phase group %d = %s, want %s", i, group.Phase, wantPhases[i])
		}
	}
}

func TestGenerate_PhaseOrderingViolation(t *testing.T) {
	// A foundation skill requiring an advanced one is a catalog authoring
	// error, surfaced rather than silently reordered.
	g := mustGraph(t,
		[]catalog.Skill{
			skill("early", catalog.PhaseFoundation, 5, 1),
			skill("late", catalog.PhaseAdvanced, 5, 1),
		},
		[]catalog.PrerequisiteEdge{
			edge("early", "late"),
		},
	)

	_, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       g,
		Role:        catalog.Role{ID: "any", RequiredSkillIDs: []string{"early"}},
		WeeklyHours: 10,
		Now:         genTime,
	})

	var phaseErr *catalog.PhaseOrderError
	if !errors.As(err, &phaseErr) {
		t.Fatalf("Generate() error = %v, want PhaseOrderError", err)
	}
	if phaseErr.SkillID != "early" || phaseErr.PrerequisiteID != "late" {
		t.Errorf("PhaseOrderError names %s/%s, want early/late", phaseErr.SkillID, phaseErr.PrerequisiteID)
	}
}

func TestGenerate_TimeProjection(t *testing.T) {
	// Three modules of 10/20/30 resource hours, 0.5 practice ratio:
	// raw = (10+20+30)*1.5 = 90h, buffered = 99h, weeks = 9.9,
	// completion = generation time + 10 weeks.
	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       chainGraph(t),
		Role:        chainRole(),
		WeeklyHours: 10,
		Now:         genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if math.Abs(r.Projection.RawHours-90) > 1e-9 {
		t.Errorf("RawHours = %v, want 90", r.Projection.RawHours)
	}
	if r.Projection.TotalHours != 99 {
		t.Errorf("TotalHours = %v, want 99", r.Projection.TotalHours)
	}
	if math.Abs(r.Projection.Weeks-9.9) > 1e-9 {
		t.Errorf("Weeks = %v, want 9.9", r.Projection.Weeks)
	}

	want := genTime.AddDate(0, 0, 70)
	if !r.Projection.ProjectedCompletion.Equal(want) {
		t.Errorf("ProjectedCompletion = %v, want %v", r.Projection.ProjectedCompletion, want)
	}

	// Per-module breakdown carries the practice ratio.
	m := r.Modules[0]
	if m.ResourceHours != 10 || m.PracticeHours != 5 || m.Hours != 15 {
		t.Errorf("module a hours = %v/%v/%v, want 10/5/15", m.ResourceHours, m.PracticeHours, m.Hours)
	}
}

func TestGenerate_TimeAdditivity(t *testing.T) {
	// Awkward fractions must only be rounded once, at the end.
	g := mustGraph(t,
		[]catalog.Skill{
			skill("p", catalog.PhaseFoundation, 3.3, 1),
			skill("q", catalog.PhaseFoundation, 7.7, 2),
			skill("r", catalog.PhaseCore, 11.1, 1),
		},
		nil,
	)

	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       g,
		Role:        catalog.Role{ID: "any", RequiredSkillIDs: []string{"p", "q", "r"}},
		WeeklyHours: 5,
		Now:         genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	raw := 0.0
	for _, m := range r.Modules {
		raw += m.Hours
	}
	want := math.Round(raw * 1.10)
	if r.Projection.TotalHours != want {
		t.Errorf("TotalHours = %v, want round(%v * 1.10) = %v", r.Projection.TotalHours, raw, want)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       chainGraph(t),
		Role:        chainRole(),
		WeeklyHours: 10,
		Now:         genTime,
		Options:     roadmap.EstimateOptions{PracticeRatio: 1.0, BufferRatio: 0.2},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// (10+20+30)*2 = 120 raw, *1.2 = 144 buffered.
	if math.Abs(r.Projection.RawHours-120) > 1e-9 {
		t.Errorf("RawHours = %v, want 120", r.Projection.RawHours)
	}
	if r.Projection.TotalHours != 144 {
		t.Errorf("TotalHours = %v, want 144", r.Projection.TotalHours)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	g := chainGraph(t)

	tests := []struct {
		name  string
		input roadmap.GenerationInput
	}{
		{
			"zero weekly hours",
			roadmap.GenerationInput{Graph: g, Role: chainRole(), WeeklyHours: 0, Now: genTime},
		},
		{
			"negative weekly hours",
			roadmap.GenerationInput{Graph: g, Role: chainRole(), WeeklyHours: -4, Now: genTime},
		},
		{
			"nil graph",
			roadmap.GenerationInput{Role: chainRole(), WeeklyHours: 10, Now: genTime},
		},
		{
			"zero timestamp",
			roadmap.GenerationInput{Graph: g, Role: chainRole(), WeeklyHours: 10},
		},
		{
			"empty role",
			roadmap.GenerationInput{Graph: g, WeeklyHours: 10, Now: genTime},
		},
		{
			"unknown skill in skip list",
			roadmap.GenerationInput{Graph: g, Role: chainRole(), KnownSkillIDs: []string{"ghost"}, WeeklyHours: 10, Now: genTime},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := roadmap.Generate(tt.input)
			var inputErr *roadmap.InvalidInputError
			if !errors.As(err, &inputErr) {
				t.Errorf("Generate() error = %v, want InvalidInputError", err)
			}
		})
	}
}

func TestGenerate_UnknownRoleSkillIsCatalogError(t *testing.T) {
	_, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:       chainGraph(t),
		Role:        catalog.Role{ID: "weird", RequiredSkillIDs: []string{"ghost"}},
		WeeklyHours: 10,
		Now:         genTime,
	})

	var unknownErr *catalog.UnknownSkillError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Generate() error = %v, want UnknownSkillError", err)
	}
	if unknownErr.SkillID != "ghost" {
		t.Errorf("SkillID = %q, want ghost", unknownErr.SkillID)
	}
}

func TestGenerate_AllSkillsKnown(t *testing.T) {
	r, err := roadmap.Generate(roadmap.GenerationInput{
		Graph:         chainGraph(t),
		Role:          chainRole(),
		KnownSkillIDs: []string{"a", "b", "c"},
		WeeklyHours:   10,
		Now:           genTime,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(r.Modules) != 0 {
		t.Errorf("modules = %v, want empty", sequenceIDs(r))
	}
	if r.Projection.TotalHours != 0 {
		t.Errorf("TotalHours = %v, want 0", r.Projection.TotalHours)
	}
	if !r.Projection.ProjectedCompletion.Equal(genTime) {
		t.Errorf("ProjectedCompletion = %v, want generation time", r.Projection.ProjectedCompletion)
	}
}
