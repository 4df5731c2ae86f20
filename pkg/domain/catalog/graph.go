package catalog

import (
	"fmt"
	"sort"
)

// Graph is the immutable prerequisite DAG over the skill catalog. It exposes
// both adjacency directions: prerequisites (what a skill requires) and
// dependents (what a skill unlocks).
type Graph struct {
	skills        map[string]Skill
	prerequisites map[string][]string
	dependents    map[string][]string
}

// BuildGraph validates skills and edges and assembles the prerequisite DAG.
// Duplicate edges collapse into one (idempotent insert). An edge naming an
// unknown skill id or a prerequisite cycle is a fatal catalog error: the
// loader never drops an edge silently.
func BuildGraph(skills []Skill, edges []PrerequisiteEdge) (*Graph, error) {
	if len(skills) == 0 {
		return nil, ErrEmptyCatalog
	}

	g := &Graph{
		skills:        make(map[string]Skill, len(skills)),
		prerequisites: make(map[string][]string),
		dependents:    make(map[string][]string),
	}

	for _, s := range skills {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := g.skills[s.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSkill, s.ID)
		}
		g.skills[s.ID] = s
	}

	seen := make(map[PrerequisiteEdge]struct{}, len(edges))
	for _, e := range edges {
		ctx := fmt.Sprintf("edge %s -> %s", e.SkillID, e.PrerequisiteID)
		if _, ok := g.skills[e.SkillID]; !ok {
			return nil, &UnknownSkillError{SkillID: e.SkillID, Context: ctx}
		}
		if _, ok := g.skills[e.PrerequisiteID]; !ok {
			return nil, &UnknownSkillError{SkillID: e.PrerequisiteID, Context: ctx}
		}
		if e.SkillID == e.PrerequisiteID {
			return nil, &CycleError{Path: []string{e.SkillID, e.SkillID}}
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		g.prerequisites[e.SkillID] = append(g.prerequisites[e.SkillID], e.PrerequisiteID)
		g.dependents[e.PrerequisiteID] = append(g.dependents[e.PrerequisiteID], e.SkillID)
	}

	// Sorted adjacency keeps every traversal over the graph reproducible.
	for id := range g.prerequisites {
		sort.Strings(g.prerequisites[id])
	}
	for id := range g.dependents {
		sort.Strings(g.dependents[id])
	}

	if err := g.detectCycle(); err != nil {
		return nil, err
	}

	return g, nil
}

// detectCycle runs a DFS over the "requires" direction with an in-path
// marker. On finding a back edge it returns a CycleError naming the
// participating skill ids in traversal order.
func (g *Graph) detectCycle() error {
	visited := make(map[string]bool, len(g.skills))
	inPath := make(map[string]bool, len(g.skills))
	var path []string

	var visit func(id string) error
	visit = func(id string) error {
		visited[id] = true
		inPath[id] = true
		path = append(path, id)

		for _, pre := range g.prerequisites[id] {
			if inPath[pre] {
				return &CycleError{Path: extractCycle(path, pre)}
			}
			if !visited[pre] {
				if err := visit(pre); err != nil {
					return err
				}
			}
		}

		inPath[id] = false
		path = path[:len(path)-1]
		return nil
	}

	for _, id := range g.SkillIDs() {
		if !visited[id] {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractCycle trims the DFS path to the cycle members, closing the loop on
// the repeated id.
func extractCycle(path []string, back string) []string {
	for i, id := range path {
		if id == back {
			cycle := make([]string, 0, len(path)-i+1)
			cycle = append(cycle, path[i:]...)
			return append(cycle, back)
		}
	}
	return append([]string{}, back)
}

// Skill looks up a skill by id.
func (g *Graph) Skill(id string) (Skill, bool) {
	s, ok := g.skills[id]
	return s, ok
}

// HasSkill reports whether the id exists in the catalog.
func (g *Graph) HasSkill(id string) bool {
	_, ok := g.skills[id]
	return ok
}

// Len returns the number of skills in the graph.
func (g *Graph) Len() int {
	return len(g.skills)
}

// SkillIDs returns all skill ids in sorted order.
func (g *Graph) SkillIDs() []string {
	ids := make([]string, 0, len(g.skills))
	for id := range g.skills {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Prerequisites returns the direct prerequisites of a skill, sorted by id.
func (g *Graph) Prerequisites(id string) []string {
	return g.prerequisites[id]
}

// Dependents returns the skills directly unlocked by a skill, sorted by id.
func (g *Graph) Dependents(id string) []string {
	return g.dependents[id]
}

// EdgeCount returns the number of distinct prerequisite edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, pres := range g.prerequisites {
		n += len(pres)
	}
	return n
}
