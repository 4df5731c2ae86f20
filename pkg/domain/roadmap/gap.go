package roadmap

import (
	"fmt"
	"sort"

	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
)

// AnalyzeGap computes the set of skills the user must still learn to reach
// the target role: the role's required skills minus what the user already
// knows, expanded until prerequisite-complete. Every transitive prerequisite
// of a gap member is itself in the gap or already known, so the sequencer
// never sees a missing dependency.
//
// A role requirement naming a skill absent from the catalog is a catalog
// bug, not a user error.
func AnalyzeGap(g *catalog.Graph, role catalog.Role, known map[string]struct{}) (map[string]struct{}, error) {
	required := append([]string(nil), role.RequiredSkillIDs...)
	sort.Strings(required)

	gap := make(map[string]struct{})
	var frontier []string

	for _, id := range required {
		if !g.HasSkill(id) {
			return nil, &catalog.UnknownSkillError{
				SkillID: id,
				Context: fmt.Sprintf("role %q", role.ID),
			}
		}
		if _, ok := known[id]; ok {
			continue
		}
		frontier = append(frontier, id)
	}

	// Pull in unknown prerequisites even when the role does not list them.
	for len(frontier) > 0 {
		id := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if _, seen := gap[id]; seen {
			continue
		}
		gap[id] = struct{}{}
		for _, pre := range g.Prerequisites(id) {
			if _, ok := known[pre]; ok {
				continue
			}
			if _, seen := gap[pre]; !seen {
				frontier = append(frontier, pre)
			}
		}
	}

	return gap, nil
}

// knownSet validates the skip list against the catalog and converts it into
// a set. An unknown id in the skip list is a caller error, retryable after
// correction.
func knownSet(g *catalog.Graph, knownIDs []string) (map[string]struct{}, error) {
	known := make(map[string]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		if !g.HasSkill(id) {
			return nil, &InvalidInputError{
				Field:  "known_skill_ids",
				Reason: fmt.Sprintf("skill %q is not in the catalog", id),
			}
		}
		known[id] = struct{}{}
	}
	return known, nil
}
