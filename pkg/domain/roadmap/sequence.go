package roadmap

import (
	"container/heap"
	"sort"

	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
)

// sequenceGap orders the gap using Kahn's algorithm over the induced
// subgraph: only edges between gap members count. Among ready skills the
// lowest (phase order, sequence order, id) tuple wins, which keeps output
// reproducible and phases front-loaded even when dependencies alone would
// permit interleaving.
func sequenceGap(g *catalog.Graph, gap map[string]struct{}) ([]catalog.Skill, error) {
	indegree := make(map[string]int, len(gap))
	for id := range gap {
		indegree[id] = 0
	}
	for id := range gap {
		for _, pre := range g.Prerequisites(id) {
			if _, ok := gap[pre]; ok {
				indegree[id]++
			}
		}
	}

	ready := &readyQueue{}
	heap.Init(ready)
	for id, deg := range indegree {
		if deg == 0 {
			skill, _ := g.Skill(id)
			heap.Push(ready, skill)
		}
	}

	ordered := make([]catalog.Skill, 0, len(gap))
	for ready.Len() > 0 {
		skill := heap.Pop(ready).(catalog.Skill)
		ordered = append(ordered, skill)
		for _, dep := range g.Dependents(skill.ID) {
			if _, ok := gap[dep]; !ok {
				continue
			}
			indegree[dep]--
			if indegree[dep] == 0 {
				next, _ := g.Skill(dep)
				heap.Push(ready, next)
			}
		}
	}

	// Residual indegree means the induced subgraph holds a cycle. BuildGraph
	// already rejected cyclic catalogs, but gap membership is computed per
	// request, so the check stays.
	if len(ordered) != len(gap) {
		var stuck []string
		for id, deg := range indegree {
			if deg > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, &catalog.CycleError{Path: stuck}
	}

	return ordered, nil
}

// readyQueue is a min-heap over (phase order, sequence order, id).
type readyQueue struct {
	items []catalog.Skill
}

func (q *readyQueue) Len() int { return len(q.items) }

func (q *readyQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.Phase.Order() != b.Phase.Order() {
		return a.Phase.Order() < b.Phase.Order()
	}
	if a.SequenceOrder != b.SequenceOrder {
		return a.SequenceOrder < b.SequenceOrder
	}
	return a.ID < b.ID
}

func (q *readyQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *readyQueue) Push(x any) { q.items = append(q.items, x.(catalog.Skill)) }

func (q *readyQueue) Pop() any {
	last := len(q.items) - 1
	item := q.items[last]
	q.items = q.items[:last]
	return item
}
