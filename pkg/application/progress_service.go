package application

import (
	"fmt"

	"github.com/felixgeelhaar/skillmap/pkg/domain"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

// ProgressService is the progress tracker: it owns module status
// transitions over the generated roadmap. The engine never sees this; a
// regeneration picks statuses up through the roadmap service.
type ProgressService struct {
	repo    domain.WorkspaceRepository
	catalog *CatalogService
}

func NewProgressService(repo domain.WorkspaceRepository, catalogSvc *CatalogService) *ProgressService {
	return &ProgressService{repo: repo, catalog: catalogSvc}
}

// Apply runs a status event (start, complete, stop, skip, reopen) against a
// module. Starting a module is refused while a prerequisite module in the
// roadmap is unfinished.
func (s *ProgressService) Apply(skillID, event string) (roadmap.ModuleStatus, error) {
	r, err := s.repo.LoadRoadmap()
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", roadmap.ErrNoRoadmap
	}
	if _, ok := r.Module(skillID); !ok {
		return "", fmt.Errorf("%w: %s", roadmap.ErrModuleNotFound, skillID)
	}

	state, err := s.repo.LoadState()
	if err != nil {
		return "", err
	}
	if state == nil {
		state = roadmap.NewProgressState()
	}

	if event == "start" {
		if err := s.checkPrerequisites(r, state, skillID); err != nil {
			return "", err
		}
	}

	machine, err := roadmap.NewModuleStateMachine(state.Status(skillID).String(), skillID, nil)
	if err != nil {
		return "", err
	}
	if err := machine.Transition(event); err != nil {
		return "", err
	}

	status := machine.CurrentStatus()
	state.Set(skillID, status)
	if err := s.repo.SaveState(state); err != nil {
		return "", err
	}
	return status, nil
}

// checkPrerequisites verifies every prerequisite of the skill that appears
// in the roadmap is finished.
func (s *ProgressService) checkPrerequisites(r *roadmap.Roadmap, state *roadmap.ProgressState, skillID string) error {
	graph, _, err := s.catalog.LoadGraph()
	if err != nil {
		return err
	}

	inRoadmap := r.SkillIDSet()
	for _, pre := range graph.Prerequisites(skillID) {
		if _, ok := inRoadmap[pre]; !ok {
			continue
		}
		if !state.Status(pre).IsDone() {
			return &roadmap.PrerequisiteError{SkillID: skillID, PrerequisiteID: pre}
		}
	}
	return nil
}

// Summary is an aggregate view of roadmap progress.
type Summary struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	InProgress     int     `json:"in_progress"`
	Completed      int     `json:"completed"`
	Skipped        int     `json:"skipped"`
	CompletedHours float64 `json:"completed_hours"`
	RemainingHours float64 `json:"remaining_hours"`
}

// CompletionRate returns the fraction of finished modules, 0..1.
func (sum Summary) CompletionRate() float64 {
	if sum.Total == 0 {
		return 0
	}
	return float64(sum.Completed+sum.Skipped) / float64(sum.Total)
}

// Summarize folds the tracker state over the current roadmap.
func (s *ProgressService) Summarize() (*Summary, error) {
	r, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, roadmap.ErrNoRoadmap
	}

	state, err := s.repo.LoadState()
	if err != nil {
		return nil, err
	}

	sum := &Summary{Total: len(r.Modules)}
	for _, m := range r.Modules {
		status := state.Status(m.SkillID)
		switch status {
		case roadmap.StatusInProgress:
			sum.InProgress++
			sum.RemainingHours += m.Hours
		case roadmap.StatusCompleted:
			sum.Completed++
			sum.CompletedHours += m.Hours
		case roadmap.StatusSkipped:
			sum.Skipped++
		default:
			sum.Pending++
			sum.RemainingHours += m.Hours
		}
	}
	return sum, nil
}

// Statuses returns the tracked status for every module in sequence order.
func (s *ProgressService) Statuses() ([]roadmap.PreservedStatus, error) {
	r, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, roadmap.ErrNoRoadmap
	}

	state, err := s.repo.LoadState()
	if err != nil {
		return nil, err
	}

	out := make([]roadmap.PreservedStatus, 0, len(r.Modules))
	for _, m := range r.Modules {
		out = append(out, roadmap.PreservedStatus{
			SkillID: m.SkillID,
			Status:  state.Status(m.SkillID),
		})
	}
	return out, nil
}
