package application

import (
	"errors"
	"time"

	"github.com/felixgeelhaar/skillmap/pkg/domain"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

// ErrNoProfile indicates generation was requested before onboarding data
// exists.
var ErrNoProfile = errors.New("no profile found")

// RoadmapService orchestrates roadmap generation: it materializes the
// catalog graph, the profile and the clock value, invokes the pure engine,
// and persists the result. All latency lives here; the engine itself never
// waits on anything.
type RoadmapService struct {
	repo    domain.WorkspaceRepository
	catalog *CatalogService
	clock   func() time.Time
	options roadmap.EstimateOptions
}

func NewRoadmapService(repo domain.WorkspaceRepository, catalogSvc *CatalogService, clock func() time.Time, options roadmap.EstimateOptions) *RoadmapService {
	if clock == nil {
		clock = time.Now
	}
	return &RoadmapService{
		repo:    repo,
		catalog: catalogSvc,
		clock:   clock,
		options: options,
	}
}

// buildInput assembles a GenerationInput from the stored catalog and profile.
func (s *RoadmapService) buildInput() (roadmap.GenerationInput, error) {
	p, err := s.repo.LoadProfile()
	if err != nil {
		return roadmap.GenerationInput{}, err
	}
	if p == nil {
		return roadmap.GenerationInput{}, ErrNoProfile
	}
	if err := p.Validate(); err != nil {
		return roadmap.GenerationInput{}, &roadmap.InvalidInputError{Field: "profile", Reason: err.Error()}
	}

	graph, doc, err := s.catalog.LoadGraph()
	if err != nil {
		return roadmap.GenerationInput{}, err
	}

	role, err := s.catalog.ResolveRole(doc, p.TargetRole)
	if err != nil {
		return roadmap.GenerationInput{}, err
	}

	return roadmap.GenerationInput{
		Graph:         graph,
		Role:          role,
		KnownSkillIDs: p.KnownSkillIDs,
		WeeklyHours:   p.WeeklyHours,
		Now:           s.clock(),
		Options:       s.options,
	}, nil
}

// Generate produces and persists a fresh roadmap from the stored profile
// and catalog.
func (s *RoadmapService) Generate() (*roadmap.Roadmap, error) {
	input, err := s.buildInput()
	if err != nil {
		return nil, err
	}

	r, err := roadmap.Generate(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveRoadmap(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Regenerate re-runs generation against current inputs and carries tracked
// module progress forward. Stale progress entries are pruned afterwards.
func (s *RoadmapService) Regenerate() (*roadmap.RegenerationResult, error) {
	input, err := s.buildInput()
	if err != nil {
		return nil, err
	}

	previous, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}

	state, err := s.repo.LoadState()
	if err != nil {
		return nil, err
	}
	if previous != nil && state != nil {
		// The stored roadmap holds statuses as of its own generation; the
		// tracker state is the source of truth since then.
		for i := range previous.Modules {
			previous.Modules[i].Status = state.Status(previous.Modules[i].SkillID)
		}
	}

	result, err := roadmap.Regenerate(previous, input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveRoadmap(result.Roadmap); err != nil {
		return nil, err
	}

	if state != nil {
		state.Prune(result.Roadmap.SkillIDSet())
		if err := s.repo.SaveState(state); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Current returns the persisted roadmap, or ErrNoRoadmap.
func (s *RoadmapService) Current() (*roadmap.Roadmap, error) {
	r, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, roadmap.ErrNoRoadmap
	}
	return r, nil
}
