package application_test

import (
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
	"github.com/felixgeelhaar/skillmap/pkg/domain/profile"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

// mockRepository is an in-memory WorkspaceRepository for service tests.
type mockRepository struct {
	catalog     *catalog.Document
	profile     *profile.Profile
	roadmap     *roadmap.Roadmap
	state       *roadmap.ProgressState
	initialized bool

	loadCatalogErr error
	saveRoadmapErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{}
}

func (m *mockRepository) Initialize() error {
	m.initialized = true
	return nil
}

func (m *mockRepository) IsInitialized() bool { return m.initialized }

func (m *mockRepository) SaveCatalog(doc *catalog.Document) error {
	m.catalog = doc
	return nil
}

func (m *mockRepository) LoadCatalog() (*catalog.Document, error) {
	if m.loadCatalogErr != nil {
		return nil, m.loadCatalogErr
	}
	return m.catalog, nil
}

func (m *mockRepository) LoadCatalogRaw() ([]byte, error) {
	if m.catalog == nil {
		return nil, nil
	}
	return yaml.Marshal(m.catalog)
}

func (m *mockRepository) SaveProfile(p *profile.Profile) error {
	m.profile = p
	return nil
}

func (m *mockRepository) LoadProfile() (*profile.Profile, error) {
	return m.profile, nil
}

func (m *mockRepository) SaveRoadmap(r *roadmap.Roadmap) error {
	if m.saveRoadmapErr != nil {
		return m.saveRoadmapErr
	}
	m.roadmap = r
	return nil
}

func (m *mockRepository) LoadRoadmap() (*roadmap.Roadmap, error) {
	return m.roadmap, nil
}

func (m *mockRepository) SaveState(s *roadmap.ProgressState) error {
	m.state = s
	return nil
}

func (m *mockRepository) LoadState() (*roadmap.ProgressState, error) {
	return m.state, nil
}

// testCatalog is a small backend-track catalog shared across service tests.
func testCatalog() *catalog.Document {
	return &catalog.Document{
		Skills: []catalog.Skill{
			{ID: "go", Slug: "go", Name: "Go", Phase: catalog.PhaseFoundation, EstimatedHours: 10, SequenceOrder: 1},
			{ID: "sql", Slug: "sql", Name: "SQL", Phase: catalog.PhaseFoundation, EstimatedHours: 8, SequenceOrder: 2},
			{ID: "api", Slug: "api", Name: "API Design", Phase: catalog.PhaseCore, EstimatedHours: 14, SequenceOrder: 1},
			{ID: "perf", Slug: "perf", Name: "Performance", Phase: catalog.PhaseAdvanced, EstimatedHours: 20, SequenceOrder: 1},
		},
		Prerequisites: []catalog.PrerequisiteEdge{
			{SkillID: "api", PrerequisiteID: "go"},
			{SkillID: "perf", PrerequisiteID: "api"},
			{SkillID: "perf", PrerequisiteID: "sql"},
		},
		Roles: []catalog.Role{
			{ID: "backend", Name: "Backend Engineer", RequiredSkillIDs: []string{"go", "sql", "api", "perf"}},
		},
	}
}
