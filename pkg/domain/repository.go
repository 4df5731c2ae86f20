package domain

import (
	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
	"github.com/felixgeelhaar/skillmap/pkg/domain/profile"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

// WorkspaceRepository handles the persistence of skillmap artifacts in the
// .skillmap/ directory. The engine itself never touches it; only the
// application layer does.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveCatalog(doc *catalog.Document) error
	LoadCatalog() (*catalog.Document, error)
	// LoadCatalogRaw returns the undecoded catalog document for schema
	// validation.
	LoadCatalogRaw() ([]byte, error)
	SaveProfile(p *profile.Profile) error
	LoadProfile() (*profile.Profile, error)
	SaveRoadmap(r *roadmap.Roadmap) error
	LoadRoadmap() (*roadmap.Roadmap, error)
	SaveState(s *roadmap.ProgressState) error
	LoadState() (*roadmap.ProgressState, error)
}
