package wiring

import (
	"time"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/config"
	"github.com/felixgeelhaar/skillmap/internal/infrastructure/storage"
	"github.com/felixgeelhaar/skillmap/pkg/application"
)

// AppServices exposes the application layer services wired together for a
// workspace root.
type AppServices struct {
	Repo     *storage.FilesystemRepository
	Catalog  *application.CatalogService
	Roadmap  *application.RoadmapService
	Progress *application.ProgressService
}

// BuildAppServices constructs the services for a workspace root. Estimation
// tuning comes from config.yaml when present; the wall clock drives
// completion projection.
func BuildAppServices(root string) (*AppServices, error) {
	repo := storage.NewFilesystemRepository(root)

	cfg, err := config.LoadEstimationConfig(root)
	if err != nil {
		return nil, err
	}

	catalogSvc := application.NewCatalogService(repo)
	roadmapSvc := application.NewRoadmapService(repo, catalogSvc, time.Now, cfg.Options())
	progressSvc := application.NewProgressService(repo, catalogSvc)

	return &AppServices{
		Repo:     repo,
		Catalog:  catalogSvc,
		Roadmap:  roadmapSvc,
		Progress: progressSvc,
	}, nil
}
