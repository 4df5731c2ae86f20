package storage_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/storage"
	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
	"github.com/felixgeelhaar/skillmap/pkg/domain/profile"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

func newTestRepo(t *testing.T) *storage.FilesystemRepository {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return repo
}

func TestInitialize(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())

	if repo.IsInitialized() {
		t.Error("IsInitialized() = true before Initialize")
	}
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !repo.IsInitialized() {
		t.Error("IsInitialized() = false after Initialize")
	}
	// Idempotent.
	if err := repo.Initialize(); err != nil {
		t.Errorf("second Initialize() error = %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "plain file", filename: "catalog.yaml", wantErr: false},
		{name: "empty", filename: "", wantErr: true},
		{name: "parent traversal", filename: "../escape.yaml", wantErr: true},
		{name: "deep traversal", filename: "../../../etc/passwd", wantErr: true},
		{name: "nested subdir", filename: "sub/catalog.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.ResolvePath(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolvePath(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestCatalogRoundtrip(t *testing.T) {
	repo := newTestRepo(t)

	doc := &catalog.Document{
		Skills: []catalog.Skill{
			{ID: "go", Slug: "go", Name: "Go", Phase: catalog.PhaseFoundation, EstimatedHours: 10, SequenceOrder: 1},
			{ID: "api", Slug: "api", Name: "API Design", Phase: catalog.PhaseCore, EstimatedHours: 14, SequenceOrder: 1},
		},
		Prerequisites: []catalog.PrerequisiteEdge{
			{SkillID: "api", PrerequisiteID: "go"},
		},
		Roles: []catalog.Role{
			{ID: "backend", Name: "Backend Engineer", RequiredSkillIDs: []string{"go", "api"}},
		},
	}

	if err := repo.SaveCatalog(doc); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}

	loaded, err := repo.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, doc) {
		t.Errorf("LoadCatalog() = %+v, want %+v", loaded, doc)
	}

	raw, err := repo.LoadCatalogRaw()
	if err != nil {
		t.Fatalf("LoadCatalogRaw() error = %v", err)
	}
	if len(raw) == 0 {
		t.Error("LoadCatalogRaw() returned no bytes")
	}
}

func TestLoadCatalogMissing(t *testing.T) {
	repo := newTestRepo(t)

	doc, err := repo.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if doc != nil {
		t.Errorf("LoadCatalog() = %+v, want nil for absent file", doc)
	}
}

func TestProfileRoundtrip(t *testing.T) {
	repo := newTestRepo(t)

	p := profile.New("backend", 10, []string{"go"})
	if err := repo.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	loaded, err := repo.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if loaded.ID != p.ID {
		t.Errorf("ID = %q, want %q", loaded.ID, p.ID)
	}
	if loaded.TargetRole != "backend" || loaded.WeeklyHours != 10 {
		t.Errorf("loaded = %+v", loaded)
	}
	if !reflect.DeepEqual(loaded.KnownSkillIDs, []string{"go"}) {
		t.Errorf("KnownSkillIDs = %v, want [go]", loaded.KnownSkillIDs)
	}
}

func TestRoadmapRoundtrip(t *testing.T) {
	repo := newTestRepo(t)

	rm := &roadmap.Roadmap{
		ID:          "rm-abc123def456",
		RoleID:      "backend",
		GeneratedAt: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
		WeeklyHours: 10,
		Modules: []roadmap.Module{
			{SkillID: "go", Slug: "go", Name: "Go", Phase: catalog.PhaseFoundation, Position: 1, Status: roadmap.StatusPending, ResourceHours: 10, PracticeHours: 5, Hours: 15},
		},
	}

	if err := repo.SaveRoadmap(rm); err != nil {
		t.Fatalf("SaveRoadmap() error = %v", err)
	}

	loaded, err := repo.LoadRoadmap()
	if err != nil {
		t.Fatalf("LoadRoadmap() error = %v", err)
	}
	if loaded.ID != rm.ID {
		t.Errorf("ID = %q, want %q", loaded.ID, rm.ID)
	}
	if !loaded.GeneratedAt.Equal(rm.GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", loaded.GeneratedAt, rm.GeneratedAt)
	}
	if len(loaded.Modules) != 1 || loaded.Modules[0].SkillID != "go" {
		t.Errorf("Modules = %+v", loaded.Modules)
	}
}

func TestLoadRoadmapMissing(t *testing.T) {
	repo := newTestRepo(t)

	rm, err := repo.LoadRoadmap()
	if err != nil {
		t.Fatalf("LoadRoadmap() error = %v", err)
	}
	if rm != nil {
		t.Errorf("LoadRoadmap() = %+v, want nil for absent file", rm)
	}
}

func TestStateRoundtrip(t *testing.T) {
	repo := newTestRepo(t)

	state := roadmap.NewProgressState()
	state.Set("go", roadmap.StatusCompleted)
	state.Set("api", roadmap.StatusInProgress)

	if err := repo.SaveState(state); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	loaded, err := repo.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if loaded.Status("go") != roadmap.StatusCompleted {
		t.Errorf("go = %q, want completed", loaded.Status("go"))
	}
	if loaded.Status("api") != roadmap.StatusInProgress {
		t.Errorf("api = %q, want in_progress", loaded.Status("api"))
	}
	if loaded.Status("missing") != roadmap.StatusPending {
		t.Errorf("missing = %q, want pending default", loaded.Status("missing"))
	}
}

func TestSaveNilArguments(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.SaveCatalog(nil); err == nil {
		t.Error("SaveCatalog(nil) did not error")
	}
	if err := repo.SaveRoadmap(nil); err == nil {
		t.Error("SaveRoadmap(nil) did not error")
	}
	if err := repo.SaveState(nil); err == nil {
		t.Error("SaveState(nil) did not error")
	}
	if err := repo.SaveProfile(nil); err == nil {
		t.Error("SaveProfile(nil) did not error")
	}
}
