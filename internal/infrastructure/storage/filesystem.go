package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
	"github.com/felixgeelhaar/skillmap/pkg/domain/profile"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
	"gopkg.in/yaml.v3"
)

const SkillmapDir = ".skillmap"
const CatalogFile = "catalog.yaml"
const ProfileFile = "profile.yaml"
const RoadmapFile = "roadmap.json"
const StateFile = "state.json"
const ConfigFile = "config.yaml"

// FilesystemRepository persists skillmap artifacts under <root>/.skillmap.
type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// ResolvePath ensures the path is within the .skillmap directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, SkillmapDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Check for traversal and ensure it's a direct child (no nested subdirs in .skillmap)
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, SkillmapDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .skillmap directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, SkillmapDir))
	return err == nil
}

func (r *FilesystemRepository) SaveCatalog(doc *catalog.Document) error {
	if doc == nil {
		return fmt.Errorf("catalog document is nil")
	}
	path, err := r.ResolvePath(CatalogFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadCatalog() (*catalog.Document, error) {
	retryer := retry.New[*catalog.Document](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*catalog.Document, error) {
		data, err := r.LoadCatalogRaw()
		if err != nil || data == nil {
			return nil, err
		}

		var doc catalog.Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
		}
		return &doc, nil
	})
}

// LoadCatalogRaw returns the undecoded catalog bytes, nil if absent.
func (r *FilesystemRepository) LoadCatalogRaw() ([]byte, error) {
	path, err := r.ResolvePath(CatalogFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return data, nil
}

func (r *FilesystemRepository) SaveProfile(p *profile.Profile) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}
	path, err := r.ResolvePath(ProfileFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadProfile() (*profile.Profile, error) {
	path, err := r.ResolvePath(ProfileFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p profile.Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &p, nil
}

func (r *FilesystemRepository) SaveRoadmap(rm *roadmap.Roadmap) error {
	if rm == nil {
		return fmt.Errorf("roadmap is nil")
	}
	path, err := r.ResolvePath(RoadmapFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(rm, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadRoadmap() (*roadmap.Roadmap, error) {
	retryer := retry.New[*roadmap.Roadmap](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*roadmap.Roadmap, error) {
		path, err := r.ResolvePath(RoadmapFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to read roadmap: %w", err)
		}

		var rm roadmap.Roadmap
		if err := json.Unmarshal(data, &rm); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roadmap: %w", err)
		}
		return &rm, nil
	})
}

func (r *FilesystemRepository) SaveState(s *roadmap.ProgressState) error {
	if s == nil {
		return fmt.Errorf("progress state is nil")
	}
	path, err := r.ResolvePath(StateFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadState() (*roadmap.ProgressState, error) {
	path, err := r.ResolvePath(StateFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	var s roadmap.ProgressState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return &s, nil
}
