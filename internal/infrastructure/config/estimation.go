package config

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/storage"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
	"gopkg.in/yaml.v3"
)

// EstimationConfig stores estimation tuning outside the engine. Absent or
// zero fields fall back to the engine defaults.
type EstimationConfig struct {
	PracticeRatio float64 `yaml:"practice_ratio"`
	BufferRatio   float64 `yaml:"buffer_ratio"`
	// DefaultWeeklyHours seeds new profiles when no weekly commitment is
	// given on the command line. Zero means no default.
	DefaultWeeklyHours int `yaml:"default_weekly_hours,omitempty"`
}

// WeeklyHoursDefault returns the configured default, nil-safe.
func (c *EstimationConfig) WeeklyHoursDefault() int {
	if c == nil {
		return 0
	}
	return c.DefaultWeeklyHours
}

// Options converts the config into engine estimate options.
func (c *EstimationConfig) Options() roadmap.EstimateOptions {
	if c == nil {
		return roadmap.DefaultEstimateOptions()
	}
	opts := roadmap.DefaultEstimateOptions()
	if c.PracticeRatio > 0 {
		opts.PracticeRatio = c.PracticeRatio
	}
	if c.BufferRatio > 0 {
		opts.BufferRatio = c.BufferRatio
	}
	return opts
}

func LoadEstimationConfig(root string) (*EstimationConfig, error) {
	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read estimation config: %w", err)
	}

	var cfg EstimationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal estimation config: %w", err)
	}

	return &cfg, nil
}

func SaveEstimationConfig(root string, cfg *EstimationConfig) error {
	if cfg == nil {
		return fmt.Errorf("estimation config is nil")
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal estimation config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
