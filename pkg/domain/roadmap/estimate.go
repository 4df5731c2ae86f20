package roadmap

import (
	"fmt"
	"math"
	"time"
)

// Estimation tuning defaults. Named so they can be tuned via configuration
// without touching the algorithm.
const (
	// DefaultPracticeRatio adds hands-on practice time on top of resource time.
	DefaultPracticeRatio = 0.5
	// DefaultBufferRatio pads the aggregate for real-world pacing variance.
	DefaultBufferRatio = 0.10
)

// EstimateOptions tunes time estimation. Zero values fall back to defaults.
type EstimateOptions struct {
	PracticeRatio float64 `json:"practice_ratio" yaml:"practice_ratio"`
	BufferRatio   float64 `json:"buffer_ratio" yaml:"buffer_ratio"`
}

// DefaultEstimateOptions returns the standard tuning.
func DefaultEstimateOptions() EstimateOptions {
	return EstimateOptions{
		PracticeRatio: DefaultPracticeRatio,
		BufferRatio:   DefaultBufferRatio,
	}
}

// normalized fills zero fields with defaults.
func (o EstimateOptions) normalized() EstimateOptions {
	if o.PracticeRatio == 0 {
		o.PracticeRatio = DefaultPracticeRatio
	}
	if o.BufferRatio == 0 {
		o.BufferRatio = DefaultBufferRatio
	}
	return o
}

// TimeProjection aggregates module hours into a completion forecast.
type TimeProjection struct {
	// RawHours is the unbuffered sum of module hours, full precision.
	RawHours float64 `json:"raw_hours"`
	// TotalHours is the buffered aggregate, rounded to whole hours for
	// display. Rounding happens once, here, never per module.
	TotalHours float64 `json:"total_hours"`
	// Weeks is the projected duration at the committed weekly hours,
	// computed from the unrounded buffered total.
	Weeks float64 `json:"weeks"`
	// ProjectedCompletion is the generation time plus ceil(Weeks) weeks.
	ProjectedCompletion time.Time `json:"projected_completion"`
}

// project computes the aggregate projection over estimated modules.
// weeklyHours must be positive; division by zero is a caller contract
// violation, never performed silently.
func project(modules []Module, weeklyHours int, now time.Time, opts EstimateOptions) (TimeProjection, error) {
	if weeklyHours <= 0 {
		return TimeProjection{}, &InvalidInputError{
			Field:  "weekly_hours",
			Reason: fmt.Sprintf("must be positive, got %d", weeklyHours),
		}
	}

	opts = opts.normalized()

	raw := 0.0
	for _, m := range modules {
		raw += m.Hours
	}

	buffered := raw * (1 + opts.BufferRatio)
	weeks := buffered / float64(weeklyHours)

	return TimeProjection{
		RawHours:            raw,
		TotalHours:          math.Round(buffered),
		Weeks:               weeks,
		ProjectedCompletion: now.AddDate(0, 0, int(math.Ceil(weeks))*7),
	}, nil
}
