package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/skillmap/pkg/application"
	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

// Exit codes: 1 for retryable input problems, 2 for catalog data-quality
// incidents that need an operator, not a retry.
const (
	ExitInputError   = 1
	ExitCatalogError = 2
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: ExitInputError,
	}
}

// newCatalogIncident marks an error as a catalog data-quality incident.
func newCatalogIncident(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: ExitCatalogError,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var cycleErr *catalog.CycleError
	if errors.As(err, &cycleErr) {
		return newCatalogIncident(
			cycleErr.Error(),
			"Fix the prerequisite loop in catalog.yaml - the catalog is corrupt",
			err,
		)
	}

	var unknownErr *catalog.UnknownSkillError
	if errors.As(err, &unknownErr) {
		return newCatalogIncident(
			unknownErr.Error(),
			fmt.Sprintf("Add skill '%s' to catalog.yaml or remove the reference", unknownErr.SkillID),
			err,
		)
	}

	var phaseErr *catalog.PhaseOrderError
	if errors.As(err, &phaseErr) {
		return newCatalogIncident(
			phaseErr.Error(),
			fmt.Sprintf("Move '%s' to an earlier phase or '%s' to a later one in catalog.yaml", phaseErr.PrerequisiteID, phaseErr.SkillID),
			err,
		)
	}

	var inputErr *roadmap.InvalidInputError
	if errors.As(err, &inputErr) {
		return NewCLIError(
			inputErr.Error(),
			"Run 'skillmap profile set' to correct the input, then retry",
			err,
		)
	}

	var prereqErr *roadmap.PrerequisiteError
	if errors.As(err, &prereqErr) {
		return NewCLIError(
			prereqErr.Error(),
			fmt.Sprintf("Complete module '%s' first, then retry", prereqErr.PrerequisiteID),
			err,
		)
	}

	var transErr *roadmap.TransitionError
	if errors.As(err, &transErr) {
		return NewCLIError(
			transErr.Error(),
			fmt.Sprintf("Module '%s' is '%s' - check 'skillmap progress status'", transErr.SkillID, transErr.FromStatus),
			err,
		)
	}

	switch {
	case errors.Is(err, application.ErrNoProfile):
		return NewCLIError("no profile found", "Run 'skillmap profile set --role <role> --weekly-hours <n>' first", err)
	case errors.Is(err, roadmap.ErrNoRoadmap):
		return NewCLIError("no roadmap found", "Run 'skillmap generate' first", err)
	case errors.Is(err, roadmap.ErrModuleNotFound):
		return NewCLIError("module not found in roadmap", "Run 'skillmap show' to list modules", err)
	case errors.Is(err, catalog.ErrEmptyCatalog):
		return NewCLIError("no catalog found", "Add a catalog.yaml to the .skillmap directory", err)
	case errors.Is(err, catalog.ErrRoleNotFound):
		return NewCLIError("role not found", "Run 'skillmap validate' to list catalog roles", err)
	}

	return err
}
