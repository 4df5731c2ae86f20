package catalog

// Phase groups skills into ordered learning stages. Sequencing always
// prefers earlier phases wherever the prerequisite graph allows it.
type Phase string

const (
	// PhaseFoundation covers entry-level skills with no assumed background.
	PhaseFoundation Phase = "foundation"
	// PhaseCore covers the day-to-day skills of the target role.
	PhaseCore Phase = "core"
	// PhaseAdvanced covers skills that build on a working core.
	PhaseAdvanced Phase = "advanced"
	// PhaseSpecialization covers optional deep-dive skills.
	PhaseSpecialization Phase = "specialization"
)

// phaseOrder maps each phase to its ordinal. Lower comes first.
var phaseOrder = map[Phase]int{
	PhaseFoundation:     1,
	PhaseCore:           2,
	PhaseAdvanced:       3,
	PhaseSpecialization: 4,
}

// AllPhases returns all valid phases in learning order.
func AllPhases() []Phase {
	return []Phase{
		PhaseFoundation,
		PhaseCore,
		PhaseAdvanced,
		PhaseSpecialization,
	}
}

// IsValid checks if the phase is a known phase.
func (p Phase) IsValid() bool {
	_, ok := phaseOrder[p]
	return ok
}

// Order returns the phase ordinal, starting at 1. Invalid phases return 0.
func (p Phase) Order() int {
	return phaseOrder[p]
}

// String returns the string representation of the phase.
func (p Phase) String() string {
	return string(p)
}

// ParsePhase parses a string into a Phase.
func ParsePhase(s string) (Phase, bool) {
	p := Phase(s)
	return p, p.IsValid()
}
