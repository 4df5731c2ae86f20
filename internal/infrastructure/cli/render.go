package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
)

// Styles
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var phaseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
var statusDone = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var statusWIP = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

func renderStatus(s roadmap.ModuleStatus) string {
	switch s {
	case roadmap.StatusCompleted:
		return statusDone.Render("done")
	case roadmap.StatusSkipped:
		return statusDone.Render("skipped")
	case roadmap.StatusInProgress:
		return statusWIP.Render("in progress")
	default:
		return dimStyle.Render("pending")
	}
}

// renderRoadmap writes the roadmap grouped by phase with the projection
// footer.
func renderRoadmap(r *roadmap.Roadmap, state *roadmap.ProgressState) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Roadmap for %s", r.RoleID)))
	b.WriteString("\n\n")

	byPhase := make(map[string][]roadmap.Module)
	for _, m := range r.Modules {
		byPhase[string(m.Phase)] = append(byPhase[string(m.Phase)], m)
	}

	for _, group := range r.Phases {
		b.WriteString(phaseStyle.Render(fmt.Sprintf("%s (%.0fh)", strings.ToUpper(group.Phase.String()), group.Hours)))
		b.WriteString("\n")
		for _, m := range byPhase[string(group.Phase)] {
			status := m.Status
			if state != nil {
				status = state.Status(m.SkillID)
			}
			optional := ""
			if m.Optional {
				optional = dimStyle.Render(" (optional)")
			}
			b.WriteString(fmt.Sprintf("  %2d. %-30s %6.1fh  %s%s\n",
				m.Position, m.Name, m.Hours, renderStatus(status), optional))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Total: %.0f hours (incl. buffer) at %d h/week\n",
		r.Projection.TotalHours, r.WeeklyHours))
	b.WriteString(fmt.Sprintf("Projected completion: %s (%.1f weeks)\n",
		r.Projection.ProjectedCompletion.Format("2006-01-02"), r.Projection.Weeks))

	return b.String()
}
