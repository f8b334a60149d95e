package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorRenderer renders backend capability reports.
type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// DoctorReport is the outcome of probing the platform backends.
type DoctorReport struct {
	OverallOK bool
	Backends  []DoctorBackendCheck
	Config    DoctorConfigReport
}

// DoctorBackendCheck is one platform backend probe.
type DoctorBackendCheck struct {
	Name      string
	Available bool
	Detail    string
}

// DoctorConfigReport describes the resolved configuration sources.
type DoctorConfigReport struct {
	ConfigFile    string
	PlacementPath string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	sections := []string{
		r.renderBackends(report.Backends),
		r.renderConfig(report.Config),
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		r.renderHeader(report.OverallOK), "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "No usable backend"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderBackends(checks []DoctorBackendCheck) string {
	lines := make([]string, 0, len(checks))
	for _, c := range checks {
		icon := IconCheck
		statusStyle := r.theme.SuccessStyle
		status := "Available"
		if !c.Available {
			icon = IconX
			statusStyle = r.theme.ErrorStyle
			status = "Unavailable"
		}
		name := r.theme.Normal.Render(c.Name)
		badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
		line := fmt.Sprintf("%s %s %s", statusStyle.Render(icon), name, badge)
		if c.Detail != "" {
			line += "\n  " + r.theme.Subtle.Render(c.Detail)
		}
		lines = append(lines, line)
	}
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Backends", r.theme.Highlight.Render(IconDesktop)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderConfig(c DoctorConfigReport) string {
	lines := []string{}
	if c.ConfigFile != "" {
		lines = append(lines, fmt.Sprintf("%s %s",
			r.theme.Subtle.Render("Config file"), r.theme.Normal.Render(c.ConfigFile)))
	} else {
		lines = append(lines, r.theme.Subtle.Render("Config file: built-in defaults"))
	}
	lines = append(lines, fmt.Sprintf("%s %s",
		r.theme.Subtle.Render("Placement db"), r.theme.Normal.Render(c.PlacementPath)))

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Configuration", r.theme.Highlight.Render(IconConfig)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}
