package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTransformHelp renders the help text for the transform command with lipgloss styling
func renderTransformHelp() string {
	// Define styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginTop(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Examples"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Pure translation"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("mcnpgeom transform 0 0 5"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Translation and rotation matrix (direction cosines, row-major)"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("mcnpgeom transform 0 0 5  0 -1 0  1 0 0  0 0 1"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Rotation entries given as angles in degrees"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("mcnpgeom transform -d 0 0 5  90 180 90  0 90 90  90 90 0"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("A full record"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("mcnpgeom transform --card \"*TR3 0 0 5 90 180 90 0 90 90 90 90 0\""))
	b.WriteString("\n\n")

	notes := []string{
		"Only 3 or 12 values are accepted.",
		"Put -- before the values when the first one is negative.",
		"Angles are reported in degrees and radians, composed as Rz·Ry·Rx.",
	}
	for _, n := range notes {
		b.WriteString("  " + commentStyle.Render(n))
		b.WriteString("\n")
	}

	return b.String()
}
