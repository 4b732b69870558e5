package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output is where all messages are written
var Output io.Writer = os.Stdout

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4") // Purple
	secondaryColor = lipgloss.Color("#00D9FF") // Cyan
	successColor   = lipgloss.Color("#04B575") // Green
	errorColor     = lipgloss.Color("#FF5F87") // Pink/Red
	warningColor   = lipgloss.Color("#FFAF00") // Orange
	mutedColor     = lipgloss.Color("#626262") // Gray

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginTop(1).
			MarginBottom(1).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
			MarginTop(1).
			PaddingLeft(1)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	keyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	// Icon styles
	checkmark = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true).
			SetString("✓")

	cross = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true).
		SetString("✗")

	arrow = lipgloss.NewStyle().
		Foreground(secondaryColor).
		SetString("→")

	dot = lipgloss.NewStyle().
		Foreground(mutedColor).
		SetString("•")

	// Item styles
	stepStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("#FAFAFA"))
)

// tableWidths are the column widths for lattice cell tables: Index, Universe, Translation, Rotation
var tableWidths = []int{14, 22, 32, 32}

// PrintTitle prints a major title (for app name or major sections)
func PrintTitle(title string) {
	fmt.Fprintln(Output, titleStyle.Render("╭─ "+title+" ─╮"))
}

// PrintHeader prints a section header
func PrintHeader(title string) {
	fmt.Fprintln(Output, headerStyle.Render("\n▸ "+title))
}

// PrintStep prints a step with indentation
func PrintStep(step string) {
	fmt.Fprintln(Output, stepStyle.Render(arrow.String()+" "+step))
}

// PrintItem prints an item in a list
func PrintItem(item string) {
	fmt.Fprintln(Output, itemStyle.Render(dot.String()+" "+item))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintln(Output, stepStyle.Render(checkmark.String()+" "+successStyle.Render(message)))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintln(Output, stepStyle.Render(cross.String()+" "+errorStyle.Render(message)))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintln(Output, stepStyle.Render("⚠ "+warningStyle.Render(message)))
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Fprintln(Output, stepStyle.Render(infoStyle.Render(message)))
}

// PrintKeyValue prints a key-value pair with nice formatting
func PrintKeyValue(key, value string) {
	fmt.Fprintln(Output, stepStyle.Render(keyStyle.Render(key+":")+" "+value))
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	fmt.Fprintln(Output, infoStyle.Render(strings.Repeat("─", 45)))
}

// fitColumn truncates or pads a column to width terminal cells
func fitColumn(col string, width int) string {
	if w := lipgloss.Width(col); w <= width {
		return col + strings.Repeat(" ", width-w)
	}

	var b strings.Builder
	used := 0
	for _, r := range col {
		rw := lipgloss.Width(string(r))
		if used+rw > width-3 {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String() + "..." + strings.Repeat(" ", width-3-used)
}

// PrintTableRow prints a formatted table row with columns
func PrintTableRow(columns ...string) {
	if len(columns) == 0 {
		return
	}

	row := ""
	for i, col := range columns {
		if i >= len(tableWidths) {
			break
		}

		row += fitColumn(col, tableWidths[i])
		if i < len(columns)-1 {
			row += " │ "
		}
	}

	fmt.Fprintln(Output, stepStyle.Render(row))
}

// PrintTableHeader prints a table header
func PrintTableHeader(headers ...string) {
	row := ""
	for i, header := range headers {
		if i >= len(tableWidths) {
			break
		}

		row += fitColumn(header, tableWidths[i])
		if i < len(headers)-1 {
			row += " │ "
		}
	}

	fmt.Fprintln(Output, stepStyle.Render(keyStyle.Render(row)))

	// Print separator line
	separator := ""
	for i := range headers {
		if i >= len(tableWidths) {
			break
		}
		separator += strings.Repeat("─", tableWidths[i])
		if i < len(headers)-1 {
			separator += "─┼─"
		}
	}
	fmt.Fprintln(Output, stepStyle.Render(infoStyle.Render(separator)))
}
