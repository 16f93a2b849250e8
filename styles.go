package cssweep

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the report sections.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for the header and summary lines.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleGreen is used for the used-stylesheets section.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleYellow is used for the unused-stylesheets section and warnings.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGray is used for hints and empty-section placeholders.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
