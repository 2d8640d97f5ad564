package theme

import "github.com/charmbracelet/lipgloss"

// GlowBorder uses rounded corners for a softer look
var GlowBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

// Host chrome styles, rebuilt by ApplyTheme.
var (
	InspectorPanel lipgloss.Style
	InspectorTitle lipgloss.Style

	StatusBarStyle     lipgloss.Style
	StatusBarHighlight lipgloss.Style
	StatusBarError     lipgloss.Style

	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	HelpSepStyle  lipgloss.Style
)

// regenerateStyles rebuilds all style variables based on current color values.
func regenerateStyles() {
	InspectorPanel = lipgloss.NewStyle().
		Border(GlowBorder).
		BorderForeground(TextDim).
		Padding(0, 1)

	InspectorTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	StatusBarHighlight = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	StatusBarError = lipgloss.NewStyle().
		Foreground(ColorError)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(TextMuted)

	HelpSepStyle = lipgloss.NewStyle().
		Foreground(TextDim)
}
