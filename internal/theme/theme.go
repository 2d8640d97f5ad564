package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all visual configuration for the widgets.
type Theme struct {
	// Name of the theme
	Name string

	// Color palette
	Colors ColorPalette
}

// ColorPalette holds all color definitions.
type ColorPalette struct {
	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Focus     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color

	// Background colors
	BgPrimary     lipgloss.Color
	BgInput       lipgloss.Color
	BgInputActive lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextDim       lipgloss.Color
}

// DefaultTheme returns the default cyberpunk theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "Cyberpunk",
		Colors: ColorPalette{
			Primary:       MagentaBlaze,
			Secondary:     CyberCyan,
			Focus:         HotPink,
			Success:       MatrixGreen,
			Error:         NeonRed,
			Warning:       ElectricYellow,
			BgPrimary:     VoidPurple,
			BgInput:       DeepSpace,
			BgInputActive: Twilight,
			TextPrimary:   PureWhite,
			TextSecondary: Silver,
			TextMuted:     MutedLavender,
			TextDim:       DimPurple,
		},
	}
}

// Text returns the style of plain text.
func (t *Theme) Text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.TextPrimary)
}

// Background returns the style of the window background.
func (t *Theme) Background() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.Colors.BgPrimary)
}

// TextFieldStyle holds the styles of a text field in one state.
type TextFieldStyle struct {
	Background  lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Marker      lipgloss.Style
}

// TextField returns the text field styles for the given state.
func (t *Theme) TextField(focused, hovered bool) TextFieldStyle {
	bg := t.Colors.BgInput
	marker := t.Colors.TextDim
	if focused {
		bg = t.Colors.BgInputActive
		marker = t.Colors.Focus
	} else if hovered {
		marker = t.Colors.Secondary
	}
	base := lipgloss.NewStyle().Background(bg)
	return TextFieldStyle{
		Background:  base,
		Value:       base.Foreground(t.Colors.TextPrimary),
		Placeholder: base.Foreground(t.Colors.TextMuted).Italic(true),
		Cursor:      base.Foreground(t.Colors.TextPrimary).Reverse(true),
		Marker:      base.Foreground(marker).Bold(focused),
	}
}

// ButtonStatus is the interaction state of a button.
type ButtonStatus int

const (
	ButtonActive ButtonStatus = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// Button returns the style of a button label.
func (t *Theme) Button(status ButtonStatus) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch status {
	case ButtonHovered:
		return s.Foreground(t.Colors.BgPrimary).Background(t.Colors.Secondary)
	case ButtonPressed:
		return s.Foreground(t.Colors.BgPrimary).Background(t.Colors.Primary)
	case ButtonDisabled:
		return s.Foreground(t.Colors.TextDim).Background(t.Colors.BgInput)
	default:
		return s.Foreground(t.Colors.TextPrimary).Background(t.Colors.BgInputActive)
	}
}
