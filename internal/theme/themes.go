package theme

import "github.com/charmbracelet/lipgloss"

// Available themes
var (
	themes       []*Theme
	currentIndex int
)

func init() {
	themes = []*Theme{
		DefaultTheme(),
		PinaColadaTheme(),
		LobsterBoyTheme(),
		VampireWeekendTheme(),
	}
	currentIndex = 0
	ApplyTheme(themes[0])
}

// AllThemes returns all available themes.
func AllThemes() []*Theme {
	return themes
}

// CurrentTheme returns the currently active theme.
func CurrentTheme() *Theme {
	return themes[currentIndex]
}

// CurrentThemeIndex returns the index of the current theme.
func CurrentThemeIndex() int {
	return currentIndex
}

// NextTheme cycles to the next theme and applies it.
func NextTheme() *Theme {
	currentIndex = (currentIndex + 1) % len(themes)
	ApplyTheme(themes[currentIndex])
	return themes[currentIndex]
}

// SetThemeIndex sets the current theme by index and applies it.
// Returns false if index is out of bounds.
func SetThemeIndex(index int) bool {
	if index < 0 || index >= len(themes) {
		return false
	}
	currentIndex = index
	ApplyTheme(themes[currentIndex])
	return true
}

// ApplyTheme rebinds the semantic colors and rebuilds the chrome styles.
func ApplyTheme(t *Theme) {
	ColorPrimary = t.Colors.Primary
	ColorSecondary = t.Colors.Secondary
	ColorFocus = t.Colors.Focus
	ColorSuccess = t.Colors.Success
	ColorError = t.Colors.Error
	ColorWarning = t.Colors.Warning

	BgPrimary = t.Colors.BgPrimary
	BgInput = t.Colors.BgInput
	BgInputActive = t.Colors.BgInputActive

	TextPrimary = t.Colors.TextPrimary
	TextSecondary = t.Colors.TextSecondary
	TextMuted = t.Colors.TextMuted
	TextDim = t.Colors.TextDim

	regenerateStyles()
}

// PinaColadaTheme - Tropical sunset vibes
func PinaColadaTheme() *Theme {
	return &Theme{
		Name: "Piña Colada",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#FFD700"), // Golden pineapple
			Secondary:     lipgloss.Color("#FF6B35"), // Sunset orange
			Focus:         lipgloss.Color("#F7931E"), // Mango
			Success:       lipgloss.Color("#7CB518"), // Palm leaf
			Error:         lipgloss.Color("#D62828"), // Cherry
			Warning:       lipgloss.Color("#FCBF49"), // Banana
			BgPrimary:     lipgloss.Color("#1A0F0A"), // Dark coconut
			BgInput:       lipgloss.Color("#2D1810"), // Tiki wood
			BgInputActive: lipgloss.Color("#3D2518"), // Darker tiki
			TextPrimary:   lipgloss.Color("#FFF8E7"), // Coconut cream
			TextSecondary: lipgloss.Color("#E8D5B7"), // Sand
			TextMuted:     lipgloss.Color("#9E8B76"), // Driftwood
			TextDim:       lipgloss.Color("#5C4A3D"), // Wet sand
		},
	}
}

// LobsterBoyTheme - Fresh from the seafood shack
func LobsterBoyTheme() *Theme {
	return &Theme{
		Name: "Lobster Boy",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#E63946"),
			Secondary:     lipgloss.Color("#5CC8E4"),
			Focus:         lipgloss.Color("#F4A261"),
			Success:       lipgloss.Color("#2A9D8F"),
			Error:         lipgloss.Color("#9B2226"),
			Warning:       lipgloss.Color("#E9C46A"),
			BgPrimary:     lipgloss.Color("#0A1628"),
			BgInput:       lipgloss.Color("#132238"),
			BgInputActive: lipgloss.Color("#1D3048"),
			TextPrimary:   lipgloss.Color("#F1FAEE"),
			TextSecondary: lipgloss.Color("#A8DADC"),
			TextMuted:     lipgloss.Color("#6B8E9F"),
			TextDim:       lipgloss.Color("#3D5A6C"),
		},
	}
}

// VampireWeekendTheme - Gothic but make it indie
func VampireWeekendTheme() *Theme {
	return &Theme{
		Name: "Vampire Weekend",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#8B0000"),
			Secondary:     lipgloss.Color("#C0C0C0"),
			Focus:         lipgloss.Color("#DC143C"),
			Success:       lipgloss.Color("#228B22"),
			Error:         lipgloss.Color("#FF0000"),
			Warning:       lipgloss.Color("#FFD700"),
			BgPrimary:     lipgloss.Color("#0D0D0D"),
			BgInput:       lipgloss.Color("#1A1A1A"),
			BgInputActive: lipgloss.Color("#2D2D2D"),
			TextPrimary:   lipgloss.Color("#F5F5F5"),
			TextSecondary: lipgloss.Color("#B8B8B8"),
			TextMuted:     lipgloss.Color("#6E6E6E"),
			TextDim:       lipgloss.Color("#3D3D3D"),
		},
	}
}
