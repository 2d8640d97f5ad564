package theme

import "github.com/charmbracelet/lipgloss"

// Accent colors
var (
	MagentaBlaze   = lipgloss.Color("#FF00FF") // Primary accent
	CyberCyan      = lipgloss.Color("#00FFFF") // Secondary accent
	HotPink        = lipgloss.Color("#FF10F0") // Focus ring
	MatrixGreen    = lipgloss.Color("#39FF14") // Success
	NeonRed        = lipgloss.Color("#FF3131") // Errors
	ElectricYellow = lipgloss.Color("#FFFF00") // Warnings
)

// Background colors
var (
	VoidPurple = lipgloss.Color("#0D0221") // Window background
	DeepSpace  = lipgloss.Color("#1A0A2E") // Input background
	Twilight   = lipgloss.Color("#2D1B4E") // Focused input / hovered button
)

// Text colors, from bright to dim
var (
	PureWhite     = lipgloss.Color("#FFFFFF")
	Silver        = lipgloss.Color("#E0E0E0")
	MutedLavender = lipgloss.Color("#888899") // Placeholders
	DimPurple     = lipgloss.Color("#4A4A6A")
)

// Semantic aliases, rebound by ApplyTheme.
var (
	ColorPrimary   = MagentaBlaze
	ColorSecondary = CyberCyan
	ColorFocus     = HotPink
	ColorSuccess   = MatrixGreen
	ColorError     = NeonRed
	ColorWarning   = ElectricYellow

	BgPrimary     = VoidPurple
	BgInput       = DeepSpace
	BgInputActive = Twilight

	TextPrimary   = PureWhite
	TextSecondary = Silver
	TextMuted     = MutedLavender
	TextDim       = DimPurple
)
