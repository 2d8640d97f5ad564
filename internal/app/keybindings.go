package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the application.
type KeyMap struct {
	Quit key.Binding

	// Focus
	FocusNext key.Binding
	FocusPrev key.Binding
	Unfocus   key.Binding

	// Chrome
	NextTheme key.Binding
	Inspector key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Unfocus: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "unfocus"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "theme"),
		),
		Inspector: key.NewBinding(
			key.WithKeys("f12"),
			key.WithHelp("f12", "inspector"),
		),
	}
}

// ShortHelp returns the short help text for the key map.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Unfocus, k.NextTheme, k.Inspector, k.Quit}
}

// FullHelp returns the full help text for the key map.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.Unfocus},
		{k.NextTheme, k.Inspector, k.Quit},
	}
}
