package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDirName = ".config"
	appDirName    = "focuswrap"
	stateFileName = "state.yaml"
)

// State represents the persisted host preferences.
type State struct {
	// ThemeIndex is the index of the selected theme
	ThemeIndex int `yaml:"theme_index"`
	// ShowInspector indicates if the widget tree inspector (F12) was open
	ShowInspector bool `yaml:"show_inspector"`
	// Placeholder is shown by the text field while it is empty
	Placeholder string `yaml:"placeholder,omitempty"`
}

// DefaultState returns the default state for first run.
func DefaultState() State {
	return State{
		ThemeIndex:    0,
		ShowInspector: false,
	}
}

// configDir returns the path to the config directory (~/.config/focuswrap).
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, appDirName), nil
}

// Path returns the global path to the state file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

// Load reads the global state.
// Returns default state if file doesn't exist or can't be read.
func Load() State {
	path, err := Path()
	if err != nil {
		return DefaultState()
	}
	return LoadFrom(path)
}

// LoadFrom reads the state stored at path, falling back to defaults.
func LoadFrom(path string) State {
	s, err := read(path)
	if err != nil {
		return DefaultState()
	}
	return s
}

func read(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, err
	}

	s := DefaultState()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("state: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the global state.
func Save(s State) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, s)
}

// SaveTo writes the state to path, creating its directory.
func SaveTo(path string, s State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("state: create config dir: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("state: encode: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
