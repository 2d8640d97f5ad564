package app

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/avitaltamir/focuswrap/internal/state"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) (Model, string) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { theme.SetThemeIndex(0) })

	path := filepath.Join(t.TempDir(), "state.yaml")
	m := New(WithStatePath(path), WithClipboard(&widget.MemoryClipboard{}))
	t.Cleanup(m.close)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	return next.(Model), path
}

// update feeds the messages to the model and follows the resulting
// operations and application messages.
func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = follow(next.(Model), cmd, 0)
	}
	return m
}

func follow(m Model, cmd tea.Cmd, depth int) Model {
	if cmd == nil || depth > 5 {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = follow(m, c, depth+1)
		}
	case operateMsg, TextInputMsg, TextInputFocusedMsg, ClearMsg, FocusMsg:
		next, c := m.Update(msg)
		m = follow(next.(Model), c, depth+1)
	}
	return m
}

// locate returns the cell where s is drawn on the canvas.
func locate(t *testing.T, m Model, s string) (int, int) {
	t.Helper()
	ui := m.build()
	ui.Draw(theme.CurrentTheme(), widget.Style{})
	for y, line := range strings.Split(ui.Renderer().Plain(), "\n") {
		if x := strings.Index(line, s); x >= 0 {
			return x, y
		}
	}
	t.Fatalf("%q is not on screen", s)
	return 0, 0
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	m := New(WithStatePath(filepath.Join(t.TempDir(), "state.yaml")))
	t.Cleanup(m.close)

	assert.False(t, m.Focused())
	assert.Empty(t, m.Text())
	assert.NotNil(t, m.tree)
	assert.NotNil(t, m.watcher)
	assert.Equal(t, "Initializing...", m.View())
}

func TestInitFocusesTextField(t *testing.T) {
	m, _ := newModel(t)

	batch, ok := m.Init()().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)

	msg, ok := batch[0]().(operateMsg)
	require.True(t, ok)
	m = update(t, m, msg)

	assert.True(t, m.Focused())
	assert.Contains(t, m.View(), "Character count: 0")
}

func TestTyping(t *testing.T) {
	m, _ := newModel(t)
	m = update(t, m, operateMsg{op: widget.Focus(TextInputID)})

	m = update(t, m, typed("h"), typed("é"), typed("y"))

	assert.Equal(t, "héy", m.Text())
	// the count is in bytes
	assert.Contains(t, m.View(), "Character count: 4")
}

func TestPointerFocus(t *testing.T) {
	m, _ := newModel(t)
	assert.Contains(t, m.View(), "Would you please focus?")

	x, y := locate(t, m, ">")
	m = update(t, m, press(x+1, y))
	assert.True(t, m.Focused())

	m = update(t, m, press(x+1, y+4))
	assert.False(t, m.Focused())
	assert.Contains(t, m.View(), "Would you please focus?")
}

func TestButtons(t *testing.T) {
	t.Run("Clear empties the text", func(t *testing.T) {
		m, _ := newModel(t)
		m = update(t, m, operateMsg{op: widget.Focus(TextInputID)}, typed("abc"))
		require.Equal(t, "abc", m.Text())

		x, y := locate(t, m, "Clear")
		m = update(t, m, press(x+1, y), release(x+1, y))

		assert.Empty(t, m.Text())
	})

	t.Run("Focus focuses the text field", func(t *testing.T) {
		m, _ := newModel(t)
		require.False(t, m.Focused())

		x, y := locate(t, m, "Focus")
		m = update(t, m, press(x+1, y), release(x+1, y))

		assert.True(t, m.Focused())
	})
}

func TestFocusKeys(t *testing.T) {
	m, _ := newModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.True(t, m.Focused())
}

func TestKeysIgnoredWhileUnfocused(t *testing.T) {
	m, _ := newModel(t)

	m = update(t, m, typed("abc"))

	assert.Empty(t, m.Text())
	assert.False(t, m.Focused())
}

func TestThemeKey(t *testing.T) {
	m, path := newModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF2})

	assert.Equal(t, 1, theme.CurrentThemeIndex())
	assert.Equal(t, 1, state.LoadFrom(path).ThemeIndex)
	assert.Contains(t, m.View(), theme.CurrentTheme().Name)
}

func TestInspector(t *testing.T) {
	m, path := newModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 60})
	assert.NotContains(t, m.View(), "Widget tree")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF12})

	view := m.View()
	assert.Contains(t, view, "Widget tree")
	assert.Contains(t, view, "id: text_input")
	assert.True(t, state.LoadFrom(path).ShowInspector)
}

func TestStateChanged(t *testing.T) {
	m, _ := newModel(t)

	// The returned command waits for the next change; leave it alone.
	next, cmd := m.Update(state.ChangedMsg{State: state.State{ThemeIndex: 2, Placeholder: "say something"}})
	m = next.(Model)

	assert.NotNil(t, cmd)
	assert.Equal(t, 2, theme.CurrentThemeIndex())
	assert.Contains(t, m.View(), "say something")

	next, _ = m.Update(state.ChangedMsg{Err: assert.AnError})
	assert.Contains(t, next.View(), assert.AnError.Error())
}

func TestStatusBar(t *testing.T) {
	m, _ := newModel(t)

	view := m.View()
	assert.Contains(t, view, Version)
	assert.Contains(t, view, "tab next")

	m = update(t, m, ErrorMsg{Err: assert.AnError})
	assert.Contains(t, m.View(), assert.AnError.Error())
}

func TestQuit(t *testing.T) {
	m, path := newModel(t)
	m.prefs.ThemeIndex = 3

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 3, state.LoadFrom(path).ThemeIndex)
}
