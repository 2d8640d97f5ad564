// Package textfield is a one line text entry backed by bubbles/textinput.
//
// The value is owned by the host: every frame builds the field with the
// current value and OnInput reports edits. The field's State holds the
// textinput model, which is where focus lives.
package textfield

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const marker = ">"

var (
	pasteKey = key.NewBinding(key.WithKeys("ctrl+v"))
	copyKey  = key.NewBinding(key.WithKeys("ctrl+y"))
)

// State is the persisted state of a field. It reports focus through
// widget.FocusQuery.
type State struct {
	input textinput.Model
}

func newState(placeholder, value string) *State {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	// Paste goes through the widget clipboard instead.
	ti.KeyMap.Paste.SetEnabled(false)
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	return &State{input: ti}
}

// IsFocused reports whether the field holds input focus.
func (s *State) IsFocused() bool {
	return s.input.Focused()
}

// Focus gives the field input focus.
func (s *State) Focus() {
	s.input.Focus()
}

// Unfocus removes input focus.
func (s *State) Unfocus() {
	s.input.Blur()
}

// Value returns the text being edited.
func (s *State) Value() string {
	return s.input.Value()
}

// Position returns the caret position in runes.
func (s *State) Position() int {
	return s.input.Position()
}

func (s *State) MoveCursorToFront() {
	s.input.CursorStart()
}

func (s *State) MoveCursorToEnd() {
	s.input.CursorEnd()
}

// TextField is the widget.
type TextField struct {
	id          string
	placeholder string
	value       string
	onInput     func(string) tea.Msg
	width       layout.Length
	charLimit   int
}

// New returns a field filling the available width.
func New(placeholder, value string) *TextField {
	return &TextField{
		placeholder: placeholder,
		value:       value,
		width:       layout.Fill,
	}
}

// ID names the field for focus operations.
func (f *TextField) ID(id string) *TextField {
	f.id = id
	return f
}

// OnInput sets the message published with the new value on every edit.
// Without it the field is read only.
func (f *TextField) OnInput(fn func(string) tea.Msg) *TextField {
	f.onInput = fn
	return f
}

// WithWidth sets the width policy.
func (f *TextField) WithWidth(l layout.Length) *TextField {
	f.width = l
	return f
}

// CharLimit caps the value length; 0 means no limit.
func (f *TextField) CharLimit(n int) *TextField {
	f.charLimit = max(n, 0)
	return f
}

// Element converts the field into a tree element.
func (f *TextField) Element() widget.Element {
	return widget.NewElement(f)
}

func (f *TextField) Tag() widget.Tag {
	return widget.TagOf[State]()
}

func (f *TextField) State() any {
	return newState(f.placeholder, f.value)
}

func (f *TextField) Children() []*widget.Tree { return nil }

func (f *TextField) Width() layout.Length  { return f.width }
func (f *TextField) Height() layout.Length { return layout.Fixed(1) }

func (f *TextField) Layout(r *widget.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(f.width).Height(f.Height())
	text := f.value
	if text == "" {
		text = f.placeholder
	}
	return layout.NewNode(limits.Resolve(layout.Size{
		Width:  r.Measure(marker) + r.Measure(text) + 1,
		Height: 1,
	}))
}

func (f *TextField) Operate(tree *widget.Tree, _ layout.Layout, _ *widget.Renderer, op widget.Operation) {
	state := tree.State.(*State)
	f.sync(state)
	op.Focusable(state, f.id)
	op.TextInput(state, f.id)
}

// sync brings the persisted model in line with the field built this frame.
func (f *TextField) sync(s *State) {
	s.input.Placeholder = f.placeholder
	s.input.CharLimit = f.charLimit
	if s.input.Value() != f.value {
		s.input.SetValue(f.value)
	}
}

func (f *TextField) OnEvent(tree *widget.Tree, ev widget.Event, l layout.Layout, cursor widget.Cursor,
	_ *widget.Renderer, cb widget.Clipboard, sh *widget.Shell, _ layout.Rectangle) widget.Status {
	state := tree.State.(*State)
	f.sync(state)
	bounds := l.Bounds()

	switch msg := ev.(type) {
	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return widget.Ignored
		}
		if !cursor.IsOver(bounds) {
			state.Unfocus()
			return widget.Ignored
		}
		state.Focus()
		p, _ := cursor.Position()
		col := p.X - bounds.X - 1
		value := []rune(state.Value())
		start := visibleStart(len(value), state.Position(), textWidth(bounds))
		state.input.SetCursor(min(max(start+col, 0), len(value)))
		return widget.Captured

	case tea.KeyMsg:
		if !state.IsFocused() {
			return widget.Ignored
		}
		switch {
		case key.Matches(msg, copyKey):
			if cb != nil {
				_ = cb.Write(state.Value())
			}
			return widget.Captured
		case key.Matches(msg, pasteKey):
			if cb == nil {
				return widget.Captured
			}
			text, err := cb.Read()
			if err != nil || text == "" {
				return widget.Captured
			}
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Paste: true}
		}
		f.update(state, msg, sh)
		return widget.Captured

	default:
		var cmd tea.Cmd
		state.input, cmd = state.input.Update(ev)
		sh.Exec(cmd)
		return widget.Ignored
	}
}

// update feeds a key to the model and reports an edit through OnInput.
func (f *TextField) update(state *State, msg tea.KeyMsg, sh *widget.Shell) {
	before := state.Value()
	var cmd tea.Cmd
	state.input, cmd = state.input.Update(msg)
	sh.Exec(cmd)

	after := state.Value()
	if after == before {
		return
	}
	if f.onInput == nil {
		state.input.SetValue(before)
		return
	}
	sh.Publish(f.onInput(after))
}

func (f *TextField) Draw(tree *widget.Tree, r *widget.Renderer, th *theme.Theme, _ widget.Style,
	l layout.Layout, cursor widget.Cursor, _ layout.Rectangle) {
	state := tree.State.(*State)
	bounds := l.Bounds()
	focused := state.IsFocused()
	styles := th.TextField(focused, cursor.IsOver(bounds))

	r.WithClip(bounds, func() {
		r.Fill(bounds, styles.Background)
		x := bounds.X + r.DrawText(bounds.Position(), marker, styles.Marker)

		width := textWidth(bounds)
		value := []rune(f.value)
		if len(value) == 0 {
			r.DrawText(layout.Point{X: x, Y: bounds.Y}, f.placeholder, styles.Placeholder)
			if focused {
				r.DrawText(layout.Point{X: x, Y: bounds.Y}, " ", styles.Cursor)
			}
			return
		}

		pos := min(state.Position(), len(value))
		start := visibleStart(len(value), pos, width)
		end := min(start+width, len(value))
		r.DrawText(layout.Point{X: x, Y: bounds.Y}, string(value[start:end]), styles.Value)
		if focused {
			ch := " "
			if pos < len(value) {
				ch = string(value[pos])
			}
			r.DrawText(layout.Point{X: x + pos - start, Y: bounds.Y}, ch, styles.Cursor)
		}
	})
}

func (f *TextField) MouseInteraction(_ *widget.Tree, l layout.Layout, cursor widget.Cursor,
	_ layout.Rectangle, _ *widget.Renderer) widget.Interaction {
	if cursor.IsOver(l.Bounds()) {
		return widget.Text
	}
	return widget.Idle
}

// textWidth is the number of cells left for text after the marker.
func textWidth(bounds layout.Rectangle) int {
	return max(bounds.Width-1, 1)
}

// visibleStart returns the first visible rune so that the caret at pos,
// which may sit one past the end, stays inside width cells.
func visibleStart(length, pos, width int) int {
	if pos < width {
		return 0
	}
	return min(pos-width+1, length)
}
