// Package button is a clickable label that publishes a message.
package button

import (
	"github.com/avitaltamir/focuswrap/internal/components"
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// State remembers whether the button is being pressed.
type State struct {
	Pressed bool
}

// Button publishes its message when clicked.
type Button struct {
	components.Base

	label   string
	onPress tea.Msg
	padding int
}

// New returns a disabled button; set OnPress to enable it.
func New(label string) *Button {
	return &Button{
		Base:    components.NewBase(layout.Shrink, layout.Fixed(1)),
		label:   label,
		padding: 1,
	}
}

// OnPress sets the message published on click.
func (b *Button) OnPress(msg tea.Msg) *Button {
	b.onPress = msg
	return b
}

// Padding sets the horizontal room around the label.
func (b *Button) Padding(cells int) *Button {
	b.padding = max(cells, 0)
	return b
}

// WithWidth sets the width policy.
func (b *Button) WithWidth(l layout.Length) *Button {
	b.SetWidth(l)
	return b
}

// Element converts the button into a tree element.
func (b *Button) Element() widget.Element {
	return widget.NewElement(b)
}

func (b *Button) Tag() widget.Tag {
	return widget.TagOf[State]()
}

func (b *Button) State() any {
	return &State{}
}

func (b *Button) Layout(r *widget.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(b.Width()).Height(b.Height())
	return layout.NewNode(limits.Resolve(layout.Size{
		Width:  r.Measure(b.label) + 2*b.padding,
		Height: 1,
	}))
}

func (b *Button) OnEvent(tree *widget.Tree, ev widget.Event, l layout.Layout, cursor widget.Cursor,
	_ *widget.Renderer, _ widget.Clipboard, sh *widget.Shell, _ layout.Rectangle) widget.Status {
	msg, ok := ev.(tea.MouseMsg)
	if !ok || b.onPress == nil {
		return widget.Ignored
	}
	state := tree.State.(*State)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && cursor.IsOver(l.Bounds()) {
			state.Pressed = true
			return widget.Captured
		}
	case tea.MouseActionRelease:
		// Legacy mouse encodings do not report which button was released.
		if state.Pressed && (msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone) {
			state.Pressed = false
			if cursor.IsOver(l.Bounds()) {
				sh.Publish(b.onPress)
			}
			return widget.Captured
		}
	}
	return widget.Ignored
}

func (b *Button) Draw(tree *widget.Tree, r *widget.Renderer, th *theme.Theme, _ widget.Style,
	l layout.Layout, cursor widget.Cursor, _ layout.Rectangle) {
	bounds := l.Bounds()
	status := theme.ButtonActive
	switch {
	case b.onPress == nil:
		status = theme.ButtonDisabled
	case tree.State.(*State).Pressed:
		status = theme.ButtonPressed
	case cursor.IsOver(bounds):
		status = theme.ButtonHovered
	}
	style := th.Button(status)

	r.WithClip(bounds, func() {
		r.Fill(bounds, style)
		labelWidth := r.Measure(b.label)
		x := bounds.X + max((bounds.Width-labelWidth)/2, 0)
		r.DrawText(layout.Point{X: x, Y: bounds.Y}, b.label, style)
	})
}

func (b *Button) MouseInteraction(_ *widget.Tree, l layout.Layout, cursor widget.Cursor,
	_ layout.Rectangle, _ *widget.Renderer) widget.Interaction {
	if b.onPress != nil && cursor.IsOver(l.Bounds()) {
		return widget.Pointer
	}
	return widget.Idle
}
