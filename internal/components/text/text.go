// Package text is a single line label.
package text

import (
	"github.com/avitaltamir/focuswrap/internal/components"
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
	"github.com/charmbracelet/lipgloss"
)

// Text draws one line of text.
type Text struct {
	components.Base

	content string
	color   lipgloss.TerminalColor
}

// New returns a label sized to its content.
func New(content string) *Text {
	return &Text{
		Base:    components.NewBase(layout.Shrink, layout.Shrink),
		content: content,
	}
}

// WithWidth sets the width policy.
func (t *Text) WithWidth(l layout.Length) *Text {
	t.SetWidth(l)
	return t
}

// WithColor overrides the theme text color.
func (t *Text) WithColor(c lipgloss.TerminalColor) *Text {
	t.color = c
	return t
}

// Content returns the label text.
func (t *Text) Content() string {
	return t.content
}

// Element converts the label into a tree element.
func (t *Text) Element() widget.Element {
	return widget.NewElement(t)
}

func (t *Text) Layout(r *widget.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(t.Width()).Height(t.Height())
	return layout.NewNode(limits.Resolve(layout.Size{Width: r.Measure(t.content), Height: 1}))
}

func (t *Text) Draw(_ *widget.Tree, r *widget.Renderer, th *theme.Theme, style widget.Style,
	l layout.Layout, _ widget.Cursor, _ layout.Rectangle) {
	s := th.Text()
	if style.Foreground != nil {
		s = s.Foreground(style.Foreground)
	}
	if t.color != nil {
		s = s.Foreground(t.color)
	}
	bounds := l.Bounds()
	r.WithClip(bounds, func() {
		r.DrawText(bounds.Position(), t.content, s)
	})
}
