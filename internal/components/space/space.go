// Package space is an empty widget that only takes room.
package space

import (
	"github.com/avitaltamir/focuswrap/internal/components"
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
)

// Space is blank room in a layout.
type Space struct {
	components.Base
}

// New returns a space with the given size policy.
func New(width, height layout.Length) *Space {
	return &Space{Base: components.NewBase(width, height)}
}

// Horizontal returns a space that only grows horizontally.
func Horizontal(width layout.Length) *Space {
	return New(width, layout.Shrink)
}

// Vertical returns a space that only grows vertically.
func Vertical(height layout.Length) *Space {
	return New(layout.Shrink, height)
}

// Element converts the space into a tree element.
func (s *Space) Element() widget.Element {
	return widget.NewElement(s)
}

func (s *Space) Layout(_ *widget.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Width(s.Width()).Height(s.Height()).Resolve(layout.Size{}))
}

func (s *Space) Draw(*widget.Tree, *widget.Renderer, *theme.Theme, widget.Style, layout.Layout,
	widget.Cursor, layout.Rectangle) {
}
