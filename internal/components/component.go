// Package components holds the leaf and container widgets the demo composes.
package components

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/widget"
)

// Base provides the defaults of a stateless leaf widget and its size policy.
// Embed it in widget structs and override what the widget needs.
type Base struct {
	width  layout.Length
	height layout.Length
}

// NewBase creates a new Base with the given size policy.
func NewBase(width, height layout.Length) Base {
	return Base{
		width:  width,
		height: height,
	}
}

// SetWidth updates the width policy.
func (b *Base) SetWidth(l layout.Length) {
	b.width = l
}

// SetHeight updates the height policy.
func (b *Base) SetHeight(l layout.Length) {
	b.height = l
}

func (b Base) Width() layout.Length { return b.width }
func (b Base) Height() layout.Length { return b.height }

func (Base) Tag() widget.Tag { return widget.NoTag }
func (Base) State() any { return nil }
func (Base) Children() []*widget.Tree { return nil }
func (Base) Operate(*widget.Tree, layout.Layout, *widget.Renderer, widget.Operation) {}

func (Base) OnEvent(*widget.Tree, widget.Event, layout.Layout, widget.Cursor, *widget.Renderer,
	widget.Clipboard, *widget.Shell, layout.Rectangle) widget.Status {
	return widget.Ignored
}

func (Base) MouseInteraction(*widget.Tree, layout.Layout, widget.Cursor, layout.Rectangle,
	*widget.Renderer) widget.Interaction {
	return widget.Idle
}
