// Package widget defines the retained-mode widget protocol used by the demo:
// the Widget interface, the persisted state Tree that mirrors the widget
// tree, and the runtime that drives layout, events, operations and drawing
// on top of Bubble Tea messages.
package widget

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Widget is the contract every node of the tree satisfies, leaf or composite.
//
// Tag, State and Children describe the persisted state the node needs. The
// remaining methods receive the node's own Tree and the Layout produced by
// Layout during the same frame.
type Widget interface {
	// Tag identifies the kind of state the widget keeps.
	Tag() Tag
	// State returns a fresh default state value.
	State() any
	// Children returns freshly initialized state trees for the widget's children.
	Children() []*Tree

	Width() layout.Length
	Height() layout.Length

	// Layout sizes the widget and its children under the given limits.
	Layout(r *Renderer, limits layout.Limits) layout.Node

	// Operate walks an operation through the widget.
	Operate(tree *Tree, l layout.Layout, r *Renderer, op Operation)

	// OnEvent handles one event and reports whether it was captured.
	OnEvent(tree *Tree, ev Event, l layout.Layout, cursor Cursor, r *Renderer,
		cb Clipboard, sh *Shell, viewport layout.Rectangle) Status

	// Draw paints the widget into the renderer.
	Draw(tree *Tree, r *Renderer, th *theme.Theme, style Style, l layout.Layout,
		cursor Cursor, viewport layout.Rectangle)

	// MouseInteraction returns the pointer hint for the cursor position.
	MouseInteraction(tree *Tree, l layout.Layout, cursor Cursor,
		viewport layout.Rectangle, r *Renderer) Interaction
}

// Differ is implemented by widgets that reconcile their own children state.
type Differ interface {
	Diff(tree *Tree)
}

// Style is the inherited drawing style.
type Style struct {
	Foreground lipgloss.TerminalColor
}

// Element is an opaque node of the widget tree. Containers accept elements
// so that any widget composes anywhere.
type Element struct {
	widget Widget
}

// NewElement wraps a widget into an element.
func NewElement(w Widget) Element {
	return Element{widget: w}
}

// Widget returns the wrapped widget.
func (e Element) Widget() Widget {
	return e.widget
}

// Elements converts widgets into elements.
func Elements(ws ...Widget) []Element {
	out := make([]Element, len(ws))
	for i, w := range ws {
		out[i] = NewElement(w)
	}
	return out
}
