// Package container pads a single child and paints a background behind it.
package container

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
)

// Container holds exactly one child.
type Container struct {
	id         string
	content    widget.Element
	padding    layout.Padding
	width      layout.Length
	height     layout.Length
	background bool
}

// New returns a container that shrinks to its content.
func New(content widget.Element) *Container {
	return &Container{
		content: content,
		width:   layout.Shrink,
		height:  layout.Shrink,
	}
}

// ID names the container for operations.
func (c *Container) ID(id string) *Container {
	c.id = id
	return c
}

// Padding sets the same room on every side.
func (c *Container) Padding(cells int) *Container {
	c.padding = layout.Uniform(cells)
	return c
}

// WithWidth sets the width policy.
func (c *Container) WithWidth(l layout.Length) *Container {
	c.width = l
	return c
}

// WithHeight sets the height policy.
func (c *Container) WithHeight(l layout.Length) *Container {
	c.height = l
	return c
}

// Background paints the theme background behind the content.
func (c *Container) Background() *Container {
	c.background = true
	return c
}

// Element converts the container into a tree element.
func (c *Container) Element() widget.Element {
	return widget.NewElement(c)
}

func (c *Container) Tag() widget.Tag { return widget.NoTag }
func (c *Container) State() any      { return nil }

func (c *Container) Children() []*widget.Tree {
	return []*widget.Tree{widget.NewTree(c.content)}
}

func (c *Container) Diff(tree *widget.Tree) {
	tree.DiffChildren([]widget.Element{c.content})
}

func (c *Container) Width() layout.Length  { return c.width }
func (c *Container) Height() layout.Length { return c.height }

func (c *Container) Layout(r *widget.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(c.width).Height(c.height)
	content := c.content.Widget().Layout(r, limits.Pad(c.padding).Loose())
	content = content.Move(layout.Point{X: c.padding.Left, Y: c.padding.Top})

	size := limits.Resolve(layout.Size{
		Width:  content.Size().Width + c.padding.Horizontal(),
		Height: content.Size().Height + c.padding.Vertical(),
	})
	return layout.WithChildren(size, content)
}

func (c *Container) Operate(tree *widget.Tree, l layout.Layout, r *widget.Renderer, op widget.Operation) {
	op.Container(c.id, l.Bounds(), func(op widget.Operation) {
		c.content.Widget().Operate(tree.Children[0], l.Child(0), r, op)
	})
}

func (c *Container) OnEvent(tree *widget.Tree, ev widget.Event, l layout.Layout, cursor widget.Cursor,
	r *widget.Renderer, cb widget.Clipboard, sh *widget.Shell, viewport layout.Rectangle) widget.Status {
	return c.content.Widget().OnEvent(tree.Children[0], ev, l.Child(0), cursor, r, cb, sh, viewport)
}

func (c *Container) Draw(tree *widget.Tree, r *widget.Renderer, th *theme.Theme, style widget.Style,
	l layout.Layout, cursor widget.Cursor, viewport layout.Rectangle) {
	if c.background {
		r.Fill(l.Bounds(), th.Background())
	}
	c.content.Widget().Draw(tree.Children[0], r, th, style, l.Child(0), cursor, viewport)
}

func (c *Container) MouseInteraction(tree *widget.Tree, l layout.Layout, cursor widget.Cursor,
	viewport layout.Rectangle, r *widget.Renderer) widget.Interaction {
	return c.content.Widget().MouseInteraction(tree.Children[0], l.Child(0), cursor, viewport, r)
}
