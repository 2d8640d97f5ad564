// Package flex lays children out in a row or a column.
package flex

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
)

// Axis is the main axis of a Flex.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Flex distributes its children along one axis. Fill children share the
// room left by the others, proportionally to their fill portion.
type Flex struct {
	axis     Axis
	children []widget.Element
	spacing  int
	padding  layout.Padding
	width    layout.Length
	height   layout.Length
}

// Row returns a horizontal flex.
func Row(children ...widget.Element) *Flex {
	return &Flex{axis: Horizontal, children: children, width: layout.Shrink, height: layout.Shrink}
}

// Column returns a vertical flex.
func Column(children ...widget.Element) *Flex {
	return &Flex{axis: Vertical, children: children, width: layout.Shrink, height: layout.Shrink}
}

// Push appends a child.
func (f *Flex) Push(child widget.Element) *Flex {
	f.children = append(f.children, child)
	return f
}

// Spacing sets the room between children.
func (f *Flex) Spacing(cells int) *Flex {
	f.spacing = max(cells, 0)
	return f
}

// Padding sets the room around the children.
func (f *Flex) Padding(p layout.Padding) *Flex {
	f.padding = p
	return f
}

// WithWidth sets the width policy.
func (f *Flex) WithWidth(l layout.Length) *Flex {
	f.width = l
	return f
}

// WithHeight sets the height policy.
func (f *Flex) WithHeight(l layout.Length) *Flex {
	f.height = l
	return f
}

// Element converts the flex into a tree element.
func (f *Flex) Element() widget.Element {
	return widget.NewElement(f)
}

func (f *Flex) Tag() widget.Tag { return widget.NoTag }
func (f *Flex) State() any      { return nil }

func (f *Flex) Children() []*widget.Tree {
	out := make([]*widget.Tree, len(f.children))
	for i, c := range f.children {
		out[i] = widget.NewTree(c)
	}
	return out
}

func (f *Flex) Diff(tree *widget.Tree) {
	tree.DiffChildren(f.children)
}

func (f *Flex) Width() layout.Length  { return f.width }
func (f *Flex) Height() layout.Length { return f.height }

// main and cross split a size along the flex axis.
func (f *Flex) main(s layout.Size) int {
	if f.axis == Horizontal {
		return s.Width
	}
	return s.Height
}

func (f *Flex) cross(s layout.Size) int {
	if f.axis == Horizontal {
		return s.Height
	}
	return s.Width
}

func (f *Flex) size(main, cross int) layout.Size {
	if f.axis == Horizontal {
		return layout.Size{Width: main, Height: cross}
	}
	return layout.Size{Width: cross, Height: main}
}

func (f *Flex) point(main, cross int) layout.Point {
	if f.axis == Horizontal {
		return layout.Point{X: main, Y: cross}
	}
	return layout.Point{X: cross, Y: main}
}

func (f *Flex) fillFactor(w widget.Widget) int {
	if f.axis == Horizontal {
		return w.Width().FillFactor()
	}
	return w.Height().FillFactor()
}

func (f *Flex) Layout(r *widget.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(f.width).Height(f.height).Pad(f.padding)
	maxMain := f.main(limits.Max())
	maxCross := f.cross(limits.Max())

	nodes := make([]layout.Node, len(f.children))
	available := maxMain - f.spacing*max(len(f.children)-1, 0)
	crossSize := 0
	fillTotal := 0

	for i, c := range f.children {
		if factor := f.fillFactor(c.Widget()); factor > 0 {
			fillTotal += factor
			continue
		}
		childLimits := layout.NewLimits(layout.Size{}, f.size(max(available, 0), maxCross))
		nodes[i] = c.Widget().Layout(r, childLimits)
		available -= f.main(nodes[i].Size())
		crossSize = max(crossSize, f.cross(nodes[i].Size()))
	}

	remaining := max(available, 0)
	for i, c := range f.children {
		factor := f.fillFactor(c.Widget())
		if factor == 0 {
			continue
		}
		share := remaining * factor / fillTotal
		remaining -= share
		fillTotal -= factor
		childLimits := layout.NewLimits(f.size(share, 0), f.size(share, maxCross))
		nodes[i] = c.Widget().Layout(r, childLimits)
		crossSize = max(crossSize, f.cross(nodes[i].Size()))
	}

	offset := f.main(layout.Size{Width: f.padding.Left, Height: f.padding.Top})
	crossOffset := f.cross(layout.Size{Width: f.padding.Left, Height: f.padding.Top})
	used := 0
	for i := range nodes {
		if i > 0 {
			offset += f.spacing
			used += f.spacing
		}
		nodes[i] = nodes[i].Move(f.point(offset, crossOffset))
		offset += f.main(nodes[i].Size())
		used += f.main(nodes[i].Size())
	}

	inner := limits.Resolve(f.size(used, crossSize))
	size := layout.Size{
		Width:  inner.Width + f.padding.Horizontal(),
		Height: inner.Height + f.padding.Vertical(),
	}
	return layout.WithChildren(size, nodes...)
}

func (f *Flex) Operate(tree *widget.Tree, l layout.Layout, r *widget.Renderer, op widget.Operation) {
	op.Container("", l.Bounds(), func(op widget.Operation) {
		for i, c := range f.children {
			c.Widget().Operate(tree.Children[i], l.Child(i), r, op)
		}
	})
}

func (f *Flex) OnEvent(tree *widget.Tree, ev widget.Event, l layout.Layout, cursor widget.Cursor,
	r *widget.Renderer, cb widget.Clipboard, sh *widget.Shell, viewport layout.Rectangle) widget.Status {
	status := widget.Ignored
	for i, c := range f.children {
		s := c.Widget().OnEvent(tree.Children[i], ev, l.Child(i), cursor, r, cb, sh, viewport)
		status = status.Merge(s)
	}
	return status
}

func (f *Flex) Draw(tree *widget.Tree, r *widget.Renderer, th *theme.Theme, style widget.Style,
	l layout.Layout, cursor widget.Cursor, viewport layout.Rectangle) {
	for i, c := range f.children {
		child := l.Child(i)
		if !child.Bounds().Intersects(viewport) {
			continue
		}
		c.Widget().Draw(tree.Children[i], r, th, style, child, cursor, viewport)
	}
}

func (f *Flex) MouseInteraction(tree *widget.Tree, l layout.Layout, cursor widget.Cursor,
	viewport layout.Rectangle, r *widget.Renderer) widget.Interaction {
	for i, c := range f.children {
		if in := c.Widget().MouseInteraction(tree.Children[i], l.Child(i), cursor, viewport, r); in != widget.Idle {
			return in
		}
	}
	return widget.Idle
}
