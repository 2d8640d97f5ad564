package widget

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

type focusState struct {
	focused bool
	value   string
	caret   int
}

func (s *focusState) IsFocused() bool { return s.focused }
func (s *focusState) Focus() { s.focused = true }
func (s *focusState) Unfocus() { s.focused = false }
func (s *focusState) Value() string { return s.value }
func (s *focusState) MoveCursorToFront() { s.caret = 0 }
func (s *focusState) MoveCursorToEnd() { s.caret = len(s.value) }

// leaf is a fixed size focusable widget that captures every event.
type leaf struct {
	id    string
	size  layout.Size
	label string
}

func (w *leaf) Tag() Tag { return TagOf[focusState]() }
func (w *leaf) State() any { return &focusState{value: w.label} }
func (w *leaf) Children() []*Tree { return nil }
func (w *leaf) Width() layout.Length { return layout.Fixed(w.size.Width) }
func (w *leaf) Height() layout.Length { return layout.Fixed(w.size.Height) }

func (w *leaf) Layout(_ *Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Width(w.Width()).Height(w.Height()).Resolve(w.size))
}

func (w *leaf) Operate(tree *Tree, _ layout.Layout, _ *Renderer, op Operation) {
	op.Focusable(tree.State.(*focusState), w.id)
	op.TextInput(tree.State.(*focusState), w.id)
}

func (w *leaf) OnEvent(tree *Tree, ev Event, _ layout.Layout, _ Cursor, _ *Renderer,
	_ Clipboard, sh *Shell, _ layout.Rectangle) Status {
	if s, ok := ev.(string); ok {
		sh.Publish(w.id + ":" + s)
		return Captured
	}
	return Ignored
}

func (w *leaf) Draw(_ *Tree, r *Renderer, _ *theme.Theme, _ Style, l layout.Layout, _ Cursor, _ layout.Rectangle) {
	r.DrawText(l.Bounds().Position(), w.label, lipgloss.NewStyle())
}

func (w *leaf) MouseInteraction(_ *Tree, l layout.Layout, c Cursor, _ layout.Rectangle, _ *Renderer) Interaction {
	if c.IsOver(l.Bounds()) {
		return Text
	}
	return Idle
}

// group stacks its children vertically.
type group struct {
	children []Element
}

func (g *group) Tag() Tag { return NoTag }
func (g *group) State() any { return nil }

func (g *group) Children() []*Tree {
	var out []*Tree
	for _, c := range g.children {
		out = append(out, NewTree(c))
	}
	return out
}

func (g *group) Diff(tree *Tree) { tree.DiffChildren(g.children) }

func (g *group) Width() layout.Length { return layout.Shrink }
func (g *group) Height() layout.Length { return layout.Shrink }

func (g *group) Layout(r *Renderer, limits layout.Limits) layout.Node {
	var nodes []layout.Node
	y, w := 0, 0
	for _, c := range g.children {
		n := c.Widget().Layout(r, limits.Loose()).Move(layout.Point{Y: y})
		y += n.Size().Height
		w = max(w, n.Size().Width)
		nodes = append(nodes, n)
	}
	return layout.WithChildren(layout.Size{Width: w, Height: y}, nodes...)
}

func (g *group) Operate(tree *Tree, l layout.Layout, r *Renderer, op Operation) {
	op.Container("", l.Bounds(), func(op Operation) {
		for i, c := range g.children {
			c.Widget().Operate(tree.Children[i], l.Child(i), r, op)
		}
	})
}

func (g *group) OnEvent(tree *Tree, ev Event, l layout.Layout, cursor Cursor, r *Renderer,
	cb Clipboard, sh *Shell, viewport layout.Rectangle) Status {
	status := Ignored
	for i, c := range g.children {
		status = status.Merge(c.Widget().OnEvent(tree.Children[i], ev, l.Child(i), cursor, r, cb, sh, viewport))
	}
	return status
}

func (g *group) Draw(tree *Tree, r *Renderer, th *theme.Theme, style Style, l layout.Layout, cursor Cursor, viewport layout.Rectangle) {
	for i, c := range g.children {
		c.Widget().Draw(tree.Children[i], r, th, style, l.Child(i), cursor, viewport)
	}
}

func (g *group) MouseInteraction(tree *Tree, l layout.Layout, cursor Cursor, viewport layout.Rectangle, r *Renderer) Interaction {
	for i, c := range g.children {
		if in := c.Widget().MouseInteraction(tree.Children[i], l.Child(i), cursor, viewport, r); in != Idle {
			return in
		}
	}
	return Idle
}

func newLeaf(id, label string) Element {
	return NewElement(&leaf{id: id, label: label, size: layout.Size{Width: len(label), Height: 1}})
}

func newGroup(children ...Element) Element {
	return NewElement(&group{children: children})
}
