package widget

import "reflect"

// Tag is the type identity of a widget's state.
type Tag struct {
	t reflect.Type
}

// NoTag is the tag of widgets without state.
var NoTag = Tag{}

// TagOf returns the tag for state values of type T.
func TagOf[T any]() Tag {
	return Tag{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// String returns the state type name, or "none".
func (t Tag) String() string {
	if t.t == nil {
		return "none"
	}
	return t.t.String()
}

// Tree is the persisted state of one widget and, in order, of its children.
// Its shape mirrors the widget tree.
type Tree struct {
	Tag      Tag
	State    any
	Children []*Tree
}

// NewTree allocates the default state tree for an element.
func NewTree(e Element) *Tree {
	w := e.Widget()
	return &Tree{
		Tag:      w.Tag(),
		State:    w.State(),
		Children: w.Children(),
	}
}

// Diff reconciles the tree with the element built for the current frame.
// A node whose tag changed is rebuilt from scratch; otherwise state is kept
// and children are reconciled by position.
func (t *Tree) Diff(e Element) {
	w := e.Widget()
	if t.Tag != w.Tag() {
		*t = *NewTree(e)
		return
	}
	if d, ok := w.(Differ); ok {
		d.Diff(t)
		return
	}
	if fresh := w.Children(); len(fresh) != len(t.Children) {
		t.Children = fresh
	}
}

// DiffChildren reconciles the children with the given elements by position.
func (t *Tree) DiffChildren(children []Element) {
	if len(t.Children) > len(children) {
		t.Children = t.Children[:len(children)]
	}
	for i, c := range children {
		if i < len(t.Children) {
			t.Children[i].Diff(c)
			continue
		}
		t.Children = append(t.Children, NewTree(c))
	}
}

// Len returns the number of nodes in the tree, itself included.
func (t *Tree) Len() int {
	n := 1
	for _, c := range t.Children {
		n += c.Len()
	}
	return n
}
