package layout

// Node is the result of laying out a widget: its size, its offset inside the
// parent and the nodes of its children.
type Node struct {
	bounds   Rectangle
	children []Node
}

// NewNode returns a leaf node of the given size.
func NewNode(size Size) Node {
	return Node{bounds: RectangleFrom(Point{}, size)}
}

// WithChildren returns a node of the given size owning the child nodes.
func WithChildren(size Size, children ...Node) Node {
	n := NewNode(size)
	n.children = children
	return n
}

// Size returns the size of the node.
func (n Node) Size() Size {
	return n.bounds.Size()
}

// Bounds returns the node area relative to its parent.
func (n Node) Bounds() Rectangle {
	return n.bounds
}

// Children returns the child nodes.
func (n Node) Children() []Node {
	return n.children
}

// Move returns the node placed at the given offset.
func (n Node) Move(p Point) Node {
	n.bounds.X, n.bounds.Y = p.X, p.Y
	return n
}

// Layout is a node resolved to absolute screen coordinates.
type Layout struct {
	origin Point
	node   *Node
}

// New returns the layout of a root node.
func New(node *Node) Layout {
	return Layout{node: node}
}

// Bounds returns the absolute area of the layout.
func (l Layout) Bounds() Rectangle {
	if l.node == nil {
		return Rectangle{}
	}
	return l.node.bounds.Translate(l.origin.X, l.origin.Y)
}

// Children returns the absolute layouts of the children.
func (l Layout) Children() []Layout {
	if l.node == nil {
		return nil
	}
	b := l.Bounds()
	out := make([]Layout, len(l.node.children))
	for i := range l.node.children {
		out[i] = Layout{origin: b.Position(), node: &l.node.children[i]}
	}
	return out
}

// Child returns the i-th child layout. It panics when the child does not exist,
// which means the widget and layout trees disagree.
func (l Layout) Child(i int) Layout {
	b := l.Bounds()
	return Layout{origin: b.Position(), node: &l.node.children[i]}
}

// Len returns the number of child layouts.
func (l Layout) Len() int {
	if l.node == nil {
		return 0
	}
	return len(l.node.children)
}
