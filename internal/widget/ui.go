package widget

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// UserInterface is one frame of a widget tree: the root element, its
// persisted state and its layout. The host builds one per frame from the
// state tree it keeps between frames.
type UserInterface struct {
	root     Element
	tree     *Tree
	node     layout.Node
	bounds   layout.Size
	renderer *Renderer
	cursor   Cursor
}

// Build reconciles cache with root and lays the tree out inside bounds.
// A nil cache allocates a new state tree.
func Build(root Element, bounds layout.Size, cache *Tree, r *Renderer) *UserInterface {
	tree := cache
	if tree == nil {
		tree = NewTree(root)
	} else {
		tree.Diff(root)
	}
	if r == nil {
		r = NewRenderer(bounds)
	}
	ui := &UserInterface{
		root:     root,
		tree:     tree,
		bounds:   bounds,
		renderer: r,
	}
	ui.relayout()
	return ui
}

func (ui *UserInterface) relayout() {
	limits := layout.NewLimits(layout.Size{}, ui.bounds)
	ui.node = ui.root.Widget().Layout(ui.renderer, limits)
}

func (ui *UserInterface) viewport() layout.Rectangle {
	return layout.RectangleFrom(layout.Point{}, ui.bounds)
}

// Tree returns the state tree, to be kept by the host for the next frame.
func (ui *UserInterface) Tree() *Tree {
	return ui.tree
}

// Node returns the root layout node.
func (ui *UserInterface) Node() layout.Node {
	return ui.node
}

// Cursor returns the last known pointer position.
func (ui *UserInterface) Cursor() Cursor {
	return ui.cursor
}

// SetCursor restores the pointer position remembered from a previous frame.
func (ui *UserInterface) SetCursor(c Cursor) {
	ui.cursor = c
}

// Update dispatches the events one at a time, in order. It returns the status
// of every event, the application messages published while handling them and
// the batched widget commands.
func (ui *UserInterface) Update(events []Event, cb Clipboard) ([]Status, []tea.Msg, tea.Cmd) {
	statuses := make([]Status, 0, len(events))
	var (
		messages []tea.Msg
		cmds     []tea.Cmd
	)
	for _, ev := range events {
		if m, ok := ev.(tea.MouseMsg); ok {
			ui.cursor = CursorFromMouse(m)
		}
		shell := &Shell{}
		status := ui.root.Widget().OnEvent(ui.tree, ev, layout.New(&ui.node), ui.cursor,
			ui.renderer, cb, shell, ui.viewport())
		statuses = append(statuses, status)
		messages = append(messages, shell.Messages()...)
		if cmd := shell.Cmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if shell.IsLayoutInvalid() {
			ui.relayout()
		}
	}
	return statuses, messages, tea.Batch(cmds...)
}

// Operate runs the operation, and every operation it chains to, over the tree.
func (ui *UserInterface) Operate(op Operation) {
	for op != nil {
		ui.root.Widget().Operate(ui.tree, layout.New(&ui.node), ui.renderer, op)
		c, ok := op.(Chainer)
		if !ok {
			return
		}
		op = c.Next()
	}
}

// Draw paints the tree and returns the rendered frame.
func (ui *UserInterface) Draw(th *theme.Theme, style Style) string {
	if ui.renderer.Size() != ui.bounds {
		ui.renderer.Resize(ui.bounds)
	} else {
		ui.renderer.Clear()
	}
	ui.root.Widget().Draw(ui.tree, ui.renderer, th, style, layout.New(&ui.node),
		ui.cursor, ui.viewport())
	return ui.renderer.String()
}

// Renderer returns the canvas of the last Draw.
func (ui *UserInterface) Renderer() *Renderer {
	return ui.renderer
}

// MouseInteraction returns the pointer hint at the current cursor.
func (ui *UserInterface) MouseInteraction() Interaction {
	return ui.root.Widget().MouseInteraction(ui.tree, layout.New(&ui.node), ui.cursor,
		ui.viewport(), ui.renderer)
}
