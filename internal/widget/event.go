package widget

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	tea "github.com/charmbracelet/bubbletea"
)

// Event is any Bubble Tea message delivered to the tree: keys, mouse,
// window size, cursor blinks and OperatedMsg.
type Event = tea.Msg

// OperatedMsg is dispatched after an operation ran so widgets can observe
// state changed outside of event handling.
type OperatedMsg struct{}

// Status reports whether a widget captured an event.
type Status int

const (
	Ignored Status = iota
	Captured
)

// Merge combines two statuses; Captured wins.
func (s Status) Merge(o Status) Status {
	if s == Captured || o == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	if s == Captured {
		return "Captured"
	}
	return "Ignored"
}

// Cursor is the pointer position, when known.
type Cursor struct {
	pos       layout.Point
	available bool
}

// Unavailable is the cursor before any mouse event was seen.
var Unavailable = Cursor{}

// Available returns a cursor at the given cell.
func Available(p layout.Point) Cursor {
	return Cursor{pos: p, available: true}
}

// Position returns the pointer position and whether it is known.
func (c Cursor) Position() (layout.Point, bool) {
	return c.pos, c.available
}

// IsOver reports whether the pointer lies inside the rectangle.
func (c Cursor) IsOver(r layout.Rectangle) bool {
	return c.available && r.Contains(c.pos)
}

// CursorFromMouse returns the cursor of a mouse message.
func CursorFromMouse(msg tea.MouseMsg) Cursor {
	return Available(layout.Point{X: msg.X, Y: msg.Y})
}

// Interaction is a hint about what the pointer is over.
type Interaction int

const (
	Idle Interaction = iota
	Pointer
	Text
	Grab
	NotAllowed
)

func (i Interaction) String() string {
	switch i {
	case Pointer:
		return "Pointer"
	case Text:
		return "Text"
	case Grab:
		return "Grab"
	case NotAllowed:
		return "NotAllowed"
	default:
		return "Idle"
	}
}
