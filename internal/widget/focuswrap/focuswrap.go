// Package focuswrap provides a widget that wraps a focus-aware child and
// publishes a message every time the child gains or loses focus.
//
// The wrapper is invisible: it reports the child's size, lays the child out
// unchanged, draws nothing of its own and forwards every event and
// operation. After the child handled an event, the wrapper reads the
// child's focus through the widget.FocusQuery capability of its state and
// compares it with the value remembered from the previous event. Only a
// difference publishes a message, so notifications are edge triggered.
package focuswrap

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrStateKindMismatch is returned when the wrapped child's state does not
// report focus.
var ErrStateKindMismatch = errors.New("child state does not report focus")

// StateKindMismatchError describes a child state without the focus capability.
type StateKindMismatchError struct {
	// Tag is the tag of the child's state.
	Tag widget.Tag
	// State is the offending state value.
	State any
}

func (e *StateKindMismatchError) Error() string {
	return fmt.Sprintf("focuswrap: %s (tag %s, state %T)", ErrStateKindMismatch, e.Tag, e.State)
}

func (e *StateKindMismatchError) Unwrap() error {
	return ErrStateKindMismatch
}

// State is the wrapper's own persisted state.
type State struct {
	// Focused is the child focus observed after the last event.
	Focused bool
}

// Wrapper is the focus-watching decorator.
type Wrapper struct {
	content        widget.Element
	onFocusChanged func(bool) tea.Msg
	strict         bool
	logger         *log.Logger
}

// Option configures a Wrapper.
type Option func(*Wrapper)

// WithStrict makes the wrapper panic when the child's state cannot report
// focus, instead of passing events through without notifications.
func WithStrict() Option {
	return func(w *Wrapper) {
		w.strict = true
	}
}

// WithLogger sets the logger used for focus transitions and mismatches.
func WithLogger(l *log.Logger) Option {
	return func(w *Wrapper) {
		if l != nil {
			w.logger = l
		}
	}
}

// Wrap returns a wrapper around content. onFocusChanged maps the new focus
// value to the message published on each transition; it must be pure.
func Wrap(content widget.Element, onFocusChanged func(bool) tea.Msg, opts ...Option) *Wrapper {
	w := &Wrapper{
		content:        content,
		onFocusChanged: onFocusChanged,
		logger:         log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	if _, ok := widget.AsFocusable(content.Widget().State()); !ok {
		w.logger.Printf("focuswrap: wrapping %T, whose state cannot report focus", content.Widget())
	}
	return w
}

// Element converts the wrapper into a tree element.
func (w *Wrapper) Element() widget.Element {
	return widget.NewElement(w)
}

func (w *Wrapper) Tag() widget.Tag {
	return widget.TagOf[State]()
}

func (w *Wrapper) State() any {
	return &State{}
}

// Children returns exactly one slot, for the wrapped child.
func (w *Wrapper) Children() []*widget.Tree {
	return []*widget.Tree{widget.NewTree(w.content)}
}

func (w *Wrapper) Diff(tree *widget.Tree) {
	tree.DiffChildren([]widget.Element{w.content})
}

func (w *Wrapper) Width() layout.Length {
	return w.content.Widget().Width()
}

func (w *Wrapper) Height() layout.Length {
	return w.content.Widget().Height()
}

func (w *Wrapper) Layout(r *widget.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(w.Width()).Height(w.Height())
	content := w.content.Widget().Layout(r, limits)
	return layout.WithChildren(content.Size(), content)
}

func (w *Wrapper) Operate(tree *widget.Tree, l layout.Layout, r *widget.Renderer, op widget.Operation) {
	op.Container("", l.Bounds(), func(op widget.Operation) {
		w.content.Widget().Operate(tree.Children[0], l.Child(0), r, op)
	})
}

func (w *Wrapper) OnEvent(tree *widget.Tree, ev widget.Event, l layout.Layout, cursor widget.Cursor,
	r *widget.Renderer, cb widget.Clipboard, sh *widget.Shell, viewport layout.Rectangle) widget.Status {
	child := tree.Children[0]
	status := w.content.Widget().OnEvent(child, ev, l.Child(0), cursor, r, cb, sh, viewport)

	focused, err := childFocus(child)
	if err != nil {
		if w.strict {
			panic(err)
		}
		w.logger.Print(err)
		return status
	}

	state := tree.State.(*State)
	if focused != state.Focused {
		state.Focused = focused
		w.logger.Printf("focuswrap: focus changed to %t", focused)
		sh.Publish(w.onFocusChanged(focused))
	}
	return status
}

func (w *Wrapper) Draw(tree *widget.Tree, r *widget.Renderer, th *theme.Theme, style widget.Style,
	l layout.Layout, cursor widget.Cursor, viewport layout.Rectangle) {
	w.content.Widget().Draw(tree.Children[0], r, th, style, l.Child(0), cursor, viewport)
}

func (w *Wrapper) MouseInteraction(tree *widget.Tree, l layout.Layout, cursor widget.Cursor,
	viewport layout.Rectangle, r *widget.Renderer) widget.Interaction {
	return w.content.Widget().MouseInteraction(tree.Children[0], l.Child(0), cursor, viewport, r)
}

// Focused returns the focus value the wrapper last observed in tree.
func Focused(tree *widget.Tree) (bool, error) {
	state, ok := tree.State.(*State)
	if !ok {
		return false, fmt.Errorf("focuswrap: tree holds %T, not a wrapper state", tree.State)
	}
	return state.Focused, nil
}

func childFocus(child *widget.Tree) (bool, error) {
	q, ok := widget.AsFocusable(child.State)
	if !ok {
		return false, &StateKindMismatchError{Tag: child.Tag, State: child.State}
	}
	return q.IsFocused(), nil
}
