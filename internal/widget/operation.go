package widget

import "github.com/avitaltamir/focuswrap/internal/layout"

// Operation is a query or command walked through the whole tree.
type Operation interface {
	// Container is called by grouping widgets; operateOnChildren forwards
	// the operation to their children.
	Container(id string, bounds layout.Rectangle, operateOnChildren func(Operation))
	// Focusable is called with the state of every widget that can hold focus.
	Focusable(state FocusableState, id string)
	// TextInput is called with the state of every text input.
	TextInput(state TextInputState, id string)
}

// Chainer is implemented by operations that need another pass over the tree.
type Chainer interface {
	// Next returns the operation to run after this one, or nil.
	Next() Operation
}

// FocusQuery reports whether a widget currently holds input focus.
type FocusQuery interface {
	IsFocused() bool
}

// FocusableState is the state of a widget that can be focused by operations.
type FocusableState interface {
	FocusQuery
	Focus()
	Unfocus()
}

// TextInputState is the state of a widget editing text.
type TextInputState interface {
	Value() string
	MoveCursorToFront()
	MoveCursorToEnd()
}

// AsFocusable asks a state value for its focus capability.
func AsFocusable(state any) (FocusQuery, bool) {
	q, ok := state.(FocusQuery)
	return q, ok
}

// walker forwards containers to their children and ignores everything else.
type walker struct{}

func (walker) Container(_ string, _ layout.Rectangle, operateOnChildren func(Operation)) {}
func (walker) Focusable(FocusableState, string) {}
func (walker) TextInput(TextInputState, string) {}

type focusOp struct {
	walker
	target string
}

// Focus focuses the focusable with the given id and unfocuses all others.
func Focus(id string) Operation {
	return &focusOp{target: id}
}

func (o *focusOp) Container(_ string, _ layout.Rectangle, operateOnChildren func(Operation)) {
	operateOnChildren(o)
}

func (o *focusOp) Focusable(state FocusableState, id string) {
	if id != "" && id == o.target {
		state.Focus()
		return
	}
	state.Unfocus()
}

type unfocusOp struct{ walker }

// Unfocus removes focus from every focusable.
func Unfocus() Operation {
	return &unfocusOp{}
}

func (o *unfocusOp) Container(_ string, _ layout.Rectangle, operateOnChildren func(Operation)) {
	operateOnChildren(o)
}

func (o *unfocusOp) Focusable(state FocusableState, _ string) {
	state.Unfocus()
}

// countOp counts focusables and remembers which one is focused.
type countOp struct {
	walker
	total   int
	focused int
	then    func(total, focused int) Operation
}

func (o *countOp) Container(_ string, _ layout.Rectangle, operateOnChildren func(Operation)) {
	operateOnChildren(o)
}

func (o *countOp) Focusable(state FocusableState, _ string) {
	if state.IsFocused() {
		o.focused = o.total
	}
	o.total++
}

func (o *countOp) Next() Operation {
	if o.then == nil {
		return nil
	}
	return o.then(o.total, o.focused)
}

// FocusCount is the result of counting the focusables of a tree.
type FocusCount struct {
	Total int
	// Focused is the index of the focused widget, or -1.
	Focused int
}

// Count returns an operation that counts the focusables into dst.
func Count(dst *FocusCount) Operation {
	return &countOp{focused: -1, then: func(total, focused int) Operation {
		*dst = FocusCount{Total: total, Focused: focused}
		return nil
	}}
}

type focusIndexOp struct {
	walker
	index   int
	current int
}

func (o *focusIndexOp) Container(_ string, _ layout.Rectangle, operateOnChildren func(Operation)) {
	operateOnChildren(o)
}

func (o *focusIndexOp) Focusable(state FocusableState, _ string) {
	if o.current == o.index {
		state.Focus()
	} else {
		state.Unfocus()
	}
	o.current++
}

// FocusNext moves focus to the next focusable, wrapping around.
func FocusNext() Operation {
	return &countOp{focused: -1, then: func(total, focused int) Operation {
		if total == 0 {
			return nil
		}
		return &focusIndexOp{index: (focused + 1) % total}
	}}
}

// FocusPrevious moves focus to the previous focusable, wrapping around.
func FocusPrevious() Operation {
	return &countOp{focused: -1, then: func(total, focused int) Operation {
		if total == 0 {
			return nil
		}
		if focused <= 0 {
			return &focusIndexOp{index: total - 1}
		}
		return &focusIndexOp{index: focused - 1}
	}}
}

type cursorOp struct {
	walker
	target string
	end    bool
}

// MoveCursorToEnd moves the caret of the text input with the given id to the end.
func MoveCursorToEnd(id string) Operation {
	return &cursorOp{target: id, end: true}
}

// MoveCursorToFront moves the caret of the text input with the given id to the start.
func MoveCursorToFront(id string) Operation {
	return &cursorOp{target: id}
}

func (o *cursorOp) Container(_ string, _ layout.Rectangle, operateOnChildren func(Operation)) {
	operateOnChildren(o)
}

func (o *cursorOp) TextInput(state TextInputState, id string) {
	if id != o.target {
		return
	}
	if o.end {
		state.MoveCursorToEnd()
	} else {
		state.MoveCursorToFront()
	}
}
