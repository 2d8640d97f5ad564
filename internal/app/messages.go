package app

import "github.com/avitaltamir/focuswrap/internal/widget"

// TextInputMsg carries the text field's value after an edit.
type TextInputMsg struct {
	Value string
}

// TextInputFocusedMsg is published by the focus wrapper when the text field
// gains or loses focus.
type TextInputFocusedMsg struct {
	Focused bool
}

// ClearMsg empties the text field.
type ClearMsg struct{}

// FocusMsg requests focus for the text field.
type FocusMsg struct{}

// StatusMsg updates the status bar with a message.
type StatusMsg struct {
	Text string
}

// ErrorMsg represents an error that should be displayed.
type ErrorMsg struct {
	Err error
}

// operateMsg runs a widget operation over the current tree.
type operateMsg struct {
	op widget.Operation
}
