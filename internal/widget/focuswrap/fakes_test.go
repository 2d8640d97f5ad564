package focuswrap

import (
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
	"github.com/charmbracelet/lipgloss"
)

// setFocus is an event that makes a probe take the given focus.
type setFocus bool

// flicker is an event that makes a probe toggle its focus.
type flicker struct{}

type probeState struct {
	focused bool
}

func (s *probeState) IsFocused() bool { return s.focused }

// probe is a fixed size child that captures string events, reacts to
// setFocus and flicker, and draws its focus.
type probe struct {
	size layout.Size
}

func (p *probe) Tag() widget.Tag             { return widget.TagOf[probeState]() }
func (p *probe) State() any                  { return &probeState{} }
func (p *probe) Children() []*widget.Tree    { return nil }
func (p *probe) Width() layout.Length        { return layout.Shrink }
func (p *probe) Height() layout.Length       { return layout.Shrink }

func (p *probe) Operate(*widget.Tree, layout.Layout, *widget.Renderer, widget.Operation) {}

func (p *probe) Layout(_ *widget.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Width(p.Width()).Height(p.Height()).Resolve(p.size))
}

func (p *probe) OnEvent(tree *widget.Tree, ev widget.Event, _ layout.Layout, _ widget.Cursor,
	_ *widget.Renderer, _ widget.Clipboard, _ *widget.Shell, _ layout.Rectangle) widget.Status {
	state := tree.State.(*probeState)
	switch ev := ev.(type) {
	case setFocus:
		state.focused = bool(ev)
	case flicker:
		state.focused = !state.focused
	case string:
		return widget.Captured
	}
	return widget.Ignored
}

func (p *probe) Draw(tree *widget.Tree, r *widget.Renderer, _ *theme.Theme, _ widget.Style,
	l layout.Layout, _ widget.Cursor, _ layout.Rectangle) {
	label := "blurred"
	if tree.State.(*probeState).focused {
		label = "focused"
	}
	r.DrawText(l.Bounds().Position(), label, lipgloss.NewStyle().Bold(true))
}

func (p *probe) MouseInteraction(*widget.Tree, layout.Layout, widget.Cursor, layout.Rectangle, *widget.Renderer) widget.Interaction {
	return widget.Grab
}

// mute is a child without any state.
type mute struct{ probe }

func (m *mute) Tag() widget.Tag { return widget.NoTag }
func (m *mute) State() any      { return nil }

func (m *mute) OnEvent(*widget.Tree, widget.Event, layout.Layout, widget.Cursor,
	*widget.Renderer, widget.Clipboard, *widget.Shell, layout.Rectangle) widget.Status {
	return widget.Captured
}

func (m *mute) Draw(*widget.Tree, *widget.Renderer, *theme.Theme, widget.Style,
	layout.Layout, widget.Cursor, layout.Rectangle) {
}

func newProbe(w, h int) widget.Element {
	return widget.NewElement(&probe{size: layout.Size{Width: w, Height: h}})
}
