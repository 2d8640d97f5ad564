package button

import (
	"testing"

	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/theme"
	"github.com/avitaltamir/focuswrap/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pressedMsg struct{}

func mouse(x int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 0, Action: action, Button: tea.MouseButtonLeft}
}

func TestButtonClick(t *testing.T) {
	bounds := layout.Size{Width: 20, Height: 1}

	t.Run("press and release inside publishes", func(t *testing.T) {
		ui := widget.Build(New("Go").OnPress(pressedMsg{}).Element(), bounds, nil, nil)

		statuses, msgs, _ := ui.Update([]widget.Event{
			mouse(1, tea.MouseActionPress),
			mouse(2, tea.MouseActionRelease),
		}, nil)

		assert.Equal(t, []widget.Status{widget.Captured, widget.Captured}, statuses)
		assert.Equal(t, []tea.Msg{pressedMsg{}}, msgs)
	})

	t.Run("release outside cancels", func(t *testing.T) {
		ui := widget.Build(New("Go").OnPress(pressedMsg{}).Element(), bounds, nil, nil)

		_, msgs, _ := ui.Update([]widget.Event{
			mouse(1, tea.MouseActionPress),
			mouse(15, tea.MouseActionRelease),
		}, nil)

		assert.Empty(t, msgs)
		assert.False(t, ui.Tree().State.(*State).Pressed)
	})

	t.Run("disabled button ignores clicks", func(t *testing.T) {
		ui := widget.Build(New("Go").Element(), bounds, nil, nil)

		statuses, msgs, _ := ui.Update([]widget.Event{mouse(1, tea.MouseActionPress)}, nil)

		assert.Equal(t, []widget.Status{widget.Ignored}, statuses)
		assert.Empty(t, msgs)
	})
}

func TestButtonLayoutAndDraw(t *testing.T) {
	ui := widget.Build(New("Clear").OnPress(pressedMsg{}).Element(), layout.Size{Width: 20, Height: 1}, nil, nil)

	assert.Equal(t, layout.Size{Width: 7, Height: 1}, ui.Node().Size())

	ui.Draw(theme.DefaultTheme(), widget.Style{})
	assert.Equal(t, " Clear "+"             ", ui.Renderer().Plain())

	ui.SetCursor(widget.Available(layout.Point{X: 3, Y: 0}))
	assert.Equal(t, widget.Pointer, ui.MouseInteraction())
}
