package container

import (
	"testing"

	"github.com/avitaltamir/focuswrap/internal/components/text"
	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/avitaltamir/focuswrap/internal/widget"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	ids []string
}

func (r *recorder) Container(id string, _ layout.Rectangle, operateOnChildren func(widget.Operation)) {
	r.ids = append(r.ids, id)
	operateOnChildren(r)
}
func (r *recorder) Focusable(widget.FocusableState, string) {}
func (r *recorder) TextInput(widget.TextInputState, string) {}

func TestContainer(t *testing.T) {
	t.Run("fill with padding", func(t *testing.T) {
		c := New(text.New("hi").Element()).Padding(2).WithWidth(layout.Fill).WithHeight(layout.Fill)

		ui := widget.Build(c.Element(), layout.Size{Width: 20, Height: 6}, nil, nil)

		assert.Equal(t, layout.Size{Width: 20, Height: 6}, ui.Node().Size())
		node := ui.Node()
		assert.Equal(t, layout.Rectangle{X: 2, Y: 2, Width: 2, Height: 1}, layout.New(&node).Child(0).Bounds())
	})

	t.Run("shrink wraps content", func(t *testing.T) {
		c := New(text.New("hi").Element()).Padding(1)

		ui := widget.Build(c.Element(), layout.Size{Width: 20, Height: 6}, nil, nil)

		assert.Equal(t, layout.Size{Width: 4, Height: 3}, ui.Node().Size())
	})

	t.Run("operations see the id", func(t *testing.T) {
		c := New(text.New("hi").Element()).ID("root")
		ui := widget.Build(c.Element(), layout.Size{Width: 20, Height: 6}, nil, nil)

		rec := &recorder{}
		ui.Operate(rec)

		assert.Equal(t, []string{"root"}, rec.ids)
	})
}
