package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLimitsResolve(t *testing.T) {
	base := NewLimits(Size{}, Size{Width: 80, Height: 24})

	tests := []struct {
		name      string
		width     Length
		height    Length
		intrinsic Size
		want      Size
	}{
		{
			name:      "shrink keeps intrinsic size",
			width:     Shrink,
			height:    Shrink,
			intrinsic: Size{Width: 10, Height: 1},
			want:      Size{Width: 10, Height: 1},
		},
		{
			name:      "fill takes the maximum",
			width:     Fill,
			height:    Shrink,
			intrinsic: Size{Width: 10, Height: 1},
			want:      Size{Width: 80, Height: 1},
		},
		{
			name:      "fixed wins over intrinsic",
			width:     Fixed(20),
			height:    Fixed(3),
			intrinsic: Size{Width: 50, Height: 10},
			want:      Size{Width: 20, Height: 3},
		},
		{
			name:      "fixed is clamped to the maximum",
			width:     Fixed(200),
			height:    Fixed(30),
			intrinsic: Size{},
			want:      Size{Width: 80, Height: 24},
		},
		{
			name:      "intrinsic larger than max is clamped",
			width:     Shrink,
			height:    Shrink,
			intrinsic: Size{Width: 100, Height: 100},
			want:      Size{Width: 80, Height: 24},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Width(tt.width).Height(tt.height).Resolve(tt.intrinsic)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimitsPad(t *testing.T) {
	l := NewLimits(Size{Width: 1, Height: 1}, Size{Width: 10, Height: 5}).Pad(Uniform(2))

	assert.Equal(t, Size{}, l.Min())
	assert.Equal(t, Size{Width: 6, Height: 1}, l.Max())
}

func TestLength(t *testing.T) {
	assert.Equal(t, 1, Fill.FillFactor())
	assert.Equal(t, 3, FillPortion(3).FillFactor())
	assert.Equal(t, 0, Shrink.FillFactor())
	assert.Equal(t, 0, Fixed(4).FillFactor())
	assert.Equal(t, 0, Fixed(-4).Cells())
	assert.Equal(t, "FillPortion(2)", FillPortion(2).String())
	assert.Equal(t, "Fixed(7)", Fixed(7).String())
}

func TestLayoutChildren(t *testing.T) {
	child := NewNode(Size{Width: 5, Height: 1}).Move(Point{X: 2, Y: 3})
	root := WithChildren(Size{Width: 20, Height: 10}, child).Move(Point{X: 1, Y: 1})

	l := New(&root)

	assert.Equal(t, Rectangle{X: 1, Y: 1, Width: 20, Height: 10}, l.Bounds())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, Rectangle{X: 3, Y: 4, Width: 5, Height: 1}, l.Child(0).Bounds())

	var got []Rectangle
	for _, c := range l.Children() {
		got = append(got, c.Bounds())
	}
	if diff := cmp.Diff([]Rectangle{{X: 3, Y: 4, Width: 5, Height: 1}}, got); diff != "" {
		t.Errorf("children bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestRectangle(t *testing.T) {
	r := Rectangle{X: 2, Y: 2, Width: 4, Height: 2}

	t.Run("Contains is half open", func(t *testing.T) {
		assert.True(t, r.Contains(Point{X: 2, Y: 2}))
		assert.True(t, r.Contains(Point{X: 5, Y: 3}))
		assert.False(t, r.Contains(Point{X: 6, Y: 3}))
		assert.False(t, r.Contains(Point{X: 5, Y: 4}))
	})

	t.Run("Intersection", func(t *testing.T) {
		o := Rectangle{X: 4, Y: 0, Width: 10, Height: 3}
		assert.True(t, r.Intersects(o))
		assert.Equal(t, Rectangle{X: 4, Y: 2, Width: 2, Height: 1}, r.Intersection(o))
		assert.Equal(t, Rectangle{}, r.Intersection(Rectangle{X: 50, Y: 50, Width: 1, Height: 1}))
	})

	t.Run("Shrink by padding", func(t *testing.T) {
		assert.Equal(t, Rectangle{X: 3, Y: 3, Width: 2, Height: 0}, r.Shrink(Uniform(1)))
	})
}
