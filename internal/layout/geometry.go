package layout

// Size is a width and a height in terminal cells.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Point is a cell position.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Rectangle is an area of the screen.
type Rectangle struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RectangleFrom builds a rectangle from a position and a size.
func RectangleFrom(p Point, s Size) Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Position returns the top left corner.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether two rectangles overlap.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Intersection returns the overlapping area, or a zero rectangle.
func (r Rectangle) Intersection(o Rectangle) Rectangle {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rectangle{}
	}
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Translate moves the rectangle by the given offset.
func (r Rectangle) Translate(dx, dy int) Rectangle {
	r.X += dx
	r.Y += dy
	return r
}

// Shrink returns the inner area after removing the padding.
func (r Rectangle) Shrink(p Padding) Rectangle {
	return Rectangle{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  max(r.Width-p.Horizontal(), 0),
		Height: max(r.Height-p.Vertical(), 0),
	}
}

// Padding is the space around a widget.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Uniform returns the same padding on every side.
func Uniform(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns the total left and right padding.
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the total top and bottom padding.
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}
