package layout

// Limits are the size constraints a parent passes down during layout.
type Limits struct {
	min  Size
	max  Size
	fill Size
}

// NewLimits returns limits between min and max.
func NewLimits(min, max Size) Limits {
	return Limits{min: min, max: max}
}

// Min returns the minimum size.
func (l Limits) Min() Size { return l.min }

// Max returns the maximum size.
func (l Limits) Max() Size { return l.max }

// Fill returns the size a filling widget resolves to.
func (l Limits) Fill() Size { return l.fill }

// Width applies a width policy to the limits.
func (l Limits) Width(w Length) Limits {
	switch {
	case w.IsFixed():
		n := max(min(w.Cells(), l.max.Width), l.min.Width)
		l.min.Width, l.max.Width, l.fill.Width = n, n, n
	case w.IsFill():
		l.fill.Width = max(l.min.Width, l.max.Width)
	default:
		l.fill.Width = l.min.Width
	}
	return l
}

// Height applies a height policy to the limits.
func (l Limits) Height(h Length) Limits {
	switch {
	case h.IsFixed():
		n := max(min(h.Cells(), l.max.Height), l.min.Height)
		l.min.Height, l.max.Height, l.fill.Height = n, n, n
	case h.IsFill():
		l.fill.Height = max(l.min.Height, l.max.Height)
	default:
		l.fill.Height = l.min.Height
	}
	return l
}

// MaxWidth caps the maximum width.
func (l Limits) MaxWidth(w int) Limits {
	l.max.Width = max(min(l.max.Width, w), l.min.Width)
	return l
}

// MaxHeight caps the maximum height.
func (l Limits) MaxHeight(h int) Limits {
	l.max.Height = max(min(l.max.Height, h), l.min.Height)
	return l
}

// Pad removes the padding from every bound.
func (l Limits) Pad(p Padding) Limits {
	return l.Shrink(Size{Width: p.Horizontal(), Height: p.Vertical()})
}

// Shrink removes size from every bound, never going below zero.
func (l Limits) Shrink(s Size) Limits {
	sub := func(a Size) Size {
		return Size{Width: max(a.Width-s.Width, 0), Height: max(a.Height-s.Height, 0)}
	}
	return Limits{min: sub(l.min), max: sub(l.max), fill: sub(l.fill)}
}

// Loose drops the minimum size.
func (l Limits) Loose() Limits {
	l.min = Size{}
	return l
}

// Resolve fits an intrinsic size into the limits.
func (l Limits) Resolve(intrinsic Size) Size {
	return Size{
		Width:  max(min(intrinsic.Width, l.max.Width), l.fill.Width),
		Height: max(min(intrinsic.Height, l.max.Height), l.fill.Height),
	}
}
