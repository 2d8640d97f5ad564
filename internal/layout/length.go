package layout

import "strconv"

type lengthKind int

const (
	kindShrink lengthKind = iota
	kindFill
	kindFixed
)

// Length is the sizing policy a widget reports for one axis, in terminal cells.
type Length struct {
	kind  lengthKind
	value int
}

var (
	// Shrink takes the intrinsic size of the content.
	Shrink = Length{kind: kindShrink}
	// Fill takes all the available space.
	Fill = Length{kind: kindFill, value: 1}
)

// FillPortion fills the available space proportionally to its siblings.
func FillPortion(portion int) Length {
	if portion < 1 {
		portion = 1
	}
	return Length{kind: kindFill, value: portion}
}

// Fixed is an exact number of cells.
func Fixed(cells int) Length {
	return Length{kind: kindFixed, value: max(cells, 0)}
}

// FillFactor returns the fill portion, or 0 when the length does not fill.
func (l Length) FillFactor() int {
	if l.kind != kindFill {
		return 0
	}
	return l.value
}

// IsFill reports whether the length grows with the available space.
func (l Length) IsFill() bool {
	return l.kind == kindFill
}

// IsFixed reports whether the length is an exact number of cells.
func (l Length) IsFixed() bool {
	return l.kind == kindFixed
}

// Cells returns the fixed amount, or 0 for non-fixed lengths.
func (l Length) Cells() int {
	if l.kind != kindFixed {
		return 0
	}
	return l.value
}

// String returns the length for debugging.
func (l Length) String() string {
	switch l.kind {
	case kindFill:
		if l.value == 1 {
			return "Fill"
		}
		return "FillPortion(" + strconv.Itoa(l.value) + ")"
	case kindFixed:
		return "Fixed(" + strconv.Itoa(l.value) + ")"
	default:
		return "Shrink"
	}
}

// MarshalYAML encodes the length by its debug name.
func (l Length) MarshalYAML() (any, error) {
	return l.String(), nil
}
