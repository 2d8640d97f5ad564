package widget

import (
	"strings"

	"github.com/avitaltamir/focuswrap/internal/layout"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	style int
	// wide marks the trailing half of a double width rune.
	wide bool
}

// Renderer is a cell canvas the size of the viewport. Widgets draw plain
// text with a lipgloss style; String renders the canvas for Bubble Tea.
type Renderer struct {
	size   layout.Size
	cells  []cell
	styles []lipgloss.Style
	clip   layout.Rectangle
}

// NewRenderer returns a blank canvas of the given size.
func NewRenderer(size layout.Size) *Renderer {
	r := &Renderer{}
	r.Resize(size)
	return r
}

// Resize changes the canvas size and clears it.
func (r *Renderer) Resize(size layout.Size) {
	r.size = layout.Size{Width: max(size.Width, 0), Height: max(size.Height, 0)}
	r.cells = make([]cell, r.size.Width*r.size.Height)
	r.Clear()
}

// Size returns the canvas size.
func (r *Renderer) Size() layout.Size {
	return r.size
}

// Clear blanks every cell and drops the recorded styles.
func (r *Renderer) Clear() {
	for i := range r.cells {
		r.cells[i] = cell{r: ' '}
	}
	r.styles = []lipgloss.Style{lipgloss.NewStyle()}
	r.clip = layout.RectangleFrom(layout.Point{}, r.size)
}

// Measure returns the display width of a string.
func (r *Renderer) Measure(s string) int {
	return ansi.StringWidth(s)
}

// WithClip restricts drawing to the rectangle while fn runs.
func (r *Renderer) WithClip(rect layout.Rectangle, fn func()) {
	prev := r.clip
	r.clip = prev.Intersection(rect)
	fn()
	r.clip = prev
}

func (r *Renderer) addStyle(style lipgloss.Style) int {
	r.styles = append(r.styles, style)
	return len(r.styles) - 1
}

func (r *Renderer) at(x, y int) *cell {
	if !r.clip.Contains(layout.Point{X: x, Y: y}) {
		return nil
	}
	return &r.cells[y*r.size.Width+x]
}

// DrawText writes s starting at p and returns the number of cells used.
// Text outside the clip rectangle is dropped; escape sequences are stripped.
func (r *Renderer) DrawText(p layout.Point, s string, style lipgloss.Style) int {
	id := r.addStyle(style)
	x := p.X
	for _, ch := range ansi.Strip(s) {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if c := r.at(x, p.Y); c != nil {
			*c = cell{r: ch, style: id}
		}
		if w == 2 {
			if c := r.at(x+1, p.Y); c != nil {
				*c = cell{style: id, wide: true}
			}
		}
		x += w
	}
	return x - p.X
}

// Fill paints every cell of the rectangle with a blank in the given style.
func (r *Renderer) Fill(rect layout.Rectangle, style lipgloss.Style) {
	id := r.addStyle(style)
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			if c := r.at(x, y); c != nil {
				*c = cell{r: ' ', style: id}
			}
		}
	}
}

// String renders the canvas, one styled run per group of equally styled cells.
func (r *Renderer) String() string {
	var b strings.Builder
	for y := 0; y < r.size.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := r.cells[y*r.size.Width : (y+1)*r.size.Width]
		var run strings.Builder
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current <= 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(r.styles[current].Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.wide {
				continue
			}
			if c.style != current {
				flush()
				current = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}

// Plain returns the canvas text without styles.
func (r *Renderer) Plain() string {
	var b strings.Builder
	for y := 0; y < r.size.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range r.cells[y*r.size.Width : (y+1)*r.size.Width] {
			if !c.wide {
				b.WriteRune(c.r)
			}
		}
	}
	return b.String()
}
