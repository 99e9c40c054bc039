// Package render draws cubes for the terminal.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/SeamusWaldron/bitcube"
)

// Renderer draws colored net diagrams.
type Renderer struct {
	lg     *lipgloss.Renderer
	cells  [8]lipgloss.Style
	frame  lipgloss.Style
	blocks bool
	plain  bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithoutColor disables all styling regardless of the terminal.
func WithoutColor() Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(termenv.Ascii)
		r.plain = true
	}
}

// WithTrueColor forces 24-bit color output regardless of the terminal.
func WithTrueColor() Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(termenv.TrueColor)
		r.plain = false
	}
}

// WithBlocks draws each cell as a colored block instead of its digit.
// Empty and wildcard cells keep their digit.
func WithBlocks() Option {
	return func(r *Renderer) {
		r.blocks = true
	}
}

// New creates a renderer writing to w with palette mapping colors 0..7 to
// lipgloss color strings. Colors missing from the palette are unstyled.
func New(w io.Writer, palette map[int]string, opts ...Option) *Renderer {
	r := &Renderer{lg: lipgloss.NewRenderer(w)}
	for _, opt := range opts {
		opt(r)
	}

	r.frame = r.lg.NewStyle().Foreground(lipgloss.Color("241"))
	for i := range r.cells {
		s := r.lg.NewStyle()
		if c, ok := palette[i]; ok {
			if r.blocks && i >= 1 && i <= bitcube.NumColors {
				s = s.Background(lipgloss.Color(c))
			} else {
				s = s.Foreground(lipgloss.Color(c)).Bold(true)
			}
		}
		r.cells[i] = s
	}
	return r
}

// Cell renders a single cell.
func (r *Renderer) Cell(c bitcube.Color) string {
	if r.blocks && c >= bitcube.Color1 && c <= bitcube.Color6 {
		return r.paint(r.cells[c], "  ")
	}
	if r.blocks {
		return r.paint(r.cells[c&7], c.String()+" ")
	}
	return r.paint(r.cells[c&7], c.String())
}

// paint renders s with style unless color is disabled.
func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if r.plain {
		return s
	}
	return style.Render(s)
}

// Net renders c in the same layout as Cube.String.
func (r *Renderer) Net(c bitcube.Cube) string {
	edge := "+" + strings.Repeat("-", r.faceWidth()) + "+"
	pad := strings.Repeat(" ", r.faceWidth()+1)

	var b strings.Builder
	single := func(f bitcube.Face) {
		b.WriteString(pad + r.paint(r.frame, edge) + "\n")
		for row := 1; row <= 3; row++ {
			b.WriteString(pad)
			r.writeRow(&b, f, row)
			b.WriteString(r.paint(r.frame, "|") + "\n")
		}
	}

	single(c.Top())
	long := strings.Repeat(edge[:len(edge)-1], 4) + "+"
	b.WriteString(r.paint(r.frame, long) + "\n")
	for row := 1; row <= 3; row++ {
		for _, f := range []bitcube.Face{c.Left(), c.Front(), c.Right(), c.Back()} {
			r.writeRow(&b, f, row)
		}
		b.WriteString(r.paint(r.frame, "|") + "\n")
	}
	b.WriteString(r.paint(r.frame, long) + "\n")
	for row := 1; row <= 3; row++ {
		b.WriteString(pad)
		r.writeRow(&b, c.Bottom(), row)
		b.WriteString(r.paint(r.frame, "|") + "\n")
	}
	b.WriteString(pad + r.paint(r.frame, edge) + "\n")
	return b.String()
}

// writeRow writes the opening bar of a face followed by its cells and a
// trailing space.
func (r *Renderer) writeRow(b *strings.Builder, f bitcube.Face, row int) {
	b.WriteString(r.paint(r.frame, "|"))
	for _, cell := range f.Row(row).Cells() {
		b.WriteByte(' ')
		b.WriteString(r.Cell(cell))
	}
	b.WriteByte(' ')
}

func (r *Renderer) faceWidth() int {
	if r.blocks {
		return 10
	}
	return 7
}
