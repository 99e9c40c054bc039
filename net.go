package bitcube

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const numCells = 9 * 6

// maxLineLen bounds a single input line, comments included.
const maxLineLen = 1 << 20

// Parse reads a cube from its net diagram.
//
// The input is a stream of 54 integers: the 9 cells of top in row-major
// order, then for each of the three rows the 3 cells of left, front,
// right and back, then the 9 cells of bottom. A '#' starts a comment
// that runs to the end of the line. Tokens made only of the diagram's
// frame characters ('|', '+', '-') are ignored, so the output of
// Cube.String parses back to the same cube. Anything else that is not an
// integer is an error.
//
// Parse does not call Validate; a cell holding 0 is accepted here.
func Parse(r io.Reader) (Cube, error) {
	cells := make([]Color, 0, numCells)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		for _, tok := range strings.Fields(strings.ReplaceAll(line, "|", " ")) {
			if strings.Trim(tok, "+-") == "" {
				continue
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return Cube{}, &ParseError{Line: lineNum, Token: tok, Reason: "not an integer"}
			}
			if len(cells) == numCells {
				return Cube{}, &ParseError{Line: lineNum, Token: tok, Reason: "trailing data after 54 cells"}
			}
			if v < 0 || v > cellMask {
				return Cube{}, &InvalidCubeError{Kind: InvalidColor, Color: v}
			}
			cells = append(cells, Color(v))
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Cube{}, &ParseError{Line: lineNum + 1, Reason: fmt.Sprintf("line longer than %d bytes", maxLineLen)}
		}
		return Cube{}, fmt.Errorf("failed to read cube: %w", err)
	}

	if len(cells) != numCells {
		return Cube{}, &ParseError{Reason: fmt.Sprintf("expected %d cells, got %d", numCells, len(cells))}
	}

	return fromNetCells(cells), nil
}

// fromNetCells assembles a cube from 54 cells in net order.
func fromNetCells(cells []Color) Cube {
	// Left, front, right and back are interleaved row by row.
	var band [4][]Color
	i := 9
	for row := 0; row < 3; row++ {
		for f := range band {
			band[f] = append(band[f], cells[i:i+3]...)
			i += 3
		}
	}

	return New(
		FaceFromSlice(cells, 0),
		FaceFromSlice(band[0], 0),
		FaceFromSlice(band[1], 0),
		FaceFromSlice(band[2], 0),
		FaceFromSlice(band[3], 0),
		FaceFromSlice(cells, 9*5))
}

// ParseString reads a cube from a net diagram held in a string.
func ParseString(s string) (Cube, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile reads a cube from a net diagram file and validates it.
func ReadFile(path string) (Cube, error) {
	f, err := os.Open(path)
	if err != nil {
		return Cube{}, fmt.Errorf("failed to open cube file: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return Cube{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Cube{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteFile writes the net diagram of c to path.
func WriteFile(path string, c Cube) error {
	if err := os.WriteFile(path, []byte(c.String()), 0644); err != nil {
		return fmt.Errorf("failed to write cube file: %w", err)
	}
	return nil
}

// String renders the cube as its net diagram:
//
//	        +-------+
//	        | 1 1 1 |
//	        | 1 1 1 |
//	        | 1 1 1 |
//	+-------+-------+-------+-------+
//	| 2 2 2 | 3 3 3 | 4 4 4 | 5 5 5 |
//	| 2 2 2 | 3 3 3 | 4 4 4 | 5 5 5 |
//	| 2 2 2 | 3 3 3 | 4 4 4 | 5 5 5 |
//	+-------+-------+-------+-------+
//	        | 6 6 6 |
//	        | 6 6 6 |
//	        | 6 6 6 |
//	        +-------+
func (c Cube) String() string {
	const (
		edge     = "        +-------+\n"
		longEdge = "+-------+-------+-------+-------+\n"
		indent   = "        |"
	)

	var b strings.Builder
	b.WriteString(edge)
	for r := 1; r <= 3; r++ {
		b.WriteString(indent)
		writeRowCells(&b, c.top, r)
		b.WriteString(" |\n")
	}
	b.WriteString(longEdge)
	for r := 1; r <= 3; r++ {
		b.WriteByte('|')
		for i, f := range []Face{c.left, c.front, c.right, c.back} {
			if i > 0 {
				b.WriteString(" |")
			}
			writeRowCells(&b, f, r)
		}
		b.WriteString(" |\n")
	}
	b.WriteString(longEdge)
	for r := 1; r <= 3; r++ {
		b.WriteString(indent)
		writeRowCells(&b, c.bottom, r)
		b.WriteString(" |\n")
	}
	b.WriteString(edge)
	return b.String()
}

// writeRowCells writes row r of f as " a b c".
func writeRowCells(b *strings.Builder, f Face, r int) {
	for _, cell := range f.Row(r).Cells() {
		b.WriteByte(' ')
		b.WriteByte('0' + byte(cell))
	}
}
