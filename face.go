package bitcube

import (
	"fmt"
	"strings"
)

// Face is a 3x3 grid of colors packed into the low 27 bits of a word.
//
// Cells are stored row-major with 3 bits each. Row 1 occupies the most
// significant 9 bits and, inside a row, column 1 occupies the most
// significant 3 bits:
//
//	bit 26                                        bit 0
//	[r1c1 r1c2 r1c3][r2c1 r2c2 r2c3][r3c1 r3c2 r3c3]
//
// Rows and columns are 1-indexed throughout.
type Face uint32

// Row is a single face row packed into the low 9 bits, column 1 most
// significant. A Row is never a face-shaped value; use Face.Col to get a
// column that can be fed back into Face.ReplaceCol.
type Row uint32

const (
	cellBits = 3
	cellMask = 0b111
	rowBits  = 9
	rowMask  = 0b111_111_111
	colMask  = 0b000_000_111_000_000_111_000_000_111
	faceMask = 1<<27 - 1
)

// MakeRow packs three cells into a row, c1 most significant.
func MakeRow(c1, c2, c3 Color) Row {
	return Row(c1&cellMask)<<6 | Row(c2&cellMask)<<3 | Row(c3&cellMask)
}

// FaceFromRows packs three rows into a face, row 1 most significant.
func FaceFromRows(r1, r2, r3 Row) Face {
	return Face(r1&rowMask)<<(rowBits*2) | Face(r2&rowMask)<<rowBits | Face(r3&rowMask)
}

// MakeFace packs nine cells, given in row-major order.
func MakeFace(c11, c12, c13, c21, c22, c23, c31, c32, c33 Color) Face {
	return FaceFromRows(
		MakeRow(c11, c12, c13),
		MakeRow(c21, c22, c23),
		MakeRow(c31, c32, c33))
}

// FaceFromSlice packs the nine cells starting at cells[from].
// It panics with an error wrapping ErrOutOfRange if fewer than nine
// cells remain; callers are expected to size their input.
func FaceFromSlice(cells []Color, from int) Face {
	if from < 0 || from+9 > len(cells) {
		panic(fmt.Errorf("%w: need 9 cells from index %d, have %d", ErrOutOfRange, from, len(cells)))
	}
	c := cells[from : from+9]
	return MakeFace(c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7], c[8])
}

// UniformFace returns a face with every cell set to c.
func UniformFace(c Color) Face {
	r := MakeRow(c, c, c)
	return FaceFromRows(r, r, r)
}

func rowOffset(r int) int { return rowBits * (3 - r) }
func colOffset(c int) int { return cellBits * (3 - c) }

// At returns the color at row r, column c.
func (f Face) At(r, c int) Color {
	offset := rowOffset(r) + colOffset(c)
	return Color((f >> offset) & cellMask)
}

// Row returns row r packed as a Row.
func (f Face) Row(r int) Row {
	return Row((f >> rowOffset(r)) & rowMask)
}

// Col returns column c in place: a face-shaped value with every cell
// outside column c cleared. Unlike ColCW and ColCCW it is not packed
// into a row.
func (f Face) Col(c int) Face {
	return f & (colMask << colOffset(c))
}

// ReplaceRow returns f with row r replaced by row.
func (f Face) ReplaceRow(r int, row Row) Face {
	offset := rowOffset(r)
	return f&^(rowMask<<offset)&faceMask | Face(row&rowMask)<<offset
}

// ReplaceCol returns f with column c replaced. col must be face-shaped,
// as returned by Col; bits outside column c are ignored.
func (f Face) ReplaceCol(c int, col Face) Face {
	mask := Face(colMask) << colOffset(c)
	return f&^mask&faceMask | col&mask
}

// ColCW reads column c bottom-to-top and packs it as a row. This is the
// row that column c becomes when the face is turned clockwise.
func (f Face) ColCW(c int) Row {
	return MakeRow(f.At(3, c), f.At(2, c), f.At(1, c))
}

// ColCCW reads column c top-to-bottom and packs it as a row. This is the
// row that column c becomes when the face is turned counter-clockwise.
func (f Face) ColCCW(c int) Row {
	return MakeRow(f.At(1, c), f.At(2, c), f.At(3, c))
}

// RowCW keeps only row r and turns the resulting face clockwise, so the
// row ends up as a face-shaped column ready for ReplaceCol.
func (f Face) RowCW(r int) Face {
	return (f & (rowMask << rowOffset(r))).CW()
}

// RowCCW keeps only row r and turns the resulting face counter-clockwise.
func (f Face) RowCCW(r int) Face {
	return (f & (rowMask << rowOffset(r))).CCW()
}

// CW turns the face 90 degrees clockwise: new row i is old column i read
// bottom-to-top.
func (f Face) CW() Face {
	return FaceFromRows(f.ColCW(1), f.ColCW(2), f.ColCW(3))
}

// CCW turns the face 90 degrees counter-clockwise.
func (f Face) CCW() Face {
	return FaceFromRows(f.ColCCW(3), f.ColCCW(2), f.ColCCW(1))
}

// Rotate turns the face 180 degrees.
func (f Face) Rotate() Face {
	return FaceFromRows(
		f.Row(3).Reverse(),
		f.Row(2).Reverse(),
		f.Row(1).Reverse())
}

// Cells unpacks the face in row-major order.
func (f Face) Cells() [9]Color {
	var cells [9]Color
	offset := cellBits * 8
	for i := range cells {
		cells[i] = Color((f >> offset) & cellMask)
		offset -= cellBits
	}
	return cells
}

// String renders the face as a boxed 3x3 block.
func (f Face) String() string {
	const edge = "+-------+\n"
	var b strings.Builder
	b.WriteString(edge)
	for r := 1; r <= 3; r++ {
		b.WriteByte('|')
		writeRowCells(&b, f, r)
		b.WriteString(" |\n")
	}
	b.WriteString(edge)
	return b.String()
}

// Cells unpacks the row, column 1 first.
func (r Row) Cells() [3]Color {
	return [3]Color{
		Color((r >> 6) & cellMask),
		Color((r >> 3) & cellMask),
		Color(r & cellMask),
	}
}

// Reverse swaps the outer two cells of the row.
func (r Row) Reverse() Row {
	c := r.Cells()
	return MakeRow(c[2], c[1], c[0])
}

// ReverseCol flips a face-shaped column upside down, treating its three
// row groups as rows of a face and reversing their order.
func ReverseCol(col Face) Face {
	return FaceFromRows(col.Row(3), col.Row(2), col.Row(1))
}

// ShiftCol moves a face-shaped column from column position from to
// column position to.
func ShiftCol(from, to int, col Face) Face {
	if from < to {
		return col >> (cellBits * (to - from))
	}
	return (col << (cellBits * (from - to))) & faceMask
}
