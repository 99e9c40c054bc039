package bitcube

// Face turns. Each turn rotates its own face, moves one edge strip on each
// of the four neighbouring faces and leaves the opposite face alone.
//
// Strips that travel between faces whose net coordinates disagree are
// corrected on the way: a row that lands as a column goes through
// RowCW/RowCCW or ColCW/ColCCW, and strips crossing the back face are
// flipped with ReverseCol and moved with ShiftCol because the back face
// is read mirrored relative to top, front and bottom.

// U turns the top face clockwise.
func (c Cube) U() Cube {
	return Cube{
		top:    c.top.CW(),
		left:   c.left.ReplaceRow(1, c.front.Row(1)),
		front:  c.front.ReplaceRow(1, c.right.Row(1)),
		right:  c.right.ReplaceRow(1, c.back.Row(1)),
		back:   c.back.ReplaceRow(1, c.left.Row(1)),
		bottom: c.bottom,
	}
}

// UPrime turns the top face counter-clockwise.
func (c Cube) UPrime() Cube {
	return Cube{
		top:    c.top.CCW(),
		left:   c.left.ReplaceRow(1, c.back.Row(1)),
		front:  c.front.ReplaceRow(1, c.left.Row(1)),
		right:  c.right.ReplaceRow(1, c.front.Row(1)),
		back:   c.back.ReplaceRow(1, c.right.Row(1)),
		bottom: c.bottom,
	}
}

// U2 turns the top face 180 degrees.
func (c Cube) U2() Cube {
	return Cube{
		top:    c.top.Rotate(),
		left:   c.left.ReplaceRow(1, c.right.Row(1)),
		front:  c.front.ReplaceRow(1, c.back.Row(1)),
		right:  c.right.ReplaceRow(1, c.left.Row(1)),
		back:   c.back.ReplaceRow(1, c.front.Row(1)),
		bottom: c.bottom,
	}
}

// D turns the bottom face clockwise.
func (c Cube) D() Cube {
	return Cube{
		top:    c.top,
		left:   c.left.ReplaceRow(3, c.back.Row(3)),
		front:  c.front.ReplaceRow(3, c.left.Row(3)),
		right:  c.right.ReplaceRow(3, c.front.Row(3)),
		back:   c.back.ReplaceRow(3, c.right.Row(3)),
		bottom: c.bottom.CW(),
	}
}

// DPrime turns the bottom face counter-clockwise.
func (c Cube) DPrime() Cube {
	return Cube{
		top:    c.top,
		left:   c.left.ReplaceRow(3, c.front.Row(3)),
		front:  c.front.ReplaceRow(3, c.right.Row(3)),
		right:  c.right.ReplaceRow(3, c.back.Row(3)),
		back:   c.back.ReplaceRow(3, c.left.Row(3)),
		bottom: c.bottom.CCW(),
	}
}

// D2 turns the bottom face 180 degrees.
func (c Cube) D2() Cube {
	return Cube{
		top:    c.top,
		left:   c.left.ReplaceRow(3, c.right.Row(3)),
		front:  c.front.ReplaceRow(3, c.back.Row(3)),
		right:  c.right.ReplaceRow(3, c.left.Row(3)),
		back:   c.back.ReplaceRow(3, c.front.Row(3)),
		bottom: c.bottom.Rotate(),
	}
}

// L turns the left face clockwise.
func (c Cube) L() Cube {
	return Cube{
		top:    c.top.ReplaceCol(1, ShiftCol(3, 1, ReverseCol(c.back.Col(3)))),
		left:   c.left.CW(),
		front:  c.front.ReplaceCol(1, c.top.Col(1)),
		right:  c.right,
		back:   c.back.ReplaceCol(3, ShiftCol(1, 3, ReverseCol(c.bottom.Col(1)))),
		bottom: c.bottom.ReplaceCol(1, c.front.Col(1)),
	}
}

// LPrime turns the left face counter-clockwise.
func (c Cube) LPrime() Cube {
	return Cube{
		top:    c.top.ReplaceCol(1, c.front.Col(1)),
		left:   c.left.CCW(),
		front:  c.front.ReplaceCol(1, c.bottom.Col(1)),
		right:  c.right,
		back:   c.back.ReplaceCol(3, ShiftCol(1, 3, ReverseCol(c.top.Col(1)))),
		bottom: c.bottom.ReplaceCol(1, ShiftCol(3, 1, ReverseCol(c.back.Col(3)))),
	}
}

// L2 turns the left face 180 degrees.
func (c Cube) L2() Cube {
	return Cube{
		top:    c.top.ReplaceCol(1, c.bottom.Col(1)),
		left:   c.left.Rotate(),
		front:  c.front.ReplaceCol(1, ShiftCol(3, 1, ReverseCol(c.back.Col(3)))),
		right:  c.right,
		back:   c.back.ReplaceCol(3, ShiftCol(1, 3, ReverseCol(c.front.Col(1)))),
		bottom: c.bottom.ReplaceCol(1, c.top.Col(1)),
	}
}

// R turns the right face clockwise.
func (c Cube) R() Cube {
	return Cube{
		top:    c.top.ReplaceCol(3, c.front.Col(3)),
		left:   c.left,
		front:  c.front.ReplaceCol(3, c.bottom.Col(3)),
		right:  c.right.CW(),
		back:   c.back.ReplaceCol(1, ShiftCol(3, 1, ReverseCol(c.top.Col(3)))),
		bottom: c.bottom.ReplaceCol(3, ShiftCol(1, 3, ReverseCol(c.back.Col(1)))),
	}
}

// RPrime turns the right face counter-clockwise.
func (c Cube) RPrime() Cube {
	return Cube{
		top:    c.top.ReplaceCol(3, ShiftCol(1, 3, ReverseCol(c.back.Col(1)))),
		left:   c.left,
		front:  c.front.ReplaceCol(3, c.top.Col(3)),
		right:  c.right.CCW(),
		back:   c.back.ReplaceCol(1, ShiftCol(3, 1, ReverseCol(c.bottom.Col(3)))),
		bottom: c.bottom.ReplaceCol(3, c.front.Col(3)),
	}
}

// R2 turns the right face 180 degrees.
func (c Cube) R2() Cube {
	return Cube{
		top:    c.top.ReplaceCol(3, c.bottom.Col(3)),
		left:   c.left,
		front:  c.front.ReplaceCol(3, ShiftCol(1, 3, ReverseCol(c.back.Col(1)))),
		right:  c.right.Rotate(),
		back:   c.back.ReplaceCol(1, ShiftCol(3, 1, ReverseCol(c.front.Col(3)))),
		bottom: c.bottom.ReplaceCol(3, c.top.Col(3)),
	}
}

// F turns the front face clockwise.
func (c Cube) F() Cube {
	return Cube{
		top:    c.top.ReplaceRow(3, c.left.ColCW(3)),
		left:   c.left.ReplaceCol(3, c.bottom.RowCW(1)),
		front:  c.front.CW(),
		right:  c.right.ReplaceCol(1, c.top.RowCW(3)),
		back:   c.back,
		bottom: c.bottom.ReplaceRow(1, c.right.ColCW(1)),
	}
}

// FPrime turns the front face counter-clockwise.
func (c Cube) FPrime() Cube {
	return Cube{
		top:    c.top.ReplaceRow(3, c.right.ColCCW(1)),
		left:   c.left.ReplaceCol(3, c.top.RowCCW(3)),
		front:  c.front.CCW(),
		right:  c.right.ReplaceCol(1, c.bottom.RowCCW(1)),
		back:   c.back,
		bottom: c.bottom.ReplaceRow(1, c.left.ColCCW(3)),
	}
}

// F2 turns the front face 180 degrees.
func (c Cube) F2() Cube {
	return Cube{
		top:    c.top.ReplaceRow(3, c.bottom.Rotate().Row(3)),
		left:   c.left.ReplaceCol(3, c.right.Rotate().Col(3)),
		front:  c.front.Rotate(),
		right:  c.right.ReplaceCol(1, c.left.Rotate().Col(1)),
		back:   c.back,
		bottom: c.bottom.ReplaceRow(1, c.top.Rotate().Row(1)),
	}
}

// B turns the back face clockwise, as seen from behind.
func (c Cube) B() Cube {
	return Cube{
		top:    c.top.ReplaceRow(1, c.right.ColCCW(3)),
		left:   c.left.ReplaceCol(1, c.top.RowCCW(1)),
		front:  c.front,
		right:  c.right.ReplaceCol(3, c.bottom.RowCCW(3)),
		back:   c.back.CW(),
		bottom: c.bottom.ReplaceRow(3, c.left.ColCCW(1)),
	}
}

// BPrime turns the back face counter-clockwise, as seen from behind.
func (c Cube) BPrime() Cube {
	return Cube{
		top:    c.top.ReplaceRow(1, c.left.ColCW(1)),
		left:   c.left.ReplaceCol(1, c.bottom.RowCW(3)),
		front:  c.front,
		right:  c.right.ReplaceCol(3, c.top.RowCW(1)),
		back:   c.back.CCW(),
		bottom: c.bottom.ReplaceRow(3, c.right.ColCW(3)),
	}
}

// B2 turns the back face 180 degrees.
func (c Cube) B2() Cube {
	return Cube{
		top:    c.top.ReplaceRow(1, c.bottom.Rotate().Row(1)),
		left:   c.left.ReplaceCol(1, c.right.Rotate().Col(1)),
		front:  c.front,
		right:  c.right.ReplaceCol(3, c.left.Rotate().Col(3)),
		back:   c.back.Rotate(),
		bottom: c.bottom.ReplaceRow(3, c.top.Rotate().Row(3)),
	}
}

// turnTable maps a side and turn to its operation, indexed by Side and
// then by turnIndex.
var turnTable = [numSides][3]func(Cube) Cube{
	SideU: {Cube.U, Cube.UPrime, Cube.U2},
	SideL: {Cube.L, Cube.LPrime, Cube.L2},
	SideF: {Cube.F, Cube.FPrime, Cube.F2},
	SideR: {Cube.R, Cube.RPrime, Cube.R2},
	SideB: {Cube.B, Cube.BPrime, Cube.B2},
	SideD: {Cube.D, Cube.DPrime, Cube.D2},
}

func turnIndex(t Turn) int {
	switch t {
	case CW:
		return 0
	case CCW:
		return 1
	case Double:
		return 2
	default:
		return -1
	}
}

// Turn applies a single move. Moves with an unknown side or turn return c
// unchanged.
func (c Cube) Turn(m Move) Cube {
	if !m.Side.Valid() || !m.Turn.Valid() {
		return c
	}
	return turnTable[m.Side][turnIndex(m.Turn)](c)
}

// Apply applies moves in order and returns the resulting cube.
func (c Cube) Apply(moves ...Move) Cube {
	for _, m := range moves {
		c = c.Turn(m)
	}
	return c
}
