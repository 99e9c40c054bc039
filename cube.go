package bitcube

// Cube is an immutable 3x3x3 cube state made of six packed faces.
//
// Faces are laid out as the classic unfolded net:
//
//	      top
//	left front right back
//	      bottom
//
// Each face is read as seen when looking straight at it in the net, so
// the bottom row of top touches the top row of front and the right
// column of back wraps around to the left column of left. Cube is a
// plain value; every method returns a new Cube and none modify the
// receiver, so values may be shared freely between goroutines.
type Cube struct {
	top, left, front, right, back, bottom Face
}

// New builds a cube from six packed faces. Bits above the 27-bit face
// are dropped.
func New(top, left, front, right, back, bottom Face) Cube {
	return Cube{
		top:    top & faceMask,
		left:   left & faceMask,
		front:  front & faceMask,
		right:  right & faceMask,
		back:   back & faceMask,
		bottom: bottom & faceMask,
	}
}

// Solved returns the solved cube with colors 1..6 assigned to top, left,
// front, right, back and bottom.
func Solved() Cube {
	return New(
		UniformFace(Color1),
		UniformFace(Color2),
		UniformFace(Color3),
		UniformFace(Color4),
		UniformFace(Color5),
		UniformFace(Color6))
}

func (c Cube) Top() Face    { return c.top }
func (c Cube) Left() Face   { return c.left }
func (c Cube) Front() Face  { return c.front }
func (c Cube) Right() Face  { return c.right }
func (c Cube) Back() Face   { return c.back }
func (c Cube) Bottom() Face { return c.bottom }

// Face returns the face on side s.
func (c Cube) Face(s Side) Face {
	switch s {
	case SideU:
		return c.top
	case SideL:
		return c.left
	case SideF:
		return c.front
	case SideR:
		return c.right
	case SideB:
		return c.back
	case SideD:
		return c.bottom
	default:
		return 0
	}
}

// Faces returns all faces in net order: top, left, front, right, back,
// bottom.
func (c Cube) Faces() [6]Face {
	return [6]Face{c.top, c.left, c.front, c.right, c.back, c.bottom}
}

// Equal reports whether both cubes are bit-for-bit identical. Wildcards
// compare as an ordinary color.
func (c Cube) Equal(other Cube) bool {
	return c == other
}

// EquivalentTo reports whether c matches other cell by cell, where a
// wildcard on either side matches anything.
func (c Cube) EquivalentTo(other Cube) bool {
	return Equivalent(c, other)
}

// Equivalent reports whether two cubes agree on every cell where neither
// side holds a wildcard.
func Equivalent(a, b Cube) bool {
	fa, fb := a.Faces(), b.Faces()
	for i := range fa {
		if !faceEquivalent(fa[i], fb[i]) {
			return false
		}
	}
	return true
}

func faceEquivalent(f1, f2 Face) bool {
	c1, c2 := f1.Cells(), f2.Cells()
	for i := range c1 {
		if !c1[i].IsWildcard() && !c2[i].IsWildcard() && c1[i] != c2[i] {
			return false
		}
	}
	return true
}

// ColorCounts returns how many of the 54 cells hold each color value.
func (c Cube) ColorCounts() [8]int {
	var count [8]int
	for _, f := range c.Faces() {
		for _, color := range f.Cells() {
			count[color]++
		}
	}
	return count
}

// Validate checks that every cell holds a color in [1,7] and that no
// physical color appears more than nine times. Wildcards are not counted,
// so they may stand in for any missing cell. The returned error is an
// *InvalidCubeError describing the first problem found.
func (c Cube) Validate() error {
	var count [8]int
	for _, f := range [6]Face{c.top, c.bottom, c.left, c.right, c.front, c.back} {
		for _, color := range f.Cells() {
			if !color.Valid() {
				return &InvalidCubeError{Kind: InvalidColor, Color: int(color)}
			}
			count[color]++
		}
	}
	for color := Color1; color <= Color6; color++ {
		if count[color] > 9 {
			return &InvalidCubeError{Kind: InvalidCount, Color: int(color), Count: count[color]}
		}
	}
	return nil
}

// IsSolved reports whether every face shows a single color, ignoring
// wildcard cells.
func (c Cube) IsSolved() bool {
	for _, f := range c.Faces() {
		var want Color
		for _, color := range f.Cells() {
			if color.IsWildcard() {
				continue
			}
			if want == Empty {
				want = color
			}
			if color != want {
				return false
			}
		}
	}
	return true
}
