package bitcube

import "strconv"

// Color is the value stored in a single cell. Only the low 3 bits are
// ever packed into a face.
type Color uint8

const (
	Empty    Color = 0 // Placeholder while a face is being built
	Color1   Color = 1
	Color2   Color = 2
	Color3   Color = 3
	Color4   Color = 4
	Color5   Color = 5
	Color6   Color = 6
	Wildcard Color = 7 // Matches any color under Equivalent
)

// NumColors is the number of physical colors on a cube.
const NumColors = 6

// Valid reports whether c may appear in a validated cube.
func (c Color) Valid() bool {
	return c >= Color1 && c <= Wildcard
}

// IsWildcard reports whether c stands in for any color.
func (c Color) IsWildcard() bool {
	return c == Wildcard
}

func (c Color) String() string {
	return strconv.Itoa(int(c))
}
