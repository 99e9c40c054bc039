// Package bitcube models a 3x3x3 twisty puzzle as an immutable value and
// implements the 18 face turns as pure functions on it.
//
// # Faces
//
// Each face is a 3x3 grid of colors packed into a single 27-bit Face, 3
// bits per cell, row 1 in the most significant bits. Colors 1-6 are the
// physical colors, 0 marks an unset cell and 7 is a wildcard that
// matches anything under Equivalent.
//
// The Face methods are the building blocks of every turn: extracting and
// replacing rows and columns, reading a column as a row, and rotating a
// whole face.
//
// # Cubes
//
// A Cube holds six faces and is never modified in place:
//
//	c := bitcube.Solved()
//	c = c.R().U().RPrime().UPrime()
//
//	// Or from notation
//	moves, err := bitcube.ParseMoves("F B2 L' D")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c = c.Apply(moves...)
//
// # Text format
//
// Cubes are read and written as an unfolded net diagram, see Parse and
// Cube.String. ReadFile additionally runs Validate on the result.
package bitcube

// Version is the library version.
const Version = "0.1.0"
