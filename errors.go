package bitcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bitcube package.
var (
	// Input errors
	ErrMalformedInput  = errors.New("bitcube: malformed input")
	ErrInvalidNotation = errors.New("bitcube: invalid move notation")

	// Programming errors, raised as panics
	ErrOutOfRange = errors.New("bitcube: index out of range")

	// State errors
	ErrInvalidCube = errors.New("bitcube: invalid cube")
	ErrNotFound    = errors.New("bitcube: not found")
)

// ParseError describes why a net diagram could not be read.
type ParseError struct {
	Line   int    // 1-based line of the offending token, 0 when not tied to a token
	Token  string // offending token, if any
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("bitcube: malformed input at line %d: %s: %q", e.Line, e.Reason, e.Token)
	}
	return "bitcube: malformed input: " + e.Reason
}

func (e *ParseError) Unwrap() error { return ErrMalformedInput }

// InvalidKind distinguishes the two ways a cube can fail validation.
type InvalidKind int

const (
	InvalidColor InvalidKind = iota + 1 // a cell holds a value outside [1,7]
	InvalidCount                        // a color appears more than 9 times
)

// InvalidCubeError reports the first offending color found by Validate.
type InvalidCubeError struct {
	Kind  InvalidKind
	Color int
	Count int // only set for InvalidCount
}

func (e *InvalidCubeError) Error() string {
	if e.Kind == InvalidCount {
		return fmt.Sprintf("bitcube: invalid count for color %d: %d", e.Color, e.Count)
	}
	return fmt.Sprintf("bitcube: invalid color: %d", e.Color)
}

func (e *InvalidCubeError) Unwrap() error { return ErrInvalidCube }
