// Package session tracks a working cube and the moves applied to it.
package session

import (
	"github.com/SeamusWaldron/bitcube"
)

// Session wraps a start cube, the current cube and the move history
// between them. It is not safe for concurrent use; the cube values it
// hands out are.
type Session struct {
	start    bitcube.Cube
	current  bitcube.Cube
	moves    []bitcube.Move
	onChange func(c bitcube.Cube, moves []bitcube.Move)
}

// New creates a session starting from start.
func New(start bitcube.Cube) *Session {
	return &Session{start: start, current: start}
}

// Restore creates a session at start with moves already applied.
func Restore(start bitcube.Cube, moves []bitcube.Move) *Session {
	s := New(start)
	s.moves = append(s.moves, moves...)
	s.current = start.Apply(moves...)
	return s
}

// SetChangeCallback sets a callback fired after every change to the
// current cube.
func (s *Session) SetChangeCallback(cb func(c bitcube.Cube, moves []bitcube.Move)) {
	s.onChange = cb
}

// Apply applies moves to the current cube.
func (s *Session) Apply(moves ...bitcube.Move) {
	if len(moves) == 0 {
		return
	}
	s.current = s.current.Apply(moves...)
	s.moves = append(s.moves, moves...)
	s.changed()
}

// Undo reverts the last move. It reports false when there is nothing to
// undo.
func (s *Session) Undo() (bitcube.Move, bool) {
	if len(s.moves) == 0 {
		return bitcube.Move{}, false
	}
	last := s.moves[len(s.moves)-1]
	s.moves = s.moves[:len(s.moves)-1]
	s.current = s.current.Turn(last.Inverse())
	s.changed()
	return last, true
}

// Reset returns to the start cube and clears the history.
func (s *Session) Reset() {
	s.current = s.start
	s.moves = nil
	s.changed()
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange(s.current, s.Moves())
	}
}

// Start returns the cube the session started from.
func (s *Session) Start() bitcube.Cube {
	return s.start
}

// Current returns the current cube.
func (s *Session) Current() bitcube.Cube {
	return s.current
}

// Moves returns a copy of the applied moves.
func (s *Session) Moves() []bitcube.Move {
	return append([]bitcube.Move(nil), s.moves...)
}

// IsSolved returns true if the current cube is solved.
func (s *Session) IsSolved() bool {
	return s.current.IsSolved()
}
