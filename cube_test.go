package bitcube

import (
	"errors"
	"testing"
)

func TestSolvedIsSolved(t *testing.T) {
	c := Solved()
	if !c.IsSolved() {
		t.Error("solved cube should be solved")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("solved cube should validate: %v", err)
	}
}

func TestFaceAccessors(t *testing.T) {
	c := Solved()
	for i, s := range Sides {
		if got, want := c.Face(s), UniformFace(Color(i+1)); got != want {
			t.Errorf("Face(%s) = %v, want %v", s, got.Cells(), want.Cells())
		}
		if c.Face(s) != c.Faces()[i] {
			t.Errorf("Face(%s) disagrees with Faces()", s)
		}
	}
	if c.Top() != c.Face(SideU) || c.Bottom() != c.Face(SideD) {
		t.Error("Top/Bottom disagree with Face")
	}
}

func TestNewMasksHighBits(t *testing.T) {
	f := UniformFace(Color3)
	c := New(f|1<<31, f, f, f, f, f)
	if c.Top() != f {
		t.Errorf("New kept high bits: %b", c.Top())
	}
}

func TestValidateRejectsOvercount(t *testing.T) {
	// Ten cells of color 3, the rest wildcards.
	threes := UniformFace(Color3)
	almost := MakeFace(3, 7, 7, 7, 7, 7, 7, 7, 7)
	wild := UniformFace(Wildcard)
	c := New(threes, almost, wild, wild, wild, wild)

	err := c.Validate()
	if !errors.Is(err, ErrInvalidCube) {
		t.Fatalf("Validate() = %v, want ErrInvalidCube", err)
	}
	var invalid *InvalidCubeError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() = %T, want *InvalidCubeError", err)
	}
	if invalid.Kind != InvalidCount || invalid.Color != 3 || invalid.Count != 10 {
		t.Errorf("got %+v, want count error for color 3 with 10 cells", invalid)
	}
}

func TestValidateRejectsEmptyCell(t *testing.T) {
	c := Solved()
	c = New(c.Top().ReplaceRow(2, MakeRow(1, Empty, 1)), c.Left(), c.Front(), c.Right(), c.Back(), c.Bottom())

	var invalid *InvalidCubeError
	if err := c.Validate(); !errors.As(err, &invalid) || invalid.Kind != InvalidColor || invalid.Color != 0 {
		t.Errorf("Validate() = %v, want invalid color 0", err)
	}
}

func TestValidateAllowsWildcards(t *testing.T) {
	wild := UniformFace(Wildcard)
	c := New(wild, wild, wild, wild, wild, wild)
	if err := c.Validate(); err != nil {
		t.Errorf("all-wildcard cube should validate: %v", err)
	}
}

func TestEquivalentWithWildcards(t *testing.T) {
	a := Solved()
	b := New(
		a.Top().ReplaceRow(1, MakeRow(Wildcard, 1, Wildcard)),
		a.Left(),
		a.Front(),
		a.Right(),
		a.Back(),
		UniformFace(Wildcard))

	if !Equivalent(a, b) || !b.EquivalentTo(a) {
		t.Error("cubes differing only at wildcards should be equivalent")
	}
	if a.Equal(b) {
		t.Error("cubes with wildcards should not be structurally equal")
	}
}

func TestEquivalentDetectsMismatch(t *testing.T) {
	a := Solved()
	b := a.R()
	if Equivalent(a, b) {
		t.Error("R should produce a non-equivalent cube")
	}

	// A wildcard on one side hides only its own cell.
	c := New(a.Top().ReplaceRow(1, MakeRow(Wildcard, 2, 1)), a.Left(), a.Front(), a.Right(), a.Back(), a.Bottom())
	if Equivalent(a, c) {
		t.Error("non-wildcard mismatch should not be equivalent")
	}
}

func TestWildcardEqualityIsStructural(t *testing.T) {
	wild := UniformFace(Wildcard)
	a := New(wild, wild, wild, wild, wild, wild)
	b := New(wild, wild, wild, wild, wild, wild)
	if !a.Equal(b) {
		t.Error("identical wildcard cubes should be equal")
	}
}

func TestColorCounts(t *testing.T) {
	counts := Solved().ColorCounts()
	for color := Color1; color <= Color6; color++ {
		if counts[color] != 9 {
			t.Errorf("count[%d] = %d, want 9", color, counts[color])
		}
	}
	if counts[Empty] != 0 || counts[Wildcard] != 0 {
		t.Errorf("unexpected empty/wildcard counts: %v", counts)
	}
}

func TestColorIsWildcard(t *testing.T) {
	for c := Empty; c <= Wildcard; c++ {
		if got := c.IsWildcard(); got != (c == Wildcard) {
			t.Errorf("Color(%d).IsWildcard() = %v", c, got)
		}
	}
}

func TestIsSolvedIgnoresWildcards(t *testing.T) {
	s := Solved()
	c := New(s.Top().ReplaceRow(3, MakeRow(Wildcard, Wildcard, 1)), s.Left(), s.Front(), s.Right(), s.Back(), s.Bottom())
	if !c.IsSolved() {
		t.Error("wildcards should not break IsSolved")
	}
}
