package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/SeamusWaldron/bitcube"
)

var testPalette = map[int]string{
	0: "8", 1: "#ffffff", 2: "#ff8c00", 3: "#00a651",
	4: "#e4002b", 5: "#0051ba", 6: "#ffd500", 7: "13",
}

func scrambled() bitcube.Cube {
	return bitcube.Solved().Apply(bitcube.TPerm...).Apply(bitcube.F, bitcube.D2, bitcube.LPrime)
}

func TestNetWithoutColorMatchesString(t *testing.T) {
	r := New(&bytes.Buffer{}, testPalette, WithoutColor())
	for _, c := range []bitcube.Cube{bitcube.Solved(), scrambled()} {
		if got, want := r.Net(c), c.String(); got != want {
			t.Errorf("Net() =\n%s\nwant\n%s", got, want)
		}
	}
}

func TestNetWithColor(t *testing.T) {
	r := New(&bytes.Buffer{}, testPalette, WithTrueColor())
	c := scrambled()
	got := r.Net(c)

	if !strings.Contains(got, "\x1b[") {
		t.Fatal("Net() output has no escape sequences")
	}
	if plain := ansi.Strip(got); plain != c.String() {
		t.Errorf("stripped Net() =\n%s\nwant\n%s", plain, c.String())
	}
}

func TestNetBlocksLayout(t *testing.T) {
	r := New(&bytes.Buffer{}, testPalette, WithoutColor(), WithBlocks())
	lines := strings.Split(strings.TrimSuffix(r.Net(bitcube.Solved()), "\n"), "\n")
	if len(lines) != 13 {
		t.Fatalf("Net() has %d lines, want 13", len(lines))
	}
	width := ansi.StringWidth(lines[4])
	for i := 5; i <= 8; i++ {
		if w := ansi.StringWidth(lines[i]); w != width {
			t.Errorf("line %d width = %d, want %d", i, w, width)
		}
	}
}

func TestCellParsesBackToColor(t *testing.T) {
	r := New(&bytes.Buffer{}, testPalette, WithTrueColor())
	for c := bitcube.Empty; c <= bitcube.Wildcard; c++ {
		if got := ansi.Strip(r.Cell(c)); got != c.String() {
			t.Errorf("Cell(%d) stripped = %q, want %q", c, got, c.String())
		}
	}
}
