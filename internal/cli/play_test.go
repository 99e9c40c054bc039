package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/bitcube"
	"github.com/SeamusWaldron/bitcube/internal/render"
	"github.com/SeamusWaldron/bitcube/internal/session"
	"github.com/SeamusWaldron/bitcube/internal/workspace"
)

func newTestPlayModel(t *testing.T) *playModel {
	t.Helper()
	ws, err := workspace.Open(filepath.Join(t.TempDir(), "workspace.json"))
	if err != nil {
		t.Fatal(err)
	}
	r := render.New(&bytes.Buffer{}, nil, render.WithoutColor())
	return newPlayModel(session.New(bitcube.Solved()), ws, r)
}

func press(m *playModel, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPlayTurns(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want []bitcube.Move
	}{
		{"clockwise", []tea.KeyMsg{runeKey('r'), runeKey('u')}, []bitcube.Move{bitcube.R, bitcube.U}},
		{"shift is prime", []tea.KeyMsg{runeKey('F'), runeKey('D')}, []bitcube.Move{bitcube.FPrime, bitcube.DPrime}},
		{"half turn", []tea.KeyMsg{runeKey('2'), runeKey('B'), runeKey('l')}, []bitcube.Move{bitcube.B2, bitcube.L}},
		{"unknown keys ignored", []tea.KeyMsg{runeKey('a'), {Type: tea.KeyTab}, runeKey('r')}, []bitcube.Move{bitcube.R}},
		{"undo", []tea.KeyMsg{runeKey('r'), runeKey('u'), runeKey('z')}, []bitcube.Move{bitcube.R}},
		{"reset", []tea.KeyMsg{runeKey('r'), runeKey('x')}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestPlayModel(t)
			press(m, tt.keys...)

			got := m.sess.Moves()
			if bitcube.FormatMoves(got) != bitcube.FormatMoves(tt.want) {
				t.Errorf("moves = %s, want %s", bitcube.FormatMoves(got), bitcube.FormatMoves(tt.want))
			}
			if want := bitcube.Solved().Apply(tt.want...); !m.sess.Current().Equal(want) {
				t.Errorf("cube =\n%s\nwant\n%s", m.sess.Current(), want)
			}
		})
	}
}

func TestPlayQuitSavesWorkspace(t *testing.T) {
	m := newTestPlayModel(t)
	cmd := press(m, runeKey('r'), runeKey('r'), tea.KeyMsg{Type: tea.KeyEsc})

	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command does not quit")
	}
	if m.err != nil {
		t.Fatalf("save failed: %v", m.err)
	}

	ws, err := workspace.Open(m.ws.Path())
	if err != nil {
		t.Fatal(err)
	}
	s, err := ws.Session()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Current().Equal(bitcube.Solved().R2()) {
		t.Errorf("saved cube =\n%s", s.Current())
	}
}

func TestPlayViewShowsSolved(t *testing.T) {
	m := newTestPlayModel(t)
	if v := m.View(); !bytes.Contains([]byte(v), []byte("SOLVED")) {
		t.Errorf("View() of solved cube lacks SOLVED:\n%s", v)
	}
	press(m, runeKey('f'))
	if v := m.View(); bytes.Contains([]byte(v), []byte("SOLVED")) {
		t.Errorf("View() after F shows SOLVED:\n%s", v)
	}
}
