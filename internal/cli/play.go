package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube"
	"github.com/SeamusWaldron/bitcube/internal/render"
	"github.com/SeamusWaldron/bitcube/internal/session"
	"github.com/SeamusWaldron/bitcube/internal/workspace"
)

var playBlocks bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the working cube interactively",
	Long: `Start an interactive TUI for turning the working cube.

Keyboard shortcuts:
  u d l r f b   - Turn the face clockwise
  U D L R F B   - Turn the face counter-clockwise
  2             - Make the next turn a half turn
  z             - Undo the last move
  x             - Reset to the start cube
  q/Esc         - Save and quit

The working cube is saved to the workspace on quit.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playBlocks, "blocks", false, "Draw cells as colored blocks")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// maxShownMoves is how many recent moves the TUI lists.
const maxShownMoves = 20

// playKeyMap defines the key bindings for the play TUI.
type playKeyMap struct {
	Turn      key.Binding
	TurnPrime key.Binding
	Half      key.Binding
	Undo      key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

var playKeys = playKeyMap{
	Turn: key.NewBinding(
		key.WithKeys("u", "d", "l", "r", "f", "b"),
		key.WithHelp("udlrfb", "turn"),
	),
	TurnPrime: key.NewBinding(
		key.WithKeys("U", "D", "L", "R", "F", "B"),
		key.WithHelp("shift", "prime"),
	),
	Half: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "half"),
	),
	Undo: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "undo"),
	),
	Reset: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// help renders the bindings as a single line.
func (k playKeyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Turn, k.TurnPrime, k.Half, k.Undo, k.Reset, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+"="+h.Desc)
	}
	return "Keys: " + strings.Join(parts, "  ")
}

// Model
type playModel struct {
	sess     *session.Session
	ws       *workspace.File
	renderer *render.Renderer

	double   bool // next turn is a half turn
	last     string
	err      error
	quitting bool
}

func newPlayModel(s *session.Session, ws *workspace.File, r *render.Renderer) *playModel {
	return &playModel{sess: s, ws: ws, renderer: r}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch {
	case key.Matches(keyMsg, playKeys.Quit):
		m.quitting = true
		m.err = m.ws.SetSession(m.sess)
		return m, tea.Quit

	case key.Matches(keyMsg, playKeys.Half):
		m.double = !m.double

	case key.Matches(keyMsg, playKeys.Undo):
		if mv, ok := m.sess.Undo(); ok {
			m.last = "undo " + mv.Notation()
		}
		m.double = false

	case key.Matches(keyMsg, playKeys.Reset):
		m.sess.Reset()
		m.last = "reset"
		m.double = false

	case key.Matches(keyMsg, playKeys.Turn, playKeys.TurnPrime):
		mv, err := bitcube.ParseMove(keyMsg.String())
		if err != nil {
			break
		}
		switch {
		case m.double:
			mv.Turn = bitcube.Double
		case key.Matches(keyMsg, playKeys.TurnPrime):
			mv.Turn = bitcube.CCW
		}
		m.sess.Apply(mv)
		m.last = mv.Notation()
		m.double = false
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("Failed to save workspace: %v", m.err)) + "\n"
		}
		return fmt.Sprintf("Saved %d moves to %s\n", len(m.sess.Moves()), m.ws.Path())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("bitcube"))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Net(m.sess.Current()))
	b.WriteString("\n")

	moves := m.sess.Moves()
	shown := moves
	prefix := ""
	if len(shown) > maxShownMoves {
		shown = shown[len(shown)-maxShownMoves:]
		prefix = "... "
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves (%d): ", len(moves))))
	b.WriteString(moveStyle.Render(prefix + bitcube.FormatMoves(shown)))
	b.WriteString("\n")

	if m.last != "" {
		b.WriteString(statusStyle.Render("Last: " + m.last))
		b.WriteString("\n")
	}
	if m.double {
		b.WriteString(statusStyle.Render("Half turn armed"))
		b.WriteString("\n")
	}
	if m.sess.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(playKeys.help()))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	s, err := ws.Session()
	if err != nil {
		return err
	}

	var opts []render.Option
	if noColor {
		opts = append(opts, render.WithoutColor())
	}
	if playBlocks {
		opts = append(opts, render.WithBlocks())
	}

	model := newPlayModel(s, ws, render.New(os.Stdout, cfg.Palette, opts...))
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if pm, ok := final.(*playModel); ok && pm.err != nil {
		return pm.err
	}
	return nil
}
