package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube"
	"github.com/SeamusWaldron/bitcube/internal/session"
)

var (
	showPlain  bool
	equivQuiet bool
)

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Start a new working cube",
	Long: `Start a new working cube, discarding the current one.

Without a file the workspace starts from a solved cube. With a file the
cube is read from its net diagram and validated first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the working cube",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var turnCmd = &cobra.Command{
	Use:   "turn <moves...>",
	Short: "Apply moves to the working cube",
	Long: `Apply a sequence of moves in standard notation to the working cube.

Examples:
  bitcube turn R U "R'" "U'"
  bitcube turn "F2 B2 L' D"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTurn,
}

var undoCmd = &cobra.Command{
	Use:   "undo [n]",
	Short: "Undo the last n moves (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUndo,
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a cube's color counts",
	Long: `Check that a cube uses only valid colors and no color appears more
than nine times. Without a file the working cube is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var equivCmd = &cobra.Command{
	Use:   "equiv <a> <b>",
	Short: "Compare two cube files, treating wildcards as matching anything",
	Long: `Compare two cube files cell by cell. A wildcard (7) on either side
matches any color. Exits non-zero when the cubes differ.`,
	Args: cobra.ExactArgs(2),
	RunE: runEquiv,
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the working cube to a net diagram file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

// errNotEquivalent is returned by equiv so the process exits non-zero.
var errNotEquivalent = errors.New("cubes are not equivalent")

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(turnCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(equivCmd)
	rootCmd.AddCommand(exportCmd)

	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print the bare net diagram")
	equivCmd.Flags().BoolVarP(&equivQuiet, "quiet", "q", false, "Print nothing, only set the exit status")
}

func runInit(cmd *cobra.Command, args []string) error {
	start := bitcube.Solved()
	if len(args) == 1 {
		var err error
		if start, err = bitcube.ReadFile(args[0]); err != nil {
			return err
		}
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	if err := ws.SetSession(session.New(start)); err != nil {
		return err
	}
	if err := ws.SetName(""); err != nil {
		return err
	}

	logger.Info("initialized workspace", "path", ws.Path())
	printSession(cmd.OutOrStdout(), session.New(start))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	s, err := ws.Session()
	if err != nil {
		return err
	}

	if showPlain {
		fmt.Fprint(cmd.OutOrStdout(), s.Current().String())
		return nil
	}
	if name := ws.Name(); name != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "State: %s\n", name)
	}
	printSession(cmd.OutOrStdout(), s)
	return nil
}

func runTurn(cmd *cobra.Command, args []string) error {
	moves, err := bitcube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	s, err := ws.Session()
	if err != nil {
		return err
	}

	s.Apply(moves...)
	if err := ws.SetSession(s); err != nil {
		return err
	}

	logger.Debug("applied moves", "moves", bitcube.FormatMoves(moves), "total", len(s.Moves()))
	printSession(cmd.OutOrStdout(), s)
	return nil
}

func runUndo(cmd *cobra.Command, args []string) error {
	n := 1
	if len(args) == 1 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid count %q", args[0])
		}
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	s, err := ws.Session()
	if err != nil {
		return err
	}

	var undone []bitcube.Move
	for i := 0; i < n; i++ {
		m, ok := s.Undo()
		if !ok {
			break
		}
		undone = append(undone, m)
	}
	if len(undone) == 0 {
		return errors.New("nothing to undo")
	}
	if err := ws.SetSession(s); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Undid: %s\n", bitcube.FormatMoves(undone))
	printSession(cmd.OutOrStdout(), s)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	var c bitcube.Cube
	var source string
	if len(args) == 1 {
		var err error
		if c, err = readCubeFile(args[0]); err != nil {
			return err
		}
		source = args[0]
	} else {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		s, err := ws.Session()
		if err != nil {
			return err
		}
		c = s.Current()
		source = "working cube"
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	counts := c.ColorCounts()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", source)
	for color := bitcube.Color1; color <= bitcube.Wildcard; color++ {
		if counts[color] == 0 {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", color, counts[color])
	}
	return nil
}

func runEquiv(cmd *cobra.Command, args []string) error {
	a, err := readCubeFile(args[0])
	if err != nil {
		return err
	}
	b, err := readCubeFile(args[1])
	if err != nil {
		return err
	}

	if !bitcube.Equivalent(a, b) {
		if !equivQuiet {
			fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
		}
		return errNotEquivalent
	}
	if !equivQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	s, err := ws.Session()
	if err != nil {
		return err
	}
	if err := bitcube.WriteFile(args[0], s.Current()); err != nil {
		return err
	}
	logger.Info("exported cube", "path", args[0])
	return nil
}

// readCubeFile parses a net diagram file without validating it.
func readCubeFile(path string) (bitcube.Cube, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bitcube.Cube{}, fmt.Errorf("failed to read cube file: %w", err)
	}
	c, err := bitcube.ParseString(string(data))
	if err != nil {
		return bitcube.Cube{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// printSession writes the current cube followed by the move history.
func printSession(w io.Writer, s *session.Session) {
	fmt.Fprint(w, newRenderer(w).Net(s.Current()))

	moves := s.Moves()
	if len(moves) == 0 {
		fmt.Fprintln(w, "Moves: (none)")
	} else {
		fmt.Fprintf(w, "Moves: %s (%d)\n", bitcube.FormatMoves(moves), len(moves))
		if short := bitcube.Simplify(moves); len(short) < len(moves) {
			fmt.Fprintf(w, "Simplified: %s (%d)\n", bitcube.FormatMoves(short), len(short))
		}
	}
	if s.IsSolved() {
		fmt.Fprintln(w, "Solved")
	}
}
