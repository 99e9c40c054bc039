package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube/internal/session"
	"github.com/SeamusWaldron/bitcube/internal/storage"
)

var listLimit int

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the working cube under a name",
	Long: `Save the working cube, its start cube and its move history under a
name. An existing state with the same name is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Replace the working cube with a saved state",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved states",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved state",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)

	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 100, "Maximum number of states to list")
}

func runSave(cmd *cobra.Command, args []string) error {
	name := args[0]

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	s, err := ws.Session()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewStateRepository(db).Save(name, s.Start(), s.Current(), s.Moves())
	if err != nil {
		return err
	}
	if err := ws.SetName(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s, %d moves)\n", name, id[:8], len(s.Moves()))
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	name := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	st, err := storage.NewStateRepository(db).Get(name)
	if err != nil {
		return err
	}

	s := session.Restore(st.Start, st.Moves)
	if !s.Current().Equal(st.Cube) {
		return fmt.Errorf("state %q is inconsistent: its moves do not lead to its cube", name)
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	if err := ws.SetSession(s); err != nil {
		return err
	}
	if err := ws.SetName(name); err != nil {
		return err
	}

	logger.Debug("loaded state", "name", name, "state_id", st.StateID)
	fmt.Fprintf(cmd.OutOrStdout(), "State: %s\n", name)
	printSession(cmd.OutOrStdout(), s)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	states, err := storage.NewStateRepository(db).List(listLimit)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved states")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMOVES\tSOLVED\tUPDATED")
	for _, st := range states {
		solved := ""
		if st.Cube.IsSolved() {
			solved = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", st.Name, len(st.Moves), solved, st.UpdatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

func runDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewStateRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
