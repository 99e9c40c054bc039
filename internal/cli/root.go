// Package cli implements the command-line interface for bitcube.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube"
	"github.com/SeamusWaldron/bitcube/internal/config"
	"github.com/SeamusWaldron/bitcube/internal/render"
	"github.com/SeamusWaldron/bitcube/internal/storage"
	"github.com/SeamusWaldron/bitcube/internal/workspace"
)

var (
	// Global flags
	configPath    string
	dbPath        string
	workspacePath string
	noColor       bool
	verbose       bool

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "bitcube",
	Short: "3x3x3 cube workbench",
	Long: `bitcube - turn, inspect and store 3x3x3 cube states from the terminal.

Cubes are read and written as net diagrams: the top face, then the left,
front, right and back faces side by side, then the bottom face, with one
digit per cell (1-6 for colors, 0 for empty, 7 for a wildcard).

The working cube lives in a workspace file and persists between
commands; named states are kept in a SQLite database.`,
	Version:           bitcube.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.bitcube/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: from config)")
	rootCmd.PersistentFlags().StringVar(&workspacePath, "workspace", "", "Workspace file path (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the config and sets up logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if workspacePath != "" {
		cfg.WorkspacePath = workspacePath
	}

	logger.Debug("loaded config", "path", path, "db", cfg.DBPath, "workspace", cfg.WorkspacePath)
	return nil
}

// openDB opens the configured state database.
func openDB() (*storage.DB, error) {
	db, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// openWorkspace opens the configured workspace file.
func openWorkspace() (*workspace.File, error) {
	ws, err := workspace.Open(cfg.WorkspacePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace: %w", err)
	}
	return ws, nil
}

// newRenderer returns a renderer for w using the configured palette.
func newRenderer(w io.Writer) *render.Renderer {
	var opts []render.Option
	if noColor {
		opts = append(opts, render.WithoutColor())
	}
	return render.New(w, cfg.Palette, opts...)
}
