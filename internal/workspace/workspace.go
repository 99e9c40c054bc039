// Package workspace persists the working cube between CLI invocations.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/bitcube"
	"github.com/SeamusWaldron/bitcube/internal/session"
)

// State is the on-disk form of the workspace. Cubes are stored as net
// diagrams and moves in standard notation.
type State struct {
	Start   string `json:"start"`
	Current string `json:"current"`
	Moves   string `json:"moves,omitempty"`
	Name    string `json:"name,omitempty"`
}

// File manages the workspace file.
type File struct {
	path  string
	state State
}

// Open opens the workspace at path. A missing file gives an empty
// workspace, which holds a solved cube.
func Open(path string) (*File, error) {
	f := &File{path: path}
	if err := f.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return f, nil
}

// Path returns the workspace file path.
func (f *File) Path() string {
	return f.path
}

// Load loads the workspace from disk.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &f.state); err != nil {
		return fmt.Errorf("failed to parse workspace %s: %w", f.path, err)
	}
	return nil
}

// Save saves the workspace to disk.
func (f *File) Save() error {
	data, err := json.MarshalIndent(f.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write workspace file: %w", err)
	}
	return nil
}

// State returns the raw workspace state.
func (f *File) State() State {
	return f.state
}

// Name returns the name of the saved state the workspace was last loaded
// from or saved to.
func (f *File) Name() string {
	return f.state.Name
}

// SetName records the saved state name and saves.
func (f *File) SetName(name string) error {
	f.state.Name = name
	return f.Save()
}

// Session rebuilds the working session. An empty workspace starts from a
// solved cube.
func (f *File) Session() (*session.Session, error) {
	if f.state.Start == "" {
		return session.New(bitcube.Solved()), nil
	}

	start, err := bitcube.ParseString(f.state.Start)
	if err != nil {
		return nil, fmt.Errorf("workspace start cube: %w", err)
	}
	moves, err := bitcube.ParseMoves(f.state.Moves)
	if err != nil {
		return nil, fmt.Errorf("workspace moves: %w", err)
	}
	s := session.Restore(start, moves)

	if f.state.Current != "" {
		current, err := bitcube.ParseString(f.state.Current)
		if err != nil {
			return nil, fmt.Errorf("workspace current cube: %w", err)
		}
		if !current.Equal(s.Current()) {
			return nil, fmt.Errorf("workspace %s is inconsistent: current cube does not match start and moves", f.path)
		}
	}
	return s, nil
}

// SetSession stores s as the working session and saves.
func (f *File) SetSession(s *session.Session) error {
	f.state.Start = s.Start().String()
	f.state.Current = s.Current().String()
	f.state.Moves = bitcube.FormatMoves(s.Moves())
	return f.Save()
}
