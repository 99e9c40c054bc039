package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/bitcube"
)

// State is a named cube snapshot together with the moves that led to it
// from its start cube.
type State struct {
	StateID   string
	Name      string
	Start     bitcube.Cube
	Cube      bitcube.Cube
	Moves     []bitcube.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StateRepository provides CRUD operations for saved states.
type StateRepository struct {
	db *DB
}

// NewStateRepository creates a new state repository.
func NewStateRepository(db *DB) *StateRepository {
	return &StateRepository{db: db}
}

// Save stores the state under name, replacing any state already saved
// under that name, and returns its ID. The ID of a replaced state is kept.
func (r *StateRepository) Save(name string, start, current bitcube.Cube, moves []bitcube.Move) (string, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	notation := bitcube.FormatMoves(moves)

	var id string
	err := r.db.Transaction(func(tx *sql.Tx) error {
		err := tx.QueryRow("SELECT state_id FROM states WHERE name = ?", name).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			id = uuid.New().String()
			_, err = tx.Exec(`
				INSERT INTO states (state_id, name, start_net, net, moves, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, id, name, start.String(), current.String(), notation, now, now)
			if err != nil {
				return fmt.Errorf("failed to create state: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to look up state: %w", err)
		default:
			_, err = tx.Exec(`
				UPDATE states
				SET start_net = ?, net = ?, moves = ?, updated_at = ?
				WHERE state_id = ?
			`, start.String(), current.String(), notation, now, id)
			if err != nil {
				return fmt.Errorf("failed to update state: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	r.db.logger.Debug("saved state", "name", name, "state_id", id, "moves", len(moves))
	return id, nil
}

// Get retrieves a state by name. It returns an error wrapping
// bitcube.ErrNotFound if no state has that name.
func (r *StateRepository) Get(name string) (*State, error) {
	row := r.db.QueryRow(`
		SELECT state_id, name, start_net, net, moves, created_at, updated_at
		FROM states
		WHERE name = ?
	`, name)

	s, err := scanState(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: state %q", bitcube.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	return s, nil
}

// List returns up to limit states ordered by name.
func (r *StateRepository) List(limit int) ([]State, error) {
	rows, err := r.db.Query(`
		SELECT state_id, name, start_net, net, moves, created_at, updated_at
		FROM states
		ORDER BY name
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	defer rows.Close()

	var states []State
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}

	return states, nil
}

// Delete removes the state saved under name.
func (r *StateRepository) Delete(name string) error {
	result, err := r.db.Exec("DELETE FROM states WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: state %q", bitcube.ErrNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanState(row scanner) (*State, error) {
	var s State
	var startNet, net, moves, createdAt, updatedAt string

	err := row.Scan(&s.StateID, &s.Name, &startNet, &net, &moves, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if s.Start, err = bitcube.ParseString(startNet); err != nil {
		return nil, fmt.Errorf("state %q: bad start cube: %w", s.Name, err)
	}
	if s.Cube, err = bitcube.ParseString(net); err != nil {
		return nil, fmt.Errorf("state %q: bad cube: %w", s.Name, err)
	}
	if s.Moves, err = bitcube.ParseMoves(moves); err != nil {
		return nil, fmt.Errorf("state %q: bad moves: %w", s.Name, err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("state %q: bad created_at: %w", s.Name, err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("state %q: bad updated_at: %w", s.Name, err)
	}

	return &s, nil
}
