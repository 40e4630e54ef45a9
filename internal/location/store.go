// Package location manages the user's saved position: a single-file SQLite
// store for the location and permission state, and a service that acquires
// a position with best-effort reverse geocoding.
package location

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jonathan/career-agent/internal/types"
)

const (
	keyLocation   = "userLocation"
	keyPermission = "locationPermission"
)

const schema = `
CREATE TABLE IF NOT EXISTS location_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store persists the user's location and permission decision in a small
// key-value table. There is exactly one user; the table holds at most two
// rows.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed creates) the location store at path.
// Use ":memory:" for an ephemeral store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open location store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize location store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM location_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO location_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Save persists the location together with the granted permission.
func (s *Store) Save(ctx context.Context, loc *types.UserLocation, perm types.LocationPermission) error {
	if loc != nil {
		payload, err := json.Marshal(loc)
		if err != nil {
			return fmt.Errorf("failed to encode location: %w", err)
		}
		if err := s.put(ctx, keyLocation, string(payload)); err != nil {
			return err
		}
	}
	return s.put(ctx, keyPermission, string(perm))
}

// Load returns the saved location and permission. A saved location is only
// honored alongside a granted permission; anything else reads as the prompt
// state with no location.
func (s *Store) Load(ctx context.Context) (*types.UserLocation, types.LocationPermission, error) {
	permValue, ok, err := s.get(ctx, keyPermission)
	if err != nil {
		return nil, types.PermissionPrompt, err
	}
	if !ok {
		return nil, types.PermissionPrompt, nil
	}
	perm := types.LocationPermission(permValue)

	if perm != types.PermissionGranted {
		return nil, perm, nil
	}

	locValue, ok, err := s.get(ctx, keyLocation)
	if err != nil {
		return nil, perm, err
	}
	if !ok {
		return nil, perm, nil
	}

	var loc types.UserLocation
	if err := json.Unmarshal([]byte(locValue), &loc); err != nil {
		return nil, perm, fmt.Errorf("failed to decode location: %w", err)
	}
	return &loc, perm, nil
}

// Clear wipes both the location and the permission, returning the state to
// prompt.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM location_state WHERE key IN (?, ?)`, keyLocation, keyPermission)
	if err != nil {
		return fmt.Errorf("failed to clear location state: %w", err)
	}
	return nil
}
