package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-agent/internal/types"
)

// SaveLocation stores the user's location and permission. There is a single
// location row; saving replaces it.
func (db *DB) SaveLocation(ctx context.Context, loc *types.UserLocation, perm types.LocationPermission) error {
	var payload []byte
	if loc != nil {
		var err error
		payload, err = json.Marshal(loc)
		if err != nil {
			return fmt.Errorf("failed to marshal location: %w", err)
		}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_location (singleton, location, permission) VALUES (TRUE, $1, $2)
		 ON CONFLICT (singleton) DO UPDATE SET location = $1, permission = $2, updated_at = NOW()`,
		payload, string(perm),
	)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// GetLocation retrieves the saved location and permission. An absent row
// reads as the prompt state with no location.
func (db *DB) GetLocation(ctx context.Context) (*types.UserLocation, types.LocationPermission, error) {
	var payload []byte
	var perm string
	err := db.pool.QueryRow(ctx,
		`SELECT location, permission FROM user_location WHERE singleton`,
	).Scan(&payload, &perm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.PermissionPrompt, nil
		}
		return nil, types.PermissionPrompt, fmt.Errorf("failed to get location: %w", err)
	}

	if len(payload) == 0 {
		return nil, types.LocationPermission(perm), nil
	}
	var loc types.UserLocation
	if err := json.Unmarshal(payload, &loc); err != nil {
		return nil, types.LocationPermission(perm), fmt.Errorf("failed to unmarshal location: %w", err)
	}
	return &loc, types.LocationPermission(perm), nil
}

// DeleteLocation wipes the saved location, returning the state to prompt.
func (db *DB) DeleteLocation(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM user_location WHERE singleton`); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}
