package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-agent/internal/types"
)

// SaveEnhancement stores an enhancement result for a resume, replacing any
// previous result for the same resume, and returns its ID.
func (db *DB) SaveEnhancement(ctx context.Context, resumeID uuid.UUID, result *types.EnhancementResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal enhancement: %w", err)
	}

	id := uuid.New()
	err = db.pool.QueryRow(ctx,
		`INSERT INTO enhancements (id, resume_id, result) VALUES ($1, $2, $3)
		 ON CONFLICT (resume_id) DO UPDATE SET result = $3, updated_at = NOW()
		 RETURNING id`,
		id, resumeID, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save enhancement: %w", err)
	}
	return id, nil
}

// GetEnhancement retrieves an enhancement result by its ID. Returns
// (nil, nil) when no such enhancement exists.
func (db *DB) GetEnhancement(ctx context.Context, id uuid.UUID) (*types.EnhancementResult, error) {
	return db.scanEnhancement(ctx,
		`SELECT result FROM enhancements WHERE id = $1`, id)
}

// GetEnhancementByResume retrieves the enhancement result for a resume.
// Returns (nil, nil) when the resume has not been enhanced.
func (db *DB) GetEnhancementByResume(ctx context.Context, resumeID uuid.UUID) (*types.EnhancementResult, error) {
	return db.scanEnhancement(ctx,
		`SELECT result FROM enhancements WHERE resume_id = $1`, resumeID)
}

func (db *DB) scanEnhancement(ctx context.Context, query string, arg any) (*types.EnhancementResult, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx, query, arg).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enhancement: %w", err)
	}

	var result types.EnhancementResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enhancement: %w", err)
	}
	return &result, nil
}

// UpdateEnhancement overwrites a stored enhancement result after a
// suggestion-state mutation.
func (db *DB) UpdateEnhancement(ctx context.Context, id uuid.UUID, result *types.EnhancementResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal enhancement: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE enhancements SET result = $1, updated_at = NOW() WHERE id = $2`,
		payload, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update enhancement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("enhancement not found: %s", id)
	}
	return nil
}
