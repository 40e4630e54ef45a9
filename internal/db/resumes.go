package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-agent/internal/types"
)

// ResumeSummary is a lightweight view of a stored resume for listing.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveResume stores a resume and returns its ID.
func (db *DB) SaveResume(ctx context.Context, resume *types.ResumeData) (uuid.UUID, error) {
	payload, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, file_name, data) VALUES ($1, $2, $3)`,
		id, resume.FileName, payload,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns (nil, nil) when no such
// resume exists.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.ResumeData, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM resumes WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var resume types.ResumeData
	if err := json.Unmarshal(payload, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	return &resume, nil
}

// ListResumes retrieves recent resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]ResumeSummary, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, file_name, data->'personal_info'->>'full_name', created_at
		 FROM resumes ORDER BY created_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var out []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.FileName, &s.FullName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// DeleteResume deletes a resume and its enhancement via cascade.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
