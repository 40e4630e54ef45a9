package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/career-agent/internal/db"
	"github.com/jonathan/career-agent/internal/types"
)

// Storage is the persistence surface the handlers need. *db.DB satisfies
// it; tests plug in a fake.
type Storage interface {
	SaveResume(ctx context.Context, resume *types.ResumeData) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*types.ResumeData, error)
	ListResumes(ctx context.Context, limit int) ([]db.ResumeSummary, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error

	SaveEnhancement(ctx context.Context, resumeID uuid.UUID, result *types.EnhancementResult) (uuid.UUID, error)
	GetEnhancement(ctx context.Context, id uuid.UUID) (*types.EnhancementResult, error)
	GetEnhancementByResume(ctx context.Context, resumeID uuid.UUID) (*types.EnhancementResult, error)
	UpdateEnhancement(ctx context.Context, id uuid.UUID, result *types.EnhancementResult) error

	SaveLocation(ctx context.Context, loc *types.UserLocation, perm types.LocationPermission) error
	GetLocation(ctx context.Context) (*types.UserLocation, types.LocationPermission, error)
	DeleteLocation(ctx context.Context) error
}

// locationStore adapts Storage to the location service's persistence port.
type locationStore struct {
	store Storage
}

func (l *locationStore) Save(ctx context.Context, loc *types.UserLocation, perm types.LocationPermission) error {
	return l.store.SaveLocation(ctx, loc, perm)
}

func (l *locationStore) Load(ctx context.Context) (*types.UserLocation, types.LocationPermission, error) {
	return l.store.GetLocation(ctx)
}

func (l *locationStore) Clear(ctx context.Context) error {
	return l.store.DeleteLocation(ctx)
}
