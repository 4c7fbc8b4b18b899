package note

import (
	"context"

	domain "notes-service/internal/domain/note"
)

// Usecase defines the interface for note business logic. Every operation is
// scoped to the caller's identity resolved by the access gate; there is no
// unauthenticated path.
type Usecase interface {
	List(ctx context.Context, in ListNotesRequest) (*ListNotesResponse, error)
	Create(ctx context.Context, in CreateNoteRequest) (*Note, error)
	GetByID(ctx context.Context, in GetNoteRequest) (*Note, error)
	Update(ctx context.Context, in UpdateNoteRequest) (*Note, error)
	Delete(ctx context.Context, in DeleteNoteRequest) (*DeleteNoteResponse, error)
}

// Repository defines the interface for note data access operations.
// GetByID returns (nil, nil) when no note exists; the ownership check is the
// usecase's responsibility, after existence.
type Repository interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	Update(ctx context.Context, n *domain.Note) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Note, error)
}
