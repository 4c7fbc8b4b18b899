package auth

import (
	"context"

	domain "notes-service/internal/domain/user"
)

// Usecase defines the interface for authentication business logic.
type Usecase interface {
	Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, in LoginRequest) (*AuthResponse, error)
	GetProfile(ctx context.Context, in ProfileRequest) (*ProfileResponse, error)
}

// Repository defines the interface for user data access operations.
// Lookups return (nil, nil) when no user matches; error semantics are
// decided by the caller.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
