package auth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "notes-service/internal/domain/user"
	pkgerrors "notes-service/pkg/errors"
	"notes-service/pkg/security"
	"notes-service/pkg/token"

	"github.com/go-playground/validator/v10"
)

// usecase implements the authentication business logic.
type usecase struct {
	repo     Repository
	tokens   *token.Manager
	log      *zap.Logger
	validate *validator.Validate
}

// New creates the auth Usecase with the provided repository, token manager,
// and logger.
func New(r Repository, tm *token.Manager, log *zap.Logger) Usecase {
	return &usecase{repo: r, tokens: tm, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a typed
// ValidationError with a human-readable message.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return pkgerrors.NewValidationError("", err.Error())
}

// Register creates a new account after validating the input and checking
// email uniqueness, then mints a bearer token for the new identity.
func (uc *usecase) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	uc.log.Info("registering user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("register validation failed", zap.Error(formatValidationError(err)))
		return nil, formatValidationError(err)
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		uc.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, pkgerrors.NewConflictError("user", "user already exists")
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		uc.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to process credentials", err)
	}

	id, err := uc.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to create user", err)
	}

	tok, err := uc.tokens.Generate(id)
	if err != nil {
		uc.log.Error("failed to mint token", zap.Int64("id", id), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to mint token", err)
	}

	return &AuthResponse{
		ID:    id,
		Name:  in.Name,
		Email: in.Email,
		Token: tok,
	}, nil
}

// Login verifies the credentials and mints a bearer token. Unknown emails
// and wrong passwords return the same error so accounts cannot be
// enumerated.
func (uc *usecase) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	uc.log.Info("login attempt", zap.String("email", in.Email))

	u, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to look up user", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to look up user", err)
	}

	if u == nil || !security.CheckPassword(in.Password, u.PasswordHash) {
		uc.log.Warn("login rejected", zap.String("email", in.Email))
		return nil, pkgerrors.NewAuthenticationError("invalid email or password")
	}

	tok, err := uc.tokens.Generate(u.ID)
	if err != nil {
		uc.log.Error("failed to mint token", zap.Int64("id", u.ID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to mint token", err)
	}

	return &AuthResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Token: tok,
	}, nil
}

// GetProfile returns the identity view for the given user id, excluding the
// password hash.
func (uc *usecase) GetProfile(ctx context.Context, in ProfileRequest) (*ProfileResponse, error) {
	u, err := uc.repo.GetByID(ctx, in.UserID)
	if err != nil {
		uc.log.Error("failed to get profile", zap.Int64("id", in.UserID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to get profile", err)
	}
	if u == nil {
		uc.log.Warn("profile not found", zap.Int64("id", in.UserID))
		return nil, pkgerrors.NewNotFoundError("user", "user not found")
	}

	return &ProfileResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}
