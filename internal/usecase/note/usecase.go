package note

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "notes-service/internal/domain/note"
	pkgerrors "notes-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// usecase implements the note business logic.
type usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates the note Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log, validate: validator.New()}
}

func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return pkgerrors.NewValidationError("", err.Error())
}

func toDTO(n *domain.Note) *Note {
	return &Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		OwnerID:   n.OwnerID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// authorize loads the note and enforces the access policy. Existence is
// checked BEFORE ownership: probing someone else's real note id yields an
// authorization failure while a nonexistent id yields not-found. That
// ordering leaks existence across users and is an accepted contract.
func (uc *usecase) authorize(ctx context.Context, ownerID, noteID int64) (*domain.Note, error) {
	n, err := uc.repo.GetByID(ctx, noteID)
	if err != nil {
		uc.log.Error("failed to load note", zap.Int64("note_id", noteID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to load note", err)
	}
	if n == nil {
		uc.log.Debug("note not found", zap.Int64("note_id", noteID))
		return nil, pkgerrors.NewNotFoundError("note", "note not found")
	}
	if n.OwnerID != ownerID {
		uc.log.Warn("note access denied",
			zap.Int64("note_id", noteID),
			zap.Int64("owner_id", n.OwnerID),
			zap.Int64("caller_id", ownerID),
		)
		return nil, pkgerrors.NewAuthorizationError("note", "not authorized to access this note")
	}
	return n, nil
}

// List returns all notes owned by the caller, newest-created first.
func (uc *usecase) List(ctx context.Context, in ListNotesRequest) (*ListNotesResponse, error) {
	notes, err := uc.repo.ListByOwner(ctx, in.OwnerID)
	if err != nil {
		uc.log.Error("failed to list notes", zap.Int64("owner_id", in.OwnerID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to list notes", err)
	}

	out := make([]Note, len(notes))
	for i := range notes {
		out[i] = *toDTO(&notes[i])
	}

	return &ListNotesResponse{Notes: out}, nil
}

// Create stores a new note owned by the caller. Both timestamps are set to
// the creation instant by the persistence layer.
func (uc *usecase) Create(ctx context.Context, in CreateNoteRequest) (*Note, error) {
	uc.log.Info("creating note", zap.Int64("owner_id", in.OwnerID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("create note validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	n := &domain.Note{
		Title:   in.Title,
		Content: in.Content,
		OwnerID: in.OwnerID,
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		uc.log.Error("failed to create note", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to create note", err)
	}

	return toDTO(n), nil
}

// GetByID returns the note unchanged after the existence and ownership
// checks pass.
func (uc *usecase) GetByID(ctx context.Context, in GetNoteRequest) (*Note, error) {
	n, err := uc.authorize(ctx, in.OwnerID, in.NoteID)
	if err != nil {
		return nil, err
	}
	return toDTO(n), nil
}

// Update applies a partial update to the caller's note. Only supplied,
// non-empty fields change; an explicit empty string leaves the field as-is.
// Concurrent updates are last-write-wins with no conflict detection.
func (uc *usecase) Update(ctx context.Context, in UpdateNoteRequest) (*Note, error) {
	n, err := uc.authorize(ctx, in.OwnerID, in.NoteID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && *in.Title != "" {
		n.Title = *in.Title
	}
	if in.Content != nil && *in.Content != "" {
		n.Content = *in.Content
	}

	if err := uc.repo.Update(ctx, n); err != nil {
		uc.log.Error("failed to update note", zap.Int64("note_id", in.NoteID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to update note", err)
	}

	uc.log.Info("note updated", zap.Int64("note_id", n.ID), zap.Int64("owner_id", in.OwnerID))
	return toDTO(n), nil
}

// Delete removes the caller's note permanently. There is no soft delete and
// no recovery path.
func (uc *usecase) Delete(ctx context.Context, in DeleteNoteRequest) (*DeleteNoteResponse, error) {
	if _, err := uc.authorize(ctx, in.OwnerID, in.NoteID); err != nil {
		return nil, err
	}

	if err := uc.repo.Delete(ctx, in.NoteID); err != nil {
		uc.log.Error("failed to delete note", zap.Int64("note_id", in.NoteID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to delete note", err)
	}

	uc.log.Info("note deleted", zap.Int64("note_id", in.NoteID), zap.Int64("owner_id", in.OwnerID))
	return &DeleteNoteResponse{ID: in.NoteID}, nil
}
