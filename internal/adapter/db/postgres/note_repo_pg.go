package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"notes-service/internal/domain/note"
)

// NoteRepoPG implements the note.Repository interface using PostgreSQL and GORM.
type NoteRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewNoteRepoPG creates a new instance of NoteRepoPG.
func NewNoteRepoPG(db *gorm.DB, log *zap.Logger) *NoteRepoPG {
	return &NoteRepoPG{db: db, log: log}
}

// NoteSchema represents the database schema for the notes table.
type NoteSchema struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	OwnerID   int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the NoteSchema model.
func (NoteSchema) TableName() string {
	return "notes"
}

func (m *NoteSchema) toDomain() *note.Note {
	return &note.Note{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Create inserts a new note and fills in the generated id and timestamps on n.
func (r *NoteRepoPG) Create(ctx context.Context, n *note.Note) error {
	if n == nil {
		return errors.New("note cannot be nil")
	}

	model := NoteSchema{
		Title:   n.Title,
		Content: n.Content,
		OwnerID: n.OwnerID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create note in db", zap.Error(err), zap.Int64("owner_id", n.OwnerID))
		return fmt.Errorf("failed to create note: %w", err)
	}

	n.ID = model.ID
	n.CreatedAt = model.CreatedAt
	n.UpdatedAt = model.UpdatedAt

	r.log.Info("note created in db", zap.Int64("id", model.ID), zap.Int64("owner_id", model.OwnerID))
	return nil
}

// GetByID retrieves a note by its unique ID regardless of owner. Returns
// (nil, nil) when no note exists; the ownership check happens upstream.
func (r *NoteRepoPG) GetByID(ctx context.Context, id int64) (*note.Note, error) {
	var model NoteSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("note not found", zap.Int64("id", id))
			return nil, nil
		}
		r.log.Error("failed to get note from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return model.toDomain(), nil
}

// Update persists the note's title and content and refreshes UpdatedAt on n.
// Concurrent updates to the same note are last-write-wins.
func (r *NoteRepoPG) Update(ctx context.Context, n *note.Note) error {
	if n == nil {
		return errors.New("note cannot be nil")
	}

	model := NoteSchema{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		OwnerID:   n.OwnerID,
		CreatedAt: n.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		r.log.Error("failed to update note in db", zap.Error(err), zap.Int64("id", n.ID))
		return fmt.Errorf("failed to update note: %w", err)
	}

	n.UpdatedAt = model.UpdatedAt

	r.log.Info("note updated in db", zap.Int64("id", model.ID))
	return nil
}

// Delete removes a note permanently.
func (r *NoteRepoPG) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&NoteSchema{}, id).Error; err != nil {
		r.log.Error("failed to delete note in db", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	r.log.Info("note deleted in db", zap.Int64("id", id))
	return nil
}

// ListByOwner retrieves all notes owned by ownerID, newest-created first.
// The id tiebreak keeps the order stable for notes created within the same
// timestamp granularity.
func (r *NoteRepoPG) ListByOwner(ctx context.Context, ownerID int64) ([]note.Note, error) {
	var models []NoteSchema
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&models).Error; err != nil {
		r.log.Error("failed to list notes from db", zap.Error(err), zap.Int64("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]note.Note, len(models))
	for i, model := range models {
		notes[i] = *model.toDomain()
	}

	return notes, nil
}
