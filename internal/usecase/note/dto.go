package note

import "time"

// ListNotesRequest represents the payload for listing the caller's notes.
type ListNotesRequest struct {
	OwnerID int64
}

// ListNotesResponse holds the caller's notes, newest-created first.
type ListNotesResponse struct {
	Notes []Note
}

// CreateNoteRequest represents the payload for creating a note.
type CreateNoteRequest struct {
	OwnerID int64
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

// GetNoteRequest represents the payload for fetching a single note.
type GetNoteRequest struct {
	OwnerID int64
	NoteID  int64
}

// UpdateNoteRequest represents a partial update. Nil or empty fields are
// left unchanged, matching the service's long-standing update semantics.
type UpdateNoteRequest struct {
	OwnerID int64
	NoteID  int64
	Title   *string
	Content *string
}

// DeleteNoteRequest represents the payload for deleting a note.
type DeleteNoteRequest struct {
	OwnerID int64
	NoteID  int64
}

// DeleteNoteResponse confirms a permanent removal.
type DeleteNoteResponse struct {
	ID int64
}

// Note is the note DTO returned to the transport layer.
type Note struct {
	ID        int64
	Title     string
	Content   string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
