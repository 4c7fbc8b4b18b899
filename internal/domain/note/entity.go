package note

import "time"

// Note represents a note record. Every note is owned by exactly one user;
// OwnerID is fixed at creation and never changes.
type Note struct {
	ID        int64     // unique identifier
	Title     string    // non-empty title
	Content   string    // non-empty body
	OwnerID   int64     // owning user's id, immutable after creation
	CreatedAt time.Time // creation instant
	UpdatedAt time.Time // last modification instant
}
