package user

import "time"

// User represents a registered account. The password is held only as a
// bcrypt hash; the plaintext never exists past signup/login handling.
type User struct {
	ID           int64     // unique identifier
	Name         string    // display name
	Email        string    // unique email address, case-sensitive as stored
	PasswordHash string    // bcrypt hash of the password, never serialized to clients
	CreatedAt    time.Time // account creation instant
}
