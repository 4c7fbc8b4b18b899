package auth

// RegisterRequest represents the payload for creating a new account.
type RegisterRequest struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
}

// LoginRequest represents the payload for authenticating an account.
// No field-level validation here: any mismatch, including empty input,
// produces the same uniform authentication failure.
type LoginRequest struct {
	Email    string
	Password string
}

// AuthResponse is returned by both Register and Login: the identity plus a
// freshly minted bearer token.
type AuthResponse struct {
	ID    int64
	Name  string
	Email string
	Token string
}

// ProfileRequest represents the payload for retrieving the caller's profile.
type ProfileRequest struct {
	UserID int64
}

// ProfileResponse is the caller's identity view, excluding the secret hash.
type ProfileResponse struct {
	ID    int64
	Name  string
	Email string
}
