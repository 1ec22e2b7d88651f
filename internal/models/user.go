package models

import "time"

// Authentication providers a user account can come from.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                             // Primary key
	Email        string    `json:"email" db:"email"`                       // Unique email
	Username     *string   `json:"username,omitempty" db:"username"`       // Optional display name
	PasswordHash *string   `json:"-" db:"password_hash"`                   // Bcrypt hash, local provider only
	Provider     string    `json:"provider" db:"provider"`                 // local, google or github
	ProviderID   *string   `json:"provider_id,omitempty" db:"provider_id"` // External account id for OAuth providers
	CreatedAt    time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`             // Last update timestamp
}

// UserPatch holds the user fields that can be changed after registration.
// Nil fields are left untouched.
type UserPatch struct {
	Email        *string
	Username     *string
	PasswordHash *string
}

// UserPayload is the identity embedded into bearer tokens.
type UserPayload struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username,omitempty"`
	Provider   string `json:"provider"`
	ProviderID string `json:"provider_id,omitempty"`
}

// Payload builds the token identity of the user.
func (u *User) Payload() UserPayload {
	p := UserPayload{
		ID:       formatID(u.ID),
		Email:    u.Email,
		Provider: u.Provider,
	}
	if u.Username != nil {
		p.Username = *u.Username
	}
	if u.ProviderID != nil {
		p.ProviderID = *u.ProviderID
	}
	return p
}
