package models

import "time"

// Principal represents an authenticated account identity.
// Two Principal values with the same UserID refer to the same account
// regardless of which snapshot of the mutable fields they carry.
type Principal struct {
	// UserID is the internal unique identifier of the account.
	// It is stable across sessions and is assigned by the server.
	UserID int64 `json:"-"`

	// Email is the unique sign-in identifier. Immutable after registration.
	Email string `json:"email"`

	// Name is the display name of the user. Mutable via profile update.
	Name string `json:"name"`

	// PhotoURL is an optional reference to the user's profile image.
	// Mutable via profile update.
	PhotoURL string `json:"photo_url"`

	// Provider records how the account authenticates: "password" for
	// accounts created with email/password, "google" for federated ones.
	Provider string `json:"provider"`

	// Password carries the plaintext credential during registration and
	// sign-in requests only. It is never persisted and never returned by
	// the server.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Principal model.
func (p Principal) TableName() string {
	return "users"
}

// SameAccount reports whether other refers to the same account as p.
func (p Principal) SameAccount(other Principal) bool {
	return p.UserID == other.UserID
}

// ProfileUpdate carries a partial principal for profile mutation.
// Only non-nil fields are merged into the stored record.
type ProfileUpdate struct {
	// Name replaces the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// PhotoURL replaces the profile image reference when non-nil.
	PhotoURL *string `json:"photo_url,omitempty"`
}
