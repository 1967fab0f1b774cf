package models

import (
	"strings"
	"time"
)

// UserProfile is the cached, denormalized view of the authenticated user
// returned by GET /api/users/me.
//
// It back-references the credential through ID but is never authoritative for
// authentication state: a missing or stale profile does not end a session.
type UserProfile struct {
	// ID is the server-assigned user identifier.
	ID ID `json:"id" client:"id"`

	// Email is the login e-mail address of the user.
	Email string `json:"email" client:"email"`

	// FirstName is the given name of the user.
	FirstName string `json:"first_name" client:"firstName"`

	// LastName is the family name of the user.
	LastName string `json:"last_name" client:"lastName"`

	// Username is an optional public handle used on leaderboards and shares.
	Username string `json:"username,omitempty" client:"username"`

	// AvatarURL points to the profile picture, if any.
	AvatarURL string `json:"avatar_url,omitempty" client:"avatarUrl"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at" client:"createdAt"`
}

// DisplayName returns "First Last" when names are known and falls back to
// the username and then the e-mail address.
func (u UserProfile) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	switch {
	case name != "":
		return name
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}
