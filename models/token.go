package models

import "strings"

// Credential is the access token and user id pair proving an authenticated
// session.
//
// It is owned by the token store and persisted under a single key. Outside
// of the store it only ever appears as an ephemeral Authorization header value
// attached to an outgoing request.
type Credential struct {
	// AccessToken is the bearer token issued by the backend on register or
	// login.
	AccessToken string `json:"access_token"`

	// UserID identifies the user the token was issued for.
	UserID ID `json:"user_id"`
}

// Valid reports whether both halves of the credential are present. A
// credential missing either half is treated as no credential at all.
func (c Credential) Valid() bool {
	return strings.TrimSpace(c.AccessToken) != "" && !c.UserID.IsZero()
}
