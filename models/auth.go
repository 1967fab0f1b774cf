package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	// Email is the login e-mail address of the new account.
	Email string `json:"email" client:"email"`

	// Password is the plaintext password; it is sent over TLS only and never
	// stored by the client.
	Password string `json:"password" client:"password"`

	// FirstName is the given name of the new user.
	FirstName string `json:"first_name" client:"firstName"`

	// LastName is the family name of the new user.
	LastName string `json:"last_name" client:"lastName"`

	// PasswordConfirmation repeats Password when the backend requires it.
	PasswordConfirmation string `json:"password_confirmation,omitempty" client:"confirmPassword"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	// Email is the login e-mail address.
	Email string `json:"email" client:"email"`

	// Password is the plaintext password.
	Password string `json:"password" client:"password"`
}

// AuthResponse is the body returned by register and login.
type AuthResponse struct {
	// Token is the bearer access token.
	Token string `json:"token"`

	// UserID identifies the authenticated user.
	UserID ID `json:"user_id"`

	// User is an optional embedded profile. It is used as a fallback cache
	// value when the follow-up profile fetch fails.
	User *UserProfile `json:"user,omitempty"`
}

// Credential converts the response into the credential kept by the token
// store.
func (r AuthResponse) Credential() Credential {
	return Credential{AccessToken: r.Token, UserID: r.UserID}
}

// SessionState is the result of restoring a session at process start.
type SessionState struct {
	// IsAuthenticated reports whether a usable credential is present.
	IsAuthenticated bool

	// User is the cached or freshly fetched profile. It is nil when the
	// session is not authenticated.
	User *UserProfile
}
