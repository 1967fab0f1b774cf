// Package store provides the client-side durable state: a key-value store
// (SQLite, in-memory, or sealed at rest) and the [TokenStore] built on top of
// it, which is the single source of truth for "is a user logged in".
package store

import (
	"context"

	"github.com/MKhiriev/go-pet-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Keys under which the session is persisted. Both are removed together on
// logout.
const (
	CredentialKey = "auth_tokens"
	ProfileKey    = "auth_user"
)

// KeyValueStore is a durable byte-value store. Every method is a single
// atomic storage operation.
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes every given key in one operation. Missing keys are not
	// an error.
	Delete(ctx context.Context, keys ...string) error
}

// TokenStore persists the credential and the cached profile.
//
// Read failures of any kind (missing key, storage error, corrupt value) are
// logged and reported as absence: a broken store degrades to the logged-out
// state instead of surfacing an API error.
type TokenStore interface {
	// Credential returns the stored credential or nil.
	Credential(ctx context.Context) *models.Credential

	// SetCredential persists c. It rejects a credential missing either half.
	SetCredential(ctx context.Context, c models.Credential) error

	// Profile returns the cached profile or nil.
	Profile(ctx context.Context) *models.UserProfile

	// SetProfile caches p.
	SetProfile(ctx context.Context, p models.UserProfile) error

	// Clear removes the credential and the profile in one storage call, then
	// runs the hooks registered with OnClear. Hooks run even when the storage
	// call fails: the session is over either way.
	Clear(ctx context.Context) error

	// OnClear registers fn to run after every Clear, including the one the
	// gateway issues when the backend rejects the credential.
	OnClear(fn func())
}
