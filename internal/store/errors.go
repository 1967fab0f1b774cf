package store

import "errors"

// Sentinel errors returned by the key-value stores and the token store.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] when nothing is
	// stored under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidCredential is returned when a credential without an access
	// token or a user id is about to be persisted.
	ErrInvalidCredential = errors.New("credential must have access token and user id")

	// ErrSealedValueCorrupt is returned when a sealed value is truncated or
	// fails authentication, e.g. after the seal key changed.
	ErrSealedValueCorrupt = errors.New("sealed value is corrupt or was sealed with another key")

	// ErrEmptySealKey is returned when a sealed store is requested without a
	// secret.
	ErrEmptySealKey = errors.New("seal key is empty")
)

// Low-level database operation errors, wrapped by the SQLite store.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL statement
	// fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
