package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-tracker/internal/config"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
)

// ClientStorages groups the client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// KV is the durable key-value store, sealed when a seal key is
	// configured.
	KV KeyValueStore

	// Tokens persists the credential and the cached profile.
	Tokens TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wraps the key-value store with sealing when cfg.SealKey is set.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	var kv KeyValueStore = NewSQLiteKeyValueStore(db, log)
	if cfg.SealKey != "" {
		if kv, err = NewSealedKeyValueStore(kv, cfg.SealKey); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sealed storage: %w", err)
		}
	}

	return &ClientStorages{
		KV:     kv,
		Tokens: NewTokenStore(kv, log),
		db:     db,
	}, nil
}

// NewInMemoryStorages returns storages that live only as long as the
// process.
func NewInMemoryStorages(log *logger.Logger) *ClientStorages {
	kv := NewMemoryKeyValueStore()
	return &ClientStorages{
		KV:     kv,
		Tokens: NewTokenStore(kv, log),
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
