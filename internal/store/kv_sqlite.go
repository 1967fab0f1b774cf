package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pet-tracker/internal/logger"
)

const kvTable = "kv_store"

type sqliteKeyValueStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] persisted in the kv_store
// table of db. The schema must already be migrated.
func NewSQLiteKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Get").Str("key", key).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Get").Str("key", key).Msg("failed to read value")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertValueQuery(key, value, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Set").Str("key", key).Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Set").Str("key", key).Msg("failed to write value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValuesQuery(keys)
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Delete").Strs("keys", keys).Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Delete").Strs("keys", keys).Msg("failed to delete values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func buildSelectValueQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

func buildUpsertValueQuery(key string, value []byte, at time.Time) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns("name", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteValuesQuery(keys []string) (string, []any, error) {
	return sq.Delete(kvTable).
		Where(sq.Eq{"name": keys}).
		ToSql()
}
