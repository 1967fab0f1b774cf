// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/models"
)

type tokenStore struct {
	kv     KeyValueStore
	logger *logger.Logger

	mu      sync.Mutex
	onClear []func()
}

// NewTokenStore returns a [TokenStore] persisting into kv.
func NewTokenStore(kv KeyValueStore, log *logger.Logger) TokenStore {
	return &tokenStore{kv: kv, logger: log}
}

func (t *tokenStore) Credential(ctx context.Context) *models.Credential {
	var c models.Credential
	if !t.read(ctx, CredentialKey, &c) {
		return nil
	}
	if !c.Valid() {
		t.logger.Warn().Str("func", "tokenStore.Credential").Msg("stored credential is incomplete, ignoring it")
		return nil
	}
	return &c
}

func (t *tokenStore) SetCredential(ctx context.Context, c models.Credential) error {
	if !c.Valid() {
		return ErrInvalidCredential
	}
	return t.write(ctx, CredentialKey, c)
}

func (t *tokenStore) Profile(ctx context.Context) *models.UserProfile {
	var p models.UserProfile
	if !t.read(ctx, ProfileKey, &p) {
		return nil
	}
	return &p
}

func (t *tokenStore) SetProfile(ctx context.Context, p models.UserProfile) error {
	return t.write(ctx, ProfileKey, p)
}

func (t *tokenStore) Clear(ctx context.Context) error {
	defer t.notifyClear()

	if err := t.kv.Delete(ctx, CredentialKey, ProfileKey); err != nil {
		t.logger.Err(err).Str("func", "tokenStore.Clear").Msg("failed to clear session")
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (t *tokenStore) OnClear(fn func()) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	t.onClear = append(t.onClear, fn)
	t.mu.Unlock()
}

// notifyClear runs the hooks outside the lock so a hook may touch the store.
func (t *tokenStore) notifyClear() {
	t.mu.Lock()
	hooks := append([]func(){}, t.onClear...)
	t.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// read decodes the value under key into dst. Any failure is logged and
// reported as absence.
func (t *tokenStore) read(ctx context.Context, key string, dst any) bool {
	raw, err := t.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false
	}
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "tokenStore.read").Str("key", key).Msg("failed to read session value")
		return false
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		t.logger.Warn().Err(err).Str("func", "tokenStore.read").Str("key", key).Msg("stored session value is corrupt")
		return false
	}
	return true
}

func (t *tokenStore) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err = t.kv.Set(ctx, key, raw); err != nil {
		t.logger.Err(err).Str("func", "tokenStore.write").Str("key", key).Msg("failed to write session value")
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
