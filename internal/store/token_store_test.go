// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/internal/mock"
	"github.com/MKhiriev/go-pet-tracker/models"
)

func newMemoryTokenStore() (TokenStore, KeyValueStore) {
	kv := NewMemoryKeyValueStore()
	return NewTokenStore(kv, logger.Nop()), kv
}

// ── Credential ──────────────────────────────────────────────────────────────

func TestTokenStore_CredentialRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts, _ := newMemoryTokenStore()

	assert.Nil(t, ts.Credential(ctx))

	require.NoError(t, ts.SetCredential(ctx, models.Credential{AccessToken: "t1", UserID: "u1"}))

	got := ts.Credential(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "t1", got.AccessToken)
	assert.Equal(t, models.ID("u1"), got.UserID)
}

func TestTokenStore_SetCredentialRejectsIncomplete(t *testing.T) {
	ctx := context.Background()
	ts, _ := newMemoryTokenStore()

	assert.ErrorIs(t, ts.SetCredential(ctx, models.Credential{AccessToken: "t1"}), ErrInvalidCredential)
	assert.ErrorIs(t, ts.SetCredential(ctx, models.Credential{UserID: "u1"}), ErrInvalidCredential)
	assert.Nil(t, ts.Credential(ctx))
}

func TestTokenStore_CorruptValuesReadAsAbsent(t *testing.T) {
	ctx := context.Background()
	ts, kv := newMemoryTokenStore()

	require.NoError(t, kv.Set(ctx, CredentialKey, []byte("{not json")))
	require.NoError(t, kv.Set(ctx, ProfileKey, []byte("[]")))

	assert.Nil(t, ts.Credential(ctx))
	assert.Nil(t, ts.Profile(ctx))
}

func TestTokenStore_IncompleteStoredCredentialReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	ts, kv := newMemoryTokenStore()

	require.NoError(t, kv.Set(ctx, CredentialKey, []byte(`{"access_token":"t1","user_id":""}`)))

	assert.Nil(t, ts.Credential(ctx))
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestTokenStore_ProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts, _ := newMemoryTokenStore()

	require.NoError(t, ts.SetProfile(ctx, models.UserProfile{ID: "u1", Email: "a@b.c", FirstName: "Ann"}))

	got := ts.Profile(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "a@b.c", got.Email)
	assert.Equal(t, "Ann", got.FirstName)
}

// ── Clear ───────────────────────────────────────────────────────────────────

func TestTokenStore_ClearRemovesBoth(t *testing.T) {
	ctx := context.Background()
	ts, _ := newMemoryTokenStore()

	require.NoError(t, ts.SetCredential(ctx, models.Credential{AccessToken: "t1", UserID: "u1"}))
	require.NoError(t, ts.SetProfile(ctx, models.UserProfile{ID: "u1"}))

	require.NoError(t, ts.Clear(ctx))
	assert.Nil(t, ts.Credential(ctx))
	assert.Nil(t, ts.Profile(ctx))

	// clearing an empty store is fine
	require.NoError(t, ts.Clear(ctx))
}

func TestTokenStore_ClearRunsHooks(t *testing.T) {
	ctx := context.Background()
	ts, _ := newMemoryTokenStore()

	var calls []string
	ts.OnClear(func() {
		// the session is already gone when hooks run
		assert.Nil(t, ts.Credential(ctx))
		calls = append(calls, "first")
	})
	ts.OnClear(nil)
	ts.OnClear(func() { calls = append(calls, "second") })

	require.NoError(t, ts.SetCredential(ctx, models.Credential{AccessToken: "t1", UserID: "u1"}))
	require.NoError(t, ts.Clear(ctx))
	assert.Equal(t, []string{"first", "second"}, calls)

	require.NoError(t, ts.Clear(ctx))
	assert.Len(t, calls, 4)
}

func TestTokenStore_ClearRunsHooksWhenStorageFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	ts := NewTokenStore(kv, logger.Nop())

	storageErr := errors.New("database is locked")
	kv.EXPECT().Delete(gomock.Any(), CredentialKey, ProfileKey).Return(storageErr)

	cleared := 0
	ts.OnClear(func() { cleared++ })

	assert.ErrorIs(t, ts.Clear(context.Background()), storageErr)
	assert.Equal(t, 1, cleared)
}

// ── Storage failures ────────────────────────────────────────────────────────

func TestTokenStore_StorageFailures(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	ts := NewTokenStore(kv, logger.Nop())

	storageErr := errors.New("disk I/O error")

	kv.EXPECT().Get(gomock.Any(), CredentialKey).Return(nil, storageErr)
	kv.EXPECT().Get(gomock.Any(), ProfileKey).Return(nil, storageErr)
	kv.EXPECT().Set(gomock.Any(), CredentialKey, gomock.Any()).Return(storageErr)
	kv.EXPECT().Delete(gomock.Any(), CredentialKey, ProfileKey).Return(storageErr)

	assert.Nil(t, ts.Credential(ctx))
	assert.Nil(t, ts.Profile(ctx))
	assert.ErrorIs(t, ts.SetCredential(ctx, models.Credential{AccessToken: "t", UserID: "u"}), storageErr)
	assert.ErrorIs(t, ts.Clear(ctx), storageErr)
}

func TestInMemoryStorages(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStorages(logger.Nop())

	require.NoError(t, s.Tokens.SetCredential(ctx, models.Credential{AccessToken: "t", UserID: "u"}))
	raw, err := s.KV.Get(ctx, CredentialKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"t","user_id":"u"}`, string(raw))
	assert.NoError(t, s.Close())
}
