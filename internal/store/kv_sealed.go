// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealNonceSize = 24
	sealKeySize   = 32
	sealKeyInfo   = "go-pet-tracker kv seal"
)

type sealedKeyValueStore struct {
	inner KeyValueStore
	key   [sealKeySize]byte
}

// NewSealedKeyValueStore wraps inner so that every value is encrypted at rest
// with NaCl secretbox. The box key is derived from secret with HKDF-SHA256.
// Values are stored as nonce || box.
func NewSealedKeyValueStore(inner KeyValueStore, secret string) (KeyValueStore, error) {
	if secret == "" {
		return nil, ErrEmptySealKey
	}

	s := &sealedKeyValueStore{inner: inner}
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(sealKeyInfo))
	if _, err := io.ReadFull(kdf, s.key[:]); err != nil {
		return nil, fmt.Errorf("derive seal key: %w", err)
	}
	return s, nil
}

func (s *sealedKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < sealNonceSize+secretbox.Overhead {
		return nil, ErrSealedValueCorrupt
	}

	var nonce [sealNonceSize]byte
	copy(nonce[:], sealed[:sealNonceSize])

	plain, ok := secretbox.Open(nil, sealed[sealNonceSize:], &nonce, &s.key)
	if !ok {
		return nil, ErrSealedValueCorrupt
	}
	return plain, nil
}

func (s *sealedKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	var nonce [sealNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], value, &nonce, &s.key)
	return s.inner.Set(ctx, key, sealed)
}

func (s *sealedKeyValueStore) Delete(ctx context.Context, keys ...string) error {
	return s.inner.Delete(ctx, keys...)
}
