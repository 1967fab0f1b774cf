// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the authenticated gateway: the only component that
// talks to the pet-tracker backend.
//
// Every call attaches the stored credential, and every failure leaving the
// package is an [*apierror.Error]. A 401 response clears the local session
// before the error is returned, so no caller has to handle token expiry.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pet-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway performs authenticated JSON requests against the backend.
//
// path is relative to the configured base URL. body is encoded in the
// configured wire style; result, when non-nil, receives the decoded JSON
// response. Errors are always [*apierror.Error].
type Gateway interface {
	Get(ctx context.Context, path string, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Put(ctx context.Context, path string, body, result any) error
	Delete(ctx context.Context, path string, result any) error
}

// CredentialStore is the part of the token store the gateway relies on.
type CredentialStore interface {
	// Credential returns the current credential or nil.
	Credential(ctx context.Context) *models.Credential

	// Clear ends the local session.
	Clear(ctx context.Context) error
}
