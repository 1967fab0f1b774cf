// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// ShareStatus is the lifecycle state of a permission grant.
//
//	pending → accepted | rejected | revoked
//	accepted → revoked
type ShareStatus string

const (
	// StatusPending is a grant sent but not yet answered by the grantee.
	StatusPending ShareStatus = "pending"

	// StatusAccepted is a grant the grantee accepted.
	StatusAccepted ShareStatus = "accepted"

	// StatusRejected is a grant the grantee declined.
	StatusRejected ShareStatus = "rejected"

	// StatusRevoked is a grant withdrawn by the owner.
	StatusRevoked ShareStatus = "revoked"
)

var shareTransitions = map[ShareStatus][]ShareStatus{
	StatusPending:  {StatusAccepted, StatusRejected, StatusRevoked},
	StatusAccepted: {StatusRevoked},
}

// Active reports whether a grant with this status belongs in active list
// views.
func (s ShareStatus) Active() bool {
	return s == StatusPending || s == StatusAccepted
}

// CanTransition reports whether s may move to next.
func (s ShareStatus) CanTransition(next ShareStatus) bool {
	return slices.Contains(shareTransitions[s], next)
}

// Permission is a capability granted to a co-owner or a notebook reader.
type Permission string

const (
	PermissionView   Permission = "view"
	PermissionEdit   Permission = "edit"
	PermissionManage Permission = "manage"
)

// CoOwnerRelationship is a directed grant from a pet owner to another user
// over one pet.
type CoOwnerRelationship struct {
	// ID is the relationship identifier and the cache key.
	ID ID `json:"id"`

	// PetID is the shared pet.
	PetID ID `json:"pet_id"`

	// PetName is a denormalized pet name for invitation lists.
	PetName string `json:"pet_name,omitempty"`

	// OwnerID is the granting user.
	OwnerID ID `json:"owner_id"`

	// CoOwnerID is the grantee; empty until the invitation is accepted by a
	// user that did not exist at invitation time.
	CoOwnerID ID `json:"co_owner_id,omitempty"`

	// CoOwnerEmail is the address the invitation was sent to.
	CoOwnerEmail string `json:"co_owner_email"`

	// Permissions lists what the co-owner may do.
	Permissions []Permission `json:"permissions,omitempty"`

	// Status is the lifecycle state.
	Status ShareStatus `json:"status"`

	// CreatedAt is when the invitation was issued.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the status last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy.
func (r CoOwnerRelationship) Clone() CoOwnerRelationship {
	r.Permissions = slices.Clone(r.Permissions)
	return r
}

// NotebookShare is a directed read or edit grant over one pet notebook.
type NotebookShare struct {
	// ID is the share identifier and the cache key.
	ID ID `json:"id"`

	// PetID identifies the shared notebook.
	PetID ID `json:"pet_id"`

	// OwnerID is the granting user.
	OwnerID ID `json:"owner_id"`

	// SharedWithID is the grantee, if already known.
	SharedWithID ID `json:"shared_with_id,omitempty"`

	// SharedWithEmail is the grantee address.
	SharedWithEmail string `json:"shared_with_email"`

	// Permission is the granted capability.
	Permission Permission `json:"permission"`

	// Status is the lifecycle state.
	Status ShareStatus `json:"status"`

	// ExpiresAt optionally limits the share lifetime.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// CreatedAt is when the share was issued.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the status last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no memory with s.
func (s NotebookShare) Clone() NotebookShare {
	if s.ExpiresAt != nil {
		exp := *s.ExpiresAt
		s.ExpiresAt = &exp
	}
	return s
}

// Expired reports whether the share has an expiry at or before now.
func (s NotebookShare) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !s.ExpiresAt.After(now)
}

// InviteInput is the payload of a co-owner invitation.
type InviteInput struct {
	// Email is the address of the invited user.
	Email string `json:"email" client:"email"`

	// Permissions lists the requested capabilities.
	Permissions []Permission `json:"permissions,omitempty" client:"permissions"`

	// Message is an optional note shown to the invitee.
	Message string `json:"message,omitempty" client:"message"`
}

// ShareInput is the payload of a notebook share.
type ShareInput struct {
	// Email is the address of the grantee.
	Email string `json:"email" client:"email"`

	// Permission is the granted capability.
	Permission Permission `json:"permission" client:"permission"`

	// ExpiresAt optionally limits the share lifetime.
	ExpiresAt *time.Time `json:"expires_at,omitempty" client:"expiresAt"`
}
