// Package service holds the client's domain operations: the auth session
// manager and the synchronized stores of notebooks and sharing relationships.
//
// Every error returned by this package is an [*apierror.Error].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/syncstore"
	"github.com/MKhiriev/go-pet-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService manages the authenticated session of the single local user.
type SessionService interface {
	// Register creates an account, stores the issued credential and loads the
	// profile. A failed profile fetch does not fail the call: the session
	// exists as soon as the credential is stored.
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserProfile, error)

	// Login exchanges email and password for a credential, stores it and
	// loads the profile with the same failure policy as Register.
	Login(ctx context.Context, req models.LoginRequest) (*models.UserProfile, error)

	// Logout clears the local session even when the remote call fails, then
	// runs the hooks registered with OnLogout. It never returns an error.
	Logout(ctx context.Context) error

	// RefreshProfile fetches the current user's profile and caches it.
	RefreshProfile(ctx context.Context) (*models.UserProfile, error)

	// IsAuthenticated reports whether a credential is stored.
	IsAuthenticated(ctx context.Context) bool

	// Initialize recovers the session persisted by a previous run.
	Initialize(ctx context.Context) models.SessionState

	// CurrentUser returns the cached profile or nil.
	CurrentUser(ctx context.Context) *models.UserProfile

	// OnLogout registers fn to run after every logout.
	OnLogout(fn func())
}

// NotebookService is the synchronized store of pet notebooks, keyed by pet
// id.
type NotebookService interface {
	FetchNotebook(ctx context.Context, petID models.ID) (models.PetNotebook, error)
	CreateEntry(ctx context.Context, petID models.ID, in models.EntryInput) (models.NotebookEntry, error)
	UpdateEntry(ctx context.Context, petID, entryID models.ID, in models.EntryInput) (models.NotebookEntry, error)
	DeleteEntry(ctx context.Context, petID, entryID models.ID) error

	// Notebook returns the cached notebook of petID with its loading state.
	Notebook(petID models.ID) (syncstore.Entity[models.PetNotebook], bool)

	// EntriesByType returns the cached entries of petID of type t, newest
	// first.
	EntriesByType(petID models.ID, t models.EntryType) []models.NotebookEntry

	Flags() syncstore.Flags
	LastError() *apierror.Error
	Reset()
}

// SharingService is the synchronized store of co-owner relationships and
// notebook shares, both keyed by relationship id.
type SharingService interface {
	FetchCoOwners(ctx context.Context, petID models.ID) ([]models.CoOwnerRelationship, error)
	FetchInvitations(ctx context.Context) ([]models.CoOwnerRelationship, error)
	InviteCoOwner(ctx context.Context, petID models.ID, in models.InviteInput) (models.CoOwnerRelationship, error)
	AcceptInvitation(ctx context.Context, id models.ID) (models.CoOwnerRelationship, error)
	RejectInvitation(ctx context.Context, id models.ID) error
	RevokeCoOwner(ctx context.Context, id models.ID) error

	FetchNotebookShares(ctx context.Context, petID models.ID) ([]models.NotebookShare, error)
	ShareNotebook(ctx context.Context, petID models.ID, in models.ShareInput) (models.NotebookShare, error)
	RevokeNotebookShare(ctx context.Context, id models.ID) error

	// ActiveCoOwners returns the pending and accepted co-owners of petID.
	ActiveCoOwners(petID models.ID) []models.CoOwnerRelationship

	// PendingInvitations returns the invitations still awaiting an answer.
	PendingInvitations() []models.CoOwnerRelationship

	// ActiveNotebookShares returns the unexpired pending and accepted shares
	// of petID's notebook.
	ActiveNotebookShares(petID models.ID) []models.NotebookShare

	CoOwnerFlags() syncstore.Flags
	ShareFlags() syncstore.Flags
	LastError() *apierror.Error
	Reset()
}

// ProfileRefreshJob periodically refreshes the cached profile while a session
// exists.
type ProfileRefreshJob interface {
	// Start launches the background goroutine, stopping a running one first.
	// A non-positive interval defaults to five minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and waits for it.
	Stop()
}
