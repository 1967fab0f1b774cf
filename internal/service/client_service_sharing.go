package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-pet-tracker/internal/adapter"
	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/syncstore"
	"github.com/MKhiriev/go-pet-tracker/internal/utils"
	"github.com/MKhiriev/go-pet-tracker/models"
)

const (
	invitationsScope = "invitations"
	invitationsPath  = "/api/co-owners/invitations"
)

func petScope(petID models.ID) string {
	return "pet:" + petID.String()
}

func coOwnersPath(petID models.ID) string {
	return fmt.Sprintf("/api/pets/%s/co-owners", url.PathEscape(petID.String()))
}

func coOwnerPath(id models.ID) string {
	return "/api/co-owners/" + url.PathEscape(id.String())
}

func notebookSharesPath(petID models.ID) string {
	return notebookPath(petID) + "/shares"
}

func notebookSharePath(id models.ID) string {
	return "/api/notebook-shares/" + url.PathEscape(id.String())
}

func coOwnerKey(r models.CoOwnerRelationship) string { return r.ID.String() }

func shareKey(s models.NotebookShare) string { return s.ID.String() }

type clientSharingService struct {
	gateway  adapter.Gateway
	coOwners *syncstore.Store[models.CoOwnerRelationship]
	shares   *syncstore.Store[models.NotebookShare]
	ids      *utils.UUIDGenerator
	now      func() time.Time
}

// NewClientSharingService returns the sharing store. opts configure both
// underlying [syncstore.Store] instances.
func NewClientSharingService(gateway adapter.Gateway, opts ...syncstore.Option) SharingService {
	return &clientSharingService{
		gateway:  gateway,
		coOwners: syncstore.New("co_owners", models.CoOwnerRelationship.Clone, opts...),
		shares:   syncstore.New("notebook_shares", models.NotebookShare.Clone, opts...),
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
	}
}

// ── co-owners ────────────────────────────────────────────────────────────────

func (s *clientSharingService) FetchCoOwners(ctx context.Context, petID models.ID) ([]models.CoOwnerRelationship, error) {
	if err := validateID("petId", "Pet is required", petID); err != nil {
		return nil, err
	}

	err := s.coOwners.FetchScope(ctx, petScope(petID), func(ctx context.Context) ([]models.CoOwnerRelationship, error) {
		var list []models.CoOwnerRelationship
		err := s.gateway.Get(ctx, coOwnersPath(petID), &list)
		return list, err
	}, coOwnerKey)
	if err != nil {
		return nil, err
	}
	return s.ActiveCoOwners(petID), nil
}

func (s *clientSharingService) FetchInvitations(ctx context.Context) ([]models.CoOwnerRelationship, error) {
	err := s.coOwners.FetchScope(ctx, invitationsScope, func(ctx context.Context) ([]models.CoOwnerRelationship, error) {
		var list []models.CoOwnerRelationship
		err := s.gateway.Get(ctx, invitationsPath, &list)
		return list, err
	}, coOwnerKey)
	if err != nil {
		return nil, err
	}
	return s.PendingInvitations(), nil
}

func (s *clientSharingService) InviteCoOwner(ctx context.Context, petID models.ID, in models.InviteInput) (models.CoOwnerRelationship, error) {
	if err := validateInvite(petID, in); err != nil {
		return models.CoOwnerRelationship{}, err
	}

	now := s.now()
	tempID := models.ID(s.ids.TempID())
	pending := models.CoOwnerRelationship{
		ID:           tempID,
		PetID:        petID,
		CoOwnerEmail: in.Email,
		Permissions:  in.Permissions,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created models.CoOwnerRelationship
	err := s.coOwners.Mutate(ctx, syncstore.Mutation[models.CoOwnerRelationship]{
		Op:         syncstore.OpCreate,
		Key:        tempID.String(),
		Scope:      petScope(petID),
		Optimistic: putValue(pending.Clone()),
		Call: func(ctx context.Context) (syncstore.Change[models.CoOwnerRelationship], error) {
			if err := s.gateway.Post(ctx, coOwnersPath(petID), in, &created); err != nil {
				return nil, err
			}
			if created.ID.IsZero() {
				return nil, errNoEntityID
			}
			if created.PetID.IsZero() {
				created.PetID = petID
			}
			if created.Status == "" {
				created.Status = models.StatusPending
			}
			return putValue(created.Clone()), nil
		},
		KeyOf: coOwnerKey,
	})
	if err != nil {
		return models.CoOwnerRelationship{}, err
	}
	return created.Clone(), nil
}

func (s *clientSharingService) AcceptInvitation(ctx context.Context, id models.ID) (models.CoOwnerRelationship, error) {
	var accepted models.CoOwnerRelationship
	err := s.transitionCoOwner(ctx, id, models.StatusAccepted, syncstore.OpUpdate,
		func(ctx context.Context) (syncstore.Change[models.CoOwnerRelationship], error) {
			if err := s.gateway.Post(ctx, coOwnerPath(id)+"/accept", nil, &accepted); err != nil {
				return nil, err
			}
			if accepted.ID.IsZero() {
				return nil, nil
			}
			return putValue(accepted.Clone()), nil
		})
	if err != nil {
		return models.CoOwnerRelationship{}, err
	}

	if accepted.ID.IsZero() {
		if e, ok := s.coOwners.Get(id.String()); ok {
			accepted = e.Data
		}
	}
	return accepted, nil
}

func (s *clientSharingService) RejectInvitation(ctx context.Context, id models.ID) error {
	return s.transitionCoOwner(ctx, id, models.StatusRejected, syncstore.OpUpdate,
		func(ctx context.Context) (syncstore.Change[models.CoOwnerRelationship], error) {
			if err := s.gateway.Post(ctx, coOwnerPath(id)+"/reject", nil, nil); err != nil {
				return nil, err
			}
			return removeValue[models.CoOwnerRelationship], nil
		})
}

func (s *clientSharingService) RevokeCoOwner(ctx context.Context, id models.ID) error {
	return s.transitionCoOwner(ctx, id, models.StatusRevoked, syncstore.OpDelete,
		func(ctx context.Context) (syncstore.Change[models.CoOwnerRelationship], error) {
			if err := s.gateway.Delete(ctx, coOwnerPath(id), nil); err != nil {
				return nil, err
			}
			return removeValue[models.CoOwnerRelationship], nil
		})
}

// transitionCoOwner validates the status change against the cached
// relationship, applies it optimistically and runs call. A relationship that
// is not cached is left to the server to validate.
func (s *clientSharingService) transitionCoOwner(
	ctx context.Context,
	id models.ID,
	to models.ShareStatus,
	op syncstore.Op,
	call func(ctx context.Context) (syncstore.Change[models.CoOwnerRelationship], error),
) error {
	if err := validateID("id", "Relationship is required", id); err != nil {
		return err
	}
	if e, ok := s.coOwners.Get(id.String()); ok {
		if err := validateTransition(e.Data.Status, to); err != nil {
			return err
		}
	}

	now := s.now()
	return s.coOwners.Mutate(ctx, syncstore.Mutation[models.CoOwnerRelationship]{
		Op:  op,
		Key: id.String(),
		Optimistic: func(r models.CoOwnerRelationship, exists bool) (models.CoOwnerRelationship, syncstore.Action) {
			if !exists || !r.Status.CanTransition(to) {
				return r, syncstore.Skip
			}
			r.Status = to
			r.UpdatedAt = now
			return r, syncstore.Put
		},
		Call: call,
	})
}

func (s *clientSharingService) ActiveCoOwners(petID models.ID) []models.CoOwnerRelationship {
	return s.coOwners.List(petScope(petID), func(r models.CoOwnerRelationship) bool {
		return r.Status.Active()
	})
}

func (s *clientSharingService) PendingInvitations() []models.CoOwnerRelationship {
	return s.coOwners.List(invitationsScope, func(r models.CoOwnerRelationship) bool {
		return r.Status == models.StatusPending
	})
}

// ── notebook shares ──────────────────────────────────────────────────────────

func (s *clientSharingService) FetchNotebookShares(ctx context.Context, petID models.ID) ([]models.NotebookShare, error) {
	if err := validateID("petId", "Pet is required", petID); err != nil {
		return nil, err
	}

	err := s.shares.FetchScope(ctx, petScope(petID), func(ctx context.Context) ([]models.NotebookShare, error) {
		var list []models.NotebookShare
		err := s.gateway.Get(ctx, notebookSharesPath(petID), &list)
		return list, err
	}, shareKey)
	if err != nil {
		return nil, err
	}
	return s.ActiveNotebookShares(petID), nil
}

func (s *clientSharingService) ShareNotebook(ctx context.Context, petID models.ID, in models.ShareInput) (models.NotebookShare, error) {
	now := s.now()
	if err := validateShare(petID, in, now); err != nil {
		return models.NotebookShare{}, err
	}

	tempID := models.ID(s.ids.TempID())
	pending := models.NotebookShare{
		ID:              tempID,
		PetID:           petID,
		SharedWithEmail: in.Email,
		Permission:      in.Permission,
		Status:          models.StatusPending,
		ExpiresAt:       in.ExpiresAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var created models.NotebookShare
	err := s.shares.Mutate(ctx, syncstore.Mutation[models.NotebookShare]{
		Op:         syncstore.OpCreate,
		Key:        tempID.String(),
		Scope:      petScope(petID),
		Optimistic: putValue(pending.Clone()),
		Call: func(ctx context.Context) (syncstore.Change[models.NotebookShare], error) {
			if err := s.gateway.Post(ctx, notebookSharesPath(petID), in, &created); err != nil {
				return nil, err
			}
			if created.ID.IsZero() {
				return nil, errNoEntityID
			}
			if created.PetID.IsZero() {
				created.PetID = petID
			}
			if created.Status == "" {
				created.Status = models.StatusPending
			}
			return putValue(created.Clone()), nil
		},
		KeyOf: shareKey,
	})
	if err != nil {
		return models.NotebookShare{}, err
	}
	return created.Clone(), nil
}

func (s *clientSharingService) RevokeNotebookShare(ctx context.Context, id models.ID) error {
	if err := validateID("id", "Share is required", id); err != nil {
		return err
	}
	if e, ok := s.shares.Get(id.String()); ok {
		if err := validateTransition(e.Data.Status, models.StatusRevoked); err != nil {
			return err
		}
	}

	now := s.now()
	return s.shares.Mutate(ctx, syncstore.Mutation[models.NotebookShare]{
		Op:  syncstore.OpDelete,
		Key: id.String(),
		Optimistic: func(sh models.NotebookShare, exists bool) (models.NotebookShare, syncstore.Action) {
			if !exists || !sh.Status.CanTransition(models.StatusRevoked) {
				return sh, syncstore.Skip
			}
			sh.Status = models.StatusRevoked
			sh.UpdatedAt = now
			return sh, syncstore.Put
		},
		Call: func(ctx context.Context) (syncstore.Change[models.NotebookShare], error) {
			if err := s.gateway.Delete(ctx, notebookSharePath(id), nil); err != nil {
				return nil, err
			}
			return removeValue[models.NotebookShare], nil
		},
	})
}

func (s *clientSharingService) ActiveNotebookShares(petID models.ID) []models.NotebookShare {
	now := s.now()
	return s.shares.List(petScope(petID), func(sh models.NotebookShare) bool {
		return sh.Status.Active() && !sh.Expired(now)
	})
}

// ── state ────────────────────────────────────────────────────────────────────

func (s *clientSharingService) CoOwnerFlags() syncstore.Flags {
	return s.coOwners.Flags()
}

func (s *clientSharingService) ShareFlags() syncstore.Flags {
	return s.shares.Flags()
}

// LastError returns the co-owner family's last error, or the notebook share
// family's when the former is clear.
func (s *clientSharingService) LastError() *apierror.Error {
	if err := s.coOwners.LastError(); err != nil {
		return err
	}
	return s.shares.LastError()
}

func (s *clientSharingService) Reset() {
	s.coOwners.Reset()
	s.shares.Reset()
}

func putValue[T any](v T) syncstore.Change[T] {
	return func(T, bool) (T, syncstore.Action) { return v, syncstore.Put }
}

func removeValue[T any](cur T, _ bool) (T, syncstore.Action) {
	return cur, syncstore.Remove
}
