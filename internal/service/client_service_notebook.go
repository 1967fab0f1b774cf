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

func notebookPath(petID models.ID) string {
	return fmt.Sprintf("/api/pets/%s/notebook", url.PathEscape(petID.String()))
}

func entriesPath(petID models.ID) string {
	return notebookPath(petID) + "/entries"
}

func entryPath(petID, entryID models.ID) string {
	return entriesPath(petID) + "/" + url.PathEscape(entryID.String())
}

type clientNotebookService struct {
	gateway adapter.Gateway
	store   *syncstore.Store[models.PetNotebook]
	ids     *utils.UUIDGenerator
	now     func() time.Time
}

// NewClientNotebookService returns the notebook store. opts configure the
// underlying [syncstore.Store].
func NewClientNotebookService(gateway adapter.Gateway, opts ...syncstore.Option) NotebookService {
	return &clientNotebookService{
		gateway: gateway,
		store:   syncstore.New("notebooks", models.PetNotebook.Clone, opts...),
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
	}
}

func (n *clientNotebookService) FetchNotebook(ctx context.Context, petID models.ID) (models.PetNotebook, error) {
	if err := validateID("petId", "Pet is required", petID); err != nil {
		return models.PetNotebook{}, err
	}

	key := petID.String()
	err := n.store.Fetch(ctx, key, func(ctx context.Context) (models.PetNotebook, error) {
		var nb models.PetNotebook
		if err := n.gateway.Get(ctx, notebookPath(petID), &nb); err != nil {
			return nb, err
		}
		if nb.PetID.IsZero() {
			nb.PetID = petID
		}
		nb.Normalize()
		return nb, nil
	})
	if err != nil {
		return models.PetNotebook{}, err
	}

	e, _ := n.store.Get(key)
	return e.Data, nil
}

// CreateEntry unshifts a temporary entry into the notebook, creating the
// notebook if it is not cached, and swaps it for the server's entry once the
// request succeeds.
func (n *clientNotebookService) CreateEntry(ctx context.Context, petID models.ID, in models.EntryInput) (models.NotebookEntry, error) {
	in, err := validateEntry(petID, in)
	if err != nil {
		return models.NotebookEntry{}, err
	}

	now := n.now()
	if in.Date.IsZero() {
		in.Date = now
	}
	tempID := models.ID(n.ids.TempID())
	optimistic := in.Entry(petID, tempID, now)

	var created models.NotebookEntry
	err = n.store.Mutate(ctx, syncstore.Mutation[models.PetNotebook]{
		Op:  syncstore.OpCreate,
		Key: petID.String(),
		Optimistic: func(nb models.PetNotebook, exists bool) (models.PetNotebook, syncstore.Action) {
			if !exists {
				nb = models.PetNotebook{PetID: petID}
			}
			nb.Unshift(optimistic)
			return nb, syncstore.Put
		},
		Call: func(ctx context.Context) (syncstore.Change[models.PetNotebook], error) {
			if err := n.gateway.Post(ctx, entriesPath(petID), in, &created); err != nil {
				return nil, err
			}
			if created.ID.IsZero() {
				return nil, errNoEntityID
			}
			created = completeEntry(created, optimistic)

			return func(nb models.PetNotebook, exists bool) (models.PetNotebook, syncstore.Action) {
				if !exists {
					nb = models.PetNotebook{PetID: petID}
				}
				if !nb.Replace(tempID, created) && nb.IndexOf(created.ID) < 0 {
					nb.Unshift(created)
				}
				return nb, syncstore.Put
			}, nil
		},
	})
	if err != nil {
		return models.NotebookEntry{}, err
	}
	return created.Clone(), nil
}

func (n *clientNotebookService) UpdateEntry(ctx context.Context, petID, entryID models.ID, in models.EntryInput) (models.NotebookEntry, error) {
	in, err := validateEntry(petID, in)
	if err != nil {
		return models.NotebookEntry{}, err
	}
	if err = validateID("entryId", "Entry is required", entryID); err != nil {
		return models.NotebookEntry{}, err
	}

	now := n.now()
	prev, cached := n.entry(petID, entryID)
	if in.Date.IsZero() {
		in.Date = now
		if cached {
			in.Date = prev.Date
		}
	}
	optimistic := in.Entry(petID, entryID, now)
	if cached {
		optimistic.CreatedAt = prev.CreatedAt
	}

	var updated models.NotebookEntry
	err = n.store.Mutate(ctx, syncstore.Mutation[models.PetNotebook]{
		Op:  syncstore.OpUpdate,
		Key: petID.String(),
		Optimistic: func(nb models.PetNotebook, exists bool) (models.PetNotebook, syncstore.Action) {
			if !exists || !nb.Replace(entryID, optimistic) {
				return nb, syncstore.Skip
			}
			return nb, syncstore.Put
		},
		Call: func(ctx context.Context) (syncstore.Change[models.PetNotebook], error) {
			if err := n.gateway.Put(ctx, entryPath(petID, entryID), in, &updated); err != nil {
				return nil, err
			}
			if updated.ID.IsZero() {
				updated.ID = entryID
			}
			updated = completeEntry(updated, optimistic)

			return func(nb models.PetNotebook, exists bool) (models.PetNotebook, syncstore.Action) {
				if !exists || !nb.Replace(entryID, updated) {
					return nb, syncstore.Skip
				}
				return nb, syncstore.Put
			}, nil
		},
	})
	if err != nil {
		return models.NotebookEntry{}, err
	}
	return updated.Clone(), nil
}

func (n *clientNotebookService) DeleteEntry(ctx context.Context, petID, entryID models.ID) error {
	if err := validateID("petId", "Pet is required", petID); err != nil {
		return err
	}
	if err := validateID("entryId", "Entry is required", entryID); err != nil {
		return err
	}

	splice := func(nb models.PetNotebook, exists bool) (models.PetNotebook, syncstore.Action) {
		if !exists || !nb.Remove(entryID) {
			return nb, syncstore.Skip
		}
		return nb, syncstore.Put
	}

	return n.store.Mutate(ctx, syncstore.Mutation[models.PetNotebook]{
		Op:         syncstore.OpDelete,
		Key:        petID.String(),
		Optimistic: splice,
		Call: func(ctx context.Context) (syncstore.Change[models.PetNotebook], error) {
			if err := n.gateway.Delete(ctx, entryPath(petID, entryID), nil); err != nil {
				return nil, err
			}
			return splice, nil
		},
	})
}

func (n *clientNotebookService) Notebook(petID models.ID) (syncstore.Entity[models.PetNotebook], bool) {
	return n.store.Get(petID.String())
}

func (n *clientNotebookService) EntriesByType(petID models.ID, t models.EntryType) []models.NotebookEntry {
	e, ok := n.store.Get(petID.String())
	if !ok {
		return nil
	}

	var out []models.NotebookEntry
	for _, entry := range e.Data.Entries {
		if entry.Type == t {
			out = append(out, entry)
		}
	}
	return out
}

func (n *clientNotebookService) Flags() syncstore.Flags {
	return n.store.Flags()
}

func (n *clientNotebookService) LastError() *apierror.Error {
	return n.store.LastError()
}

func (n *clientNotebookService) Reset() {
	n.store.Reset()
}

func (n *clientNotebookService) entry(petID, entryID models.ID) (models.NotebookEntry, bool) {
	e, ok := n.store.Get(petID.String())
	if !ok {
		return models.NotebookEntry{}, false
	}
	i := e.Data.IndexOf(entryID)
	if i < 0 {
		return models.NotebookEntry{}, false
	}
	return e.Data.Entries[i], true
}

// completeEntry fills the fields a server response left empty from the
// locally built entry.
func completeEntry(got, local models.NotebookEntry) models.NotebookEntry {
	if got.PetID.IsZero() {
		got.PetID = local.PetID
	}
	if got.Type == "" {
		got.Type = local.Type
	}
	if got.Payload == nil {
		got.Payload = local.Payload
	}
	if got.Title == "" {
		got.Title = local.Title
	}
	if got.Date.IsZero() {
		got.Date = local.Date
	}
	if got.CreatedAt.IsZero() {
		got.CreatedAt = local.CreatedAt
	}
	if got.UpdatedAt.IsZero() {
		got.UpdatedAt = local.UpdatedAt
	}
	return got
}
