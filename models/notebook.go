// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrUnknownEntryType is returned when an entry carries a type that has no
// registered payload.
var ErrUnknownEntryType = errors.New("unknown notebook entry type")

// NotebookEntry is a single record in a pet notebook.
//
// It is a tagged union over [EntryType]: the common fields are shared by all
// entries and Payload holds the type-specific details. On the wire the
// payload is nested under "details".
type NotebookEntry struct {
	// ID is the server-assigned entry identifier. Entries created locally and
	// not yet acknowledged carry a temporary "tmp-" prefixed id.
	ID ID

	// PetID is the owning pet. An entry belongs to exactly one notebook.
	PetID ID

	// Type selects the payload kind.
	Type EntryType

	// Title is a short human readable summary.
	Title string

	// Date is when the recorded event happened. Entries are ordered by it.
	Date time.Time

	// CreatedAt is when the entry was created.
	CreatedAt time.Time

	// UpdatedAt is when the entry was last modified.
	UpdatedAt time.Time

	// Tags are optional free-form labels.
	Tags []string

	// Payload holds the type-specific details; its EntryType always equals
	// Type.
	Payload EntryPayload
}

type entryWire struct {
	ID        ID              `json:"id"`
	PetID     ID              `json:"pet_id"`
	Type      EntryType       `json:"type"`
	Title     string          `json:"title"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Tags      []string        `json:"tags,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (e NotebookEntry) MarshalJSON() ([]byte, error) {
	w := entryWire{
		ID:        e.ID,
		PetID:     e.PetID,
		Type:      e.Type,
		Title:     e.Title,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Tags:      e.Tags,
	}

	if e.Payload != nil {
		details, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s details: %w", e.Type, err)
		}
		w.Details = details
	}

	return json.Marshal(w)
}

// UnmarshalJSON implements [json.Unmarshaler]. The details object is decoded
// into the payload registered for the entry type.
func (e *NotebookEntry) UnmarshalJSON(b []byte) error {
	var w entryWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	payload, err := DecodePayload(w.Type, w.Details)
	if err != nil {
		return err
	}

	*e = NotebookEntry{
		ID:        w.ID,
		PetID:     w.PetID,
		Type:      w.Type,
		Title:     w.Title,
		Date:      w.Date,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		Tags:      w.Tags,
		Payload:   payload,
	}
	return nil
}

// DecodePayload decodes raw into the payload type registered for t. An empty
// raw value yields the zero payload of that type.
func DecodePayload(t EntryType, raw json.RawMessage) (EntryPayload, error) {
	factory, ok := payloadFactories[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntryType, t)
	}

	p := factory()
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, p); err != nil {
			return nil, fmt.Errorf("decode %s details: %w", t, err)
		}
	}
	return derefPayload(p), nil
}

// ValuePayload returns p with a pointer payload replaced by its value, the
// form stored in [NotebookEntry.Payload].
func ValuePayload(p EntryPayload) EntryPayload {
	if p == nil {
		return nil
	}
	return derefPayload(p)
}

func derefPayload(p EntryPayload) EntryPayload {
	switch v := p.(type) {
	case *MedicalDetails:
		if v == nil {
			return nil
		}
		return *v
	case *DietDetails:
		if v == nil {
			return nil
		}
		return *v
	case *HabitDetails:
		if v == nil {
			return nil
		}
		return *v
	case *CommandDetails:
		if v == nil {
			return nil
		}
		return *v
	default:
		return p
	}
}

// Timestamp returns the later of UpdatedAt and Date. It is the value the
// notebook's LastUpdated is derived from.
func (e NotebookEntry) Timestamp() time.Time {
	if e.UpdatedAt.After(e.Date) {
		return e.UpdatedAt
	}
	return e.Date
}

// Clone returns a deep copy of the entry.
func (e NotebookEntry) Clone() NotebookEntry {
	e.Tags = slices.Clone(e.Tags)
	if m, ok := e.Payload.(MedicalDetails); ok {
		m.Medications = slices.Clone(m.Medications)
		e.Payload = m
	}
	return e
}

// EntryInput carries the user-editable fields of a notebook entry for create
// and update requests.
type EntryInput struct {
	// Type selects the payload kind.
	Type EntryType `json:"type" client:"type"`

	// Title is a short human readable summary.
	Title string `json:"title" client:"title"`

	// Date is when the recorded event happened. Zero means "now".
	Date time.Time `json:"date" client:"date"`

	// Tags are optional free-form labels.
	Tags []string `json:"tags,omitempty" client:"tags"`

	// Payload holds the type-specific details.
	Payload EntryPayload `json:"details" client:"details"`
}

// Entry builds a notebook entry from the input for the given pet and id.
func (in EntryInput) Entry(petID, id ID, now time.Time) NotebookEntry {
	date := in.Date
	if date.IsZero() {
		date = now
	}

	return NotebookEntry{
		ID:        id,
		PetID:     petID,
		Type:      in.Type,
		Title:     in.Title,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      slices.Clone(in.Tags),
		Payload:   in.Payload,
	}
}

// PetNotebook is the unit of caching for notebook entries: every entry of
// one pet, plus values derived from them.
type PetNotebook struct {
	// PetID identifies the pet the notebook belongs to.
	PetID ID `json:"pet_id"`

	// Entries are kept sorted by Date descending.
	Entries []NotebookEntry `json:"entries"`

	// TotalCount always equals len(Entries).
	TotalCount int `json:"total_count"`

	// LastUpdated is the maximum entry timestamp. It is left unchanged when
	// the notebook becomes empty.
	LastUpdated time.Time `json:"last_updated"`
}

// Normalize re-sorts the entries by date descending and recomputes the
// derived fields. It must run after every change to Entries: creates unshift
// rather than insert in place, so order is never assumed preserved.
func (n *PetNotebook) Normalize() {
	slices.SortStableFunc(n.Entries, compareEntries)

	n.TotalCount = len(n.Entries)
	if len(n.Entries) == 0 {
		return
	}

	var latest time.Time
	for _, e := range n.Entries {
		if ts := e.Timestamp(); ts.After(latest) {
			latest = ts
		}
	}
	n.LastUpdated = latest
}

// compareEntries orders newest first; ties fall back to creation time and
// then id so that the order is deterministic.
func compareEntries(a, b NotebookEntry) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

// IndexOf returns the index of the entry with the given id or -1.
func (n *PetNotebook) IndexOf(id ID) int {
	return slices.IndexFunc(n.Entries, func(e NotebookEntry) bool { return e.ID == id })
}

// Unshift prepends e and normalizes the notebook.
func (n *PetNotebook) Unshift(e NotebookEntry) {
	n.Entries = append([]NotebookEntry{e}, n.Entries...)
	n.Normalize()
}

// Replace swaps the entry with the given id for e. It reports whether an
// entry was found.
func (n *PetNotebook) Replace(id ID, e NotebookEntry) bool {
	i := n.IndexOf(id)
	if i < 0 {
		return false
	}
	n.Entries[i] = e
	n.Normalize()
	return true
}

// Remove splices out the entry with the given id. It reports whether an
// entry was found.
func (n *PetNotebook) Remove(id ID) bool {
	i := n.IndexOf(id)
	if i < 0 {
		return false
	}
	n.Entries = slices.Delete(n.Entries, i, i+1)
	n.Normalize()
	return true
}

// Clone returns a deep copy of the notebook.
func (n PetNotebook) Clone() PetNotebook {
	if n.Entries == nil {
		return n
	}
	entries := make([]NotebookEntry, len(n.Entries))
	for i, e := range n.Entries {
		entries[i] = e.Clone()
	}
	n.Entries = entries
	return n
}
