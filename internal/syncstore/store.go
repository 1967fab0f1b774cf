// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package syncstore implements the cache and optimistic-mutation engine shared
// by every entity family of the client (notebooks, co-owner relationships,
// notebook shares).
//
// Every operation runs in three phases:
//
//  1. begin: mark the key (fetch) or the family (create/update/delete) as in
//     flight and clear the previous error;
//  2. optimistic apply (mutations only): change the cache as if the remote
//     call will succeed;
//  3. reconcile: store the authoritative value, or record the error.
//
// Begin together with the optimistic apply, and reconcile, each run under the
// store lock. The lock is never held while the remote call runs, so two
// operations on the same key may overlap and the last response to arrive wins.
package syncstore

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
)

// Op is the kind of a mutation. It selects the family-wide in-flight flag.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action tells the store what to do with the value returned by a [Change].
type Action int

const (
	// Skip leaves the key untouched.
	Skip Action = iota
	// Put stores the returned value and marks the key loaded.
	Put
	// Remove drops the key from the cache and from every scope.
	Remove
)

// Change computes the next value of a key from its current one. cur is a copy
// and may be modified freely; exists is false when the key is not cached or
// holds no loaded value yet, e.g. after a failed first fetch.
type Change[T any] func(cur T, exists bool) (T, Action)

// Mutation describes one create, update or delete.
type Mutation[T any] struct {
	Op  Op
	Key string

	// Scope, when set, is the scope the key joins at the optimistic step. It
	// lets a created entity appear in list views before the server answers.
	Scope string

	// Optimistic is applied before Call. Nil means no optimistic change.
	Optimistic Change[T]

	// Call performs the remote operation and returns the change that
	// reconciles the cache with the server's answer. A nil change leaves the
	// optimistic value in place.
	Call func(ctx context.Context) (Change[T], error)

	// KeyOf, when set, derives the cache key of the reconciled value. The
	// entity moves from Key to the derived key, keeping its scope positions.
	// Creates use it to swap a temporary id for the server id.
	KeyOf func(T) string
}

// Entity is a read-only snapshot of one cached key.
type Entity[T any] struct {
	Data    T
	Loaded  bool
	Loading bool
	Err     *apierror.Error
}

// ScopeState is a read-only snapshot of one scope.
type ScopeState struct {
	Keys    []string
	Loaded  bool
	Loading bool
	Err     *apierror.Error
}

// Flags report the family-wide in-flight mutations.
type Flags struct {
	Creating bool
	Updating bool
	Deleting bool
}

type entry[T any] struct {
	data   T
	loaded bool
	loads  int
	err    *apierror.Error
}

type scope struct {
	keys   []string
	loaded bool
	loads  int
	err    *apierror.Error
}

// Store caches one entity family. The zero value is not usable; call [New].
type Store[T any] struct {
	name       string
	clone      func(T) T
	normalizer *apierror.Normalizer
	rollback   bool
	logger     *logger.Logger

	mu       sync.RWMutex
	entities map[string]*entry[T]
	scopes   map[string]*scope
	inFlight [3]int
	lastErr  *apierror.Error
	// gen is bumped by Reset; results of operations begun before a reset are
	// dropped.
	gen uint64
}

// New returns an empty store for a family called name. clone deep-copies a
// value; nil means values are copied by assignment only.
func New[T any](name string, clone func(T) T, opts ...Option) *Store[T] {
	o := options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	if o.normalizer == nil {
		o.normalizer = apierror.NewNormalizer(nil)
	}

	return &Store[T]{
		name:       name,
		clone:      clone,
		normalizer: o.normalizer,
		rollback:   o.rollback,
		logger:     o.logger,
		entities:   make(map[string]*entry[T]),
		scopes:     make(map[string]*scope),
	}
}

// Fetch loads one key. The key is created if it is not cached, and an
// existing value is always overwritten on success.
func (s *Store[T]) Fetch(ctx context.Context, key string, load func(ctx context.Context) (T, error)) error {
	s.mu.Lock()
	gen := s.gen
	e := s.entry(key)
	e.loads++
	e.err = nil
	s.mu.Unlock()

	v, err := load(ctx)
	ne := s.normalizer.Normalize(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return errOrNil(ne)
	}

	e = s.entry(key)
	e.loads = max(e.loads-1, 0)
	if ne != nil {
		e.err = ne
		s.lastErr = ne
		s.logger.Warn().Err(ne).Str("store", s.name).Str("key", key).Msg("fetch failed")
		return ne
	}

	e.data = s.clone(v)
	e.loaded = true
	e.err = nil
	return nil
}

// FetchScope loads a list of entities and makes their keys, in received
// order, the content of the scope. Keys that drop out of the scope and are
// referenced by no other scope are evicted.
func (s *Store[T]) FetchScope(ctx context.Context, name string, load func(ctx context.Context) ([]T, error), keyOf func(T) string) error {
	s.mu.Lock()
	gen := s.gen
	sc := s.scope(name)
	sc.loads++
	sc.err = nil
	s.mu.Unlock()

	items, err := load(ctx)
	ne := s.normalizer.Normalize(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return errOrNil(ne)
	}

	sc = s.scope(name)
	sc.loads = max(sc.loads-1, 0)
	if ne != nil {
		sc.err = ne
		s.lastErr = ne
		s.logger.Warn().Err(ne).Str("store", s.name).Str("scope", name).Msg("scope fetch failed")
		return ne
	}

	previous := sc.keys
	keys := make([]string, 0, len(items))
	for _, item := range items {
		key := keyOf(item)
		if key == "" || slices.Contains(keys, key) {
			continue
		}
		keys = append(keys, key)

		e := s.entry(key)
		e.data = s.clone(item)
		e.loaded = true
		e.err = nil
	}
	sc.keys = keys
	sc.loaded = true
	sc.err = nil

	for _, key := range previous {
		if !s.referenced(key) {
			delete(s.entities, key)
		}
	}
	return nil
}

// Mutate runs one create, update or delete. The optimistic change is skipped
// while a fetch of the same key is in flight; the remote call and the
// reconcile step still run. On failure the optimistic value stays in place
// unless the store was built [WithRollbackOnFailure].
func (s *Store[T]) Mutate(ctx context.Context, m Mutation[T]) error {
	s.mu.Lock()
	gen := s.gen
	s.inFlight[m.Op]++
	s.lastErr = nil

	prior, existed := s.snapshot(m.Key)
	applied := false
	if e, ok := s.entities[m.Key]; ok {
		e.err = nil
	}
	if m.Optimistic != nil && !s.loading(m.Key) {
		applied = s.apply(m.Key, m.Optimistic)
	}
	if m.Scope != "" && applied {
		s.join(m.Scope, m.Key)
	}
	s.mu.Unlock()

	reconcile, err := m.Call(ctx)
	ne := s.normalizer.Normalize(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return errOrNil(ne)
	}

	s.inFlight[m.Op] = max(s.inFlight[m.Op]-1, 0)
	if ne != nil {
		s.lastErr = ne
		if s.rollback && applied {
			s.restore(m.Key, prior, existed)
		}
		if e, ok := s.entities[m.Key]; ok {
			e.err = ne
		}
		s.logger.Warn().Err(ne).
			Str("store", s.name).
			Str("op", m.Op.String()).
			Str("key", m.Key).
			Bool("rolled_back", s.rollback && applied).
			Msg("mutation failed")
		return ne
	}

	if reconcile != nil {
		s.reconcile(m, reconcile)
	}
	return nil
}

// Get returns a copy of the cached key.
func (s *Store[T]) Get(key string) (Entity[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[key]
	if !ok {
		return Entity[T]{}, false
	}
	return s.view(e), true
}

// Keys returns every cached key in lexical order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entities))
	for k := range s.entities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Scope returns a copy of the named scope. An unknown scope is reported as
// empty and not loaded.
func (s *Store[T]) Scope(name string) ScopeState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.scopes[name]
	if !ok {
		return ScopeState{}
	}
	return ScopeState{
		Keys:    slices.Clone(sc.keys),
		Loaded:  sc.loaded,
		Loading: sc.loads > 0,
		Err:     sc.err,
	}
}

// List returns copies of the values in the named scope, in scope order,
// keeping those for which keep returns true. A nil keep keeps everything.
func (s *Store[T]) List(name string, keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.scopes[name]
	if !ok {
		return nil
	}

	out := make([]T, 0, len(sc.keys))
	for _, key := range sc.keys {
		e, ok := s.entities[key]
		if !ok {
			continue
		}
		if keep != nil && !keep(e.data) {
			continue
		}
		out = append(out, s.clone(e.data))
	}
	return out
}

// Flags reports the family-wide in-flight mutations.
func (s *Store[T]) Flags() Flags {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Flags{
		Creating: s.inFlight[OpCreate] > 0,
		Updating: s.inFlight[OpUpdate] > 0,
		Deleting: s.inFlight[OpDelete] > 0,
	}
}

// LastError returns the error of the most recent failed operation. It is
// cleared when a mutation begins.
func (s *Store[T]) LastError() *apierror.Error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Reset empties the store. Operations still in flight finish without
// touching the cache.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.entities = make(map[string]*entry[T])
	s.scopes = make(map[string]*scope)
	s.inFlight = [3]int{}
	s.lastErr = nil
}

func (s *Store[T]) entry(key string) *entry[T] {
	e, ok := s.entities[key]
	if !ok {
		e = &entry[T]{}
		s.entities[key] = e
	}
	return e
}

func (s *Store[T]) scope(name string) *scope {
	sc, ok := s.scopes[name]
	if !ok {
		sc = &scope{}
		s.scopes[name] = sc
	}
	return sc
}

func (s *Store[T]) loading(key string) bool {
	e, ok := s.entities[key]
	return ok && e.loads > 0
}

func (s *Store[T]) view(e *entry[T]) Entity[T] {
	return Entity[T]{
		Data:    s.clone(e.data),
		Loaded:  e.loaded,
		Loading: e.loads > 0,
		Err:     e.err,
	}
}

// apply runs change against key and reports whether the cache changed.
func (s *Store[T]) apply(key string, change Change[T]) bool {
	next, action := s.run(key, change)
	return s.commit(key, next, action)
}

func (s *Store[T]) reconcile(m Mutation[T], change Change[T]) {
	next, action := s.run(m.Key, change)

	key := m.Key
	if action == Put && m.KeyOf != nil {
		if k := m.KeyOf(next); k != "" && k != key {
			s.rename(key, k)
			key = k
		}
	}

	if s.commit(key, next, action) && action == Put && m.Scope != "" {
		s.join(m.Scope, key)
	}
}

func (s *Store[T]) run(key string, change Change[T]) (T, Action) {
	var cur T
	e, ok := s.entities[key]
	exists := ok && e.loaded
	if exists {
		cur = s.clone(e.data)
	}
	return change(cur, exists)
}

func (s *Store[T]) commit(key string, next T, action Action) bool {
	switch action {
	case Put:
		e := s.entry(key)
		e.data = next
		e.loaded = true
		return true
	case Remove:
		if _, ok := s.entities[key]; !ok {
			return false
		}
		s.remove(key)
		return true
	default:
		return false
	}
}

// rename moves the entity at from to to, replacing from in every scope.
func (s *Store[T]) rename(from, to string) {
	e, ok := s.entities[from]
	if !ok {
		return
	}
	delete(s.entities, from)
	if _, taken := s.entities[to]; !taken {
		s.entities[to] = e
	}

	for _, sc := range s.scopes {
		i := slices.Index(sc.keys, from)
		if i < 0 {
			continue
		}
		if slices.Contains(sc.keys, to) {
			sc.keys = slices.Delete(sc.keys, i, i+1)
		} else {
			sc.keys[i] = to
		}
	}
}

func (s *Store[T]) remove(key string) {
	delete(s.entities, key)
	for _, sc := range s.scopes {
		sc.keys = slices.DeleteFunc(sc.keys, func(k string) bool { return k == key })
	}
}

func (s *Store[T]) join(name, key string) {
	if _, ok := s.entities[key]; !ok {
		return
	}
	sc := s.scope(name)
	if !slices.Contains(sc.keys, key) {
		sc.keys = append([]string{key}, sc.keys...)
	}
}

func (s *Store[T]) referenced(key string) bool {
	for _, sc := range s.scopes {
		if slices.Contains(sc.keys, key) {
			return true
		}
	}
	return false
}

type snapshot[T any] struct {
	data   T
	loaded bool
	scopes []string
}

func (s *Store[T]) snapshot(key string) (snapshot[T], bool) {
	if !s.rollback {
		return snapshot[T]{}, false
	}
	e, ok := s.entities[key]
	if !ok {
		return snapshot[T]{}, false
	}

	snap := snapshot[T]{data: s.clone(e.data), loaded: e.loaded}
	for name, sc := range s.scopes {
		if slices.Contains(sc.keys, key) {
			snap.scopes = append(snap.scopes, name)
		}
	}
	return snap, true
}

func (s *Store[T]) restore(key string, prior snapshot[T], existed bool) {
	if !existed {
		s.remove(key)
		return
	}

	e := s.entry(key)
	e.data = prior.data
	e.loaded = prior.loaded
	for _, name := range prior.scopes {
		s.join(name, key)
	}
}

func errOrNil(e *apierror.Error) error {
	if e == nil {
		return nil
	}
	return e
}
