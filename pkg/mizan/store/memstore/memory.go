// Package memstore is an in-memory implementation of store.Store for tests
// and demos. It supports injecting fetch and write failures so pipeline
// error handling can be exercised without a real datastore.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sunnahlabs/mizan/pkg/mizan/store"
)

// Store is an in-memory store.Store.
type Store struct {
	mu          sync.RWMutex
	docs        map[int64]store.Document
	annotations map[int64]store.Annotation

	failOffsets map[int]struct{}
	failWrites  bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		docs:        make(map[int64]store.Document),
		annotations: make(map[int64]store.Annotation),
		failOffsets: make(map[int]struct{}),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Seed adds documents to the store.
func (s *Store) Seed(docs ...store.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range docs {
		s.docs[d.ID] = d
	}
}

// FailFetchAt makes FetchPage fail for the given offset.
func (s *Store) FailFetchAt(offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOffsets[offset] = struct{}{}
}

// FailWrites makes every UpsertAnnotations call fail.
func (s *Store) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

// CountDocuments implements store.Store.
func (s *Store) CountDocuments(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

// FetchPage implements store.Store. Documents are ordered by id.
func (s *Store) FetchPage(ctx context.Context, offset, limit int) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, fail := s.failOffsets[offset]; fail {
		return nil, fmt.Errorf("fetch page at offset %d: injected failure", offset)
	}

	ids := make([]int64, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if offset >= len(ids) {
		return nil, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}

	page := make([]store.Document, 0, end-offset)
	for _, id := range ids[offset:end] {
		page = append(page, s.docs[id])
	}
	return page, nil
}

// UpsertAnnotations implements store.Store.
func (s *Store) UpsertAnnotations(ctx context.Context, anns []store.Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return fmt.Errorf("upsert %d annotations: injected failure", len(anns))
	}
	for _, a := range anns {
		s.annotations[a.ID] = a
	}
	return nil
}

// Annotation returns the stored annotation for a document id.
func (s *Store) Annotation(id int64) (store.Annotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.annotations[id]
	return a, ok
}

// AnnotationCount returns how many annotations have been written.
func (s *Store) AnnotationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.annotations)
}
