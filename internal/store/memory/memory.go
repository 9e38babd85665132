// Package memory implements an in-process document store with local
// subscriber fan-out. It backs the tests.
package memory

import (
	"context"
	"sync"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/store"
)

// DocumentStore keeps the document in memory. Reads hand out deep
// copies so callers can never mutate the stored document in place.
type DocumentStore struct {
	mu     sync.RWMutex
	doc    domain.AppStorage
	exists bool
	subs   map[int]func(domain.AppStorage)
	nextID int

	// ReadErr and ReplaceErr force failures; tests use them to
	// exercise the StorageError paths.
	ReadErr    error
	ReplaceErr error
}

// New creates an empty in-memory document store.
func New() *DocumentStore {
	return &DocumentStore{
		subs: make(map[int]func(domain.AppStorage)),
	}
}

// Read returns a copy of the current document, or the zero-value
// document when nothing has been written yet.
func (s *DocumentStore) Read(ctx context.Context) (domain.AppStorage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return domain.AppStorage{}, &store.StorageError{Op: "read", Err: s.ReadErr}
	}
	if !s.exists {
		return domain.EmptyStorage(), nil
	}
	return cloneStorage(s.doc), nil
}

// Replace overwrites the document and notifies every subscriber,
// including any registered by the writer itself.
func (s *DocumentStore) Replace(ctx context.Context, doc domain.AppStorage) error {
	s.mu.Lock()
	if s.ReplaceErr != nil {
		err := s.ReplaceErr
		s.mu.Unlock()
		return &store.StorageError{Op: "replace", Err: err}
	}
	s.doc = cloneStorage(doc)
	s.exists = true
	subs := make([]func(domain.AppStorage), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cloneStorage(doc))
	}
	return nil
}

// Subscribe registers fn for change notifications. The returned
// function cancels the registration.
func (s *DocumentStore) Subscribe(ctx context.Context, fn func(domain.AppStorage)) (func(), error) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}, nil
}

func cloneStorage(doc domain.AppStorage) domain.AppStorage {
	out := domain.AppStorage{
		Items: make([]domain.ReadingItem, len(doc.Items)),
		Tags:  append([]string(nil), doc.Tags...),
	}
	for i, item := range doc.Items {
		copied := item
		copied.Tags = append([]string(nil), item.Tags...)
		if item.ArchivedAt != nil {
			at := *item.ArchivedAt
			copied.ArchivedAt = &at
		}
		out.Items[i] = copied
	}
	if doc.Tags == nil {
		out.Tags = []string{}
	}
	return out
}
