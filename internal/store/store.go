// Package store defines the document store contract: durable storage of
// the single reading-list document plus a change-notification feed so
// every surface (popup, dashboard, badge) sees writes made by any other.
package store

import (
	"context"
	"fmt"

	"github.com/bhrigu123/readster/internal/domain"
)

// DocumentStore owns the persisted AppStorage document.
//
// Read never fails on a missing document; it returns the zero-value
// document instead. Replace overwrites the document wholesale, so a
// failed replace leaves the previous document intact. Subscribe invokes
// the callback with the new document after every successful Replace from
// any process sharing the store, including the subscriber's own.
type DocumentStore interface {
	Read(ctx context.Context) (domain.AppStorage, error)
	Replace(ctx context.Context, doc domain.AppStorage) error
	Subscribe(ctx context.Context, fn func(domain.AppStorage)) (unsubscribe func(), err error)
}

// StorageError wraps a failure of the underlying storage medium (quota,
// medium unavailable). Callers must treat it as "changes may not have
// been saved" and re-read to resync; there is no automatic retry.
type StorageError struct {
	Op  string // "read", "replace" or "subscribe"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
