// Package badge derives the toolbar badge from the reading-list
// document: the count of items not yet archived, rendered as short
// text for the extension shell.
package badge

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/store"
)

// Updater tracks the active-item count. It recomputes on its own
// startup and on every document change notification, so the badge stays
// consistent with writes made by any surface.
type Updater struct {
	store  store.DocumentStore
	logger logger.Logger

	mu    sync.RWMutex
	count int

	unsubscribe func()
}

// NewUpdater creates a badge updater over the given document store.
func NewUpdater(st store.DocumentStore, log logger.Logger) *Updater {
	return &Updater{
		store:  st,
		logger: log,
	}
}

// Start computes the initial count and subscribes to document changes.
func (u *Updater) Start(ctx context.Context) error {
	doc, err := u.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("initial badge read failed: %w", err)
	}
	u.apply(doc)

	unsubscribe, err := u.store.Subscribe(ctx, u.apply)
	if err != nil {
		return fmt.Errorf("failed to subscribe for badge updates: %w", err)
	}
	u.unsubscribe = unsubscribe

	u.logger.Info("badge updater started",
		logger.Int("active_items", u.Count()))
	return nil
}

// Stop cancels the change subscription.
func (u *Updater) Stop() {
	if u.unsubscribe != nil {
		u.unsubscribe()
		u.unsubscribe = nil
	}
}

// Count returns the current number of non-archived items.
func (u *Updater) Count() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.count
}

// Text returns the badge text for the current count.
func (u *Updater) Text() string {
	return FormatCount(u.Count())
}

func (u *Updater) apply(doc domain.AppStorage) {
	u.mu.Lock()
	u.count = doc.ActiveCount()
	u.mu.Unlock()
}

// FormatCount renders a badge string: empty at zero (which clears the
// badge), the number itself up to 99, and "99+" above that.
func FormatCount(count int) string {
	switch {
	case count <= 0:
		return ""
	case count > 99:
		return "99+"
	}
	return strconv.Itoa(count)
}
