// Package repo provides the all-or-nothing operations on the reading
// list. Every operation is a full read-modify-write round-trip against
// the document store: read the document, compute the new one, replace
// it. No operation patches a single field without a full fetch first.
//
// Because the document is shared across independent processes with no
// cross-process lock, two operations issued concurrently can race: the
// second replace overwrites the first when the second operation's read
// happened before the first's write (last write wins at document
// granularity). With a single user saving one item at a time this is an
// accepted tradeoff and is deliberately not serialized here.
package repo

import (
	"context"
	"time"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/store"
)

// Repository mutates the reading-list document through the store.
type Repository struct {
	store   store.DocumentStore
	logger  logger.Logger
	timeNow func() time.Time
}

// New creates a repository over the given document store.
func New(st store.DocumentStore, log logger.Logger) *Repository {
	return &Repository{
		store:   st,
		logger:  log,
		timeNow: time.Now,
	}
}

// Snapshot returns the current document.
func (r *Repository) Snapshot(ctx context.Context) (domain.AppStorage, error) {
	return r.store.Read(ctx)
}

// AddItem prepends the item to the list. If any existing item, archived
// or not, already has the same URL the call is a no-op, so saving the
// same page twice never duplicates it. The URL comparison is an exact
// string match; case and trailing-slash variants are distinct URLs.
func (r *Repository) AddItem(ctx context.Context, item domain.ReadingItem) error {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return err
	}

	for _, existing := range doc.Items {
		if existing.URL == item.URL {
			r.logger.Debug("url already saved, skipping",
				logger.String("url", item.URL))
			return nil
		}
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}
	doc.Items = append([]domain.ReadingItem{item}, doc.Items...)
	return r.store.Replace(ctx, doc)
}

// ArchiveItem marks the item as read and stamps the archival time.
// An unknown id is a silent no-op: the item may already have been
// deleted by another surface.
func (r *Repository) ArchiveItem(ctx context.Context, id string) error {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return err
	}

	for i := range doc.Items {
		if doc.Items[i].ID != id {
			continue
		}
		archivedAt := r.timeNow().UnixMilli()
		doc.Items[i].Archived = true
		doc.Items[i].ArchivedAt = &archivedAt
		return r.store.Replace(ctx, doc)
	}
	return nil
}

// UnarchiveItem restores an archived item to the reading list and
// clears its archival time. An unknown id is a silent no-op.
func (r *Repository) UnarchiveItem(ctx context.Context, id string) error {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return err
	}

	for i := range doc.Items {
		if doc.Items[i].ID != id {
			continue
		}
		doc.Items[i].Archived = false
		doc.Items[i].ArchivedAt = nil
		return r.store.Replace(ctx, doc)
	}
	return nil
}

// DeleteItem removes the item permanently. An unknown id is a silent
// no-op.
func (r *Repository) DeleteItem(ctx context.Context, id string) error {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return err
	}

	for i := range doc.Items {
		if doc.Items[i].ID != id {
			continue
		}
		doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)
		return r.store.Replace(ctx, doc)
	}
	return nil
}

// UpdateItemTags replaces the item's tags wholesale, deduplicating while
// preserving order. The global tag set is not touched. An unknown id is
// a silent no-op.
func (r *Repository) UpdateItemTags(ctx context.Context, id string, tags []string) error {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return err
	}

	for i := range doc.Items {
		if doc.Items[i].ID != id {
			continue
		}
		doc.Items[i].Tags = dedupeTags(tags)
		return r.store.Replace(ctx, doc)
	}
	return nil
}

// AddGlobalTag registers a tag in the global set, keeping the set
// sorted ascending. Registering an existing tag is a no-op. Callers are
// expected to normalize the tag first (see domain.NormalizeTag).
func (r *Repository) AddGlobalTag(ctx context.Context, tag string) error {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return err
	}

	set := domain.NewTagSet(doc.Tags)
	if !set.Add(tag) {
		return nil
	}
	doc.Tags = set.List()
	return r.store.Replace(ctx, doc)
}

// IsURLSaved reports whether a non-archived item with exactly this URL
// exists. The popup uses it to show the "already saved" state.
func (r *Repository) IsURLSaved(ctx context.Context, url string) (bool, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return false, err
	}

	for _, item := range doc.Items {
		if item.URL == url && !item.Archived {
			return true, nil
		}
	}
	return false, nil
}

func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
