package domain

// ReadingItem represents one saved page.
type ReadingItem struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the unique identifier, generated when the item is saved.
	ID string `json:"id"`

	// URL is the saved page's absolute URL.
	// It is also the natural de-duplication key: a URL is saved at most once.
	URL string `json:"url"`

	// ─────────────────────────────
	// Display metadata (derived)
	// ─────────────────────────────

	// Title is the page title, falling back to URL when unavailable.
	Title string `json:"title"`

	// Favicon is a best-effort icon URL. Empty when derivation failed.
	Favicon string `json:"favicon,omitempty"`

	// Domain is the page hostname with any leading "www." stripped.
	Domain string `json:"domain"`

	// ─────────────────────────────
	// Lifecycle
	// ─────────────────────────────

	// DateAdded is the creation timestamp in epoch milliseconds.
	DateAdded int64 `json:"dateAdded"`

	// Archived marks an item as read. Archived items stay stored
	// and can be restored.
	Archived bool `json:"archived"`

	// ArchivedAt is set when the item is archived and cleared when
	// it is unarchived.
	ArchivedAt *int64 `json:"archivedAt,omitempty"`

	// Tags are the labels attached to this item. Semantically a set;
	// order carries no meaning for matching.
	Tags []string `json:"tags"`
}

// AppStorage is the entire persisted state: the saved items plus the
// globally registered tags. It is stored as one JSON document.
type AppStorage struct {
	// Items in insertion order, newest first.
	Items []ReadingItem `json:"items"`

	// Tags holds every registered tag, sorted ascending. A tag may
	// exist here with no item referencing it.
	Tags []string `json:"tags"`
}

// EmptyStorage returns the zero-value document used before anything
// has been saved.
func EmptyStorage() AppStorage {
	return AppStorage{
		Items: []ReadingItem{},
		Tags:  []string{},
	}
}

// Normalize repairs a document read from storage so that malformed or
// legacy data degrades to defaults instead of propagating downstream:
// nil slices become empty, titles fall back to the URL, and ArchivedAt
// is cleared on items that are not archived.
func (s *AppStorage) Normalize() {
	if s.Items == nil {
		s.Items = []ReadingItem{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	for i := range s.Items {
		item := &s.Items[i]
		if item.Tags == nil {
			item.Tags = []string{}
		}
		if item.Title == "" {
			item.Title = item.URL
		}
		if !item.Archived {
			item.ArchivedAt = nil
		}
	}
}

// ActiveCount returns the number of items not archived yet.
func (s AppStorage) ActiveCount() int {
	count := 0
	for _, item := range s.Items {
		if !item.Archived {
			count++
		}
	}
	return count
}

// HasTag reports whether the item carries the given tag (exact,
// case-sensitive match).
func (item ReadingItem) HasTag(tag string) bool {
	for _, t := range item.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ReferenceTime is the timestamp an item is bucketed by: the archival
// time for archived items, the save time otherwise.
func (item ReadingItem) ReferenceTime() int64 {
	if item.Archived && item.ArchivedAt != nil {
		return *item.ArchivedAt
	}
	return item.DateAdded
}
