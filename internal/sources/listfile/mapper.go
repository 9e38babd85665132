package listfile

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/urlinfo"
)

// Mapper converts import-file entries to reading items.
type Mapper struct {
	timeNow func() time.Time
}

// NewMapper creates a new mapper.
func NewMapper() *Mapper {
	return &Mapper{
		timeNow: time.Now,
	}
}

// Map converts a parsed import file into reading items plus the global
// tags to register. Entries without a URL are skipped. Tags are
// normalized; the returned tag list covers both the file-level tags and
// every tag referenced by an entry.
func (m *Mapper) Map(file File) ([]domain.ReadingItem, []string, error) {
	items := make([]domain.ReadingItem, 0, len(file.Items))
	allTags := domain.NormalizeTags(file.Tags)
	seenTags := make(map[string]bool, len(allTags))
	for _, tag := range allTags {
		seenTags[tag] = true
	}

	now := m.timeNow().UnixMilli()

	for _, entry := range file.Items {
		if entry.URL == "" {
			continue
		}

		id, err := gonanoid.New()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate item id: %w", err)
		}

		title := entry.Title
		if title == "" {
			title = entry.URL
		}

		tags := domain.NormalizeTags(entry.Tags)
		for _, tag := range tags {
			if !seenTags[tag] {
				seenTags[tag] = true
				allTags = append(allTags, tag)
			}
		}

		items = append(items, domain.ReadingItem{
			ID:        id,
			URL:       entry.URL,
			Title:     title,
			Favicon:   urlinfo.FaviconURL(entry.URL),
			Domain:    urlinfo.Domain(entry.URL),
			DateAdded: now,
			Archived:  false,
			Tags:      tags,
		})
	}

	return items, allTags, nil
}
