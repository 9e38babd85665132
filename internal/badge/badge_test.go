package badge

import (
	"context"
	"testing"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/store/memory"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected string
	}{
		{name: "zero clears the badge", count: 0, expected: ""},
		{name: "negative treated as zero", count: -3, expected: ""},
		{name: "small count", count: 7, expected: "7"},
		{name: "boundary at 99", count: 99, expected: "99"},
		{name: "capped above 99", count: 100, expected: "99+"},
		{name: "large count", count: 1234, expected: "99+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCount(tt.count)
			if got != tt.expected {
				t.Errorf("FormatCount(%d) = %q, want %q", tt.count, got, tt.expected)
			}
		})
	}
}

func TestUpdaterTracksDocumentChanges(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	doc := domain.EmptyStorage()
	doc.Items = []domain.ReadingItem{
		{ID: "1", Tags: []string{}},
		{ID: "2", Archived: true, Tags: []string{}},
	}
	if err := st.Replace(ctx, doc); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	u := NewUpdater(st, logger.Nop())
	if err := u.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer u.Stop()

	// Startup recompute sees the pre-existing document.
	if got := u.Count(); got != 1 {
		t.Errorf("Count() after start = %d, want 1", got)
	}
	if got := u.Text(); got != "1" {
		t.Errorf("Text() = %q, want %q", got, "1")
	}

	// A write from any surface updates the badge.
	doc.Items = append(doc.Items, domain.ReadingItem{ID: "3", Tags: []string{}})
	if err := st.Replace(ctx, doc); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got := u.Count(); got != 2 {
		t.Errorf("Count() after change = %d, want 2", got)
	}

	// Archiving everything clears the badge text.
	for i := range doc.Items {
		doc.Items[i].Archived = true
	}
	if err := st.Replace(ctx, doc); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got := u.Text(); got != "" {
		t.Errorf("Text() with zero active items = %q, want empty", got)
	}
}

func TestUpdaterStopCancelsSubscription(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	u := NewUpdater(st, logger.Nop())
	if err := u.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	u.Stop()

	doc := domain.EmptyStorage()
	doc.Items = []domain.ReadingItem{{ID: "1", Tags: []string{}}}
	if err := st.Replace(ctx, doc); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if got := u.Count(); got != 0 {
		t.Errorf("Count() after Stop = %d, want stale 0", got)
	}
}
