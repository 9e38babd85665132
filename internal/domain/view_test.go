package domain

import (
	"testing"
	"time"
)

func testItems() []ReadingItem {
	return []ReadingItem{
		{
			ID:     "1",
			URL:    "https://doc.rust-lang.org/book/",
			Title:  "Rust Book",
			Domain: "doc.rust-lang.org",
			Tags:   []string{"lang"},
		},
		{
			ID:     "2",
			URL:    "https://go.dev/doc/effective_go",
			Title:  "Go Guide",
			Domain: "go.dev",
			Tags:   []string{"lang", "tooling"},
		},
	}
}

func TestFilterItems(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		selectedTag string
		expectedIDs []string
	}{
		{
			name:        "no filters",
			query:       "",
			selectedTag: "",
			expectedIDs: []string{"1", "2"},
		},
		{
			name:        "query and tag are conjunctive",
			query:       "go",
			selectedTag: "lang",
			expectedIDs: []string{"2"},
		},
		{
			name:        "query only",
			query:       "go",
			selectedTag: "",
			expectedIDs: []string{"2"},
		},
		{
			name:        "tag only",
			query:       "",
			selectedTag: "tooling",
			expectedIDs: []string{"2"},
		},
		{
			name:        "query is trimmed and case-insensitive",
			query:       "  RUST  ",
			selectedTag: "",
			expectedIDs: []string{"1"},
		},
		{
			name:        "query matches url substring",
			query:       "effective",
			selectedTag: "",
			expectedIDs: []string{"2"},
		},
		{
			name:        "tag match is case-sensitive",
			query:       "",
			selectedTag: "Lang",
			expectedIDs: []string{},
		},
		{
			name:        "blank query means no text filter",
			query:       "   ",
			selectedTag: "lang",
			expectedIDs: []string{"1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterItems(testItems(), tt.query, tt.selectedTag)
			if len(got) != len(tt.expectedIDs) {
				t.Fatalf("FilterItems() returned %d items, want %d", len(got), len(tt.expectedIDs))
			}
			for i, item := range got {
				if item.ID != tt.expectedIDs[i] {
					t.Errorf("item[%d].ID = %s, want %s", i, item.ID, tt.expectedIDs[i])
				}
			}
		})
	}
}

func TestDateGroupLabel(t *testing.T) {
	// Saturday, March 15, 2025 at noon UTC.
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	todayStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timestamp int64
		expected  string
	}{
		{
			name:      "exactly at start of today",
			timestamp: todayStart.UnixMilli(),
			expected:  LabelToday,
		},
		{
			name:      "one millisecond before today",
			timestamp: todayStart.UnixMilli() - 1,
			expected:  LabelYesterday,
		},
		{
			name:      "start of yesterday",
			timestamp: todayStart.AddDate(0, 0, -1).UnixMilli(),
			expected:  LabelYesterday,
		},
		{
			name:      "six days back is still this week",
			timestamp: todayStart.AddDate(0, 0, -6).UnixMilli(),
			expected:  LabelThisWeek,
		},
		{
			name:      "eight days ago falls into its month",
			timestamp: todayStart.AddDate(0, 0, -8).UnixMilli(),
			expected:  "March 2025",
		},
		{
			name:      "older month",
			timestamp: time.Date(2025, time.January, 5, 10, 0, 0, 0, time.UTC).UnixMilli(),
			expected:  "January 2025",
		},
		{
			name:      "now itself",
			timestamp: now.UnixMilli(),
			expected:  LabelToday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateGroupLabel(tt.timestamp, now)
			if got != tt.expected {
				t.Errorf("DateGroupLabel(%d) = %q, want %q", tt.timestamp, got, tt.expected)
			}
		})
	}
}

func TestGroupByDateOrdering(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	todayStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	ts := func(t time.Time) int64 { return t.UnixMilli() }
	items := []ReadingItem{
		{ID: "jan", DateAdded: ts(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))},
		{ID: "today", DateAdded: ts(todayStart.Add(2 * time.Hour))},
		{ID: "feb", DateAdded: ts(time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC))},
		{ID: "week", DateAdded: ts(todayStart.AddDate(0, 0, -4))},
		{ID: "yesterday", DateAdded: ts(todayStart.AddDate(0, 0, -1).Add(5 * time.Hour))},
	}

	groups := GroupByDate(items, now)

	expectedLabels := []string{LabelToday, LabelYesterday, LabelThisWeek, "February 2025", "January 2025"}

	if len(groups) != len(expectedLabels) {
		t.Fatalf("GroupByDate() returned %d groups, want %d", len(groups), len(expectedLabels))
	}
	for i, label := range expectedLabels {
		if groups[i].Label != label {
			t.Errorf("groups[%d].Label = %q, want %q", i, groups[i].Label, label)
		}
	}
}

func TestGroupByDateOmitsEmptyGroups(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	todayStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	items := []ReadingItem{
		{ID: "a", DateAdded: todayStart.Add(time.Hour).UnixMilli()},
	}

	groups := GroupByDate(items, now)
	for _, g := range groups {
		if g.Label == LabelYesterday {
			t.Error("no items fall in Yesterday, group should not exist")
		}
		if len(g.Items) == 0 {
			t.Errorf("group %q emitted with zero items", g.Label)
		}
	}
	if len(groups) != 1 || groups[0].Label != LabelToday {
		t.Fatalf("expected single Today group, got %+v", groups)
	}
}

func TestGroupByDateKeepsInputOrderWithinGroup(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	todayStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	items := []ReadingItem{
		{ID: "first", DateAdded: todayStart.Add(3 * time.Hour).UnixMilli()},
		{ID: "second", DateAdded: todayStart.Add(9 * time.Hour).UnixMilli()},
		{ID: "third", DateAdded: todayStart.Add(time.Hour).UnixMilli()},
	}

	groups := GroupByDate(items, now)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	expected := []string{"first", "second", "third"}
	for i, id := range expected {
		if groups[0].Items[i].ID != id {
			t.Errorf("items[%d].ID = %s, want %s", i, groups[0].Items[i].ID, id)
		}
	}
}

func TestGroupByDateUsesArchivalTimeForArchivedItems(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	todayStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	archivedAt := todayStart.Add(time.Hour).UnixMilli()
	items := []ReadingItem{
		{
			ID:         "old-but-archived-today",
			DateAdded:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
			Archived:   true,
			ArchivedAt: &archivedAt,
		},
	}

	groups := GroupByDate(items, now)
	if len(groups) != 1 || groups[0].Label != LabelToday {
		t.Fatalf("archived item should group by archival time, got %+v", groups)
	}
}
