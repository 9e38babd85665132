package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Date group labels for the three relative buckets. Anything older is
// labeled with its month and year, e.g. "January 2025".
const (
	LabelToday     = "Today"
	LabelYesterday = "Yesterday"
	LabelThisWeek  = "This Week"
)

// monthLabelLayout parses and formats "Month Year" group labels.
const monthLabelLayout = "January 2006"

// FilterItems narrows items by an optional tag and an optional free-text
// query. Both filters are conjunctive. The tag must match exactly
// (case-sensitive); the query matches case-insensitively as a substring
// of the title, URL, or domain. An empty query and an empty tag mean no
// filtering.
func FilterItems(items []ReadingItem, query, selectedTag string) []ReadingItem {
	filtered := items

	if selectedTag != "" {
		kept := make([]ReadingItem, 0, len(filtered))
		for _, item := range filtered {
			if item.HasTag(selectedTag) {
				kept = append(kept, item)
			}
		}
		filtered = kept
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		kept := make([]ReadingItem, 0, len(filtered))
		for _, item := range filtered {
			if strings.Contains(strings.ToLower(item.Title), q) ||
				strings.Contains(strings.ToLower(item.URL), q) ||
				strings.Contains(strings.ToLower(item.Domain), q) {
				kept = append(kept, item)
			}
		}
		filtered = kept
	}

	return filtered
}

// DateGroup is one chronological bucket of items.
type DateGroup struct {
	Label string        `json:"label"`
	Items []ReadingItem `json:"items"`
}

// DateGroupLabel computes the bucket label for a timestamp (epoch
// milliseconds) relative to now. First match wins: Today, Yesterday,
// This Week (start of the day 6 days back), then "Month Year".
func DateGroupLabel(timestamp int64, now time.Time) string {
	ts := time.UnixMilli(timestamp).In(now.Location())

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	weekStart := todayStart.AddDate(0, 0, -6)

	switch {
	case !ts.Before(todayStart):
		return LabelToday
	case !ts.Before(yesterdayStart):
		return LabelYesterday
	case !ts.Before(weekStart):
		return LabelThisWeek
	}

	return fmt.Sprintf("%s %d", ts.Month(), ts.Year())
}

// GroupByDate buckets items by their reference timestamp (archival time
// for archived items, save time otherwise) into ordered groups:
// Today, Yesterday, This Week, then month/year labels newest first.
// Within a group, items keep their relative input order. Empty groups
// are never emitted.
func GroupByDate(items []ReadingItem, now time.Time) []DateGroup {
	byLabel := make(map[string]int)
	groups := make([]DateGroup, 0)

	for _, item := range items {
		label := DateGroupLabel(item.ReferenceTime(), now)
		idx, ok := byLabel[label]
		if !ok {
			idx = len(groups)
			byLabel[label] = idx
			groups = append(groups, DateGroup{Label: label})
		}
		groups[idx].Items = append(groups[idx].Items, item.clone())
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groupRank(groups[i].Label) < groupRank(groups[j].Label)
	})

	return groups
}

// groupRank maps a label to its sort position: the three named buckets
// first, then month labels newest first, then anything unparseable.
func groupRank(label string) int64 {
	switch label {
	case LabelToday:
		return 0
	case LabelYesterday:
		return 1
	case LabelThisWeek:
		return 2
	}
	if ts, err := time.Parse(monthLabelLayout, label); err == nil {
		// Offset into a high positive band so months rank after the
		// named buckets; subtracting the unix time puts newer months
		// before older ones.
		return 1<<62 - ts.Unix()
	}
	return math.MaxInt64
}

func (item ReadingItem) clone() ReadingItem {
	out := item
	if item.Tags != nil {
		out.Tags = append([]string(nil), item.Tags...)
	}
	if item.ArchivedAt != nil {
		at := *item.ArchivedAt
		out.ArchivedAt = &at
	}
	return out
}
