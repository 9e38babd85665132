package domain

import (
	"regexp"
	"sort"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	invalidTagRune = regexp.MustCompile(`[^a-z0-9-]`)
)

// NormalizeTag canonicalizes raw user input into a tag: lower-cased,
// trimmed, whitespace runs collapsed to single hyphens, and anything
// outside [a-z0-9-] stripped. An empty result means the input carried
// no usable characters and must be rejected by the caller.
func NormalizeTag(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	tag = whitespaceRuns.ReplaceAllString(tag, "-")
	return invalidTagRune.ReplaceAllString(tag, "")
}

// NormalizeTags normalizes a batch of raw tags, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		tag := NormalizeTag(r)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// TagSet is a sorted, duplicate-free collection of tags. It backs the
// globally registered tag list, which the wire format stores as a plain
// sequence.
type TagSet struct {
	tags []string
}

// NewTagSet builds a set from an existing sequence, deduplicating and
// sorting it.
func NewTagSet(tags []string) *TagSet {
	set := &TagSet{tags: make([]string, 0, len(tags))}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		set.tags = append(set.tags, tag)
	}
	sort.Strings(set.tags)
	return set
}

// Add inserts a tag, keeping the set sorted. It reports whether the
// tag was actually inserted.
func (s *TagSet) Add(tag string) bool {
	i := sort.SearchStrings(s.tags, tag)
	if i < len(s.tags) && s.tags[i] == tag {
		return false
	}
	s.tags = append(s.tags, "")
	copy(s.tags[i+1:], s.tags[i:])
	s.tags[i] = tag
	return true
}

// Has reports whether the tag is in the set.
func (s *TagSet) Has(tag string) bool {
	i := sort.SearchStrings(s.tags, tag)
	return i < len(s.tags) && s.tags[i] == tag
}

// List returns the tags sorted ascending.
func (s *TagSet) List() []string {
	return append([]string(nil), s.tags...)
}
