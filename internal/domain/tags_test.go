package domain

import "testing"

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mixed case with punctuation and padding",
			input:    "  My Tag!! ",
			expected: "my-tag",
		},
		{
			name:     "only punctuation rejects to empty",
			input:    "!!!",
			expected: "",
		},
		{
			name:     "already normalized",
			input:    "golang",
			expected: "golang",
		},
		{
			name:     "whitespace run collapses to one hyphen",
			input:    "deep    dive",
			expected: "deep-dive",
		},
		{
			name:     "digits and hyphens survive",
			input:    "top-10",
			expected: "top-10",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTag(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeTag(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Go ", "go", "!!!", "Tooling"})
	expected := []string{"go", "tooling"}
	if len(got) != len(expected) {
		t.Fatalf("NormalizeTags() = %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("tags[%d] = %q, want %q", i, got[i], expected[i])
		}
	}
}

func TestTagSetAdd(t *testing.T) {
	set := NewTagSet([]string{"zig", "go"})

	if !set.Add("rust") {
		t.Error("Add(rust) should insert into a set without it")
	}
	if set.Add("rust") {
		t.Error("Add(rust) twice should report no insertion")
	}

	expected := []string{"go", "rust", "zig"}
	got := set.List()
	if len(got) != len(expected) {
		t.Fatalf("List() = %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("List()[%d] = %q, want %q (set must stay sorted)", i, got[i], expected[i])
		}
	}
}

func TestNewTagSetDeduplicates(t *testing.T) {
	set := NewTagSet([]string{"b", "a", "b", "", "a"})
	got := set.List()
	expected := []string{"a", "b"}
	if len(got) != len(expected) {
		t.Fatalf("List() = %v, want %v", got, expected)
	}
	if !set.Has("a") || set.Has("c") {
		t.Error("Has() gave wrong membership answers")
	}
}
