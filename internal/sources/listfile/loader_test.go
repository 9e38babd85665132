package listfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reading-list.yaml")

	content := `items:
  - url: https://go.dev/blog/error-handling
    title: Error handling and Go
    tags: [go, errors]
  - url: https://example.com/untitled
tags:
  - reference
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	loader := NewLoader(path)
	file, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Items) != 2 {
		t.Fatalf("len(file.Items) = %d, want 2", len(file.Items))
	}
	if file.Items[0].URL != "https://go.dev/blog/error-handling" {
		t.Errorf("Items[0].URL = %q", file.Items[0].URL)
	}
	if file.Items[0].Title != "Error handling and Go" {
		t.Errorf("Items[0].Title = %q", file.Items[0].Title)
	}
	if len(file.Items[0].Tags) != 2 || file.Items[0].Tags[0] != "go" || file.Items[0].Tags[1] != "errors" {
		t.Errorf("Items[0].Tags = %v, want [go errors]", file.Items[0].Tags)
	}
	if file.Items[1].Title != "" {
		t.Errorf("Items[1].Title = %q, want empty", file.Items[1].Title)
	}
	if len(file.Tags) != 1 || file.Tags[0] != "reference" {
		t.Errorf("file.Tags = %v, want [reference]", file.Tags)
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if _, err := loader.Load(); err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("items: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	loader := NewLoader(path)
	if _, err := loader.Load(); err == nil {
		t.Fatal("Load() expected error for invalid yaml, got nil")
	}
}
