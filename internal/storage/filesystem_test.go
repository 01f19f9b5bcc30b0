package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAndWriteStream(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}

	key, err := store.Write(context.Background(), "task-1/clip.mp4", []byte("video-bytes"))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if key != "task-1/clip.mp4" {
		t.Fatalf("key = %s", key)
	}
	data, err := os.ReadFile(filepath.Join(store.BasePath(), "task-1", "clip.mp4"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "video-bytes" {
		t.Fatalf("content = %q", data)
	}

	key, err = store.WriteStream(context.Background(), "task-2/clip.mp4", strings.NewReader("streamed"))
	if err != nil {
		t.Fatalf("WriteStream error: %v", err)
	}
	data, err = os.ReadFile(filepath.Join(store.BasePath(), filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "streamed" {
		t.Fatalf("content = %q", data)
	}
}

func TestSanitizeKeyRejectsTraversal(t *testing.T) {
	tests := []string{"", "   ", "../escape.mp4", "a/../../escape.mp4"}
	for _, key := range tests {
		if _, err := sanitizeKey(key); err == nil {
			t.Fatalf("sanitizeKey(%q) accepted an invalid key", key)
		}
	}
	got, err := sanitizeKey("/task-1//clip.mp4")
	if err != nil {
		t.Fatalf("sanitizeKey error: %v", err)
	}
	if got != "task-1/clip.mp4" {
		t.Fatalf("sanitized = %s", got)
	}
}
