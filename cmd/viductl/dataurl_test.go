package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImageReferencePassesURLsThrough(t *testing.T) {
	for _, ref := range []string{
		"https://example.com/ref.png",
		"http://example.com/ref.jpg",
		"data:image/png;base64,AAAA",
	} {
		got, err := imageReference(ref)
		if err != nil {
			t.Fatalf("imageReference(%q) error: %v", ref, err)
		}
		if got != ref {
			t.Fatalf("reference mangled: %s", got)
		}
	}
}

func TestImageReferenceEmbedsLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.png")
	if err := os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := imageReference(path)
	if err != nil {
		t.Fatalf("imageReference error: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("unexpected data url: %s", got)
	}
}

func TestImageReferenceRejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.tiff")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := imageReference(path); err == nil {
		t.Fatal("expected error for unsupported image type")
	}
}
