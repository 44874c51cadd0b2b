package kv

import (
	"testing"

	"github.com/spf13/afero"
)

func TestFileStore(t *testing.T) {
	store := NewFileStore(afero.NewMemMapFs(), "data/store.json")

	if _, ok := store.Get("users"); ok {
		t.Error("Get() found a value in an empty store")
	}

	if err := store.Set("users", []byte(`["a"]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("current_user", []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	raw, ok := store.Get("users")
	if !ok || string(raw) != `["a"]` {
		t.Errorf("Get() = %s, %v; want [\"a\"], true", raw, ok)
	}

	if err := store.Delete("users"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok := store.Get("users"); ok {
		t.Error("Get() found a deleted value")
	}
	// other keys survive a delete
	if _, ok := store.Get("current_user"); !ok {
		t.Error("Delete() dropped an unrelated key")
	}

	// deleting a missing key is a no-op
	if err := store.Delete("users"); err != nil {
		t.Errorf("Delete() failed on missing key: %v", err)
	}
}

func TestFileStore_sharedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewFileStore(fs, "store.json")
	reader := NewFileStore(fs, "store.json")

	if err := writer.Set("users", []byte(`[]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, ok := reader.Get("users"); !ok {
		t.Error("Get() missed a value written through another store")
	}
}

func TestFileStore_corruptDocumentFailsOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "store.json", []byte("lol{"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	store := NewFileStore(fs, "store.json")

	if _, ok := store.Get("users"); ok {
		t.Error("Get() found a value in a corrupt store")
	}
	// a write resets the document
	if err := store.Set("users", []byte(`[]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, ok := store.Get("users"); !ok {
		t.Error("Get() missed the value written over the corrupt document")
	}
}
