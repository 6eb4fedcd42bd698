package findash

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestFileStorage_LoadMissingSlot(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "findash.json"))
	if _, err := storage.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() on a missing file = %v, want fs.ErrNotExist", err)
	}
}

func TestFileStorage_SaveThenLoad(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "nested", "dir", "findash.json"))
	snap := seedSnapshot(MustParseDate("2025-06-15"))

	if err := storage.Save(snap); err != nil {
		t.Fatal(err)
	}
	got, err := storage.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(snap) {
		t.Errorf("loaded snapshot differs from the saved one")
	}
}

func TestMemoryStorage_LoadMissingSlot(t *testing.T) {
	storage := NewMemoryStorage()
	if _, err := storage.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() on an empty slot = %v, want fs.ErrNotExist", err)
	}
}

func TestMemoryStorage_SaveThenLoad(t *testing.T) {
	storage := NewMemoryStorage()
	snap := seedSnapshot(MustParseDate("2025-06-15"))

	if err := storage.Save(snap); err != nil {
		t.Fatal(err)
	}
	got, err := storage.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(snap) {
		t.Errorf("loaded snapshot differs from the saved one")
	}
}
