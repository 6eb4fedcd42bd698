package findash

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// snapshotKey is the fixed name of the durable slot holding the dashboard
// data. MemoryStorage uses it literally; FileStorage uses a file path instead.
const snapshotKey = "findash.v1"

// Storage is a durable slot for exactly one snapshot.
//
// Load returns fs.ErrNotExist (possibly wrapped) when the slot has never
// been written; the store seeds itself in that case.
type Storage interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// FileStorage persists the snapshot as a single JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage returns a FileStorage writing to the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads and decodes the snapshot file.
func (s *FileStorage) Load() (*Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot file %q: %w", s.path, err)
	}
	return snap, nil
}

// Save encodes the snapshot and writes it to the file, creating parent
// directories as needed.
func (s *FileStorage) Save(snap *Snapshot) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for snapshot %q: %w", s.path, err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("could not open snapshot file %q for writing: %w", s.path, err)
	}
	defer f.Close()

	return EncodeSnapshot(f, snap)
}

// MemoryStorage keeps encoded snapshots in a key-value map, mirroring the
// local-storage slot of a browser. It round-trips through the encoder so
// tests exercise the same serialization as FileStorage.
type MemoryStorage struct {
	slots map[string][]byte
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[string][]byte)}
}

// Load decodes the snapshot stored under the fixed key.
func (m *MemoryStorage) Load() (*Snapshot, error) {
	data, ok := m.slots[snapshotKey]
	if !ok {
		return nil, fmt.Errorf("slot %q: %w", snapshotKey, fs.ErrNotExist)
	}
	return DecodeSnapshot(bytes.NewReader(data))
}

// Save encodes the snapshot under the fixed key.
func (m *MemoryStorage) Save(snap *Snapshot) error {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, snap); err != nil {
		return err
	}
	m.slots[snapshotKey] = buf.Bytes()
	return nil
}

var _ Storage = (*FileStorage)(nil)
var _ Storage = (*MemoryStorage)(nil)
