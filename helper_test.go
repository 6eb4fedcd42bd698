package findash

// newTestStore returns an empty store backed by an in-memory slot, with a
// clock pinned to the given day so spending windows are reproducible.
func newTestStore(today Date) *Store {
	return &Store{
		storage: NewMemoryStorage(),
		now:     func() Date { return today },
	}
}
