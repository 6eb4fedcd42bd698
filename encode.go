package findash

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is the persisted form of the store: exactly three collections,
// never the operations. It is what lives under the durable slot.
type Snapshot struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
}

// Equal reports whether two snapshots hold the same records in the same order.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if len(s.Accounts) != len(o.Accounts) ||
		len(s.Transactions) != len(o.Transactions) ||
		len(s.Budgets) != len(o.Budgets) {
		return false
	}
	for i, a := range s.Accounts {
		b := o.Accounts[i]
		if a.ID != b.ID || a.Name != b.Name || a.Type != b.Type || !a.Balance.Equal(b.Balance) {
			return false
		}
	}
	for i, a := range s.Transactions {
		b := o.Transactions[i]
		if a.ID != b.ID || a.AccountID != b.AccountID || !a.Amount.Equal(b.Amount) ||
			a.Description != b.Description || a.Category != b.Category ||
			a.Date != b.Date || a.Type != b.Type {
			return false
		}
	}
	for i, a := range s.Budgets {
		b := o.Budgets[i]
		if a.ID != b.ID || a.Category != b.Category || !a.Limit.Equal(b.Limit) ||
			!a.Spent.Equal(b.Spent) || a.Period != b.Period {
			return false
		}
	}
	return true
}

// EncodeSnapshot writes the snapshot as a single JSON object with exactly
// three keys, in a canonical key order so rewrites stay diffable.
func EncodeSnapshot(w io.Writer, snap *Snapshot) error {
	decimal.MarshalJSONWithoutQuotes = true

	var obj jsonObjectWriter
	// Empty collections are persisted as [], not null: a rehydrated store
	// must look exactly like the one that was saved.
	obj.Append("accounts", nonNil(snap.Accounts))
	obj.Append("transactions", nonNil(snap.Transactions))
	obj.Append("budgets", nonNil(snap.Budgets))

	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// DecodeSnapshot reads a snapshot previously written by EncodeSnapshot.
// Dates come back from their string form here; a malformed date aborts the
// load with an error rather than silently dropping records.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return &snap, nil
}
