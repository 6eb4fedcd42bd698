package findash

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Budget is a planned spending ceiling for a category.
//
// Spent is stored and written by create/update, but views recompute the
// actual spend live from transactions instead of reading it. Both paths are
// kept to reproduce the persisted data shape faithfully.
type Budget struct {
	ID       string // opaque unique id, generated at creation
	Category string // matched against Transaction.Category by exact equality
	Limit    Money  // planned ceiling, positive by convention
	Spent    Money  // stored, not authoritative
	Period   Period // advisory label only, does not affect the spending window
}

// MarshalJSON writes the budget with a stable key order.
func (b Budget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", b.ID)
	w.Append("category", b.Category)
	w.Append("limit", b.Limit)
	w.Append("spent", b.Spent)
	w.Optional("currency", b.Limit.Currency())
	w.Append("period", b.Period)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the persisted form where the amounts share one
// currency key.
func (b *Budget) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string          `json:"id"`
		Category string          `json:"category"`
		Limit    decimal.Decimal `json:"limit"`
		Spent    decimal.Decimal `json:"spent"`
		Currency string          `json:"currency"`
		Period   Period          `json:"period"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	b.ID = temp.ID
	b.Category = temp.Category
	b.Limit = M(temp.Limit, temp.Currency)
	b.Spent = M(temp.Spent, temp.Currency)
	b.Period = temp.Period
	return nil
}

// BudgetPatch is a partial update: nil fields are left untouched.
type BudgetPatch struct {
	Category *string
	Limit    *Money
	Spent    *Money
	Period   *Period
}

func (p BudgetPatch) apply(b *Budget) {
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Limit != nil {
		b.Limit = *p.Limit
	}
	if p.Spent != nil {
		b.Spent = *p.Spent
	}
	if p.Period != nil {
		b.Period = *p.Period
	}
}
