package findash

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType is a typed string naming the movement kind. The sign of the
// amount is a caller convention (negative for expenses), never validated.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// ParseTransactionType parses a string into one of the known transaction types.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense, Transfer:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single dated financial movement tied to one account and
// one category.
//
// AccountID may reference an account that no longer exists (or never did):
// orphaned transactions are kept and rendered with an absent account name.
type Transaction struct {
	ID          string          // opaque unique id, generated at creation
	AccountID   string          // references an Account by id, unenforced
	Amount      Money           // signed; currency usually inherited from the account
	Description string          // free text
	Category    string          // grouping key matched against budgets by exact equality
	Date        Date            // calendar date of the movement
	Type        TransactionType // income | expense | transfer, unvalidated
}

// MarshalJSON writes the transaction with a stable key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("accountId", t.AccountID)
	w.Append("amount", t.Amount)
	w.Optional("currency", t.Amount.Currency())
	w.Append("description", t.Description)
	w.Append("category", t.Category)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the persisted form where amount and currency are
// sibling keys and the date is a string.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string          `json:"id"`
		AccountID   string          `json:"accountId"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Date        Date            `json:"date"`
		Type        TransactionType `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.AccountID = temp.AccountID
	t.Amount = M(temp.Amount, temp.Currency)
	t.Description = temp.Description
	t.Category = temp.Category
	t.Date = temp.Date
	t.Type = temp.Type
	return nil
}

// TransactionPatch is a partial update: nil fields are left untouched.
// Patching the amount or the account never rebalances any account.
type TransactionPatch struct {
	AccountID   *string
	Amount      *Money
	Description *string
	Category    *string
	Date        *Date
	Type        *TransactionType
}

func (p TransactionPatch) apply(t *Transaction) {
	if p.AccountID != nil {
		t.AccountID = *p.AccountID
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
}

// Transaction filters, composable with [Store.Transactions].

// AcceptAll accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByAccount returns a predicate that filters transactions by account id.
func ByAccount(accountID string) func(Transaction) bool {
	return func(t Transaction) bool { return t.AccountID == accountID }
}

// ByCategory returns a predicate that filters transactions by exact category.
func ByCategory(category string) func(Transaction) bool {
	return func(t Transaction) bool { return t.Category == category }
}

// ByType returns a predicate that filters transactions by type.
func ByType(typ TransactionType) func(Transaction) bool {
	return func(t Transaction) bool { return t.Type == typ }
}
