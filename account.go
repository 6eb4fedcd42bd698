package findash

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType is a typed string naming one of the four account kinds.
// The store accepts any value as-is; parsing is a courtesy for the CLI.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Investment AccountType = "investment"
	Credit     AccountType = "credit"
)

// ParseAccountType parses a string into one of the known account types.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Checking, Savings, Investment, Credit:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// Account is a named holder of a currency balance.
//
// The balance is mutated as a side effect of adding transactions on the
// account; editing or deleting a transaction leaves it untouched.
type Account struct {
	ID      string      // opaque unique id, generated at creation
	Name    string      // free text
	Type    AccountType // one of the four kinds, unvalidated
	Balance Money       // signed, carries the account currency
}

// MarshalJSON writes the account with a stable key order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("balance", a.Balance)
	w.Optional("currency", a.Balance.Currency())
	return w.MarshalJSON()
}

// UnmarshalJSON reads the persisted form where balance and currency are
// sibling keys.
func (a *Account) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Type     AccountType     `json:"type"`
		Balance  decimal.Decimal `json:"balance"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	a.ID = temp.ID
	a.Name = temp.Name
	a.Type = temp.Type
	a.Balance = M(temp.Balance, temp.Currency)
	return nil
}

// AccountPatch is a partial update: nil fields are left untouched.
type AccountPatch struct {
	Name    *string
	Type    *AccountType
	Balance *Money
}

// apply merges the non-nil patch fields over the account.
func (p AccountPatch) apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
}
