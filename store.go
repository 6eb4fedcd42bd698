package findash

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store is the single source of truth for accounts, transactions and budgets.
//
// It owns the three collections, writes every mutation through to its
// Storage, and notifies subscribers after each commit. Mutations never fail:
// unknown ids degrade to silent no-ops and a failing write-through is logged
// and swallowed. Queries recompute from the current state on every call.
//
// A Store expects a single writer; it is not safe for concurrent use.
type Store struct {
	accounts     []Account
	transactions []Transaction
	budgets      []Budget

	storage     Storage
	subscribers []func()

	now func() Date // injectable clock for spending windows
}

// Open loads the store from storage, or seeds it with the fixed sample data
// when no snapshot exists yet. A fresh seed is persisted immediately, so the
// next Open rehydrates instead of reseeding.
func Open(storage Storage) (*Store, error) {
	s := &Store{storage: storage, now: Today}

	snap, err := storage.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		snap = seedSnapshot(Today())
		s.restore(snap)
		s.persist()
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("could not load dashboard snapshot: %w", err)
	}

	s.restore(snap)
	return s, nil
}

func (s *Store) restore(snap *Snapshot) {
	s.accounts = snap.Accounts
	s.transactions = snap.Transactions
	s.budgets = snap.Budgets
}

// Subscribe registers a callback invoked synchronously after each mutation
// commits. Consumers use it to re-render on change.
func (s *Store) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

// commit is the single exit point of every mutation: write-through, then
// notify. Persistence failures are logged, never surfaced.
func (s *Store) commit() {
	s.persist()
	for _, fn := range s.subscribers {
		fn()
	}
}

func (s *Store) persist() {
	snap := &Snapshot{
		Accounts:     s.accounts,
		Transactions: s.transactions,
		Budgets:      s.budgets,
	}
	if err := s.storage.Save(snap); err != nil {
		logrus.WithError(err).Warn("could not persist dashboard snapshot")
	}
}

func newID() string { return uuid.NewString() }

// --- Account mutations ---

// AddAccount appends a new account under a fresh unique id and returns the
// stored record. The input id, if any, is ignored.
func (s *Store) AddAccount(a Account) Account {
	a.ID = newID()
	s.accounts = append(s.accounts, a)
	s.commit()
	return a
}

// UpdateAccount merges the non-nil patch fields over the matching account.
// Unknown ids are a silent no-op.
func (s *Store) UpdateAccount(id string, patch AccountPatch) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			patch.apply(&s.accounts[i])
			s.commit()
			return
		}
	}
}

// DeleteAccount removes the matching account. Unknown ids are a silent
// no-op. Transactions on the account are NOT cascade-deleted; they become
// orphans and stay visible.
func (s *Store) DeleteAccount(id string) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = slices.Delete(s.accounts, i, i+1)
			s.commit()
			return
		}
	}
}

// --- Transaction mutations ---

// AddTransaction appends a new transaction under a fresh unique id and
// returns the stored record. If the referenced account exists, its balance
// increases by the signed amount; if not, the transaction is still stored
// and no balance changes anywhere.
func (s *Store) AddTransaction(t Transaction) Transaction {
	t.ID = newID()
	s.transactions = append(s.transactions, t)
	for i := range s.accounts {
		if s.accounts[i].ID == t.AccountID {
			s.accounts[i].Balance = s.accounts[i].Balance.Add(t.Amount)
			break
		}
	}
	s.commit()
	return t
}

// UpdateTransaction merges the non-nil patch fields over the matching
// transaction. Unknown ids are a silent no-op. No account balance is
// adjusted, even when the amount or the account changes: the balance ledger
// is only maintained on the add path.
func (s *Store) UpdateTransaction(id string, patch TransactionPatch) {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			patch.apply(&s.transactions[i])
			s.commit()
			return
		}
	}
}

// DeleteTransaction removes the matching transaction. Unknown ids are a
// silent no-op. The balance adjustment made when the transaction was added
// is NOT reversed.
func (s *Store) DeleteTransaction(id string) {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = slices.Delete(s.transactions, i, i+1)
			s.commit()
			return
		}
	}
}

// --- Budget mutations ---

// AddBudget appends a new budget under a fresh unique id and returns the
// stored record.
func (s *Store) AddBudget(b Budget) Budget {
	b.ID = newID()
	s.budgets = append(s.budgets, b)
	s.commit()
	return b
}

// UpdateBudget merges the non-nil patch fields over the matching budget.
// Unknown ids are a silent no-op.
func (s *Store) UpdateBudget(id string, patch BudgetPatch) {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			patch.apply(&s.budgets[i])
			s.commit()
			return
		}
	}
}

// DeleteBudget removes the matching budget. Unknown ids are a silent no-op.
func (s *Store) DeleteBudget(id string) {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = slices.Delete(s.budgets, i, i+1)
			s.commit()
			return
		}
	}
}

// --- Queries ---

// Accounts returns the accounts in stored order.
func (s *Store) Accounts() []Account {
	return slices.Clone(s.accounts)
}

// Budgets returns the budgets in stored order.
func (s *Store) Budgets() []Budget {
	return slices.Clone(s.budgets)
}

// Account returns the account with this id, or nil if unknown.
func (s *Store) Account(id string) *Account {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			a := s.accounts[i]
			return &a
		}
	}
	return nil
}

// Transactions returns an iterator over transactions in stored order,
// yielding those accepted by at least one of the filters. With no filters it
// yields everything.
func (s *Store) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, t := range s.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(t) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// TotalBalance returns the sum of all account balances. An empty account
// collection sums to zero.
func (s *Store) TotalBalance() Money {
	var total Money
	for _, a := range s.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// AccountBalance returns the balance of the matching account, or a zero
// Money for an unknown id.
func (s *Store) AccountBalance(id string) Money {
	for _, a := range s.accounts {
		if a.ID == id {
			return a.Balance
		}
	}
	return Money{}
}

// TransactionsByAccount returns all transactions on the account in their
// stored order, with no implicit sort.
func (s *Store) TransactionsByAccount(accountID string) []Transaction {
	var txs []Transaction
	for _, t := range s.Transactions(ByAccount(accountID)) {
		txs = append(txs, t)
	}
	return txs
}

// CategorySpending sums abs(amount) over expense transactions whose category
// matches exactly and whose date falls on or after the window start. The
// window ends at the current day and looks back one week, month or year.
// The store never divides this by a budget limit; that is the view's call.
func (s *Store) CategorySpending(category string, period Period) Money {
	start := period.WindowStart(s.now())
	var total Money
	for _, t := range s.Transactions(ByCategory(category)) {
		if t.Type != Expense || t.Date.Before(start) {
			continue
		}
		total = total.Add(t.Amount.Abs())
	}
	return total
}
