package findash

import (
	"reflect"
	"testing"
)

func TestStore_TotalBalance(t *testing.T) {
	testCases := []struct {
		name     string
		balances []float64
		want     Money
	}{
		{
			name:     "empty store sums to zero",
			balances: nil,
			want:     Money{},
		},
		{
			name:     "single account",
			balances: []float64{100.50},
			want:     M(100.50, "USD"),
		},
		{
			name:     "mixed signs",
			balances: []float64{5420.50, 12800.00, -642.30},
			want:     M(17578.20, "USD"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(MustParseDate("2025-06-15"))
			for _, b := range tc.balances {
				s.AddAccount(Account{Name: "acc", Type: Checking, Balance: M(b, "USD")})
			}
			if got := s.TotalBalance(); !got.Equal(tc.want) {
				t.Errorf("TotalBalance() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStore_AddAccount_GeneratesUniqueIDs(t *testing.T) {
	s := newTestStore(Today())
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		a := s.AddAccount(Account{Name: "acc", Balance: M(1, "USD")})
		if a.ID == "" {
			t.Fatal("AddAccount returned an empty id")
		}
		if seen[a.ID] {
			t.Fatalf("AddAccount reused id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestStore_AddTransaction_AdjustsAccountBalance(t *testing.T) {
	s := newTestStore(Today())
	a := s.AddAccount(Account{Name: "checking", Type: Checking, Balance: M(1000.00, "USD")})

	s.AddTransaction(Transaction{
		AccountID: a.ID,
		Amount:    M(-89.50, ""),
		Category:  "Food & Dining",
		Date:      Today(),
		Type:      Expense,
	})

	if got, want := s.AccountBalance(a.ID), M(910.50, "USD"); !got.Equal(want) {
		t.Errorf("AccountBalance(%q) = %v, want %v", a.ID, got, want)
	}
}

func TestStore_AddTransaction_OrphanAccount(t *testing.T) {
	s := newTestStore(Today())
	a := s.AddAccount(Account{Name: "checking", Balance: M(1000.00, "USD")})

	// The referenced account does not exist: the transaction is still added
	// and no balance changes anywhere.
	tx := s.AddTransaction(Transaction{
		AccountID: "no-such-account",
		Amount:    M(-50.00, ""),
		Date:      Today(),
		Type:      Expense,
	})

	var count int
	for range s.Transactions(AcceptAll) {
		count++
	}
	if count != 1 {
		t.Fatalf("transaction count = %d, want 1", count)
	}
	if tx.ID == "" {
		t.Error("orphan transaction was not assigned an id")
	}
	if got, want := s.AccountBalance(a.ID), M(1000.00, "USD"); !got.Equal(want) {
		t.Errorf("AccountBalance(%q) = %v, want %v", a.ID, got, want)
	}
}

func TestStore_DeleteTransaction_DoesNotRebalance(t *testing.T) {
	s := newTestStore(Today())
	a := s.AddAccount(Account{Name: "checking", Balance: M(1000.00, "USD")})
	tx := s.AddTransaction(Transaction{
		AccountID: a.ID,
		Amount:    M(-100.00, ""),
		Date:      Today(),
		Type:      Expense,
	})

	s.DeleteTransaction(tx.ID)

	if got := s.TransactionsByAccount(a.ID); len(got) != 0 {
		t.Errorf("TransactionsByAccount(%q) = %v, want empty", a.ID, got)
	}
	// The earlier balance adjustment is NOT reversed. This documents the
	// actual contract; do not "fix" this assertion to the intuitive value.
	if got, want := s.AccountBalance(a.ID), M(900.00, "USD"); !got.Equal(want) {
		t.Errorf("AccountBalance(%q) = %v, want %v (unchanged by delete)", a.ID, got, want)
	}
}

func TestStore_UpdateTransaction_DoesNotRebalance(t *testing.T) {
	s := newTestStore(Today())
	a := s.AddAccount(Account{Name: "checking", Balance: M(1000.00, "USD")})
	tx := s.AddTransaction(Transaction{
		AccountID: a.ID,
		Amount:    M(-100.00, ""),
		Date:      Today(),
		Type:      Expense,
	})

	amount := M(-500.00, "")
	s.UpdateTransaction(tx.ID, TransactionPatch{Amount: &amount})

	got := s.TransactionsByAccount(a.ID)
	if len(got) != 1 || !got[0].Amount.Equal(amount) {
		t.Fatalf("updated transaction = %v, want amount %v", got, amount)
	}
	if got, want := s.AccountBalance(a.ID), M(900.00, "USD"); !got.Equal(want) {
		t.Errorf("AccountBalance(%q) = %v, want %v (unchanged by update)", a.ID, got, want)
	}
}

func TestStore_MutationsOnUnknownIDsAreSilentNoOps(t *testing.T) {
	s := newTestStore(Today())
	a := s.AddAccount(Account{Name: "checking", Balance: M(1000.00, "USD")})

	name := "other"
	s.UpdateAccount("missing", AccountPatch{Name: &name})
	s.DeleteAccount("missing")
	s.UpdateTransaction("missing", TransactionPatch{})
	s.DeleteTransaction("missing")
	s.UpdateBudget("missing", BudgetPatch{})
	s.DeleteBudget("missing")

	accounts := s.Accounts()
	if len(accounts) != 1 || accounts[0].Name != "checking" {
		t.Errorf("accounts after no-op mutations = %v, want the original one", accounts)
	}
	if got, want := s.AccountBalance(a.ID), M(1000.00, "USD"); !got.Equal(want) {
		t.Errorf("AccountBalance(%q) = %v, want %v", a.ID, got, want)
	}
}

func TestStore_DeleteAccount_DoesNotCascade(t *testing.T) {
	s := newTestStore(Today())
	a := s.AddAccount(Account{Name: "checking", Balance: M(100.00, "USD")})
	tx := s.AddTransaction(Transaction{AccountID: a.ID, Amount: M(-10.00, ""), Date: Today(), Type: Expense})

	s.DeleteAccount(a.ID)

	if s.Account(a.ID) != nil {
		t.Fatalf("account %q still present after delete", a.ID)
	}
	orphans := s.TransactionsByAccount(a.ID)
	if len(orphans) != 1 || orphans[0].ID != tx.ID {
		t.Errorf("TransactionsByAccount(%q) = %v, want the orphaned transaction", a.ID, orphans)
	}
	if got := s.AccountBalance(a.ID); !got.Equal(Money{}) {
		t.Errorf("AccountBalance(%q) = %v, want zero for unknown id", a.ID, got)
	}
}

func TestStore_TransactionsByAccount_KeepsStoredOrder(t *testing.T) {
	s := newTestStore(Today())
	a := s.AddAccount(Account{Name: "checking", Balance: M(0, "USD")})

	// Deliberately out of date order: the query must not sort.
	tx1 := s.AddTransaction(Transaction{AccountID: a.ID, Amount: M(-1, ""), Date: Today(), Type: Expense})
	tx2 := s.AddTransaction(Transaction{AccountID: a.ID, Amount: M(-2, ""), Date: Today().Add(-30), Type: Expense})
	s.AddTransaction(Transaction{AccountID: "other", Amount: M(-3, ""), Date: Today(), Type: Expense})

	got := s.TransactionsByAccount(a.ID)
	gotIDs := []string{}
	for _, tx := range got {
		gotIDs = append(gotIDs, tx.ID)
	}
	if want := []string{tx1.ID, tx2.ID}; !reflect.DeepEqual(gotIDs, want) {
		t.Errorf("TransactionsByAccount(%q) ids = %v, want %v", a.ID, gotIDs, want)
	}
}

func TestStore_CategorySpending(t *testing.T) {
	today := MustParseDate("2025-06-15")

	addExpense := func(s *Store, category string, amount float64, day Date) {
		s.AddTransaction(Transaction{AccountID: "1", Amount: M(amount, ""), Category: category, Date: day, Type: Expense})
	}

	testCases := []struct {
		name     string
		fill     func(s *Store)
		category string
		period   Period
		want     Money
	}{
		{
			name: "week window includes day seven and excludes day eight",
			fill: func(s *Store) {
				addExpense(s, "Food & Dining", -20.00, today.Add(-7))
				addExpense(s, "Food & Dining", -50.00, today.Add(-8))
			},
			category: "Food & Dining",
			period:   Weekly,
			want:     M(20.00, ""),
		},
		{
			name: "amounts are summed as absolute values",
			fill: func(s *Store) {
				addExpense(s, "Food & Dining", -12.50, today)
				addExpense(s, "Food & Dining", -7.50, today.Add(-1))
			},
			category: "Food & Dining",
			period:   Weekly,
			want:     M(20.00, ""),
		},
		{
			name: "only expenses count",
			fill: func(s *Store) {
				addExpense(s, "Food & Dining", -30.00, today)
				s.AddTransaction(Transaction{AccountID: "1", Amount: M(100.00, ""), Category: "Food & Dining", Date: today, Type: Income})
			},
			category: "Food & Dining",
			period:   Monthly,
			want:     M(30.00, ""),
		},
		{
			name: "category match is exact",
			fill: func(s *Store) {
				addExpense(s, "Food & Dining", -30.00, today)
				addExpense(s, "food & dining", -99.00, today)
			},
			category: "Food & Dining",
			period:   Monthly,
			want:     M(30.00, ""),
		},
		{
			name: "month window is a calendar month",
			fill: func(s *Store) {
				addExpense(s, "Transport", -10.00, today.AddMonth(-1))         // on the boundary, included
				addExpense(s, "Transport", -99.00, today.AddMonth(-1).Add(-1)) // just outside
			},
			category: "Transport",
			period:   Monthly,
			want:     M(10.00, ""),
		},
		{
			name: "year window is a calendar year",
			fill: func(s *Store) {
				addExpense(s, "Transport", -10.00, today.AddYear(-1))
				addExpense(s, "Transport", -99.00, today.AddYear(-1).Add(-1))
			},
			category: "Transport",
			period:   Yearly,
			want:     M(10.00, ""),
		},
		{
			name:     "unknown category sums to zero",
			fill:     func(s *Store) { addExpense(s, "Transport", -10.00, today) },
			category: "Utilities",
			period:   Monthly,
			want:     Money{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(today)
			tc.fill(s)
			if got := s.CategorySpending(tc.category, tc.period); !got.Equal(tc.want) {
				t.Errorf("CategorySpending(%q, %v) = %v, want %v", tc.category, tc.period, got, tc.want)
			}
		})
	}
}

func TestStore_SeedScenario(t *testing.T) {
	// First start on an empty slot seeds the fixed sample data.
	storage := NewMemoryStorage()
	s, err := Open(storage)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := s.AccountBalance("1"), M(5420.50, "USD"); !got.Equal(want) {
		t.Fatalf("seed AccountBalance(1) = %v, want %v", got, want)
	}

	s.AddTransaction(Transaction{
		AccountID: "1",
		Amount:    M(-89.50, ""),
		Category:  "Food & Dining",
		Date:      Today(),
		Type:      Expense,
	})

	if got, want := s.AccountBalance("1"), M(5331.00, "USD"); !got.Equal(want) {
		t.Errorf("AccountBalance(1) = %v, want %v", got, want)
	}
	if got := s.CategorySpending("Food & Dining", Monthly); got.LessThan(M(89.50, "")) {
		t.Errorf("CategorySpending(Food & Dining) = %v, want at least 89.50", got)
	}
}

func TestStore_RehydratesInsteadOfReseeding(t *testing.T) {
	storage := NewMemoryStorage()
	s1, err := Open(storage)
	if err != nil {
		t.Fatal(err)
	}
	added := s1.AddAccount(Account{Name: "new account", Type: Savings, Balance: M(42.00, "USD")})
	s1.DeleteBudget("11")

	// A second Open against the same slot must see the mutated state, not a
	// fresh seed.
	s2, err := Open(storage)
	if err != nil {
		t.Fatal(err)
	}
	if s2.Account(added.ID) == nil {
		t.Errorf("rehydrated store is missing account %q", added.ID)
	}
	for _, b := range s2.Budgets() {
		if b.ID == "11" {
			t.Errorf("rehydrated store resurrected deleted budget %q", b.ID)
		}
	}
	if got, want := s2.TotalBalance(), s1.TotalBalance(); !got.Equal(want) {
		t.Errorf("rehydrated TotalBalance() = %v, want %v", got, want)
	}
}

func TestStore_SubscribersNotifiedOnEveryMutation(t *testing.T) {
	s := newTestStore(Today())
	var notified int
	s.Subscribe(func() { notified++ })

	a := s.AddAccount(Account{Name: "acc", Balance: M(1, "USD")})
	tx := s.AddTransaction(Transaction{AccountID: a.ID, Amount: M(-1, ""), Date: Today(), Type: Expense})
	s.DeleteTransaction(tx.ID)
	b := s.AddBudget(Budget{Category: "Misc", Limit: M(10, "USD"), Period: Monthly})
	s.DeleteBudget(b.ID)

	if notified != 5 {
		t.Errorf("subscriber notified %d times, want 5", notified)
	}
}
