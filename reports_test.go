package findash

import "testing"

func TestNewBudgetReport(t *testing.T) {
	today := MustParseDate("2025-06-15")
	s := newTestStore(today)
	a := s.AddAccount(Account{Name: "checking", Balance: M(1000, "USD")})

	s.AddTransaction(Transaction{AccountID: a.ID, Amount: M(-100.00, ""), Category: "Food & Dining", Date: today.Add(-3), Type: Expense})
	s.AddTransaction(Transaction{AccountID: a.ID, Amount: M(-25.00, ""), Category: "Transport", Date: today.Add(-20), Type: Expense})

	s.AddBudget(Budget{Category: "Food & Dining", Limit: M(400.00, "USD"), Period: Monthly})
	s.AddBudget(Budget{Category: "Transport", Limit: M(0, "USD"), Period: Monthly})

	report := NewBudgetReport(s, Weekly)
	if len(report.Budgets) != 2 {
		t.Fatalf("report has %d budgets, want 2", len(report.Budgets))
	}

	food := report.Budgets[0]
	if !food.Actual.Equal(M(100.00, "")) {
		t.Errorf("food actual = %v, want 100.00", food.Actual)
	}
	if food.Unbounded {
		t.Error("food budget flagged unbounded, its limit is 400")
	}
	if want := Percent(25.0); !food.Usage.Equal(want) {
		t.Errorf("food usage = %v, want %v", food.Usage, want)
	}

	// A zero limit makes the usage ratio undefined: the line is flagged
	// instead of dividing.
	transport := report.Budgets[1]
	if !transport.Unbounded {
		t.Error("zero-limit budget not flagged unbounded")
	}
	if !transport.Actual.Equal(Money{}) {
		// the transport expense is 20 days old, outside the week window
		t.Errorf("transport actual = %v, want zero", transport.Actual)
	}
}

func TestNewSummary(t *testing.T) {
	storage := NewMemoryStorage()
	s, err := Open(storage)
	if err != nil {
		t.Fatal(err)
	}

	on := Today()
	sum := NewSummary(s, on)

	if !sum.TotalBalance.Equal(s.TotalBalance()) {
		t.Errorf("summary total = %v, want %v", sum.TotalBalance, s.TotalBalance())
	}
	if len(sum.Accounts) != len(s.Accounts()) {
		t.Fatalf("summary has %d accounts, want %d", len(sum.Accounts), len(s.Accounts()))
	}
	for _, line := range sum.Accounts {
		if want := len(s.TransactionsByAccount(line.ID)); line.TxCount != want {
			t.Errorf("account %q TxCount = %d, want %d", line.Name, line.TxCount, want)
		}
	}
	if len(sum.Budgets) != len(s.Budgets()) {
		t.Errorf("summary has %d budgets, want %d", len(sum.Budgets), len(s.Budgets()))
	}
}
