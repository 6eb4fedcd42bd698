package findash

// seedSnapshot builds the fixed sample data used the very first time the
// dashboard starts. It is written through immediately, so every later start
// rehydrates from storage and never sees this function again.
//
// Account balances already include the seed transactions below: the seed is
// a snapshot of a small, self-consistent dashboard, not a replay log.
func seedSnapshot(today Date) *Snapshot {
	return &Snapshot{
		Accounts: []Account{
			{ID: "1", Name: "Main Checking", Type: Checking, Balance: M(5420.50, "USD")},
			{ID: "2", Name: "Emergency Savings", Type: Savings, Balance: M(12800.00, "USD")},
			{ID: "3", Name: "Brokerage", Type: Investment, Balance: M(24310.75, "USD")},
			{ID: "4", Name: "Rewards Card", Type: Credit, Balance: M(-642.30, "USD")},
		},
		Transactions: []Transaction{
			{ID: "5", AccountID: "1", Amount: M(3200.00, ""), Description: "Monthly salary", Category: "Salary", Date: today.Add(-14), Type: Income},
			{ID: "6", AccountID: "1", Amount: M(-54.20, ""), Description: "Groceries", Category: "Food & Dining", Date: today.Add(-5), Type: Expense},
			{ID: "7", AccountID: "4", Amount: M(-23.80, ""), Description: "Lunch downtown", Category: "Food & Dining", Date: today.Add(-2), Type: Expense},
			{ID: "8", AccountID: "1", Amount: M(-42.00, ""), Description: "Monthly transit pass", Category: "Transport", Date: today.Add(-10), Type: Expense},
			{ID: "9", AccountID: "4", Amount: M(-15.99, ""), Description: "Streaming subscription", Category: "Entertainment", Date: today.Add(-8), Type: Expense},
			{ID: "10", AccountID: "2", Amount: M(500.00, ""), Description: "Transfer to savings", Category: "Transfers", Date: today.Add(-7), Type: Transfer},
		},
		Budgets: []Budget{
			{ID: "11", Category: "Food & Dining", Limit: M(400.00, "USD"), Spent: M(78.00, "USD"), Period: Monthly},
			{ID: "12", Category: "Transport", Limit: M(150.00, "USD"), Spent: M(42.00, "USD"), Period: Monthly},
			{ID: "13", Category: "Entertainment", Limit: M(120.00, "USD"), Spent: M(15.99, "USD"), Period: Monthly},
		},
	}
}
