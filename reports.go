package findash

// This file holds the derived views computed over the store. The store only
// sums; dividing spending by a budget limit (and deciding what a zero limit
// means) happens here, on the consuming side.

// AccountLine is one account row in a summary, with its activity count.
type AccountLine struct {
	Account
	TxCount int
}

// BudgetLine is one budget row: the stored record plus the live spend for the
// requested window and the usage ratio derived from it.
type BudgetLine struct {
	Budget
	Actual    Money   // recomputed from transactions, not read from Spent
	Usage     Percent // Actual over Limit, in percent points
	Unbounded bool    // true when the limit is zero and the ratio is undefined
}

// Summary is the top-level dashboard view: totals, accounts and budgets on a
// given day.
type Summary struct {
	Date         Date
	TotalBalance Money
	Accounts     []AccountLine
	Budgets      []BudgetLine
}

// NewSummary computes the dashboard summary from the current store state.
// Budget lines use each budget's own advisory period label as the spending
// window, which is what a user reading "monthly" next to a bar expects.
func NewSummary(s *Store, on Date) *Summary {
	sum := &Summary{
		Date:         on,
		TotalBalance: s.TotalBalance(),
	}
	for _, a := range s.Accounts() {
		sum.Accounts = append(sum.Accounts, AccountLine{
			Account: a,
			TxCount: len(s.TransactionsByAccount(a.ID)),
		})
	}
	for _, b := range s.Budgets() {
		sum.Budgets = append(sum.Budgets, budgetLine(s, b, b.Period))
	}
	return sum
}

// BudgetReport is the budget view for one spending window.
type BudgetReport struct {
	Period  Period
	Budgets []BudgetLine
}

// NewBudgetReport computes live spending for every budget over the given
// window period, regardless of each budget's advisory label.
func NewBudgetReport(s *Store, period Period) *BudgetReport {
	r := &BudgetReport{Period: period}
	for _, b := range s.Budgets() {
		r.Budgets = append(r.Budgets, budgetLine(s, b, period))
	}
	return r
}

func budgetLine(s *Store, b Budget, period Period) BudgetLine {
	line := BudgetLine{
		Budget: b,
		Actual: s.CategorySpending(b.Category, period),
	}
	ratio, ok := line.Actual.Ratio(b.Limit)
	if !ok {
		// A zero limit makes the ratio undefined; flag it instead of
		// rendering an infinity.
		line.Unbounded = true
		return line
	}
	line.Usage = Percent(ratio * 100)
	return line
}
