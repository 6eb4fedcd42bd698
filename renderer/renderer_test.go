package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/findash/findash"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses the markdown and returns the text of every heading, so tests
// assert on document structure rather than raw byte layout.
func headings(t *testing.T, source string) []string {
	t.Helper()
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var found []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var sb strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(src))
				}
			}
			found = append(found, sb.String())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return found
}

func testStore(t *testing.T) *findash.Store {
	t.Helper()
	store, err := findash.Open(findash.NewMemoryStorage())
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestSummaryMarkdown(t *testing.T) {
	store := testStore(t)
	got := SummaryMarkdown(findash.NewSummary(store, findash.NewDate(2025, time.June, 15)))

	want := []string{"Dashboard on 2025-06-15", "Accounts", "Budgets"}
	if h := headings(t, got); len(h) != len(want) {
		t.Fatalf("headings = %v, want %v", h, want)
	} else {
		for i := range want {
			if h[i] != want[i] {
				t.Errorf("heading[%d] = %q, want %q", i, h[i], want[i])
			}
		}
	}

	for _, cell := range []string{"Total Balance:", "Main Checking", "Emergency Savings", "Food & Dining"} {
		if !strings.Contains(got, cell) {
			t.Errorf("summary does not mention %q:\n%s", cell, got)
		}
	}
}

func TestAccountsMarkdown(t *testing.T) {
	store := testStore(t)
	got := AccountsMarkdown(store.Accounts())

	for _, cell := range []string{"Main Checking", "checking", "Rewards Card", "credit", "4 account(s)"} {
		if !strings.Contains(got, cell) {
			t.Errorf("accounts view does not mention %q:\n%s", cell, got)
		}
	}
}

func TestTransactionsMarkdown_ResolvesAccountNames(t *testing.T) {
	store := testStore(t)

	var txs []findash.Transaction
	for _, tx := range store.Transactions() {
		txs = append(txs, tx)
	}
	got := TransactionsMarkdown(txs, AccountNames(store.Accounts()))

	if !strings.Contains(got, "Main Checking") {
		t.Errorf("transactions view does not resolve account names:\n%s", got)
	}
	if !strings.Contains(got, "Monthly salary") {
		t.Errorf("transactions view does not mention descriptions:\n%s", got)
	}
}

func TestTransactionsMarkdown_OrphanKeepsItsRow(t *testing.T) {
	store := testStore(t)
	orphan := store.AddTransaction(findash.Transaction{
		AccountID:   "no-such-account",
		Amount:      findash.M(-10.00, ""),
		Description: "Ghost",
		Category:    "Misc",
		Date:        findash.NewDate(2025, time.June, 15),
		Type:        findash.Expense,
	})

	got := TransactionsMarkdown([]findash.Transaction{orphan}, AccountNames(store.Accounts()))

	if !strings.Contains(got, "Ghost") {
		t.Errorf("orphaned transaction dropped from the view:\n%s", got)
	}
	if !strings.Contains(got, absentAccount) {
		t.Errorf("orphaned transaction account not rendered as %q:\n%s", absentAccount, got)
	}
}

func TestBudgetsMarkdown_Unbounded(t *testing.T) {
	store := testStore(t)
	store.AddBudget(findash.Budget{
		Category: "Misc",
		Limit:    findash.M(0, "USD"),
		Period:   findash.Monthly,
	})

	got := BudgetsMarkdown(findash.NewBudgetReport(store, findash.Weekly))

	if !strings.Contains(got, "Budgets (last week)") {
		t.Errorf("budget view title missing window:\n%s", got)
	}
	if !strings.Contains(got, "Misc") {
		t.Errorf("budget view dropped the zero-limit budget:\n%s", got)
	}
}
