package findash

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/sirupsen/logrus"
)

// This file handles the import format: arbitrary bank JSON exports. Banks
// disagree on everything except producing JSON, so the caller points a
// jsonpath expression at the list of movements and names the keys to read.

// ImportSpec describes where transactions live in a JSON export and which
// keys map onto transaction fields. Zero-value key names fall back to the
// common ones found in the wild.
type ImportSpec struct {
	Path      string // jsonpath selecting the records, e.g. "$.transactions[*]"
	AccountID string // account the imported movements are booked on

	AmountKey      string // defaults to "amount"
	DescriptionKey string // defaults to "description"
	CategoryKey    string // defaults to "category"
	DateKey        string // defaults to "date"
}

func (s ImportSpec) withDefaults() ImportSpec {
	if s.Path == "" {
		s.Path = "$[*]"
	}
	if s.AmountKey == "" {
		s.AmountKey = "amount"
	}
	if s.DescriptionKey == "" {
		s.DescriptionKey = "description"
	}
	if s.CategoryKey == "" {
		s.CategoryKey = "category"
	}
	if s.DateKey == "" {
		s.DateKey = "date"
	}
	return s
}

// ImportTransactions extracts transactions from a JSON export. A path that
// selects no records at all is an error. Records that cannot be read (no
// amount, bad date) are skipped with a log line rather than failing the whole
// import; the type is derived from the amount's sign when the record does not
// say otherwise.
func ImportTransactions(r io.Reader, spec ImportSpec) ([]Transaction, error) {
	spec = spec.withDefaults()

	var jobj any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse JSON export: %w", err)
	}

	jval, err := jsonpath.Get(spec.Path, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", spec.Path, err)
	}
	// jsonpath is never clear about whether it returns a list or a single
	// answer; normalize to a list.
	records, ok := jval.([]any)
	if !ok {
		records = []any{jval}
	}
	// A path selecting nothing is indistinguishable from a wrong path; the
	// caller pointed at the wrong place and should hear about it.
	if len(records) == 0 {
		return nil, fmt.Errorf("%q selected no records in the export", spec.Path)
	}

	var txs []Transaction
	for i, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			logrus.WithField("index", i).Warn("skipping import record: not an object")
			continue
		}

		amount, ok := importAmount(obj[spec.AmountKey])
		if !ok {
			logrus.WithField("index", i).Warn("skipping import record: no readable amount")
			continue
		}

		day := Today()
		if raw, ok := obj[spec.DateKey].(string); ok {
			d, err := ParseDate(raw)
			if err != nil {
				logrus.WithField("index", i).WithError(err).Warn("skipping import record")
				continue
			}
			day = d
		}

		typ := Income
		if amount < 0 {
			typ = Expense
		}

		txs = append(txs, Transaction{
			AccountID:   spec.AccountID,
			Amount:      M(amount, ""),
			Description: importString(obj[spec.DescriptionKey]),
			Category:    importString(obj[spec.CategoryKey]),
			Date:        day,
			Type:        typ,
		})
	}
	return txs, nil
}

// importAmount reads an amount that exports spell either as a number or as a
// numeric string.
func importAmount(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func importString(v any) string {
	s, _ := v.(string)
	return s
}
