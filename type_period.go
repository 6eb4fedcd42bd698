package findash

import "strings"

// Period is a spending-window label used to bound category spending queries.
// On a Budget it is an advisory label only: it never changes how the spending
// window is computed, only the query argument does.
type Period int

const (
	// Monthly is the zero value on purpose: any unrecognized period falls
	// back to a one-month window.
	Monthly Period = iota
	Weekly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Weekly:
		return "weekly"
	case Yearly:
		return "yearly"
	default:
		return "monthly"
	}
}

// Name returns the singular noun for the period (e.g., "week", "month").
func (p Period) Name() string {
	switch p {
	case Weekly:
		return "week"
	case Yearly:
		return "year"
	default:
		return "month"
	}
}

// WindowStart returns the first day of the lookback window ending now:
// a week is seven days, a month and a year are calendar units.
func (p Period) WindowStart(now Date) Date {
	switch p {
	case Weekly:
		return now.Add(-7)
	case Yearly:
		return now.AddYear(-1)
	default:
		return now.AddMonth(-1)
	}
}

// ParsePeriod maps a string onto a Period. It never fails: anything that is
// not a week or a year is a month. Views pass raw user input here, and the
// store contract is to accept it as-is.
func ParsePeriod(s string) Period {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "weekly", "w":
		return Weekly
	case "year", "yearly", "y":
		return Yearly
	default:
		return Monthly
	}
}

// MarshalJSON writes the period label as a JSON string.
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON reads a period label, falling back to monthly for anything unknown.
func (p *Period) UnmarshalJSON(bytes []byte) error {
	*p = ParsePeriod(strings.Trim(string(bytes), `"`))
	return nil
}
