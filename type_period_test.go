package findash

import (
	"testing"
	"time"
)

func TestParsePeriod_NeverFails(t *testing.T) {
	testCases := []struct {
		in   string
		want Period
	}{
		{"week", Weekly},
		{"weekly", Weekly},
		{"W", Weekly},
		{"year", Yearly},
		{"yearly", Yearly},
		{"month", Monthly},
		{"monthly", Monthly},
		// Anything unrecognized, including the empty default, is a month.
		{"", Monthly},
		{"fortnight", Monthly},
		{"quarterly", Monthly},
	}
	for _, tc := range testCases {
		if got := ParsePeriod(tc.in); got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPeriod_WindowStart(t *testing.T) {
	now := NewDate(2025, time.June, 15)

	testCases := []struct {
		period Period
		want   Date
	}{
		{Weekly, NewDate(2025, time.June, 8)},
		{Monthly, NewDate(2025, time.May, 15)},
		{Yearly, NewDate(2024, time.June, 15)},
	}
	for _, tc := range testCases {
		if got := tc.period.WindowStart(now); got != tc.want {
			t.Errorf("%v.WindowStart(%v) = %v, want %v", tc.period, now, got, tc.want)
		}
	}
}
