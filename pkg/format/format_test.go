package format

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.5, "R$ 1.234,50"},
		{1000000, "R$ 1.000.000,00"},
		{9.9, "R$ 9,90"},
	}
	for _, tc := range cases {
		if got := Currency(tc.in); got != tc.want {
			t.Errorf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2025, 3, 9, 14, 30, 5, 0, time.UTC)
	if got := Date(d); got != "09/03/2025" {
		t.Errorf("Date = %q", got)
	}
	if got := DateTime(d); got != "09/03/2025 14:30:05" {
		t.Errorf("DateTime = %q", got)
	}
	if Date(time.Time{}) != "" || DateTime(time.Time{}) != "" {
		t.Error("zero time should render empty")
	}
}

func TestID(t *testing.T) {
	if got := ID(7); got != "0007" {
		t.Errorf("ID(7) = %q", got)
	}
	if got := ID(12345); got != "12345" {
		t.Errorf("ID(12345) = %q", got)
	}
}
