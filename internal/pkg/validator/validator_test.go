package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		month, year int
		want        bool
	}{
		{1, 2024, true},
		{12, 2024, true},
		{6, 1, true},
		{0, 2024, false},
		{13, 2024, false},
		{-3, 2024, false},
		{6, 0, false},
		{6, -2024, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.month, c.year); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.month, c.year, got, c.want)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	cases := []struct {
		month, year int
		start, end  string
	}{
		{1, 2024, "2024-01-01", "2024-01-31"},
		{2, 2024, "2024-02-01", "2024-02-29"}, // leap year
		{2, 2023, "2023-02-01", "2023-02-28"},
		{4, 2024, "2024-04-01", "2024-04-30"},
		{12, 2024, "2024-12-01", "2024-12-31"},
	}
	for _, c := range cases {
		start, end := PeriodBounds(c.month, c.year)
		if got := start.Format("2006-01-02"); got != c.start {
			t.Errorf("PeriodBounds(%d, %d) start = %s, want %s", c.month, c.year, got, c.start)
		}
		if got := end.Format("2006-01-02"); got != c.end {
			t.Errorf("PeriodBounds(%d, %d) end = %s, want %s", c.month, c.year, got, c.end)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-03-15")
	if !ok {
		t.Fatal("IsValidDate(2024-03-15) = false, want true")
	}
	if d != time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) {
		t.Errorf("IsValidDate parsed %v", d)
	}
	if _, ok := IsValidDate("15-03-2024"); ok {
		t.Error("IsValidDate(15-03-2024) = true, want false")
	}
	if _, ok := IsValidDate(""); ok {
		t.Error("IsValidDate(\"\") = true, want false")
	}
}
