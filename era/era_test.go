package era_test

import (
	"errors"
	"testing"
	"time"

	"github.com/TsubasaBE/go-xlsfmt/era"
)

func TestJapanese(t *testing.T) {
	tests := []struct {
		name   string
		t      time.Time
		year   int
		full   string
		short  string
		abbrev string
	}{
		{"reiwa 6", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 6, "令和", "令", "R"},
		{"first day of reiwa", time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC), 1, "令和", "令", "R"},
		{"last day of heisei", time.Date(2019, 4, 30, 23, 59, 59, 0, time.UTC), 31, "平成", "平", "H"},
		{"first day of heisei", time.Date(1989, 1, 8, 0, 0, 0, 0, time.UTC), 1, "平成", "平", "H"},
		{"last day of showa", time.Date(1989, 1, 7, 0, 0, 0, 0, time.UTC), 64, "昭和", "昭", "S"},
		{"taisho 1", time.Date(1912, 7, 30, 0, 0, 0, 0, time.UTC), 1, "大正", "大", "T"},
		{"meiji 45", time.Date(1912, 7, 29, 0, 0, 0, 0, time.UTC), 45, "明治", "明", "M"},
		// Only the wall-clock date counts, whatever the location.
		{"wall clock in JST", time.Date(2019, 5, 1, 0, 30, 0, 0, time.FixedZone("JST", 9*3600)), 1, "令和", "令", "R"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := era.Japanese.YearInEra(tc.t); got != tc.year {
				t.Errorf("YearInEra = %d, want %d", got, tc.year)
			}
			if got := era.Japanese.FullName(tc.t); got != tc.full {
				t.Errorf("FullName = %q, want %q", got, tc.full)
			}
			if got := era.Japanese.ShortName(tc.t); got != tc.short {
				t.Errorf("ShortName = %q, want %q", got, tc.short)
			}
			if got := era.Japanese.Abbreviation(tc.t); got != tc.abbrev {
				t.Errorf("Abbreviation = %q, want %q", got, tc.abbrev)
			}
		})
	}
}

func TestBeforeFirstEra(t *testing.T) {
	d := time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, ok := era.Japanese.At(d); ok {
		t.Fatalf("At(%v) found an era, want none", d)
	}
	if got := era.Japanese.YearInEra(d); got != 1800 {
		t.Errorf("YearInEra = %d, want 1800", got)
	}
	if got := era.Japanese.FullName(d); got != "" {
		t.Errorf("FullName = %q, want empty", got)
	}
}

func TestNewTable(t *testing.T) {
	a := era.Era{Name: "A", Short: "A", Abbrev: "A", Start: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := era.Era{Name: "B", Short: "B", Abbrev: "B", Start: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)}

	tb, err := era.NewTable("test", a, b)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if tb.Version() != "test" {
		t.Errorf("Version = %q, want %q", tb.Version(), "test")
	}

	_, err = era.NewTable("bad", b, a)
	if !errors.Is(err, era.ErrUnordered) {
		t.Errorf("NewTable(unordered) err = %v, want ErrUnordered", err)
	}
	if _, err := era.NewTable("empty"); err == nil {
		t.Error("NewTable with no eras: expected error")
	}
	if _, err := era.NewTable("noname", era.Era{Start: a.Start}); err == nil {
		t.Error("NewTable with unnamed era: expected error")
	}
}

func TestErasIsACopy(t *testing.T) {
	eras := era.Japanese.Eras()
	eras[len(eras)-1].Name = "changed"
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := era.Japanese.FullName(d); got != "令和" {
		t.Errorf("FullName after mutating copy = %q, want 令和", got)
	}
}

func TestNilTableIsJapanese(t *testing.T) {
	var tb *era.Table
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := tb.FullName(d); got != "令和" {
		t.Errorf("nil FullName = %q, want 令和", got)
	}
	if got := tb.YearInEra(d); got != 6 {
		t.Errorf("nil YearInEra = %d, want 6", got)
	}
	if got := tb.Version(); got != era.Japanese.Version() {
		t.Errorf("nil Version = %q, want %q", got, era.Japanese.Version())
	}
	if got := len(tb.Eras()); got != 5 {
		t.Errorf("nil Eras has %d entries, want 5", got)
	}
}
