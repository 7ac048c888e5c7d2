// Package era resolves Japanese imperial eras (gengou) for calendar dates.
//
// A [Table] is built once and never modified, so a single table can be shared
// by any number of goroutines.  [Japanese] is the table used by default when
// rendering format codes; callers that need a different (for example,
// test-only or future) set of eras build their own with [NewTable] and pass it
// to the render functions explicitly.
package era

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Lookup is what the format renderer needs from an era table.  All methods
// must be total: they are called for any date a caller renders.
type Lookup interface {
	// YearInEra returns the 1-based year within the era containing t.
	YearInEra(t time.Time) int
	// Abbreviation returns the Latin initial of the era ("R" for 令和).
	Abbreviation(t time.Time) string
	// ShortName returns the one-character name ("令").
	ShortName(t time.Time) string
	// FullName returns the full name ("令和").
	FullName(t time.Time) string
}

// Era is one entry of a table.  Start is the first calendar day of the era;
// only its year, month and day are significant.
type Era struct {
	Name   string // 令和
	Short  string // 令
	Abbrev string // R
	Start  time.Time
}

// ErrUnordered is returned by NewTable when era start dates are not strictly
// increasing.
var ErrUnordered = errors.New("era: start dates are not strictly increasing")

// Table is an immutable, ordered list of eras.
type Table struct {
	version string
	eras    []Era
}

// NewTable validates eras and returns a table that owns a private copy of
// them.  version identifies the data set (typically the start date of the
// newest era) and is reported by [Table.Version].
func NewTable(version string, eras ...Era) (*Table, error) {
	if len(eras) == 0 {
		return nil, fmt.Errorf("era: table %q has no eras", version)
	}
	own := make([]Era, len(eras))
	for i, e := range eras {
		if e.Name == "" || e.Short == "" || e.Abbrev == "" {
			return nil, fmt.Errorf("era: table %q: entry %d has an empty name", version, i)
		}
		e.Start = day(e.Start)
		if i > 0 && !e.Start.After(own[i-1].Start) {
			return nil, fmt.Errorf("era: table %q: %s: %w", version, e.Name, ErrUnordered)
		}
		own[i] = e
	}
	return &Table{version: version, eras: own}, nil
}

// MustTable is like NewTable but panics on invalid input.  It is meant for
// package-level tables built from constant data.
func MustTable(version string, eras ...Era) *Table {
	t, err := NewTable(version, eras...)
	if err != nil {
		panic(err)
	}
	return t
}

// Japanese holds the modern eras from Meiji onwards.
var Japanese = MustTable("2019-05-01",
	Era{Name: "明治", Short: "明", Abbrev: "M", Start: date(1868, time.October, 23)},
	Era{Name: "大正", Short: "大", Abbrev: "T", Start: date(1912, time.July, 30)},
	Era{Name: "昭和", Short: "昭", Abbrev: "S", Start: date(1926, time.December, 25)},
	Era{Name: "平成", Short: "平", Abbrev: "H", Start: date(1989, time.January, 8)},
	Era{Name: "令和", Short: "令", Abbrev: "R", Start: date(2019, time.May, 1)},
)

// orDefault lets a nil *Table stand for [Japanese].
func (tb *Table) orDefault() *Table {
	if tb == nil {
		return Japanese
	}
	return tb
}

// Version reports the data-set identifier the table was built with.
func (tb *Table) Version() string { return tb.orDefault().version }

// Eras returns a copy of the table's entries, oldest first.
func (tb *Table) Eras() []Era {
	tb = tb.orDefault()
	out := make([]Era, len(tb.eras))
	copy(out, tb.eras)
	return out
}

// At returns the era that contains the calendar day of t.  The second result
// is false when t falls before the first era in the table.
//
// Only the wall-clock date of t matters; its location is not converted.
// A nil table behaves as [Japanese].
func (tb *Table) At(t time.Time) (Era, bool) {
	tb = tb.orDefault()
	d := day(t)
	// First era starting after d; the one before it contains d.
	i := sort.Search(len(tb.eras), func(i int) bool { return tb.eras[i].Start.After(d) })
	if i == 0 {
		return Era{}, false
	}
	return tb.eras[i-1], true
}

// YearInEra returns the era-relative year of t.  The first (partial) calendar
// year of an era is year 1.  Before the first era the Gregorian year is
// returned unchanged.
func (tb *Table) YearInEra(t time.Time) int {
	e, ok := tb.At(t)
	if !ok {
		return t.Year()
	}
	return t.Year() - e.Start.Year() + 1
}

// Abbreviation returns the Latin initial of the era of t, or "" before the
// first era.
func (tb *Table) Abbreviation(t time.Time) string {
	e, _ := tb.At(t)
	return e.Abbrev
}

// ShortName returns the one-character era name of t, or "" before the first
// era.
func (tb *Table) ShortName(t time.Time) string {
	e, _ := tb.At(t)
	return e.Short
}

// FullName returns the full era name of t, or "" before the first era.
func (tb *Table) FullName(t time.Time) string {
	e, _ := tb.At(t)
	return e.Name
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// day truncates t to its calendar day, keeping the wall-clock date.
func day(t time.Time) time.Time {
	return date(t.Year(), t.Month(), t.Day())
}

var _ Lookup = (*Table)(nil)
