package numfmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/TsubasaBE/go-xlsfmt/era"
	"github.com/TsubasaBE/go-xlsfmt/token"
)

// youbi holds the Japanese weekday names indexed by time.Weekday.
var youbi = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// Pattern resolves every era, gengou and weekday placeholder of the format
// against t and returns the strftime pattern the calendar engine will see.
// It returns false when the format is not a date/time code.
//
// Literal text is escaped so that the engine reproduces it verbatim.  A nil
// eras, or a nil *era.Table, uses [era.Japanese].
func (f Format) Pattern(t time.Time, eras era.Lookup) (string, bool) {
	stream, ok := IsDateTime(f.content)
	if !ok {
		return "", false
	}
	if eras == nil {
		eras = era.Japanese
	}
	var sb strings.Builder
	for _, g := range stream {
		for _, tok := range g {
			sb.WriteString(resolve(tok, t, eras))
		}
	}
	return sb.String(), true
}

// resolve returns the pattern fragment for one token.
func resolve(tok token.Token, t time.Time, eras era.Lookup) string {
	switch tok.Kind {
	case token.Pattern:
		return tok.Value
	case token.Literal:
		return escape(tok.Value)
	case token.EraYear:
		return strconv.Itoa(eras.YearInEra(t))
	case token.EraYearPadded:
		y := strconv.Itoa(eras.YearInEra(t))
		if len(y) < 2 {
			y = "0" + y
		}
		return y
	case token.GengouAbbrev:
		return escape(eras.Abbreviation(t))
	case token.GengouShort:
		return escape(eras.ShortName(t))
	case token.GengouFull:
		return escape(eras.FullName(t))
	case token.MonthInitial:
		return t.Month().String()[:1]
	case token.YoubiShort:
		return youbi[t.Weekday()]
	case token.YoubiLong:
		return youbi[t.Weekday()] + "曜日"
	}
	// Numeric-only kinds never appear in a date/time stream.
	return ""
}

// escape protects literal text from being read as strftime directives.
func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// FormatDate renders t with the format using the default Japanese era table.
// It returns false when the format is not a date/time code.
func (f Format) FormatDate(t time.Time) (string, bool) {
	return f.FormatDateIn(t, era.Japanese)
}

// FormatDateIn is like FormatDate but resolves era placeholders with eras.
func (f Format) FormatDateIn(t time.Time, eras era.Lookup) (string, bool) {
	pattern, ok := f.Pattern(t, eras)
	if !ok {
		return "", false
	}
	return strftime.Format(pattern, t), true
}

// FormatSerial converts an Excel date serial and renders it with the format.
// It returns false when the serial is out of range or the format is not a
// date/time code.
func (f Format) FormatSerial(serial float64, date1904 bool) (string, bool) {
	t, err := ConvertSerial(serial, date1904)
	if err != nil {
		return "", false
	}
	return f.FormatDate(t)
}
