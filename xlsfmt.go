// Package xlsfmt classifies spreadsheet number-format codes and renders dates
// and times through them, including the Japanese era (gengou) and weekday
// (youbi) placeholders used by ja-JP workbooks.  No cgo is required.
//
// # Quick start
//
//	f := xlsfmt.Parse(`[$-411]ggge"年"m"月"d"日";@`)
//	s, ok := f.FormatDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
//	// s == "令和6年3月5日", ok == true
//
// # Classification
//
// [Classify] reports whether a code is a date/time code, a numeric code
// (one to four semicolon-separated sections), or neither.  The token
// breakdown of either kind is available from [numfmt.IsDateTime] and
// [numfmt.IsNumeric].
//
// # Dates
//
// Spreadsheets store dates as floating-point serial numbers.  [ConvertDateEx]
// turns a serial into a [time.Time] in either date system; [ConvertDate] is
// the common 1900-system case.  [numfmt.FormatValue] goes straight from a raw
// cell value and its numFmtId to display text.
//
// # Eras
//
// Era placeholders are resolved against [era.Japanese] unless a different
// [era.Lookup] is passed to [numfmt.Format.FormatDateIn].
package xlsfmt

import (
	"encoding/xml"
	"slices"
	"strconv"
	"time"

	"github.com/TsubasaBE/go-xlsfmt/markup"
	"github.com/TsubasaBE/go-xlsfmt/numfmt"
	"github.com/TsubasaBE/go-xlsfmt/styles"
	"github.com/TsubasaBE/go-xlsfmt/token"
)

// Version is the current version of the go-xlsfmt library.
const Version = "1.0.0"

// Parse returns the format for a stored number-format code, with locale tags
// and a trailing ;@ section removed.
func Parse(code string) numfmt.Format {
	return numfmt.Parse(code)
}

// Classify classifies a stored number-format code.  Locale decorations are
// removed first, as with [Parse].
func Classify(code string) numfmt.Class {
	return numfmt.Parse(code).Class()
}

// ConvertDate converts a serial in the 1900 date system to a [time.Time].
//
// Serial 60 is the phantom 1900-02-29 inherited from Lotus 1-2-3:
//
//   - serial == 0  → midnight on 1900-01-01
//   - serial >= 61 → one day is subtracted for the phantom leap day
//   - 1 ≤ serial ≤ 60 → no compensation (serial 60 yields 1900-03-01)
func ConvertDate(date float64) (time.Time, error) {
	return numfmt.ConvertSerial(date, false)
}

// ConvertDateEx is like [ConvertDate] but selects the date system.  In the
// 1904 system serial 0 is 1904-01-01 and there is no leap-day correction.
func ConvertDateEx(date float64, date1904 bool) (time.Time, error) {
	return numfmt.ConvertSerial(date, date1904)
}

// IsDateFormat reports whether a number format represents a date, time or
// datetime.
//
// When formatStr is non-empty it is classified and id is ignored; a code
// made only of literal text does not count.  Otherwise id is looked up
// among the built-in formats:
//
//	14–22, 27–36, 45–47, 50–58
func IsDateFormat(id int, formatStr string) bool {
	if formatStr == "" {
		return styles.IsBuiltInDate(id)
	}
	toks, ok := Parse(formatStr).DateFormats()
	if !ok {
		return false
	}
	for _, tok := range toks {
		if tok.Kind != token.Literal {
			return true
		}
	}
	return false
}

// WriteNumFmts appends a numFmts element listing codes, in ID order, to w.
func WriteNumFmts(w *markup.Writer, codes map[int]string) error {
	ids := make([]int, 0, len(codes))
	for id := range codes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	w.Start("numFmts", []xml.Attr{attr("count", strconv.Itoa(len(ids)))}, false)
	for _, id := range ids {
		w.Start("numFmt", []xml.Attr{
			attr("numFmtId", strconv.Itoa(id)),
			attr("formatCode", codes[id]),
		}, true)
	}
	return w.End("numFmts")
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}
