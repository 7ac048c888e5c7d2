// Package numfmt compiles spreadsheet number-format codes and renders date
// and time values through them.
//
// A code is classified as a date/time code ([IsDateTime]), a numeric code
// ([IsNumeric]) or neither ([Classify]).  Date/time codes are turned into a
// strftime pattern, with Japanese era (gengou) and weekday placeholders
// resolved against the value being rendered, and formatted with
// [github.com/ncruces/go-strftime].  Numeric codes are classified into their
// positive/negative/zero/text sections only; rendering a number against a
// digit mask is outside the scope of this package.
//
// All lexing is delegated to package grammar.  Nothing here keeps state, so
// every function and every [Format] is safe for concurrent use.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/TsubasaBE/go-xlsfmt/styles"
)

// FormatValue renders a raw cell value v using the given number format.
//
//   - numFmtID is the numFmtId from the cell's style (0 = General).
//   - fmtStr is the custom format string; pass "" for built-in IDs that have
//     no custom override.
//   - date1904 selects the 1904 date system.
//
// The dynamic type of v must be one of: nil, string, bool, float64.
// Any other type falls back to [fmt.Sprint].  Numbers whose format is not a
// date/time code are rendered in General style.
func FormatValue(v any, numFmtID int, fmtStr string, date1904 bool) string {
	effective := styles.Resolve(numFmtID, fmtStr)

	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return formatFloat(val, effective, date1904)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(val float64, effective string, date1904 bool) string {
	if effective == "General" {
		return renderGeneral(val)
	}
	f := Parse(effective)
	if f.Class() != DateTime {
		return renderGeneral(val)
	}
	s, ok := f.FormatSerial(val, date1904)
	if !ok || s == "" {
		// Out-of-range serial, or a code that produced no output: never drop
		// the value silently.
		return renderGeneral(val)
	}
	return s
}

// renderGeneral formats a float64 in the spreadsheet "General" style:
//   - integer values are rendered without a decimal point
//   - fractional values use Go's shortest-representation float
func renderGeneral(val float64) string {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return strconv.FormatFloat(val, 'G', -1, 64)
	}
	if val == math.Trunc(val) && math.Abs(val) < 1e15 {
		return strconv.FormatInt(int64(val), 10)
	}
	return strconv.FormatFloat(val, 'G', -1, 64)
}

// ── serial dates ──────────────────────────────────────────────────────────────

// Exclusive serial limits.  The 1900 system reaches 9999-12-31 at serial
// 2,958,465; the constant is one above it.  The 1904 system is offset by 1462
// days.
const (
	maxSerial1900 = 2_958_466
	maxSerial1904 = maxSerial1900 - 1462
)

// ConvertSerial converts a spreadsheet date serial to a UTC [time.Time].
//
// In the 1900 system serial 1 is 1900-01-01 and serial 60 is the phantom
// 1900-02-29 inherited from Lotus 1-2-3, so serials from 61 on are shifted back
// one day (serial 60 itself yields 1900-03-01, and serial 0 is midnight on
// 1900-01-01).  In the 1904 system serial 0 is 1904-01-01 with no correction.
//
// The fractional day is rounded to the nearest second; rounding up to
// midnight rolls over into the next day.
func ConvertSerial(serial float64, date1904 bool) (time.Time, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, fmt.Errorf("numfmt: invalid serial %v", serial)
	}
	if serial < 0 {
		return time.Time{}, fmt.Errorf("numfmt: negative serial %v not supported", serial)
	}
	limit := float64(maxSerial1900)
	if date1904 {
		limit = maxSerial1904
	}
	if serial >= limit {
		return time.Time{}, fmt.Errorf("numfmt: serial %v exceeds maximum supported value %v", serial, limit)
	}

	fracSec, rollover := serialToFracSec(serial)
	days := int(serial) + rollover
	secs := time.Duration(fracSec) * time.Second

	if date1904 {
		base := time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
		return base.Add(time.Duration(days)*24*time.Hour + secs), nil
	}
	base := time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	switch {
	case days == 0:
		return time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).Add(secs), nil
	case days >= 61:
		return base.Add(time.Duration(days-1)*24*time.Hour + secs), nil
	default:
		return base.Add(time.Duration(days)*24*time.Hour + secs), nil
	}
}

// serialToFracSec converts the fractional-day part of a serial to whole
// seconds within the day (0–86399) plus a day-rollover count (0 or 1).
func serialToFracSec(serial float64) (fracSec int64, dayRollover int) {
	const roundEpsilon = 1e-9
	fracDay := (serial - math.Trunc(serial)) + roundEpsilon
	const nanosInADay = float64(24 * 60 * 60 * 1e9)
	durNanos := time.Duration(fracDay * nanosInADay)
	ns := int(durNanos % time.Second)
	secs := int64(durNanos / time.Second)
	if ns > 500_000_000 {
		secs++
	}
	if secs < 0 {
		secs = 0
	}
	return secs % 86400, int(secs / 86400)
}
