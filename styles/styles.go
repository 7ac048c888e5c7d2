// Package styles holds the built-in number formats that spreadsheet files
// refer to by ID instead of storing the format code.  It is a deliberately
// small, dependency-free package so that numfmt and the root package can both
// use it without introducing import cycles.
package styles

// BuiltInNumFmt maps built-in numFmtId values to their format codes as
// written by the Japanese (ja-JP) locale.  IDs 27–36 and 50–58 are
// locale-specific; the era formats among them carry the [$-411] locale tag
// exactly as stored in files, and are meant to be loaded with numfmt.Parse,
// which strips it.
//
// Separators other than "/" and ":" are quoted so every date code classifies.
// The AM/PM clocks (18, 19) and the elapsed-hours code (46) have no form in
// this grammar and use the 24-hour codes instead.
var BuiltInNumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `"￥"#,##0;"￥"\-#,##0`,
	6:  `"￥"#,##0;[赤]"￥"\-#,##0`,
	7:  `"￥"#,##0.00;"￥"\-#,##0.00`,
	8:  `"￥"#,##0.00;[赤]"￥"\-#,##0.00`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "yyyy/m/d",
	15: `d"-"mmm"-"yy`,
	16: `d"-"mmm`,
	17: `mmm"-"yy`,
	18: "h:mm",
	19: "h:mm:ss",
	20: "h:mm",
	21: "h:mm:ss",
	22: `yyyy/m/d" "h:mm`,
	27: `[$-411]ge"."m"."d`,
	28: `[$-411]ggge"年"m"月"d"日"`,
	29: `[$-411]ggge"年"m"月"d"日"`,
	30: "m/d/yy",
	31: `yyyy"年"m"月"d"日"`,
	32: `h"時"mm"分"`,
	33: `h"時"mm"分"ss"秒"`,
	34: `yyyy"年"m"月"`,
	35: `m"月"d"日"`,
	36: `[$-411]ge"."m"."d`,
	37: `#,##0;-#,##0`,
	38: `#,##0;[赤]-#,##0`,
	39: `#,##0.00;-#,##0.00`,
	40: `#,##0.00;[赤]-#,##0.00`,
	41: `_ * #,##0_ ;_ * -#,##0_ ;_ * "-"_ ;_ @_ `,
	42: `_ "￥"* #,##0_ ;_ "￥"* -#,##0_ ;_ "￥"* "-"_ ;_ @_ `,
	43: `_ * #,##0.00_ ;_ * -#,##0.00_ ;_ * "-"??_ ;_ @_ `,
	44: `_ "￥"* #,##0.00_ ;_ "￥"* -#,##0.00_ ;_ "￥"* "-"??_ ;_ @_ `,
	45: "mm:ss",
	46: "h:mm:ss",
	47: `mm:ss".0"`,
	48: "##0.0E+0",
	49: "@",
	50: `[$-411]ge"."m"."d`,
	51: `[$-411]ggge"年"m"月"d"日"`,
	52: `yyyy"年"m"月"`,
	53: `m"月"d"日"`,
	54: `[$-411]ggge"年"m"月"d"日"`,
	55: `yyyy"年"m"月"`,
	56: `m"月"d"日"`,
	57: `[$-411]ge"."m"."d`,
	58: `[$-411]ggge"年"m"月"d"日"`,
}

// Resolve returns the effective format code: the custom fmtStr when
// non-empty, the built-in code for numFmtID when known, or "General".
func Resolve(numFmtID int, fmtStr string) string {
	if fmtStr != "" {
		return fmtStr
	}
	if s, ok := BuiltInNumFmt[numFmtID]; ok {
		return s
	}
	return "General"
}

// IsBuiltInDate reports whether id is a built-in numFmtId that represents a
// date, datetime, or time format.
//
//	14–22   date and time formats (IDs 18–21 are time-only)
//	27–36   locale-specific CJK date formats
//	45–47   elapsed-time / seconds formats
//	50–58   locale-specific CJK date formats (variant set)
func IsBuiltInDate(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}
