// Package token defines the closed vocabulary produced by the format-code
// grammar: the symbol each primitive was recognised as, and the typed value it
// contributes when a format is rendered.
//
// Tokens are plain values.  They are produced by package grammar, grouped by
// package numfmt, and never mutated afterwards.
package token

// Symbol identifies which grammar alternative recognised a token.
type Symbol int

const (
	Invalid Symbol = iota

	// ── year / era ────────────────────────────────────────────────────────────
	Year4   // yyyy
	Year2   // yy
	Era2    // ee, era-relative year zero-padded
	Era1    // e, era-relative year
	Gengou3 // ggg, full era name (令和)
	Gengou2 // gg, short era name (令)
	Gengou1 // g, era abbreviation (R)

	// ── month ─────────────────────────────────────────────────────────────────
	Month5 // mmmmm, month initial
	Month4 // mmmm
	Month3 // mmm
	Month2 // mm
	Month1 // m

	// ── day / weekday ─────────────────────────────────────────────────────────
	Youbi4 // aaaa, 月曜日
	Youbi3 // aaa, 月
	Dow4   // dddd
	Dow3   // ddd
	Day2   // dd
	Day1   // d

	// ── time ──────────────────────────────────────────────────────────────────
	Hour2   // hh
	Hour1   // h
	Minute2 // mm (after an hour or before a second)
	Minute1 // m
	Second2 // ss
	Second1 // s

	// ── literals ──────────────────────────────────────────────────────────────
	Quoted  // "text"
	Escaped // \x
	Special // / or :
	Bare    // a non-ASCII rune outside quotes (年, 月, 日 …)

	// ── numeric-only ──────────────────────────────────────────────────────────
	CurrencyJP // [$￥-411]
	Red        // [赤] / [RED]
	Black      // [黒] / [BLACK]
	Number     // run of 0 # . , ?
)

var symbolNames = [...]string{
	Invalid:    "invalid",
	Year4:      "year4",
	Year2:      "year2",
	Era2:       "era2",
	Era1:       "era1",
	Gengou3:    "gengou3",
	Gengou2:    "gengou2",
	Gengou1:    "gengou1",
	Month5:     "month5",
	Month4:     "month4",
	Month3:     "month3",
	Month2:     "month2",
	Month1:     "month1",
	Youbi4:     "youbi4",
	Youbi3:     "youbi3",
	Dow4:       "dow4",
	Dow3:       "dow3",
	Day2:       "day2",
	Day1:       "day1",
	Hour2:      "hour2",
	Hour1:      "hour1",
	Minute2:    "minute2",
	Minute1:    "minute1",
	Second2:    "second2",
	Second1:    "second1",
	Quoted:     "quoted_word",
	Escaped:    "escaped_word",
	Special:    "special_word",
	Bare:       "bare_word",
	CurrencyJP: "currency_jp",
	Red:        "red",
	Black:      "black",
	Number:     "number",
}

// String returns the grammar name of the symbol, e.g. "year4".
func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolNames) {
		return "invalid"
	}
	return symbolNames[s]
}

// Kind is the rendering variant carried by a token.  Everything other than
// Pattern and Literal needs a value computed from the date being rendered (or,
// for the numeric kinds, is never rendered by this module at all).
type Kind int

const (
	// Pattern: Value is a strftime directive such as "%Y" or "%-m".
	Pattern Kind = iota
	// Literal: Value is emitted verbatim.
	Literal
	EraYear       // era-relative year, unpadded
	EraYearPadded // era-relative year, two digits
	GengouAbbrev  // "R"
	GengouShort   // "令"
	GengouFull    // "令和"
	MonthInitial  // "J" for January
	YoubiShort    // "月"
	YoubiLong     // "月曜日"
	Currency      // currency marker; Value is the marker name
	Color         // color marker; Value is the color name
	Digits        // digit-placeholder mask; Value is the mask
)

var kindNames = [...]string{
	Pattern:       "Pattern",
	Literal:       "Literal",
	EraYear:       "EraYear",
	EraYearPadded: "EraYearPadded",
	GengouAbbrev:  "GengouAbbrev",
	GengouShort:   "GengouShort",
	GengouFull:    "GengouFull",
	MonthInitial:  "MonthInitial",
	YoubiShort:    "YoubiShort",
	YoubiLong:     "YoubiLong",
	Currency:      "Currency",
	Color:         "Color",
	Digits:        "Digits",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// IsPlaceholder reports whether tokens of kind k must be resolved against the
// date (and the era lookup) before they can be handed to the calendar engine.
func (k Kind) IsPlaceholder() bool {
	switch k {
	case EraYear, EraYearPadded, GengouAbbrev, GengouShort, GengouFull,
		MonthInitial, YoubiShort, YoubiLong:
		return true
	}
	return false
}

// Token is one recognised primitive of a format code.
type Token struct {
	Symbol Symbol
	Kind   Kind
	// Value is the strftime directive (Pattern), the verbatim text (Literal),
	// the mask (Digits), or the marker name (Currency, Color).  It is empty for
	// placeholders.
	Value string
}

// Group is an ordered run of one to three tokens: an hour-minute or
// minute-second pair with an optional separator between them, or a single
// standalone token.
type Group []Token

// Stream is a date/time format broken into groups, in source order.
type Stream []Group

// Tokens flattens the stream into a single token slice.
func (s Stream) Tokens() []Token {
	n := 0
	for _, g := range s {
		n += len(g)
	}
	out := make([]Token, 0, n)
	for _, g := range s {
		out = append(out, g...)
	}
	return out
}

// Section is one semicolon-delimited numeric format: optional color, leading
// literal/currency tokens, the digit mask, trailing literal/currency tokens.
type Section []Token

// Mask returns the digit-placeholder run of the section, or "" when the
// section has none (which a recognised section never does).
func (s Section) Mask() string {
	for _, tok := range s {
		if tok.Kind == Digits {
			return tok.Value
		}
	}
	return ""
}

// Color returns the section's color marker ("red" or "black"), if any.
func (s Section) Color() (string, bool) {
	if len(s) > 0 && s[0].Kind == Color {
		return s[0].Value, true
	}
	return "", false
}
