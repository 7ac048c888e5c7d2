// Package grammar recognises the smallest lexical units of a spreadsheet
// number-format code: date and time letters, quoted and escaped literals,
// separators, currency and color markers, and digit-placeholder runs.
//
// Every recogniser is a [Parser]: it looks at the start of its input and
// either returns the token it found plus the unconsumed remainder, or reports
// no match.  Recognisers never consume input on failure and always consume at
// least one byte on success, so any loop over them terminates.
//
// # Ordering
//
// Matching is prefix based and does not backtrack into a chosen alternative.
// Within each family the alternatives are therefore tried longest first:
// "yyyy" before "yy", "mmmmm" before "mmmm" before … before "m", and so on.
// Trying "yy" first would happily eat half of "yyyy" and leave "yy" behind for
// the next token.  The order of the alternatives below is part of the
// grammar's contract, not an implementation detail.
package grammar

import (
	"strings"
	"unicode/utf8"

	"github.com/TsubasaBE/go-xlsfmt/token"
)

// Parser recognises one token at the start of input.  On success it returns
// the token, the remaining input and true; otherwise the zero token, input
// unchanged and false.
type Parser func(input string) (token.Token, string, bool)

// ── combinators ───────────────────────────────────────────────────────────────

// Alt tries each parser in order and returns the first match.
func Alt(ps ...Parser) Parser {
	return func(input string) (token.Token, string, bool) {
		for _, p := range ps {
			if tok, rest, ok := p(input); ok {
				return tok, rest, true
			}
		}
		return token.Token{}, input, false
	}
}

// Many applies p until it stops matching and returns every token it produced
// together with the remaining input.  Zero matches is not a failure.
func Many(p Parser, input string) ([]token.Token, string) {
	var toks []token.Token
	for {
		tok, rest, ok := p(input)
		if !ok {
			return toks, input
		}
		toks = append(toks, tok)
		input = rest
	}
}

// tagNoCase matches lit case-insensitively (ASCII only) and yields a token
// with the given symbol, kind and value.
func tagNoCase(lit string, sym token.Symbol, kind token.Kind, value string) Parser {
	return func(input string) (token.Token, string, bool) {
		if !hasPrefixFold(input, lit) {
			return token.Token{}, input, false
		}
		return token.Token{Symbol: sym, Kind: kind, Value: value}, input[len(lit):], true
	}
}

// tag matches lit exactly.
func tag(lit string, sym token.Symbol, kind token.Kind, value string) Parser {
	return func(input string) (token.Token, string, bool) {
		if !strings.HasPrefix(input, lit) {
			return token.Token{}, input, false
		}
		return token.Token{Symbol: sym, Kind: kind, Value: value}, input[len(lit):], true
	}
}

// hasPrefixFold reports whether s starts with prefix, folding ASCII letters.
// Non-ASCII bytes must match exactly.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[i]) != lower(prefix[i]) {
			return false
		}
	}
	return true
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// ── year / era ────────────────────────────────────────────────────────────────

var (
	year4   = tagNoCase("yyyy", token.Year4, token.Pattern, "%Y")
	year2   = tagNoCase("yy", token.Year2, token.Pattern, "%y")
	era2    = tagNoCase("ee", token.Era2, token.EraYearPadded, "")
	era1    = tagNoCase("e", token.Era1, token.EraYear, "")
	gengou3 = tagNoCase("ggg", token.Gengou3, token.GengouFull, "")
	gengou2 = tagNoCase("gg", token.Gengou2, token.GengouShort, "")
	gengou1 = tagNoCase("g", token.Gengou1, token.GengouAbbrev, "")
)

// Year recognises yyyy, yy, ee, e, ggg, gg and g.
var Year = Alt(year4, year2, era2, era1, gengou3, gengou2, gengou1)

// ── month ─────────────────────────────────────────────────────────────────────

var (
	month5 = tagNoCase("mmmmm", token.Month5, token.MonthInitial, "")
	month4 = tagNoCase("mmmm", token.Month4, token.Pattern, "%B")
	month3 = tagNoCase("mmm", token.Month3, token.Pattern, "%b")
	month2 = tagNoCase("mm", token.Month2, token.Pattern, "%m")
	month1 = tagNoCase("m", token.Month1, token.Pattern, "%-m")
)

// Month recognises mmmmm, mmmm, mmm, mm and m as month tokens.
var Month = Alt(month5, month4, month3, month2, month1)

// ── day / weekday ─────────────────────────────────────────────────────────────

var (
	youbi4 = tagNoCase("aaaa", token.Youbi4, token.YoubiLong, "")
	youbi3 = tagNoCase("aaa", token.Youbi3, token.YoubiShort, "")
	dow4   = tagNoCase("dddd", token.Dow4, token.Pattern, "%A")
	dow3   = tagNoCase("ddd", token.Dow3, token.Pattern, "%a")
	day2   = tagNoCase("dd", token.Day2, token.Pattern, "%d")
	day1   = tagNoCase("d", token.Day1, token.Pattern, "%-d")
)

// Day recognises aaaa, aaa, dddd, ddd, dd and d.
var Day = Alt(youbi4, youbi3, dow4, dow3, day2, day1)

// ── time ──────────────────────────────────────────────────────────────────────

// Hour recognises hh and h.
var Hour = Alt(
	tagNoCase("hh", token.Hour2, token.Pattern, "%H"),
	tagNoCase("h", token.Hour1, token.Pattern, "%-H"),
)

// Minute recognises mm and m as minute tokens.  Whether an "m" is a month or
// a minute is decided by the caller from the surrounding tokens.
var Minute = Alt(
	tagNoCase("mm", token.Minute2, token.Pattern, "%M"),
	tagNoCase("m", token.Minute1, token.Pattern, "%-M"),
)

// Second recognises ss and s.
var Second = Alt(
	tagNoCase("ss", token.Second2, token.Pattern, "%S"),
	tagNoCase("s", token.Second1, token.Pattern, "%-S"),
)

// ── literals ──────────────────────────────────────────────────────────────────

// quoted matches "…" and yields the text between the quotes.  An unterminated
// quote is not a match.
func quoted(input string) (token.Token, string, bool) {
	if !strings.HasPrefix(input, `"`) {
		return token.Token{}, input, false
	}
	end := strings.IndexByte(input[1:], '"')
	if end < 0 {
		return token.Token{}, input, false
	}
	body := input[1 : 1+end]
	return token.Token{Symbol: token.Quoted, Kind: token.Literal, Value: body}, input[end+2:], true
}

// escaped matches a backslash followed by exactly one character.
func escaped(input string) (token.Token, string, bool) {
	if len(input) < 2 || input[0] != '\\' {
		return token.Token{}, input, false
	}
	_, size := utf8.DecodeRuneInString(input[1:])
	ch := input[1 : 1+size]
	return token.Token{Symbol: token.Escaped, Kind: token.Literal, Value: ch}, input[1+size:], true
}

// special matches the separators that display as themselves.
func special(input string) (token.Token, string, bool) {
	if len(input) == 0 || (input[0] != '/' && input[0] != ':') {
		return token.Token{}, input, false
	}
	return token.Token{Symbol: token.Special, Kind: token.Literal, Value: input[:1]}, input[1:], true
}

// bare matches one non-ASCII rune outside quotes.  Japanese formats routinely
// write 年, 月 and 日 without quoting them; none of the format letters are
// outside ASCII, so this never steals input from another family.
func bare(input string) (token.Token, string, bool) {
	if len(input) == 0 || input[0] < utf8.RuneSelf {
		return token.Token{}, input, false
	}
	r, size := utf8.DecodeRuneInString(input)
	if r == utf8.RuneError {
		return token.Token{}, input, false
	}
	return token.Token{Symbol: token.Bare, Kind: token.Literal, Value: input[:size]}, input[size:], true
}

// Word recognises a literal: a quoted string, an escaped character, a
// separator ("/" or ":"), or a bare non-ASCII character.
var Word = Alt(quoted, escaped, special, bare)

// ── currency / color ──────────────────────────────────────────────────────────

// Currency recognises the Japanese yen marker [$￥-411].
var Currency = tag("[$￥-411]", token.CurrencyJP, token.Currency, "currency_jp")

// Color recognises the red and black section colors in their Japanese and
// English spellings.  The English names match regardless of case, the way
// spreadsheet applications write them ([Red], [RED]).
var Color = Alt(
	tag("[赤]", token.Red, token.Color, "red"),
	tagNoCase("[red]", token.Red, token.Color, "red"),
	tag("[黒]", token.Black, token.Color, "black"),
	tagNoCase("[black]", token.Black, token.Color, "black"),
)

// ── digits ────────────────────────────────────────────────────────────────────

// digitChars are the placeholder characters that make up a numeric mask.
const digitChars = "0#.,?"

// Number recognises the longest run of digit-placeholder characters
// (0 # . , ?).  At least one character is required.
func Number(input string) (token.Token, string, bool) {
	n := 0
	for n < len(input) && strings.IndexByte(digitChars, input[n]) >= 0 {
		n++
	}
	if n == 0 {
		return token.Token{}, input, false
	}
	return token.Token{Symbol: token.Number, Kind: token.Digits, Value: input[:n]}, input[n:], true
}
