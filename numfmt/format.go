package numfmt

import (
	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-xlsfmt/grammar"
	"github.com/TsubasaBE/go-xlsfmt/locale"
	"github.com/TsubasaBE/go-xlsfmt/token"
)

// Format is a number-format code.  It is a plain value: construct it with
// [New] or [Parse] and share it freely.
type Format struct {
	content string
}

// New wraps content as a Format without altering it.
func New(content string) Format {
	return Format{content: content}
}

// Parse is like New but first strips spreadsheet locale tags ([$-411]) and a
// trailing text-only section (;@), the decorations spreadsheet applications
// add to stored date formats.  See [locale.Normalize].
func Parse(content string) Format {
	return Format{content: locale.Normalize(content)}
}

// Content returns the format code exactly as it is held.
func (f Format) Content() string { return f.content }

// String implements fmt.Stringer.
func (f Format) String() string { return f.content }

// ── classification ────────────────────────────────────────────────────────────

// Class is the result of classifying a format code.
type Class int

const (
	Unrecognized Class = iota
	DateTime
	Numeric
)

func (c Class) String() string {
	switch c {
	case DateTime:
		return "DateTime"
	case Numeric:
		return "Numeric"
	}
	return "Unrecognized"
}

// Classify reports whether text is a date/time code, a numeric code, or
// neither.  No code satisfies both grammars: a numeric section needs a digit
// mask, and none of the date tokens contain one.
func Classify(text string) Class {
	if _, ok := IsDateTime(text); ok {
		return DateTime
	}
	if _, ok := IsNumeric(text); ok {
		return Numeric
	}
	return Unrecognized
}

// Class classifies the format's content.
func (f Format) Class() Class { return Classify(f.content) }

// ── date/time grammar ─────────────────────────────────────────────────────────

// groupParser recognises one token group at the start of input.
type groupParser func(input string) (token.Group, string, bool)

// pair recognises first, an optional literal, then second.  Once the optional
// literal has matched it is not given back: if second then fails the whole
// pair fails.
func pair(first, second grammar.Parser) groupParser {
	return func(input string) (token.Group, string, bool) {
		a, rest, ok := first(input)
		if !ok {
			return nil, input, false
		}
		g := token.Group{a}
		if w, r, ok := grammar.Word(rest); ok {
			g = append(g, w)
			rest = r
		}
		b, rest, ok := second(rest)
		if !ok {
			return nil, input, false
		}
		return append(g, b), rest, true
	}
}

func single(p grammar.Parser) groupParser {
	return func(input string) (token.Group, string, bool) {
		tok, rest, ok := p(input)
		if !ok {
			return nil, input, false
		}
		return token.Group{tok}, rest, true
	}
}

// dateGroups lists the group alternatives in the order they are tried at
// every position.  Pairs come first so that "m" next to an hour or a second
// is read as a minute; on its own it falls through to the month family.
var dateGroups = []groupParser{
	pair(grammar.Hour, grammar.Minute),   // h:mm
	pair(grammar.Minute, grammar.Second), // mm:ss
	single(grammar.Second),
	single(grammar.Hour),
	single(grammar.Year),
	single(grammar.Month),
	single(grammar.Day),
	single(grammar.Word),
}

// IsDateTime breaks text into date/time token groups.  It succeeds only when
// the whole of text is consumed; the empty string yields an empty stream.
func IsDateTime(text string) (token.Stream, bool) {
	stream := token.Stream{}
	rest := text
	for rest != "" {
		matched := false
		for _, p := range dateGroups {
			g, r, ok := p(rest)
			if !ok {
				continue
			}
			stream = append(stream, g)
			rest = r
			matched = true
			break
		}
		if !matched {
			return nil, false
		}
	}
	return stream, true
}

// DateFormats returns the format's date/time tokens in order, or false when
// the format is not a date/time code.
func (f Format) DateFormats() ([]token.Token, bool) {
	stream, ok := IsDateTime(f.content)
	if !ok {
		return nil, false
	}
	return stream.Tokens(), true
}

// ── numeric grammar ───────────────────────────────────────────────────────────

// maxSections is the spreadsheet limit: positive; negative; zero; text.
const maxSections = 4

// sectionRoles maps a section's position to its display rule.  The role names
// are reused from xuri/nfp, whose tokenizer package locale runs over stored
// codes, so a section's Role matches the Section.Type nfp reports for it.
var sectionRoles = [maxSections]string{
	nfp.TokenSectionPositive,
	nfp.TokenSectionNegative,
	nfp.TokenSectionZero,
	nfp.TokenSectionText,
}

var literalOrCurrency = grammar.Alt(grammar.Word, grammar.Currency)

// numericSection recognises one section: [color] {literal|currency} mask
// {literal|currency}.
func numericSection(input string) (token.Section, string, bool) {
	var sec token.Section
	rest := input
	if c, r, ok := grammar.Color(rest); ok {
		sec = append(sec, c)
		rest = r
	}
	lead, rest := grammar.Many(literalOrCurrency, rest)
	sec = append(sec, lead...)
	mask, rest, ok := grammar.Number(rest)
	if !ok {
		return nil, input, false
	}
	sec = append(sec, mask)
	trail, rest := grammar.Many(literalOrCurrency, rest)
	return append(sec, trail...), rest, true
}

// IsNumeric breaks text into one to four semicolon-separated numeric
// sections.  It succeeds only when the whole of text is consumed.
func IsNumeric(text string) ([]token.Section, bool) {
	first, rest, ok := numericSection(text)
	if !ok {
		return nil, false
	}
	sections := []token.Section{first}
	for len(sections) < maxSections && len(rest) > 0 && rest[0] == ';' {
		sec, r, ok := numericSection(rest[1:])
		if !ok {
			return nil, false
		}
		sections = append(sections, sec)
		rest = r
	}
	if rest != "" {
		return nil, false
	}
	return sections, true
}

// NumericSection is a recognised numeric section together with the display
// rule its position gives it.
type NumericSection struct {
	// Role is "Positive", "Negative", "Zero" or "Text".
	Role   string
	Tokens token.Section
}

// NumericSections returns the format's numeric sections, or false when the
// format is not a numeric code.
func (f Format) NumericSections() ([]NumericSection, bool) {
	secs, ok := IsNumeric(f.content)
	if !ok {
		return nil, false
	}
	out := make([]NumericSection, len(secs))
	for i, s := range secs {
		out[i] = NumericSection{Role: sectionRoles[i], Tokens: s}
	}
	return out, true
}

// SectionFor picks the section that displays val:
//
//	1 section  → applies to all values
//	2 sections → [0]=positive+zero  [1]=negative
//	3 sections → [0]=positive  [1]=negative  [2]=zero
//	4 sections → as 3; [3] is only used for text
func (f Format) SectionFor(val float64) (NumericSection, bool) {
	sections, ok := f.NumericSections()
	if !ok {
		return NumericSection{}, false
	}
	switch {
	case len(sections) == 1:
		return sections[0], true
	case len(sections) == 2:
		if val < 0 {
			return sections[1], true
		}
		return sections[0], true
	default: // 3 or 4
		switch {
		case val > 0:
			return sections[0], true
		case val < 0:
			return sections[1], true
		default:
			return sections[2], true
		}
	}
}
