// Package locale deals with the locale decorations spreadsheet applications
// attach to stored number-format codes: bracketed locale tags such as
// [$-411] or [$-ja-JP-x-gannen,80], and the trailing ;@ text section they
// append to date formats.
//
// Tokenising is delegated to [github.com/xuri/nfp], which understands the
// complete number-format syntax; this package only decides which of its
// tokens are decoration.
package locale

import (
	"strconv"
	"strings"

	"github.com/xuri/nfp"
	"golang.org/x/text/language"
)

// lcidTags maps the language part of a Windows LCID to its BCP 47 tag.
var lcidTags = map[uint32]language.Tag{
	0x0404: language.MustParse("zh-TW"),
	0x0407: language.MustParse("de-DE"),
	0x0409: language.AmericanEnglish,
	0x040C: language.MustParse("fr-FR"),
	0x0411: language.MustParse("ja-JP"),
	0x0412: language.MustParse("ko-KR"),
	0x0804: language.MustParse("zh-CN"),
	0x0809: language.BritishEnglish,
}

// decorated reports whether code could carry anything Normalize removes, so
// plain codes skip the tokenizer entirely.
func decorated(code string) bool {
	return strings.Contains(code, "[$") || strings.HasSuffix(strings.TrimSpace(code), ";@")
}

func sections(code string) []nfp.Section {
	ps := nfp.NumberFormatParser()
	return ps.Parse(code)
}

// Normalize removes locale-only tags ([$-411], [$-ja-JP-x-gannen,80]) and a
// trailing section consisting of nothing but the text placeholder (;@).
// Tags that carry a currency symbol, such as [$￥-411], are display content
// and are kept.  Codes without decoration are returned unchanged.
func Normalize(code string) string {
	if !decorated(code) {
		return code
	}
	secs := sections(code)
	if len(secs) == 0 {
		return code
	}
	out := code
	for _, sec := range secs {
		for _, tok := range sec.Items {
			if tok.TType == nfp.TokenTypeCurrencyLanguage && !hasCurrency(tok) {
				out = strings.Replace(out, tok.TValue, "", 1)
			}
		}
	}
	if last := secs[len(secs)-1]; len(secs) > 1 && isTextOnly(last) {
		out = strings.TrimSuffix(strings.TrimSpace(out), ";@")
	}
	return out
}

func hasCurrency(tok nfp.Token) bool {
	for _, p := range tok.Parts {
		if p.Token.TType == nfp.TokenSubTypeCurrencyString && p.Token.TValue != "" {
			return true
		}
	}
	return false
}

func isTextOnly(sec nfp.Section) bool {
	return sec.Type == nfp.TokenSectionText &&
		len(sec.Items) == 1 &&
		sec.Items[0].TType == nfp.TokenTypeTextPlaceHolder &&
		sec.Items[0].TValue == nfp.At
}

// languageInfo returns the language part of the first locale tag in code.
func languageInfo(code string) (string, bool) {
	if !strings.Contains(code, "[$") {
		return "", false
	}
	for _, sec := range sections(code) {
		for _, tok := range sec.Items {
			if tok.TType != nfp.TokenTypeCurrencyLanguage {
				continue
			}
			for _, p := range tok.Parts {
				if p.Token.TType == nfp.TokenSubTypeLanguageInfo && p.Token.TValue != "" {
					return p.Token.TValue, true
				}
			}
		}
	}
	return "", false
}

// LCID returns the numeric locale identifier of the first locale tag in
// code, e.g. 0x411 for [$-411].  The high bytes of long identifiers such as
// [$-1010409] select calendar and numeral systems and are returned as is.
func LCID(code string) (uint32, bool) {
	info, ok := languageInfo(code)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(info, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// Tag returns the language of the first locale tag in code.  Both numeric
// identifiers ([$-411]) and language names ([$-ja-JP-x-gannen,80]) are
// understood.
func Tag(code string) (language.Tag, bool) {
	info, ok := languageInfo(code)
	if !ok {
		return language.Und, false
	}
	if v, err := strconv.ParseUint(info, 16, 32); err == nil {
		tag, ok := lcidTags[uint32(v)&0xFFFF]
		return tag, ok
	}
	name, _, _ := strings.Cut(info, ",")
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
