package js_ast

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsIdentifier reports whether text is a valid IdentifierName: an
// identifier-start codepoint followed by zero or more identifier-continue
// codepoints (section 4.2's identifier-name production, before any
// reserved-word check is applied).
func IsIdentifier(text string) bool {
	if len(text) == 0 {
		return false
	}
	for i, codePoint := range text {
		if i == 0 {
			if !IsIdentifierStart(codePoint) {
				return false
			}
		} else {
			if !IsIdentifierContinue(codePoint) {
				return false
			}
		}
	}
	return true
}

// ForceValidIdentifier rewrites text into a valid identifier by replacing
// every codepoint that could not legally appear in that position with an
// underscore, optionally prefixed with prefix.
func ForceValidIdentifier(prefix string, text string) string {
	sb := strings.Builder{}

	if prefix != "" {
		sb.WriteString(prefix)
	}

	c, width := utf8.DecodeRuneInString(text)
	text = text[width:]
	if IsIdentifierStart(c) {
		sb.WriteRune(c)
	} else {
		sb.WriteRune('_')
	}

	for text != "" {
		c, width := utf8.DecodeRuneInString(text)
		text = text[width:]
		if IsIdentifierContinue(c) {
			sb.WriteRune(c)
		} else {
			sb.WriteRune('_')
		}
	}

	return sb.String()
}

// IsIdentifierStart reports whether codePoint may begin an IdentifierName:
// ASCII letters, "_", "$", or any codepoint in one of the Unicode ID_Start
// categories (Letter and Letter Number), per the "UnicodeIDStart" production.
func IsIdentifierStart(codePoint rune) bool {
	switch codePoint {
	case '_', '$',
		'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
		'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
		'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		return true
	}

	if codePoint < 0x80 {
		return false
	}

	return unicode.IsOneOf(idStartCategories, codePoint)
}

// IsIdentifierContinue reports whether codePoint may continue an
// IdentifierName after the first: everything IsIdentifierStart allows, plus
// ASCII digits, the Unicode ID_Continue categories (adding Mark, Decimal
// Number, and Connector Punctuation to the start set), and the two
// zero-width joiner/non-joiner codepoints the grammar special-cases.
func IsIdentifierContinue(codePoint rune) bool {
	switch codePoint {
	case '_', '$', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
		'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
		'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		return true
	}

	if codePoint < 0x80 {
		return false
	}

	if codePoint == 0x200C || codePoint == 0x200D {
		return true
	}

	return unicode.IsOneOf(idContinueCategories, codePoint)
}

var idStartCategories = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Other_ID_Start,
}

var idContinueCategories = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Other_ID_Start,
	unicode.Mn,
	unicode.Mc,
	unicode.Nd,
	unicode.Pc,
	unicode.Other_ID_Continue,
}

// IsWhitespace reports whether codePoint is one of the WhiteSpace code
// points named in section 4.2 (distinct from the four LineTerminator
// codepoints srcpos.IsLineTerminator recognizes).
func IsWhitespace(codePoint rune) bool {
	switch codePoint {
	case
		'\u0009', // character tabulation
		'\u000B', // line tabulation
		'\u000C', // form feed
		'\u0020', // space
		'\u00A0', // no-break space

		'\u1680', // ogham space mark
		'\u2000', // en quad
		'\u2001', // em quad
		'\u2002', // en space
		'\u2003', // em space
		'\u2004', // three-per-em space
		'\u2005', // four-per-em space
		'\u2006', // six-per-em space
		'\u2007', // figure space
		'\u2008', // punctuation space
		'\u2009', // thin space
		'\u200A', // hair space
		'\u202F', // narrow no-break space
		'\u205F', // medium mathematical space
		'\u3000', // ideographic space

		'\uFEFF': // zero width non-breaking space
		return true

	default:
		return false
	}
}
