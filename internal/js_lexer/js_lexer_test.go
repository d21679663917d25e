package js_lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsvast/ecmaparse/internal/logger"
)

func lexAll(t *testing.T, contents string, hint Hint) []Token {
	t.Helper()
	log := logger.NewLog()
	source := &logger.Source{Contents: contents, PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	var tokens []Token
	for {
		tok := lexer.Next(hint)
		tokens = append(tokens, tok)
		if tok.Kind == TEndOfFile {
			break
		}
	}
	require.False(t, log.HasErrors(), "unexpected lex errors: %+v", log.Done())
	return tokens
}

func kinds(tokens []Token) []T {
	out := make([]T, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestPunctuators(t *testing.T) {
	tokens := lexAll(t, "{}()[];,.", Hint{})
	assert.Equal(t, []T{
		TOpenBrace, TCloseBrace, TOpenParen, TCloseParen,
		TOpenBracket, TCloseBracket, TSemicolon, TComma, TDot, TEndOfFile,
	}, kinds(tokens))
}

func TestOptionalChainAndNullish(t *testing.T) {
	tokens := lexAll(t, "a?.b ?? c ??= d", Hint{})
	var nonTrivia []T
	for _, tok := range tokens {
		if !tok.Kind.IsTrivia() {
			nonTrivia = append(nonTrivia, tok.Kind)
		}
	}
	assert.Equal(t, []T{
		TIdentifier, TQuestionDot, TIdentifier,
		TQuestionQuestion, TIdentifier,
		TQuestionQuestionEquals, TIdentifier, TEndOfFile,
	}, nonTrivia)
}

func TestSlashAsDivisionWithoutExpressionHint(t *testing.T) {
	tokens := lexAll(t, "a / b / c", Hint{})
	var nonTrivia []Token
	for _, tok := range tokens {
		if !tok.Kind.IsTrivia() {
			nonTrivia = append(nonTrivia, tok)
		}
	}
	require.Len(t, nonTrivia, 6)
	assert.Equal(t, TSlash, nonTrivia[1].Kind)
	assert.Equal(t, TSlash, nonTrivia[3].Kind)
}

func TestSlashAsRegExpWithExpressionHint(t *testing.T) {
	log := logger.NewLog()
	source := &logger.Source{Contents: "/ab+c/gi", PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	tok := lexer.Next(Hint{Expression: true})
	require.Equal(t, TRegExpLiteral, tok.Kind)
	assert.Equal(t, "ab+c", tok.RegExpPattern)
	assert.Equal(t, "gi", tok.RegExpFlags)
}

func TestTemplateNoSubstitution(t *testing.T) {
	log := logger.NewLog()
	source := &logger.Source{Contents: "`hello`", PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	tok := lexer.Next(Hint{})
	require.Equal(t, TTemplateNoSubstitution, tok.Kind)
	assert.Equal(t, "hello", tok.TemplateCooked)
}

func TestTemplateHeadMiddleTail(t *testing.T) {
	log := logger.NewLog()
	source := &logger.Source{Contents: "`a${1}b${2}c`", PrettyPath: "<test>"}
	lexer := NewLexer(log, source)

	head := lexer.Next(Hint{})
	require.Equal(t, TTemplateHead, head.Kind)
	assert.Equal(t, "a", head.TemplateCooked)

	num1 := lexer.Next(Hint{})
	require.Equal(t, TNumericLiteral, num1.Kind)

	middle := lexer.Next(Hint{Template: true})
	require.Equal(t, TTemplateMiddle, middle.Kind)
	assert.Equal(t, "b", middle.TemplateCooked)

	num2 := lexer.Next(Hint{})
	require.Equal(t, TNumericLiteral, num2.Kind)

	tail := lexer.Next(Hint{Template: true})
	require.Equal(t, TTemplateTail, tail.Kind)
	assert.Equal(t, "c", tail.TemplateCooked)
}

func TestNumericLiterals(t *testing.T) {
	cases := []struct {
		source string
		value  float64
	}{
		{"0", 0},
		{"123", 123},
		{"0.1e+2", 10},
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
		{".5", 0.5},
	}
	for _, c := range cases {
		log := logger.NewLog()
		source := &logger.Source{Contents: c.source, PrettyPath: "<test>"}
		lexer := NewLexer(log, source)
		tok := lexer.Next(Hint{})
		require.Equal(t, TNumericLiteral, tok.Kind, "source=%q", c.source)
		assert.Equal(t, c.value, tok.Number, "source=%q", c.source)
		assert.Equal(t, c.source, tok.Raw, "source=%q", c.source)
	}
}

func TestStringEscapes(t *testing.T) {
	log := logger.NewLog()
	source := &logger.Source{Contents: `"a\nbc\u{1F600}"`, PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	tok := lexer.Next(Hint{})
	require.Equal(t, TStringLiteral, tok.Kind)
	assert.Equal(t, "a\nbc\U0001F600", tok.StringValue)
}

func TestTilingPropertyAcrossTokens(t *testing.T) {
	contents := "let x = 1 + 2; // trailing comment\n"
	log := logger.NewLog()
	source := &logger.Source{Contents: contents, PrettyPath: "<test>"}
	lexer := NewLexer(log, source)

	var rebuilt []byte
	for {
		tok := lexer.Next(Hint{})
		rebuilt = append(rebuilt, contents[tok.Range.Loc.Start:tok.Range.End()]...)
		if tok.Kind == TEndOfFile {
			break
		}
	}
	assert.Equal(t, contents, string(rebuilt))
}

func TestBufferPrecededByLineTerminator(t *testing.T) {
	log := logger.NewLog()
	source := &logger.Source{Contents: "return\na", PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	buf := NewBuffer(lexer, Hint{}, nil)

	require.Equal(t, TIdentifier, buf.Current().Kind)
	assert.Equal(t, "return", buf.Current().Identifier)
	assert.False(t, buf.PrecededByLineTerminator())

	buf.Advance(Hint{})
	require.Equal(t, TIdentifier, buf.Current().Kind)
	assert.Equal(t, "a", buf.Current().Identifier)
	assert.True(t, buf.PrecededByLineTerminator())
}

func TestIdentifierWithUnicodeEscape(t *testing.T) {
	log := logger.NewLog()
	source := &logger.Source{Contents: `\u0061bc`, PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	tok := lexer.Next(Hint{})
	require.Equal(t, TIdentifier, tok.Kind)
	assert.Equal(t, "abc", tok.Identifier)
}

func TestHTMLCommentDelimiters(t *testing.T) {
	// "<!--" consumes the rest of its line as comment text, the same way a
	// "//" comment does, so the trailing "-->" on the same line is just
	// more comment text rather than its own close-comment token.
	tokens := lexAll(t, "<!-- x -->\ny", Hint{})
	var filtered []Token
	for _, tok := range tokens {
		if tok.Kind == TWhitespace || tok.Kind == TLineTerminator {
			continue
		}
		filtered = append(filtered, tok)
	}
	require.Len(t, filtered, 3)
	assert.Equal(t, TCommentHTMLOpen, filtered[0].Kind)
	assert.Equal(t, "<!-- x -->", filtered[0].CommentText)
	assert.Equal(t, TIdentifier, filtered[1].Kind)
	assert.Equal(t, "y", filtered[1].Identifier)
	assert.Equal(t, TEndOfFile, filtered[2].Kind)
}

func TestTemplateBadEscapeNeverPanicsAtTheLexerLayer(t *testing.T) {
	// A malformed escape inside a template is never a lex-time fatal error:
	// whether it's actually legal source text depends on whether the parser
	// later discovers the template is tagged, which the lexer can't know.
	cases := []string{
		"`\\u{110000}`", // out of range
		"`\\u{zzzz}`",   // not hex digits
		"`\\ufoo`",      // short, non-hex \u
		"`\\xzz`",       // non-hex \x
		"`\\1`",         // legacy octal
	}
	for _, c := range cases {
		log := logger.NewLog()
		source := &logger.Source{Contents: c, PrettyPath: "<test>"}
		lexer := NewLexer(log, source)
		tok := lexer.Next(Hint{})
		require.Equal(t, TTemplateNoSubstitution, tok.Kind, "source=%q", c)
		assert.True(t, tok.HasBadEscape, "source=%q should mark HasBadEscape", c)
		assert.False(t, log.HasErrors(), "source=%q should not lex-error", c)
	}
}

func TestTemplateGoodEscapeStillDecodesNormally(t *testing.T) {
	log := logger.NewLog()
	source := &logger.Source{Contents: "`\\u{1F600}`", PrettyPath: "<test>"}
	lexer := NewLexer(log, source)
	tok := lexer.Next(Hint{})
	require.Equal(t, TTemplateNoSubstitution, tok.Kind)
	assert.False(t, tok.HasBadEscape)
	assert.Equal(t, "\U0001F600", tok.TemplateCooked)
}

func TestHTMLCloseCommentOnItsOwnLine(t *testing.T) {
	tokens := lexAll(t, "x\n--> rest\ny", Hint{})
	var filtered []Token
	for _, tok := range tokens {
		if tok.Kind == TWhitespace || tok.Kind == TLineTerminator {
			continue
		}
		filtered = append(filtered, tok)
	}
	require.Len(t, filtered, 4)
	assert.Equal(t, TIdentifier, filtered[0].Kind)
	assert.Equal(t, TCommentHTMLClose, filtered[1].Kind)
	assert.Equal(t, "--> rest", filtered[1].CommentText)
	assert.Equal(t, TIdentifier, filtered[2].Kind)
	assert.Equal(t, "y", filtered[2].Identifier)
	assert.Equal(t, TEndOfFile, filtered[3].Kind)
}
