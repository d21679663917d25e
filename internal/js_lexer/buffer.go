package js_lexer

import "github.com/nilsvast/ecmaparse/internal/srcpos"

// Buffer is the 1-ahead ring shared by the parser: one materialized current
// token and, once Peek has been called, one lookahead token. It is the
// layer that skips trivia while still answering "was there a line
// terminator before this token?" for ASI and no-LT rules.
type Buffer struct {
	lexer *Lexer

	current Token
	// preceded records whether a LineTerminator trivia token (or a block
	// comment spanning one) appeared between the previous non-trivia token
	// and current.
	preceded bool

	hasPeek      bool
	peekToken    Token
	peekPreceded bool

	// onComment, when non-nil, is invoked once per comment-kind trivia
	// token as it is consumed, in source order. It is nil unless the
	// caller asked to retain comments.
	onComment func(Token)
}

// NewBuffer primes the buffer with the first non-trivia token, scanned
// under hint. onComment may be nil.
func NewBuffer(lexer *Lexer, hint Hint, onComment func(Token)) *Buffer {
	b := &Buffer{lexer: lexer, onComment: onComment}
	b.current, b.preceded = b.consumeNonTrivia(hint)
	return b
}

func (b *Buffer) consumeNonTrivia(hint Hint) (Token, bool) {
	sawLineTerminator := false
	for {
		t := b.lexer.Next(hint)
		switch t.Kind {
		case TLineTerminator:
			sawLineTerminator = true
			continue
		case TWhitespace:
			continue
		case TCommentLine:
			if b.onComment != nil {
				b.onComment(t)
			}
			continue
		case TCommentBlock:
			if b.onComment != nil {
				b.onComment(t)
			}
			for _, r := range t.CommentText {
				if srcpos.IsLineTerminator(r) {
					sawLineTerminator = true
					break
				}
			}
			continue
		case TCommentHTMLOpen, TCommentHTMLClose:
			// Annex B recognizes "<!--"/"-->" as comments only outside
			// module goal and only when the Annex B extensions are enabled;
			// otherwise the token surfaces here so the parser rejects it
			// like any other unexpected punctuator.
			if !hint.Module && hint.AnnexB {
				if b.onComment != nil {
					b.onComment(t)
				}
				sawLineTerminator = true
				continue
			}
			return t, sawLineTerminator
		default:
			return t, sawLineTerminator
		}
	}
}

// Current returns the materialized current token.
func (b *Buffer) Current() Token { return b.current }

// PrecededByLineTerminator reports whether any trivia token between the
// previous non-trivia token and Current was a LineTerminator, or a block
// comment that itself contained one.
func (b *Buffer) PrecededByLineTerminator() bool { return b.preceded }

// Peek returns (without consuming) the token that Advance would make
// current next, scanning it fresh under hint the first time it's asked for.
func (b *Buffer) Peek(hint Hint) Token {
	if !b.hasPeek {
		b.peekToken, b.peekPreceded = b.consumeNonTrivia(hint)
		b.hasPeek = true
	}
	return b.peekToken
}

// Advance makes the previously peeked token (or a freshly scanned one, if
// Peek was never called) the new current token.
func (b *Buffer) Advance(hint Hint) Token {
	if b.hasPeek {
		b.current = b.peekToken
		b.preceded = b.peekPreceded
		b.hasPeek = false
	} else {
		b.current, b.preceded = b.consumeNonTrivia(hint)
	}
	return b.current
}

// RescanCloseBraceAsTemplateContinuation replaces an already-materialized
// TCloseBrace current token with the TemplateMiddle/TemplateTail token that
// actually starts at the same position. Because Current is always fetched
// one step ahead of the parser noticing it needs Hint.Template, the "}"
// ending a template substitution gets tokenized as a plain close brace first;
// the parser calls this once it confirms that "}" was the substitution's own
// terminator rather than the close of a nested block or object literal.
func (b *Buffer) RescanCloseBraceAsTemplateContinuation() Token {
	b.current = b.lexer.scanTemplateBodyAfterCloseBrace()
	b.preceded = false
	return b.current
}
