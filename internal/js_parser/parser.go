package js_parser

import (
	"fmt"

	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/js_lexer"
	"github.com/nilsvast/ecmaparse/internal/logger"
)

// Params is the grammar-parameter record of section 3/9, held in
// Parser.params. A sub-production that needs different parameters saves
// the current value, changes the field, and puts the saved value back when
// it returns (mostly through defer).
type Params struct {
	In       bool
	Yield    bool
	Await    bool
	Return   bool
	Default  bool
	Template bool
	Strict   bool
	Module   bool
	AnnexB   bool
}

// ParserPanic unwinds the recursive descent back to the entry point on the
// first fatal parse error; there is no error recovery in the core.
type ParserPanic struct{}

// Parser drives the lexer through a Buffer and builds the AST for a single
// source file under one Options configuration.
type Parser struct {
	log     *logger.Log
	source  *logger.Source
	lexer   *js_lexer.Lexer
	buf     *js_lexer.Buffer
	options Options
	params  Params

	nextHint js_lexer.Hint

	comments []js_ast.Comment
}

func newParser(log *logger.Log, source *logger.Source, options Options) *Parser {
	p := &Parser{log: log, source: source, options: options}
	p.lexer = js_lexer.NewLexer(log, source)
	p.params.Strict = options.Goal == GoalModule
	p.params.Module = options.Goal == GoalModule
	p.params.AnnexB = options.AnnexB
	p.expectExprNext()
	var onComment func(js_lexer.Token)
	if options.RetainComments {
		onComment = p.recordComment
	}
	p.buf = js_lexer.NewBuffer(p.lexer, p.nextHint, onComment)
	p.resetHint()
	return p
}

func commentKindForToken(kind js_lexer.T) js_ast.CommentKind {
	switch kind {
	case js_lexer.TCommentBlock:
		return js_ast.CommentBlock
	case js_lexer.TCommentHTMLOpen:
		return js_ast.CommentHTMLOpen
	case js_lexer.TCommentHTMLClose:
		return js_ast.CommentHTMLClose
	default:
		return js_ast.CommentLine
	}
}

func (p *Parser) recordComment(tok js_lexer.Token) {
	p.comments = append(p.comments, js_ast.Comment{
		Text: tok.CommentText,
		Loc:  tok.Range.Loc,
		Kind: commentKindForToken(tok.Kind),
	})
}

func (p *Parser) resetHint() {
	p.nextHint = js_lexer.Hint{Strict: p.params.Strict, Module: p.params.Module, AnnexB: p.params.AnnexB}
}

func (p *Parser) expectExprNext() {
	p.nextHint = js_lexer.Hint{Expression: true, Strict: p.params.Strict, Module: p.params.Module, AnnexB: p.params.AnnexB}
}

func (p *Parser) advance() js_lexer.Token {
	tok := p.buf.Advance(p.nextHint)
	p.resetHint()
	return tok
}

func (p *Parser) cur() js_lexer.Token { return p.buf.Current() }

func (p *Parser) peek() js_lexer.Token { return p.buf.Peek(p.nextHint) }

func (p *Parser) loc() logger.Loc { return p.cur().Range.Loc }

func (p *Parser) precededByLineTerminator() bool { return p.buf.PrecededByLineTerminator() }

// --- Errors ---

func (p *Parser) addError(loc logger.Loc, kind ErrorKind, format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	p.log.AddErrorDetail(p.source, loc, text, kind)
	panic(ParserPanic{})
}

func (p *Parser) unexpected() {
	tok := p.cur()
	p.addError(p.loc(), ErrExpectedToken, "unexpected %s", tok.Kind.String())
}

func (p *Parser) expect(kind js_lexer.T) js_lexer.Token {
	tok := p.cur()
	if tok.Kind != kind {
		p.addError(p.loc(), ErrExpectedToken, "expected %s but found %s", kind.String(), tok.Kind.String())
	}
	p.advance()
	return tok
}

func (p *Parser) isContextualKeyword(name string) bool {
	tok := p.cur()
	return tok.Kind == js_lexer.TIdentifier && tok.Identifier == name
}

func (p *Parser) expectContextualKeyword(name string) {
	if !p.isContextualKeyword(name) {
		p.addError(p.loc(), ErrExpectedToken, "expected %q but found %s", name, p.cur().Kind.String())
	}
	p.advance()
}

// --- Reserved words ---

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "null": true,
	"true": true, "false": true, "enum": true,
}

var strictModeReservedWords = map[string]bool{
	"implements": true, "interface": true, "package": true,
	"private": true, "protected": true, "public": true,
	"let": true, "static": true, "yield": true,
}

func (p *Parser) isReservedWord(name string) bool {
	if reservedWords[name] {
		return true
	}
	if p.params.Strict && strictModeReservedWords[name] {
		return true
	}
	if p.params.Module && name == "await" {
		return true
	}
	return false
}

// --- ASI (section 4.4.9) ---

// semicolon implements the ASI decision at a statement's end: consume an
// explicit ";", or insert one before "}"/EOF, or insert one if a line
// terminator preceded the current token, or fail.
func (p *Parser) semicolon() {
	if p.cur().Kind == js_lexer.TSemicolon {
		p.advance()
		return
	}
	if p.cur().Kind == js_lexer.TCloseBrace || p.cur().Kind == js_lexer.TEndOfFile {
		return
	}
	if p.precededByLineTerminator() {
		return
	}
	p.addError(p.loc(), ErrExpectedToken, "expected \";\" but found %s", p.cur().Kind.String())
}

// --- Entry points (section 4.4.1) ---

// ParseScript implements parseScript(source) -> Script: in=true, strict
// only as promoted by a "use strict" directive.
func ParseScript(log *logger.Log, source *logger.Source, options Options) js_ast.AST {
	options.Goal = GoalScript
	p := newParser(log, source, options)
	p.params.In = true
	return p.parseProgram(js_ast.GoalScript)
}

// ParseModule implements parseModule(source) -> Module: module=true,
// strict=true always.
func ParseModule(log *logger.Log, source *logger.Source, options Options) js_ast.AST {
	options.Goal = GoalModule
	p := newParser(log, source, options)
	p.params.In = true
	p.params.Module = true
	p.params.Strict = true
	return p.parseProgram(js_ast.GoalModule)
}

func (p *Parser) parseProgram(goal js_ast.Goal) (ast js_ast.AST) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(ParserPanic); ok {
				ast = js_ast.AST{Goal: goal}
				return
			}
			if _, ok := r.(js_lexer.LexerPanic); ok {
				ast = js_ast.AST{Goal: goal}
				return
			}
			panic(r)
		}
	}()

	directives, body := p.parseDirectivePrologueAndStatements(true)
	p.expect(js_lexer.TEndOfFile)
	return js_ast.AST{Goal: goal, Directives: directives, Body: body, Comments: p.comments}
}

// parseDirectivePrologueAndStatements implements section 4.4.2: a prefix of
// expression-statements whose sole expression is a string literal. Any
// "use strict" literal anywhere in that prefix promotes params.Strict for
// the remainder of this body.
func (p *Parser) parseDirectivePrologueAndStatements(topLevel bool) ([]js_ast.SDirective, []js_ast.Stmt) {
	var directives []js_ast.SDirective
	var body []js_ast.Stmt

	inPrologue := true
	for p.cur().Kind != js_lexer.TEndOfFile && p.cur().Kind != js_lexer.TCloseBrace {
		if inPrologue && p.cur().Kind == js_lexer.TStringLiteral {
			strLoc := p.loc()
			value := p.cur().StringValue
			p.expectExprNext()
			p.advance()
			wasDirective := p.cur().Kind == js_lexer.TSemicolon ||
				p.cur().Kind == js_lexer.TCloseBrace ||
				p.cur().Kind == js_lexer.TEndOfFile ||
				p.precededByLineTerminator()
			if wasDirective {
				p.semicolon()
				directives = append(directives, js_ast.SDirective{Value: value})
				if value == "use strict" {
					p.params.Strict = true
				}
				continue
			}
			// Not actually a directive: the string literal is the first
			// operand of a larger expression statement (e.g. "use strict" + x).
			inPrologue = false
			stmt := p.finishExpressionStatementFromString(strLoc, value)
			body = append(body, stmt)
			continue
		}
		inPrologue = false
		if topLevel && p.params.Module && (p.cur().Kind == js_lexer.TIdentifier) {
			if p.cur().Identifier == "import" {
				body = append(body, p.parseImportDeclaration())
				continue
			}
			if p.cur().Identifier == "export" {
				body = append(body, p.parseExportDeclaration())
				continue
			}
		}
		body = append(body, p.parseStatement())
	}
	return directives, body
}

func (p *Parser) finishExpressionStatementFromString(strLoc logger.Loc, value string) js_ast.Stmt {
	left := js_ast.Expr{Loc: strLoc, Data: &js_ast.EString{Value: value}}
	expr := p.parseSuffix(left, js_ast.LLowest)
	expr = p.parseExpressionTail(expr)
	p.semicolon()
	return js_ast.Stmt{Loc: strLoc, Data: &js_ast.SExpr{Value: expr}}
}
