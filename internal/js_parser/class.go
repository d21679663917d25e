package js_parser

import (
	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/js_lexer"
)

func (p *Parser) parseClassDecl() js_ast.Stmt {
	return p.parseClassDeclWithDecorators(nil)
}

func (p *Parser) parseClassDeclWithDecorators(decorators []js_ast.Decorator) js_ast.Stmt {
	loc := p.loc()
	class := p.parseClassCommon(decorators)
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SClass{Class: class}}
}

func (p *Parser) parseClassExpr() js_ast.Expr {
	return p.parseClassExprWithDecorators(nil)
}

func (p *Parser) parseClassExprWithDecorators(decorators []js_ast.Decorator) js_ast.Expr {
	loc := p.loc()
	class := p.parseClassCommon(decorators)
	return js_ast.Expr{Loc: loc, Data: &js_ast.EClass{Class: class}}
}

// parseDecorators consumes a run of "@expr" decorators (the experimental
// decorator proposal named as an Open Question in section 9), attachable to
// a class declaration/expression or to a class member. The decorated
// expression is parsed at LHS precedence, matching a plain member/call
// expression such as "@foo.bar(1)".
func (p *Parser) parseDecorators() []js_ast.Decorator {
	var decorators []js_ast.Decorator
	for p.cur().Kind == js_lexer.TAt {
		loc := p.loc()
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LCall)
		decorators = append(decorators, js_ast.Decorator{Value: value, Loc: loc})
	}
	return decorators
}

// parseClassCommon implements the class body of section 4.4.10: a
// semicolon-and-member mix where each member is an optional "static"
// modifier, an optional "async"/generator-"*"/"get"/"set" modifier, a
// (possibly computed or private) name, and then either a method tail or a
// field initializer.
func (p *Parser) parseClassCommon(decorators []js_ast.Decorator) js_ast.Class {
	classKeyword := p.cur().Range
	p.advance() // consume "class"

	var name *js_ast.LocName
	if p.cur().Kind == js_lexer.TIdentifier && p.cur().Identifier != "extends" {
		nameLoc := p.loc()
		n := p.cur().Identifier
		p.advance()
		name = &js_ast.LocName{Name: n, Loc: nameLoc}
	}

	var extends js_ast.Expr
	if p.isContextualKeyword("extends") {
		p.expectExprNext()
		p.advance()
		extends = p.parseExpr(js_ast.LCall)
	}

	bodyLoc := p.loc()
	p.expect(js_lexer.TOpenBrace)

	savedStrict := p.params.Strict
	p.params.Strict = true
	defer func() { p.params.Strict = savedStrict }()

	var props []js_ast.Property
	for p.cur().Kind != js_lexer.TCloseBrace {
		if p.cur().Kind == js_lexer.TSemicolon {
			p.advance()
			continue
		}
		memberDecorators := p.parseDecorators()
		props = append(props, p.parseClassMember(memberDecorators))
	}
	closeLoc := p.loc()
	p.expect(js_lexer.TCloseBrace)

	return js_ast.Class{
		Decorators: decorators, Name: name, ExtendsOrNil: extends, Properties: props,
		ClassKeyword: classKeyword, BodyLoc: bodyLoc, CloseBraceLoc: closeLoc,
	}
}

func (p *Parser) parseClassMember(decorators []js_ast.Decorator) js_ast.Property {
	loc := p.loc()

	isStatic := false
	if p.isContextualKeyword("static") {
		peek := p.peek()
		if peek.Kind != js_lexer.TOpenParen && peek.Kind != js_lexer.TEquals &&
			peek.Kind != js_lexer.TSemicolon && peek.Kind != js_lexer.TCloseBrace {
			p.advance()
			isStatic = true
			if p.cur().Kind == js_lexer.TOpenBrace {
				block := p.parseBlockStmt()
				return js_ast.Property{
					Decorators:       decorators,
					IsStatic:         true,
					ClassStaticBlock: &js_ast.ClassStaticBlock{Block: block, Loc: loc},
				}
			}
		}
	}

	isAsync := false
	isGenerator := false
	kind := js_ast.PropertyNormal

	if p.isContextualKeyword("async") {
		peek := p.peek()
		if peek.Kind != js_lexer.TOpenParen && peek.Kind != js_lexer.TEquals &&
			peek.Kind != js_lexer.TSemicolon && peek.Kind != js_lexer.TCloseBrace && !p.precededByLineTerminator() {
			p.advance()
			isAsync = true
		}
	}
	if p.cur().Kind == js_lexer.TAsterisk {
		p.expectExprNext()
		p.advance()
		isGenerator = true
	}
	if p.isContextualKeyword("get") || p.isContextualKeyword("set") {
		peek := p.peek()
		if peek.Kind != js_lexer.TOpenParen && peek.Kind != js_lexer.TEquals &&
			peek.Kind != js_lexer.TSemicolon && peek.Kind != js_lexer.TCloseBrace {
			which := p.cur().Identifier
			p.advance()
			if which == "get" {
				kind = js_ast.PropertyGet
			} else {
				kind = js_ast.PropertySet
			}
		}
	}

	key, isComputed := p.parsePropertyKey()

	if p.cur().Kind == js_lexer.TOpenParen {
		fn := p.parseFunctionTail(isAsync, isGenerator)
		return js_ast.Property{
			Decorators: decorators,
			Key:        key, IsComputed: isComputed, IsMethod: true, IsStatic: isStatic,
			IsAsync: isAsync, IsGenerator: isGenerator, Kind: kind,
			ValueOrNil: js_ast.Expr{Loc: loc, Data: &js_ast.EFunction{Fn: fn}},
		}
	}

	// Field, with or without an initializer.
	var init js_ast.Expr
	if p.cur().Kind == js_lexer.TEquals {
		p.expectExprNext()
		p.advance()
		init = p.parseExpr(js_ast.LComma + 1)
	}
	p.semicolon()
	return js_ast.Property{Decorators: decorators, Key: key, IsComputed: isComputed, IsStatic: isStatic, InitializerOrNil: init}
}
