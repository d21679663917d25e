package js_parser

import (
	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/js_lexer"
	"github.com/nilsvast/ecmaparse/internal/logger"
)

// parseForStmt implements the For-header disambiguation of section 4.4.5:
// a single initial parse (declaration or expression, with params.In pinned
// false so a bare "in" can only ever mean the for-in keyword) that branches
// into SFor/SForIn/SForOf once the token following the first binding/expr
// is known.
func (p *Parser) parseForStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance() // consume "for"

	isAwait := false
	if p.isContextualKeyword("await") {
		p.advance()
		isAwait = true
	}
	p.expect(js_lexer.TOpenParen)

	if p.cur().Kind == js_lexer.TSemicolon {
		return p.finishForStmt(loc, js_ast.Stmt{})
	}

	if p.cur().Kind == js_lexer.TIdentifier &&
		(p.cur().Identifier == "var" || p.cur().Identifier == "const" ||
			(p.cur().Identifier == "let" && p.startsBindingList())) {
		var declKind js_ast.VariableKind
		switch p.cur().Identifier {
		case "var":
			declKind = js_ast.VariableVar
		case "let":
			declKind = js_ast.VariableLet
		case "const":
			declKind = js_ast.VariableConst
		}
		declLoc := p.loc()
		p.advance()

		savedIn := p.params.In
		p.params.In = false
		binding := p.parseBindingTarget()

		if p.isContextualKeyword("in") {
			p.params.In = savedIn
			p.advance()
			p.expectExprNext()
			value := p.parseExpr(js_ast.LLowest)
			p.expect(js_lexer.TCloseParen)
			body := p.parseStatement()
			init := js_ast.Stmt{Loc: declLoc, Data: &js_ast.SVariable{
				Kind: declKind, Declarators: []js_ast.Declarator{{Binding: binding}}, IsForLoopInit: true,
			}}
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SForIn{Init: init, Value: value, Body: body}}
		}
		if p.isContextualKeyword("of") {
			p.params.In = savedIn
			p.advance()
			p.expectExprNext()
			value := p.parseExpr(js_ast.LAssign)
			p.expect(js_lexer.TCloseParen)
			body := p.parseStatement()
			init := js_ast.Stmt{Loc: declLoc, Data: &js_ast.SVariable{
				Kind: declKind, Declarators: []js_ast.Declarator{{Binding: binding}}, IsForLoopInit: true,
			}}
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SForOf{Init: init, Value: value, Body: body, IsAwait: isAwait}}
		}

		var value js_ast.Expr
		if p.cur().Kind == js_lexer.TEquals {
			p.expectExprNext()
			p.advance()
			value = p.parseExpr(js_ast.LComma + 1)
		}
		decls := []js_ast.Declarator{{Binding: binding, ValueOrNil: value}}
		for p.cur().Kind == js_lexer.TComma {
			p.expectExprNext()
			p.advance()
			b := p.parseBindingTarget()
			var v js_ast.Expr
			if p.cur().Kind == js_lexer.TEquals {
				p.expectExprNext()
				p.advance()
				v = p.parseExpr(js_ast.LComma + 1)
			}
			decls = append(decls, js_ast.Declarator{Binding: b, ValueOrNil: v})
		}
		p.params.In = savedIn
		init := js_ast.Stmt{Loc: declLoc, Data: &js_ast.SVariable{Kind: declKind, Declarators: decls, IsForLoopInit: true}}
		return p.finishForStmt(loc, init)
	}

	savedIn := p.params.In
	p.params.In = false
	p.expectExprNext()
	expr := p.parseExpr(js_ast.LLowest)
	p.params.In = savedIn

	if p.isContextualKeyword("in") {
		if !js_ast.IsValidAssignmentTarget(expr) {
			p.addError(expr.Loc, ErrInvalidAssignmentTarget, "invalid for-in left-hand side")
		}
		p.advance()
		p.expectExprNext()
		value := p.parseExpr(js_ast.LLowest)
		p.expect(js_lexer.TCloseParen)
		body := p.parseStatement()
		init := js_ast.Stmt{Loc: expr.Loc, Data: &js_ast.SExpr{Value: expr}}
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SForIn{Init: init, Value: value, Body: body}}
	}
	if p.isContextualKeyword("of") {
		if !js_ast.IsValidAssignmentTarget(expr) {
			p.addError(expr.Loc, ErrInvalidAssignmentTarget, "invalid for-of left-hand side")
		}
		p.advance()
		p.expectExprNext()
		value := p.parseExpr(js_ast.LAssign)
		p.expect(js_lexer.TCloseParen)
		body := p.parseStatement()
		init := js_ast.Stmt{Loc: expr.Loc, Data: &js_ast.SExpr{Value: expr}}
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SForOf{Init: init, Value: value, Body: body, IsAwait: isAwait}}
	}

	init := js_ast.Stmt{Loc: expr.Loc, Data: &js_ast.SExpr{Value: expr}}
	return p.finishForStmt(loc, init)
}

func (p *Parser) finishForStmt(loc logger.Loc, init js_ast.Stmt) js_ast.Stmt {
	p.expect(js_lexer.TSemicolon)

	var test js_ast.Expr
	if p.cur().Kind != js_lexer.TSemicolon {
		p.expectExprNext()
		test = p.parseExpr(js_ast.LLowest)
	}
	p.expect(js_lexer.TSemicolon)

	var update js_ast.Expr
	if p.cur().Kind != js_lexer.TCloseParen {
		p.expectExprNext()
		update = p.parseExpr(js_ast.LLowest)
	}
	p.expect(js_lexer.TCloseParen)

	body := p.parseStatement()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SFor{InitOrNil: init, TestOrNil: test, UpdateOrNil: update, Body: body}}
}
