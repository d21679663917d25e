package js_parser

import (
	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/js_lexer"
	"github.com/nilsvast/ecmaparse/internal/logger"
)

// parseStatement implements the statement dispatch of section 4.4.3: a
// switch on the current token's kind/keyword text that routes to one
// production, falling through to ExpressionStatement (with the restricted
// lookahead of section 4.4.4) when nothing else matches. When
// Options.RetainRanges is set, the statement's Range is stamped from the
// position of its first token to the position of whatever token follows it.
func (p *Parser) parseStatement() js_ast.Stmt {
	start := p.loc()
	stmt := p.parseStatementKind()
	if p.options.RetainRanges {
		stmt.Range = logger.Range{Loc: start, Len: p.loc().Start - start.Start}
	}
	return stmt
}

func (p *Parser) parseStatementKind() js_ast.Stmt {
	loc := p.loc()

	if p.cur().Kind == js_lexer.TOpenBrace {
		block := p.parseBlockStmt()
		return js_ast.Stmt{Loc: loc, Data: &block}
	}

	if p.cur().Kind == js_lexer.TSemicolon {
		p.advance()
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SEmpty{}}
	}

	if p.cur().Kind == js_lexer.TAt {
		decorators := p.parseDecorators()
		if !p.isContextualKeyword("class") {
			p.unexpected()
		}
		return p.parseClassDeclWithDecorators(decorators)
	}

	if p.cur().Kind == js_lexer.TIdentifier {
		switch p.cur().Identifier {
		case "var":
			return p.parseVariableStmt(js_ast.VariableVar)
		case "let":
			if p.startsBindingList() {
				return p.parseVariableStmt(js_ast.VariableLet)
			}
		case "const":
			return p.parseVariableStmt(js_ast.VariableConst)
		case "function":
			return p.parseFunctionDecl(false)
		case "async":
			if p.peek().Kind == js_lexer.TIdentifier && p.peek().Identifier == "function" {
				p.advance()
				return p.parseFunctionDecl(true)
			}
		case "class":
			return p.parseClassDecl()
		case "if":
			return p.parseIfStmt()
		case "for":
			return p.parseForStmt()
		case "while":
			return p.parseWhileStmt()
		case "do":
			return p.parseDoWhileStmt()
		case "with":
			return p.parseWithStmt()
		case "switch":
			return p.parseSwitchStmt()
		case "try":
			return p.parseTryStmt()
		case "return":
			return p.parseReturnStmt()
		case "throw":
			return p.parseThrowStmt()
		case "break":
			return p.parseBreakStmt()
		case "continue":
			return p.parseContinueStmt()
		case "debugger":
			p.advance()
			p.semicolon()
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SDebugger{}}
		}

		if p.peek().Kind == js_lexer.TColon {
			name := p.cur().Identifier
			p.advance()
			p.advance()
			body := p.parseStatement()
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SLabel{Name: name, NameLoc: loc, Stmt: body}}
		}
	}

	return p.parseExpressionStmt()
}

// startsBindingList disambiguates the contextual "let" keyword: "let [" and
// "let {" and "let ident" begin a LexicalDeclaration, while "let" followed
// by anything else (e.g. "let(x)" as a call, "let;" as an identifier
// reference) does not.
func (p *Parser) startsBindingList() bool {
	peek := p.peek()
	return peek.Kind == js_lexer.TIdentifier || peek.Kind == js_lexer.TOpenBracket || peek.Kind == js_lexer.TOpenBrace
}

func (p *Parser) parseBlockStmt() js_ast.SBlock {
	p.expect(js_lexer.TOpenBrace)
	var stmts []js_ast.Stmt
	for p.cur().Kind != js_lexer.TCloseBrace && p.cur().Kind != js_lexer.TEndOfFile {
		stmts = append(stmts, p.parseStatement())
	}
	closeLoc := p.loc()
	p.expect(js_lexer.TCloseBrace)
	return js_ast.SBlock{Stmts: stmts, CloseBraceLoc: closeLoc}
}

// parseExpressionStmt implements ExpressionStatement (section 4.4.4): by the
// time control reaches here, parseStatement has already routed "{", "var",
// "function", "class", and "async function" to their own productions, so the
// lookahead restriction on those tokens is structural rather than checked.
func (p *Parser) parseExpressionStmt() js_ast.Stmt {
	loc := p.loc()
	p.expectExprNext()
	expr := p.parseExpr(js_ast.LLowest)
	p.semicolon()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SExpr{Value: expr}}
}

// --- Declarations ---

func (p *Parser) parseVariableStmt(kind js_ast.VariableKind) js_ast.Stmt {
	loc := p.loc()
	p.advance() // consume "var"/"let"/"const"
	decls := p.parseVariableDeclarationList()
	p.semicolon()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SVariable{Kind: kind, Declarators: decls}}
}

func (p *Parser) parseVariableDeclarationList() []js_ast.Declarator {
	var decls []js_ast.Declarator
	for {
		binding := p.parseBindingTarget()
		var value js_ast.Expr
		if p.cur().Kind == js_lexer.TEquals {
			p.expectExprNext()
			p.advance()
			value = p.parseExpr(js_ast.LComma + 1)
		}
		decls = append(decls, js_ast.Declarator{Binding: binding, ValueOrNil: value})
		if p.cur().Kind != js_lexer.TComma {
			break
		}
		p.expectExprNext()
		p.advance()
	}
	return decls
}

// parseBindingTarget parses the destructuring-pattern grammar (BindingIdentifier
// / ArrayBindingPattern / ObjectBindingPattern) directly, rather than through
// the expression cover grammar, since declarations, parameters, and catch
// clauses never need the ambiguity an expression position does.
func (p *Parser) parseBindingTarget() js_ast.Binding {
	loc := p.loc()
	switch p.cur().Kind {
	case js_lexer.TOpenBracket:
		p.expectExprNext()
		p.advance()
		var items []js_ast.ArrayBinding
		hasSpread := false
		for p.cur().Kind != js_lexer.TCloseBracket {
			if p.cur().Kind == js_lexer.TComma {
				items = append(items, js_ast.ArrayBinding{Binding: js_ast.Binding{Loc: p.loc(), Data: &js_ast.BMissing{}}})
				p.expectExprNext()
				p.advance()
				continue
			}
			if p.cur().Kind == js_lexer.TDotDotDot {
				p.expectExprNext()
				p.advance()
				hasSpread = true
				items = append(items, js_ast.ArrayBinding{Binding: p.parseBindingTarget()})
				break
			}
			b := p.parseBindingTarget()
			var def js_ast.Expr
			if p.cur().Kind == js_lexer.TEquals {
				p.expectExprNext()
				p.advance()
				def = p.parseExpr(js_ast.LComma + 1)
			}
			items = append(items, js_ast.ArrayBinding{Binding: b, DefaultValueOrNil: def})
			if p.cur().Kind != js_lexer.TComma {
				break
			}
			p.expectExprNext()
			p.advance()
		}
		p.expect(js_lexer.TCloseBracket)
		return js_ast.Binding{Loc: loc, Data: &js_ast.BArray{Items: items, HasSpread: hasSpread}}

	case js_lexer.TOpenBrace:
		p.expectExprNext()
		p.advance()
		var props []js_ast.PropertyBinding
		hasSpread := false
		for p.cur().Kind != js_lexer.TCloseBrace {
			if p.cur().Kind == js_lexer.TDotDotDot {
				p.expectExprNext()
				p.advance()
				hasSpread = true
				rest := p.parseBindingTarget()
				props = append(props, js_ast.PropertyBinding{Value: rest, IsSpread: true})
				break
			}
			key, isComputed := p.parsePropertyKey()
			var value js_ast.Binding
			if p.cur().Kind == js_lexer.TColon {
				p.expectExprNext()
				p.advance()
				value = p.parseBindingTarget()
			} else if ident, ok := key.Data.(*js_ast.EIdentifier); ok {
				value = js_ast.Binding{Loc: key.Loc, Data: &js_ast.BIdentifier{Name: ident.Name}}
			}
			var def js_ast.Expr
			if p.cur().Kind == js_lexer.TEquals {
				p.expectExprNext()
				p.advance()
				def = p.parseExpr(js_ast.LComma + 1)
			}
			props = append(props, js_ast.PropertyBinding{Key: key, Value: value, DefaultValueOrNil: def, IsComputed: isComputed})
			if p.cur().Kind != js_lexer.TComma {
				break
			}
			p.expectExprNext()
			p.advance()
		}
		p.expect(js_lexer.TCloseBrace)
		return js_ast.Binding{Loc: loc, Data: &js_ast.BObject{Properties: props, HasSpread: hasSpread}}

	default:
		name := p.cur().Identifier
		if p.isReservedWord(name) {
			p.addError(loc, ErrReservedWordAsIdentifier, "%q is a reserved word", name)
		}
		p.expect(js_lexer.TIdentifier)
		return js_ast.Binding{Loc: loc, Data: &js_ast.BIdentifier{Name: name}}
	}
}

func (p *Parser) parseFunctionDecl(isAsync bool) js_ast.Stmt {
	loc := p.loc()
	p.advance() // consume "function"
	isGenerator := false
	if p.cur().Kind == js_lexer.TAsterisk {
		p.expectExprNext()
		p.advance()
		isGenerator = true
	}
	nameLoc := p.loc()
	name := p.cur().Identifier
	p.expect(js_lexer.TIdentifier)
	fn := p.parseFunctionTail(isAsync, isGenerator)
	fn.Name = &js_ast.LocName{Name: name, Loc: nameLoc}
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SFunction{Fn: fn}}
}

func (p *Parser) parseFunctionExpr(isAsync bool) js_ast.Expr {
	loc := p.loc()
	p.advance() // consume "function"
	isGenerator := false
	if p.cur().Kind == js_lexer.TAsterisk {
		p.expectExprNext()
		p.advance()
		isGenerator = true
	}
	var name *js_ast.LocName
	if p.cur().Kind == js_lexer.TIdentifier {
		nameLoc := p.loc()
		n := p.cur().Identifier
		p.advance()
		name = &js_ast.LocName{Name: n, Loc: nameLoc}
	}
	fn := p.parseFunctionTail(isAsync, isGenerator)
	fn.Name = name
	return js_ast.Expr{Loc: loc, Data: &js_ast.EFunction{Fn: fn}}
}

// parseFunctionTail parses the shared "(params) { body }" suffix of function
// declarations, function expressions, and object/class methods.
func (p *Parser) parseFunctionTail(isAsync bool, isGenerator bool) js_ast.Fn {
	openParenLoc := p.loc()
	p.expect(js_lexer.TOpenParen)

	saved := p.params
	p.params.Yield = isGenerator
	p.params.Await = isAsync
	p.params.Return = true
	defer func() { p.params = saved }()

	var args []js_ast.Arg
	hasRest := false
	for p.cur().Kind != js_lexer.TCloseParen {
		if p.cur().Kind == js_lexer.TDotDotDot {
			p.expectExprNext()
			p.advance()
			hasRest = true
			binding := p.parseBindingTarget()
			args = append(args, js_ast.Arg{Binding: binding})
			break
		}
		binding := p.parseBindingTarget()
		var def js_ast.Expr
		if p.cur().Kind == js_lexer.TEquals {
			p.expectExprNext()
			p.advance()
			def = p.parseExpr(js_ast.LComma + 1)
		}
		args = append(args, js_ast.Arg{Binding: binding, DefaultOrNil: def})
		if p.cur().Kind != js_lexer.TComma {
			break
		}
		p.expectExprNext()
		p.advance()
	}
	p.expect(js_lexer.TCloseParen)

	block := p.parseBlockStmt()
	return js_ast.Fn{
		Args: args, Body: js_ast.FnBody{Block: block, Loc: block.CloseBraceLoc},
		OpenParenLoc: openParenLoc, IsAsync: isAsync, IsGenerator: isGenerator, HasRestArg: hasRest,
	}
}

// --- Control flow ---

func (p *Parser) parseIfStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	p.expect(js_lexer.TOpenParen)
	p.expectExprNext()
	test := p.parseExpr(js_ast.LLowest)
	p.expect(js_lexer.TCloseParen)
	yes := p.parseStatement()
	var no js_ast.Stmt
	if p.isContextualKeyword("else") {
		p.advance()
		no = p.parseStatement()
	}
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SIf{Test: test, Yes: yes, NoOrNil: no}}
}

func (p *Parser) parseWhileStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	p.expect(js_lexer.TOpenParen)
	p.expectExprNext()
	test := p.parseExpr(js_ast.LLowest)
	p.expect(js_lexer.TCloseParen)
	body := p.parseStatement()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SWhile{Test: test, Body: body}}
}

func (p *Parser) parseDoWhileStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	body := p.parseStatement()
	p.expectContextualKeyword("while")
	p.expect(js_lexer.TOpenParen)
	p.expectExprNext()
	test := p.parseExpr(js_ast.LLowest)
	p.expect(js_lexer.TCloseParen)
	if p.cur().Kind == js_lexer.TSemicolon {
		p.advance()
	}
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SDoWhile{Body: body, Test: test}}
}

func (p *Parser) parseWithStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	if p.params.Strict {
		p.addError(loc, ErrWithInStrictMode, "\"with\" statements are not allowed in strict mode")
	}
	p.expect(js_lexer.TOpenParen)
	p.expectExprNext()
	value := p.parseExpr(js_ast.LLowest)
	p.expect(js_lexer.TCloseParen)
	bodyLoc := p.loc()
	body := p.parseStatement()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SWith{Value: value, Body: body, BodyLoc: bodyLoc}}
}

func (p *Parser) parseSwitchStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	p.expect(js_lexer.TOpenParen)
	p.expectExprNext()
	test := p.parseExpr(js_ast.LLowest)
	p.expect(js_lexer.TCloseParen)
	bodyLoc := p.loc()
	p.expect(js_lexer.TOpenBrace)

	var cases []js_ast.Case
	seenDefault := false
	for p.cur().Kind != js_lexer.TCloseBrace {
		var value js_ast.Expr
		if p.isContextualKeyword("default") {
			if seenDefault {
				p.addError(p.loc(), ErrExpectedToken, "a switch statement may only have one \"default\" clause")
			}
			seenDefault = true
			p.advance()
		} else {
			p.expectContextualKeyword("case")
			p.expectExprNext()
			value = p.parseExpr(js_ast.LLowest)
		}
		p.expect(js_lexer.TColon)
		var body []js_ast.Stmt
		for p.cur().Kind != js_lexer.TCloseBrace && !p.isContextualKeyword("case") && !p.isContextualKeyword("default") {
			body = append(body, p.parseStatement())
		}
		cases = append(cases, js_ast.Case{ValueOrNil: value, Body: body})
	}
	p.expect(js_lexer.TCloseBrace)
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SSwitch{Test: test, Cases: cases, BodyLoc: bodyLoc}}
}

func (p *Parser) parseTryStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	block := p.parseBlockStmt()

	var catch *js_ast.Catch
	var finally *js_ast.Finally

	if p.isContextualKeyword("catch") {
		catchLoc := p.loc()
		p.advance()
		var binding js_ast.Binding
		hasBinding := false
		if p.cur().Kind == js_lexer.TOpenParen {
			p.advance()
			binding = p.parseBindingTarget()
			hasBinding = true
			p.expect(js_lexer.TCloseParen)
		}
		catchBlock := p.parseBlockStmt()
		c := js_ast.Catch{Block: catchBlock, Loc: catchLoc}
		if hasBinding {
			c.BindingOrNil = binding
		}
		catch = &c
	}
	if p.isContextualKeyword("finally") {
		finallyLoc := p.loc()
		p.advance()
		finallyBlock := p.parseBlockStmt()
		finally = &js_ast.Finally{Block: finallyBlock, Loc: finallyLoc}
	}
	if catch == nil && finally == nil {
		p.addError(loc, ErrExpectedToken, "expected \"catch\" or \"finally\" after \"try\" block")
	}
	return js_ast.Stmt{Loc: loc, Data: &js_ast.STry{Block: block, Catch: catch, Finally: finally}}
}

func (p *Parser) parseReturnStmt() js_ast.Stmt {
	loc := p.loc()
	if !p.params.Return {
		p.addError(loc, ErrInRestricted, "\"return\" is only valid inside a function")
	}
	p.advance()
	var value js_ast.Expr
	if !p.precededByLineTerminator() &&
		p.cur().Kind != js_lexer.TSemicolon &&
		p.cur().Kind != js_lexer.TCloseBrace &&
		p.cur().Kind != js_lexer.TEndOfFile {
		p.expectExprNext()
		value = p.parseExpr(js_ast.LLowest)
	}
	p.semicolon()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SReturn{ValueOrNil: value}}
}

func (p *Parser) parseThrowStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	if p.precededByLineTerminator() {
		p.addError(loc, ErrNoLineTerminatorViolated, "no line terminator is allowed between \"throw\" and its expression")
	}
	p.expectExprNext()
	value := p.parseExpr(js_ast.LLowest)
	p.semicolon()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SThrow{Value: value}}
}

func (p *Parser) parseBreakStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	var label *js_ast.LocName
	if !p.precededByLineTerminator() && p.cur().Kind == js_lexer.TIdentifier && !p.isReservedWord(p.cur().Identifier) {
		nameLoc := p.loc()
		name := p.cur().Identifier
		p.advance()
		label = &js_ast.LocName{Name: name, Loc: nameLoc}
	}
	p.semicolon()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SBreak{Label: label}}
}

func (p *Parser) parseContinueStmt() js_ast.Stmt {
	loc := p.loc()
	p.advance()
	var label *js_ast.LocName
	if !p.precededByLineTerminator() && p.cur().Kind == js_lexer.TIdentifier && !p.isReservedWord(p.cur().Identifier) {
		nameLoc := p.loc()
		name := p.cur().Identifier
		p.advance()
		label = &js_ast.LocName{Name: name, Loc: nameLoc}
	}
	p.semicolon()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SContinue{Label: label}}
}
