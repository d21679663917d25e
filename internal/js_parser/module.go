package js_parser

import (
	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/js_lexer"
)

// parseImportDeclaration implements every form named in section 3:
// default-only, default+namespace, namespace-only, default+named-list,
// named-list-only, and the bare "import 'path'" form.
func (p *Parser) parseImportDeclaration() js_ast.Stmt {
	loc := p.loc()
	p.advance() // consume "import"

	if p.cur().Kind == js_lexer.TStringLiteral {
		path := p.cur().StringValue
		p.advance()
		p.semicolon()
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SImport{ImportPath: path}}
	}

	imp := &js_ast.SImport{}

	if p.cur().Kind == js_lexer.TIdentifier {
		nameLoc := p.loc()
		name := p.cur().Identifier
		p.advance()
		imp.DefaultName = &js_ast.LocName{Name: name, Loc: nameLoc}
		if p.cur().Kind == js_lexer.TComma {
			p.advance()
		}
	}

	if p.cur().Kind == js_lexer.TAsterisk {
		p.advance()
		p.expectContextualKeyword("as")
		nameLoc := p.loc()
		name := p.cur().Identifier
		p.expect(js_lexer.TIdentifier)
		imp.StarName = &js_ast.LocName{Name: name, Loc: nameLoc}
	} else if p.cur().Kind == js_lexer.TOpenBrace {
		imp.Items = p.parseClauseItemList()
	}

	p.expectContextualKeyword("from")
	path := p.cur().StringValue
	p.expect(js_lexer.TStringLiteral)
	imp.ImportPath = path
	p.semicolon()
	return js_ast.Stmt{Loc: loc, Data: imp}
}

func (p *Parser) parseClauseItemList() []js_ast.ClauseItem {
	p.expect(js_lexer.TOpenBrace)
	var items []js_ast.ClauseItem
	for p.cur().Kind != js_lexer.TCloseBrace {
		nameLoc := p.loc()
		name := p.cur().Identifier
		p.expect(js_lexer.TIdentifier)
		alias := name
		if p.isContextualKeyword("as") {
			p.advance()
			alias = p.cur().Identifier
			p.expect(js_lexer.TIdentifier)
		}
		items = append(items, js_ast.ClauseItem{Name: name, Alias: alias, NameLoc: nameLoc})
		if p.cur().Kind != js_lexer.TComma {
			break
		}
		p.advance()
	}
	p.expect(js_lexer.TCloseBrace)
	return items
}

// parseExportDeclaration implements the five export forms of section 3:
// named-list (with optional re-export "from"), star re-export (with
// optional namespace alias), default, and a wrapped declaration.
func (p *Parser) parseExportDeclaration() js_ast.Stmt {
	loc := p.loc()
	p.advance() // consume "export"

	if p.cur().Kind == js_lexer.TAsterisk {
		p.advance()
		var starName *js_ast.LocName
		if p.isContextualKeyword("as") {
			p.advance()
			nameLoc := p.loc()
			name := p.cur().Identifier
			p.expect(js_lexer.TIdentifier)
			starName = &js_ast.LocName{Name: name, Loc: nameLoc}
		}
		p.expectContextualKeyword("from")
		path := p.cur().StringValue
		p.expect(js_lexer.TStringLiteral)
		p.semicolon()
		if starName != nil {
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportFrom{StarName: starName, ImportPath: path}}
		}
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportStar{ImportPath: path}}
	}

	if p.cur().Kind == js_lexer.TOpenBrace {
		items := p.parseClauseItemList()
		if p.isContextualKeyword("from") {
			p.advance()
			path := p.cur().StringValue
			p.expect(js_lexer.TStringLiteral)
			p.semicolon()
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportFrom{Items: items, ImportPath: path}}
		}
		p.semicolon()
		return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportClause{Items: items}}
	}

	if p.isContextualKeyword("default") {
		p.advance()
		defLoc := p.loc()
		switch {
		case p.isContextualKeyword("function"):
			stmt := p.parseFunctionDeclOrAnonymous(false)
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDefault{Value: stmt}}
		case p.isContextualKeyword("async") && p.peek().Identifier == "function":
			p.advance()
			stmt := p.parseFunctionDeclOrAnonymous(true)
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDefault{Value: stmt}}
		case p.isContextualKeyword("class"):
			class := p.parseClassCommon(nil)
			stmt := js_ast.Stmt{Loc: defLoc, Data: &js_ast.SClass{Class: class}}
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDefault{Value: stmt}}

		case p.cur().Kind == js_lexer.TAt:
			decorators := p.parseDecorators()
			if !p.isContextualKeyword("class") {
				p.unexpected()
			}
			class := p.parseClassCommon(decorators)
			stmt := js_ast.Stmt{Loc: defLoc, Data: &js_ast.SClass{Class: class}}
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDefault{Value: stmt}}
		default:
			p.expectExprNext()
			expr := p.parseExpr(js_ast.LComma + 1)
			p.semicolon()
			stmt := js_ast.Stmt{Loc: defLoc, Data: &js_ast.SExpr{Value: expr}}
			return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDefault{Value: stmt}}
		}
	}

	decl := p.parseStatement()
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SExportDecl{Value: decl}}
}

// parseFunctionDeclOrAnonymous parses a function declaration whose name is
// optional, for "export default function() {}".
func (p *Parser) parseFunctionDeclOrAnonymous(isAsync bool) js_ast.Stmt {
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
	return js_ast.Stmt{Loc: loc, Data: &js_ast.SFunction{Fn: fn}}
}
