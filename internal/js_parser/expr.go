package js_parser

import (
	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/js_lexer"
	"github.com/nilsvast/ecmaparse/internal/logger"
)

// parseExpr parses an AssignmentExpression-or-looser production bound from
// below by level (section 4.4.6): LLowest and LComma admit the comma
// operator, LComma+1 stops before it, and so on up the ladder in
// js_ast.OpTable.
func (p *Parser) parseExpr(level js_ast.L) js_ast.Expr {
	left := p.parsePrefix()
	return p.parseSuffix(left, level)
}

// parseExpressionTail wraps parseExpr(LLowest) starting from an
// already-parsed left operand, used by the directive-prologue fallback path
// where the leading string literal was consumed before we knew it wasn't a
// directive.
func (p *Parser) parseExpressionTail(left js_ast.Expr) js_ast.Expr {
	return p.parseSuffix(left, js_ast.LLowest)
}

func opCodeForToken(tok js_lexer.Token, inAllowed bool) (js_ast.OpCode, bool) {
	switch tok.Kind {
	case js_lexer.TComma:
		return js_ast.BinOpComma, true
	case js_lexer.TEquals:
		return js_ast.BinOpAssign, true
	case js_lexer.TPlusEquals:
		return js_ast.BinOpAddAssign, true
	case js_lexer.TMinusEquals:
		return js_ast.BinOpSubAssign, true
	case js_lexer.TAsteriskEquals:
		return js_ast.BinOpMulAssign, true
	case js_lexer.TSlashEquals:
		return js_ast.BinOpDivAssign, true
	case js_lexer.TPercentEquals:
		return js_ast.BinOpRemAssign, true
	case js_lexer.TAsteriskAsteriskEquals:
		return js_ast.BinOpPowAssign, true
	case js_lexer.TLessThanLessThanEquals:
		return js_ast.BinOpShlAssign, true
	case js_lexer.TGreaterThanGreaterThanEquals:
		return js_ast.BinOpShrAssign, true
	case js_lexer.TGreaterThanGreaterThanGreaterThanEquals:
		return js_ast.BinOpUShrAssign, true
	case js_lexer.TBarEquals:
		return js_ast.BinOpBitwiseOrAssign, true
	case js_lexer.TAmpersandEquals:
		return js_ast.BinOpBitwiseAndAssign, true
	case js_lexer.TCaretEquals:
		return js_ast.BinOpBitwiseXorAssign, true
	case js_lexer.TQuestionQuestionEquals:
		return js_ast.BinOpNullishCoalescingAssign, true
	case js_lexer.TBarBarEquals:
		return js_ast.BinOpLogicalOrAssign, true
	case js_lexer.TAmpersandAmpersandEquals:
		return js_ast.BinOpLogicalAndAssign, true
	case js_lexer.TBarBar:
		return js_ast.BinOpLogicalOr, true
	case js_lexer.TAmpersandAmpersand:
		return js_ast.BinOpLogicalAnd, true
	case js_lexer.TQuestionQuestion:
		return js_ast.BinOpNullishCoalescing, true
	case js_lexer.TBar:
		return js_ast.BinOpBitwiseOr, true
	case js_lexer.TCaret:
		return js_ast.BinOpBitwiseXor, true
	case js_lexer.TAmpersand:
		return js_ast.BinOpBitwiseAnd, true
	case js_lexer.TEqualsEquals:
		return js_ast.BinOpLooseEq, true
	case js_lexer.TExclamationEquals:
		return js_ast.BinOpLooseNe, true
	case js_lexer.TEqualsEqualsEquals:
		return js_ast.BinOpStrictEq, true
	case js_lexer.TExclamationEqualsEquals:
		return js_ast.BinOpStrictNe, true
	case js_lexer.TLessThan:
		return js_ast.BinOpLt, true
	case js_lexer.TLessThanEquals:
		return js_ast.BinOpLe, true
	case js_lexer.TGreaterThan:
		return js_ast.BinOpGt, true
	case js_lexer.TGreaterThanEquals:
		return js_ast.BinOpGe, true
	case js_lexer.TLessThanLessThan:
		return js_ast.BinOpShl, true
	case js_lexer.TGreaterThanGreaterThan:
		return js_ast.BinOpShr, true
	case js_lexer.TGreaterThanGreaterThanGreaterThan:
		return js_ast.BinOpUShr, true
	case js_lexer.TPlus:
		return js_ast.BinOpAdd, true
	case js_lexer.TMinus:
		return js_ast.BinOpSub, true
	case js_lexer.TAsterisk:
		return js_ast.BinOpMul, true
	case js_lexer.TSlash:
		return js_ast.BinOpDiv, true
	case js_lexer.TPercent:
		return js_ast.BinOpRem, true
	case js_lexer.TAsteriskAsterisk:
		return js_ast.BinOpPow, true
	case js_lexer.TIdentifier:
		if tok.Identifier == "instanceof" {
			return js_ast.BinOpInstanceof, true
		}
		if tok.Identifier == "in" {
			if !inAllowed {
				return 0, false
			}
			return js_ast.BinOpIn, true
		}
	}
	return 0, false
}

// parseSuffix implements the member/call chain (section 4.4.7), the update
// postfix operators, and the table-driven binary/conditional/assignment
// ladder (section 4.4.6), all continuing until an operator binds looser than
// level or the grammar simply runs out of suffixes.
func (p *Parser) parseSuffix(left js_ast.Expr, level js_ast.L) js_ast.Expr {
	optional := false

	for {
		switch p.cur().Kind {
		case js_lexer.TDot:
			p.advance()
			if p.cur().Kind == js_lexer.TPrivateIdentifier {
				name := p.cur().Identifier
				nameLoc := p.loc()
				p.advance()
				chain := js_ast.OptionalChainNone
				if optional {
					chain = js_ast.OptionalChainContinue
				}
				left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EIndex{
					Target:        left,
					Index:         js_ast.Expr{Loc: nameLoc, Data: &js_ast.EPrivateIdentifier{Name: name}},
					OptionalChain: chain,
				}}
				continue
			}
			name := p.cur().Identifier
			nameLoc := p.loc()
			p.expect(js_lexer.TIdentifier)
			chain := js_ast.OptionalChainNone
			if optional {
				chain = js_ast.OptionalChainContinue
			}
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EDot{Target: left, Name: name, NameLoc: nameLoc, OptionalChain: chain}}
			continue

		case js_lexer.TQuestionDot:
			p.advance()
			optional = true
			switch p.cur().Kind {
			case js_lexer.TOpenParen:
				args, closeLoc := p.parseCallArgs()
				left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.ECall{
					Target: left, Args: args, CloseParenLoc: closeLoc, OptionalChain: js_ast.OptionalChainStart,
				}}
			case js_lexer.TOpenBracket:
				p.expectExprNext()
				p.advance()
				index := p.parseExpr(js_ast.LLowest)
				p.expect(js_lexer.TCloseBracket)
				left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EIndex{Target: left, Index: index, OptionalChain: js_ast.OptionalChainStart}}
			default:
				name := p.cur().Identifier
				nameLoc := p.loc()
				p.expect(js_lexer.TIdentifier)
				left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EDot{Target: left, Name: name, NameLoc: nameLoc, OptionalChain: js_ast.OptionalChainStart}}
			}
			continue

		case js_lexer.TOpenBracket:
			p.expectExprNext()
			p.advance()
			index := p.parseExpr(js_ast.LLowest)
			p.expect(js_lexer.TCloseBracket)
			chain := js_ast.OptionalChainNone
			if optional {
				chain = js_ast.OptionalChainContinue
			}
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EIndex{Target: left, Index: index, OptionalChain: chain}}
			continue

		case js_lexer.TOpenParen:
			args, closeLoc := p.parseCallArgs()
			chain := js_ast.OptionalChainNone
			if optional {
				chain = js_ast.OptionalChainContinue
			}
			isSuperCall := false
			if _, ok := left.Data.(*js_ast.ESuper); ok {
				isSuperCall = true
			}
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.ECall{
				Target: left, Args: args, CloseParenLoc: closeLoc, OptionalChain: chain, IsSuperCall: isSuperCall,
			}}
			continue

		case js_lexer.TTemplateNoSubstitution, js_lexer.TTemplateHead:
			tag := left
			tok := p.cur()
			if tok.Kind == js_lexer.TTemplateNoSubstitution {
				headLoc := p.loc()
				p.advance()
				left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.ETaggedTemplate{
					Tag: tag, Head: tok.TemplateCooked, HeadRaw: tok.TemplateRaw, HeadLoc: headLoc, HeadHasBadEscape: tok.HasBadEscape,
				}}
				continue
			}
			tmpl := p.parseTemplateLiteral(true)
			t := tmpl.Data.(*js_ast.ETemplate)
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.ETaggedTemplate{
				Tag: tag, Head: t.Head, HeadRaw: t.HeadRaw, Parts: t.Parts, HeadLoc: t.HeadLoc, HeadHasBadEscape: t.HeadHasBadEscape,
			}}
			continue

		case js_lexer.TPlusPlus, js_lexer.TMinusMinus:
			if level >= js_ast.LPostfix || p.precededByLineTerminator() {
				return left
			}
			op := js_ast.UnOpPostInc
			if p.cur().Kind == js_lexer.TMinusMinus {
				op = js_ast.UnOpPostDec
			}
			if !js_ast.IsValidAssignmentTarget(left) {
				p.addError(left.Loc, ErrInvalidAssignmentTarget, "invalid update target")
			}
			p.advance()
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EUnary{Value: left, Op: op}}
			continue
		}

		if p.cur().Kind == js_lexer.TQuestion && level <= js_ast.LConditional {
			p.expectExprNext()
			p.advance()
			yes := p.parseExpr(js_ast.LAssign)
			p.expectExprNext()
			p.expect(js_lexer.TColon)
			no := p.parseExpr(js_ast.LAssign)
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EConditional{Test: left, Yes: yes, No: no}}
			optional = false
			continue
		}

		op, ok := opCodeForToken(p.cur(), p.params.In)
		if !ok || op.Level() < level {
			return left
		}

		if target := op.BinaryAssignTarget(); target != js_ast.AssignTargetNone {
			if !js_ast.IsValidAssignmentTarget(left) {
				p.addError(left.Loc, ErrInvalidAssignmentTarget, "invalid assignment target")
			}
		}

		p.expectExprNext()
		p.advance()

		var right js_ast.Expr
		if op.IsRightAssociative() {
			right = p.parseExpr(op.Level())
		} else {
			right = p.parseExpr(op.Level() + 1)
		}
		left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EBinary{Left: left, Right: right, Op: op}}
		optional = false
	}
}

func (p *Parser) parseCallArgs() ([]js_ast.Expr, logger.Loc) {
	p.expectExprNext()
	p.advance() // consume "("
	var args []js_ast.Expr
	for p.cur().Kind != js_lexer.TCloseParen {
		if p.cur().Kind == js_lexer.TDotDotDot {
			spreadLoc := p.loc()
			p.expectExprNext()
			p.advance()
			value := p.parseExpr(js_ast.LComma + 1)
			args = append(args, js_ast.Expr{Loc: spreadLoc, Data: &js_ast.ESpread{Value: value}})
		} else {
			args = append(args, p.parseExpr(js_ast.LComma+1))
		}
		if p.cur().Kind != js_lexer.TComma {
			break
		}
		p.expectExprNext()
		p.advance()
	}
	closeLoc := p.loc()
	p.expect(js_lexer.TCloseParen)
	return args, closeLoc
}

// parsePrefix implements PrimaryExpression plus the unary/prefix-update
// tiers above the binary ladder.
func (p *Parser) parsePrefix() js_ast.Expr {
	loc := p.loc()
	tok := p.cur()

	switch tok.Kind {
	case js_lexer.TNumericLiteral:
		value := tok.Number
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ENumber{Value: value}}

	case js_lexer.TStringLiteral:
		value := tok.StringValue
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EString{Value: value}}

	case js_lexer.TTemplateNoSubstitution, js_lexer.TTemplateHead:
		return p.parseTemplateLiteral(false)

	case js_lexer.TRegExpLiteral:
		pattern := tok.RegExpPattern
		flags := tok.RegExpFlags
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ERegExp{Pattern: pattern, Flags: flags}}

	case js_lexer.TPrivateIdentifier:
		name := tok.Identifier
		p.advance()
		if !p.isContextualKeyword("in") {
			p.addError(loc, ErrRestrictedLookahead, "private name outside \"in\" check")
		}
		return js_ast.Expr{Loc: loc, Data: &js_ast.EPrivateIdentifier{Name: name}}

	case js_lexer.TOpenParen:
		return p.parseParenExprOrArrowFn(false)

	case js_lexer.TOpenBracket:
		return p.parseArrayLiteral()

	case js_lexer.TOpenBrace:
		return p.parseObjectLiteral()

	case js_lexer.TPlus:
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpPos}}

	case js_lexer.TMinus:
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpNeg}}

	case js_lexer.TTilde:
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpCpl}}

	case js_lexer.TExclamation:
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpNot}}

	case js_lexer.TPlusPlus:
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		if !js_ast.IsValidAssignmentTarget(value) {
			p.addError(loc, ErrInvalidAssignmentTarget, "invalid update target")
		}
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpPreInc}}

	case js_lexer.TMinusMinus:
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		if !js_ast.IsValidAssignmentTarget(value) {
			p.addError(loc, ErrInvalidAssignmentTarget, "invalid update target")
		}
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpPreDec}}

	case js_lexer.TIdentifier:
		return p.parseIdentifierOrKeywordExpr()

	case js_lexer.TAt:
		decorators := p.parseDecorators()
		if !p.isContextualKeyword("class") {
			p.unexpected()
		}
		return p.parseClassExprWithDecorators(decorators)
	}

	p.unexpected()
	return js_ast.Expr{}
}

func (p *Parser) parseIdentifierOrKeywordExpr() js_ast.Expr {
	loc := p.loc()
	name := p.cur().Identifier

	switch name {
	case "this":
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EThis{}}

	case "super":
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ESuper{}}

	case "null":
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ENull{}}

	case "true":
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EBoolean{Value: true}}

	case "false":
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EBoolean{Value: false}}

	case "undefined":
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUndefined{}}

	case "void":
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpVoid}}

	case "typeof":
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpTypeof}}

	case "delete":
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LPrefix)
		if _, ok := value.Data.(*js_ast.EIdentifier); ok && p.params.Strict {
			p.addError(loc, ErrDeleteOfUnqualifiedIdentifier, "delete of an unqualified identifier")
		}
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Value: value, Op: js_ast.UnOpDelete}}

	case "new":
		return p.parseNewExpr()

	case "function":
		return p.parseFunctionExpr(false)

	case "class":
		return p.parseClassExpr()

	case "async":
		return p.parseAsyncExpr()

	case "yield":
		if p.params.Yield {
			return p.parseYieldExpr()
		}

	case "await":
		if p.params.Await {
			p.expectExprNext()
			p.advance()
			value := p.parseExpr(js_ast.LPrefix)
			return js_ast.Expr{Loc: loc, Data: &js_ast.EAwait{Value: value}}
		}

	case "import":
		return p.parseImportExpr()
	}

	if p.isReservedWord(name) {
		p.addError(loc, ErrReservedWordAsIdentifier, "%q is a reserved word", name)
	}

	p.advance()

	if p.cur().Kind == js_lexer.TEqualsGreaterThan && !p.precededByLineTerminator() {
		p.advance()
		args := []js_ast.Arg{{Binding: js_ast.Binding{Loc: loc, Data: &js_ast.BIdentifier{Name: name}}}}
		body, preferExpr := p.parseArrowBody(false)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EArrow{Args: args, Body: body, PreferExpr: preferExpr}}
	}

	return js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Name: name}}
}

func (p *Parser) parseAsyncExpr() js_ast.Expr {
	loc := p.loc()
	p.advance()

	if p.precededByLineTerminator() {
		return js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Name: "async"}}
	}

	if p.isContextualKeyword("function") {
		return p.parseFunctionExpr(true)
	}

	if p.cur().Kind == js_lexer.TIdentifier && !p.isReservedWord(p.cur().Identifier) {
		name := p.cur().Identifier
		paramLoc := p.loc()
		peek := p.peek()
		if peek.Kind == js_lexer.TEqualsGreaterThan {
			p.advance()
			p.advance()
			args := []js_ast.Arg{{Binding: js_ast.Binding{Loc: paramLoc, Data: &js_ast.BIdentifier{Name: name}}}}
			body, preferExpr := p.parseArrowBody(true)
			return js_ast.Expr{Loc: loc, Data: &js_ast.EArrow{Args: args, Body: body, IsAsync: true, PreferExpr: preferExpr}}
		}
	}

	if p.cur().Kind == js_lexer.TOpenParen {
		return p.parseParenExprOrArrowFn(true)
	}

	return js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Name: "async"}}
}

func (p *Parser) parseYieldExpr() js_ast.Expr {
	loc := p.loc()
	p.advance()

	isStar := false
	if p.cur().Kind == js_lexer.TAsterisk && !p.precededByLineTerminator() {
		p.expectExprNext()
		p.advance()
		isStar = true
	}

	var value js_ast.Expr
	canHaveValue := !p.precededByLineTerminator() &&
		p.cur().Kind != js_lexer.TSemicolon &&
		p.cur().Kind != js_lexer.TCloseParen &&
		p.cur().Kind != js_lexer.TCloseBracket &&
		p.cur().Kind != js_lexer.TCloseBrace &&
		p.cur().Kind != js_lexer.TColon &&
		p.cur().Kind != js_lexer.TComma &&
		p.cur().Kind != js_lexer.TEndOfFile
	if isStar || canHaveValue {
		value = p.parseExpr(js_ast.LYield)
	}

	return js_ast.Expr{Loc: loc, Data: &js_ast.EYield{ValueOrNil: value, IsStar: isStar}}
}

func (p *Parser) parseImportExpr() js_ast.Expr {
	loc := p.loc()
	p.advance()

	if p.cur().Kind == js_lexer.TDot {
		p.advance()
		p.expectContextualKeyword("meta")
		return js_ast.Expr{Loc: loc, Data: &js_ast.EImportMeta{}}
	}

	p.expect(js_lexer.TOpenParen)
	p.expectExprNext()
	value := p.parseExpr(js_ast.LComma + 1)
	var options js_ast.Expr
	if p.cur().Kind == js_lexer.TComma {
		p.expectExprNext()
		p.advance()
		if p.cur().Kind != js_lexer.TCloseParen {
			options = p.parseExpr(js_ast.LComma + 1)
		}
	}
	p.expect(js_lexer.TCloseParen)
	return js_ast.Expr{Loc: loc, Data: &js_ast.EImportCall{Expr: value, OptionsOrNil: options}}
}

func (p *Parser) parseNewExpr() js_ast.Expr {
	loc := p.loc()
	p.advance()

	if p.cur().Kind == js_lexer.TDot {
		p.advance()
		p.expectContextualKeyword("target")
		return js_ast.Expr{Loc: loc, Data: &js_ast.ENewTarget{}}
	}

	p.expectExprNext()
	target := p.parsePrefix()
	target = p.parseMemberChainOnly(target)

	var args []js_ast.Expr
	closeLoc := logger.Loc{}
	hasNoParens := true
	if p.cur().Kind == js_lexer.TOpenParen {
		args, closeLoc = p.parseCallArgs()
		hasNoParens = false
	}
	return js_ast.Expr{Loc: loc, Data: &js_ast.ENew{Target: target, Args: args, CloseParenLoc: closeLoc, HasNoCallParens: hasNoParens}}
}

// parseMemberChainOnly parses the Dot/Index suffixes of a "new" callee,
// stopping before any "(" so the constructor call's own argument list isn't
// swallowed as a suffix of the callee.
func (p *Parser) parseMemberChainOnly(left js_ast.Expr) js_ast.Expr {
	for {
		switch p.cur().Kind {
		case js_lexer.TDot:
			p.advance()
			name := p.cur().Identifier
			nameLoc := p.loc()
			p.expect(js_lexer.TIdentifier)
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EDot{Target: left, Name: name, NameLoc: nameLoc}}
		case js_lexer.TOpenBracket:
			p.expectExprNext()
			p.advance()
			index := p.parseExpr(js_ast.LLowest)
			p.expect(js_lexer.TCloseBracket)
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EIndex{Target: left, Index: index}}
		default:
			return left
		}
	}
}

func (p *Parser) parseArrayLiteral() js_ast.Expr {
	loc := p.loc()
	p.expectExprNext()
	p.advance() // consume "["

	var items []js_ast.Expr
	for p.cur().Kind != js_lexer.TCloseBracket {
		if p.cur().Kind == js_lexer.TComma {
			items = append(items, js_ast.Expr{Loc: p.loc(), Data: &js_ast.EMissing{}})
			p.expectExprNext()
			p.advance()
			continue
		}
		if p.cur().Kind == js_lexer.TDotDotDot {
			spreadLoc := p.loc()
			p.expectExprNext()
			p.advance()
			value := p.parseExpr(js_ast.LComma + 1)
			items = append(items, js_ast.Expr{Loc: spreadLoc, Data: &js_ast.ESpread{Value: value}})
		} else {
			items = append(items, p.parseExpr(js_ast.LComma+1))
		}
		if p.cur().Kind != js_lexer.TComma {
			break
		}
		p.expectExprNext()
		p.advance()
	}
	closeLoc := p.loc()
	p.expect(js_lexer.TCloseBracket)
	return js_ast.Expr{Loc: loc, Data: &js_ast.EArray{Items: items, CloseBracketLoc: closeLoc}}
}

func (p *Parser) parseObjectLiteral() js_ast.Expr {
	loc := p.loc()
	p.expectExprNext()
	p.advance() // consume "{"

	var props []js_ast.Property
	hasCoverInit := false
	for p.cur().Kind != js_lexer.TCloseBrace {
		if p.cur().Kind == js_lexer.TDotDotDot {
			p.expectExprNext()
			p.advance()
			value := p.parseExpr(js_ast.LComma + 1)
			props = append(props, js_ast.Property{
				Kind:       js_ast.PropertySpread,
				ValueOrNil: value,
			})
		} else {
			prop, wasShorthandDefault := p.parseObjectProperty()
			if wasShorthandDefault {
				hasCoverInit = true
			}
			props = append(props, prop)
		}
		if p.cur().Kind != js_lexer.TComma {
			break
		}
		p.expectExprNext()
		p.advance()
	}
	closeLoc := p.loc()
	p.expect(js_lexer.TCloseBrace)
	return js_ast.Expr{Loc: loc, Data: &js_ast.EObject{Properties: props, CloseBraceLoc: closeLoc, HasCoverInitializedName: hasCoverInit}}
}

func (p *Parser) parseObjectProperty() (js_ast.Property, bool) {
	loc := p.loc()
	isAsync := false
	isGenerator := false
	kind := js_ast.PropertyNormal

	if p.isContextualKeyword("async") {
		peek := p.peek()
		if peek.Kind != js_lexer.TColon && peek.Kind != js_lexer.TOpenParen &&
			peek.Kind != js_lexer.TComma && peek.Kind != js_lexer.TCloseBrace && !p.precededByLineTerminator() {
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
		which := p.cur().Identifier
		peek := p.peek()
		if peek.Kind != js_lexer.TColon && peek.Kind != js_lexer.TOpenParen &&
			peek.Kind != js_lexer.TComma && peek.Kind != js_lexer.TCloseBrace {
			p.advance()
			if which == "get" {
				kind = js_ast.PropertyGet
			} else {
				kind = js_ast.PropertySet
			}
		}
	}

	key, isComputed := p.parsePropertyKey()

	if p.cur().Kind == js_lexer.TOpenParen || isGenerator || isAsync || kind != js_ast.PropertyNormal {
		fn := p.parseFunctionTail(isAsync, isGenerator)
		return js_ast.Property{
			Key: key, IsComputed: isComputed, IsMethod: true, IsAsync: isAsync, IsGenerator: isGenerator,
			Kind:       kind,
			ValueOrNil: js_ast.Expr{Loc: loc, Data: &js_ast.EFunction{Fn: fn}},
		}, false
	}

	if p.cur().Kind == js_lexer.TColon {
		p.expectExprNext()
		p.advance()
		value := p.parseExpr(js_ast.LComma + 1)
		return js_ast.Property{Key: key, IsComputed: isComputed, ValueOrNil: value}, false
	}

	// Shorthand "{a}" or CoverInitializedName "{a = 1}", only legal once
	// reified as a BObject pattern per section 4.4.8.
	if p.cur().Kind == js_lexer.TEquals {
		p.expectExprNext()
		p.advance()
		def := p.parseExpr(js_ast.LComma + 1)
		return js_ast.Property{Key: key, ValueOrNil: key, InitializerOrNil: def, WasShorthand: true}, true
	}

	return js_ast.Property{Key: key, ValueOrNil: key, WasShorthand: true}, false
}

func (p *Parser) parsePropertyKey() (js_ast.Expr, bool) {
	loc := p.loc()
	switch p.cur().Kind {
	case js_lexer.TOpenBracket:
		p.expectExprNext()
		p.advance()
		key := p.parseExpr(js_ast.LComma + 1)
		p.expect(js_lexer.TCloseBracket)
		return key, true
	case js_lexer.TStringLiteral:
		value := p.cur().StringValue
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EString{Value: value}}, false
	case js_lexer.TNumericLiteral:
		value := p.cur().Number
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ENumber{Value: value}}, false
	case js_lexer.TPrivateIdentifier:
		name := p.cur().Identifier
		p.advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EPrivateIdentifier{Name: name}}, false
	default:
		name := p.cur().Identifier
		p.expect(js_lexer.TIdentifier)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Name: name}}, false
	}
}

func (p *Parser) parseParenExprOrArrowFn(isAsync bool) js_ast.Expr {
	loc := p.loc()
	p.expectExprNext()
	p.advance() // consume "("

	var items []js_ast.Expr
	hasRest := false
	for p.cur().Kind != js_lexer.TCloseParen {
		if p.cur().Kind == js_lexer.TDotDotDot {
			p.expectExprNext()
			p.advance()
			hasRest = true
			items = append(items, p.parseExpr(js_ast.LComma+1))
			break
		}
		items = append(items, p.parseExpr(js_ast.LComma+1))
		if p.cur().Kind != js_lexer.TComma {
			break
		}
		p.expectExprNext()
		p.advance()
	}
	p.expect(js_lexer.TCloseParen)

	if p.cur().Kind == js_lexer.TEqualsGreaterThan && !p.precededByLineTerminator() {
		return p.finishArrowFunction(loc, items, hasRest, isAsync)
	}

	if hasRest {
		p.addError(loc, ErrExpectedToken, "unexpected rest element outside an arrow parameter list")
	}
	if len(items) == 0 {
		p.addError(loc, ErrExpectedToken, "unexpected \")\"")
	}
	expr := items[0]
	for _, item := range items[1:] {
		expr = js_ast.Expr{Loc: expr.Loc, Data: &js_ast.EBinary{Left: expr, Right: item, Op: js_ast.BinOpComma}}
	}
	return expr
}

func (p *Parser) finishArrowFunction(loc logger.Loc, items []js_ast.Expr, hasRest bool, isAsync bool) js_ast.Expr {
	p.advance() // consume "=>"
	args := make([]js_ast.Arg, 0, len(items))
	for _, item := range items {
		expr := item
		var def js_ast.Expr
		if bin, ok := expr.Data.(*js_ast.EBinary); ok && bin.Op == js_ast.BinOpAssign {
			def = bin.Right
			expr = bin.Left
		}
		binding, ok := js_ast.ExprToBinding(expr)
		if !ok {
			p.addError(expr.Loc, ErrInvalidAssignmentTarget, "invalid arrow function parameter")
		}
		args = append(args, js_ast.Arg{Binding: binding, DefaultOrNil: def})
	}
	body, preferExpr := p.parseArrowBody(isAsync)
	return js_ast.Expr{Loc: loc, Data: &js_ast.EArrow{Args: args, Body: body, IsAsync: isAsync, HasRestArg: hasRest, PreferExpr: preferExpr}}
}

func (p *Parser) parseArrowBody(isAsync bool) (js_ast.FnBody, bool) {
	saved := p.params
	p.params.Await = isAsync
	p.params.Yield = false
	p.params.Return = true
	defer func() { p.params = saved }()

	if p.cur().Kind == js_lexer.TOpenBrace {
		block := p.parseBlockStmt()
		return js_ast.FnBody{Block: block, Loc: block.CloseBraceLoc}, false
	}
	p.expectExprNext()
	expr := p.parseExpr(js_ast.LComma + 1)
	block := js_ast.SBlock{Stmts: []js_ast.Stmt{{Loc: expr.Loc, Data: &js_ast.SReturn{ValueOrNil: expr}}}}
	return js_ast.FnBody{Block: block, Loc: expr.Loc}, true
}

// parseTemplateLiteral parses a template (with or without substitutions).
// tagged distinguishes "tag`...`" from a plain template: a malformed escape
// sequence inside a template never blocks the lexer (it only marks
// HasBadEscape and leaves the cooked text absent for that run), but it is
// only actually legal source text when the template is tagged — a tag
// function can still observe the bad run as undefined in its cooked array.
// A plain template with a bad escape is a SyntaxError, reported here once the
// caller tells us whether this template turned out to be tagged.
func (p *Parser) parseTemplateLiteral(tagged bool) js_ast.Expr {
	loc := p.loc()
	tok := p.cur()

	if tok.Kind == js_lexer.TTemplateNoSubstitution {
		cooked := tok.TemplateCooked
		p.advance()
		if !tagged && tok.HasBadEscape {
			p.addError(loc, ErrBadEscape, "malformed escape sequence in template literal")
		}
		return js_ast.Expr{Loc: loc, Data: &js_ast.EString{Value: cooked, PreferTemplate: true, HasBadEscape: tok.HasBadEscape}}
	}

	head := tok.TemplateCooked
	headRaw := tok.TemplateRaw
	headLoc := loc
	headHasBadEscape := tok.HasBadEscape
	p.expectExprNext()
	p.advance()

	var parts []js_ast.TemplatePart
	for {
		value := p.parseExpr(js_ast.LLowest)
		if p.cur().Kind != js_lexer.TCloseBrace {
			p.addError(p.loc(), ErrUnterminatedTemplate, "expected \"}\" to end template substitution")
		}
		// The "}" ending the substitution was already tokenized as a plain
		// close brace (Buffer fetches one token ahead of the parser noticing
		// it wants Hint.Template); rescan it in place as the continuation.
		mid := p.buf.RescanCloseBraceAsTemplateContinuation()
		part := js_ast.TemplatePart{Value: value, Tail: mid.TemplateCooked, TailRaw: mid.TemplateRaw, TailLoc: mid.Range.Loc, HasBadEscape: mid.HasBadEscape}
		parts = append(parts, part)
		if mid.Kind == js_lexer.TTemplateTail {
			p.advance()
			break
		}
		p.expectExprNext()
		p.advance()
	}

	if !tagged {
		if headHasBadEscape {
			p.addError(headLoc, ErrBadEscape, "malformed escape sequence in template literal")
		} else {
			for _, part := range parts {
				if part.HasBadEscape {
					p.addError(part.TailLoc, ErrBadEscape, "malformed escape sequence in template literal")
					break
				}
			}
		}
	}

	return js_ast.Expr{Loc: loc, Data: &js_ast.ETemplate{
		Head: head, HeadRaw: headRaw, Parts: parts, HeadLoc: headLoc, HeadHasBadEscape: headHasBadEscape,
	}}
}
