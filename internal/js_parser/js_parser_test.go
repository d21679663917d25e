package js_parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/logger"
)

func parseScriptForTest(t *testing.T, contents string, options Options) (js_ast.AST, []logger.Msg) {
	t.Helper()
	log := logger.NewLog()
	source := &logger.Source{Contents: contents, PrettyPath: "<test>"}
	ast := ParseScript(log, source, options)
	return ast, log.Done()
}

func parseModuleForTest(t *testing.T, contents string, options Options) (js_ast.AST, []logger.Msg) {
	t.Helper()
	log := logger.NewLog()
	source := &logger.Source{Contents: contents, PrettyPath: "<test>"}
	ast := ParseModule(log, source, options)
	return ast, log.Done()
}

func requireNoErrors(t *testing.T, msgs []logger.Msg) {
	t.Helper()
	for _, msg := range msgs {
		if msg.Kind == logger.Error {
			t.Fatalf("unexpected parse error: %+v", msg.Data)
		}
	}
}

func TestVariableDeclaration(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "let x = 1;", Options{})
	requireNoErrors(t, msgs)
	require.Len(t, ast.Body, 1)
	sv, ok := ast.Body[0].Data.(*js_ast.SVariable)
	require.True(t, ok)
	assert.Equal(t, js_ast.VariableLet, sv.Kind)
	require.Len(t, sv.Declarators, 1)
	bid, ok := sv.Declarators[0].Binding.Data.(*js_ast.BIdentifier)
	require.True(t, ok)
	assert.Equal(t, "x", bid.Name)
	num, ok := sv.Declarators[0].ValueOrNil.Data.(*js_ast.ENumber)
	require.True(t, ok)
	assert.Equal(t, float64(1), num.Value)
}

func TestDivisionPrecedenceLeftAssociative(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "a / b / c;", Options{})
	requireNoErrors(t, msgs)
	require.Len(t, ast.Body, 1)
	se, ok := ast.Body[0].Data.(*js_ast.SExpr)
	require.True(t, ok)
	outer, ok := se.Value.Data.(*js_ast.EBinary)
	require.True(t, ok)
	assert.Equal(t, js_ast.BinOpDiv, outer.Op)
	inner, ok := outer.Left.Data.(*js_ast.EBinary)
	require.True(t, ok, "(a / b) / c must nest on the left")
	assert.Equal(t, js_ast.BinOpDiv, inner.Op)
	_, ok = outer.Right.Data.(*js_ast.EIdentifier)
	require.True(t, ok)
}

func TestASIBeforeReturnValue(t *testing.T) {
	// "return\na" inserts a semicolon right after "return": the identifier
	// starts a new, unreachable-but-still-parsed statement, not the return
	// value.
	ast, msgs := parseScriptForTest(t, "function f() { return\na }", Options{})
	requireNoErrors(t, msgs)
	require.Len(t, ast.Body, 1)
	fn, ok := ast.Body[0].Data.(*js_ast.SFunction)
	require.True(t, ok)
	require.Len(t, fn.Fn.Body.Block.Stmts, 2)
	ret, ok := fn.Fn.Body.Block.Stmts[0].Data.(*js_ast.SReturn)
	require.True(t, ok)
	assert.Nil(t, ret.ValueOrNil.Data)
	_, ok = fn.Fn.Body.Block.Stmts[1].Data.(*js_ast.SExpr)
	require.True(t, ok)
}

func TestArrowVsParenthesizedSequence(t *testing.T) {
	arrowAST, msgs := parseScriptForTest(t, "(a, b) => a + b;", Options{})
	requireNoErrors(t, msgs)
	require.Len(t, arrowAST.Body, 1)
	se, ok := arrowAST.Body[0].Data.(*js_ast.SExpr)
	require.True(t, ok)
	_, ok = se.Value.Data.(*js_ast.EArrow)
	require.True(t, ok)

	seqAST, msgs := parseScriptForTest(t, "(a, b);", Options{})
	requireNoErrors(t, msgs)
	require.Len(t, seqAST.Body, 1)
	se2, ok := seqAST.Body[0].Data.(*js_ast.SExpr)
	require.True(t, ok)
	_, ok = se2.Value.Data.(*js_ast.EBinary)
	require.True(t, ok, "\"(a, b);\" alone should parse as a comma expression, not an arrow")
}

func TestTemplateLiteralWithSingleSubstitution(t *testing.T) {
	// Regression test: the "}" closing a substitution is tokenized ahead of
	// the parser noticing it needs Hint.Template, so this exercises the
	// rescan path rather than a plain lookahead hint.
	ast, msgs := parseScriptForTest(t, "`a${b}c`;", Options{})
	requireNoErrors(t, msgs)
	require.Len(t, ast.Body, 1)
	se, ok := ast.Body[0].Data.(*js_ast.SExpr)
	require.True(t, ok)
	tpl, ok := se.Value.Data.(*js_ast.ETemplate)
	require.True(t, ok)
	assert.Equal(t, "a", tpl.Head)
	require.Len(t, tpl.Parts, 1)
	ident, ok := tpl.Parts[0].Value.Data.(*js_ast.EIdentifier)
	require.True(t, ok)
	assert.Equal(t, "b", ident.Name)
	assert.Equal(t, "c", tpl.Parts[0].Tail)
}

func TestTemplateLiteralWithMultipleSubstitutions(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "`a${1}b${2}c`;", Options{})
	requireNoErrors(t, msgs)
	se := ast.Body[0].Data.(*js_ast.SExpr)
	tpl, ok := se.Value.Data.(*js_ast.ETemplate)
	require.True(t, ok)
	require.Len(t, tpl.Parts, 2)
	assert.Equal(t, "b", tpl.Parts[0].Tail)
	assert.Equal(t, "c", tpl.Parts[1].Tail)
	n1, ok := tpl.Parts[0].Value.Data.(*js_ast.ENumber)
	require.True(t, ok)
	assert.Equal(t, float64(1), n1.Value)
}

func TestTemplateLiteralSubstitutionWithObjectLiteral(t *testing.T) {
	// The substitution's own "{"/"}" must not be confused with the
	// template's closing brace: only the brace that actually ends the
	// substitution expression should be rescanned as a template token.
	ast, msgs := parseScriptForTest(t, "`x${ {a:1}.a }y`;", Options{})
	requireNoErrors(t, msgs)
	se := ast.Body[0].Data.(*js_ast.SExpr)
	tpl, ok := se.Value.Data.(*js_ast.ETemplate)
	require.True(t, ok)
	require.Len(t, tpl.Parts, 1)
	assert.Equal(t, "y", tpl.Parts[0].Tail)
	_, ok = tpl.Parts[0].Value.Data.(*js_ast.EDot)
	require.True(t, ok)
}

func TestOptionalChaining(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "a?.b.c;", Options{})
	requireNoErrors(t, msgs)
	se := ast.Body[0].Data.(*js_ast.SExpr)
	outer, ok := se.Value.Data.(*js_ast.EDot)
	require.True(t, ok)
	assert.Equal(t, "c", outer.Name)
	assert.Equal(t, js_ast.OptionalChainContinue, outer.OptionalChain)
	inner, ok := outer.Target.Data.(*js_ast.EDot)
	require.True(t, ok)
	assert.Equal(t, js_ast.OptionalChainStart, inner.OptionalChain)
}

func TestForInVsForOfVsRegularFor(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "for (let i = 0; i < 1; i++) {}", Options{})
	requireNoErrors(t, msgs)
	_, ok := ast.Body[0].Data.(*js_ast.SFor)
	require.True(t, ok)

	ast, msgs = parseScriptForTest(t, "for (let k in o) {}", Options{})
	requireNoErrors(t, msgs)
	_, ok = ast.Body[0].Data.(*js_ast.SForIn)
	require.True(t, ok)

	ast, msgs = parseScriptForTest(t, "for (let v of xs) {}", Options{})
	requireNoErrors(t, msgs)
	_, ok = ast.Body[0].Data.(*js_ast.SForOf)
	require.True(t, ok)
}

func TestClassMembers(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "class C { #x = 1; static y() {} get z() { return 1 } }", Options{})
	requireNoErrors(t, msgs)
	sc, ok := ast.Body[0].Data.(*js_ast.SClass)
	require.True(t, ok)
	require.Len(t, sc.Class.Properties, 3)
	assert.True(t, sc.Class.Properties[1].IsStatic)
}

func TestClassAndMemberDecorators(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "@logged class C { @frozen x = 1; @bound m() {} }", Options{})
	requireNoErrors(t, msgs)
	sc, ok := ast.Body[0].Data.(*js_ast.SClass)
	require.True(t, ok)
	require.Len(t, sc.Class.Decorators, 1)
	require.Len(t, sc.Class.Properties, 2)
	assert.Len(t, sc.Class.Properties[0].Decorators, 1)
	assert.Len(t, sc.Class.Properties[1].Decorators, 1)
}

func TestImportExportForms(t *testing.T) {
	ast, msgs := parseModuleForTest(t, `import x, { y as z } from "mod"; export { x, z }; export default 1;`, Options{})
	requireNoErrors(t, msgs)
	require.Len(t, ast.Body, 3)
	_, ok := ast.Body[0].Data.(*js_ast.SImport)
	require.True(t, ok)
	_, ok = ast.Body[1].Data.(*js_ast.SExportClause)
	require.True(t, ok)
	_, ok = ast.Body[2].Data.(*js_ast.SExportDefault)
	require.True(t, ok)
}

func TestHTMLCommentIsTriviaInScriptGoal(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "x;\n<!-- this is a comment\ny;", Options{AnnexB: true})
	requireNoErrors(t, msgs)
	require.Len(t, ast.Body, 2)
}

func TestHTMLCommentIsRejectedInModuleGoal(t *testing.T) {
	_, msgs := parseModuleForTest(t, "x;\n<!-- this is a comment\ny;", Options{AnnexB: true})
	var hasError bool
	for _, msg := range msgs {
		if msg.Kind == logger.Error {
			hasError = true
		}
	}
	assert.True(t, hasError, "a legacy HTML comment delimiter must be rejected as an ordinary token inside a Module")
}

func TestRetainCommentsOption(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "// leading\nlet x = 1; /* trailing */", Options{RetainComments: true})
	requireNoErrors(t, msgs)
	require.Len(t, ast.Comments, 2)
	assert.Equal(t, js_ast.CommentLine, ast.Comments[0].Kind)
	assert.Equal(t, js_ast.CommentBlock, ast.Comments[1].Kind)

	ast2, msgs2 := parseScriptForTest(t, "// leading\nlet x = 1;", Options{})
	requireNoErrors(t, msgs2)
	assert.Empty(t, ast2.Comments, "comments are discarded unless RetainComments is set")
}

func TestRetainRangesOption(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "let x = 1;", Options{RetainRanges: true})
	requireNoErrors(t, msgs)
	require.Len(t, ast.Body, 1)
	stmt := ast.Body[0]
	assert.Equal(t, int32(0), stmt.Range.Loc.Start)
	assert.Equal(t, int32(len("let x = 1;")), stmt.Range.Len)

	ast2, msgs2 := parseScriptForTest(t, "let x = 1;", Options{})
	requireNoErrors(t, msgs2)
	assert.Zero(t, ast2.Body[0].Range, "Range stays zero-valued unless RetainRanges is set")
}

func TestNumericLiteralValues(t *testing.T) {
	cases := map[string]float64{
		"0x10;": 16,
		"0o10;": 8,
		"0b10;": 2,
		"1e3;":  1000,
		".5;":   0.5,
	}
	for src, want := range cases {
		ast, msgs := parseScriptForTest(t, src, Options{})
		requireNoErrors(t, msgs)
		se := ast.Body[0].Data.(*js_ast.SExpr)
		num, ok := se.Value.Data.(*js_ast.ENumber)
		require.True(t, ok, "source=%q", src)
		assert.Equal(t, want, num.Value, "source=%q", src)
	}
}

func TestUnterminatedTemplateIsAnError(t *testing.T) {
	log := logger.NewLog()
	source := &logger.Source{Contents: "`a${b", PrettyPath: "<test>"}
	ast := ParseScript(log, source, Options{})
	msgs := log.Done()
	var hasError bool
	for _, msg := range msgs {
		if msg.Kind == logger.Error {
			hasError = true
		}
	}
	assert.True(t, hasError)
	assert.Empty(t, ast.Body)
}
