package js_parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsvast/ecmaparse/internal/js_ast"
)

// Parsing the same program twice under RetainRanges must yield structurally
// equal trees once Loc/Range bookkeeping is ignored: a parse is a pure
// function of (source, goal, options).
func TestReparsePreservesStructuralEquality(t *testing.T) {
	const src = `function f(a, b) { let x = 1 + 2 * f(a, b); if (x) { return x; } else { return 0; } }`
	a, msgsA := parseScriptForTest(t, src, Options{RetainRanges: true})
	b, msgsB := parseScriptForTest(t, src, Options{RetainRanges: true})
	requireNoErrors(t, msgsA)
	requireNoErrors(t, msgsB)
	require.True(t, js_ast.StmtsEqual(a.Body, b.Body))

	fnA, ok := a.Body[0].Data.(*js_ast.SFunction)
	require.True(t, ok)
	fnB, ok := b.Body[0].Data.(*js_ast.SFunction)
	require.True(t, ok)
	require.True(t, js_ast.StmtsEqual(fnA.Fn.Body.Block.Stmts, fnB.Fn.Body.Block.Stmts),
		"the if/return body nested inside the function must also compare equal")
}

func TestStructuralEqualityDistinguishesDifferentPrograms(t *testing.T) {
	a, msgsA := parseScriptForTest(t, `let x = 1;`, Options{})
	b, msgsB := parseScriptForTest(t, `let x = 2;`, Options{})
	requireNoErrors(t, msgsA)
	requireNoErrors(t, msgsB)
	assert.False(t, js_ast.StmtsEqual(a.Body, b.Body))
}

func TestStructuralEqualityIgnoresRange(t *testing.T) {
	const src = `x + 1;`
	withRanges, msgsA := parseScriptForTest(t, src, Options{RetainRanges: true})
	withoutRanges, msgsB := parseScriptForTest(t, src, Options{})
	requireNoErrors(t, msgsA)
	requireNoErrors(t, msgsB)
	require.NotEqual(t, withRanges.Body[0].Range, withoutRanges.Body[0].Range)
	assert.True(t, js_ast.StmtsEqual(withRanges.Body, withoutRanges.Body))
}
