package js_parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/logger"
)

// A malformed escape sequence inside a tagged template leaves the cooked
// value absent instead of being a SyntaxError, since the tag function can
// still observe it (e.g. via String.raw).
func TestTaggedTemplateToleratesBadEscape(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "tag`\\u{zzzz}`;", Options{})
	requireNoErrors(t, msgs)

	expr, ok := ast.Body[0].Data.(*js_ast.SExpr)
	require.True(t, ok)
	tagged, ok := expr.Value.Data.(*js_ast.ETaggedTemplate)
	require.True(t, ok)
	assert.True(t, tagged.HeadHasBadEscape)
	assert.Empty(t, tagged.Head)
}

// The same malformed escape in a plain, untagged template is a SyntaxError.
func TestPlainTemplateRejectsBadEscape(t *testing.T) {
	_, msgs := parseScriptForTest(t, "let x = `\\u{zzzz}`;", Options{})

	var sawBadEscape bool
	for _, msg := range msgs {
		if msg.Kind == logger.Error && msg.Data.UserDetail == ErrBadEscape {
			sawBadEscape = true
		}
	}
	assert.True(t, sawBadEscape, "expected a bad-escape parse error, got: %+v", msgs)
}

// A multi-part tagged template tolerates a bad escape in a substitution
// tail, leaving only that run's cooked text absent.
func TestTaggedTemplateToleratesBadEscapeInTail(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "tag`a${1}\\u{zzzz}`;", Options{})
	requireNoErrors(t, msgs)

	expr, ok := ast.Body[0].Data.(*js_ast.SExpr)
	require.True(t, ok)
	tagged, ok := expr.Value.Data.(*js_ast.ETaggedTemplate)
	require.True(t, ok)
	require.Len(t, tagged.Parts, 1)
	assert.True(t, tagged.Parts[0].HasBadEscape)
}

func TestTaggedTemplateNoSubstitutionWithGoodEscapeIsUnaffected(t *testing.T) {
	ast, msgs := parseScriptForTest(t, "tag`hi`;", Options{})
	requireNoErrors(t, msgs)

	expr, ok := ast.Body[0].Data.(*js_ast.SExpr)
	require.True(t, ok)
	tagged, ok := expr.Value.Data.(*js_ast.ETaggedTemplate)
	require.True(t, ok)
	assert.False(t, tagged.HeadHasBadEscape)
	assert.Equal(t, "hi", tagged.Head)
}
