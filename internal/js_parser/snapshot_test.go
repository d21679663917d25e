package js_parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/nilsvast/ecmaparse/internal/js_ast"
)

// stmtShape renders a shallow, order-preserving summary of a statement's
// dynamic type so a snapshot catches an accidental change to what kind of
// node a construct parses into without pinning down every Loc/Range.
func stmtShape(stmt js_ast.Stmt) string {
	return fmt.Sprintf("%T", stmt.Data)
}

func programShape(ast js_ast.AST) string {
	var b strings.Builder
	for _, d := range ast.Directives {
		fmt.Fprintf(&b, "directive %q\n", d.Value)
	}
	for _, stmt := range ast.Body {
		b.WriteString(stmtShape(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestProgramShapeSnapshot(t *testing.T) {
	const src = `
"use strict";
let x = 1;
function f(a, b) { return a + b; }
if (x) { x++; } else { x--; }
for (let i = 0; i < x; i++) {}
class C { #p = 1; static m() {} }
`
	ast, msgs := parseScriptForTest(t, src, Options{})
	requireNoErrors(t, msgs)
	snaps.MatchSnapshot(t, programShape(ast))
}
