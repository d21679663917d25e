// Package ecma is the public facade over the lexer/parser core: it
// re-exports the AST and diagnostics types a caller needs so nothing under
// internal/ has to be imported directly, mirroring the teacher's own
// internal/ vs pkg/ split.
package ecma

import (
	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/js_parser"
	"github.com/nilsvast/ecmaparse/internal/logger"
)

type AST = js_ast.AST
type Source = logger.Source
type Msg = logger.Msg
type Options = js_parser.Options
type Goal = js_parser.Goal

const (
	GoalScript = js_parser.GoalScript
	GoalModule = js_parser.GoalModule
)

// ParseScript parses source text under the Script goal and returns the
// resulting AST plus every diagnostic its parse produced, sorted by
// location. A non-empty Msgs slice whose entries are all Kind==Warning
// still carries a usable AST; any Kind==Error entry means parsing stopped
// at the first fatal error and the returned AST holds only its Goal.
func ParseScript(source Source, options Options) (AST, []Msg) {
	log := logger.NewLog()
	ast := js_parser.ParseScript(log, &source, options)
	return ast, log.Done()
}

// ParseModule parses source text under the Module goal.
func ParseModule(source Source, options Options) (AST, []Msg) {
	log := logger.NewLog()
	ast := js_parser.ParseModule(log, &source, options)
	return ast, log.Done()
}
