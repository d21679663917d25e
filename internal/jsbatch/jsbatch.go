// Package jsbatch fans a slice of parse inputs out across a bounded worker
// pool, giving callers the concrete library surface for the claim that each
// parse is a pure function of (source, goal, options) and can therefore run
// concurrently on independent inputs.
package jsbatch

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/nilsvast/ecmaparse/internal/js_ast"
	"github.com/nilsvast/ecmaparse/internal/js_parser"
	"github.com/nilsvast/ecmaparse/internal/logger"
)

// Input is one source file plus the parse-call configuration it should be
// parsed under.
type Input struct {
	Source  logger.Source
	Options js_parser.Options
}

// Result pairs the parsed AST for one Input with whatever diagnostics its
// parse produced, in the same order as the Inputs slice ParseAll was given.
type Result struct {
	Source  logger.Source
	Program js_ast.AST
	Errs    []logger.Msg
}

// ParseAll runs one parse per input over a pool bounded by concurrency,
// preserving input order in the returned slice regardless of completion
// order. Parses never yield (no I/O, no channel waits), so ctx cancellation
// only ever stops scheduling inputs that haven't started yet; a parse that
// reports errors through its own Log is not itself a failure of ParseAll —
// those land in Result.Errs, not in the returned error.
func ParseAll(ctx context.Context, inputs []Input, concurrency int) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := logger.NewLog()
			source := input.Source

			var ast js_ast.AST
			switch input.Options.Goal {
			case js_parser.GoalModule:
				ast = js_parser.ParseModule(log, &source, input.Options)
			default:
				ast = js_parser.ParseScript(log, &source, input.Options)
			}

			results[i] = Result{Source: source, Program: ast, Errs: log.Done()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FailedPrettyPaths returns the distinct display paths of results that
// carry at least one error, in first-seen order, for callers summarizing a
// batch run (e.g. "3 of 40 files failed: a.js, b.js, c.js").
func FailedPrettyPaths(results []Result) []string {
	failed := lo.Filter(results, func(r Result, _ int) bool {
		return len(r.Errs) > 0
	})
	paths := lo.Map(failed, func(r Result, _ int) string {
		return r.Source.PrettyPath
	})
	return lo.Uniq(paths)
}
