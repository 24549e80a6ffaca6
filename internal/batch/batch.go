// Package batch evaluates many expressions in parallel.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

// Result is the outcome of evaluating one expression.
type Result struct {
	// Line is the 1-based index of the expression in the batch.
	Line int
	// Expr is the expression.
	Expr string
	// Value is the result if Err is nil.
	Value float64
	// Err is the evaluation error, always a *calc.InvalidExpressionError.
	Err error
}

// Runner evaluates batches of expressions.
type Runner struct {
	// Workers limits the number of expressions evaluated at once. Values
	// below 1 mean one.
	Workers int
	// Logger receives a debug entry for each failed expression. Nil means
	// no logging.
	Logger *zap.Logger
}

// Run evaluates exprs and returns their results in the same order. The only
// error is from ctx ending before every expression is evaluated; failed
// expressions are reported in their Results.
func (r *Runner) Run(ctx context.Context, exprs []string) ([]Result, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(exprs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, expr := range exprs {
		if ctx.Err() != nil {
			break
		}
		i, expr := i, expr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := calc.Evaluate(expr)
			results[i] = Result{Line: i + 1, Expr: expr, Value: v, Err: err}
			if err != nil {
				log.Debug("evaluation failed", zap.Int("line", i+1), zap.String("expr", expr), zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early without any goroutine noticing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debug("batch complete", zap.Int("count", len(exprs)), zap.Int("workers", workers))
	return results, nil
}

// ReadExprs reads expressions from r. If lines is false, the entire input is
// one expression. Otherwise, each non-blank line is an expression.
func ReadExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return []string{string(b)}, nil
	}
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		exprs = append(exprs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return exprs, nil
}
