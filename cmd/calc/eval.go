package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/batch"
)

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	var exprs []string
	in, err := infile(cmd, a.inname, len(args) == 0)
	if err != nil {
		return err
	}
	if in != nil {
		defer in.Close()
		e, err := batch.ReadExprs(in, a.cfg.Lines)
		if err != nil {
			return err
		}
		exprs = append(exprs, e...)
	}
	exprs = append(exprs, args...)

	r := batch.Runner{Workers: a.cfg.Workers, Logger: a.logger}
	results, err := r.Run(cmd.Context(), exprs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	verb := a.cfg.Format + "\n"
	failed := 0
	for _, res := range results {
		if a.cfg.Echo {
			fmt.Fprintf(out, "%v : ", calc.Postfix(res.Expr))
		}
		if res.Err != nil {
			failed++
			fmt.Fprintln(out, "error:", res.Err)
			continue
		}
		fmt.Fprintf(out, verb, res.Value)
	}
	a.logger.Debug("evaluated", zap.Int("expressions", len(results)), zap.Int("failed", failed))
	if failed > 0 {
		return errFailed
	}
	return nil
}

// infile opens the input named by inname. "-" names stdin, as does the empty
// name if std is true. The result is nil if there is no input to read.
func infile(cmd *cobra.Command, inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return nil, nil
}
