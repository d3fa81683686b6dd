package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/runner"
	"github.com/katalvlaran/knapsack/solver"
)

const solveDesc = `
Solve every instance of PROBLEMS with one strategy and print, per instance,
the elapsed time and the solution line, followed by timing statistics.

Instances with a threshold (negative id) are solved in decision mode unless
--force-construction is given. With a REFERENCE solution file, exact methods
are checked for equality and approximate ones report their error.
`

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve PROBLEMS [REFERENCE]",
		Short: "solve a problem file",
		Long:  solveDesc,
		Args:  cobra.RangeArgs(1, 2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			c, err := loadSolveConfig(a.v)
			if err != nil {
				return err
			}
			// Configuration errors surface before any file is read.
			s, err := solver.New(c.Method, c.Options...)
			if err != nil {
				return err
			}

			return a.solve(cmd.Context(), s, c, args)
		}),
	}
	addSolveFlags(cmd.Flags())

	return cmd
}

func (a *app) solve(ctx context.Context, s solver.Solver, c solveConfig, args []string) error {
	problems, err := instance.LoadProblems(args[0])
	if err != nil {
		return err
	}
	var refs map[int]model.Solution
	if len(args) > 1 {
		sols, err := instance.LoadSolutions(args[1])
		if err != nil {
			return err
		}
		if refs, err = instance.IndexSolutions(sols); err != nil {
			return err
		}
	}
	a.logger.WithField("problems", len(problems)).WithField("method", s.Method().String()).Debug("starting batch")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	var metrics *report.Metrics
	if c.MetricsFile != "" {
		metrics = report.NewMetrics()
	}
	batch, runErr := runner.Run(ctx, runner.Config{
		Solver:            s,
		Precision:         c.Precision,
		Workers:           c.Workers,
		ForceConstruction: c.ForceConstruction,
		Verify:            c.Verify,
		Strict:            c.Strict,
		Logger:            a.logger,
		Metrics:           metrics,
	}, problems, refs)
	if runErr != nil && !errors.Is(runErr, runner.ErrReferenceMismatch) {
		return runErr
	}

	if c.Format == formatTable {
		err = report.RenderTable(a.out, batch)
	} else {
		err = report.RenderText(a.out, batch)
	}
	if err != nil {
		return err
	}
	if c.SaveDurations != "" {
		if err = writeFile(c.SaveDurations, func(w io.Writer) error {
			return report.WriteDurations(w, batch.Records)
		}); err != nil {
			return err
		}
	}
	if metrics != nil {
		if err = writeFile(c.MetricsFile, metrics.WriteText); err != nil {
			return err
		}
	}

	return runErr
}

// writeFile creates path and fills it with fn.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err = fn(f); err != nil {
		f.Close()

		return err
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}
