// Package runner solves a batch of instances with one configured strategy,
// sequentially or with a pool of workers, and collects report records.
//
// Decision instances (those with a threshold) are answered with solver.Decide
// unless ForceConstruction is set. Reference solutions, when given, are
// compared only for construction results.
package runner

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/solver"
)

// Sentinel errors.
var (
	// ErrNoSolver indicates a Config without strategy.
	ErrNoSolver = errors.New("runner: no solver configured")

	// ErrVerification indicates a returned selection that fails model.Verify.
	ErrVerification = errors.New("runner: solution failed verification")

	// ErrReferenceMismatch indicates an exact result whose cost differs from
	// its reference; returned only with Config.Strict.
	ErrReferenceMismatch = errors.New("runner: result differs from reference")
)

// Config drives Run.
type Config struct {
	Solver            solver.Solver
	Precision         int  // FTPAS divisor, used for the practical error bound
	Workers           int  // ≤ 1 ⇒ sequential
	ForceConstruction bool // solve decision instances as construction instances
	Verify            bool // check every result with model.Verify
	Strict            bool // fail the batch on an exact reference mismatch

	Logger  logrus.FieldLogger // nil ⇒ discard
	Metrics *report.Metrics    // nil ⇒ no metrics
}

// Run solves problems in order and returns one record per problem, in input
// order. refs maps problem ids to reference solutions and may be nil.
//
// Cancelling ctx stops the batch between instances; a running solve is not
// interrupted.
func Run(ctx context.Context, cfg Config, problems []model.Problem, refs map[int]model.Solution) (report.Batch, error) {
	if cfg.Solver == nil {
		return report.Batch{}, ErrNoSolver
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}

	var (
		r = &batchRunner{cfg: cfg, refs: refs}
		b = report.Batch{
			Method:  cfg.Solver.Method(),
			Records: make([]report.Record, len(problems)),
		}
		start = time.Now()
		err   error
	)
	if cfg.Workers <= 1 {
		err = r.sequential(ctx, problems, b.Records)
	} else {
		err = r.parallel(ctx, problems, b.Records)
	}
	b.Wall = time.Since(start)
	if err != nil {
		return b, err
	}

	if cfg.Strict {
		if s := report.Summarize(b.Records); s.Mismatches > 0 {
			return b, errors.Wrapf(ErrReferenceMismatch, "%d of %d compared", s.Mismatches, s.Compared)
		}
	}

	return b, nil
}

// batchRunner solves single instances for Run.
type batchRunner struct {
	cfg  Config
	refs map[int]model.Solution
}

func (r *batchRunner) sequential(ctx context.Context, problems []model.Problem, out []report.Record) error {
	for i := range problems {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.solveOne(problems[i])
		if err != nil {
			return err
		}
		out[i] = rec
	}

	return nil
}

// parallel feeds indices to cfg.Workers consumers; the first error cancels
// the rest.
func (r *batchRunner) parallel(ctx context.Context, problems []model.Problem, out []report.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	eg, egCtx := errgroup.WithContext(ctx)
	next := make(chan int, r.cfg.Workers)
	eg.Go(func() error {
		defer close(next)
		for i := range problems {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			case next <- i:
			}
		}

		return nil
	})

	for w := 0; w < r.cfg.Workers; w++ {
		eg.Go(func() error {
			for {
				select {
				case <-egCtx.Done():
					return egCtx.Err()
				case i, ok := <-next:
					if !ok {
						return nil
					}
					rec, err := r.solveOne(problems[i])
					if err != nil {
						return err
					}
					out[i] = rec // each index is written by exactly one worker
				}
			}
		})
	}

	return eg.Wait()
}

// solveOne times one solve and attaches verification and comparison.
func (r *batchRunner) solveOne(p model.Problem) (report.Record, error) {
	var (
		s   = r.cfg.Solver
		rec = report.Record{ID: p.ID, Mode: report.Construction}
		log = r.cfg.Logger.WithFields(logrus.Fields{"id": p.ID, "method": s.Method().String()})
		err error
	)
	if p.HasThreshold && !r.cfg.ForceConstruction {
		rec.Mode = report.Decision
	}

	start := time.Now()
	if rec.Mode == report.Decision {
		rec.Solution, err = solver.Decide(s, p)
	} else {
		rec.Solution, err = s.Construct(p)
	}
	rec.Elapsed = time.Since(start)
	if err != nil {
		return rec, errors.Wrapf(err, "problem %d", p.ID)
	}

	log = log.WithFields(logrus.Fields{"mode": rec.Mode.String(), "elapsed": rec.Elapsed, "cost": rec.Solution.Cost})
	log.Debug("solved")

	if r.cfg.Verify {
		if err = model.Verify(p, rec.Solution); err != nil {
			return rec, errors.Wrapf(ErrVerification, "problem %d: %v", p.ID, err)
		}
	}
	if rec.Mode == report.Construction && !rec.Solution.HasSelection() {
		log.Warn("no selection returned (memory ceiling reached or no feasible state visited)")
	}

	if r.refs != nil && rec.Mode == report.Construction {
		r.compare(p, &rec, log)
	}
	if r.cfg.Metrics != nil {
		r.cfg.Metrics.Observe(s.Method().String(), rec)
	}

	return rec, nil
}

func (r *batchRunner) compare(p model.Problem, rec *report.Record, log logrus.FieldLogger) {
	ref, ok := r.refs[p.ID]
	if !ok {
		log.Warn("no reference solution")

		return
	}
	c := report.Compare(p, rec.Solution, ref, r.cfg.Solver.Method(), r.cfg.Precision)
	rec.Comparison = &c

	switch {
	case !c.Exact:
		log.WithFields(logrus.Fields{"absolute": c.AbsoluteError, "relative": c.RelativeError}).Debug("approximation error")
	case c.Match == report.MatchSameCost:
		log.Info("same cost, but different solution")
	case c.Match == report.MatchMismatch:
		log.WithField("reference", ref.Cost).Error("cost differs from reference")
	}
}
