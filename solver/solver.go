// Package solver - the closed strategy set and the selector.
package solver

import (
	"fmt"

	"github.com/katalvlaran/knapsack/model"
)

// Solver is one configured strategy. The set of implementations is closed:
// values come only from New.
type Solver interface {
	// Method identifies the strategy.
	Method() Method

	// Construct returns a feasible selection maximising (or, for approximate
	// methods, approximately maximising) the total cost under capacity.
	// The selection is nil only for the DynamicWeight/DynamicCost/FTPAS
	// memory guard and for TabuSearch runs that never observed a feasible
	// state.
	Construct(p model.Problem) (model.Solution, error)

	sealed()
}

// New builds the strategy m, checking that every parameter it needs is set.
//
// Required parameters:
//   - FTPAS, ApproxPruning: WithPrecision (≥ 1).
//   - TabuSearch:           WithMemorySize (≥ 1) and WithIterations (≥ 0).
//   - others:               none.
func New(m Method, opts ...Option) (Solver, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MemoryLimit <= 0 {
		return nil, fmt.Errorf("memory limit %d: %w", o.MemoryLimit, ErrInvalidParameter)
	}

	switch m {
	case Naive:
		return naiveSolver{}, nil
	case Pruning:
		return pruningSolver{}, nil
	case DynamicWeight:
		return weightDPSolver{memoryLimit: o.MemoryLimit}, nil
	case DynamicCost:
		return costDPSolver{memoryLimit: o.MemoryLimit}, nil
	case Greedy:
		return greedySolver{}, nil
	case Redux:
		return reduxSolver{}, nil
	case FTPAS:
		if err := requirePrecision(m, o); err != nil {
			return nil, err
		}

		return ftpasSolver{divisor: o.Precision, memoryLimit: o.MemoryLimit}, nil
	case ApproxPruning:
		if err := requirePrecision(m, o); err != nil {
			return nil, err
		}

		return approxPruningSolver{precision: o.Precision}, nil
	case TabuSearch:
		if !o.HasMemorySize {
			return nil, fmt.Errorf("%s: memory size: %w", m, ErrMissingParameter)
		}
		if !o.HasIterations {
			return nil, fmt.Errorf("%s: iterations: %w", m, ErrMissingParameter)
		}
		if o.MemorySize < 1 {
			return nil, fmt.Errorf("%s: memory size %d: %w", m, o.MemorySize, ErrInvalidParameter)
		}
		if o.Iterations < 0 {
			return nil, fmt.Errorf("%s: iterations %d: %w", m, o.Iterations, ErrInvalidParameter)
		}

		return tabuSolver{memorySize: o.MemorySize, iterations: o.Iterations}, nil
	default:
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownMethod)
	}
}

func requirePrecision(m Method, o Options) error {
	if !o.HasPrecision {
		return fmt.Errorf("%s: precision: %w", m, ErrMissingParameter)
	}
	if o.Precision < 1 {
		return fmt.Errorf("%s: precision %d: %w", m, o.Precision, ErrInvalidParameter)
	}

	return nil
}

// Decide answers the decision problem with s: it returns the construction
// result when its cost reaches p.Threshold, and model.None otherwise.
func Decide(s Solver, p model.Problem) (model.Solution, error) {
	if !p.HasThreshold {
		return model.Solution{}, ErrNoThreshold
	}
	sol, err := s.Construct(p)
	if err != nil {
		return model.Solution{}, err
	}
	if sol.HasSelection() && sol.Cost >= p.Threshold {
		return sol, nil
	}

	return model.None(p.ID, p.Size()), nil
}
