// Package solver - methods, options and sentinel errors.
package solver

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the selector and the strategies.
var (
	// ErrUnknownMethod indicates a method name that matches no strategy.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrMissingParameter indicates that a strategy was configured without a
	// parameter it requires (precision, memory size, iterations).
	ErrMissingParameter = errors.New("solver: missing required parameter")

	// ErrInvalidParameter indicates a parameter outside its admissible range.
	ErrInvalidParameter = errors.New("solver: invalid parameter")

	// ErrNoThreshold indicates a decision request on an instance without threshold.
	ErrNoThreshold = errors.New("solver: decision mode requires a threshold")

	// ErrInternal signals a broken internal invariant. It is never used to
	// report "no solution"; seeing it means a logic defect.
	ErrInternal = errors.New("solver: internal invariant violated")
)

// Method identifies one of the nine strategies.
type Method int

const (
	// Naive is exhaustive include/exclude search.
	Naive Method = iota
	// Pruning is exact branch-and-bound.
	Pruning
	// DynamicWeight is the weight-indexed dynamic program.
	DynamicWeight
	// DynamicCost is the cost-indexed dynamic program with a memory ceiling.
	DynamicCost
	// Greedy takes ratio-sorted items while they fit.
	Greedy
	// Redux is max(Greedy, best single item).
	Redux
	// FTPAS scales costs down and runs DynamicCost.
	FTPAS
	// ApproxPruning is branch-and-bound with relative pruning slack.
	ApproxPruning
	// TabuSearch is a deterministic bit-flip local search with tabu memory.
	TabuSearch
)

var methodNames = [...]string{
	Naive:         "naive",
	Pruning:       "pruning",
	DynamicWeight: "dynamic-weight",
	DynamicCost:   "dynamic-cost",
	Greedy:        "greedy",
	Redux:         "redux",
	FTPAS:         "ftpas",
	ApproxPruning: "approx-pruning",
	TabuSearch:    "tabu-search",
}

// Methods lists every strategy in declaration order.
func Methods() []Method {
	return []Method{Naive, Pruning, DynamicWeight, DynamicCost, Greedy, Redux, FTPAS, ApproxPruning, TabuSearch}
}

// String returns the command-line name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a command-line name such as "dynamic-cost".
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%q (valid: %s): %w", name, strings.Join(methodNames[:], ", "), ErrUnknownMethod)
}

// IsExact reports whether m always returns an optimal cost. Callers use it to
// choose between equality checks and error measurement against a reference.
func (m Method) IsExact() bool {
	switch m {
	case Naive, Pruning, DynamicWeight, DynamicCost:
		return true
	case Greedy, Redux, FTPAS, ApproxPruning, TabuSearch:
		return false
	default:
		return false
	}
}

// DefaultMemoryLimit is the default ceiling, in table cells, for the dynamic
// programs DynamicWeight and DynamicCost (and FTPAS through it): 1<<25 cells,
// 256 MiB of int64.
const DefaultMemoryLimit = 1 << 25

// Options configures New. Numeric parameters are optional; a strategy that
// needs one fails with ErrMissingParameter when its Has* flag is false.
//
//   - Precision   – FTPAS: cost divisor K ≥ 1; ApproxPruning: P ≥ 1 (relative
//     error ≤ 1/(P+1)).
//   - MemorySize  – TabuSearch: number of departed states remembered (≥ 1).
//   - Iterations  – TabuSearch: number of moves (≥ 0).
//   - MemoryLimit – DynamicWeight/DynamicCost/FTPAS: maximal table size in
//     cells (≥ 1).
type Options struct {
	Precision     int
	HasPrecision  bool
	MemorySize    int
	HasMemorySize bool
	Iterations    int
	HasIterations bool
	MemoryLimit   int
}

// Option represents a functional option for New.
type Option func(*Options)

// WithPrecision sets the FTPAS divisor or the ApproxPruning precision.
func WithPrecision(p int) Option {
	return func(o *Options) {
		o.Precision = p
		o.HasPrecision = true
	}
}

// WithMemorySize sets the tabu memory capacity.
func WithMemorySize(m int) Option {
	return func(o *Options) {
		o.MemorySize = m
		o.HasMemorySize = true
	}
}

// WithIterations sets the tabu iteration budget.
func WithIterations(n int) Option {
	return func(o *Options) {
		o.Iterations = n
		o.HasIterations = true
	}
}

// WithMemoryLimit overrides DefaultMemoryLimit.
func WithMemoryLimit(cells int) Option {
	return func(o *Options) {
		o.MemoryLimit = cells
	}
}

// DefaultOptions returns Options with no strategy parameters set and the
// default memory ceiling.
func DefaultOptions() Options {
	return Options{MemoryLimit: DefaultMemoryLimit}
}
