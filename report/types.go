// Package report collects per-instance results of a batch and turns them
// into summaries, console output, a durations file and Prometheus metrics.
//
// It only consumes model.Solution values and timings; no solving happens here.
package report

import (
	"time"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/solver"
)

// Mode tells how an instance was solved.
type Mode int

const (
	// Construction maximises the cost.
	Construction Mode = iota
	// Decision checks the instance threshold.
	Decision
)

// String returns "construction" or "decision".
func (m Mode) String() string {
	if m == Decision {
		return "decision"
	}

	return "construction"
}

// Match classifies an exact result against its reference.
type Match int

const (
	// MatchEqual means identical cost and selection.
	MatchEqual Match = iota
	// MatchSameCost means an equally good but different selection.
	MatchSameCost
	// MatchMismatch means a different cost (or shape).
	MatchMismatch
)

var matchNames = [...]string{
	MatchEqual:    "equal",
	MatchSameCost: "same-cost",
	MatchMismatch: "mismatch",
}

// String returns the label used in tables and metrics.
func (m Match) String() string {
	if m < 0 || int(m) >= len(matchNames) {
		return "unknown"
	}

	return matchNames[m]
}

// Comparison is the outcome of checking one solution against a reference.
//
// Exact methods fill Match. Approximate methods fill AbsoluteError
// (reference − achieved) and RelativeError (absolute / reference, 0 when
// the reference cost is 0); FTPAS also fills PracticalBound and BoundRatio
// (absolute / bound, 0 when the bound is 0).
type Comparison struct {
	ReferenceCost int
	Exact         bool
	Match         Match

	AbsoluteError     int
	RelativeError     float64
	HasPracticalBound bool
	PracticalBound    int
	BoundRatio        float64
}

// Record is the result of one instance.
type Record struct {
	ID         int
	Mode       Mode
	Elapsed    time.Duration
	Solution   model.Solution
	Comparison *Comparison // nil without reference
}

// Outcome labels a record for metrics: "selected", "unreachable" (decision
// threshold not met) or "none" (construction without selection).
func (r Record) Outcome() string {
	switch {
	case r.Solution.HasSelection():
		return "selected"
	case r.Mode == Decision:
		return "unreachable"
	default:
		return "none"
	}
}

// Batch is every record of one run, in input order.
type Batch struct {
	Method  solver.Method
	Records []Record
	Wall    time.Duration // elapsed wall time, less than the sum when parallel
}
