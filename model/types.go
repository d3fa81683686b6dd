// Package model defines the value types shared by every knapsack solver:
// Item, Problem and Solution, plus the sentinel errors raised when an
// instance or a returned selection breaks its contract.
//
// Conventions:
//   - Problem.Size() is len(Items); there is no separate size field to drift.
//   - Solution.Selection == nil means "no selection": either the threshold of a
//     decision instance is unreachable, or a solver refused to run because of a
//     resource guard. Cost is 0 in both cases.
//   - Solution.Selection != nil always has Size entries in original item order.
//
// All values are plain data; no entity outlives a single solve call.
package model

import (
	"errors"
	"math"
)

// MaxValue is the largest admissible weight, cost, capacity or threshold.
// Keeping every quantity inside uint32 lets ratio comparisons cross-multiply
// in uint64 without overflow.
const MaxValue = math.MaxUint32

// Sentinel errors returned by Validate and Verify.
var (
	// ErrInvalidID indicates a non-positive problem identifier.
	ErrInvalidID = errors.New("model: problem id must be positive")

	// ErrNegativeValue indicates a negative capacity, threshold, weight or cost.
	ErrNegativeValue = errors.New("model: negative value")

	// ErrValueOverflow indicates a quantity above MaxValue.
	ErrValueOverflow = errors.New("model: value exceeds MaxValue")

	// ErrSizeMismatch indicates a selection whose length differs from the item count.
	ErrSizeMismatch = errors.New("model: selection length does not match problem size")

	// ErrInfeasible indicates a selection whose total weight exceeds capacity.
	ErrInfeasible = errors.New("model: selection exceeds capacity")

	// ErrCostMismatch indicates a declared cost that differs from the recomputed one.
	ErrCostMismatch = errors.New("model: declared cost differs from selection cost")
)

// Item is a single 0/1 knapsack item. Items are compared with ==.
type Item struct {
	Weight int
	Cost   int
}

// Problem is one knapsack instance.
//
// Threshold is meaningful only when HasThreshold is true; such an instance
// can be solved in decision mode.
type Problem struct {
	ID           int
	Capacity     int
	Threshold    int
	HasThreshold bool
	Items        []Item
}

// Size returns the number of items.
func (p Problem) Size() int { return len(p.Items) }

// Solution is the outcome of one solve call.
type Solution struct {
	ID        int
	Size      int
	Cost      int
	Selection []bool
}

// None returns the "no selection" solution for the given instance shape.
func None(id, size int) Solution {
	return Solution{ID: id, Size: size}
}

// Empty returns a solution that selects nothing.
func Empty(id, size int) Solution {
	return Solution{ID: id, Size: size, Selection: make([]bool, size)}
}

// HasSelection reports whether s carries a selection.
func (s Solution) HasSelection() bool { return s.Selection != nil }

// Picked returns the number of selected items.
func (s Solution) Picked() int {
	var n int
	for _, b := range s.Selection {
		if b {
			n++
		}
	}

	return n
}

// Equal reports whether two solutions are identical, selection included.
func (s Solution) Equal(o Solution) bool {
	if s.ID != o.ID || s.Size != o.Size || s.Cost != o.Cost {
		return false
	}
	if (s.Selection == nil) != (o.Selection == nil) || len(s.Selection) != len(o.Selection) {
		return false
	}
	for i := range s.Selection {
		if s.Selection[i] != o.Selection[i] {
			return false
		}
	}

	return true
}
