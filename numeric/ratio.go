// Package numeric holds the exact-arithmetic helpers shared by the knapsack
// solvers: cost/weight ratios, the ratio-descending item order, suffix sums,
// the fractional-relaxation upper bound and a handful of small queries.
//
// Everything here is integer arithmetic. Ratios are never converted to
// floating point: a rounded ratio can tie two items that are not equal, or
// order them the wrong way, and a bound computed from such an order may be
// lower than the true optimum of a subtree, which silently prunes the answer.
//
// All quantities are assumed to lie in [0, model.MaxValue] (see model.Validate);
// products of two such values fit into uint64.
package numeric

import "fmt"

// Ratio is an exact cost/weight ratio.
//
// A zero-weight item with positive cost has an infinite ratio (Den()==0);
// a zero-weight zero-cost item is normalised to 0/1 so it sorts last instead
// of tying with everything.
type Ratio struct {
	num uint64
	den uint64
}

// NewRatio returns cost/weight as an exact fraction.
func NewRatio(cost, weight int) Ratio {
	if weight == 0 {
		if cost == 0 {
			return Ratio{num: 0, den: 1}
		}

		return Ratio{num: 1, den: 0}
	}

	return Ratio{num: uint64(cost), den: uint64(weight)}
}

// Num returns the numerator.
func (r Ratio) Num() uint64 { return r.num }

// Den returns the denominator; 0 marks an infinite ratio.
func (r Ratio) Den() uint64 { return r.den }

// IsInf reports whether r is the ratio of a free (zero-weight, positive-cost) item.
func (r Ratio) IsInf() bool { return r.den == 0 }

// Cmp compares r and o by cross-multiplication and returns -1, 0 or +1.
//
// Complexity: O(1).
func (r Ratio) Cmp(o Ratio) int {
	var (
		left  = r.num * o.den
		right = o.num * r.den
	)
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// MulFloor returns ⌊x · r⌋ for a finite ratio. x must be in [0, model.MaxValue].
// For an infinite ratio the result is meaningless; callers check IsInf first.
func (r Ratio) MulFloor(x int) int {
	if r.den == 0 || x <= 0 {
		return 0
	}

	return int(uint64(x) * r.num / r.den)
}

// String renders the fraction as "num/den" ("inf" for a free item).
func (r Ratio) String() string {
	if r.den == 0 {
		return "inf"
	}

	return fmt.Sprintf("%d/%d", r.num, r.den)
}
