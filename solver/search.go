// Package solver - include/exclude depth-first search shared by Naive,
// Pruning and ApproxPruning.
//
// The search walks the binary decision tree over item indices with an
// explicit per-depth stage array instead of recursion, so the Go stack does
// not grow with the number of items.
//
// Per depth i the stages are:
//
//	enter   → test the bounds (bounded mode); try the include branch.
//	exclude → undo the include (if taken); descend into the exclude branch.
//	leave   → reset and pop.
//
// The incumbent selection is a copy of the current path taken at the leaf
// that improved it, so the result never has to be pieced together from the
// branch that "changed" the best value.
//
// Bounded mode prunes a subtree at depth i (cost c, weight w, incumbent B) when
//
//	c + ⌊min(cap−w, Σw[i..]) · ratio[i]⌋ ≤ T      (ratio bound, finite ratio only)
//	c + Σcost[i..]                       ≤ T      (additive bound)
//	c + ⌊fractional(items[i..], cap−w)⌋  ≤ T      (relaxation, O(log n))
//
// where T = B for exact search and T = B + ⌊B/P⌋ for precision P.
//
// Complexity:
//   - Exhaustive: O(2ⁿ) leaves.
//   - Bounded: exponential worst case; per node O(log n) for the bounds.
//   - Memory: O(n).
package solver

import (
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/numeric"
)

const (
	stageEnter uint8 = iota
	stageExclude
	stageLeave
)

// searchEngine holds configuration, the current path and the incumbent.
type searchEngine struct {
	// Configuration
	items     []model.Item
	ratios    []numeric.Ratio
	suffix    numeric.Suffix
	capacity  int
	bounded   bool // false ⇒ exhaustive, feasibility tested at the leaves only
	precision int  // 0 ⇒ exact pruning

	// Current path
	take  []bool
	stage []uint8

	// Incumbent
	best     int
	bestTake []bool
}

func newExhaustiveEngine(items []model.Item, capacity int) *searchEngine {
	return &searchEngine{
		items:    items,
		capacity: capacity,
		take:     make([]bool, len(items)),
		stage:    make([]uint8, len(items)),
		bestTake: make([]bool, len(items)),
	}
}

func newBoundedEngine(s numeric.Sorted, capacity, precision int) *searchEngine {
	e := newExhaustiveEngine(s.Items, capacity)
	e.ratios = s.Ratios
	e.suffix = numeric.NewSuffix(s.Items)
	e.bounded = true
	e.precision = precision

	return e
}

// seed installs a single-item incumbent.
func (e *searchEngine) seed(cost, index int) {
	if index < 0 {
		return
	}
	e.best = cost
	e.bestTake[index] = true
}

// target is the value a subtree must exceed to be explored.
func (e *searchEngine) target() int {
	if e.precision > 0 {
		return e.best + e.best/e.precision
	}

	return e.best
}

// prune reports whether the subtree rooted at depth i cannot beat the target.
func (e *searchEngine) prune(i, cost, weight int) bool {
	if !e.bounded {
		return false
	}
	var (
		limit = e.target()
		room  = e.capacity - weight
	)
	if !e.ratios[i].IsInf() {
		x := room
		if e.suffix.Weight[i] < x {
			x = e.suffix.Weight[i]
		}
		if cost+e.ratios[i].MulFloor(x) <= limit {
			return true
		}
	}
	if cost+e.suffix.Cost[i] <= limit {
		return true
	}

	return cost+e.suffix.FractionalBound(i, room) <= limit
}

// canInclude gates the include branch. In bounded mode the item must fit, and
// among equal consecutive items only prefixes are explored: item i may be
// taken only if item i-1 was taken or differs from it.
func (e *searchEngine) canInclude(i, weight int) bool {
	if !e.bounded {
		return true
	}
	if weight+e.items[i].Weight > e.capacity {
		return false
	}

	return i == 0 || e.take[i-1] || e.items[i-1] != e.items[i]
}

// leaf commits the current path when it is feasible and strictly better.
func (e *searchEngine) leaf(cost, weight int) {
	if weight <= e.capacity && cost > e.best {
		e.best = cost
		copy(e.bestTake, e.take)
	}
}

// run performs the whole search.
func (e *searchEngine) run() {
	var (
		n            = len(e.items)
		depth        int
		cost, weight int
	)
	for depth >= 0 {
		if depth == n {
			e.leaf(cost, weight)
			depth--
			continue
		}

		switch e.stage[depth] {
		case stageEnter:
			if e.prune(depth, cost, weight) {
				depth--
				continue
			}
			e.stage[depth] = stageExclude
			if e.canInclude(depth, weight) {
				e.take[depth] = true
				cost += e.items[depth].Cost
				weight += e.items[depth].Weight
				depth++
			}

		case stageExclude:
			if e.take[depth] {
				e.take[depth] = false
				cost -= e.items[depth].Cost
				weight -= e.items[depth].Weight
			}
			e.stage[depth] = stageLeave
			depth++

		default:
			e.stage[depth] = stageEnter
			depth--
		}
	}
}
