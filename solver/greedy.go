// Package solver - greedy heuristics.
//
// Greedy walks the ratio-sorted items once and takes every item that still
// fits; it never backtracks. Redux compares that result with the single most
// valuable fitting item. Greedy alone can be arbitrarily bad (one tiny item
// with a great ratio blocking a huge valuable one); Redux is never below half
// of the optimum, because Greedy plus the first item it skipped is at least
// the fractional optimum.
//
// Both are also used as cheap lower-bound seeds by the exact solvers.
//
// Complexity: O(n log n) for the sort, O(n) for the pass.
package solver

import (
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/numeric"
)

type greedySolver struct{}

func (greedySolver) Method() Method { return Greedy }
func (greedySolver) sealed()        {}

func (greedySolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}
	sel, cost := greedyFill(numeric.SortByRatio(p.Items, p.Capacity), p.Capacity, p.Size())

	return model.Solution{ID: p.ID, Size: p.Size(), Cost: cost, Selection: sel}, nil
}

type reduxSolver struct{}

func (reduxSolver) Method() Method { return Redux }
func (reduxSolver) sealed()        {}

func (reduxSolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}
	sel, cost := reduxPick(p, numeric.SortByRatio(p.Items, p.Capacity))

	return model.Solution{ID: p.ID, Size: p.Size(), Cost: cost, Selection: sel}, nil
}

// greedyFill takes the sorted items in order whenever they fit and returns
// the selection in original order (length size) with its cost.
func greedyFill(s numeric.Sorted, capacity, size int) ([]bool, int) {
	var (
		sel  = make([]bool, size)
		room = capacity
		cost int
		k    int
	)
	for k = range s.Items {
		if s.Items[k].Weight <= room {
			room -= s.Items[k].Weight
			cost += s.Items[k].Cost
			sel[s.Index[k]] = true
		}
	}

	return sel, cost
}

// reduxPick returns the better of greedyFill and the best single item.
func reduxPick(p model.Problem, s numeric.Sorted) ([]bool, int) {
	sel, cost := greedyFill(s, p.Capacity, p.Size())
	itemCost, idx := numeric.BestFitting(p.Items, p.Capacity)
	if idx >= 0 && itemCost > cost {
		single := make([]bool, p.Size())
		single[idx] = true

		return single, itemCost
	}

	return sel, cost
}
