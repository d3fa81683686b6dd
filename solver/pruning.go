// Package solver - branch-and-bound over ratio-sorted items.
//
// Preprocessing (shared by Pruning and ApproxPruning):
//  1. Drop items heavier than the capacity; sort the rest by exact ratio.
//  2. Seed the incumbent with the best single item: a valid lower bound that
//     costs O(n) and lets the bounds cut from the first node on.
//  3. Search with the bounded engine (search.go) and map the selection back to
//     original order.
package solver

import (
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/numeric"
)

// pruningSolver is exact branch-and-bound.
type pruningSolver struct{}

func (pruningSolver) Method() Method { return Pruning }
func (pruningSolver) sealed()        {}

// Construct returns an optimal selection.
func (pruningSolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}

	return branchAndBound(p, 0), nil
}

// approxPruningSolver relaxes every bound by a factor (P+1)/P, trading a
// relative error of at most 1/(P+1) for a smaller search tree.
type approxPruningSolver struct {
	precision int
}

func (approxPruningSolver) Method() Method { return ApproxPruning }
func (approxPruningSolver) sealed()        {}

// Construct returns a selection whose cost c satisfies optimal·P ≤ c·(P+1).
func (s approxPruningSolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}

	return branchAndBound(p, s.precision), nil
}

// branchAndBound runs the bounded search; precision 0 means exact.
func branchAndBound(p model.Problem, precision int) model.Solution {
	var (
		sorted      = numeric.SortByRatio(p.Items, p.Capacity)
		e           = newBoundedEngine(sorted, p.Capacity, precision)
		seedCost, i = numeric.BestFitting(sorted.Items, p.Capacity)
	)
	e.seed(seedCost, i)
	e.run()

	return model.Solution{
		ID:        p.ID,
		Size:      p.Size(),
		Cost:      e.best,
		Selection: sorted.Restore(e.bestTake, p.Size()),
	}
}
