// Package solver - fully polynomial approximation by cost scaling.
//
// Every cost is replaced by ⌊c/K⌋ and the scaled instance is solved exactly
// by the cost-indexed table. The returned selection is feasible for the
// original instance; its cost is recomputed from the original costs. Each
// selected item loses less than K, so
//
//	optimal − cost ≤ K·|S*|   (S* an optimal selection)
//
// Complexity: O(n·MaxCost/K) time and memory.
package solver

import (
	"github.com/katalvlaran/knapsack/model"
)

type ftpasSolver struct {
	divisor     int
	memoryLimit int
}

func (ftpasSolver) Method() Method { return FTPAS }
func (ftpasSolver) sealed()        {}

// Construct returns the scaled-instance optimum priced with the original
// costs, or model.None when the scaled table exceeds the memory ceiling.
func (s ftpasSolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}

	scaled := p
	scaled.Items = make([]model.Item, len(p.Items))
	for i, it := range p.Items {
		scaled.Items[i] = model.Item{Weight: it.Weight, Cost: it.Cost / s.divisor}
	}

	sol := costDP(scaled, s.memoryLimit)
	if sol.HasSelection() {
		sol.Cost = model.CostOf(p.Items, sol.Selection)
	}

	return sol, nil
}
