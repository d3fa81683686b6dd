// Package solver - weight-indexed dynamic programming.
//
// Table layout (flat, row-major, (n+1) rows × (C/g+1) columns):
//
//	cell(i, w) = (best cost of items[i..] given w weight units already used,
//	              whether item i is taken in that optimum)
//
// where g is the GCD of the kept item weights and C the capacity. Dividing by
// g shrinks the capacity axis without changing which selections fit, because
// every reachable used-weight is a multiple of g and ⌊C/g⌋·g is the largest
// such multiple within C.
//
// The last row is all zeros. Cells are resolved on demand from (0,0) with an
// explicit stack: a cell whose dependents are not known pushes them and waits;
// once both (i+1, w+wᵢ) and (i+1, w) are known it resolves and pops. Only
// capacity values reachable from (0,0) are ever evaluated, and the stack never
// holds more than n+1 cells.
//
// The table is refused before allocation when (n+1)·(C/g+1) exceeds the
// memory limit; the result is then model.None.
//
// Complexity: O(n·C/g) time and memory in the worst case.
package solver

import (
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/numeric"
)

type weightDPSolver struct {
	memoryLimit int
}

func (weightDPSolver) Method() Method { return DynamicWeight }
func (weightDPSolver) sealed()        {}

func (s weightDPSolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}

	return weightDP(p, s.memoryLimit), nil
}

// cellRef addresses one table cell.
type cellRef struct{ i, w int }

func weightDP(p model.Problem, memoryLimit int) model.Solution {
	var (
		sorted = numeric.SortByRatio(p.Items, p.Capacity)
		items  = sorted.Items
		index  = sorted.Index
	)
	// An empty table row set would leave (0,0) undefined; a zero-cost unit
	// item mapping to no original index keeps the recurrence uniform.
	if len(items) == 0 {
		items = []model.Item{{Weight: 1, Cost: 0}}
		index = []int{-1}
	}

	var (
		g     = numeric.WeightGCD(items)
		n     = len(items)
		limit = p.Capacity / g
		width = limit + 1
	)
	if width > memoryLimit/(n+1) {
		return model.None(p.ID, p.Size())
	}

	var (
		weight = make([]int, n)
		cost   = make([]int, (n+1)*width)
		taken  = make([]bool, (n+1)*width)
		i      int
	)
	for i = range items {
		weight[i] = items[i].Weight / g
	}
	for i = 0; i < n*width; i++ {
		cost[i] = -1
	}

	stack := make([]cellRef, 0, n+1)
	stack = append(stack, cellRef{0, 0})
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		at := top.i*width + top.w
		if cost[at] >= 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		var (
			best = -1
			take bool
		)
		if nw := top.w + weight[top.i]; nw <= limit {
			c := cost[(top.i+1)*width+nw]
			if c < 0 {
				stack = append(stack, cellRef{top.i + 1, nw})
				continue
			}
			best, take = c+items[top.i].Cost, true
		}
		c := cost[(top.i+1)*width+top.w]
		if c < 0 {
			stack = append(stack, cellRef{top.i + 1, top.w})
			continue
		}
		if c >= best {
			best, take = c, false
		}
		cost[at], taken[at] = best, take
		stack = stack[:len(stack)-1]
	}

	// Forward walk along the recorded decisions.
	var (
		sel = make([]bool, p.Size())
		w   int
	)
	for i = 0; i < n; i++ {
		if !taken[i*width+w] {
			continue
		}
		if index[i] >= 0 {
			sel[index[i]] = true
		}
		w += weight[i]
	}

	return model.Solution{ID: p.ID, Size: p.Size(), Cost: cost[0], Selection: sel}
}
