package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/solver"
)

// scenario is the four-item instance used across the package tests.
// Its unique optimum takes the first two items: weight 5, cost 7.
func scenario() model.Problem {
	return model.Problem{
		ID:       1,
		Capacity: 5,
		Items: []model.Item{
			{Weight: 2, Cost: 3},
			{Weight: 3, Cost: 4},
			{Weight: 4, Cost: 5},
			{Weight: 5, Cost: 6},
		},
	}
}

// randomProblem draws a small instance; roughly a quarter of the items repeat
// their predecessor so the equal-item rule of branch-and-bound is exercised.
func randomProblem(rng *rand.Rand, id, n int) model.Problem {
	var (
		items = make([]model.Item, n)
		total int
		i     int
	)
	for i = 0; i < n; i++ {
		if i > 0 && rng.Intn(4) == 0 {
			items[i] = items[i-1]
		} else {
			items[i] = model.Item{Weight: rng.Intn(30), Cost: rng.Intn(60)}
		}
		total += items[i].Weight
	}

	return model.Problem{ID: id, Capacity: rng.Intn(total + 1), Items: items}
}

// mustNew builds a solver or fails the test.
func mustNew(t testing.TB, m solver.Method, opts ...solver.Option) solver.Solver {
	t.Helper()
	s, err := solver.New(m, opts...)
	require.NoError(t, err, "method=%s", m)

	return s
}

// solve runs Construct and checks the result is internally consistent.
func solve(t testing.TB, s solver.Solver, p model.Problem) model.Solution {
	t.Helper()
	sol, err := s.Construct(p)
	require.NoError(t, err, "method=%s id=%d", s.Method(), p.ID)
	require.NoError(t, model.Verify(p, sol), "method=%s id=%d", s.Method(), p.ID)
	require.Equal(t, p.ID, sol.ID)

	return sol
}

// allSolvers returns every strategy configured with small parameters.
func allSolvers(t testing.TB) []solver.Solver {
	t.Helper()

	return []solver.Solver{
		mustNew(t, solver.Naive),
		mustNew(t, solver.Pruning),
		mustNew(t, solver.DynamicWeight),
		mustNew(t, solver.DynamicCost),
		mustNew(t, solver.Greedy),
		mustNew(t, solver.Redux),
		mustNew(t, solver.FTPAS, solver.WithPrecision(4)),
		mustNew(t, solver.ApproxPruning, solver.WithPrecision(3)),
		mustNew(t, solver.TabuSearch, solver.WithMemorySize(3), solver.WithIterations(40)),
	}
}
