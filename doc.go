// Package knapsack is a suite of interchangeable 0/1 knapsack solvers, from
// exhaustive search to approximation schemes and local search.
//
// 🎒 What is inside?
//
//	• Exact:       Naive, Pruning (branch-and-bound), DynamicWeight, DynamicCost
//	• Heuristic:   Greedy, Redux (2-approximation)
//	• Approximate: FTPAS (cost scaling), ApproxPruning (relative slack)
//	• Metaheuristic: TabuSearch (deterministic bit-flip search)
//
// ✨ Properties
//
//   - Exact arithmetic – ratios are compared as fractions, never as floats
//   - No recursion – every search and table fill uses an explicit stack
//   - Memory guard – the cost-indexed table refuses to allocate past a ceiling
//   - Stateless strategies – one configured solver may serve many goroutines
//
// Packages:
//
//	model/    - Item, Problem, Solution; validation and verification
//	numeric/  - exact ratios, ratio sort, suffix sums, fractional bounds, GCD
//	solver/   - the nine strategies, the selector New and Decide
//	instance/ - text line codec, file loaders, deterministic generator
//	report/   - records, statistics, text/table output, Prometheus metrics
//	runner/   - batch execution, sequential or parallel
//	cmd/knapsack - the command line
//
// Quick example:
//
//	s, _ := solver.New(solver.Pruning)
//	sol, _ := s.Construct(model.Problem{
//	    ID:       1,
//	    Capacity: 5,
//	    Items:    []model.Item{{2, 3}, {3, 4}, {4, 5}, {5, 6}},
//	})
//	// sol.Cost == 7, sol.Selection == [true true false false]
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
