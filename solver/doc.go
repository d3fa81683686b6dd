// Package solver provides interchangeable 0/1 knapsack strategies.
//
// Strategies (see Method):
//
//   - Naive          - exhaustive include/exclude search. Exact.
//     Complexity: O(2ⁿ). Use as an oracle for n ≲ 25.
//
//   - Pruning        - branch-and-bound over ratio-sorted items, seeded with the
//     best single item; ratio, additive and fractional-relaxation bounds. Exact.
//
//   - DynamicWeight  - table (item, used weight) → best cost, weight axis divided
//     by the GCD of weights, filled on demand by an explicit stack. Exact.
//     Memory: O(n·C/g), capped by Options.MemoryLimit.
//
//   - DynamicCost    - table (item, cost) → minimal weight, cost axis divided by
//     the GCD of costs, breadth-first frontier pruned by a Redux seed. Exact.
//     Refuses to allocate more than Options.MemoryLimit cells.
//
//   - Greedy, Redux  - one pass over ratio-sorted items; Redux also considers the
//     best single item and is a 2-approximation.
//
//   - FTPAS          - DynamicCost on costs divided by K; optimal − cost ≤ K·|S*|.
//
//   - ApproxPruning  - Pruning that only explores subtrees able to beat the
//     incumbent by more than a factor (P+1)/P; optimal·P ≤ cost·(P+1).
//
//   - TabuSearch     - deterministic single-bit-flip local search with a ring
//     buffer of recently departed states.
//
// Every strategy exposes Construct; Decide answers the decision problem on top
// of it. Solver values hold only their configuration, so one value may serve
// any number of goroutines.
//
// Example usage:
//
//	s, err := solver.New(solver.Pruning)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sol, err := s.Construct(problem)
//
// Errors (sentinel):
//
//   - ErrUnknownMethod, ErrMissingParameter, ErrInvalidParameter - configuration.
//   - ErrNoThreshold - Decide on an instance without threshold.
//   - model.Validate errors - malformed instances.
//   - ErrInternal - broken invariant (a defect, never "no solution").
package solver
