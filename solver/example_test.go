// Package solver_test provides runnable examples for the solver package.
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/solver"
)

// ExampleNew solves a four-item instance exactly.
func ExampleNew() {
	p := model.Problem{
		ID:       1,
		Capacity: 5,
		Items:    []model.Item{{Weight: 2, Cost: 3}, {Weight: 3, Cost: 4}, {Weight: 4, Cost: 5}, {Weight: 5, Cost: 6}},
	}

	s, err := solver.New(solver.Pruning)
	if err != nil {
		fmt.Println(err)
		return
	}
	sol, err := s.Construct(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.Cost, sol.Selection)
	// Output: 7 [true true false false]
}

// ExampleDecide answers "is a cost of at least 8 reachable?".
func ExampleDecide() {
	p := model.Problem{
		ID:           2,
		Capacity:     5,
		Threshold:    8,
		HasThreshold: true,
		Items:        []model.Item{{Weight: 2, Cost: 3}, {Weight: 3, Cost: 4}, {Weight: 4, Cost: 5}, {Weight: 5, Cost: 6}},
	}

	s, _ := solver.New(solver.DynamicWeight)
	sol, _ := solver.Decide(s, p)
	fmt.Println(sol.HasSelection())
	// Output: false
}

// ExampleNew_approximate bounds the error of a scaled dynamic program.
func ExampleNew_approximate() {
	p := model.Problem{
		ID:       3,
		Capacity: 10,
		Items:    []model.Item{{Weight: 5, Cost: 51}, {Weight: 5, Cost: 49}, {Weight: 6, Cost: 70}},
	}

	s, _ := solver.New(solver.FTPAS, solver.WithPrecision(10))
	sol, _ := s.Construct(p)
	fmt.Println(sol.Cost)
	// Output: 100
}
