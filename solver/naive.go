package solver

import "github.com/katalvlaran/knapsack/model"

// naiveSolver enumerates every subset. It is the correctness oracle for
// small instances.
type naiveSolver struct{}

func (naiveSolver) Method() Method { return Naive }
func (naiveSolver) sealed()        {}

// Construct explores all 2ⁿ selections in original item order.
func (naiveSolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}

	e := newExhaustiveEngine(p.Items, p.Capacity)
	e.run()

	return model.Solution{ID: p.ID, Size: p.Size(), Cost: e.best, Selection: e.bestTake}, nil
}
