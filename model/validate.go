// Package model - validation utilities shared by solvers, the runner and tests.
//
// Validate checks an instance before it reaches a solver; Verify checks a
// solver's answer against the instance it came from. Both are deterministic,
// side-effect free and return sentinel errors wrapped with the offending index.
package model

import "fmt"

// Validate verifies that p is a well-formed instance.
//
// Contract:
//   - ID > 0.
//   - Capacity, Threshold (when present), every weight and cost in [0, MaxValue].
//
// Complexity: O(n).
func Validate(p Problem) error {
	if p.ID <= 0 {
		return ErrInvalidID
	}
	if err := checkValue("capacity", p.Capacity); err != nil {
		return err
	}
	if p.HasThreshold {
		if err := checkValue("threshold", p.Threshold); err != nil {
			return err
		}
	}

	var (
		i   int
		err error
	)
	for i = range p.Items {
		if err = checkValue(fmt.Sprintf("item %d weight", i), p.Items[i].Weight); err != nil {
			return err
		}
		if err = checkValue(fmt.Sprintf("item %d cost", i), p.Items[i].Cost); err != nil {
			return err
		}
	}

	return nil
}

func checkValue(what string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s=%d: %w", what, v, ErrNegativeValue)
	}
	if uint64(v) > MaxValue {
		return fmt.Errorf("%s=%d: %w", what, v, ErrValueOverflow)
	}

	return nil
}

// Verify checks that s is a consistent answer for p:
//   - a nil selection must declare cost 0;
//   - a selection has exactly p.Size() entries;
//   - the selected weight fits into p.Capacity;
//   - the declared cost equals the cost recomputed from the original items.
//
// Complexity: O(n).
func Verify(p Problem, s Solution) error {
	if s.Selection == nil {
		if s.Cost != 0 {
			return fmt.Errorf("cost=%d without selection: %w", s.Cost, ErrCostMismatch)
		}

		return nil
	}
	if len(s.Selection) != p.Size() || s.Size != p.Size() {
		return fmt.Errorf("len=%d size=%d want %d: %w", len(s.Selection), s.Size, p.Size(), ErrSizeMismatch)
	}
	if w := WeightOf(p.Items, s.Selection); w > p.Capacity {
		return fmt.Errorf("weight=%d capacity=%d: %w", w, p.Capacity, ErrInfeasible)
	}
	if c := CostOf(p.Items, s.Selection); c != s.Cost {
		return fmt.Errorf("declared=%d actual=%d: %w", s.Cost, c, ErrCostMismatch)
	}

	return nil
}

// CostOf sums the costs of the selected items. sel may be shorter than items.
func CostOf(items []Item, sel []bool) int {
	var total int
	for i, b := range sel {
		if b && i < len(items) {
			total += items[i].Cost
		}
	}

	return total
}

// WeightOf sums the weights of the selected items. sel may be shorter than items.
func WeightOf(items []Item, sel []bool) int {
	var total int
	for i, b := range sel {
		if b && i < len(items) {
			total += items[i].Weight
		}
	}

	return total
}
