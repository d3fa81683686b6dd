// Package instance - random instance generator.
package instance

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/knapsack/model"
)

// GenerateOptions controls Generate.
//
//   - Count          – number of problems.
//   - Size           – items per problem.
//   - MaxWeight      – weights are uniform in [0, MaxWeight].
//   - MaxCost        – costs are uniform in [0, MaxCost].
//   - CapacityRatio  – capacity = ⌊ratio · Σweight⌋, ratio in [0, 1].
//   - Decision       – emit thresholds (negative ids on output).
//   - ThresholdRatio – threshold = ⌊ratio · Σcost⌋, ratio in [0, 1].
//   - Seed           – 0 means the default seed.
//   - FirstID        – id of the first problem (≥ 1).
type GenerateOptions struct {
	Count          int
	Size           int
	MaxWeight      int
	MaxCost        int
	CapacityRatio  float64
	Decision       bool
	ThresholdRatio float64
	Seed           int64
	FirstID        int
}

// DefaultGenerateOptions mirrors the classic benchmark sets: 50 problems of
// 20 items, weights and costs up to 100, half of the total weight allowed.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Count:          50,
		Size:           20,
		MaxWeight:      100,
		MaxCost:        100,
		CapacityRatio:  0.5,
		ThresholdRatio: 0.5,
		FirstID:        1,
	}
}

func (o GenerateOptions) validate() error {
	switch {
	case o.Count < 0:
		return errors.Wrapf(ErrInvalidOptions, "count %d", o.Count)
	case o.Size < 0:
		return errors.Wrapf(ErrInvalidOptions, "size %d", o.Size)
	case o.MaxWeight < 0 || o.MaxWeight > model.MaxValue:
		return errors.Wrapf(ErrInvalidOptions, "max weight %d", o.MaxWeight)
	case o.MaxCost < 0 || o.MaxCost > model.MaxValue:
		return errors.Wrapf(ErrInvalidOptions, "max cost %d", o.MaxCost)
	case o.CapacityRatio < 0 || o.CapacityRatio > 1:
		return errors.Wrapf(ErrInvalidOptions, "capacity ratio %g", o.CapacityRatio)
	case o.ThresholdRatio < 0 || o.ThresholdRatio > 1:
		return errors.Wrapf(ErrInvalidOptions, "threshold ratio %g", o.ThresholdRatio)
	case o.FirstID < 1:
		return errors.Wrapf(ErrInvalidOptions, "first id %d", o.FirstID)
	}

	return nil
}

// Generate draws o.Count valid problems.
//
// Complexity: O(Count · Size).
func Generate(o GenerateOptions) ([]model.Problem, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	out := make([]model.Problem, o.Count)
	for k := range out {
		var totalW, totalC int
		rng := streamRNG(o.Seed, k)
		items := make([]model.Item, o.Size)
		for i := range items {
			items[i] = model.Item{Weight: rng.Intn(o.MaxWeight + 1), Cost: rng.Intn(o.MaxCost + 1)}
			totalW += items[i].Weight
			totalC += items[i].Cost
		}
		p := model.Problem{
			ID:       o.FirstID + k,
			Capacity: clamp(int(o.CapacityRatio * float64(totalW))),
			Items:    items,
		}
		if o.Decision {
			p.Threshold = clamp(int(o.ThresholdRatio * float64(totalC)))
			p.HasThreshold = true
		}
		out[k] = p
	}

	return out, nil
}

func clamp(v int) int {
	if v > model.MaxValue {
		return model.MaxValue
	}

	return v
}
