// Package report - reference comparison.
package report

import (
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/numeric"
	"github.com/katalvlaran/knapsack/solver"
)

// Compare checks got against ref for method m. precision is the FTPAS
// divisor and is ignored by every other method.
func Compare(p model.Problem, got, ref model.Solution, m solver.Method, precision int) Comparison {
	c := Comparison{ReferenceCost: ref.Cost, Exact: m.IsExact()}
	if c.Exact {
		switch {
		case got.Equal(ref):
			c.Match = MatchEqual
		case got.Cost == ref.Cost && got.Size == ref.Size:
			c.Match = MatchSameCost
		default:
			c.Match = MatchMismatch
		}

		return c
	}

	c.AbsoluteError = ref.Cost - got.Cost
	if ref.Cost != 0 {
		c.RelativeError = float64(c.AbsoluteError) / float64(ref.Cost)
	}
	if m == solver.FTPAS {
		c.HasPracticalBound = true
		c.PracticalBound = numeric.PracticalFTPASError(p, precision)
		if c.PracticalBound != 0 {
			c.BoundRatio = float64(c.AbsoluteError) / float64(c.PracticalBound)
		}
	}

	return c
}
