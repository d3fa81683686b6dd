package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/numeric"
)

func TestRatio_Cmp(t *testing.T) {
	a := numeric.NewRatio(3, 2) // 1.5
	b := numeric.NewRatio(4, 3) // 1.333…
	c := numeric.NewRatio(6, 4) // 1.5

	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(c), "equal fractions in different terms must tie")

	free := numeric.NewRatio(5, 0)
	zero := numeric.NewRatio(0, 0)
	assert.True(t, free.IsInf())
	assert.Equal(t, 1, free.Cmp(a))
	assert.Equal(t, -1, zero.Cmp(b))
	assert.Equal(t, 0, zero.Cmp(numeric.NewRatio(0, 7)))
	assert.Equal(t, "inf", free.String())
	assert.Equal(t, "3/2", a.String())
}

// Floating point cannot tell these apart: both round to the same float32.
func TestRatio_CmpExactWhereFloatTies(t *testing.T) {
	a := numeric.NewRatio(16777217, 16777216)
	b := numeric.NewRatio(16777216, 16777216)
	require.Equal(t, float32(16777217)/float32(16777216), float32(16777216)/float32(16777216))
	assert.Equal(t, 1, a.Cmp(b))
}

func TestRatio_MulFloor(t *testing.T) {
	r := numeric.NewRatio(5, 4)
	assert.Equal(t, 3, r.MulFloor(3)) // 3.75
	assert.Equal(t, 0, r.MulFloor(0))
	big := numeric.NewRatio(model.MaxValue, 1)
	assert.Equal(t, model.MaxValue*2, big.MulFloor(2))
}

func TestSortByRatio(t *testing.T) {
	items := []model.Item{
		{Weight: 5, Cost: 6},  // 1.2
		{Weight: 9, Cost: 99}, // too heavy
		{Weight: 2, Cost: 3},  // 1.5
		{Weight: 4, Cost: 6},  // 1.5, heavier wins tie
		{Weight: 3, Cost: 4},  // 1.33
	}
	s := numeric.SortByRatio(items, 5)

	require.Equal(t, 4, s.Len())
	assert.Equal(t, []int{3, 2, 4, 0}, s.Index)
	assert.Equal(t, []model.Item{{Weight: 4, Cost: 6}, {Weight: 2, Cost: 3}, {Weight: 3, Cost: 4}, {Weight: 5, Cost: 6}}, s.Items)
	assert.Equal(t, []bool{false, false, true, true, false}, s.Restore([]bool{true, true, false, false}, 5))
	assert.Equal(t, 5, len(items), "input must not be modified")
}

func TestSuffix_FractionalBound(t *testing.T) {
	items := numeric.SortByRatio([]model.Item{{Weight: 2, Cost: 3}, {Weight: 3, Cost: 4}, {Weight: 4, Cost: 5}, {Weight: 5, Cost: 6}}, 100).Items
	s := numeric.NewSuffix(items)

	assert.Equal(t, []int{18, 15, 11, 6, 0}, s.Cost)
	assert.Equal(t, []int{14, 12, 9, 5, 0}, s.Weight)

	// Budget 5: items (2,3) and (3,4) exactly.
	assert.Equal(t, 7, s.FractionalBound(0, 5))
	// Budget 6: plus 1/4 of (4,5) → 7 + 1.25.
	assert.Equal(t, 8, s.FractionalBound(0, 6))
	// Suffix from the third item with budget 7: (4,5) + 3/5 of (5,6) = 8.6.
	assert.Equal(t, 8, s.FractionalBound(2, 7))
	assert.Equal(t, 18, s.FractionalBound(0, 14))
	assert.Equal(t, 0, s.FractionalBound(4, 10))
	assert.Equal(t, 0, s.FractionalBound(0, 0))
}

func TestFractionalBound_MatchesMaxCost(t *testing.T) {
	items := numeric.SortByRatio([]model.Item{
		{Weight: 7, Cost: 13}, {Weight: 1, Cost: 1}, {Weight: 0, Cost: 4}, {Weight: 12, Cost: 20}, {Weight: 3, Cost: 9}, {Weight: 5, Cost: 5}, {Weight: 8, Cost: 3}, {Weight: 2, Cost: 7},
	}, 100).Items
	s := numeric.NewSuffix(items)
	for budget := 0; budget <= 40; budget++ {
		assert.Equal(t, numeric.MaxCost(items, budget), s.FractionalBound(0, budget), "budget=%d", budget)
	}
}

func TestBestFitting(t *testing.T) {
	items := []model.Item{{Weight: 6, Cost: 10}, {Weight: 2, Cost: 3}, {Weight: 5, Cost: 6}, {Weight: 1, Cost: 6}}

	cost, idx := numeric.BestFitting(items, 5)
	assert.Equal(t, 6, cost)
	assert.Equal(t, 2, idx, "first of equal costs wins")

	cost, idx = numeric.BestFitting(items, 0)
	assert.Equal(t, 0, cost)
	assert.Equal(t, -1, idx)
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 6, numeric.GCD(12, 18))
	assert.Equal(t, 5, numeric.GCD(0, 5))
	assert.Equal(t, 0, numeric.GCD(0, 0))
	assert.Equal(t, 3, numeric.WeightGCD([]model.Item{{Weight: 3, Cost: 1}, {Weight: 9, Cost: 1}, {Weight: 0, Cost: 1}}))
	assert.Equal(t, 1, numeric.WeightGCD([]model.Item{{Weight: 0, Cost: 1}}))
	assert.Equal(t, 4, numeric.CostGCD([]model.Item{{Weight: 1, Cost: 8}, {Weight: 1, Cost: 12}}))
	assert.Equal(t, 1, numeric.CostGCD(nil))
}

func TestPracticalFTPASError(t *testing.T) {
	p := model.Problem{ID: 1, Capacity: 6, Items: []model.Item{
		{Weight: 1, Cost: 19}, // rem 9
		{Weight: 2, Cost: 27}, // rem 7
		{Weight: 3, Cost: 11}, // rem 1
		{Weight: 9, Cost: 18}, // too heavy
	}}
	assert.Equal(t, 3, numeric.MaxCardinality(p.Items, p.Capacity))
	assert.Equal(t, 17, numeric.PracticalFTPASError(p, 10))
	assert.Equal(t, 0, numeric.PracticalFTPASError(p, 1))
}
