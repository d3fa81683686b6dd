// Package numeric - suffix sums and upper bounds over ratio-sorted items.
//
// The fractional relaxation of a 0/1 knapsack (allow a fraction of one item)
// is solved exactly by a greedy pass over ratio-sorted items: take whole items
// while they fit, then the fitting fraction of the next one. Its floor is an
// upper bound on every integer selection, because costs are integers.
package numeric

import (
	"sort"

	"github.com/katalvlaran/knapsack/model"
)

// Suffix stores suffix sums over a fixed item order:
//
//	Cost[i]   = Σ items[i..n-1].Cost
//	Weight[i] = Σ items[i..n-1].Weight
//
// with Cost[n] == Weight[n] == 0.
type Suffix struct {
	Cost   []int
	Weight []int
	items  []model.Item
}

// NewSuffix builds the suffix sums in O(n).
func NewSuffix(items []model.Item) Suffix {
	var (
		n = len(items)
		s = Suffix{
			Cost:   make([]int, n+1),
			Weight: make([]int, n+1),
			items:  items,
		}
		i int
	)
	for i = n - 1; i >= 0; i-- {
		s.Cost[i] = s.Cost[i+1] + items[i].Cost
		s.Weight[i] = s.Weight[i+1] + items[i].Weight
	}

	return s
}

// FractionalBound returns ⌊fractional optimum⌋ of items[i..] under budget.
// The items must be ratio-sorted (see SortByRatio); budget must be ≥ 0.
//
// The prefix of items[i..] that fits whole is located by binary search over
// the monotone suffix weights, so a query costs O(log n).
func (s Suffix) FractionalBound(i, budget int) int {
	var n = len(s.items)
	if i >= n || budget < 0 {
		return 0
	}
	if s.Weight[i] <= budget {
		return s.Cost[i]
	}

	// k = number of whole items taken: the largest k with Weight[i]-Weight[i+k] ≤ budget.
	k := sort.Search(n-i+1, func(t int) bool {
		return s.Weight[i]-s.Weight[i+t] > budget
	}) - 1
	var (
		last  = i + k // first item that no longer fits whole
		taken = s.Weight[i] - s.Weight[last]
		value = s.Cost[i] - s.Cost[last]
		rem   = budget - taken
	)
	if rem > 0 {
		// rem < items[last].Weight, so the fraction is strictly below one item.
		value += int(uint64(s.items[last].Cost) * uint64(rem) / uint64(s.items[last].Weight))
	}

	return value
}

// MaxCost is the linear-time form of FractionalBound(0, capacity) over
// ratio-sorted items. The cost-indexed DP uses it to size its table.
//
// Complexity: O(n).
func MaxCost(items []model.Item, capacity int) int {
	var (
		weight, cost int
		i            int
	)
	for i = range items {
		if weight+items[i].Weight <= capacity {
			weight += items[i].Weight
			cost += items[i].Cost
			continue
		}
		rem := capacity - weight
		if rem > 0 {
			cost += int(uint64(items[i].Cost) * uint64(rem) / uint64(items[i].Weight))
		}

		break
	}

	return cost
}

// BestFitting returns the most valuable item that fits alone and its index.
// The first such item wins ties. If no item with positive cost fits, it
// returns (0, -1).
//
// Complexity: O(n).
func BestFitting(items []model.Item, capacity int) (cost int, index int) {
	index = -1
	var i int
	for i = range items {
		if items[i].Weight <= capacity && items[i].Cost > cost {
			cost, index = items[i].Cost, i
		}
	}

	return cost, index
}

// GCD returns the greatest common divisor of a and b (GCD(0,0) == 0).
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// WeightGCD returns the GCD of all item weights, or 1 if it would be 0.
func WeightGCD(items []model.Item) int {
	var g int
	for _, it := range items {
		g = GCD(g, it.Weight)
	}
	if g == 0 {
		return 1
	}

	return g
}

// CostGCD returns the GCD of all item costs, or 1 if it would be 0.
func CostGCD(items []model.Item) int {
	var g int
	for _, it := range items {
		g = GCD(g, it.Cost)
	}
	if g == 0 {
		return 1
	}

	return g
}

// MaxCardinality returns the largest number of items any feasible selection
// can contain: the length of the lightest-first prefix that fits.
//
// Complexity: O(n log n).
func MaxCardinality(items []model.Item, capacity int) int {
	weights := make([]int, len(items))
	for i := range items {
		weights[i] = items[i].Weight
	}
	sort.Ints(weights)

	var total, m int
	for _, w := range weights {
		if total+w > capacity {
			break
		}
		total += w
		m++
	}

	return m
}

// PracticalFTPASError bounds optimal − FTPAS(k) for one instance.
//
// Dividing costs by k loses at most (cost mod k) per selected item, and the
// optimal selection has at most MaxCardinality items, so the sum of the m
// largest remainders among fitting items is an upper bound on the loss.
//
// Complexity: O(n log n).
func PracticalFTPASError(p model.Problem, k int) int {
	if k <= 1 {
		return 0
	}
	var (
		m    = MaxCardinality(p.Items, p.Capacity)
		rems = make([]int, 0, len(p.Items))
	)
	for _, it := range p.Items {
		if it.Weight <= p.Capacity {
			rems = append(rems, it.Cost%k)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rems)))
	if m > len(rems) {
		m = len(rems)
	}

	var total int
	for _, r := range rems[:m] {
		total += r
	}

	return total
}
