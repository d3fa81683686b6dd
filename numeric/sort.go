// Package numeric - ratio ordering with a feasibility pre-filter.
package numeric

import (
	"sort"

	"github.com/katalvlaran/knapsack/model"
)

// Sorted is the ratio-descending view of the items that fit on their own.
//
//   - Items[k] is the k-th item in the new order.
//   - Ratios[k] is NewRatio(Items[k].Cost, Items[k].Weight).
//   - Index[k] is the original position of Items[k].
type Sorted struct {
	Items  []model.Item
	Ratios []Ratio
	Index  []int
}

// Len returns the number of kept items.
func (s Sorted) Len() int { return len(s.Items) }

// Restore maps a selection over s.Items back to a selection of length size
// in original item order.
func (s Sorted) Restore(sel []bool, size int) []bool {
	out := make([]bool, size)
	var k int
	for k = range sel {
		if sel[k] && k < len(s.Index) && s.Index[k] >= 0 {
			out[s.Index[k]] = true
		}
	}

	return out
}

// ratioOrder implements sort.Interface: ratio descending, then weight
// descending, then original index ascending (keeps the order deterministic).
type ratioOrder struct{ s *Sorted }

func (o ratioOrder) Len() int { return len(o.s.Items) }
func (o ratioOrder) Less(i, j int) bool {
	if c := o.s.Ratios[i].Cmp(o.s.Ratios[j]); c != 0 {
		return c > 0
	}
	if o.s.Items[i].Weight != o.s.Items[j].Weight {
		return o.s.Items[i].Weight > o.s.Items[j].Weight
	}

	return o.s.Index[i] < o.s.Index[j]
}
func (o ratioOrder) Swap(i, j int) {
	o.s.Items[i], o.s.Items[j] = o.s.Items[j], o.s.Items[i]
	o.s.Ratios[i], o.s.Ratios[j] = o.s.Ratios[j], o.s.Ratios[i]
	o.s.Index[i], o.s.Index[j] = o.s.Index[j], o.s.Index[i]
}

// SortByRatio drops every item heavier than capacity (it can never be
// selected) and orders the rest by exact cost/weight ratio, descending.
//
// Complexity: O(n log n) time, O(n) space. The input slice is not modified.
func SortByRatio(items []model.Item, capacity int) Sorted {
	var s = Sorted{
		Items:  make([]model.Item, 0, len(items)),
		Ratios: make([]Ratio, 0, len(items)),
		Index:  make([]int, 0, len(items)),
	}
	var i int
	for i = range items {
		if items[i].Weight > capacity {
			continue
		}
		s.Items = append(s.Items, items[i])
		s.Ratios = append(s.Ratios, NewRatio(items[i].Cost, items[i].Weight))
		s.Index = append(s.Index, i)
	}
	sort.Sort(ratioOrder{s: &s})

	return s
}
