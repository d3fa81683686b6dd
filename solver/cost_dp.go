// Package solver - cost-indexed dynamic programming.
//
// Dual of the weight-indexed table:
//
//	cell(i, c) = minimal weight of a selection among items[0..i-1] with cost c
//	             (-1 = unreached)
//
// The cost axis is divided by the GCD g of the kept costs and bounded by
// MaxCost, the floor of the fractional optimum: no feasible selection can cost
// more, so (n+1)·(MaxCost+1) cells suffice. That product is compared against
// the memory ceiling before anything is allocated; over the ceiling the
// solver returns model.None instead.
//
// Fill: breadth-first frontier from (0,0). Row i is completely processed
// before row i+1, so a cell whose weight is lowered while it waits in the
// queue is read with its final value. The incumbent starts at the Redux cost;
// exclude transitions whose bounds cannot beat it are dropped.
//
// Reconstruction walks back from the cell where the best cost was first
// reached: the exclude predecessor (i, c) is used when it stores the same
// weight, otherwise the include predecessor (i, c-cᵢ) must store weight-wᵢ.
//
// Complexity: O(n·MaxCost) time and memory.
package solver

import (
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/numeric"
)

type costDPSolver struct {
	memoryLimit int
}

func (costDPSolver) Method() Method { return DynamicCost }
func (costDPSolver) sealed()        {}

// Construct returns an optimal selection, or model.None when the table would
// exceed the memory ceiling.
func (s costDPSolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}

	return costDP(p, s.memoryLimit), nil
}

// costTable is the state of one cost-indexed fill.
type costTable struct {
	items    []model.Item // kept items, costs divided by g
	ratios   []numeric.Ratio
	suffix   numeric.Suffix
	capacity int
	width    int
	cells    []int
	queue    []cellRef

	best    int
	bestRow int // -1 while the Redux seed is unbeaten
}

func (t *costTable) at(i, c int) int { return t.cells[i*t.width+c] }

// relax records weight w for (i, c) if it is new or lighter.
func (t *costTable) relax(i, c, w int) {
	k := i*t.width + c
	switch {
	case t.cells[k] < 0:
		t.cells[k] = w
		t.queue = append(t.queue, cellRef{i, c})
	case w < t.cells[k]:
		t.cells[k] = w
	}
}

// prune reports whether state (j, c, w) cannot beat the incumbent.
func (t *costTable) prune(j, c, w int) bool {
	room := t.capacity - w
	if !t.ratios[j].IsInf() {
		x := room
		if t.suffix.Weight[j] < x {
			x = t.suffix.Weight[j]
		}
		if c+t.ratios[j].MulFloor(x) <= t.best {
			return true
		}
	}
	if c+t.suffix.Cost[j] <= t.best {
		return true
	}

	return c+t.suffix.FractionalBound(j, room) <= t.best
}

func (t *costTable) fill() {
	var (
		n    = len(t.items)
		head int
	)
	t.cells[0] = 0
	t.queue = append(t.queue, cellRef{0, 0})
	for head < len(t.queue) {
		cur := t.queue[head]
		head++
		if cur.i >= n {
			continue
		}
		var (
			it = t.items[cur.i]
			w  = t.at(cur.i, cur.w)
			j  = cur.i + 1
		)
		if nw := w + it.Weight; nw <= t.capacity {
			nc := cur.w + it.Cost
			if nc > t.best {
				t.best, t.bestRow = nc, j
			}
			t.relax(j, nc, nw)
		}
		if j < n && !t.prune(j, cur.w, w) {
			t.relax(j, cur.w, w)
		}
	}
}

// walkBack returns the selection (over kept items) that reaches t.best.
func (t *costTable) walkBack() []bool {
	var (
		sel = make([]bool, len(t.items))
		c   = t.best
		w   = t.at(t.bestRow, c)
		i   int
	)
	for i = t.bestRow - 1; i >= 0; i-- {
		if t.at(i, c) == w {
			continue
		}
		sel[i] = true
		c -= t.items[i].Cost
		w -= t.items[i].Weight
	}

	return sel
}

func costDP(p model.Problem, memoryLimit int) model.Solution {
	sorted := numeric.SortByRatio(p.Items, p.Capacity)
	if sorted.Len() == 0 {
		return model.Empty(p.ID, p.Size())
	}

	var (
		g     = numeric.CostGCD(sorted.Items)
		n     = sorted.Len()
		items = make([]model.Item, n)
		k     int
	)
	for k = range sorted.Items {
		items[k] = model.Item{Weight: sorted.Items[k].Weight, Cost: sorted.Items[k].Cost / g}
	}

	maxCost := numeric.MaxCost(items, p.Capacity)
	if maxCost == 0 {
		return model.Empty(p.ID, p.Size())
	}
	width := maxCost + 1
	if width > memoryLimit/(n+1) {
		return model.None(p.ID, p.Size())
	}

	t := &costTable{
		items:    items,
		ratios:   make([]numeric.Ratio, n),
		suffix:   numeric.NewSuffix(items),
		capacity: p.Capacity,
		width:    width,
		cells:    make([]int, (n+1)*width),
		queue:    make([]cellRef, 0, width),
		bestRow:  -1,
	}
	for k = range items {
		t.ratios[k] = numeric.NewRatio(items[k].Cost, items[k].Weight)
	}
	for k = range t.cells {
		t.cells[k] = -1
	}

	seedSel, seedCost := reduxPick(p, sorted)
	t.best = seedCost / g
	t.fill()

	if t.bestRow < 0 {
		return model.Solution{ID: p.ID, Size: p.Size(), Cost: seedCost, Selection: seedSel}
	}

	return model.Solution{
		ID:        p.ID,
		Size:      p.Size(),
		Cost:      t.best * g,
		Selection: sorted.Restore(t.walkBack(), p.Size()),
	}
}
