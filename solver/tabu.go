// Package solver - tabu search.
//
// The search state is the full choice vector over the original items (no
// filtering, no sorting). Starting from the empty selection, each iteration
// flips exactly one bit, choosing the move that
//
//  1. minimises overflow max(0, weight − capacity),
//  2. then maximises cost,
//  3. then has the lowest index,
//
// among moves whose result differs in more than one position from every
// remembered state. The memory is a ring buffer of the last M states the
// search departed from. When every move is tabu, the same choice is made
// ignoring the memory, so an iteration always moves.
//
// The best feasible state among the observed ones is returned. The starting
// point is the first observed state, so a well-formed instance (capacity ≥ 0)
// always yields a selection. The search is deterministic.
//
// Complexity: O(iterations · M · n) time, O(M · n) memory.
package solver

import (
	"github.com/katalvlaran/knapsack/model"
)

type tabuSolver struct {
	memorySize int
	iterations int
}

func (tabuSolver) Method() Method { return TabuSearch }
func (tabuSolver) sealed()        {}

// Construct runs the configured number of moves. It returns model.None when
// no feasible state was observed.
func (s tabuSolver) Construct(p model.Problem) (model.Solution, error) {
	if err := model.Validate(p); err != nil {
		return model.Solution{}, err
	}
	if p.Size() == 0 {
		return model.Empty(p.ID, 0), nil
	}

	t := newTabuEngine(p, s.memorySize)
	t.observe()
	for it := 0; it < s.iterations; it++ {
		t.step()
	}
	if t.bestSel == nil {
		return model.None(p.ID, p.Size()), nil
	}

	return model.Solution{ID: p.ID, Size: p.Size(), Cost: t.bestCost, Selection: t.bestSel}, nil
}

// tabuEngine holds the walk state.
type tabuEngine struct {
	items    []model.Item
	capacity int

	cur          []bool
	cost, weight int

	memory [][]bool // ring buffer, len ≤ cap
	next   int      // slot overwritten by the next push
	tabu   []bool   // scratch: per-index blacklist of the current step

	bestCost int
	bestSel  []bool
}

func newTabuEngine(p model.Problem, memorySize int) *tabuEngine {
	return &tabuEngine{
		items:    p.Items,
		capacity: p.Capacity,
		cur:      make([]bool, p.Size()),
		memory:   make([][]bool, 0, memorySize),
		tabu:     make([]bool, p.Size()),
	}
}

// markTabu fills t.tabu. Flipping j moves the distance to a remembered state
// by ±1, so with d the current distance the move lands within distance 1 iff
// d ≤ 2 and the state disagrees at j, or d = 0.
func (t *tabuEngine) markTabu() {
	var j int
	for j = range t.tabu {
		t.tabu[j] = false
	}
	for _, m := range t.memory {
		d := 0
		for j = range m {
			if m[j] != t.cur[j] {
				d++
			}
		}
		if d > 2 {
			continue
		}
		for j = range m {
			if d == 0 || m[j] != t.cur[j] {
				t.tabu[j] = true
			}
		}
	}
}

func (t *tabuEngine) overflow(w int) int {
	if w > t.capacity {
		return w - t.capacity
	}

	return 0
}

// choose returns the best move; with useMemory it skips tabu indices and may
// return -1.
func (t *tabuEngine) choose(useMemory bool) int {
	var (
		bestOver, bestC int
		j, w, c, over   int
	)
	best := -1
	for j = range t.items {
		if useMemory && t.tabu[j] {
			continue
		}
		if t.cur[j] {
			w, c = t.weight-t.items[j].Weight, t.cost-t.items[j].Cost
		} else {
			w, c = t.weight+t.items[j].Weight, t.cost+t.items[j].Cost
		}
		over = t.overflow(w)
		if best < 0 || over < bestOver || (over == bestOver && c > bestC) {
			best, bestOver, bestC = j, over, c
		}
	}

	return best
}

// remember pushes a copy of the current state into the ring buffer.
func (t *tabuEngine) remember() {
	if len(t.memory) < cap(t.memory) {
		t.memory = append(t.memory, append([]bool(nil), t.cur...))

		return
	}
	copy(t.memory[t.next], t.cur)
	t.next = (t.next + 1) % len(t.memory)
}

// observe records the current state if it is the best feasible one so far.
func (t *tabuEngine) observe() {
	if t.weight <= t.capacity && (t.bestSel == nil || t.cost > t.bestCost) {
		t.bestCost = t.cost
		t.bestSel = append(t.bestSel[:0], t.cur...)
	}
}

// step performs one move and observes the result.
func (t *tabuEngine) step() {
	t.markTabu()
	j := t.choose(true)
	if j < 0 {
		j = t.choose(false)
	}

	t.remember()
	if t.cur[j] {
		t.weight -= t.items[j].Weight
		t.cost -= t.items[j].Cost
	} else {
		t.weight += t.items[j].Weight
		t.cost += t.items[j].Cost
	}
	t.cur[j] = !t.cur[j]
	t.observe()
}
