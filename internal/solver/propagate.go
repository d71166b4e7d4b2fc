package solver

import (
	"svw.info/sudoku-cp/internal/markup"
	"svw.info/sudoku-cp/internal/topology"
)

// eliminate removes v as a candidate for cell i and propagates the
// consequences. It returns false as soon as the markup becomes
// contradictory; the markup must then be discarded by the caller.
//
// Two deductions cascade from a single removal, mutually recursive with
// assign:
//   - naked single: if cell i is left with one candidate, that value
//     cannot appear anywhere among i's peers;
//   - hidden single: if some unit of i now has exactly one cell that
//     still admits v, that cell must take v. A unit with no place left
//     for v is a contradiction.
func (e *engine) eliminate(m *markup.Markup, i int, v uint8) bool {
	if !m[i].Has(v) {
		return true
	}
	m[i] = m[i].Without(v)
	if m[i] == 0 {
		return false
	}
	e.nodes++

	if w, ok := m[i].Single(); ok {
		for _, j := range topology.Peers[i] {
			if !e.eliminate(m, j, w) {
				return false
			}
		}
	}

	for _, u := range topology.UnitsOf[i] {
		place, n := -1, 0
		for _, j := range topology.Units[u] {
			if m[j].Has(v) {
				place = j
				n++
			}
		}
		if n == 0 {
			return false
		}
		if n == 1 {
			if !e.assign(m, place, v) {
				return false
			}
		}
	}
	return true
}

// assign forces cell i to v by eliminating every other candidate the
// cell currently admits. Any failed elimination aborts the whole
// assignment.
func (e *engine) assign(m *markup.Markup, i int, v uint8) bool {
	others := m[i].Without(v)
	for w := uint8(1); w <= 9; w++ {
		if others.Has(w) && !e.eliminate(m, i, w) {
			return false
		}
	}
	return true
}
