// Package markup implements the candidate-set view of a board: every
// cell carries the set of digits it could still take. The solver works
// entirely in this representation.
package markup

import (
	"math/bits"
	"strings"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/topology"
)

// Mask is a candidate set for one cell. Bit v-1 is set when digit v is
// still possible. A mask with exactly one bit set is a determined cell;
// an all-zero mask means the cell has no possible value.
type Mask uint16

// Full admits every digit 1-9.
const Full Mask = 0x1FF

// Only returns the mask admitting just v.
func Only(v uint8) Mask { return 1 << (v - 1) }

// Has reports whether v is a candidate.
func (m Mask) Has(v uint8) bool { return m&Only(v) != 0 }

// Without returns m with v removed.
func (m Mask) Without(v uint8) Mask { return m &^ Only(v) }

// Count returns the number of candidates.
func (m Mask) Count() int { return bits.OnesCount16(uint16(m)) }

// Single returns the sole candidate and true when exactly one remains.
func (m Mask) Single() (uint8, bool) {
	if m.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(m))) + 1, true
}

// String renders the candidates as digits, e.g. "257".
func (m Mask) String() string {
	var sb strings.Builder
	for v := uint8(1); v <= 9; v++ {
		if m.Has(v) {
			sb.WriteByte('0' + v)
		}
	}
	return sb.String()
}

// Markup maps every cell to its candidate mask. It is a plain value;
// assigning one Markup to another is the full deep copy the search
// relies on for branch isolation.
type Markup [topology.Cells]Mask

// New derives a markup from a board. A given keeps only its digit; an
// empty cell admits everything not already fixed among its immediate
// peers. This is a single pass: it does not cascade, and it does not
// detect contradictions. A board whose givens are already inconsistent
// simply yields an empty mask somewhere, caught later by propagation.
func New(b *domain.Board) Markup {
	var m Markup
	for i := range m {
		if v := b.Cell(i); v != 0 {
			m[i] = Only(v)
			continue
		}
		set := Full
		for _, j := range topology.Peers[i] {
			if v := b.Cell(j); v != 0 {
				set = set.Without(v)
			}
		}
		m[i] = set
	}
	return m
}

// Solved reports whether every cell is down to a single candidate.
func (m *Markup) Solved() bool {
	for _, s := range m {
		if s.Count() != 1 {
			return false
		}
	}
	return true
}

// Board decodes a solved markup back into a board. Cells that are not
// yet determined decode as empty.
func (m *Markup) Board() domain.Board {
	var b domain.Board
	for i, s := range m {
		if v, ok := s.Single(); ok {
			b.SetCell(i, v)
		}
	}
	return b
}
