package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/markup"
	"svw.info/sudoku-cp/internal/topology"
)

// Singles implements a minimal Hinter: naked singles first, then hidden
// singles, both read straight off the candidate markup.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	m := markup.New(b)

	// Naked single: an empty cell with one candidate left.
	for i := range m {
		if b.Cell(i) != 0 {
			continue
		}
		if v, ok := m[i].Single(); ok {
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %d fits here", v),
				Cells:    []domain.CellCoord{{Row: i / 9, Col: i % 9}},
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}

	// Hidden single: a digit with exactly one home left in a unit.
	for u := range topology.Units {
		for v := uint8(1); v <= 9; v++ {
			place, n := -1, 0
			for _, i := range topology.Units[u] {
				if b.Cell(i) == v {
					n = -1 // already placed in this unit
					break
				}
				if b.Cell(i) == 0 && m[i].Has(v) {
					place = i
					n++
				}
			}
			if n == 1 {
				return domain.Hint{
					Message:  fmt.Sprintf("Hidden single: %d can only go here", v),
					Cells:    []domain.CellCoord{{Row: place / 9, Col: place % 9}},
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
