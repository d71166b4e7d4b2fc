package validator

import (
	"context"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/topology"
)

// FastValidator flags duplicate givens. It walks the 27 units with a
// 9-bit seen mask per unit; empty cells are ignored, so a partially
// filled board validates as long as its givens do not clash.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for u := range topology.Units {
		seen := uint16(0)
		for _, i := range topology.Units[u] {
			val := b.Cell(i)
			if val == 0 {
				continue
			}
			bit := uint16(1) << val
			if seen&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: i / 9, Col: i % 9})
			}
			seen |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
