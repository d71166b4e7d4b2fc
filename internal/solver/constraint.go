package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/markup"
	"svw.info/sudoku-cp/internal/ports"
)

// ErrUnsolvable reports that a board admits no solution.
var ErrUnsolvable = errors.New("no solution exists")

// ConstraintSolver combines constraint propagation with a depth-first
// search over candidate assignments. Propagation prunes the search:
// every speculative assignment cascades naked- and hidden-single
// deductions until a fixed point or a contradiction.
type ConstraintSolver struct{}

func NewConstraintSolver() *ConstraintSolver { return &ConstraintSolver{} }

// engine carries per-solve state: the cancellation context and the
// work counters reported in Stats. Engines are cheap and never shared
// between concurrent solves.
type engine struct {
	ctx     context.Context
	nodes   int
	guesses int
}

func (e *engine) stats(start time.Time) ports.Stats {
	return ports.Stats{Nodes: e.nodes, Guesses: e.guesses, Duration: time.Since(start)}
}

// pick selects the cell to branch on: the undetermined cell with the
// fewest candidates, lowest index winning ties. A 2-candidate cell is
// taken immediately since nothing undetermined can be smaller. Returns
// -1 when no cell has more than one candidate, which for an unsolved
// markup means some cell has none at all.
func pick(m *markup.Markup) int {
	best, bestN := -1, 10
	for i, s := range m {
		if n := s.Count(); n > 1 && n < bestN {
			best, bestN = i, n
			if n == 2 {
				break
			}
		}
	}
	return best
}

// search runs the depth-first search. Each branch assigns one candidate
// of the picked cell to its own copy of the markup; the first branch
// that survives propagation and recursion wins.
func (e *engine) search(m markup.Markup) (markup.Markup, bool) {
	if e.ctx.Err() != nil {
		return markup.Markup{}, false
	}
	if m.Solved() {
		return m, true
	}
	i := pick(&m)
	if i < 0 {
		return markup.Markup{}, false
	}
	for v := uint8(1); v <= 9; v++ {
		if !m[i].Has(v) {
			continue
		}
		e.guesses++
		branch := m
		if e.assign(&branch, i, v) {
			if out, ok := e.search(branch); ok {
				return out, true
			}
		}
	}
	return markup.Markup{}, false
}

func (s *ConstraintSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	e := &engine{ctx: ctx}
	out, ok := e.search(markup.New(b))
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, e.stats(start), err
		}
		return nil, e.stats(start), ErrUnsolvable
	}
	solved := out.Board()
	solved.Fixed = b.Fixed
	return &solved, e.stats(start), nil
}

// countSolutions explores like search but keeps going after a success,
// stopping once limit solutions have been seen.
func (e *engine) countSolutions(m markup.Markup, limit int) int {
	if e.ctx.Err() != nil || limit <= 0 {
		return 0
	}
	if m.Solved() {
		return 1
	}
	i := pick(&m)
	if i < 0 {
		return 0
	}
	total := 0
	for v := uint8(1); v <= 9; v++ {
		if !m[i].Has(v) {
			continue
		}
		e.guesses++
		branch := m
		if e.assign(&branch, i, v) {
			total += e.countSolutions(branch, limit-total)
			if total >= limit {
				break
			}
		}
	}
	return total
}

// Unique reports whether exactly one solution exists. It counts up to 2
// and stops.
func (s *ConstraintSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	e := &engine{ctx: ctx}
	n := e.countSolutions(markup.New(b), 2)
	if err := ctx.Err(); err != nil {
		return false, e.stats(start), err
	}
	return n == 1, e.stats(start), nil
}
