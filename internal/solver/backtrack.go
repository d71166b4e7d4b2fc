package solver

import (
	"context"
	"time"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/ports"
	"svw.info/sudoku-cp/internal/topology"
)

// BacktrackingSolver is a straightforward recursive solver with no
// propagation. Kept as a baseline engine; the constraint solver visits
// orders of magnitude fewer nodes on hard boards.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// grid is the flat working representation: 0 for empty, else the digit.
type grid [topology.Cells]uint8

func gridFrom(b *domain.Board) grid {
	var g grid
	for i := range g {
		g[i] = b.Cell(i)
	}
	return g
}

func (g *grid) board() domain.Board {
	var b domain.Board
	for i, v := range g {
		b.SetCell(i, v)
	}
	return b
}

// canPlace reports whether v at cell i clashes with any peer.
func canPlace(g *grid, i int, v uint8) bool {
	for _, j := range topology.Peers[i] {
		if g[j] == v {
			return false
		}
	}
	return true
}

func firstEmpty(g *grid) (int, bool) {
	for i, v := range g {
		if v == 0 {
			return i, true
		}
	}
	return 0, false
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	g := gridFrom(b)
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		i, ok := firstEmpty(&g)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlace(&g, i, v) {
				g[i] = v
				if dfs() {
					return true
				}
				g[i] = 0
			}
		}
		return false
	}
	st := func() ports.Stats {
		return ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	}
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, st(), err
		}
		return nil, st(), ErrUnsolvable
	}
	out := g.board()
	out.Fixed = b.Fixed
	return &out, st(), nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	g := gridFrom(b)
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		i, ok := firstEmpty(&g)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlace(&g, i, v) {
				g[i] = v
				if dfs() {
					return true
				}
				g[i] = 0
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
