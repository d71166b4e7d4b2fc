package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/ports"
	"svw.info/sudoku-cp/internal/topology"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution from seed and target
// difficulty: fill a complete random solution, then carve givens out in
// random order, keeping only removals that preserve uniqueness.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [topology.Cells]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Canceled
	}

	puz := full
	givens := topology.Cells
	order := rng.Perm(topology.Cells)

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	var st ports.Stats

	for _, i := range order {
		if givens <= target || time.Now().After(deadline) {
			break
		}
		old := puz[i]
		puz[i] = 0
		unique, s, err := g.Solver.Unique(ctx, boardFrom(&puz))
		st.Add(s)
		if err != nil {
			return nil, st, err
		}
		if !unique {
			puz[i] = old // removal broke uniqueness, revert
			continue
		}
		givens--
	}

	b := boardFrom(&puz)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      *b,
		CreatedAt:  time.Now().UnixNano(),
	}
	st.Duration = time.Since(start)
	return p, st, nil
}

func boardFrom(g *[topology.Cells]uint8) *domain.Board {
	var b domain.Board
	for i, v := range g {
		b.SetCell(i, v)
	}
	return &b
}

// fillRandom completes an empty grid into a full valid solution, trying
// digits in a fresh random order at every cell.
func fillRandom(ctx context.Context, rng *rand.Rand, g *[topology.Cells]uint8) bool {
	var dfs func(i int) bool
	dfs = func(i int) bool {
		if ctx.Err() != nil {
			return false
		}
		if i == topology.Cells {
			return true
		}
		for _, k := range rng.Perm(9) {
			v := uint8(k + 1)
			if clashes(g, i, v) {
				continue
			}
			g[i] = v
			if dfs(i + 1) {
				return true
			}
			g[i] = 0
		}
		return false
	}
	return dfs(0)
}

func clashes(g *[topology.Cells]uint8, i int, v uint8) bool {
	for _, j := range topology.Peers[i] {
		if g[j] == v {
			return true
		}
	}
	return false
}
