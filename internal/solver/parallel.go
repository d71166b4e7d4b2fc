package solver

import (
	"context"
	"sync"
	"time"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/markup"
	"svw.info/sudoku-cp/internal/ports"
)

// ParallelSolver fans the root branch point's candidates out to
// goroutines, each running the sequential constraint engine on its own
// markup copy. The first branch to find a solution wins and the rest
// are cancelled. Branch isolation makes this safe without locks: no
// goroutine ever sees another's markup.
type ParallelSolver struct{}

func NewParallelSolver() *ParallelSolver { return &ParallelSolver{} }

func (s *ParallelSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	m := markup.New(b)
	if m.Solved() {
		out := m.Board()
		out.Fixed = b.Fixed
		return &out, ports.Stats{Duration: time.Since(start)}, nil
	}
	root := pick(&m)
	if root < 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}

	branchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		m  markup.Markup
		st ports.Stats
		ok bool
	}
	results := make(chan result, m[root].Count())

	var wg sync.WaitGroup
	for v := uint8(1); v <= 9; v++ {
		if !m[root].Has(v) {
			continue
		}
		wg.Add(1)
		go func(v uint8) {
			defer wg.Done()
			e := &engine{ctx: branchCtx}
			e.guesses++
			branch := m
			ok := e.assign(&branch, root, v)
			var out markup.Markup
			if ok {
				out, ok = e.search(branch)
			}
			results <- result{m: out, st: ports.Stats{Nodes: e.nodes, Guesses: e.guesses}, ok: ok}
		}(v)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var st ports.Stats
	var solution *markup.Markup
	for r := range results {
		st.Add(r.st)
		if r.ok && solution == nil {
			win := r.m
			solution = &win
			cancel() // siblings' remaining work is immaterial
		}
	}
	st.Duration = time.Since(start)

	if solution == nil {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	out := solution.Board()
	out.Fixed = b.Fixed
	return &out, st, nil
}

// Unique needs an exhaustive count, so it delegates to the sequential
// engine rather than racing branches.
func (s *ParallelSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	return NewConstraintSolver().Unique(ctx, b)
}
