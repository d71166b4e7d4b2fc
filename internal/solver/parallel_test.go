package solver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelSolveClassic(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	in := mustBoard(t, classic)
	out, st, err := NewParallelSolver().Solve(ctx, in)
	require.NoError(t, err)
	checkSolution(t, in, out)
	t.Logf("solved in %v, nodes=%d guesses=%d", st.Duration, st.Nodes, st.Guesses)
}

func TestParallelSolveHard(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	in := mustBoard(t, hard)
	out, _, err := NewParallelSolver().Solve(ctx, in)
	require.NoError(t, err)
	checkSolution(t, in, out)
}

func TestParallelSolveUnsolvable(t *testing.T) {
	grid := "505" + strings.Repeat("0", 78)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, _, err := NewParallelSolver().Solve(ctx, mustBoard(t, grid))
	require.ErrorIs(t, err, ErrUnsolvable)
	assert.Nil(t, out)
}

func TestParallelSolveAlreadyComplete(t *testing.T) {
	in := mustBoard(t, classic)
	first, _, err := NewConstraintSolver().Solve(context.Background(), in)
	require.NoError(t, err)

	out, _, err := NewParallelSolver().Solve(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, first.Grid(), out.Grid())
}
