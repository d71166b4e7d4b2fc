package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cp/internal/domain"
)

func samplePuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Seed:       7,
		Difficulty: d,
		Name:       "sample",
		CreatedAt:  1700000000,
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle("p1", domain.Hard)
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Difficulty, got.Difficulty)
	assert.Equal(t, p.Board.Values, got.Board.Values)
	assert.Equal(t, p.Board.Fixed, got.Board.Fixed)
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, samplePuzzle("a", domain.Easy)))
	require.NoError(t, s.Save(ctx, samplePuzzle("b", domain.Expert)))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	byID := map[string]domain.PuzzleMeta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	assert.Equal(t, domain.Easy, byID["a"].Difficulty)
	assert.Equal(t, domain.Expert, byID["b"].Difficulty)
	assert.Equal(t, "sample", byID["a"].Name)
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
