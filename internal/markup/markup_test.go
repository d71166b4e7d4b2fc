package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/topology"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestMaskOps(t *testing.T) {
	m := Full
	assert.Equal(t, 9, m.Count())
	for v := uint8(1); v <= 9; v++ {
		assert.True(t, m.Has(v))
	}

	m = m.Without(5)
	assert.False(t, m.Has(5))
	assert.Equal(t, 8, m.Count())
	assert.Equal(t, "12346789", m.String())

	// Removing an absent value changes nothing.
	assert.Equal(t, m, m.Without(5))

	_, ok := m.Single()
	assert.False(t, ok)

	only := Only(7)
	v, ok := only.Single()
	require.True(t, ok)
	assert.Equal(t, uint8(7), v)
	assert.Equal(t, "7", only.String())
}

func TestNewFixedCells(t *testing.T) {
	b, err := domain.ParseGrid(classic)
	require.NoError(t, err)
	m := New(b)

	for i := 0; i < topology.Cells; i++ {
		if v := b.Cell(i); v != 0 {
			assert.Equal(t, Only(v), m[i], "given at %d must keep only its digit", i)
		}
	}
	assert.Equal(t, Only(5), m[0])
	assert.Equal(t, Only(3), m[1])
}

func TestNewExcludesPeerGivens(t *testing.T) {
	b, err := domain.ParseGrid(classic)
	require.NoError(t, err)
	m := New(b)

	for i := 0; i < topology.Cells; i++ {
		if b.Cell(i) != 0 {
			continue
		}
		require.NotZero(t, m[i], "blank cell %d lost all candidates", i)
		for _, j := range topology.Peers[i] {
			if v := b.Cell(j); v != 0 {
				assert.False(t, m[i].Has(v),
					"cell %d still admits %d fixed at peer %d", i, v, j)
			}
		}
	}
}

func TestNewEmptyBoard(t *testing.T) {
	var b domain.Board
	m := New(&b)
	for i := range m {
		assert.Equal(t, Full, m[i])
	}
	assert.False(t, m.Solved())
}

func TestSolvedAndBoardRoundTrip(t *testing.T) {
	var b domain.Board
	var m Markup
	for i := range m {
		v := uint8(i%9) + 1
		m[i] = Only(v)
		b.SetCell(i, v)
	}
	assert.True(t, m.Solved())
	assert.Equal(t, b.Values, m.Board().Values)

	m[3] = Full
	assert.False(t, m.Solved())
	decoded := m.Board()
	assert.Equal(t, uint8(0), decoded.Cell(3), "undetermined cell decodes as empty")
}
