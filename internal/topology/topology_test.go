package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsCoverEveryCellThreeTimes(t *testing.T) {
	var seen [Cells]int
	for u := range Units {
		var inUnit [Cells]bool
		for _, i := range Units[u] {
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, Cells)
			require.False(t, inUnit[i], "unit %d repeats cell %d", u, i)
			inUnit[i] = true
			seen[i]++
		}
	}
	for i, n := range seen {
		assert.Equal(t, 3, n, "cell %d should sit in exactly 3 units", i)
	}
}

func TestUnitsOfContainTheCell(t *testing.T) {
	for i := 0; i < Cells; i++ {
		for _, u := range UnitsOf[i] {
			found := false
			for _, j := range Units[u] {
				if j == i {
					found = true
				}
			}
			require.True(t, found, "cell %d missing from its unit %d", i, u)
		}
	}
}

func TestUnitsOfSpotChecks(t *testing.T) {
	// Cell 0 is in row 0, column 0, box 0.
	assert.Equal(t, [3]int{0, 9, 18}, UnitsOf[0])
	// Cell 40 is the center: row 4, column 4, box 4.
	assert.Equal(t, [3]int{4, 13, 22}, UnitsOf[40])
	// Cell 80 is the last: row 8, column 8, box 8.
	assert.Equal(t, [3]int{8, 17, 26}, UnitsOf[80])
}

func TestPeers(t *testing.T) {
	for i := 0; i < Cells; i++ {
		var seen [Cells]bool
		for _, j := range Peers[i] {
			require.NotEqual(t, i, j, "cell %d lists itself as peer", i)
			require.False(t, seen[j], "cell %d repeats peer %d", i, j)
			seen[j] = true
		}
	}
	// Peer relation is symmetric.
	has := func(i, j int) bool {
		for _, p := range Peers[i] {
			if p == j {
				return true
			}
		}
		return false
	}
	for i := 0; i < Cells; i++ {
		for _, j := range Peers[i] {
			assert.True(t, has(j, i), "peer relation not symmetric for %d,%d", i, j)
		}
	}
}

func TestPeersOfCorner(t *testing.T) {
	// Cell 0 shares units with row 0, column 0, and box 0.
	want := map[int]bool{}
	for _, j := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 18, 27, 36, 45, 54, 63, 72, 10, 11, 19, 20} {
		want[j] = true
	}
	for _, j := range Peers[0] {
		assert.True(t, want[j], "unexpected peer %d of cell 0", j)
		delete(want, j)
	}
	assert.Empty(t, want, "missing peers of cell 0")
}
