// Package topology precomputes the geometric relationships of a 9x9
// board: the 27 units (rows, columns, boxes), the three units each cell
// belongs to, and each cell's peer set. Cells are addressed by row-major
// index in [0, 81). The tables are built once at init and never written
// again.
package topology

const (
	// Cells is the number of board positions.
	Cells = 81
	// UnitSize is the number of cells per row, column, or box.
	UnitSize = 9
	// NumUnits counts the 9 rows, 9 columns, and 9 boxes.
	NumUnits = 27
	// NumPeers is the number of cells sharing a unit with any given
	// cell: 8 in its row, 8 in its column, and 4 more in its box.
	NumPeers = 20
)

var (
	// Units lists the cell indices of each unit: rows occupy
	// Units[0..8], columns Units[9..17], boxes Units[18..26].
	Units [NumUnits][UnitSize]int

	// UnitsOf maps a cell to the indices (into Units) of its row,
	// column, and box.
	UnitsOf [Cells][3]int

	// Peers maps a cell to the other cells sharing any of its units.
	Peers [Cells][NumPeers]int
)

func init() {
	for i := 0; i < UnitSize; i++ {
		for j := 0; j < UnitSize; j++ {
			Units[i][j] = i*9 + j   // row i
			Units[9+i][j] = j*9 + i // column i
		}
	}
	for b := 0; b < UnitSize; b++ {
		top := (b/3)*27 + (b%3)*3 // top-left cell of box b
		for j := 0; j < UnitSize; j++ {
			Units[18+b][j] = top + (j/3)*9 + j%3
		}
	}

	for i := 0; i < Cells; i++ {
		row, col := i/9, i%9
		box := (row/3)*3 + col/3
		UnitsOf[i] = [3]int{row, 9 + col, 18 + box}

		var seen [Cells]bool
		n := 0
		for _, u := range UnitsOf[i] {
			for _, j := range Units[u] {
				if j != i && !seen[j] {
					seen[j] = true
					Peers[i][n] = j
					n++
				}
			}
		}
	}
}
