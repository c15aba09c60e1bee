package model

import "github.com/pkg/errors"

// CountNeighbors counts the living cells among the up to eight cells around
// (row, col). Positions past the grid edge are skipped, never wrapped.
func CountNeighbors(g *Grid, row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "[CountNeighbors] cell (%d, %d) on %dx%d grid", row, col, g.width, g.height)
	}
	return g.countNeighbors(row, col), nil
}

func (g *Grid) countNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.width-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.height-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[g.index(r, c)] {
				count++
			}
		}
	}

	return count
}
