package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// MaxCells caps the number of cells a single grid may hold
const MaxCells = 1 << 28

// hashChunkSize bounds the scratch buffer Hash feeds to the hasher
const hashChunkSize = 4096

// Cell identifies a grid position. Row runs along the width, Col along the height.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is one generation of the game board.
//
// The dense cells slice is authoritative; alive lists the same cells in the
// order they were first set alive and never holds a coordinate twice.
type Grid struct {
	width  int
	height int
	cells  []bool
	alive  []Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrapf(err, "[NewGrid] width: %d, height: %d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if width > MaxCells/height {
		return ErrAllocation
	}
	return nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.width && col >= 0 && col < g.height
}

func (g *Grid) index(row, col int) int {
	return row*g.height + col
}

// SetAlive marks a cell alive. Setting an already alive cell is a no-op.
func (g *Grid) SetAlive(row, col int) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrIndexOutOfBounds, "[SetAlive] cell (%d, %d) on %dx%d grid", row, col, g.width, g.height)
	}
	g.setAlive(row, col)
	return nil
}

func (g *Grid) setAlive(row, col int) {
	idx := g.index(row, col)
	if g.cells[idx] {
		return
	}
	g.cells[idx] = true
	g.alive = append(g.alive, Cell{Row: row, Col: col})
}

// IsAlive returns the state of a cell
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrIndexOutOfBounds, "[IsAlive] cell (%d, %d) on %dx%d grid", row, col, g.width, g.height)
	}
	return g.cells[g.index(row, col)], nil
}

// Alive returns a copy of the alive cells in the order they were set
func (g *Grid) Alive() []Cell {
	out := make([]Cell, len(g.alive))
	copy(out, g.alive)
	return out
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return len(g.alive)
}

// CloneIntoNewGeneration returns a fresh grid holding the same living cells.
// The copy is rebuilt from the alive list, so it never carries duplicates.
func (g *Grid) CloneIntoNewGeneration() (*Grid, error) {
	next, err := NewGrid(g.width, g.height)
	if err != nil {
		return nil, errors.Wrap(err, "[CloneIntoNewGeneration]")
	}
	for _, c := range g.alive {
		if err = next.SetAlive(c.Row, c.Col); err != nil {
			return nil, errors.Wrap(err, "[CloneIntoNewGeneration]")
		}
	}
	return next, nil
}

// Equal reports whether both grids have the same dimensions and living cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an MD5 hash of the dense cell state
func (g *Grid) Hash() string {
	h := md5.New()
	var buf [hashChunkSize]byte
	for start := 0; start < len(g.cells); start += hashChunkSize {
		chunk := g.cells[start:min(start+hashChunkSize, len(g.cells))]
		for i, alive := range chunk {
			buf[i] = 0
			if alive {
				buf[i] = 1
			}
		}
		h.Write(buf[:len(chunk)])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// reset resizes the grid and kills every cell, reusing storage when it fits
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height
	size := width * height
	if cap(g.cells) < size {
		g.cells = make([]bool, size)
	} else {
		g.cells = g.cells[:size]
		clear(g.cells)
	}
	g.alive = g.alive[:0]
}

// bounds returns the inclusive bounding box of the living cells
func (g *Grid) bounds() (minRow, maxRow, minCol, maxCol int, ok bool) {
	for i, c := range g.alive {
		if i == 0 {
			minRow, maxRow, minCol, maxCol = c.Row, c.Row, c.Col, c.Col
			continue
		}
		minRow = min(minRow, c.Row)
		maxRow = max(maxRow, c.Row)
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}
	return minRow, maxRow, minCol, maxCol, len(g.alive) > 0
}

// GetBoundingBoxSize returns the number of cells in the active region
func (g *Grid) GetBoundingBoxSize() int {
	minRow, maxRow, minCol, maxCol, ok := g.bounds()
	if !ok {
		return 0
	}
	return (maxRow - minRow + 1) * (maxCol - minCol + 1)
}
