package grid

import (
	"fmt"

	"github.com/pcannon67/robotics-d-star-lite/dstarlite"
)

// Neighbors returns c's eight king-move neighbour handles as
// dstarlite.Cell values, null-padded at grid boundaries. The slot
// order matches kingOffsets: N, NE, E, SE, S, SW, W, NW.
func (c *Cell) Neighbors() [dstarlite.NumNeighbors]dstarlite.Cell {
	var out [dstarlite.NumNeighbors]dstarlite.Cell
	for i, n := range c.neighbors {
		if n != nil {
			out[i] = n
		}
	}
	return out
}

// Map is a rectangular, eight-connected grid of *Cell. It deep-copies
// nothing from the caller — every cell is owned by the Map and
// reachable only through New's return value, Cell(x,y), or a Cell's
// own Neighbors().
//
// Grounded on gridgraph.GridGraph (rectangular bounds-checking,
// precomputed neighbour offsets) and builder.Grid (row-major,
// deterministic construction order), generalised from gridgraph's
// Conn4/Conn8 integer-valued land/water model to an eight-connected
// grid carrying a float64 traversal cost per cell, as SPEC §3a
// requires.
type Map struct {
	width, height int
	cells         [][]*Cell // cells[y][x]
}

// New builds a Width×Height Map with every cell at defaultCost.
// Returns ErrInvalidDimensions if width or height is not positive.
func New(width, height int, defaultCost float64) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Map{width: width, height: height}
	m.cells = make([][]*Cell, height)
	for y := 0; y < height; y++ {
		m.cells[y] = make([]*Cell, width)
		for x := 0; x < width; x++ {
			m.cells[y][x] = &Cell{x: x, y: y, cost: defaultCost}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := m.cells[y][x]
			for i, d := range kingOffsets {
				nx, ny := x+d[0], y+d[1]
				if m.inBounds(nx, ny) {
					cell.neighbors[i] = m.cells[ny][nx]
				}
			}
		}
	}

	return m, nil
}

// Width returns the grid's column count.
func (m *Map) Width() int { return m.width }

// Height returns the grid's row count.
func (m *Map) Height() int { return m.height }

// inBounds reports whether (x, y) lies within the grid.
func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Cell returns the cell at (x, y). Returns ErrOutOfBounds if the
// coordinate lies outside the grid.
func (m *Map) Cell(x, y int) (*Cell, error) {
	if !m.inBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.cells[y][x], nil
}

// SetCost sets the cost of the cell at (x, y). Pass grid.UNWALKABLE to
// mark the cell impassable. Returns ErrOutOfBounds if the coordinate
// lies outside the grid.
func (m *Map) SetCost(x, y int, cost float64) error {
	c, err := m.Cell(x, y)
	if err != nil {
		return err
	}
	c.SetCost(cost)
	return nil
}
