// Package grid provides a concrete, in-memory cell-graph adapter for
// package dstarlite: a rectangular grid of cells with eight-connected
// (king-move) neighbours and a mutable per-cell traversal cost.
//
// This package is deliberately outside dstarlite's import graph in the
// other direction — dstarlite never imports grid — because the core
// planner is defined against an interface (dstarlite.Cell), not this
// concrete type. grid is simply the reference implementation a host
// or test reaches for, the way azul3d's dstarlite/grid subpackage
// served azul3d's own Planner.
//
// grid performs no file I/O and knows nothing about map formats; a
// *Map is always built in code, by calling New and then SetCost.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction and access.
var (
	// ErrInvalidDimensions indicates width or height was not positive.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a requested coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// NumNeighbors is the fixed neighbour-array length for eight-connected
// (king-move) grids: N, NE, E, SE, S, SW, W, NW.
const NumNeighbors = 8

// kingOffsets enumerates the eight king-move neighbour deltas in a
// fixed, documented order. Boundary cells leave the corresponding
// Neighbors() slot nil.
var kingOffsets = [NumNeighbors][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// UNWALKABLE is the sentinel cost denoting impassable terrain. It
// propagates as an infinite edge cost through any cost(a, b)
// computation that touches a cell carrying it.
var UNWALKABLE = math.Inf(1)

// Cell is a single vertex of a Map: fixed (X, Y) coordinates, a
// mutable traversal Cost, and a precomputed, null-padded neighbour
// list. Cell implements dstarlite.Cell; its Neighbors method returns
// dstarlite's neighbour array type, so this package imports dstarlite.
type Cell struct {
	x, y      int
	cost      float64
	neighbors [NumNeighbors]*Cell
}

// X returns the cell's column coordinate.
func (c *Cell) X() int { return c.x }

// Y returns the cell's row coordinate.
func (c *Cell) Y() int { return c.y }

// Cost returns the cell's current traversal cost. A cost of
// grid.UNWALKABLE marks the cell impassable.
func (c *Cell) Cost() float64 { return c.cost }

// SetCost overwrites the cell's traversal cost in place. Pass
// grid.UNWALKABLE to mark the cell impassable.
func (c *Cell) SetCost(cost float64) { c.cost = cost }

// String renders the cell as its "x,y" coordinate pair, matching the
// row-major ID scheme used by the teacher corpus's grid builders.
func (c *Cell) String() string { return fmt.Sprintf("%d,%d", c.x, c.y) }
