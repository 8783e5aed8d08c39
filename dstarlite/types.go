package dstarlite

// NumNeighbors is the fixed length of the neighbour array a Cell
// exposes: eight for a king-move grid (orthogonal + diagonal steps).
const NumNeighbors = 8

// Cell is the cell-graph contract the planner consumes. Because
// Neighbors returns [NumNeighbors]Cell, an implementation refers to
// this package's types. Package grid provides a concrete, in-memory
// implementation; a host may supply any other type that implements
// these five methods.
//
// x(), y() must return stable integers for the lifetime of the cell.
// Cost is readable and writable; a cost of +Inf (grid.UNWALKABLE)
// marks a cell impassable. Neighbors returns a bounded, null-padded array of length
// NumNeighbors — entries are nil at grid boundaries.
type Cell interface {
	// X returns the cell's column coordinate.
	X() int
	// Y returns the cell's row coordinate.
	Y() int
	// Cost returns the cell's current traversal cost.
	Cost() float64
	// SetCost overwrites the cell's traversal cost.
	SetCost(cost float64)
	// Neighbors returns this cell's king-move neighbour handles,
	// null-padded at grid boundaries.
	Neighbors() [NumNeighbors]Cell
}

// key is the two-component priority used to order the open queue.
// Keys compare lexicographically: K1 first, K2 breaks ties. Ordering
// uses the tolerant predicates in package numeric rather than strict
// float64 comparison (see priorityQueue.less).
type key struct {
	K1, K2 float64
}
