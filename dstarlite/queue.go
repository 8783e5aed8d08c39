package dstarlite

import (
	"container/heap"

	"github.com/pcannon67/robotics-d-star-lite/numeric"
)

// pqItem is a single entry in the open queue: a cell and its current
// key, plus the heap index container/heap needs to support in-place
// fix/remove.
type pqItem struct {
	cell  Cell
	key   key
	index int
}

// priorityQueue is the planner's open set: an ordered multimap from
// two-component keys to cells, paired with a reverse index from cell
// to heap position so insert/remove/update all run in O(log n) and
// contains/peek run in O(1). A true reverse index is required here,
// rather than a lazy-push strategy, because the planner's
// contains()/update() contract demands exactly one live entry per
// cell.
type priorityQueue struct {
	items []*pqItem
	index map[Cell]*pqItem
	eps   float64
}

// newPriorityQueue returns an empty priority queue using eps as its
// tolerant-comparison tolerance.
func newPriorityQueue(eps float64) *priorityQueue {
	pq := &priorityQueue{
		items: make([]*pqItem, 0),
		index: make(map[Cell]*pqItem),
		eps:   eps,
	}
	heap.Init(pq)
	return pq
}

// less reports whether key a orders strictly before key b under the
// queue's tolerant comparison: K1 first, K2 breaks ties.
func (pq *priorityQueue) less(a, b key) bool {
	if !numeric.Equal(a.K1, b.K1, pq.eps) {
		return numeric.Less(a.K1, b.K1, pq.eps)
	}
	return numeric.Less(a.K2, b.K2, pq.eps)
}

//
// heap.Interface
//

func (pq *priorityQueue) Len() int { return len(pq.items) }

func (pq *priorityQueue) Less(i, j int) bool {
	return pq.less(pq.items[i].key, pq.items[j].key)
}

func (pq *priorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.items[i].index = i
	pq.items[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(pq.items)
	pq.items = append(pq.items, item)
	pq.index[item.cell] = item
}

func (pq *priorityQueue) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]
	delete(pq.index, item.cell)
	return item
}

//
// Contract methods
//

// contains reports whether u currently has a live entry in the queue.
func (pq *priorityQueue) contains(u Cell) bool {
	_, ok := pq.index[u]
	return ok
}

// insert adds u with key k. Precondition: u is not already present.
func (pq *priorityQueue) insert(u Cell, k key) {
	heap.Push(pq, &pqItem{cell: u, key: k})
}

// remove deletes the unique entry for u. Precondition: u is present.
func (pq *priorityQueue) remove(u Cell) {
	item, ok := pq.index[u]
	if !ok {
		return
	}
	heap.Remove(pq, item.index)
}

// update replaces the key of u. If u is absent, behaves as insert.
func (pq *priorityQueue) update(u Cell, k key) {
	item, ok := pq.index[u]
	if !ok {
		pq.insert(u, k)
		return
	}
	item.key = k
	heap.Fix(pq, item.index)
}

// peek returns the (key, cell) pair with the smallest key under the
// queue's tolerant ordering. Undefined (zero value, false) when empty.
func (pq *priorityQueue) peek() (key, Cell, bool) {
	if len(pq.items) == 0 {
		return key{}, nil, false
	}
	top := pq.items[0]
	return top.key, top.cell, true
}

// empty reports whether the queue currently holds no entries.
func (pq *priorityQueue) empty() bool {
	return len(pq.items) == 0
}
