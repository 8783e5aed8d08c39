package dstarlite

import (
	"math"

	"github.com/pcannon67/robotics-d-star-lite/numeric"
)

// Planner computes and incrementally repairs a least-cost path from a
// moving start cell to a fixed goal cell over a Cell graph with a
// partially-known cost field. See package doc for the control-flow
// contract.
//
// A Planner borrows the Cell graph (it never mutates a Cell except
// through Update, and never frees one) and owns its (g, rhs) store,
// its open queue, and its path buffer.
type Planner struct {
	start, goal, last Cell
	km                float64

	store *store
	queue *priorityQueue
	path  []Cell

	eps      float64
	maxSteps int
	logger   Logger
	metrics  MetricsRecorder
}

// New constructs a Planner over the given start and goal cells and
// performs the SPEC §4.5.1 initialisation: km, last, rhs(goal) pinned
// to 0, goal inserted into the open queue. It does not run the
// initial _compute pass itself — the first Replan call does that.
//
// Returns ErrNilCell if start or goal is nil.
func New(start, goal Cell, opts ...Option) (*Planner, error) {
	if start == nil || goal == nil {
		return nil, ErrNilCell
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Planner{
		start:    start,
		goal:     goal,
		last:     start,
		km:       0,
		store:    newStore(goal),
		eps:      cfg.Epsilon,
		maxSteps: cfg.MaxSteps,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
	p.queue = newPriorityQueue(p.eps)

	// rhs(goal) := 0 (pinned); insert goal with key (h(start,goal), 0).
	p.queue.insert(goal, key{K1: p.heuristic(start, goal), K2: 0})

	return p, nil
}

// Start returns the current start cell.
func (p *Planner) Start() Cell { return p.start }

// SetStart updates the start cell. This does not itself call Update;
// it is the host's job to call Update for any cells whose cost it has
// newly observed, before the next Replan.
func (p *Planner) SetStart(u Cell) { p.start = u }

// Goal returns the current goal cell. There is no SetGoal: the
// distilled spec's own source material exposes a goal setter without
// re-anchoring rhs(goal), km, or the queue, and this spec documents
// that as requiring Planner reconstruction rather than guessing at
// the intended semantics (SPEC §9). Construct a new Planner if the
// goal changes.
func (p *Planner) Goal() Cell { return p.goal }

// Path returns the most recently computed path: a sequence starting
// at Start(), ending at Goal(), each successive cell the minimum-cost
// successor of the previous one. Empty if the last Replan failed or
// Replan has not yet been called.
func (p *Planner) Path() []Cell {
	out := make([]Cell, len(p.path))
	copy(out, p.path)
	return out
}

// heuristic computes h(a, b) for the king-move grid geometry: unit
// orthogonal step, √2 diagonal step. Admissible and consistent.
func (p *Planner) heuristic(a, b Cell) float64 {
	dx := a.X() - b.X()
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y() - b.Y()
	if dy < 0 {
		dy = -dy
	}
	var lo, hi int
	if dx < dy {
		lo, hi = dx, dy
	} else {
		lo, hi = dy, dx
	}
	return (numeric.Sqrt2-1)*float64(lo) + float64(hi)
}

// cost computes the edge cost between two adjacent cells a and b
// (SPEC §4.5.5). If either endpoint is UNWALKABLE the result is +Inf.
// Otherwise the diagonal steps are scaled by √2 relative to orthogonal
// steps, and the edge cost is the average of the two endpoints' own
// traversal costs.
func (p *Planner) cost(a, b Cell) float64 {
	ac, bc := a.Cost(), b.Cost()
	if math.IsInf(ac, 1) || math.IsInf(bc, 1) {
		return numeric.Inf()
	}

	dx := a.X() - b.X()
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y() - b.Y()
	if dy < 0 {
		dy = -dy
	}
	scale := 1.0
	if dx+dy > 1 {
		scale = numeric.Sqrt2
	}
	return scale * (ac + bc) / 2
}

// calcKey computes k(u) per SPEC §3: (min(g,rhs) + h(start,u) + km,
// min(g,rhs)).
func (p *Planner) calcKey(u Cell) key {
	m := numeric.Min(p.store.g(u), p.store.rhs(u))
	return key{K1: m + p.heuristic(p.start, u) + p.km, K2: m}
}

// updateVertex is _update(u) from SPEC §4.5.4: reconciles a cell's
// queue membership with its local consistency.
func (p *Planner) updateVertex(u Cell) {
	inconsistent := !numeric.Equal(p.store.g(u), p.store.rhs(u), p.eps)
	present := p.queue.contains(u)

	switch {
	case inconsistent && present:
		p.queue.update(u, p.calcKey(u))
	case inconsistent && !present:
		p.queue.insert(u, p.calcKey(u))
	case !inconsistent && present:
		p.queue.remove(u)
	}
}

// neighborsOf returns u's non-null neighbours.
func neighborsOf(u Cell) []Cell {
	raw := u.Neighbors()
	out := make([]Cell, 0, len(raw))
	for _, v := range raw {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

// computeShortestPath is _compute from SPEC §4.5.5: the repair loop
// that reconciles g and rhs across the open queue. Returns false if
// the step cap (p.maxSteps) is exceeded before termination.
//
// Grounded on azul3d-legacy-dstarlite's computeShortestPath and
// other_examples' aybabtme-graph-1 computeShortestPath, with the
// underconsistent branch's rhs recomputation corrected per SPEC §9
// (a genuine minimum over successor costs, not the ambiguous
// `rhs(u, min)` form in the algorithm's original write-up).
func (p *Planner) computeShortestPath() (bool, int) {
	steps := 0
	for {
		topKey, topCell, ok := p.queue.peek()
		startKey := p.calcKey(p.start)
		done := !ok || (!p.queue.less(topKey, startKey) &&
			numeric.Equal(p.store.rhs(p.start), p.store.g(p.start), p.eps))
		if done {
			return true, steps
		}

		if steps >= p.maxSteps {
			return false, steps
		}
		steps++
		if p.metrics != nil {
			p.metrics.ObserveComputeIteration()
		}

		u := topCell
		kOld := topKey
		kNew := p.calcKey(u)

		switch {
		case p.queue.less(kOld, kNew):
			// Case A — stale key.
			p.queue.update(u, kNew)
			p.trace("compute: stale key cell=%v kOld=%v kNew=%v", u, kOld, kNew)

		case numeric.Greater(p.store.g(u), p.store.rhs(u), p.eps):
			// Case B — overconsistent: commit the improvement.
			p.store.setG(u, p.store.rhs(u))
			p.queue.remove(u)
			p.trace("compute: commit cell=%v g=%v", u, p.store.g(u))
			for _, v := range neighborsOf(u) {
				if v != p.goal {
					candidate := p.cost(v, u) + p.store.g(u)
					p.store.setRhs(v, numeric.Min(p.store.rhs(v), candidate))
				}
				p.updateVertex(v)
			}

		default:
			// Case C — underconsistent: retract the estimate.
			p.store.setG(u, numeric.Inf())
			p.trace("compute: retract cell=%v", u)
			if u != p.goal {
				min := numeric.Inf()
				for _, v := range neighborsOf(u) {
					if c := p.cost(u, v) + p.store.g(v); c < min {
						min = c
					}
				}
				p.store.setRhs(u, min)
			}
			p.updateVertex(u)
			// Neighbours whose rhs may have routed through u's old g are
			// recomputed the same way.
			for _, v := range neighborsOf(u) {
				if v != p.goal {
					min := numeric.Inf()
					for _, w := range neighborsOf(v) {
						if c := p.cost(v, w) + p.store.g(w); c < min {
							min = c
						}
					}
					p.store.setRhs(v, min)
				}
				p.updateVertex(v)
			}
		}
	}
}

// trace forwards a formatted message to the installed Logger, if any.
func (p *Planner) trace(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debugf(format, args...)
	}
}

// Update notifies the planner that u's traversal cost has become
// newCost (SPEC §4.5.2). A no-op if u is the goal cell.
func (p *Planner) Update(u Cell, newCost float64) {
	if u == p.goal {
		return
	}

	p.km += p.heuristic(p.last, p.start)
	p.last = p.start

	// Ensure u is materialised, then overwrite its cost. The prior
	// value is read only to drive this Debugf line; it is not
	// otherwise retained (SPEC §9, "untracked cost_old").
	p.store.entry(u)
	oldCost := u.Cost()
	u.SetCost(newCost)
	p.trace("update: cell=%v oldCost=%v newCost=%v", u, oldCost, newCost)

	// The cost change alters every edge touching u, so rhs is recomputed
	// from current costs for u and for each of its neighbours.
	for _, v := range append([]Cell{u}, neighborsOf(u)...) {
		if v != p.goal {
			min := numeric.Inf()
			for _, w := range neighborsOf(v) {
				if c := p.cost(v, w) + p.store.g(w); c < min {
					min = c
				}
			}
			p.store.setRhs(v, min)
		}
		p.updateVertex(v)
	}
}

// Replan recomputes (or repairs) the shortest path from Start() to
// Goal() (SPEC §4.5.3). Returns false if the goal is unreachable or
// the step cap was exceeded; Path() is empty in that case.
func (p *Planner) Replan() bool {
	p.path = p.path[:0]

	ok, steps := p.computeShortestPath()
	success := ok && p.extractPath()
	if p.metrics != nil {
		p.metrics.ObserveReplan(success, steps)
	}
	return success
}

// extractPath walks the minimum-g successor chain from Start() to
// Goal(), appending to p.path. Returns false (and clears p.path) if
// Start() has no finite g, or if path extraction hits a cell with no
// finite-cost successor.
func (p *Planner) extractPath() bool {
	if math.IsInf(p.store.g(p.start), 1) {
		return false
	}

	current := p.start
	p.path = append(p.path, current)
	for current != p.goal {
		var next Cell
		best := numeric.Inf()
		for _, v := range neighborsOf(current) {
			c := p.cost(current, v)
			g := p.store.g(v)
			if math.IsInf(c, 1) || math.IsInf(g, 1) {
				continue
			}
			if c+g < best {
				best = c + g
				next = v
			}
		}
		if next == nil {
			p.path = p.path[:0]
			return false
		}
		p.path = append(p.path, next)
		current = next
	}

	return true
}
