package dstarlite

import "github.com/pcannon67/robotics-d-star-lite/numeric"

// estimate holds the pair of search estimates D* Lite tracks for a
// single cell: g, the committed cost-to-goal, and rhs, the one-step
// lookahead cost derived from neighbours.
type estimate struct {
	g, rhs float64
}

// store is the lazy cell → (g, rhs) mapping that backs a Planner. It
// never shrinks during a planning episode, and rhs(goal) is pinned to
// 0 regardless of whether goal has been otherwise materialised.
type store struct {
	goal    Cell
	entries map[Cell]*estimate
}

// newStore returns an empty store pinned to the given goal cell.
func newStore(goal Cell) *store {
	return &store{
		goal:    goal,
		entries: make(map[Cell]*estimate),
	}
}

// entry returns u's estimate pair, materialising a fresh (∞, ∞) entry
// on first touch.
func (s *store) entry(u Cell) *estimate {
	e, ok := s.entries[u]
	if !ok {
		e = &estimate{g: numeric.Inf(), rhs: numeric.Inf()}
		s.entries[u] = e
	}
	return e
}

// g returns g(u), materialising (∞, ∞) on first touch.
func (s *store) g(u Cell) float64 {
	return s.entry(u).g
}

// setG sets g(u) := v.
func (s *store) setG(u Cell, v float64) {
	s.entry(u).g = v
}

// rhs returns 0 for the goal cell, or rhs(u) otherwise, materialising
// (∞, ∞) on first touch.
func (s *store) rhs(u Cell) float64 {
	if u == s.goal {
		return 0
	}
	return s.entry(u).rhs
}

// setRhs sets rhs(u) := v. A no-op for the goal cell, whose rhs is
// permanently pinned to 0.
func (s *store) setRhs(u Cell, v float64) {
	if u == s.goal {
		return
	}
	s.entry(u).rhs = v
}

// materialized reports whether u has ever been touched, without
// inserting a default entry.
func (s *store) materialized(u Cell) bool {
	_, ok := s.entries[u]
	return ok
}
