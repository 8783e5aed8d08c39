// Package dstarlite implements the "D* Lite (final, optimised)"
// incremental shortest-path algorithm of Koenig and Likhachev:
//
//	Fast Replanning for Navigation in Unknown Terrain
//	http://pub1.willowgarage.com/~konolige/cs225b/dlite_tro05.pdf
//
// D* Lite computes a least-cost path from a moving start cell to a
// fixed goal cell over a partially-known cost field, and repairs that
// path in time proportional to the affected region when the host
// discovers a cost was wrong — rather than replanning from scratch on
// every edge change.
//
// Control flow:
//
//	p, err := dstarlite.New(start, goal)
//	ok := p.Replan()          // initial path
//	// ... agent moves: p.SetStart(next) ...
//	p.Update(cell, newCost)   // host observed a cost change
//	ok = p.Replan()           // repairs in place
//	path := p.Path()
//
// Cell graph contract:
//
// The planner is defined against the Cell interface, not a concrete
// grid type: any host that can supply stable (x, y) coordinates, a
// readable/writable non-negative cost (with a distinguished
// UNWALKABLE sentinel), and a fixed-size, null-padded neighbour list
// can drive this package. Package grid provides a reference adapter.
//
// Non-goals: arbitrary-graph planning (the heuristic assumes king-move
// grid geometry), optimality under an inadmissible or inconsistent
// heuristic, multi-agent coordination, and goal migration mid-episode
// (construct a new Planner instead — see Planner.Goal).
//
// Concurrency: a Planner is not safe for concurrent use. All methods
// assume single-threaded, synchronous callers; none of them block on
// I/O or suspend.
package dstarlite
