// Package search runs the randomized counterexample search.
//
// One trial draws G1 = G(k+inc, p1) and G2 = G(k, p2), enumerates every
// clique of both, and, when G1 has strictly more cliques and neither graph
// is a join, compares the spectral radii of their clique-transition
// matrices (built on the raw graphs, no blow-up). ρ1 < ρ2 is a
// counterexample to monotonicity of the radius in the clique count.
//
// Trial is a pure function of its random source. Searcher fans trials out
// over worker goroutines, each with its own source, and funnels outcomes to
// a single reporter loop driving the state machine
//
//	Searching -> FoundCounterexample -> Reported
//	Searching -> Exhausted   (trial cap or deadline)
//	Searching -> Cancelled   (caller's context)
//
// The first counterexample received wins and stops the remaining workers.
package search
