// Package transition builds clique-transition matrices.
//
// For an ordered pair of cliques (α, β) of a graph G, β is a valid move from α when
//
//  1. polarity: no vertex of α has its mirror partner in β, and
//  2. common link: no vertex of β \ α is adjacent in G to every vertex of α.
//
// Build turns a clique.Catalog into the square 0/1 matrix of this relation,
// indexed by catalog position. The same predicate serves blown-up graphs
// (invariant λ) and raw graphs (the counterexample search); on a raw graph
// the polarity rule never fires because no mirrors exist.
package transition
