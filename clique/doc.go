// Package clique enumerates cliques of a core.Graph.
//
// Two modes are provided:
//
//   - ValidCatalog: every non-empty subset of every maximal clique (Bron–Kerbosch
//     via gonum graph/topo), minus subsets that hold a vertex together with its
//     mirror, deduplicated by vertex set. This is the row/column space of the
//     transition matrix of a blown-up graph.
//   - All: every clique of size ≥ 1 by exhaustive subset testing, used on raw
//     (non-blown-up) graphs by the counterexample search.
//
// Both are exponential and meant for graphs with tens of vertices at most;
// MaxSubsetOrder and MaxPowersetOrder bound the work and yield ErrTooLarge.
//
// A Catalog assigns each distinct clique a dense index in insertion order.
// Indices are stable for the lifetime of the Catalog only.
package clique
