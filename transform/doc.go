// Package transform implements the structural graph transforms used by the
// invariant engine: the mirror blow-up and its inverse, vertex stars,
// vertex removal, the complement, and the join test.
//
// Every function reads its input under the graph's read lock and returns a
// freshly built *core.Graph owned by the caller. Inputs are never mutated.
//
// Blow-up rule: every vertex v gains a mirror m(v); every edge {u,v} of G
// yields {m(u),m(v)}, {m(u),v} and {u,m(v)} in addition to {u,v}. No vertex
// is ever joined to its own mirror.
package transform
