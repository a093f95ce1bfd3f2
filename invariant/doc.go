// Package invariant composes the blow-up, the valid clique catalog, the
// transition matrix and the dominant eigenvalue into graph invariants.
//
//	λ(G)  = dominant eigenvalue of the transition matrix of blowup(G)
//	μ1(G) = max over v of λ(star(G, v))
//	μ2(G) = max over v of λ(star(G, v)) · e1 · e2, where e1 ≥ e2 are the two
//	        largest λ values of the extensions star(G, w) − star(G, v) for
//	        w in star(G, v), counting only extensions that have an edge
//
// Every sub-evaluation runs the full λ pipeline, so μ2 costs O(V²) λ
// evaluations of exponential cost each. Intended for small graphs.
package invariant
