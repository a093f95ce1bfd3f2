// Package cliquespec computes clique-transition spectral invariants of small
// undirected graphs and searches for counterexamples to their monotonicity.
//
// What is computed?
//
//	Blow-up       every vertex v gets a mirror -v; each edge uv becomes uv, -u-v, -uv and u-v
//	Valid cliques cliques of the blow-up that never hold a vertex together with its mirror
//	Transition    0/1 matrix, T[α][β] = 1 iff β holds no mirror of an α vertex and
//	              no vertex of β outside α lies in α's common link
//	λ             real part of the dominant eigenvalue of T over the blow-up
//	μ1, μ2        λ maximised over vertex stars, μ2 weighted by the two largest star extensions
//
// Packages:
//
//	core/        thread-safe simple undirected Graph with tagged VertexIDs
//	builder/     deterministic topologies and G(n,p) random graphs
//	converters/  core.Graph -> gonum graph/simple
//	transform/   Blowup, Unblowup, Star, Complement, IsJoin
//	clique/      maximal (Bron–Kerbosch), valid and exhaustive clique catalogs
//	transition/  common links and the transition matrix
//	matrix/      dense matrices and dominant eigenvalues (gonum/mat)
//	invariant/   Engine: λ, μ1, μ2
//	search/      parallel randomized counterexample search
//	graphio/     YAML graph documents
//	archive/     BadgerDB store of found counterexamples
//	config/      YAML + environment configuration
//
// The cliquespec command in cmd/cliquespec exposes all of the above.
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddVertex(core.V("a"))
//	_ = g.AddVertex(core.V("b"))
//	_ = g.AddEdge(core.V("a"), core.V("b"))
//	inv, err := invariant.NewEngine().Compute(ctx, g)
package cliquespec
