// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID, Edge, Graph, sentinel errors and the NewGraph constructor.
// Determinism:
//   - VertexID ordering is total: originals before mirrors, then by Label.
// Concurrency:
//   - Graph guards its adjacency with a single sync.RWMutex.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a VertexID carries an empty Label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateVertex indicates AddVertex was called for a vertex that already exists.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrDuplicateEdge indicates AddEdge was called for an edge that already exists.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted; graphs here are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilGraph indicates that a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// MirrorMarker is the display prefix of a mirror vertex ("-a" is the mirror of "a").
// It is used only by String and ParseVertexID; VertexID itself carries an explicit flag.
const MirrorMarker = "-"

// VertexID identifies a vertex.
//
// Label is the user-facing name. Mirror is set on vertices created by the blow-up
// transform: VertexID{Label: "a", Mirror: true} is the mirror of VertexID{Label: "a"}.
// VertexID is comparable and is used directly as a map key.
type VertexID struct {
	Label  string
	Mirror bool
}

// V returns the original (non-mirror) vertex with the given label.
func V(label string) VertexID { return VertexID{Label: label} }

// M returns the mirror vertex of the given label.
func M(label string) VertexID { return VertexID{Label: label, Mirror: true} }

// Partner returns the mirror of an original vertex, or the original of a mirror.
// It is total: every VertexID has exactly one partner and v.Partner().Partner() == v.
func (v VertexID) Partner() VertexID {
	return VertexID{Label: v.Label, Mirror: !v.Mirror}
}

// Base returns the original vertex this VertexID belongs to.
func (v VertexID) Base() VertexID {
	return VertexID{Label: v.Label}
}

// String renders a mirror with MirrorMarker in front of its label.
func (v VertexID) String() string {
	if v.Mirror {
		return MirrorMarker + v.Label
	}
	return v.Label
}

// Less is the canonical VertexID order: originals first, then by Label.
func (v VertexID) Less(w VertexID) bool {
	if v.Mirror != w.Mirror {
		return !v.Mirror
	}
	return v.Label < w.Label
}

// Edge is an undirected edge stored in canonical orientation (From.Less(To)).
type Edge struct {
	From VertexID
	To   VertexID
}

// NewEdge returns the canonical Edge between u and v.
func NewEdge(u, v VertexID) Edge {
	if v.Less(u) {
		u, v = v, u
	}
	return Edge{From: u, To: v}
}

// String renders the edge as "{u,v}".
func (e Edge) String() string {
	return "{" + e.From.String() + "," + e.To.String() + "}"
}

// Graph is a simple undirected graph: no self-loops, no parallel edges.
//
// adjacency[v] holds the open neighbourhood of v. Every vertex has a (possibly
// empty) bucket, so vertex membership is key membership.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[VertexID]map[VertexID]struct{}
	edgeCount int
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithVertices pre-populates the graph with the given vertices.
// Duplicate entries are collapsed.
func WithVertices(vs ...VertexID) GraphOption {
	return func(g *Graph) {
		for _, v := range vs {
			if v.Label == "" {
				continue
			}
			if _, ok := g.adjacency[v]; !ok {
				g.adjacency[v] = make(map[VertexID]struct{})
			}
		}
	}
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(1) plus the cost of the options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[VertexID]map[VertexID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
