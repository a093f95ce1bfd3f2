// Package converters provides adapters between core.Graph and gonum/graph.
//
// cliquespec delegates maximal-clique enumeration (Bron–Kerbosch) and
// connected components to gonum's graph/topo; ToGonum produces the gonum
// view and keeps the mapping back to core.VertexID.
package converters
