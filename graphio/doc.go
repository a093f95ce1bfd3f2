// Package graphio persists core.Graph values as YAML documents.
//
// Document layout:
//
//	vertices:
//	  - label: a
//	  - label: a
//	    mirror: true
//	edges:
//	  - [a, -a]
//
// Edge endpoints use the display form of core.VertexID ("-a" is the mirror
// of "a"). An original vertex whose label starts with core.MirrorMarker
// cannot be told apart from a mirror in that form, so encoding it fails
// with ErrBadDocument. Decoding restores vertex and edge sets exactly.
package graphio
