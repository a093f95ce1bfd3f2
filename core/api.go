// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries and identifier parsing.
// Policy:
//   - No algorithms or hidden state here.

package core

import (
	"fmt"
	"strings"
)

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount int // |V|
	EdgeCount   int // |E|
	MirrorCount int // vertices with Mirror == true
	Isolated    int // vertices of degree 0
}

// Stats produces a snapshot of g's sizes.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	for v, nbrs := range g.adjacency {
		if v.Mirror {
			stats.MirrorCount++
		}
		if len(nbrs) == 0 {
			stats.Isolated++
		}
	}

	return stats
}

// HasMirrors reports whether any vertex of g is a mirror vertex.
func (g *Graph) HasMirrors() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for v := range g.adjacency {
		if v.Mirror {
			return true
		}
	}

	return false
}

// ParseVertexID parses the display form produced by VertexID.String:
// a leading MirrorMarker marks a mirror vertex.
//
// Errors:
//   - ErrEmptyLabel: if s (after the optional marker) is empty.
func ParseVertexID(s string) (VertexID, error) {
	s = strings.TrimSpace(s)
	mirror := strings.HasPrefix(s, MirrorMarker)
	label := strings.TrimPrefix(s, MirrorMarker)
	if label == "" {
		return VertexID{}, fmt.Errorf("ParseVertexID(%q): %w", s, ErrEmptyLabel)
	}

	return VertexID{Label: label, Mirror: mirror}, nil
}
