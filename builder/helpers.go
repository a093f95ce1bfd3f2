// SPDX-License-Identifier: MIT
// Package: cliquespec/builder
//
// helpers.go — shared vertex/edge emission used by the constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquespec/core"
)

// CenterVertexID is the label of the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

// addVertices inserts cfg.vertex(0..n-1) and returns them in index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]core.VertexID, error) {
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.vertex(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge wraps core.Graph.AddEdge with the method tag.
func addEdge(method string, g *core.Graph, u, v core.VertexID) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// validateMin returns ErrTooFewVertices when got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}
	return nil
}
