package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/cliquespec/converters"
	"github.com/katalvlaran/cliquespec/core"
)

func TestToGonum_PreservesTopology(t *testing.T) {
	g := core.NewGraph(core.WithVertices(core.V("a"), core.V("b"), core.V("c"), core.M("a")))
	require.NoError(t, g.AddEdge(core.V("a"), core.V("b")))
	require.NoError(t, g.AddEdge(core.V("b"), core.M("a")))

	u, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 4, u.Graph.Nodes().Len())
	assert.Equal(t, 2, u.Graph.Edges().Len())

	// Node IDs follow g.Vertices(): a, b, c, -a.
	assert.Equal(t, core.V("a"), u.VertexOf(simple.Node(0)))
	assert.Equal(t, core.M("a"), u.VertexOf(simple.Node(3)))
	assert.True(t, u.Graph.HasEdgeBetween(0, 1))
	assert.True(t, u.Graph.HasEdgeBetween(1, 3))
	assert.False(t, u.Graph.HasEdgeBetween(0, 2))

	nodes := []graph.Node{simple.Node(3), simple.Node(1)}
	assert.Equal(t, []core.VertexID{core.V("b"), core.M("a")}, u.VerticesOf(nodes))

	comps := topo.ConnectedComponents(u.Graph)
	assert.Len(t, comps, 2, "c is isolated")
}

func TestToGonum_Nil(t *testing.T) {
	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
}
