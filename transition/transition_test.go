package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquespec/clique"
	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/transform"
	"github.com/katalvlaran/cliquespec/transition"
)

var (
	a, b, c = core.V("a"), core.V("b"), core.V("c")
	u, v    = core.V("u"), core.V("v")
	mu, mv  = core.M("u"), core.M("v")
)

func pathP3(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithVertices(a, b, c))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))
	return g
}

func blownEdge(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithVertices(u, v))
	require.NoError(t, g.AddEdge(u, v))
	out, err := transform.Blowup(g)
	require.NoError(t, err)
	return out
}

func TestCommonLink(t *testing.T) {
	g := pathP3(t)

	link, err := transition.CommonLink(g, clique.Clique{b})
	require.NoError(t, err)
	assert.Equal(t, transition.Link{a: {}, c: {}}, link)

	link, err = transition.CommonLink(g, clique.Clique{a, b})
	require.NoError(t, err)
	assert.Empty(t, link)

	_, err = transition.CommonLink(g, clique.Clique{core.V("zz")})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCanMove_Polarity(t *testing.T) {
	g := blownEdge(t)

	ok, err := transition.CanMove(g, clique.Clique{u}, clique.Clique{mu})
	require.NoError(t, err)
	assert.False(t, ok, "mirror of an alpha vertex may not appear in beta")

	// {u,v} has an empty common link, so only polarity can reject.
	ok, err = transition.CanMove(g, clique.New(u, v), clique.New(mu, mv))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = transition.CanMove(g, clique.New(u, v), clique.New(u, v))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanMove_CommonLink(t *testing.T) {
	g := pathP3(t)

	ok, err := transition.CanMove(g, clique.Clique{a}, clique.Clique{c})
	require.NoError(t, err)
	assert.True(t, ok, "c is outside the link of a")

	ok, err = transition.CanMove(g, clique.Clique{a}, clique.Clique{b})
	require.NoError(t, err)
	assert.False(t, ok, "b lies in the link of a")

	ok, err = transition.CanMove(g, clique.Clique{b}, clique.New(b, c))
	require.NoError(t, err)
	assert.False(t, ok, "new vertex c lies in the link of b")
}

func TestBuild_P3(t *testing.T) {
	g := pathP3(t)
	cat := clique.NewCatalog()
	for _, x := range []clique.Clique{{a}, {b}, {c}, {a, b}, {b, c}} {
		cat.Add(x)
	}

	m, err := transition.Build(g, cat)
	require.NoError(t, err)
	want := [][]float64{
		{1, 0, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{1, 0, 1, 0, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	}
	for i := range want {
		assert.Equal(t, want[i], m.RawRow(i), "row %s", cat.At(i))
	}
}

func TestBuild_BlownEdgeAgreesWithCanMove(t *testing.T) {
	g := blownEdge(t)
	cat, err := clique.ValidCatalog(g)
	require.NoError(t, err)

	m, err := transition.Build(g, cat)
	require.NoError(t, err)
	require.Equal(t, cat.Len(), m.Rows())

	for i := 0; i < cat.Len(); i++ {
		for j := 0; j < cat.Len(); j++ {
			ok, err := transition.CanMove(g, cat.At(i), cat.At(j))
			require.NoError(t, err)
			got, _ := m.At(i, j)
			assert.Equal(t, ok, got == 1, "%s -> %s", cat.At(i), cat.At(j))
		}
		diag, _ := m.At(i, i)
		assert.Equal(t, 1.0, diag, "every clique may stay put")
	}
}

func TestBuild_Empty(t *testing.T) {
	m, err := transition.Build(core.NewGraph(), clique.NewCatalog())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())

	_, err = transition.Build(nil, clique.NewCatalog())
	require.ErrorIs(t, err, core.ErrNilGraph)

	assert.NotPanics(t, func() {
		_, err = transition.Build(pathP3(t), nil)
	})
	require.ErrorIs(t, err, transition.ErrNilCatalog)
	assert.ErrorContains(t, err, "Build: ")
}
