package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/transform"
)

// graphOf builds a graph over the given labels and "a-b" style edges.
func graphOf(t *testing.T, labels []string, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range labels {
		require.NoError(t, g.AddVertex(core.V(l)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.V(e[0]), core.V(e[1])))
	}
	return g
}

func TestBlowup_SingleEdge(t *testing.T) {
	g := graphOf(t, []string{"u", "v"}, [2]string{"u", "v"})

	b, err := transform.Blowup(g)
	require.NoError(t, err)

	assert.Equal(t, 4, b.VertexCount())
	assert.Equal(t, 4, b.EdgeCount())
	u, v := core.V("u"), core.V("v")
	assert.True(t, b.HasEdge(u, v))
	assert.True(t, b.HasEdge(core.M("u"), core.M("v")))
	assert.True(t, b.HasEdge(core.M("u"), v))
	assert.True(t, b.HasEdge(u, core.M("v")))
	assert.False(t, b.HasEdge(u, core.M("u")), "never joined to own mirror")
	assert.False(t, b.HasEdge(v, core.M("v")))

	// Input untouched.
	assert.Equal(t, 2, g.VertexCount())
	assert.False(t, g.HasMirrors())
}

func TestBlowup_IsolatedMirrors(t *testing.T) {
	g := graphOf(t, []string{"a", "b"})

	b, err := transform.Blowup(g)
	require.NoError(t, err)
	assert.Equal(t, 4, b.VertexCount())
	assert.Equal(t, 0, b.EdgeCount())
	assert.True(t, b.HasVertex(core.M("a")))
}

func TestBlowup_RejectsMirrors(t *testing.T) {
	b, err := transform.Blowup(graphOf(t, []string{"a", "b"}, [2]string{"a", "b"}))
	require.NoError(t, err)

	_, err = transform.Blowup(b)
	require.ErrorIs(t, err, transform.ErrAlreadyBlownUp)

	_, err = transform.Blowup(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestUnblowup_RoundTrip(t *testing.T) {
	cases := map[string]*core.Graph{
		"empty":    core.NewGraph(),
		"single":   graphOf(t, []string{"a"}),
		"edge":     graphOf(t, []string{"a", "b"}, [2]string{"a", "b"}),
		"path":     graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"}),
		"triangle": graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"}),
		"isolated": graphOf(t, []string{"a", "b", "c", "d"}, [2]string{"c", "d"}),
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := transform.Blowup(g)
			require.NoError(t, err)
			assert.Equal(t, 2*g.VertexCount(), b.VertexCount())
			assert.Equal(t, 4*g.EdgeCount(), b.EdgeCount())

			back, err := transform.Unblowup(b)
			require.NoError(t, err)
			assert.True(t, back.Equal(g))
			assert.Equal(t, g.Vertices(), back.Vertices())
			assert.Equal(t, g.Edges(), back.Edges())
		})
	}
}

func TestStar(t *testing.T) {
	// a is adjacent to b, c, d; b-c is an edge, d is pendant.
	g := graphOf(t, []string{"a", "b", "c", "d", "e"},
		[2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"a", "d"},
		[2]string{"b", "c"}, [2]string{"d", "e"})

	s, err := transform.Star(g, core.V("a"))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{core.V("b"), core.V("c"), core.V("d")}, s.Vertices())
	assert.Equal(t, []core.Edge{core.NewEdge(core.V("b"), core.V("c"))}, s.Edges())
	assert.False(t, s.HasVertex(core.V("a")), "open neighbourhood excludes the centre")

	s, err = transform.Star(g, core.V("e"))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{core.V("d")}, s.Vertices())

	_, err = transform.Star(g, core.V("zz"))
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Equal(t, 5, g.EdgeCount(), "input not mutated")
}

func TestWithout(t *testing.T) {
	g := graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"})

	h, err := transform.Without(g, []core.VertexID{core.V("b"), core.V("zz")})
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{core.V("a"), core.V("c")}, h.Vertices())
	assert.Equal(t, 0, h.EdgeCount())
}

func TestComplement(t *testing.T) {
	g := graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"})

	c, err := transform.Complement(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge(core.V("a"), core.V("c"))}, c.Edges())
}

func TestIsJoin(t *testing.T) {
	tests := []struct {
		name string
		g    *core.Graph
		want bool
	}{
		{"nil", nil, false},
		{"empty", core.NewGraph(), false},
		{"single vertex", graphOf(t, []string{"a"}), false},
		{"K2: complement is two isolated vertices", graphOf(t, []string{"x", "y"}, [2]string{"x", "y"}), true},
		{"two isolated: complement connected", graphOf(t, []string{"a", "b"}), false},
		{"P3: complement is a-c plus isolated b", graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"}), true},
		{"P4: complement is P4", graphOf(t, []string{"a", "b", "c", "d"},
			[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"}), false},
		{"C4 = K2,2", graphOf(t, []string{"a", "b", "c", "d"},
			[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"}, [2]string{"d", "a"}), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, transform.IsJoin(tc.g))
		})
	}
}
