package invariant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/invariant"
	"github.com/katalvlaran/cliquespec/transform"
)

// λ of K2 plus an isolated vertex: the largest root of
// x^10 - 10x^9 + 29x^8 - 8x^7 - 126x^6 + 308x^5 - 350x^4 + 216x^3 - 67x^2 + 6x + 1.
const lambdaK2K1 = 5.4286394867550705

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

// twoWings is the triangle v-w1-w2 with a further triangle w_i-x_i-y_i
// hanging off each w_i.
func twoWings(t *testing.T) *core.Graph {
	return graphOf(t, []string{"v", "w1", "w2", "x1", "y1", "x2", "y2"},
		[2]string{"v", "w1"}, [2]string{"v", "w2"}, [2]string{"w1", "w2"},
		[2]string{"w1", "x1"}, [2]string{"w1", "y1"}, [2]string{"x1", "y1"},
		[2]string{"w2", "x2"}, [2]string{"w2", "y2"}, [2]string{"x2", "y2"})
}

func TestLambda(t *testing.T) {
	tests := []struct {
		name  string
		g     *core.Graph
		want  float64
		delta float64
	}{
		{"empty", core.NewGraph(), 0, 0},
		{"single vertex", graphOf(t, []string{"a"}), 0, 0},
		{"two isolated vertices", graphOf(t, []string{"a", "b"}), 0, 0},
		{"K2", graphOf(t, []string{"u", "v"}, [2]string{"u", "v"}), 1, 1e-6},
		{"K3", graphOf(t, []string{"a", "b", "c"},
			[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"}), 1, 1e-6},
		{"K2 plus isolated", graphOf(t, []string{"u", "v", "w"}, [2]string{"u", "v"}), lambdaK2K1, 1e-6},
		// Triple root at 3: tolerance reflects the conditioning of a defective eigenvalue.
		{"P3", graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"}), 3, 1e-3},
	}
	e := invariant.NewEngine()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Lambda(tc.g)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tc.delta)
		})
	}
}

func TestLambda_Errors(t *testing.T) {
	e := invariant.NewEngine()

	_, err := e.Lambda(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)

	blown, err := transform.Blowup(graphOf(t, []string{"a", "b"}, [2]string{"a", "b"}))
	require.NoError(t, err)
	_, err = e.Lambda(blown)
	require.ErrorIs(t, err, transform.ErrAlreadyBlownUp)

	limited := invariant.NewEngine(invariant.WithCatalogLimit(7))
	_, err = limited.Lambda(graphOf(t, []string{"u", "v"}, [2]string{"u", "v"}))
	require.ErrorIs(t, err, invariant.ErrCatalogTooLarge)
}

func TestInspect_Errors(t *testing.T) {
	e := invariant.NewEngine()

	_, err := e.Inspect(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
	assert.ErrorContains(t, err, "Inspect: ")

	limited := invariant.NewEngine(invariant.WithCatalogLimit(7))
	_, err = limited.Inspect(graphOf(t, []string{"u", "v"}, [2]string{"u", "v"}))
	require.ErrorIs(t, err, invariant.ErrCatalogTooLarge)
	assert.ErrorContains(t, err, "Inspect: 8 cliques, limit 7")

	_, err = limited.Lambda(graphOf(t, []string{"u", "v"}, [2]string{"u", "v"}))
	assert.ErrorContains(t, err, "Lambda: Inspect: ")
}

func TestInspect_SingleEdge(t *testing.T) {
	in, err := invariant.NewEngine().Inspect(graphOf(t, []string{"u", "v"}, [2]string{"u", "v"}))
	require.NoError(t, err)

	assert.Equal(t, 4, in.Blown.VertexCount())
	assert.Equal(t, 8, in.Catalog.Len())
	assert.Equal(t, 8, in.Matrix.Rows())
	assert.InDelta(t, 1.0, real(in.Dominant), 1e-6)
}

func TestInspect_EdgelessBlowup(t *testing.T) {
	in, err := invariant.NewEngine().Inspect(graphOf(t, []string{"a"}))
	require.NoError(t, err)

	assert.Equal(t, 2, in.Blown.VertexCount())
	assert.Equal(t, 0, in.Catalog.Len())
	assert.Equal(t, 0, in.Matrix.Rows())
	assert.Equal(t, complex128(0), in.Dominant)
}

func TestMu1(t *testing.T) {
	ctx := context.Background()
	e := invariant.NewEngine()

	got, err := e.Mu1(ctx, core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// P3: every star is edgeless.
	got, err = e.Mu1(ctx, graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// K3: every star is K2.
	got, err = e.Mu1(ctx, graphOf(t, []string{"a", "b", "c"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"}))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-6)
}

func TestMu1_IsMaxOverStars(t *testing.T) {
	g := twoWings(t)
	e := invariant.NewEngine()

	want := 0.0
	for _, v := range g.Vertices() {
		s, err := transform.Star(g, v)
		require.NoError(t, err)
		l, err := e.Lambda(s)
		require.NoError(t, err)
		if l > want {
			want = l
		}
	}

	got, err := e.Mu1(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.GreaterOrEqual(t, got, 1.0)
}

func TestMu2(t *testing.T) {
	ctx := context.Background()
	e := invariant.NewEngine()

	// K3 has no edged extension: μ2 = 0.
	got, err := e.Mu2(ctx, graphOf(t, []string{"a", "b", "c"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// Only v has two edged extensions, both K2 plus an isolated vertex,
	// and λ(star(v)) = λ(K2) = 1.
	got, err = e.Mu2(ctx, twoWings(t))
	require.NoError(t, err)
	assert.InDelta(t, lambdaK2K1*lambdaK2K1, got, 1e-5)
}

func TestCompute(t *testing.T) {
	e := invariant.NewEngine()
	graphs := []*core.Graph{
		core.NewGraph(),
		graphOf(t, []string{"a"}),
		graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"}),
		twoWings(t),
	}
	for _, g := range graphs {
		inv, err := e.Compute(context.Background(), g)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, inv.Mu1, 0.0)
		assert.GreaterOrEqual(t, inv.Mu2, 0.0)
	}
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := invariant.NewEngine().Compute(ctx, twoWings(t))
	require.ErrorIs(t, err, context.Canceled)
}
