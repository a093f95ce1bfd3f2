package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquespec/builder"
	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/graphio"
	"github.com/katalvlaran/cliquespec/transform"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	path, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(4))
	require.NoError(t, err)
	blown, err := transform.Blowup(path)
	require.NoError(t, err)
	isolated := core.NewGraph(core.WithVertices(core.V("solo")))

	for name, g := range map[string]*core.Graph{
		"empty":    core.NewGraph(),
		"isolated": isolated,
		"path":     path,
		"blown":    blown,
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphio.Encode(&buf, g))

			back, err := graphio.Decode(&buf)
			require.NoError(t, err)
			assert.True(t, back.Equal(g))
			assert.Equal(t, g.Vertices(), back.Vertices())
			assert.Equal(t, g.Edges(), back.Edges())
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	g := core.NewGraph(core.WithVertices(core.V("a"), core.M("a"), core.V("b")))
	require.NoError(t, g.AddEdge(core.V("b"), core.M("a")))

	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, g))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "vertices:\n"))
	assert.Contains(t, out, "mirror: true")
	assert.Contains(t, out, "edges:")
	assert.Equal(t, 1, strings.Count(out, "mirror:"), "originals omit the flag")
}

func TestEncode_AmbiguousLabel(t *testing.T) {
	g := core.NewGraph(core.WithVertices(core.V("-x")))
	err := graphio.Encode(&bytes.Buffer{}, g)
	require.ErrorIs(t, err, graphio.ErrBadDocument)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
	}{
		{"not yaml", "vertices: [", nil},
		{"unknown field", "nodes: []\n", nil},
		{"empty label", "vertices:\n  - label: \"\"\n", core.ErrEmptyLabel},
		{"duplicate vertex", "vertices:\n  - label: a\n  - label: a\n", core.ErrDuplicateVertex},
		{"unknown endpoint", "vertices:\n  - label: a\nedges:\n  - [a, b]\n", core.ErrVertexNotFound},
		{"self loop", "vertices:\n  - label: a\nedges:\n  - [a, a]\n", core.ErrLoopNotAllowed},
		{"duplicate edge", "vertices:\n  - label: a\n  - label: b\nedges:\n  - [a, b]\n  - [b, a]\n", core.ErrDuplicateEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Decode(strings.NewReader(tc.input))
			require.ErrorIs(t, err, graphio.ErrBadDocument)
			if tc.cause != nil {
				require.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestSaveLoad(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "c5.yaml")
	require.NoError(t, graphio.Save(path, g))

	back, err := graphio.Load(path)
	require.NoError(t, err)
	assert.True(t, back.Equal(g))

	_, err = graphio.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
