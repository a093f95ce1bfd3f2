package archive_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquespec/archive"
	"github.com/katalvlaran/cliquespec/graphio"
)

func openMem(t *testing.T) *archive.Store {
	t.Helper()
	s, err := archive.Open(archive.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openMem(t)

	rec, err := s.Put(archive.Record{
		RunID:    "run-1",
		Seed:     42,
		Graph1:   graphio.Document{Vertices: []graphio.VertexDoc{{Label: "a"}, {Label: "b"}}, Edges: [][2]string{{"a", "b"}}},
		Cliques1: 3,
		Matrix1:  [][]float64{{1, 0}, {0, 1}},
		Rho1:     1,
		Rho2:     2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, got.RunID)
	assert.Equal(t, rec.Graph1, got.Graph1)
	assert.Equal(t, rec.Matrix1, got.Matrix1)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_NotFound(t *testing.T) {
	s := openMem(t)

	_, err := s.Get("nope")
	require.ErrorIs(t, err, archive.ErrNotFound)
	require.ErrorIs(t, s.Delete("nope"), archive.ErrNotFound)
}

func TestStore_ListOrderAndDelete(t *testing.T) {
	s := openMem(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"c", "a", "b"} {
		_, err := s.Put(archive.Record{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{list[0].ID, list[1].ID, list[2].ID})

	require.NoError(t, s.Delete("a"))
	list, err = s.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestOpen_RequiresDir(t *testing.T) {
	_, err := archive.Open(archive.Config{})
	require.ErrorIs(t, err, archive.ErrNoPath)
}

func TestOpen_Persistent(t *testing.T) {
	dir := t.TempDir()
	s, err := archive.Open(archive.Config{Dir: dir})
	require.NoError(t, err)
	rec, err := s.Put(archive.Record{RunID: "r"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = archive.Open(archive.Config{Dir: dir})
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "r", got.RunID)
}
