package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticklab/ticklist/pkg/types"
)

func newSQLiteBackend(t *testing.T, dir string) *sqliteBackend {
	t.Helper()
	b, err := openSQLite(dir)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestSQLiteBackendFreshDatabaseIsEmpty(t *testing.T) {
	b := newSQLiteBackend(t, t.TempDir())

	tasks, err := b.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	b := newSQLiteBackend(t, t.TempDir())

	in := []types.Task{
		{ID: 2, Description: "second", Done: true},
		{ID: 1, Description: "first", Done: false},
	}
	require.NoError(t, b.Persist(in))

	out, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSQLiteBackendRewriteReplacesCollection(t *testing.T) {
	b := newSQLiteBackend(t, t.TempDir())

	require.NoError(t, b.Persist([]types.Task{
		{ID: 1, Description: "old"},
		{ID: 2, Description: "older"},
	}))
	require.NoError(t, b.Persist([]types.Task{
		{ID: 7, Description: "new"},
	}))

	out, err := b.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 7, out[0].ID)
	assert.Equal(t, "new", out[0].Description)
}

func TestSQLiteBackendPersistEmptyClears(t *testing.T) {
	b := newSQLiteBackend(t, t.TempDir())

	require.NoError(t, b.Persist([]types.Task{{ID: 1, Description: "gone soon"}}))
	require.NoError(t, b.Persist(nil))

	out, err := b.Load()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSQLiteBackendSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	b, err := openSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, b.Persist([]types.Task{{ID: 1, Description: "durable", Done: true}}))
	require.NoError(t, b.Close())

	b2 := newSQLiteBackend(t, dir)
	out, err := b2.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "durable", out[0].Description)
	assert.True(t, out[0].Done)
}

func TestOpenBackendSelectsSQLite(t *testing.T) {
	dir := t.TempDir()

	b, err := openBackend(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	assert.Equal(t, filepath.Join(dir, DatabaseFileName), b.Location())
}

func TestStoreOnSQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	st.Add("buy milk")
	st.Add("walk dog")
	st.Mark(1, true)
	st.Delete(2)

	b := newSQLiteBackend(t, dir)
	tasks, err := b.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].ID)
	assert.True(t, tasks[0].Done)
}
