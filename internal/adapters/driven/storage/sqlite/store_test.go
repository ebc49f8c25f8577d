package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRun(id string) domain.Run {
	return domain.Run{
		ID:         id,
		InputPath:  "input.csv",
		OutputPath: "output.csv",
		SchemaPath: "schema.json",
		StartedAt:  time.Now().UTC(),
	}
}

func TestNewStore_Migrates(t *testing.T) {
	store := newTestStore(t)

	// Reopening an already-migrated database is a no-op.
	store2, err := NewStore(store.Path())
	require.NoError(t, err)
	require.NoError(t, store2.Close())
}

func TestCreateAndFinishRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateRun(ctx, testRun("run-1")))
	require.NoError(t, store.FinishRun(ctx, "run-1", 120, 7, 250*time.Millisecond))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.Equal(t, 120, runs[0].Rows)
	assert.Equal(t, 7, runs[0].Issues)
	assert.Equal(t, 250*time.Millisecond, runs[0].Duration)
}

func TestFinishRun_Unknown(t *testing.T) {
	store := newTestStore(t)

	err := store.FinishRun(context.Background(), "nope", 0, 0, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListRuns_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := testRun("run-older")
	older.StartedAt = time.Now().UTC().Add(-time.Hour)
	newer := testRun("run-newer")

	require.NoError(t, store.CreateRun(ctx, older))
	require.NoError(t, store.CreateRun(ctx, newer))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-newer", runs[0].ID)

	runs, err = store.ListRuns(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestIssueWriter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateRun(ctx, testRun("run-1")))

	sink := store.IssueWriter("run-1")
	require.NoError(t, sink.Write(domain.Issue{RowNumber: 1, Field: "FirstAddedDate", Datatype: "date", Value: "soon"}))
	require.NoError(t, sink.Write(domain.Issue{RowNumber: 3, Field: "GeoX,GeoY", Datatype: "OSGB", Value: "42,42"}))

	issues, err := store.RunIssues(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "date", issues[0].Datatype)
	assert.Equal(t, 3, issues[1].RowNumber)

	issues, err = store.RunIssues(ctx, "absent")
	require.NoError(t, err)
	assert.Empty(t, issues)
}
