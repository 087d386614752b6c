// Copyright Martin Halsall, 2026. All rights reserved.

package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordRunRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	startedAt := time.Date(2026, time.February, 3, 9, 30, 0, 0, time.UTC)
	rec := RunRecord{
		Vendor:    "SCREWFIX",
		InputDir:  "/invoices/feb",
		OutputCSV: "out.csv",
		StartedAt: startedAt,
		Extracted: 2,
		Failed:    1,
		Files: []FileRecord{
			{Name: "a.pdf", Status: StatusExtracted},
			{Name: "b.pdf", Status: StatusFailed, Error: "exit status 1"},
			{Name: "c.pdf", Status: StatusExtracted},
		},
	}

	runID, err := store.RecordRun(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	runs, err := store.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, "SCREWFIX", got.Vendor)
	assert.Equal(t, "/invoices/feb", got.InputDir)
	assert.Equal(t, "out.csv", got.OutputCSV)
	assert.True(t, got.StartedAt.Equal(startedAt))
	assert.Equal(t, 2, got.Extracted)
	assert.Equal(t, 1, got.Failed)

	files, err := store.RunFiles(ctx, runID)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, StatusFailed, files[1].Status)
	assert.Equal(t, "exit status 1", files[1].Error)
}

func TestRunsMostRecentFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, vendor := range []string{"SCREWFIX", "TOOLSTATION"} {
		_, err := store.RecordRun(ctx, RunRecord{
			Vendor:    vendor,
			InputDir:  "/invoices",
			OutputCSV: "out.csv",
			StartedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	runs, err := store.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "TOOLSTATION", runs[0].Vendor)
	assert.Equal(t, "SCREWFIX", runs[1].Vendor)
}

func TestRunFilesUnknownRun(t *testing.T) {
	store := openStore(t)

	files, err := store.RunFiles(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	first, err := Open(path)
	require.NoError(t, err)
	_, err = first.RecordRun(context.Background(), RunRecord{
		Vendor: "SCREWFIX", InputDir: "/invoices", OutputCSV: "out.csv", StartedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening must not clobber existing rows.
	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	runs, err := second.Runs(context.Background())
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
