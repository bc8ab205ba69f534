package repository

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsher/pdfprobe/constants"
	"github.com/avelsher/pdfprobe/internal/entity"
	"github.com/avelsher/pdfprobe/internal/probe"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSaveAndListByRunKeepsOutcomeOrder(t *testing.T) {
	ctx := context.Background()
	log := testLogger()
	entc, err := OpenSQLite(ctx, "file:results_test?mode=memory&cache=shared", log)
	require.NoError(t, err)
	defer entc.Close()

	runs := NewRunRepository(entc, log)
	resultsRepo := NewResultRepository(entc, log)

	run, err := runs.Start(ctx, "/corpus", 30*time.Second, 4, []string{"zeta", "alpha", "mid"})
	require.NoError(t, err)

	n := 10
	res := entity.Result{
		Path:     "/corpus/a.pdf",
		FileSize: 1024,
		Outcomes: []probe.Outcome{
			{Backend: "zeta", Status: constants.StatusSuccess, TextLen: &n, Pages: 2, Elapsed: 5 * time.Millisecond},
			{Backend: "alpha", Status: constants.StatusFailed, Warnings: 1,
				Messages: []probe.Message{{Category: constants.CategoryStructure, Text: "bad xref"}}},
			{Backend: "mid", Status: constants.StatusTimedOut, Warnings: 1},
		},
		Score:       1.0 / 3.0,
		Bucket:      constants.BucketProblematic,
		Recommended: "zeta",
		Viable:      true,
	}
	_, err = resultsRepo.Save(ctx, run.ID, res)
	require.NoError(t, err)

	rows, err := resultsRepo.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "/corpus/a.pdf", rows[0].Path)

	outs := rows[0].Edges.Outcomes
	require.Len(t, outs, 3)
	// registration order survives the round trip; neither id nor backend name
	// order would give zeta, alpha, mid
	assert.Equal(t, "zeta", outs[0].Backend)
	assert.Equal(t, "alpha", outs[1].Backend)
	assert.Equal(t, "mid", outs[2].Backend)
	require.NotNil(t, outs[0].TextLen)
	assert.Equal(t, 10, *outs[0].TextLen)
	assert.Equal(t, string(constants.StatusTimedOut), outs[2].Status)

	require.NoError(t, runs.Finish(ctx, run.ID, 1, "zeta"))
	got, err := runs.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalFiles)
}
