package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avelsher/pdfprobe/internal/entity"
)

func TestBuildXLSX(t *testing.T) {
	results := []entity.Result{sampleResult()}
	summary := entity.Summary{
		TotalFiles: 1,
		Backends: []entity.BackendStats{
			{Backend: "poppler", Probes: 1, Successes: 1, SuccessRate: 1,
				AvgElapsed: 12 * time.Millisecond, Wins: 1},
			{Backend: "mutool", Probes: 1, TotalWarnings: 1},
		},
	}

	data, err := testWriter().BuildXLSX(results, summary)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Results", "Backends"}, f.GetSheetList())

	path, err := f.GetCellValue("Results", "A2")
	require.NoError(t, err)
	assert.Equal(t, "/corpus/a.pdf", path)

	statuses, err := f.GetCellValue("Results", "G2")
	require.NoError(t, err)
	assert.Equal(t, "poppler=SUCCESS, mutool=FAILED", statuses)

	backend, err := f.GetCellValue("Backends", "A2")
	require.NoError(t, err)
	assert.Equal(t, "poppler", backend)

	wins, err := f.GetCellValue("Backends", "G2")
	require.NoError(t, err)
	assert.Equal(t, "1", wins)
}

func TestBuildXLSXEmpty(t *testing.T) {
	data, err := testWriter().BuildXLSX(nil, entity.Summary{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	h, err := f.GetCellValue("Results", "A1")
	require.NoError(t, err)
	assert.Equal(t, "File", h)
}
