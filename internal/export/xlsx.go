package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/avelsher/pdfprobe/internal/entity"
)

// BuildXLSX returns a workbook with a Results sheet (one row per file) and a
// Backends sheet (per-backend aggregates).
func (w *Writer) BuildXLSX(results []entity.Result, summary entity.Summary) ([]byte, error) {
	f := excelize.NewFile()

	const resultsSheet = "Results"
	if err := renameDefaultSheet(f, resultsSheet); err != nil {
		return nil, err
	}

	headers := []string{"File", "Size (bytes)", "Score", "Bucket", "Recommended", "Warnings", "Statuses"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(resultsSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for row, r := range results {
		warnings := 0
		statuses := ""
		for _, o := range r.Outcomes {
			warnings += o.Warnings
			if statuses != "" {
				statuses += ", "
			}
			statuses += fmt.Sprintf("%s=%s", o.Backend, o.Status)
		}
		values := []any{r.Path, r.FileSize, r.Score, string(r.Bucket), r.Recommended, warnings, statuses}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(resultsSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	const backendSheet = "Backends"
	if _, err := f.NewSheet(backendSheet); err != nil {
		return nil, err
	}
	bheaders := []string{"Backend", "Probes", "Successes", "Success Rate", "Avg Elapsed (ms)", "Warnings", "Wins"}
	for i, h := range bheaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(backendSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for row, b := range summary.Backends {
		values := []any{b.Backend, b.Probes, b.Successes, b.SuccessRate, b.AvgElapsed.Milliseconds(), b.TotalWarnings, b.Wins}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(backendSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renameDefaultSheet(f *excelize.File, name string) error {
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	return nil
}
