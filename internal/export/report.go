// Package export renders finished analyses for external consumers: a JSON
// report (schema-checked before it leaves the process), an XLSX workbook, and
// a human text summary. The analysis core hands over plain data and knows
// nothing about these formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/avelsher/pdfprobe/internal/entity"
)

// Report is the top-level JSON document.
type Report struct {
	GeneratedAt time.Time       `json:"generated_at"`
	RootDir     string          `json:"root_dir"`
	Backends    []string        `json:"backends"`
	TimeoutSec  float64         `json:"timeout_seconds"`
	TotalFiles  int             `json:"total_files"`
	Summary     entity.Summary  `json:"summary"`
	Results     []entity.Result `json:"results"`
}

// reportSchema is what we promise downstream consumers; BuildJSON refuses to
// emit a document that does not satisfy it.
const reportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["generated_at", "root_dir", "backends", "total_files", "summary", "results"],
  "properties": {
    "generated_at": {"type": "string"},
    "root_dir": {"type": "string"},
    "backends": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "timeout_seconds": {"type": "number", "exclusiveMinimum": 0},
    "total_files": {"type": "integer", "minimum": 0},
    "summary": {"type": "object"},
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["path", "outcomes", "score", "bucket", "recommended"],
        "properties": {
          "path": {"type": "string"},
          "score": {"type": "number", "minimum": 0, "maximum": 1},
          "bucket": {"enum": ["EXCELLENT", "GOOD", "PROBLEMATIC", "FAILED"]},
          "recommended": {"type": "string"},
          "outcomes": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["backend", "status"],
              "properties": {
                "backend": {"type": "string"},
                "status": {"enum": ["SUCCESS", "SUCCESS_WARN", "FAILED", "TIMED_OUT", "CRASHED"]},
                "warnings": {"type": "integer", "minimum": 0}
              }
            }
          }
        }
      }
    }
  }
}`

// Writer renders reports.
type Writer struct {
	logger *slog.Logger
}

func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// BuildJSON marshals the report and validates it against the embedded schema.
func (w *Writer) BuildJSON(rep Report) ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := validateReport(data); err != nil {
		return nil, err
	}
	w.logger.Debug("report built", "bytes", len(data), "files", rep.TotalFiles)
	return data, nil
}

func validateReport(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("report.json", bytes.NewReader([]byte(reportSchema))); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("report.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal report: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}
	return nil
}
