// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avelsher/pdfprobe/db/ent/schema"
	"github.com/avelsher/pdfprobe/gen/ent/analysisrun"
	"github.com/avelsher/pdfprobe/gen/ent/fileresult"
	"github.com/avelsher/pdfprobe/gen/ent/probeoutcome"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisrunFields := schema.AnalysisRun{}.Fields()
	_ = analysisrunFields
	// analysisrunDescRootDir is the schema descriptor for root_dir field.
	analysisrunDescRootDir := analysisrunFields[1].Descriptor()
	// analysisrun.RootDirValidator is a validator for the "root_dir" field. It is called by the builders before save.
	analysisrun.RootDirValidator = analysisrunDescRootDir.Validators[0].(func(string) error)
	// analysisrunDescTimeoutMs is the schema descriptor for timeout_ms field.
	analysisrunDescTimeoutMs := analysisrunFields[2].Descriptor()
	// analysisrun.TimeoutMsValidator is a validator for the "timeout_ms" field. It is called by the builders before save.
	analysisrun.TimeoutMsValidator = analysisrunDescTimeoutMs.Validators[0].(func(int64) error)
	// analysisrunDescConcurrency is the schema descriptor for concurrency field.
	analysisrunDescConcurrency := analysisrunFields[3].Descriptor()
	// analysisrun.ConcurrencyValidator is a validator for the "concurrency" field. It is called by the builders before save.
	analysisrun.ConcurrencyValidator = analysisrunDescConcurrency.Validators[0].(func(int) error)
	// analysisrunDescStartedAt is the schema descriptor for started_at field.
	analysisrunDescStartedAt := analysisrunFields[5].Descriptor()
	// analysisrun.DefaultStartedAt holds the default value on creation for the started_at field.
	analysisrun.DefaultStartedAt = analysisrunDescStartedAt.Default.(func() time.Time)
	// analysisrunDescTotalFiles is the schema descriptor for total_files field.
	analysisrunDescTotalFiles := analysisrunFields[7].Descriptor()
	// analysisrun.DefaultTotalFiles holds the default value on creation for the total_files field.
	analysisrun.DefaultTotalFiles = analysisrunDescTotalFiles.Default.(int)
	// analysisrunDescID is the schema descriptor for id field.
	analysisrunDescID := analysisrunFields[0].Descriptor()
	// analysisrun.DefaultID holds the default value on creation for the id field.
	analysisrun.DefaultID = analysisrunDescID.Default.(func() uuid.UUID)
	fileresultFields := schema.FileResult{}.Fields()
	_ = fileresultFields
	// fileresultDescPath is the schema descriptor for path field.
	fileresultDescPath := fileresultFields[2].Descriptor()
	// fileresult.PathValidator is a validator for the "path" field. It is called by the builders before save.
	fileresult.PathValidator = fileresultDescPath.Validators[0].(func(string) error)
	// fileresultDescFileSize is the schema descriptor for file_size field.
	fileresultDescFileSize := fileresultFields[3].Descriptor()
	// fileresult.DefaultFileSize holds the default value on creation for the file_size field.
	fileresult.DefaultFileSize = fileresultDescFileSize.Default.(int64)
	// fileresultDescScore is the schema descriptor for score field.
	fileresultDescScore := fileresultFields[4].Descriptor()
	// fileresult.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	fileresult.ScoreValidator = func() func(float64) error {
		validators := fileresultDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fileresultDescBucket is the schema descriptor for bucket field.
	fileresultDescBucket := fileresultFields[5].Descriptor()
	// fileresult.BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	fileresult.BucketValidator = fileresultDescBucket.Validators[0].(func(string) error)
	// fileresultDescRecommended is the schema descriptor for recommended field.
	fileresultDescRecommended := fileresultFields[6].Descriptor()
	// fileresult.RecommendedValidator is a validator for the "recommended" field. It is called by the builders before save.
	fileresult.RecommendedValidator = fileresultDescRecommended.Validators[0].(func(string) error)
	// fileresultDescViable is the schema descriptor for viable field.
	fileresultDescViable := fileresultFields[7].Descriptor()
	// fileresult.DefaultViable holds the default value on creation for the viable field.
	fileresult.DefaultViable = fileresultDescViable.Default.(bool)
	// fileresultDescID is the schema descriptor for id field.
	fileresultDescID := fileresultFields[0].Descriptor()
	// fileresult.DefaultID holds the default value on creation for the id field.
	fileresult.DefaultID = fileresultDescID.Default.(func() uuid.UUID)
	probeoutcomeFields := schema.ProbeOutcome{}.Fields()
	_ = probeoutcomeFields
	// probeoutcomeDescSeq is the schema descriptor for seq field.
	probeoutcomeDescSeq := probeoutcomeFields[2].Descriptor()
	// probeoutcome.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	probeoutcome.SeqValidator = probeoutcomeDescSeq.Validators[0].(func(int) error)
	// probeoutcomeDescBackend is the schema descriptor for backend field.
	probeoutcomeDescBackend := probeoutcomeFields[3].Descriptor()
	// probeoutcome.BackendValidator is a validator for the "backend" field. It is called by the builders before save.
	probeoutcome.BackendValidator = probeoutcomeDescBackend.Validators[0].(func(string) error)
	// probeoutcomeDescStatus is the schema descriptor for status field.
	probeoutcomeDescStatus := probeoutcomeFields[4].Descriptor()
	// probeoutcome.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	probeoutcome.StatusValidator = probeoutcomeDescStatus.Validators[0].(func(string) error)
	// probeoutcomeDescWarnings is the schema descriptor for warnings field.
	probeoutcomeDescWarnings := probeoutcomeFields[5].Descriptor()
	// probeoutcome.DefaultWarnings holds the default value on creation for the warnings field.
	probeoutcome.DefaultWarnings = probeoutcomeDescWarnings.Default.(int)
	// probeoutcomeDescPages is the schema descriptor for pages field.
	probeoutcomeDescPages := probeoutcomeFields[8].Descriptor()
	// probeoutcome.DefaultPages holds the default value on creation for the pages field.
	probeoutcome.DefaultPages = probeoutcomeDescPages.Default.(int)
	// probeoutcomeDescElapsedMs is the schema descriptor for elapsed_ms field.
	probeoutcomeDescElapsedMs := probeoutcomeFields[9].Descriptor()
	// probeoutcome.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	probeoutcome.DefaultElapsedMs = probeoutcomeDescElapsedMs.Default.(int64)
	// probeoutcomeDescID is the schema descriptor for id field.
	probeoutcomeDescID := probeoutcomeFields[0].Descriptor()
	// probeoutcome.DefaultID holds the default value on creation for the id field.
	probeoutcome.DefaultID = probeoutcomeDescID.Default.(func() uuid.UUID)
}
