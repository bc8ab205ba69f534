// Package ingest discovers the PDF corpus on disk. The analysis core never
// touches the filesystem for discovery; it receives the path list built here.
package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/avelsher/pdfprobe/constants"
)

type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
}

// DiscoverPDFs walks root and returns matching file paths in lexical walk
// order (deterministic), plus aggregate stats. Hidden files and directories
// are skipped when skipHidden is set. limit > 0 caps the list after matching,
// mirroring a caller-supplied max-files setting.
func DiscoverPDFs(root string, limit int, skipHidden bool) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var files []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			stats.Skipped++
			return nil // keep walking past unreadable entries
		}
		stats.Scanned++
		if skipHidden && isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			stats.Skipped++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
