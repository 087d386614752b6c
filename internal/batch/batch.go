// Copyright Martin Halsall, 2026. All rights reserved.

// Package batch runs the invoice extractor once per PDF in a directory.
// Files are processed strictly one at a time; a failed file does not stop
// the batch, but is recorded and surfaced in the final summary.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// pdfMarker is the filename filter for invoice candidates. Matching is a
// substring check rather than a strict extension check, so a name like
// "notes.pdf.bak" also qualifies; see README for why this looseness is kept.
const pdfMarker = ".pdf"

// FileResult is the outcome of one file within a run. Err is nil when the
// extractor succeeded.
type FileResult struct {
	Name string
	Err  error
}

// Result holds the outcome of a batch run.
type Result struct {
	Extracted int
	Failed    int
	Files     []FileResult
}

// Total returns the total number of files processed.
func (r Result) Total() int {
	return r.Extracted + r.Failed
}

// HasFailures reports whether any files failed extraction.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// FailedFiles returns the names of the files that failed, in processing order.
func (r Result) FailedFiles() []string {
	var names []string
	for _, f := range r.Files {
		if f.Err != nil {
			names = append(names, f.Name)
		}
	}
	return names
}

// ScanDir lists the filenames in dir whose name contains ".pdf", in the
// sorted order the directory listing provides. The list is derived once;
// callers do not re-scan during a run.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading invoice directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.Contains(entry.Name(), pdfMarker) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// Run scans dir for invoice PDFs and invokes the extractor once per file,
// writing a progress line per file to w. Each invocation blocks until the
// extractor exits before the next file starts. Extractor failures are
// recorded and the run continues; a missing or unreadable directory is
// fatal. The output path is handed to the extractor unchanged.
func Run(ctx context.Context, ext Extractor, vendor, dir, outputPath string, w io.Writer) (Result, error) {
	files, err := ScanDir(dir)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Using vendor profile: %s\n", vendor)

	if len(files) == 0 {
		fmt.Fprintf(w, "no invoice PDFs found in %s\n", dir)
		return Result{}, nil
	}

	var result Result
	for _, name := range files {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		fmt.Fprintf(w, "extracting %s\n", name)

		err := ext.Extract(vendor, filepath.Join(dir, name), outputPath)
		result.Files = append(result.Files, FileResult{Name: name, Err: err})
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			result.Failed++
			continue
		}
		result.Extracted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d failed (total: %d)\n",
		result.Extracted, result.Failed, result.Total())
	if result.HasFailures() {
		fmt.Fprintf(w, "failed files: %s\n", strings.Join(result.FailedFiles(), ", "))
	}

	return result, nil
}
