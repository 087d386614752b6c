// Copyright Martin Halsall, 2026. All rights reserved.

// Package split breaks a multi-page invoice PDF into single-page files,
// one per page. Suppliers batch several invoices into one download; splitting
// them first lets each page be extracted with its own vendor profile.
package split

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// File splits the PDF at inPath into single-page PDFs written to outDir,
// creating outDir if needed. It returns the number of pages written. An
// empty outDir defaults to the input file's directory.
func File(inPath, outDir string) (int, error) {
	if outDir == "" {
		outDir = filepath.Dir(inPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	pages, err := api.PageCountFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("counting pages in %s: %w", inPath, err)
	}

	if err := api.SplitFile(inPath, outDir, 1, nil); err != nil {
		return 0, fmt.Errorf("splitting %s: %w", inPath, err)
	}

	return pages, nil
}
