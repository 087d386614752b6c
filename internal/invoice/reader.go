// Copyright Martin Halsall, 2026. All rights reserved.

package invoice

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFReader reads invoice text lines with the pure-Go pdf library. Invoice
// items live in table-like rows, one item per row, so text is grouped by
// row rather than taken as one flat string.
type PDFReader struct{}

// ReadLines returns the text lines of every page of the PDF at path.
// Fragments within a row are joined and whitespace is collapsed so that
// words are single-space separated.
func (PDFReader) ReadLines(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("extracting text from %s page %d: %w", path, i, err)
		}

		for _, row := range rows {
			var b strings.Builder
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteByte(' ')
			}
			line := strings.Join(strings.Fields(b.String()), " ")
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}
