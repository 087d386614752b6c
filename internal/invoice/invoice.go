// Copyright Martin Halsall, 2026. All rights reserved.

// Package invoice extracts order dates and purchased line items from trade
// supplier invoice PDFs, driven by a vendor profile that describes the
// supplier's invoice layout.
package invoice

import (
	"fmt"

	"github.com/mhalsall/tradeinvoice/pkg/types"
)

// LineReader yields the text lines of a PDF, all pages flattened in page
// order. Implementations other than the real PDF reader exist for tests.
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// ExtractOrder reads the invoice at pdfPath and extracts the order date and
// line items according to the vendor profile. The order date is the latest
// date found anywhere in the invoice text that matches the profile's date
// format.
func ExtractOrder(r LineReader, profile types.VendorProfile, pdfPath string) (*types.Order, error) {
	lines, err := r.ReadLines(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("reading invoice %s: %w", pdfPath, err)
	}

	date, err := extractDate(profile.DateFormat, lines)
	if err != nil {
		return nil, fmt.Errorf("extracting order date from %s: %w", pdfPath, err)
	}

	items, err := extractItems(profile, lines)
	if err != nil {
		return nil, fmt.Errorf("extracting items from %s: %w", pdfPath, err)
	}

	return &types.Order{
		Vendor: profile.Name,
		Date:   date,
		Items:  items,
	}, nil
}
