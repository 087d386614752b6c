// Copyright Martin Halsall, 2026. All rights reserved.

package invoice

import (
	"errors"
	"testing"
	"time"
)

// fakeReader implements LineReader for testing, returning canned lines or
// an error.
type fakeReader struct {
	lines []string
	err   error
}

func (f *fakeReader) ReadLines(path string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

func TestExtractOrder(t *testing.T) {
	reader := &fakeReader{lines: []string{
		"Toolstation order 2024-03-10",
		"12345 Screws Box 10 3.49",
		"67890 Masonry Drill Bit 1 7.99",
	}}

	order, err := ExtractOrder(reader, toolstationProfile, "order.pdf")
	if err != nil {
		t.Fatalf("ExtractOrder returned error: %v", err)
	}

	if order.Vendor != "Toolstation" {
		t.Errorf("vendor = %q, want Toolstation", order.Vendor)
	}
	want := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !order.Date.Equal(want) {
		t.Errorf("date = %v, want %v", order.Date, want)
	}
	if len(order.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(order.Items))
	}
	if order.Items[1].Name != "Masonry Drill Bit" {
		t.Errorf("second item name = %q, want Masonry Drill Bit", order.Items[1].Name)
	}
}

func TestExtractOrderReaderFailure(t *testing.T) {
	reader := &fakeReader{err: errors.New("encrypted document")}

	if _, err := ExtractOrder(reader, toolstationProfile, "order.pdf"); err == nil {
		t.Fatal("expected error when the PDF cannot be read")
	}
}

func TestExtractOrderNoDate(t *testing.T) {
	reader := &fakeReader{lines: []string{"12345 Screws Box 10 3.49"}}

	if _, err := ExtractOrder(reader, toolstationProfile, "order.pdf"); err == nil {
		t.Fatal("expected error when no order date is present")
	}
}
