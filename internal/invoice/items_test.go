// Copyright Martin Halsall, 2026. All rights reserved.

package invoice

import (
	"math"
	"reflect"
	"testing"

	"github.com/mhalsall/tradeinvoice/pkg/types"
)

// screwfixProfile mirrors the built-in Screwfix layout: eight trailing
// words after the item name, units and cost read backwards from the end.
var screwfixProfile = types.VendorProfile{
	Name:           "Screwfix",
	DateFormat:     "DD/MM/YYYY",
	ItemPattern:    `^\d{3}.{2} `,
	Excludes:       []string{"03330 112 999"},
	NameOffset:     -8,
	UnitsOffset:    -8,
	UnitCostOffset: -7,
}

var toolstationProfile = types.VendorProfile{
	Name:           "Toolstation",
	DateFormat:     "YYYY-MM-DD",
	ItemPattern:    `^\d{5} `,
	Excludes:       []string{"00006", "00037"},
	NameOffset:     -1,
	UnitsOffset:    -1,
	UnitCostOffset: 0,
}

func TestExtractItemsScrewfixLayout(t *testing.T) {
	lines := []string{
		"Invoice 01/02/2024",
		// code, 2-word name, units, cost, then filler columns.
		"501HT Claw Hammer 2 9.99 19.98 a b c d e f",
		"Delivery to site",
	}

	items, err := extractItems(screwfixProfile, lines)
	if err != nil {
		t.Fatalf("extractItems returned error: %v", err)
	}

	want := []types.Item{{Name: "Claw Hammer", Units: 2, UnitCost: 9.99, Total: 19.98}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %+v, want %+v", items, want)
	}
}

func TestExtractItemsToolstationLayout(t *testing.T) {
	lines := []string{
		"12345 Screws Box 10 3.49",
	}

	items, err := extractItems(toolstationProfile, lines)
	if err != nil {
		t.Fatalf("extractItems returned error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	got := items[0]
	if got.Name != "Screws Box" || got.Units != 10 || got.UnitCost != 3.49 {
		t.Errorf("item = %+v, want Screws Box, 10 units at 3.49", got)
	}
	if math.Abs(got.Total-34.9) > 1e-9 {
		t.Errorf("total = %v, want 34.9", got.Total)
	}
}

func TestExtractItemsExcludes(t *testing.T) {
	lines := []string{
		// Matches the item pattern but is a footer phone number line.
		"033AB Call us on 03330 112 999 x y z a b c",
		"12345 Carriage 00006 1 0.00",
	}

	for _, tt := range []struct {
		name    string
		profile types.VendorProfile
	}{
		{"screwfix footer", screwfixProfile},
		{"toolstation carriage", toolstationProfile},
	} {
		t.Run(tt.name, func(t *testing.T) {
			items, err := extractItems(tt.profile, lines)
			if err != nil {
				t.Fatalf("extractItems returned error: %v", err)
			}
			if len(items) != 0 {
				t.Errorf("items = %+v, want none", items)
			}
		})
	}
}

func TestExtractItemsRejectsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few words for offsets", "501HT Hammer 9.99"},
		{"units not a number", "12345 Screws Box ten 3.49"},
		{"cost without decimal point", "12345 Screws Box 10 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := toolstationProfile
			if tt.name == "too few words for offsets" {
				profile = screwfixProfile
			}
			items, err := extractItems(profile, []string{tt.line})
			if err != nil {
				t.Fatalf("extractItems returned error: %v", err)
			}
			if len(items) != 0 {
				t.Errorf("items = %+v, want none", items)
			}
		})
	}
}

func TestNormalizeCostTruncatesFraction(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"9.99", 9.99, true},
		{"9.999", 9.99, true},
		{"12.5", 12.5, true},
		{"9", 0, false},
		{"abc.de", 0, false},
	}

	for _, tt := range tests {
		got, ok := normalizeCost(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("normalizeCost(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractItemsBadPattern(t *testing.T) {
	profile := screwfixProfile
	profile.ItemPattern = `(`
	if _, err := extractItems(profile, []string{"501HT x"}); err == nil {
		t.Fatal("expected error for invalid item pattern")
	}
}
