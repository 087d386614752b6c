// Copyright Martin Halsall, 2026. All rights reserved.

package types

// VendorProfile describes how to locate invoice items inside one supplier's
// PDF layout. Item lines are matched by a regular expression, then the item
// fields are read backwards from the end of the line using word offsets,
// since the item name has an unknown word count but the trailing columns
// have fixed relative positions.
type VendorProfile struct {
	// Name is the plaintext supplier name, also written to the CSV output.
	Name string `json:"name" yaml:"name"`

	// DateFormat describes the supplier's order-date layout, e.g.
	// "DD/MM/YYYY" or "YYYY-MM-DD". Delimiters '/', '-', and '.' are
	// supported, with D/DD, M/MM, and YY/YYYY parts in any order.
	DateFormat string `json:"date_format" yaml:"date_format"`

	// ItemPattern is a regular expression matching the start of an item
	// line (e.g. an item code shape).
	ItemPattern string `json:"item_pattern" yaml:"item_pattern"`

	// Excludes lists substrings that disqualify a matched line. Supplier
	// invoices carry footer lines (phone numbers, carriage codes) that
	// match the item code shape and must be filtered out.
	Excludes []string `json:"excludes,omitempty" yaml:"excludes,omitempty"`

	// NameOffset marks the end of the item name, relative to the last
	// word of the line (negative or zero).
	NameOffset int `json:"name_offset" yaml:"name_offset"`

	// UnitsOffset marks the purchased-units column, relative to the last
	// word of the line.
	UnitsOffset int `json:"units_offset" yaml:"units_offset"`

	// UnitCostOffset marks the unit-cost column, relative to the last
	// word of the line.
	UnitCostOffset int `json:"unit_cost_offset" yaml:"unit_cost_offset"`
}
