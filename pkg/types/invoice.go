// Copyright Martin Halsall, 2026. All rights reserved.

package types

import "time"

// Item is a single purchased line item extracted from an invoice.
type Item struct {
	// Name is the plaintext item description.
	Name string `json:"name" yaml:"name"`

	// Units is how many of the item were purchased.
	Units int `json:"units" yaml:"units"`

	// UnitCost is the cost of a single unit.
	UnitCost float64 `json:"unit_cost" yaml:"unit_cost"`

	// Total is UnitCost multiplied by Units.
	Total float64 `json:"total" yaml:"total"`
}

// Order holds the extracted contents of one invoice PDF: the supplier,
// the order date, and the purchased items.
type Order struct {
	// Vendor is the supplier name the order was extracted with.
	Vendor string `json:"vendor" yaml:"vendor"`

	// Date is the order date, taken as the latest date found anywhere in
	// the invoice text.
	Date time.Time `json:"date" yaml:"date"`

	// Items lists the extracted line items in document order.
	Items []Item `json:"items" yaml:"items"`
}
