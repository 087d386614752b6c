// Copyright Martin Halsall, 2026. All rights reserved.

package invoice

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mhalsall/tradeinvoice/pkg/types"
)

// AppendOrderCSV appends one row per extracted item to the CSV at csvPath,
// creating the file if needed. The row shape is
//
//	vendor, "", DD/MM/YYYY date, item name, units, unit cost
//
// chosen to allow copy-paste into a personal spreadsheet.
func AppendOrderCSV(order *types.Order, csvPath string) error {
	f, err := os.OpenFile(csvPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening CSV %s: %w", csvPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, item := range order.Items {
		row := []string{
			order.Vendor,
			"",
			order.Date.Format("02/01/2006"),
			item.Name,
			strconv.Itoa(item.Units),
			strconv.FormatFloat(item.UnitCost, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row to %s: %w", csvPath, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV %s: %w", csvPath, err)
	}
	return nil
}
