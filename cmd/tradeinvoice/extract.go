// Copyright Martin Halsall, 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhalsall/tradeinvoice/internal/invoice"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract line items from a single invoice PDF into a CSV",
	Long: `Extract reads one invoice PDF, finds the order date and purchased line
items using the named vendor profile, and appends one CSV row per item:

  vendor, "", date (DD/MM/YYYY), item name, units, unit cost

Rows are appended, so several invoices can share one CSV.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	vendorName, _ := cmd.Flags().GetString("vendor")
	inputPDF, _ := cmd.Flags().GetString("input-pdf")
	outputCSV, _ := cmd.Flags().GetString("output-csv")

	if err := requireSuffix(inputPDF, ".pdf"); err != nil {
		return err
	}
	if err := requireSuffix(outputCSV, ".csv"); err != nil {
		return err
	}

	profile, err := vendors.Lookup(vendorName)
	if err != nil {
		return err
	}

	order, err := invoice.ExtractOrder(invoice.PDFReader{}, profile, inputPDF)
	if err != nil {
		return err
	}

	if err := invoice.AppendOrderCSV(order, outputCSV); err != nil {
		return err
	}

	fmt.Printf("extracted %d item(s) from %s (order date %s)\n",
		len(order.Items), inputPDF, order.Date.Format("02/01/2006"))
	return nil
}

// requireSuffix enforces a file extension on an argument path.
func requireSuffix(path, suffix string) error {
	if !strings.HasSuffix(path, suffix) {
		return fmt.Errorf("%s must be a %s file", path, suffix)
	}
	return nil
}

func init() {
	extractCmd.Flags().StringP("vendor", "v", "", "vendor profile of the invoice")
	extractCmd.Flags().StringP("input-pdf", "i", "", "path to the input PDF file")
	extractCmd.Flags().StringP("output-csv", "o", "", "path to the output CSV file")

	extractCmd.MarkFlagRequired("vendor")
	extractCmd.MarkFlagRequired("input-pdf")
	extractCmd.MarkFlagRequired("output-csv")

	rootCmd.AddCommand(extractCmd)
}
