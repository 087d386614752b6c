// Copyright Martin Halsall, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhalsall/tradeinvoice/internal/split"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a multi-page PDF into single-page files",
	Long: `Split writes one single-page PDF per page of the input, next to the
input file unless --out-dir is given. Supplier downloads often bundle
several invoices into one PDF; split them before extraction.`,
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	inputPDF, _ := cmd.Flags().GetString("input-pdf")
	outDir, _ := cmd.Flags().GetString("out-dir")

	if err := requireSuffix(inputPDF, ".pdf"); err != nil {
		return err
	}

	pages, err := split.File(inputPDF, outDir)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %d single-page file(s) from %s\n", pages, inputPDF)
	return nil
}

func init() {
	splitCmd.Flags().StringP("input-pdf", "i", "", "path of the PDF file to split")
	splitCmd.Flags().String("out-dir", "", "directory for the single-page files (default: input file's directory)")

	splitCmd.MarkFlagRequired("input-pdf")

	rootCmd.AddCommand(splitCmd)
}
