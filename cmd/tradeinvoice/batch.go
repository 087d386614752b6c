// Copyright Martin Halsall, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhalsall/tradeinvoice/internal/batch"
	"github.com/mhalsall/tradeinvoice/internal/ledger"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run the invoice extractor over every PDF in a directory",
	Long: `Batch scans a directory for invoice PDFs and runs the extractor command
once per file, sequentially, passing the vendor name, the file path, and the
output path. A file qualifies when its name contains ".pdf".

Argument order is vendor, input directory, output path; the output path is
handed to the extractor unchanged. A failed file does not stop the batch:
the remaining files are still attempted, the failed ones are listed at the
end, and the command exits non-zero.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	vendorName, _ := cmd.Flags().GetString("vendor")
	inputDir, _ := cmd.Flags().GetString("input-dir")
	outputPath, _ := cmd.Flags().GetString("output")

	command, _ := cmd.Flags().GetString("extractor")
	if command == "" {
		command = viper.GetString("batch.extractor_command")
	}

	ext, err := batch.NewCommandExtractor(command)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	result, err := batch.Run(context.Background(), ext, vendorName, inputDir, outputPath, os.Stdout)
	if err != nil {
		return err
	}

	ledgerPath, _ := cmd.Flags().GetString("ledger")
	if ledgerPath == "" {
		ledgerPath = viper.GetString("ledger.path")
	}
	if ledgerPath != "" {
		if err := recordRun(ledgerPath, vendorName, inputDir, outputPath, startedAt, result); err != nil {
			fmt.Fprintf(os.Stderr, "warning: ledger not updated: %v\n", err)
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", result.Failed)
	}
	return nil
}

// recordRun writes the outcome of a batch run to the SQLite ledger.
func recordRun(path, vendorName, inputDir, outputPath string, startedAt time.Time, result batch.Result) error {
	store, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	rec := ledger.RunRecord{
		Vendor:    vendorName,
		InputDir:  inputDir,
		OutputCSV: outputPath,
		StartedAt: startedAt,
		Extracted: result.Extracted,
		Failed:    result.Failed,
	}

	for _, f := range result.Files {
		fr := ledger.FileRecord{Name: f.Name, Status: ledger.StatusExtracted}
		if f.Err != nil {
			fr.Status = ledger.StatusFailed
			fr.Error = f.Err.Error()
		}
		rec.Files = append(rec.Files, fr)
	}

	_, err = store.RecordRun(context.Background(), rec)
	return err
}

func init() {
	batchCmd.Flags().StringP("vendor", "v", "", "vendor profile name passed to the extractor")
	batchCmd.Flags().StringP("input-dir", "i", "", "directory containing invoice PDFs")
	batchCmd.Flags().StringP("output", "o", "", "output path handed to the extractor unchanged")
	batchCmd.Flags().String("extractor", "", "extractor command (default \"trade-invoice-extractor\")")
	batchCmd.Flags().String("ledger", "", "record the run in a SQLite ledger at this path")

	batchCmd.MarkFlagRequired("vendor")
	batchCmd.MarkFlagRequired("input-dir")
	batchCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(batchCmd)
}
