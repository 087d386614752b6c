// Copyright Martin Halsall, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhalsall/tradeinvoice/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List batch runs recorded in the ledger",
	Long: `History reads the SQLite ledger written by batch --ledger and lists past
runs, most recent first. Use --run with a run ID to show the per-file
outcomes of one run.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("ledger")
	if path == "" {
		path = viper.GetString("ledger.path")
	}
	if path == "" {
		return fmt.Errorf("ledger path required: pass --ledger or set ledger.path in the config")
	}

	store, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, _ := cmd.Flags().GetInt64("run")
	if runID > 0 {
		return printRunFiles(store, runID)
	}

	runs, err := store.Runs(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-16s  %-12s  %-24s  %-9s  %s\n",
		"ID", "Started", "Vendor", "Input dir", "Extracted", "Failed")
	for _, r := range runs {
		inputDir := r.InputDir
		if len(inputDir) > 24 {
			inputDir = inputDir[:21] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-16s  %-12s  %-24s  %-9d  %d\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Vendor, inputDir, r.Extracted, r.Failed)
	}
	return nil
}

func printRunFiles(store *ledger.Store, runID int64) error {
	files, err := store.RunFiles(context.Background(), runID)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No files recorded for run %d.\n", runID)
		return nil
	}

	for _, f := range files {
		if f.Error != "" {
			fmt.Fprintf(os.Stdout, "%-10s  %s (%s)\n", f.Status, f.Name, f.Error)
			continue
		}
		fmt.Fprintf(os.Stdout, "%-10s  %s\n", f.Status, f.Name)
	}
	return nil
}

func init() {
	historyCmd.Flags().String("ledger", "", "path to the SQLite ledger")
	historyCmd.Flags().Int64("run", 0, "show per-file outcomes for this run ID")

	rootCmd.AddCommand(historyCmd)
}
