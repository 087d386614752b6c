// Copyright Martin Halsall, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List the available vendor profiles",
	Long: `Vendors lists the built-in supplier profiles plus any user-defined ones
loaded from the vendors file, with the layout parameters each uses.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "%-14s  %-12s  %-16s  %s\n", "Name", "Date format", "Item pattern", "Offsets (name/units/cost)")
		for _, name := range vendors.Names() {
			p := vendors[name]
			fmt.Fprintf(os.Stdout, "%-14s  %-12s  %-16s  %d/%d/%d\n",
				p.Name, p.DateFormat, p.ItemPattern,
				p.NameOffset, p.UnitsOffset, p.UnitCostOffset)
		}
	},
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
}
