// Copyright Martin Halsall, 2026. All rights reserved.

// Package main is the entry point for the tradeinvoice CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhalsall/tradeinvoice/internal/profile"
)

// version is set at build time via ldflags.
var version = "dev"

// vendors holds the profile registry loaded at startup: built-in supplier
// profiles merged with any user-defined ones from the vendors file.
var vendors profile.Registry

// rootCmd is the base command for the tradeinvoice CLI.
var rootCmd = &cobra.Command{
	Use:   "tradeinvoice",
	Short: "Turn trade supplier invoice PDFs into CSV rows",
	Long: `tradeinvoice extracts purchased line items from trade supplier invoice
PDFs (Screwfix, Toolstation, and user-defined suppliers) and appends them to
a CSV for spreadsheet import.

Use extract for a single invoice, batch to run the extractor over every PDF
in a directory, and split to break a multi-page download into single-page
invoices.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		r, err := profile.Load(viper.GetString("vendors.file"))
		if err != nil {
			return err
		}
		vendors = r
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tradeinvoice.yaml or ~/.config/tradeinvoice/config.yaml)")
	rootCmd.PersistentFlags().String("vendors-file", "", "YAML file of user-defined vendor profiles")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tradeinvoice")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tradeinvoice"))
		}
	}

	viper.SetEnvPrefix("TRADEINVOICE")
	viper.AutomaticEnv()

	viper.BindPFlag("vendors.file", rootCmd.PersistentFlags().Lookup("vendors-file"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
