package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cert-publisher/internal/observability"
	"github.com/jonathan/cert-publisher/internal/orgconfig"
)

var checkConfigPath string

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Validate an organization mapping file and print its records",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := orgconfig.LoadMapping(checkConfigPath)
		if err != nil {
			return err
		}

		printer := observability.NewPrinter(os.Stdout)
		for _, id := range m.IDs() {
			printer.PrintOrganization(id, m[id])
		}
		fmt.Printf("%d organization(s), mapping is valid\n", len(m))
		return nil
	},
}

func init() {
	checkConfigCmd.Flags().StringVar(&checkConfigPath, "config", "organizations.json", "Path to the organization mapping JSON file")
	rootCmd.AddCommand(checkConfigCmd)
}
