package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cert-publisher/internal/observability"
	"github.com/jonathan/cert-publisher/internal/server"
	"github.com/jonathan/cert-publisher/internal/state"
)

var (
	inspectCertID    string
	inspectPDF       string
	inspectFormation string
	inspectOrgName   string
)

var inspectStateCmd = &cobra.Command{
	Use:   "inspect-state",
	Short: "Print the stored completion record for a certificate",
	Long:  "Reads the completion record from the configured state backend. Identify the session by --cert-id, or by --pdf, --formation and --org-name together when no certificate id exists.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inspectCertID == "" && (inspectPDF == "" || inspectFormation == "" || inspectOrgName == "") {
			return fmt.Errorf("either --cert-id or all of --pdf, --formation and --org-name are required")
		}

		cfg, err := server.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		kv, err := server.OpenBackend(cfg)
		if err != nil {
			return fmt.Errorf("failed to open state backend: %w", err)
		}
		defer kv.Close()

		key := state.Key(inspectCertID, inspectPDF, inspectFormation, inspectOrgName)
		rec := state.NewStore(kv).Load(cmd.Context(), key)

		observability.NewPrinter(os.Stdout).PrintCompletionRecord(key, rec)
		return nil
	},
}

func init() {
	inspectStateCmd.Flags().StringVar(&inspectCertID, "cert-id", "", "Certificate id")
	inspectStateCmd.Flags().StringVar(&inspectPDF, "pdf", "", "Certificate document URL")
	inspectStateCmd.Flags().StringVar(&inspectFormation, "formation", "", "Formation name")
	inspectStateCmd.Flags().StringVar(&inspectOrgName, "org-name", "", "Organization display name")
	rootCmd.AddCommand(inspectStateCmd)
}
