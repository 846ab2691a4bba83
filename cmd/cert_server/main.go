// Package main provides the entry point for the Certificate Publisher HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cert_server",
	Short: "Certificate Publisher HTTP API Server",
	Long:  "Certificate Publisher serves training-certificate sessions: organization branding, PDF preview rendering, LinkedIn publication links and per-certificate completion state.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
