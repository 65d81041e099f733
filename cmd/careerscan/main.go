// Package main provides the entry point for the careerscan CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerscan",
	Short: "CV scanner and role-matching server",
	Long:  "careerscan extracts text from CVs, matches the skills it finds against role profiles, and serves the results over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
