package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the careerscan version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("careerscan %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
