package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qatth/careerscan/internal/analysis"
	"github.com/qatth/careerscan/internal/extraction"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Extract and analyze a CV file",
	Long:  `Extract text from a PDF or plain-text CV, detect skills and rank role profiles by how well the CV covers them.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := extraction.ExtractText(data, filepath.Base(path), "")
	if err != nil {
		return err
	}

	engine, err := analysis.NewDefaultEngine()
	if err != nil {
		return err
	}
	result := engine.Analyze(text)

	if scanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if len(result.Skills) == 0 {
		fmt.Println("No known skills found.")
		return nil
	}

	fmt.Println("Skills:")
	for _, skill := range result.Skills {
		fmt.Printf("  %s\n", skill)
	}
	fmt.Println("\nRole matches:")
	for _, match := range result.RoleMatches {
		fmt.Printf("  %-24s %3.0f%%  (%d skills)\n", match.Title, match.Score*100, match.Overlap)
	}
	return nil
}
