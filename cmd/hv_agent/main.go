// Package main provides the hv_agent command line tool, which turns resume
// files into structured JSON.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hv_agent",
	Short: "Structure Spanish resumes (hojas de vida) into JSON",
	Long: `hv_agent extracts the text of resumes (PDF, DOCX, ODT, RTF, TXT), detects the
government "Formato Único" or a free-form layout, and produces a normalized
StructuredResume JSON for ranking and matching.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
