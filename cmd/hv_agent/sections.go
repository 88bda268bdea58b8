package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/ingestion"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/observability"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/sections"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Dump the detected sections of a free-form resume",
	Long:  "Extract and clean the text of a resume file, split it by section headers and write the section map as JSON.",
	RunE:  runSections,
}

var (
	sectionsInputFile  string
	sectionsOutputFile string
	sectionsVerbose    bool
)

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsInputFile, "in", "i", "", "Path to resume file")
	sectionsCmd.Flags().StringVarP(&sectionsOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	sectionsCmd.Flags().BoolVarP(&sectionsVerbose, "verbose", "v", false, "Print document metadata and section sizes to stderr")

	if err := sectionsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(_ *cobra.Command, _ []string) error {
	doc, err := ingestion.LoadDocument(sectionsInputFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	secs := sections.Segment(doc.Cleaned)
	if sectionsVerbose {
		meta, err := doc.Metadata.ToJSON()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(os.Stderr, string(meta))
		observability.NewPrinter(os.Stderr).PrintSections(secs)
	}

	data, err := json.MarshalIndent(secs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if sectionsOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(sectionsOutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", sectionsOutputFile)
	return nil
}
