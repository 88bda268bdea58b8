package main

import (
	"context"
	"fmt"
	"os"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/config"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/ingestion"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/observability"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/pipeline"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/schemas"
	"github.com/spf13/cobra"
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Structure one resume file into StructuredResume JSON",
	Long:  "Extract the text of one resume file, detect its format and write the StructuredResume JSON to --out or stdout.",
	RunE:  runStructure,
}

var (
	structureInputFile  string
	structureOutputFile string
	structureEnrich     string
	structureAPIKey     string
	structureModel      string
	structureMaxChars   int
	structureValidate   bool
	structureVerbose    bool
)

func init() {
	structureCmd.Flags().StringVarP(&structureInputFile, "in", "i", "", "Path to resume file (pdf, docx, doc, odt, rtf, txt)")
	structureCmd.Flags().StringVarP(&structureOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	structureCmd.Flags().StringVar(&structureEnrich, "enrich", config.EnrichmentNone, "Organization enrichment: none or gemini")
	structureCmd.Flags().StringVar(&structureAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	structureCmd.Flags().StringVar(&structureModel, "model", "", "Gemini model used for enrichment (default: built-in per-tier models)")
	structureCmd.Flags().IntVar(&structureMaxChars, "max-enrichment-chars", config.DefaultMaxEnrichmentChars, "Maximum characters sent to the enrichment model")
	structureCmd.Flags().BoolVar(&structureValidate, "validate", false, "Validate the output against the StructuredResume schema")
	structureCmd.Flags().BoolVarP(&structureVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	if err := structureCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(structureCmd)
}

func runStructure(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	enricher, release, err := buildEnricher(structureEnrich, structureAPIKey, structureModel, structureMaxChars)
	if err != nil {
		return err
	}
	defer release()

	doc, err := ingestion.LoadDocument(structureInputFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	if doc.IsEmpty() {
		return fmt.Errorf("no text could be extracted from %s", structureInputFile)
	}

	s := pipeline.NewStructurer(enricher)
	s.Verbose = structureVerbose
	resume := s.ProcessDocument(ctx, doc)

	if structureValidate {
		if err := schemas.ValidateResume(resume); err != nil {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
	}

	if structureVerbose {
		observability.NewPrinter(os.Stderr).PrintResume(resume)
	}

	if structureOutputFile == "" {
		data, err := pipeline.MarshalResume(resume)
		if err != nil {
			return err
		}
		_, _ = os.Stdout.Write(data)
		return nil
	}

	if err := pipeline.WriteResume(structureOutputFile, resume); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully structured resume (%d jobs, %.1f years)\n", resume.EmploymentCount, resume.TotalExperienceYears)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", structureOutputFile)
	return nil
}
