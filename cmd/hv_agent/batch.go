package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/config"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/db"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/observability"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/pipeline"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Structure every resume in a directory",
	Long: `Process every supported file of the input directory and write one <name>.json per
document to the output directory. Documents run in parallel; a document that fails is
reported and skipped.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBatch,
}

var (
	batchConfigPath  string
	batchInputDir    string
	batchOutputDir   string
	batchWorkers     int
	batchClean       bool
	batchEnrich      string
	batchAPIKey      string
	batchModel       string
	batchMaxChars    int
	batchDatabaseURL string
	batchValidate    bool
	batchVerbose     bool
)

func init() {
	// Config file flag (processed first)
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCmd.Flags().StringVarP(&batchInputDir, "in", "i", "", "Input directory (default \"input\")")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out", "o", "", "Output directory (default \"output\")")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Number of documents processed in parallel (default 4)")
	batchCmd.Flags().BoolVar(&batchClean, "clean", false, "Remove existing files from the output directory first")
	batchCmd.Flags().StringVar(&batchEnrich, "enrich", "", "Organization enrichment: none or gemini")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchModel, "model", "", "Gemini model used for enrichment (default: built-in per-tier models)")
	batchCmd.Flags().IntVar(&batchMaxChars, "max-enrichment-chars", 0, "Maximum characters sent to the enrichment model (default 100000)")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	batchCmd.Flags().BoolVar(&batchValidate, "validate", false, "Reject outputs that do not match the StructuredResume schema")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed information")

	rootCmd.AddCommand(batchCmd)
}

// resolveBatchConfig merges the config file, explicitly set flags, defaults
// and the environment, in that order of precedence.
func resolveBatchConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if batchConfigPath != "" {
		loaded, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("in") {
		cfg.InputDir = batchInputDir
	}
	if flags.Changed("out") {
		cfg.OutputDir = batchOutputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if flags.Changed("clean") {
		cfg.Clean = batchClean
	}
	if flags.Changed("enrich") {
		cfg.Enrichment = batchEnrich
	}
	if flags.Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if flags.Changed("model") {
		cfg.Model = batchModel
	}
	if flags.Changed("max-enrichment-chars") {
		cfg.MaxEnrichmentChars = batchMaxChars
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = batchDatabaseURL
	}
	if flags.Changed("validate") {
		cfg.ValidateOutput = batchValidate
	}
	if flags.Changed("verbose") {
		cfg.Verbose = batchVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveBatchConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	enricher, release, err := buildEnricher(cfg.Enrichment, cfg.APIKey, cfg.Model, cfg.MaxEnrichmentChars)
	if err != nil {
		return err
	}
	defer release()

	opts := pipeline.BatchOptions{
		InputDir:       cfg.InputDir,
		OutputDir:      cfg.OutputDir,
		Workers:        cfg.Workers,
		Clean:          cfg.Clean,
		ValidateOutput: cfg.ValidateOutput,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Failed to connect to database: %v\n", err)
			_, _ = fmt.Fprintf(os.Stderr, "Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				return err
			}
			opts.Store = database
			if cfg.Verbose {
				_, _ = fmt.Fprintf(os.Stdout, "[VERBOSE] Connected to database\n")
			}
		}
	}

	s := pipeline.NewStructurer(enricher)
	s.Verbose = cfg.Verbose

	result, err := s.Batch(ctx, opts)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintBatchSummary(result.BatchID.String(), len(result.Written), len(result.Failed), cfg.OutputDir)
	for _, f := range result.Failed {
		_, _ = fmt.Fprintf(os.Stderr, "  failed: %v\n", f)
	}
	return nil
}
