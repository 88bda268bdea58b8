package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a StructuredResume JSON file",
	Long:  "Validate a JSON file against the embedded StructuredResume schema, or against --schema when given.",
	RunE:  runValidate,
}

var (
	validateInputFile  string
	validateSchemaFile string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to JSON file to validate")
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to a JSON Schema file (default: embedded StructuredResume schema)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	var err error
	if validateSchemaFile != "" {
		err = schemas.ValidateJSON(validateSchemaFile, validateInputFile)
	} else {
		err = schemas.ValidateJSONFile(validateInputFile)
	}

	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Validation failed:\n%s", validationErr.Error())
			return fmt.Errorf("%s does not match the schema", validateInputFile)
		}
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateInputFile)
	return nil
}
