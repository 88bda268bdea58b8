// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Enrichment modes
const (
	EnrichmentNone   = "none"
	EnrichmentGemini = "gemini"
)

// Environment variables read when the matching field is empty
const (
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvDatabaseURL = "DATABASE_URL"
)

const (
	DefaultInputDir           = "input"
	DefaultOutputDir          = "output"
	DefaultWorkers            = 4
	DefaultMaxEnrichmentChars = 100000
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir,omitempty"`  // Directory scanned by batch
	OutputDir string `json:"output_dir,omitempty"` // Directory receiving <name>.json files

	// Limits
	Workers            int `json:"workers,omitempty" validate:"omitempty,min=1,max=64"`
	MaxEnrichmentChars int `json:"max_enrichment_chars,omitempty" validate:"omitempty,min=1"`

	// Behavior
	Enrichment     string `json:"enrichment,omitempty" validate:"omitempty,oneof=none gemini"`
	APIKey         string `json:"api_key,omitempty"`      // Gemini API key
	Model          string `json:"model,omitempty"`        // Overrides the enrichment model of every tier
	DatabaseURL    string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose        bool   `json:"verbose,omitempty"`
	ValidateOutput bool   `json:"validate_output,omitempty"` // Check every output against the schema
	Clean          bool   `json:"clean,omitempty"`           // Empty the output directory first
}

// Defaults returns the configuration used when nothing else is given
func Defaults() Config {
	return Config{
		InputDir:           DefaultInputDir,
		OutputDir:          DefaultOutputDir,
		Workers:            DefaultWorkers,
		MaxEnrichmentChars: DefaultMaxEnrichmentChars,
		Enrichment:         EnrichmentNone,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so messages match the config file
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Required inputs are checked by the commands after merging flags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config error: %s", describe(verrs[0]))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Enrichment == EnrichmentGemini && c.APIKey == "" {
		return fmt.Errorf("config error: 'api_key' is required when enrichment is %q (or set %s)", EnrichmentGemini, EnvAPIKey)
	}

	if c.InputDir != "" {
		if info, err := os.Stat(c.InputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: input_dir is not a directory: %s", c.InputDir)
		}
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("'%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("'%s' failed %q", fe.Field(), fe.Tag())
	}
}

// ApplyEnv fills the API key and database URL from the environment when unset
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.InputDir == "" {
		result.InputDir = defaults.InputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Enrichment == "" {
		result.Enrichment = defaults.Enrichment
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.MaxEnrichmentChars == 0 {
		result.MaxEnrichmentChars = defaults.MaxEnrichmentChars
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
