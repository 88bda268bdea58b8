package main

import (
	"fmt"
	"os"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/config"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/enrich"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/llm"
)

// buildEnricher returns the enricher for mode and a function releasing it.
// Mode "none" yields a nil enricher. A non-empty model replaces the default
// model of every tier.
func buildEnricher(mode, apiKey, model string, maxChars int) (enrich.Enricher, func(), error) {
	switch mode {
	case "", config.EnrichmentNone:
		return nil, func() {}, nil
	case config.EnrichmentGemini:
		if apiKey == "" {
			apiKey = os.Getenv(config.EnvAPIKey)
		}
		if apiKey == "" {
			return nil, nil, fmt.Errorf("API key is required for gemini enrichment (set %s environment variable or use --api-key flag)", config.EnvAPIKey)
		}
		e := enrich.NewLLMEnricher(apiKey, llmConfig(model), maxChars)
		return e, func() { _ = e.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown enrichment mode %q (use %q or %q)", mode, config.EnrichmentNone, config.EnrichmentGemini)
	}
}

func llmConfig(model string) *llm.Config {
	cfg := llm.DefaultConfig()
	if model == "" {
		return cfg
	}
	return cfg.WithModel(llm.TierLite, model).WithModel(llm.TierStandard, model)
}
