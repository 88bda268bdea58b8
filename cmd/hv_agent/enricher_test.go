package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/config"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/enrich"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/llm"
)

func TestBuildEnricher_None(t *testing.T) {
	for _, mode := range []string{"", config.EnrichmentNone} {
		e, release, err := buildEnricher(mode, "", "", 0)
		require.NoError(t, err)
		assert.Nil(t, e)
		release()
	}
}

func TestBuildEnricher_GeminiNeedsKey(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")

	_, _, err := buildEnricher(config.EnrichmentGemini, "", "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestBuildEnricher_GeminiIsLazy(t *testing.T) {
	e, release, err := buildEnricher(config.EnrichmentGemini, "test-key", "gemini-2.5-pro", 1000)
	require.NoError(t, err)
	defer release()

	assert.IsType(t, &enrich.LLMEnricher{}, e)
}

func TestBuildEnricher_UnknownMode(t *testing.T) {
	_, _, err := buildEnricher("spacy", "", "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown enrichment mode")
}

func TestLLMConfig_ModelOverride(t *testing.T) {
	def := llmConfig("")
	assert.Equal(t, llm.DefaultConfig().Models, def.Models)

	custom := llmConfig("gemini-2.5-pro")
	assert.Equal(t, "gemini-2.5-pro", custom.GetModel(llm.TierLite))
	assert.Equal(t, "gemini-2.5-pro", custom.GetModel(llm.TierStandard))
	assert.Equal(t, def.Timeout, custom.Timeout)
}

func resetBatchFlags(t *testing.T) {
	t.Cleanup(func() {
		batchCmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		batchConfigPath = ""
	})
}

func TestResolveBatchConfig_FlagsOverrideFile(t *testing.T) {
	resetBatchFlags(t)
	t.Setenv(config.EnvDatabaseURL, "")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"input_dir": "`+filepath.ToSlash(dir)+`", "workers": 2, "output_dir": "salida"}`), 0644))
	batchConfigPath = cfgPath

	require.NoError(t, batchCmd.Flags().Set("workers", "8"))
	require.NoError(t, batchCmd.Flags().Set("model", "gemini-2.5-pro"))

	cfg, err := resolveBatchConfig(batchCmd)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "salida", cfg.OutputDir)
	assert.Equal(t, config.EnrichmentNone, cfg.Enrichment)
	assert.Equal(t, config.DefaultMaxEnrichmentChars, cfg.MaxEnrichmentChars)
}

func TestResolveBatchConfig_InvalidWorkers(t *testing.T) {
	resetBatchFlags(t)

	require.NoError(t, batchCmd.Flags().Set("workers", "100"))

	_, err := resolveBatchConfig(batchCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}
