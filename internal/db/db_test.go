package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

func TestIsValidBatchStatus(t *testing.T) {
	assert.True(t, IsValidBatchStatus(BatchStatusRunning))
	assert.True(t, IsValidBatchStatus(BatchStatusCompleted))
	assert.True(t, IsValidBatchStatus(BatchStatusFailed))
	assert.False(t, IsValidBatchStatus("paused"))
	assert.False(t, IsValidBatchStatus(""))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	v := nullIfEmpty("ana@correo.com")
	require.NotNil(t, v)
	assert.Equal(t, "ana@correo.com", *v)
}

func TestSchemaDDL_DeclaresTables(t *testing.T) {
	assert.Contains(t, schemaDDL, "CREATE TABLE IF NOT EXISTS hv_batches")
	assert.Contains(t, schemaDDL, "CREATE TABLE IF NOT EXISTS hv_resumes")
	assert.Contains(t, schemaDDL, "UNIQUE (batch_id, source_file)")
}

func TestResumeRecord_JSON(t *testing.T) {
	resume := types.NewStructuredResume(types.FormatFreeForm)
	rec := ResumeRecord{SourceFile: "hv.pdf", Format: resume.Format, Resume: resume}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"source_file":"hv.pdf"`)
	assert.Contains(t, string(data), `"format":"free_form"`)
	assert.NotContains(t, string(data), `"email"`)
}
