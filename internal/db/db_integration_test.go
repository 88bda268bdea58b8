//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

func setupTestDB(t *testing.T) *DB {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func TestBatchLifecycle_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	batchID, err := db.CreateBatch(ctx, "input")
	require.NoError(t, err)

	batch, err := db.GetBatch(ctx, batchID)
	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, BatchStatusRunning, batch.Status)
	assert.Nil(t, batch.CompletedAt)

	require.NoError(t, db.CompleteBatch(ctx, batchID, BatchStatusCompleted))
	batch, err = db.GetBatch(ctx, batchID)
	require.NoError(t, err)
	assert.Equal(t, BatchStatusCompleted, batch.Status)
	assert.NotNil(t, batch.CompletedAt)

	assert.Error(t, db.CompleteBatch(ctx, uuid.New(), BatchStatusCompleted))
}

func TestSaveResume_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	batchID, err := db.CreateBatch(ctx, "input")
	require.NoError(t, err)

	months := 8
	resume := types.NewStructuredResume(types.FormatFreeForm)
	resume.Contact.Email = "ana@correo.com"
	resume.Experience = []types.EmploymentRecord{
		{Company: "SULICOR SAS", Start: "2025-04", End: "2025-12", DurationMonths: &months, Responsibilities: []string{}},
	}
	resume.ComputeTotals()

	id, err := db.SaveResume(ctx, batchID, "ana.pdf", "abc123", resume)
	require.NoError(t, err)

	got, err := db.GetResume(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ana.pdf", got.SourceFile)
	assert.Equal(t, "ana@correo.com", got.Email)
	assert.Empty(t, got.Phone)
	assert.Equal(t, 1, got.EmploymentCount)
	assert.InDelta(t, 0.7, got.TotalExperienceYears, 0.001)
	require.Len(t, got.Resume.Experience, 1)
	assert.Equal(t, "SULICOR SAS", got.Resume.Experience[0].Company)

	// same source file replaces the row
	resume.Contact.Phone = "3105551234"
	again, err := db.SaveResume(ctx, batchID, "ana.pdf", "abc124", resume)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	list, err := db.ListResumes(ctx, batchID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "3105551234", list[0].Phone)

	missing, err := db.GetResume(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
