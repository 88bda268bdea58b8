package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// Batch status values
const (
	BatchStatusRunning   = "running"
	BatchStatusCompleted = "completed"
	BatchStatusFailed    = "failed"
)

// IsValidBatchStatus reports whether status is a known batch status
func IsValidBatchStatus(status string) bool {
	switch status {
	case BatchStatusRunning, BatchStatusCompleted, BatchStatusFailed:
		return true
	}
	return false
}

// Batch represents one directory run
type Batch struct {
	ID          uuid.UUID  `json:"id"`
	InputDir    string     `json:"input_dir"`
	Status      string     `json:"status"`
	ResumeCount int        `json:"resume_count"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ResumeRecord is a stored resume plus the summary columns kept for querying
type ResumeRecord struct {
	ID                   uuid.UUID               `json:"id"`
	BatchID              uuid.UUID               `json:"batch_id"`
	SourceFile           string                  `json:"source_file"`
	SourceHash           string                  `json:"source_hash"`
	Format               types.Format            `json:"format"`
	Email                string                  `json:"email,omitempty"`
	Phone                string                  `json:"phone,omitempty"`
	EmploymentCount      int                     `json:"employment_count"`
	TotalExperienceYears float64                 `json:"total_experience_years"`
	Resume               *types.StructuredResume `json:"resume"`
	CreatedAt            time.Time               `json:"created_at"`
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS hv_batches (
    id           UUID PRIMARY KEY,
    input_dir    TEXT NOT NULL,
    status       TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS hv_resumes (
    id                     UUID PRIMARY KEY,
    batch_id               UUID NOT NULL REFERENCES hv_batches(id) ON DELETE CASCADE,
    source_file            TEXT NOT NULL,
    source_hash            TEXT NOT NULL,
    format                 TEXT NOT NULL,
    email                  TEXT,
    phone                  TEXT,
    employment_count       INTEGER NOT NULL,
    total_experience_years DOUBLE PRECISION NOT NULL,
    content                JSONB NOT NULL,
    created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (batch_id, source_file)
);

CREATE INDEX IF NOT EXISTS idx_hv_resumes_email ON hv_resumes (email);
`
