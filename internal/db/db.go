// Package db persists structured resumes and batch runs in PostgreSQL.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the batch and resume tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// CreateBatch records the start of a batch over inputDir and returns its ID
func (db *DB) CreateBatch(ctx context.Context, inputDir string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO hv_batches (id, input_dir, status) VALUES ($1, $2, $3)`,
		id, inputDir, BatchStatusRunning,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create batch: %w", err)
	}
	return id, nil
}

// CompleteBatch sets the final status of a batch
func (db *DB) CompleteBatch(ctx context.Context, batchID uuid.UUID, status string) error {
	if !IsValidBatchStatus(status) {
		return fmt.Errorf("invalid batch status: %q", status)
	}
	result, err := db.pool.Exec(ctx,
		`UPDATE hv_batches SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, batchID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete batch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("batch not found: %s", batchID)
	}
	return nil
}

// GetBatch retrieves a batch by ID. It returns nil when the batch does not exist.
func (db *DB) GetBatch(ctx context.Context, batchID uuid.UUID) (*Batch, error) {
	var b Batch
	err := db.pool.QueryRow(ctx,
		`SELECT b.id, b.input_dir, b.status, b.created_at, b.completed_at,
		        (SELECT COUNT(*) FROM hv_resumes r WHERE r.batch_id = b.id)
		 FROM hv_batches b WHERE b.id = $1`,
		batchID,
	).Scan(&b.ID, &b.InputDir, &b.Status, &b.CreatedAt, &b.CompletedAt, &b.ResumeCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	return &b, nil
}

// SaveResume stores one structured resume. A resume with the same batch and
// source file replaces the previous one.
func (db *DB) SaveResume(ctx context.Context, batchID uuid.UUID, sourceFile, sourceHash string, resume *types.StructuredResume) (uuid.UUID, error) {
	if resume == nil {
		return uuid.Nil, fmt.Errorf("resume is nil")
	}
	content, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO hv_resumes (id, batch_id, source_file, source_hash, format, email, phone,
		                         employment_count, total_experience_years, content)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (batch_id, source_file) DO UPDATE SET
		     source_hash = EXCLUDED.source_hash,
		     format = EXCLUDED.format,
		     email = EXCLUDED.email,
		     phone = EXCLUDED.phone,
		     employment_count = EXCLUDED.employment_count,
		     total_experience_years = EXCLUDED.total_experience_years,
		     content = EXCLUDED.content,
		     created_at = NOW()
		 RETURNING id`,
		uuid.New(), batchID, sourceFile, sourceHash, string(resume.Format),
		nullIfEmpty(resume.Contact.Email), nullIfEmpty(resume.Contact.Phone),
		resume.EmploymentCount, resume.TotalExperienceYears, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume %s: %w", sourceFile, err)
	}
	return id, nil
}

// GetResume retrieves a stored resume by ID. It returns nil when it does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM hv_resumes WHERE id = $1`, id)

	rec, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return rec, nil
}

// ListResumes retrieves every resume of a batch ordered by source file
func (db *DB) ListResumes(ctx context.Context, batchID uuid.UUID) ([]ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM hv_resumes WHERE batch_id = $1 ORDER BY source_file`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	records := []ResumeRecord{}
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return records, nil
}

const resumeColumns = `id, batch_id, source_file, source_hash, format, COALESCE(email, ''), COALESCE(phone, ''),
	employment_count, total_experience_years, content, created_at`

func scanResume(row pgx.Row) (*ResumeRecord, error) {
	var rec ResumeRecord
	var format string
	var content []byte
	err := row.Scan(&rec.ID, &rec.BatchID, &rec.SourceFile, &rec.SourceHash, &format,
		&rec.Email, &rec.Phone, &rec.EmploymentCount, &rec.TotalExperienceYears, &content, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.Format = types.Format(format)

	var resume types.StructuredResume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume content: %w", err)
	}
	rec.Resume = &resume
	return &rec, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
