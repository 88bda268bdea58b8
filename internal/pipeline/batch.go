package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/db"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/ingestion"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/schemas"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// DefaultWorkers is used when BatchOptions.Workers is not positive
const DefaultWorkers = 4

// ProgressEvent represents a progress update during a batch
type ProgressEvent struct {
	BatchID string `json:"batch_id"`
	File    string `json:"file"`
	Status  string `json:"status"` // "written" or "failed"
	Message string `json:"message"`
}

// ProgressCallback is called once per finished file. It may be called from
// several goroutines at once.
type ProgressCallback func(event ProgressEvent)

// ResumeStore persists batch results. *db.DB implements it.
type ResumeStore interface {
	CreateBatch(ctx context.Context, inputDir string) (uuid.UUID, error)
	SaveResume(ctx context.Context, batchID uuid.UUID, sourceFile, sourceHash string, resume *types.StructuredResume) (uuid.UUID, error)
	CompleteBatch(ctx context.Context, batchID uuid.UUID, status string) error
}

// BatchOptions holds configuration for running a batch
type BatchOptions struct {
	InputDir       string
	OutputDir      string
	Workers        int
	Clean          bool // remove existing files from OutputDir first
	ValidateOutput bool // reject results that do not match the schema
	Store          ResumeStore
	OnProgress     ProgressCallback
}

// FileError records a document that could not be structured
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

// BatchResult summarizes a finished batch
type BatchResult struct {
	BatchID uuid.UUID
	Written []string // output paths, sorted
	Failed  []FileError
}

// Batch structures every supported file of opts.InputDir and writes one
// <name>.json per document to opts.OutputDir. Documents are independent: a
// document that fails is logged and reported in the result, and the others
// carry on. Only setup errors and cancellation are returned.
func (s *Structurer) Batch(ctx context.Context, opts BatchOptions) (*BatchResult, error) {
	files, err := listInputFiles(opts.InputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if opts.Clean {
		if err := cleanOutputDir(opts.OutputDir); err != nil {
			return nil, err
		}
	}

	result := &BatchResult{BatchID: uuid.New(), Written: []string{}, Failed: []FileError{}}
	store := opts.Store
	if store != nil {
		id, err := store.CreateBatch(ctx, opts.InputDir)
		if err != nil {
			log.Printf("[BATCH] Warning: failed to record batch, continuing without database: %v", err)
			store = nil
		} else {
			result.BatchID = id
		}
	}

	if len(files) == 0 {
		log.Printf("[BATCH] No supported files found in %s", opts.InputDir)
		completeBatch(ctx, store, result)
		return result, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	log.Printf("[BATCH] %s: processing %d file(s) with %d worker(s)", result.BatchID, len(files), workers)

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, name := range files {
		name := name
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			outPath, err := s.processFile(gCtx, opts, store, result.BatchID, name)

			mu.Lock()
			defer mu.Unlock()
			event := ProgressEvent{BatchID: result.BatchID.String(), File: name}
			if err != nil {
				log.Printf("[BATCH] %s: failed: %v", name, err)
				result.Failed = append(result.Failed, FileError{File: name, Err: err})
				event.Status, event.Message = "failed", err.Error()
			} else {
				result.Written = append(result.Written, outPath)
				event.Status, event.Message = "written", outPath
			}
			if opts.OnProgress != nil {
				opts.OnProgress(event)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if store != nil {
			_ = store.CompleteBatch(context.WithoutCancel(ctx), result.BatchID, db.BatchStatusFailed)
		}
		return result, fmt.Errorf("batch cancelled: %w", err)
	}

	sort.Strings(result.Written)
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].File < result.Failed[j].File })

	completeBatch(ctx, store, result)
	log.Printf("[BATCH] Done: %d written, %d failed. Results in %s", len(result.Written), len(result.Failed), opts.OutputDir)
	return result, nil
}

// processFile structures one document and writes its JSON output
func (s *Structurer) processFile(ctx context.Context, opts BatchOptions, store ResumeStore, batchID uuid.UUID, name string) (string, error) {
	doc, err := ingestion.LoadDocument(filepath.Join(opts.InputDir, name))
	if err != nil {
		return "", err
	}
	if doc.IsEmpty() {
		return "", fmt.Errorf("no text could be extracted")
	}

	resume := s.ProcessDocument(ctx, doc)
	if opts.ValidateOutput {
		if err := schemas.ValidateResume(resume); err != nil {
			return "", fmt.Errorf("output failed schema validation: %w", err)
		}
	}

	outPath := OutputPath(opts.OutputDir, name)
	if err := WriteResume(outPath, resume); err != nil {
		return "", err
	}
	log.Printf("[BATCH] %s: %d job(s), %.1f years of experience", name, resume.EmploymentCount, resume.TotalExperienceYears)

	if store != nil {
		if _, err := store.SaveResume(ctx, batchID, name, doc.Metadata.Hash, resume); err != nil {
			log.Printf("[BATCH] Warning: failed to save %s to database: %v", name, err)
		}
	}
	return outPath, nil
}

// OutputPath returns the JSON path for an input file name
func OutputPath(outputDir, inputName string) string {
	base := filepath.Base(inputName)
	return filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".json")
}

// MarshalResume renders a resume as indented JSON with non-ASCII text kept as is
func MarshalResume(resume *types.StructuredResume) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(resume); err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteResume writes a resume as JSON to path
func WriteResume(path string, resume *types.StructuredResume) error {
	data, err := MarshalResume(resume)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// listInputFiles returns the supported regular files of dir, sorted by name
func listInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	files := []string{}
	for _, e := range entries {
		if e.Type().IsRegular() && ingestion.IsSupported(e.Name()) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// cleanOutputDir removes the regular files of dir, leaving subdirectories
func cleanOutputDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read output directory: %w", err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("failed to clean output directory: %w", err)
		}
	}
	return nil
}

func completeBatch(ctx context.Context, store ResumeStore, result *BatchResult) {
	if store == nil {
		return
	}
	status := db.BatchStatusCompleted
	if len(result.Written) == 0 && len(result.Failed) > 0 {
		status = db.BatchStatusFailed
	}
	if err := store.CompleteBatch(ctx, result.BatchID, status); err != nil {
		log.Printf("[BATCH] Warning: failed to complete batch: %v", err)
	}
}
