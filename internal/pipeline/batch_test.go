package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/db"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

type fakeStore struct {
	mu        sync.Mutex
	createErr error
	batchID   uuid.UUID
	saved     map[string]string // source file -> hash
	status    string
}

func newFakeStore() *fakeStore {
	return &fakeStore{batchID: uuid.New(), saved: map[string]string{}}
}

func (f *fakeStore) CreateBatch(context.Context, string) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	return f.batchID, nil
}

func (f *fakeStore) SaveResume(_ context.Context, batchID uuid.UUID, sourceFile, sourceHash string, _ *types.StructuredResume) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if batchID != f.batchID {
		return uuid.Nil, errors.New("unknown batch")
	}
	f.saved[sourceFile] = sourceHash
	return uuid.New(), nil
}

func (f *fakeStore) CompleteBatch(_ context.Context, _ uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	return nil
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func setupBatchDirs(t *testing.T) (string, string) {
	t.Helper()
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "output")

	writeInput(t, in, "ana.txt", freeFormResume)
	writeInput(t, in, "formulario.txt", formalFormResume)
	writeInput(t, in, "vacio.txt", "   \n")
	writeInput(t, in, "notas.md", "no se procesa")
	require.NoError(t, os.Mkdir(filepath.Join(in, "sub.txt"), 0755))
	return in, out
}

func TestBatch_WritesOneJSONPerDocument(t *testing.T) {
	in, out := setupBatchDirs(t)

	var events []ProgressEvent
	var mu sync.Mutex
	result, err := NewStructurer(nil).Batch(context.Background(), BatchOptions{
		InputDir:  in,
		OutputDir: out,
		Workers:   2,
		OnProgress: func(e ProgressEvent) {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(out, "ana.json"),
		filepath.Join(out, "formulario.json"),
	}, result.Written)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "vacio.txt", result.Failed[0].File)
	assert.Len(t, events, 3)
	assert.NotEqual(t, uuid.Nil, result.BatchID)

	data, err := os.ReadFile(filepath.Join(out, "ana.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Contadora pública")

	var resume types.StructuredResume
	require.NoError(t, json.Unmarshal(data, &resume))
	assert.Equal(t, types.FormatFreeForm, resume.Format)
	assert.Equal(t, 2, resume.EmploymentCount)

	data, err = os.ReadFile(filepath.Join(out, "formulario.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &resume))
	assert.Equal(t, types.FormatFormalForm, resume.Format)

	_, err = os.Stat(filepath.Join(out, "notas.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestBatch_CleanRemovesOldOutput(t *testing.T) {
	in, out := setupBatchDirs(t)
	require.NoError(t, os.MkdirAll(out, 0755))
	writeInput(t, out, "viejo.json", "{}")

	_, err := NewStructurer(nil).Batch(context.Background(), BatchOptions{InputDir: in, OutputDir: out, Clean: true})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "viejo.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestBatch_KeepsOldOutputWithoutClean(t *testing.T) {
	in, out := setupBatchDirs(t)
	require.NoError(t, os.MkdirAll(out, 0755))
	writeInput(t, out, "viejo.json", "{}")

	_, err := NewStructurer(nil).Batch(context.Background(), BatchOptions{InputDir: in, OutputDir: out})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "viejo.json"))
	assert.NoError(t, err)
}

func TestBatch_SavesToStore(t *testing.T) {
	in, out := setupBatchDirs(t)
	store := newFakeStore()

	result, err := NewStructurer(nil).Batch(context.Background(), BatchOptions{
		InputDir:       in,
		OutputDir:      out,
		ValidateOutput: true,
		Store:          store,
	})
	require.NoError(t, err)

	assert.Equal(t, store.batchID, result.BatchID)
	assert.Len(t, store.saved, 2)
	assert.NotEmpty(t, store.saved["ana.txt"])
	assert.Equal(t, db.BatchStatusCompleted, store.status)
}

func TestBatch_StoreFailureIsNotFatal(t *testing.T) {
	in, out := setupBatchDirs(t)
	store := newFakeStore()
	store.createErr = errors.New("connection refused")

	result, err := NewStructurer(nil).Batch(context.Background(), BatchOptions{InputDir: in, OutputDir: out, Store: store})
	require.NoError(t, err)

	assert.Len(t, result.Written, 2)
	assert.Empty(t, store.saved)
	assert.Empty(t, store.status)
}

func TestBatch_AllFailedMarksBatchFailed(t *testing.T) {
	in := t.TempDir()
	writeInput(t, in, "vacio.txt", "")
	store := newFakeStore()

	result, err := NewStructurer(nil).Batch(context.Background(), BatchOptions{InputDir: in, OutputDir: t.TempDir(), Store: store})
	require.NoError(t, err)

	assert.Empty(t, result.Written)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, db.BatchStatusFailed, store.status)
}

func TestBatch_NoSupportedFiles(t *testing.T) {
	in := t.TempDir()
	writeInput(t, in, "foto.png", "x")

	result, err := NewStructurer(nil).Batch(context.Background(), BatchOptions{InputDir: in, OutputDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Written)
	assert.Empty(t, result.Failed)
}

func TestBatch_MissingInputDir(t *testing.T) {
	_, err := NewStructurer(nil).Batch(context.Background(), BatchOptions{
		InputDir:  filepath.Join(t.TempDir(), "no-existe"),
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input directory")
}

func TestBatch_Cancelled(t *testing.T) {
	in, out := setupBatchDirs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStructurer(nil).Batch(ctx, BatchOptions{InputDir: in, OutputDir: out})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "hv_ana.json"), OutputPath("out", "hv_ana.pdf"))
	assert.Equal(t, filepath.Join("out", "cv.v2.json"), OutputPath("out", "cv.v2.docx"))
}

func TestMarshalResume_KeepsAccents(t *testing.T) {
	resume := types.NewStructuredResume(types.FormatFreeForm)
	resume.ProfileSummary = "Contadora & auditora pública"

	data, err := MarshalResume(resume)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Contadora & auditora pública")
	assert.Contains(t, string(data), `    "experience": []`)
}
