package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hv.txt")
	require.NoError(t, os.WriteFile(path, []byte("PERFIL\nContador público"), 0644))

	text, err := ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "PERFIL\nContador público", text)
}

func TestExtractText_FileNotFound(t *testing.T) {
	_, err := ExtractText("/nonexistent/hv.txt")

	require.Error(t, err)
	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Contains(t, err.Error(), "file not found")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText("hv.xlsx")

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".xlsx", unsupported.Extension)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("a/b/HOJA_DE_VIDA.PDF"))
	assert.True(t, IsSupported("hv.docx"))
	assert.True(t, IsSupported("hv.txt"))
	assert.False(t, IsSupported("hv.png"))
	assert.False(t, IsSupported("sin_extension"))
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hv.txt")
	require.NoError(t, os.WriteFile(path, []byte("  PERFIL  \n\n\n\nContador   público"), 0644))

	doc, err := LoadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "PERFIL\n\nContador público", doc.Cleaned)
	assert.False(t, doc.IsEmpty())
	require.NotNil(t, doc.Metadata)
	assert.Equal(t, path, doc.Metadata.Source)
	assert.Equal(t, ".txt", doc.Metadata.Extension)
	assert.Len(t, doc.Metadata.Hash, 64)
}

func TestNewDocument_EmptyText(t *testing.T) {
	doc := NewDocument("   ")
	assert.True(t, doc.IsEmpty())
	assert.Equal(t, "   ", doc.Raw)
}

func TestMetadata_HashIsStable(t *testing.T) {
	a := NewMetadata("contenido", "")
	b := NewMetadata("contenido", "")
	c := NewMetadata("otro contenido", "")

	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.Hash, c.Hash)
	assert.Empty(t, a.Extension)

	out, err := a.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"hash"`)
}
