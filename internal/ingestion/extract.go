package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// SupportedExtensions lists the lower-case file extensions ExtractText accepts
var SupportedExtensions = []string{".pdf", ".docx", ".doc", ".odt", ".rtf", ".txt"}

// IsSupported reports whether path has an extension ExtractText can read
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ExtractText reads the raw text of a resume file. PDFs go through a
// column-aware reader; office formats go through docconv.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx", ".doc", ".odt", ".rtf":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", &ExtractError{Path: path, Message: "failed to convert document", Cause: err}
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", &ExtractError{Path: path, Message: "file not found", Cause: err}
			}
			return "", &ExtractError{Path: path, Message: "failed to read file", Cause: err}
		}
		return string(content), nil
	default:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
}

func extractPDF(path string) (text string, err error) {
	// the pdf reader panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractError{Path: path, Message: "malformed pdf", Cause: fmt.Errorf("%v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractError{Path: path, Message: "failed to open pdf", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		words, werr := pageWords(p)
		if werr != nil || len(words) == 0 {
			plain, perr := p.GetPlainText(nil)
			if perr != nil {
				continue
			}
			b.WriteString(plain)
			b.WriteString("\n")
			continue
		}

		b.WriteString(layoutPage(words, pageWidth(p, words)))
		b.WriteString("\n")
	}

	return b.String(), nil
}

// pageWords merges the glyph runs of every row into positioned words
func pageWords(p pdf.Page) ([]word, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, err
	}

	var words []word
	for _, row := range rows {
		var cur *word
		var curEnd float64
		flush := func() {
			if cur != nil {
				words = append(words, *cur)
				cur = nil
			}
		}

		for _, t := range sortedByX(row.Content) {
			if strings.TrimSpace(t.S) == "" {
				flush()
				continue
			}
			if cur != nil && t.X-curEnd > t.FontSize*wordGapRatio {
				flush()
			}
			if cur == nil {
				cur = &word{X: t.X, Y: float64(row.Position)}
			}
			cur.S += t.S
			width := t.W
			if width <= 0 {
				width = t.FontSize * 0.5
			}
			curEnd = t.X + width
		}
		flush()
	}
	return words, nil
}

func pageWidth(p pdf.Page, words []word) float64 {
	if box := p.V.Key("MediaBox"); box.Len() == 4 {
		if w := box.Index(2).Float64() - box.Index(0).Float64(); w > 0 {
			return w
		}
	}
	return wordsExtent(words)
}
