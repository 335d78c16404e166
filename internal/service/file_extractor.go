package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/nguyenthenguyen/docx"
)

// FileExtractor parses real documents. Supported formats are dispatched on
// the file extension: PDF (go-fitz), DOCX and plain text.
type FileExtractor struct{}

func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

func (e *FileExtractor) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	type result struct {
		text string
		err  error
	}

	// Parsing runs off the request goroutine so ctx keeps its deadline
	// authority over the cgo call.
	ch := make(chan result, 1)
	go func() {
		text, err := e.extract(data, filename)
		ch <- result{text, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.text, r.err
	}
}

func (e *FileExtractor) extract(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	case ".txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
}

func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText bytes.Buffer
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		fullText.WriteString(pageText)
		fullText.WriteString("\n")
	}

	text := strings.TrimSpace(fullText.String())
	if text == "" {
		return "", fmt.Errorf("no text extracted from PDF (PDF might be empty or scanned)")
	}
	return text, nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
