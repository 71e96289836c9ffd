// Package docreader extracts plain text from uploaded resume documents.
package docreader

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrUnsupportedFormat is returned for files that are not PDF, DOCX or plain text.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrUnreadableDocument is returned when a document parses but yields no text,
	// or cannot be parsed at all (corrupt upload).
	ErrUnreadableDocument = errors.New("unable to extract text from document")
)

// Read extracts the text content of a document based on its file extension.
// The returned text is raw; callers run it through the extractor's cleaner.
func Read(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = readPDF(data)
	case ".docx":
		text, err = readDocx(data)
	case ".txt":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: file is empty or corrupted", ErrUnreadableDocument)
	}
	return text, nil
}

func readPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single bad page should not discard the rest of the resume.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func readDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
