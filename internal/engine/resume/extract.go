// Package resume extracts text and skills from student resumes.
package resume

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

const maxResumeBytes = 10 * 1024 * 1024

// ExtractText pulls plain text out of a resume file. The parser is selected
// by file extension; .pdf and .docx get real parsers, anything else is
// treated as plain text.
func ExtractText(fileName string, data []byte) (string, error) {
	engine.IncrResumeParses()

	if len(data) == 0 {
		return "", fmt.Errorf("empty resume file")
	}
	if len(data) > maxResumeBytes {
		return "", fmt.Errorf("resume file too large (%d bytes)", len(data))
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return string(data), nil
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return b.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("docx contains no extractable text")
	}
	return stripDocxMarkup(content), nil
}

// stripDocxMarkup removes residual word-processing XML tags from extracted
// content.
func stripDocxMarkup(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
