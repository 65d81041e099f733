// Package extraction converts uploaded CV files (PDF or plain text) into
// raw text for the analyzer.
package extraction

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeText = "text/plain"
)

// ExtractText converts the file contents to plain text. The file kind is
// decided by content type first, filename extension second. PDF pages
// are processed in ascending page order; the text runs of one page are
// joined with single spaces and pages are joined with newlines, with no
// layout reconstruction. Plain text is returned verbatim.
//
// The function is pure over its inputs: it mutates no shared state, so a
// failed extraction leaves nothing behind.
func ExtractText(data []byte, filename, contentType string) (string, error) {
	switch {
	case isPDF(filename, contentType):
		return extractPDF(data, filename)
	case isPlainText(filename, contentType):
		return string(data), nil
	default:
		return "", &UnsupportedFileTypeError{Filename: filename, ContentType: contentType}
	}
}

func isPDF(filename, contentType string) bool {
	if strings.EqualFold(mediaType(contentType), mimePDF) {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

func isPlainText(filename, contentType string) bool {
	if strings.EqualFold(mediaType(contentType), mimeText) {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".txt")
}

// mediaType strips any parameters ("text/plain; charset=utf-8") from a
// content type header value.
func mediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(contentType)
}

func extractPDF(data []byte, filename string) (text string, err error) {
	// The pdf parser panics on some malformed content streams instead of
	// returning an error; fold those into DocumentReadError.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &DocumentReadError{Filename: filename, Cause: fmt.Errorf("pdf parser panic: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentReadError{Filename: filename, Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		for j, run := range content.Text {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(run.S)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
