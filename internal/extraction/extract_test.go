package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainTextVerbatim(t *testing.T) {
	content := "Experienced React and Node developer\nbuilt REST APIs with Docker\n"

	text, err := ExtractText([]byte(content), "cv.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtractText_PlainTextByExtensionOnly(t *testing.T) {
	text, err := ExtractText([]byte("hello"), "cv.txt", "")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractText_PlainTextWithCharsetParameter(t *testing.T) {
	text, err := ExtractText([]byte("hello"), "upload", "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"docx by extension", "cv.docx", ""},
		{"image by content type", "photo", "image/png"},
		{"no hints at all", "cv", ""},
		{"html", "cv.html", "text/html"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractText([]byte("data"), tc.filename, tc.contentType)
			var unsupported *UnsupportedFileTypeError
			require.ErrorAs(t, err, &unsupported)
		})
	}
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("%PDF-1.4 this is not a real pdf"), "cv.pdf", "application/pdf")

	var readErr *DocumentReadError
	require.ErrorAs(t, err, &readErr)

	// The two failure modes must stay distinguishable for the caller.
	var unsupported *UnsupportedFileTypeError
	assert.False(t, errors.As(err, &unsupported))
}

func TestExtractText_PDFByExtensionWithMissingContentType(t *testing.T) {
	_, err := ExtractText([]byte("garbage"), "cv.PDF", "")
	var readErr *DocumentReadError
	require.ErrorAs(t, err, &readErr)
}

func TestSlot_LastBegunWins(t *testing.T) {
	slot := NewSlot()

	first := slot.Begin()
	second := slot.Begin()

	// The superseded extraction publishes after the newer one began; its
	// result must be dropped.
	assert.True(t, second.Publish("newer"))
	assert.False(t, first.Publish("older"))
	assert.Equal(t, "newer", slot.Text())
}

func TestSlot_PublishOrderDoesNotMatter(t *testing.T) {
	slot := NewSlot()

	first := slot.Begin()
	second := slot.Begin()

	assert.False(t, first.Publish("older"))
	assert.True(t, second.Publish("newer"))
	assert.Equal(t, "newer", slot.Text())
}

func TestSlot_SingleExtraction(t *testing.T) {
	slot := NewSlot()
	e := slot.Begin()
	assert.True(t, e.Publish("only"))
	assert.Equal(t, "only", slot.Text())
}
