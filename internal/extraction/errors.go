package extraction

import "fmt"

// UnsupportedFileTypeError indicates the uploaded file is neither a PDF
// nor plain text. Recoverable: the caller should ask for another file.
type UnsupportedFileTypeError struct {
	Filename    string
	ContentType string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type for %q (content type %q): only PDF and plain text are accepted", e.Filename, e.ContentType)
}

// DocumentReadError indicates a file that claimed to be a valid document
// could not be parsed. Distinct from UnsupportedFileTypeError so the
// caller can show a different message.
type DocumentReadError struct {
	Filename string
	Cause    error
}

func (e *DocumentReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not read document %q: %v", e.Filename, e.Cause)
	}
	return fmt.Sprintf("could not read document %q", e.Filename)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Cause
}
