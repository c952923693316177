package schema

import "errors"

var (
	// ErrReadFile is returned when a document file cannot be read.
	ErrReadFile = errors.New("failed to read document file")

	// ErrDecode is returned when content is not valid for its format.
	ErrDecode = errors.New("failed to decode document")

	// ErrEmptyDocument is returned when a descriptor document holds no value.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrMultipleDocuments is returned when a descriptor stream holds more than one document.
	ErrMultipleDocuments = errors.New("expected a single document")

	// ErrUnsupportedFormat is returned for an unknown Format value.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
