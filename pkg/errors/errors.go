package errors

import (
	"fmt"
)

// UnknownTemplateError signals a reference to a template id that is not in the
// catalog. Rendering paths recover from it locally; section creation surfaces it.
type UnknownTemplateError struct {
	TemplateID string
}

// NewUnknownTemplateError constructs an UnknownTemplateError.
func NewUnknownTemplateError(templateID string) error {
	return &UnknownTemplateError{TemplateID: templateID}
}

func (e *UnknownTemplateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown template: %q", e.TemplateID)
}

// InvalidFormatError captures a malformed imported project payload.
type InvalidFormatError struct {
	Field   string
	Message string
	Err     error
}

// NewInvalidFormatError constructs an InvalidFormatError.
func NewInvalidFormatError(field, message string, err error) error {
	return &InvalidFormatError{Field: field, Message: message, Err: err}
}

func (e *InvalidFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid project format: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid project format: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *InvalidFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageErrorKind distinguishes persistence failure modes.
type StorageErrorKind string

const (
	// StorageFull indicates the storage slot rejected a write for lack of space.
	StorageFull StorageErrorKind = "full"
	// StorageUnavailable indicates the storage slot could not be reached at all.
	StorageUnavailable StorageErrorKind = "unavailable"
)

// StorageError represents a persistence-layer failure. It is always surfaced to
// the caller, never swallowed.
type StorageError struct {
	Kind StorageErrorKind
	Op   string
	Err  error
}

// NewStorageError constructs a StorageError for the given operation.
func NewStorageError(kind StorageErrorKind, op string, err error) error {
	return &StorageError{Kind: kind, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("storage %s during %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FileReadError represents a failed single-shot file read (image upload, JSON
// import). No partial project state results from it.
type FileReadError struct {
	Path string
	Err  error
}

// NewFileReadError constructs a FileReadError.
func NewFileReadError(path string, err error) error {
	return &FileReadError{Path: path, Err: err}
}

func (e *FileReadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FileReadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a failure decoding embedded catalog or theme data.
type ParseError struct {
	Source  string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
