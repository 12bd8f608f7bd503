package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownTemplateErrorNamesTemplate(t *testing.T) {
	t.Parallel()

	err := NewUnknownTemplateError("hero-99")

	var templateErr *UnknownTemplateError
	require.ErrorAs(t, err, &templateErr)
	require.Equal(t, "hero-99", templateErr.TemplateID)
	require.Contains(t, err.Error(), "hero-99")
}

func TestInvalidFormatErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected end of JSON input")
	err := NewInvalidFormatError("sections", "missing required field", underlying)

	var formatErr *InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "sections", formatErr.Field)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "sections")
}

func TestStorageErrorCarriesKind(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no space left on device")
	err := NewStorageError(StorageFull, "save", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, StorageFull, storageErr.Kind)
	require.Equal(t, "save", storageErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestFileReadErrorIncludesPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewFileReadError("/tmp/project.json", underlying)

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	require.Equal(t, "/tmp/project.json", readErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestParseErrorIncludesSource(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := NewParseError("catalog.yaml", underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "catalog.yaml")
}
