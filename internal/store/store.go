// Package store persists the single project slot and handles project JSON
// import/export. Storage failures are always surfaced, never swallowed: they
// represent loss-of-data risk.
package store

import (
	"os"

	"github.com/pagentum/pagentum/internal/model"
	pagerrors "github.com/pagentum/pagentum/pkg/errors"
)

// Adapter is the persistence seam. Implementations operate on one fixed slot;
// Load returns (nil, nil) when the slot is empty.
type Adapter interface {
	Save(project *model.Project) error
	Load() (*model.Project, error)
}

// IndexEntry is the side record kept per saved project, consumed by
// collaborators that list past projects.
type IndexEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UpdatedAt int64  `json:"updatedAt"`
}

// ReadFile performs the single-shot read used for image uploads and JSON
// import. Failures surface as FileReadError and produce no partial state.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pagerrors.NewFileReadError(path, err)
	}
	return data, nil
}
