package store

import (
	"encoding/json"

	"github.com/pagentum/pagentum/internal/model"
	pagerrors "github.com/pagentum/pagentum/pkg/errors"
)

// MemoryStore is an in-memory Adapter for tests. It round-trips the project
// through JSON so callers never share state with the stored copy, and it can
// be told to fail like a real slot.
type MemoryStore struct {
	data    []byte
	SaveErr error
	LoadErr error
}

// NewMemoryStore creates an empty in-memory slot.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores a detached copy of the project.
func (s *MemoryStore) Save(project *model.Project) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := json.Marshal(project)
	if err != nil {
		return pagerrors.NewStorageError(pagerrors.StorageUnavailable, "save", err)
	}
	s.data = data
	return nil
}

// Load returns a detached copy of the stored project, or (nil, nil) when the
// slot is empty.
func (s *MemoryStore) Load() (*model.Project, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.data == nil {
		return nil, nil
	}
	var project model.Project
	if err := json.Unmarshal(s.data, &project); err != nil {
		return nil, pagerrors.NewStorageError(pagerrors.StorageUnavailable, "load", err)
	}
	return &project, nil
}
