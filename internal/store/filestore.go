package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/pagentum/pagentum/internal/model"
	pagerrors "github.com/pagentum/pagentum/pkg/errors"
)

const (
	slotFileName  = "project.json"
	indexFileName = "projects.json"
)

// FileStore keeps the project slot and its index record as JSON files in one
// directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// SlotPath returns the path of the project slot file.
func (s *FileStore) SlotPath() string {
	return filepath.Join(s.dir, slotFileName)
}

// Save writes the project to the slot atomically and updates the index record
// for its id.
func (s *FileStore) Save(project *model.Project) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return pagerrors.NewStorageError(storageKind(err), "save", err)
	}

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return pagerrors.NewStorageError(pagerrors.StorageUnavailable, "save", err)
	}
	if err := writeAtomic(s.SlotPath(), data); err != nil {
		return pagerrors.NewStorageError(storageKind(err), "save", err)
	}

	if err := s.updateIndex(project); err != nil {
		return err
	}
	return nil
}

// Load reads the slot. An empty slot returns (nil, nil).
func (s *FileStore) Load() (*model.Project, error) {
	data, err := os.ReadFile(s.SlotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, pagerrors.NewStorageError(pagerrors.StorageUnavailable, "load", err)
	}

	var project model.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, pagerrors.NewStorageError(pagerrors.StorageUnavailable, "load", err)
	}
	return &project, nil
}

// Index returns the saved-project records, newest first by updatedAt.
func (s *FileStore) Index() ([]IndexEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, indexFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, pagerrors.NewStorageError(pagerrors.StorageUnavailable, "index", err)
	}

	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, pagerrors.NewStorageError(pagerrors.StorageUnavailable, "index", err)
	}
	return entries, nil
}

func (s *FileStore) updateIndex(project *model.Project) error {
	entries, err := s.Index()
	if err != nil {
		return err
	}

	entry := IndexEntry{ID: project.ID, Name: project.Name, UpdatedAt: project.UpdatedAt}
	replaced := false
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return pagerrors.NewStorageError(pagerrors.StorageUnavailable, "save", err)
	}
	if err := writeAtomic(filepath.Join(s.dir, indexFileName), data); err != nil {
		return pagerrors.NewStorageError(storageKind(err), "save", err)
	}
	return nil
}

// writeAtomic stages the payload in a temporary file and renames it into
// place, so a crash mid-write never leaves a truncated slot.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func storageKind(err error) pagerrors.StorageErrorKind {
	if errors.Is(err, syscall.ENOSPC) {
		return pagerrors.StorageFull
	}
	return pagerrors.StorageUnavailable
}
