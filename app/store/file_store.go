package store

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"inkwell/app/models"
)

// FileStore keeps the collection as a single JSON document on disk.
// Saves go through a temp file and a rename, so a reader never sees a
// half-written collection.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path, creating
// the parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &models.StorageError{Op: "init", Err: err}
	}
	return &FileStore{path: path}, nil
}

// Load reads the persisted collection. A missing file means an empty
// collection; so does an unreadable one, which is logged and skipped
// rather than treated as fatal.
func (s *FileStore) Load() ([]models.Post, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Post{}, nil
	}
	if err != nil {
		return nil, &models.StorageError{Op: "load", Err: err}
	}

	posts, err := decodePosts(data)
	if err != nil {
		log.Printf("Ignoring unreadable post data in %s: %v", s.path, err)
		return []models.Post{}, nil
	}
	return posts, nil
}

// Save replaces the persisted collection.
func (s *FileStore) Save(posts []models.Post) error {
	data, err := encodePosts(posts)
	if err != nil {
		return &models.StorageError{Op: "save", Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".posts-*.json")
	if err != nil {
		return &models.StorageError{Op: "save", Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &models.StorageError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &models.StorageError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &models.StorageError{Op: "save", Err: err}
	}
	return nil
}

// Close is a no-op; the file is not held open between operations.
func (s *FileStore) Close() error {
	return nil
}
