// Package storage keeps uploaded document files on disk. Names passed in
// are flat file names inside the upload directory.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var ErrInvalidName = errors.New("invalid stored file name")

// FileStorage is what the document use case needs from a file store.
type FileStorage interface {
	Save(name string, content io.Reader) (int64, error)
	Open(name string) (afero.File, error)
	Remove(name string) error
}

type LocalStorage struct {
	fs afero.Fs
}

// NewLocalStorage roots the storage at dir on the OS filesystem, creating the
// directory when missing.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return NewStorage(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

func NewStorage(fs afero.Fs) *LocalStorage {
	return &LocalStorage{fs: fs}
}

func (s *LocalStorage) Save(name string, content io.Reader) (int64, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}

	file, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, err
	}

	size, err := io.Copy(file, content)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		s.fs.Remove(name)
		return 0, err
	}

	return size, nil
}

func (s *LocalStorage) Open(name string) (afero.File, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return s.fs.Open(name)
}

// Remove deletes the file; a file that is already gone is not an error.
func (s *LocalStorage) Remove(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}
