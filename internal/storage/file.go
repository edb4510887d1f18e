package storage

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "duke/internal/errors"
	"duke/internal/logging"
)

// FileStore keeps lines in a newline-delimited flat file.
type FileStore struct {
	path    string
	dirPerm os.FileMode
}

// NewFileStore creates a store backed by the file at path. The parent
// directory is created with dirPerm on first write.
func NewFileStore(path string, dirPerm os.FileMode) *FileStore {
	return &FileStore{path: path, dirPerm: dirPerm}
}

// Path returns the file location
func (s *FileStore) Path() string {
	return s.path
}

// ReadLines reads every line of the file
func (s *FileStore) ReadLines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("read tasks", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, apperrors.NewPersistenceError("read tasks", err).WithContext("path", s.path)
	}

	// no per-line limit: an oversized record is left to the decoder
	var lines []string
	if len(data) > 0 {
		lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}

	logging.Debugf("read %d lines from %s\n", len(lines), s.path)
	return lines, nil
}

// WriteLines replaces the file contents. The data goes to a temporary file in
// the same directory which is synced and renamed over the destination, so a
// crash never leaves a truncated file behind.
func (s *FileStore) WriteLines(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("write tasks", err)
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := writeFileAtomic(s.path, buf.Bytes(), 0644, s.dirPerm); err != nil {
		return apperrors.NewPersistenceError("write tasks", err).WithContext("path", s.path)
	}

	logging.Debugf("wrote %d lines to %s\n", len(lines), s.path)
	return nil
}

// Close is a no-op for files
func (s *FileStore) Close() error {
	return nil
}

func writeFileAtomic(path string, data []byte, perm, dirPerm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
