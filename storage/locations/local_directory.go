package locations

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalDirectory stores files in a directory on the local file system. The
// directory is created on first write, never assumed to exist.
type LocalDirectory struct {
	Path     string
	dirMode  fs.FileMode
	fileMode fs.FileMode
}

func NewLocalDirectory(path string) *LocalDirectory {
	return &LocalDirectory{
		Path:     path,
		dirMode:  0o755,
		fileMode: 0o644,
	}
}

// NewPrivateDirectory creates a LocalDirectory whose directories and files are
// only accessible to the current user.
func NewPrivateDirectory(path string) *LocalDirectory {
	return &LocalDirectory{
		Path:     path,
		dirMode:  0o700,
		fileMode: 0o600,
	}
}

func (d *LocalDirectory) Write(fname string, reader io.Reader) (uri string, err error) {
	fullPath := d.fullPath(fname)
	if err := os.MkdirAll(filepath.Dir(fullPath), d.dirMode); err != nil {
		return "", fmt.Errorf("LocalDirectory.Write creating directory %s: %w", d.Path, err)
	}

	targetFile, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, d.fileMode)
	if err != nil {
		return "", fmt.Errorf("LocalDirectory.Write creating file %s: %w", fullPath, err)
	}
	defer func() {
		if closeErr := targetFile.Close(); closeErr != nil && err == nil {
			uri, err = "", fmt.Errorf("LocalDirectory.Write closing file %s: %w", fullPath, closeErr)
		}
	}()

	if _, err := io.Copy(targetFile, reader); err != nil {
		return "", fmt.Errorf("LocalDirectory.Write writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

func (d *LocalDirectory) Read(fname string) ([]byte, error) {
	return ReadLocalFile(d.fullPath(fname))
}

func (d *LocalDirectory) Ensure(fname string) (uri string, created bool, err error) {
	fullPath := d.fullPath(fname)
	if err := os.MkdirAll(filepath.Dir(fullPath), d.dirMode); err != nil {
		return "", false, fmt.Errorf("LocalDirectory.Ensure creating directory %s: %w", d.Path, err)
	}

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, d.fileMode)
	if errors.Is(err, fs.ErrExist) {
		return fullPath, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("LocalDirectory.Ensure creating file %s: %w", fullPath, err)
	}
	if err := f.Close(); err != nil {
		return "", false, fmt.Errorf("LocalDirectory.Ensure closing file %s: %w", fullPath, err)
	}
	return fullPath, true, nil
}

func (d *LocalDirectory) Remove(paths ...string) error {
	for _, path := range paths {
		fullPath := d.fullPath(path)
		err := os.Remove(fullPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("LocalDirectory.Remove removing file %s: %w", fullPath, err)
		}
	}
	return nil
}

func (d *LocalDirectory) URI(fname string) (string, error) {
	fullPath := d.fullPath(fname)
	_, err := os.Stat(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return fullPath, nil
}

// fullPath keeps absolute paths as they are and places relative ones under
// the directory.
func (d *LocalDirectory) fullPath(fname string) string {
	if filepath.IsAbs(fname) {
		return fname
	}
	return filepath.Join(d.Path, fname)
}

var _ StorageLocation = (*LocalDirectory)(nil)
