package storage

import (
	"errors"
	"fmt"

	"storages.dev/storages/storage/locations"
)

var (
	// ErrUnavailable means the requested storage location cannot be used,
	// for example because removable media is absent.
	ErrUnavailable = errors.New("storage location unavailable")

	// ErrInvalidName means a file name is empty or would escape its directory.
	ErrInvalidName = errors.New("invalid file name")

	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = locations.ErrNotFound
)

// ConfigError reports that a StorageConfig could not be resolved to a usable
// location.
type ConfigError struct {
	Kind Kind
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s storage: %v", e.Kind, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IOError reports a failed create, read, write, remove or encode. The
// underlying cause is kept for errors.Is and errors.As.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a read of a file that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
