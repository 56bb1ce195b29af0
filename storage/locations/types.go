package locations

import (
	"errors"
	"io"
)

// StorageLocation is a directory-like place that holds files. Paths given to
// its methods are names relative to the location, although Read, Remove and
// URI also accept the full URIs returned by Write and Ensure.
type StorageLocation interface {
	// Write data to the given file path, replacing any existing content. The
	// returned URI represents the full path to this file.
	Write(path string, data io.Reader) (uri string, err error)
	// Read returns the whole file content or ErrNotFound.
	Read(path string) ([]byte, error)
	// Ensure creates an empty file if none exists yet. Created reports whether
	// a file was made by this call.
	Ensure(path string) (uri string, created bool, err error)
	// Remove deletes files. Missing files are not an error.
	Remove(paths ...string) error
	// URI returns the full URI of an existing file or ErrNotFound.
	URI(path string) (string, error)
}

var ErrNotFound = errors.New("path not found")
