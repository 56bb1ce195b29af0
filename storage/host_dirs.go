package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"storages.dev/storages/storage/locations"
)

const (
	filesDirName    = "files"
	cacheDirName    = "cache"
	picturesDirName = "Pictures"
)

// HostDirectories provides the four storage directories from two roots. Each
// root holds a "files" directory for persistent data and a "cache" directory
// for data the host may evict.
type HostDirectories struct {
	// InternalRoot is private to the application.
	InternalRoot string
	// ExternalRoot is shared storage. It may be an s3:// URI. A local
	// ExternalRoot must already exist, the way a mounted volume does; an empty
	// one means there is no external storage.
	ExternalRoot string
}

// DefaultHostDirectories places the internal root in the user's config
// directory and leaves external storage unset.
func DefaultHostDirectories(app string) (HostDirectories, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return HostDirectories{}, fmt.Errorf("locating user config directory: %w", err)
	}
	return HostDirectories{InternalRoot: filepath.Join(configDir, app)}, nil
}

func (h HostDirectories) InternalFilesDir() (string, error) {
	return h.internal(filesDirName)
}

func (h HostDirectories) InternalCacheDir() (string, error) {
	return h.internal(cacheDirName)
}

func (h HostDirectories) ExternalFilesDir() (string, error) {
	return h.external(filesDirName)
}

func (h HostDirectories) ExternalCacheDir() (string, error) {
	return h.external(cacheDirName)
}

// NamedDir is an application-private directory beside files and cache.
func (h HostDirectories) NamedDir(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	return h.internal(name)
}

// PicturesDir is the pictures directory inside external persistent storage.
func (h HostDirectories) PicturesDir() (string, error) {
	dir, err := h.ExternalFilesDir()
	if err != nil {
		return "", err
	}
	return locations.Join(dir, picturesDirName), nil
}

func (h HostDirectories) internal(sub string) (string, error) {
	if h.InternalRoot == "" {
		return "", fmt.Errorf("%w: no internal root configured", ErrUnavailable)
	}
	return locations.Join(h.InternalRoot, sub), nil
}

func (h HostDirectories) external(sub string) (string, error) {
	if h.ExternalRoot == "" {
		return "", fmt.Errorf("%w: no external root configured", ErrUnavailable)
	}
	if locations.IsS3(h.ExternalRoot) {
		return locations.Join(h.ExternalRoot, sub), nil
	}

	info, err := os.Stat(h.ExternalRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrUnavailable, h.ExternalRoot)
	}
	return locations.Join(h.ExternalRoot, sub), nil
}

var _ DirectoryProvider = HostDirectories{}
