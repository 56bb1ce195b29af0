package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"storages.dev/storages/storage/locations"
)

// Kind identifies one of the four storage locations.
type Kind int

const (
	InternalFiles Kind = iota
	InternalCache
	ExternalFiles
	ExternalCache
)

// Kinds lists every Kind in declaration order.
var Kinds = []Kind{InternalFiles, InternalCache, ExternalFiles, ExternalCache}

func (k Kind) String() string {
	switch k {
	case InternalFiles:
		return "internal-persistent"
	case InternalCache:
		return "internal-cache"
	case ExternalFiles:
		return "external-persistent"
	case ExternalCache:
		return "external-cache"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) Internal() bool {
	return k == InternalFiles || k == InternalCache
}

func (k Kind) Persistent() bool {
	return k == InternalFiles || k == ExternalFiles
}

// StorageConfig selects a storage location for a single call.
type StorageConfig struct {
	Persistent bool
	Internal   bool
}

func (c StorageConfig) Kind() Kind {
	switch {
	case c.Internal && c.Persistent:
		return InternalFiles
	case c.Internal:
		return InternalCache
	case c.Persistent:
		return ExternalFiles
	default:
		return ExternalCache
	}
}

// ResolvedLocation is the directory and file name an operation acts on.
type ResolvedLocation struct {
	Directory string
	FileName  string
	Kind      Kind
}

// Path joins the directory and file name, keeping URI schemes intact.
func (l ResolvedLocation) Path() string {
	return locations.Join(l.Directory, l.FileName)
}

func (l ResolvedLocation) String() string {
	return l.Path()
}

// DirectoryProvider is supplied by the host environment. Each accessor
// returns the directory for one Kind or an error when that location is not
// available.
type DirectoryProvider interface {
	InternalFilesDir() (string, error)
	InternalCacheDir() (string, error)
	ExternalFilesDir() (string, error)
	ExternalCacheDir() (string, error)
}

// Resolver maps storage configurations to locations. It performs no file I/O
// of its own.
type Resolver struct {
	dirs DirectoryProvider
}

func NewResolver(dirs DirectoryProvider) *Resolver {
	return &Resolver{dirs: dirs}
}

// Resolve returns the location of fileName in the directory selected by
// config. Unavailable directories and invalid names yield a *ConfigError.
func (r *Resolver) Resolve(config StorageConfig, fileName string) (ResolvedLocation, error) {
	kind := config.Kind()
	if err := validateName(fileName); err != nil {
		return ResolvedLocation{}, &ConfigError{Kind: kind, Err: err}
	}

	dir, err := r.Directory(kind)
	if err != nil {
		return ResolvedLocation{}, err
	}

	return ResolvedLocation{
		Directory: dir,
		FileName:  fileName,
		Kind:      kind,
	}, nil
}

// Directory returns the directory for a single Kind.
func (r *Resolver) Directory(kind Kind) (string, error) {
	var (
		dir string
		err error
	)
	switch kind {
	case InternalFiles:
		dir, err = r.dirs.InternalFilesDir()
	case InternalCache:
		dir, err = r.dirs.InternalCacheDir()
	case ExternalFiles:
		dir, err = r.dirs.ExternalFilesDir()
	case ExternalCache:
		dir, err = r.dirs.ExternalCacheDir()
	default:
		return "", &ConfigError{Kind: kind, Err: fmt.Errorf("unknown storage kind")}
	}
	if err != nil {
		return "", &ConfigError{Kind: kind, Err: err}
	}
	if dir == "" {
		return "", &ConfigError{Kind: kind, Err: ErrUnavailable}
	}
	return dir, nil
}

// DirectoryStatus is one entry of Resolver.Directories.
type DirectoryStatus struct {
	Kind Kind
	Path string
	Err  error
}

// Directories reports every location and whether it is available.
func (r *Resolver) Directories() []DirectoryStatus {
	statuses := make([]DirectoryStatus, 0, len(Kinds))
	for _, kind := range Kinds {
		dir, err := r.Directory(kind)
		statuses = append(statuses, DirectoryStatus{Kind: kind, Path: dir, Err: err})
	}
	return statuses
}

func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}
