package locations

import (
	"path"
	"path/filepath"
	"strings"
)

// Join URIs together with "/". Go's joining utilities remove repeated slashes
// and don't work with schemes like "s3://". The first argument of Join can
// include a scheme. Paths without a scheme are joined with the OS separator.
func Join(base string, paths ...string) string {
	if len(paths) == 0 {
		return base
	}

	idx := strings.Index(base, "://")
	if idx == -1 {
		return filepath.Join(append([]string{base}, paths...)...)
	}

	scheme, rest := base[:idx+3], base[idx+3:]
	return scheme + path.Join(rest, path.Join(paths...))
}

// IsS3 reports whether the path is an S3 URI.
func IsS3(path string) bool {
	return strings.HasPrefix(path, "s3://")
}
