package storage

import (
	"bufio"
	"bytes"
	"log/slog"
	"strings"

	"storages.dev/storages/storage/locations"
	"storages.dev/storages/storage/objstore"
)

// FileStore performs single-shot file operations on resolved locations. It
// holds no per-file state and is safe for concurrent use, though concurrent
// writers to the same location race at the file system.
type FileStore struct {
	s3  objstore.S3Service
	log *slog.Logger
}

type Option func(*FileStore)

// WithS3Service sets the client for locations under an s3:// root.
func WithS3Service(svc objstore.S3Service) Option {
	return func(s *FileStore) {
		s.s3 = svc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *FileStore) {
		s.log = logger
	}
}

func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.With("instanceID", "filestore")
	}
	return s
}

// EnsureFile creates an empty file at loc if none exists. An existing file is
// left untouched.
func (s *FileStore) EnsureFile(loc ResolvedLocation) OperationResult {
	return s.run("ensure", loc, func(dir locations.StorageLocation) OperationResult {
		uri, created, err := dir.Ensure(loc.FileName)
		if err != nil {
			return Failed("ensure", loc.Path(), err)
		}
		s.log.Debug("ensured file", "path", uri, "created", created)
		return succeeded(uri, nil)
	})
}

// WriteText replaces the content of loc with text in the configured encoding.
// Invalid UTF-8 in text is written as the encoding's replacement character
// rather than rejected. Runes the encoding cannot represent fail with an
// "encode" IOError.
func (s *FileStore) WriteText(loc ResolvedLocation, text string, opts ...TextOption) OperationResult {
	o := newTextOptions(opts)
	encoded, err := o.encoding.NewEncoder().Bytes([]byte(text))
	if err != nil {
		result := Failed("encode", loc.Path(), err)
		s.logResult("write-text", loc, result)
		return result
	}
	return s.write("write-text", loc, encoded)
}

// ReadText decodes loc and returns its lines joined by "\n". Line terminators
// are "\n", "\r\n" or a lone "\r", and a trailing terminator is not part of
// the result.
func (s *FileStore) ReadText(loc ResolvedLocation, opts ...TextOption) OperationResult {
	o := newTextOptions(opts)
	return s.run("read-text", loc, func(dir locations.StorageLocation) OperationResult {
		data, err := dir.Read(loc.FileName)
		if err != nil {
			return Failed("read", loc.Path(), err)
		}
		bytesRead.Add(len(data))

		decoded, err := o.encoding.NewDecoder().Bytes(data)
		if err != nil {
			return Failed("decode", loc.Path(), err)
		}

		lines, err := splitLines(decoded)
		if err != nil {
			return Failed("read", loc.Path(), err)
		}
		return succeeded(loc.Path(), []byte(strings.Join(lines, "\n")))
	})
}

// WriteBinary replaces the content of loc with data.
func (s *FileStore) WriteBinary(loc ResolvedLocation, data []byte) OperationResult {
	return s.write("write-binary", loc, data)
}

// ReadBinary returns the raw content of loc.
func (s *FileStore) ReadBinary(loc ResolvedLocation) OperationResult {
	return s.run("read-binary", loc, func(dir locations.StorageLocation) OperationResult {
		data, err := dir.Read(loc.FileName)
		if err != nil {
			return Failed("read", loc.Path(), err)
		}
		bytesRead.Add(len(data))
		return succeeded(loc.Path(), data)
	})
}

// Remove deletes the file at loc. Removing a missing file succeeds.
func (s *FileStore) Remove(loc ResolvedLocation) OperationResult {
	return s.run("remove", loc, func(dir locations.StorageLocation) OperationResult {
		if err := dir.Remove(loc.FileName); err != nil {
			return Failed("remove", loc.Path(), err)
		}
		return succeeded(loc.Path(), nil)
	})
}

func (s *FileStore) write(op string, loc ResolvedLocation, data []byte) OperationResult {
	return s.run(op, loc, func(dir locations.StorageLocation) OperationResult {
		uri, err := dir.Write(loc.FileName, bytes.NewReader(data))
		if err != nil {
			return Failed("write", loc.Path(), err)
		}
		bytesWritten.Add(len(data))
		return succeeded(uri, nil)
	})
}

// run opens the location's directory, calls fn and converts any panic into a
// failed result so that no fault leaves the FileStore.
func (s *FileStore) run(op string, loc ResolvedLocation, fn func(dir locations.StorageLocation) OperationResult) (result OperationResult) {
	defer func() {
		if v := recover(); v != nil {
			result = Failed(op, loc.Path(), recovered(v))
		}
		s.logResult(op, loc, result)
	}()

	if err := validateName(loc.FileName); err != nil {
		return Failed("open", loc.Path(), &ConfigError{Kind: loc.Kind, Err: err})
	}
	dir, err := s.open(loc)
	if err != nil {
		return Failed("open", loc.Path(), err)
	}
	return fn(dir)
}

func (s *FileStore) open(loc ResolvedLocation) (locations.StorageLocation, error) {
	var opts []locations.Option
	if s.s3 != nil {
		opts = append(opts, locations.WithS3Service(s.s3))
	}
	if loc.Kind.Internal() {
		opts = append(opts, locations.Private())
	}
	return locations.New(loc.Directory, opts...)
}

func (s *FileStore) logResult(op string, loc ResolvedLocation, result OperationResult) {
	recordOperation(op, result)
	if result.Success {
		s.log.Debug("operation succeeded", "op", op, "location", loc.Kind, "path", loc.Path())
		return
	}
	s.log.Warn("operation failed", "op", op, "location", loc.Kind, "path", loc.Path(), "error", result.Err)
}

// splitLines splits data into lines ended by "\n", "\r\n" or a lone "\r".
func splitLines(data []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	// The whole file is already in memory so no line can exceed its length.
	scanner.Buffer(make([]byte, 0, 4096), len(data)+1)
	scanner.Split(scanLines)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// scanLines is bufio.ScanLines extended to treat a lone "\r" as a terminator.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// A "\r" at the end of the buffer may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
