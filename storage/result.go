package storage

import (
	"errors"
	"fmt"
)

// OperationResult is the outcome of every FileStore and Service call. Failures
// are carried in Err rather than returned separately so callers can hand the
// whole result to whatever presents it.
type OperationResult struct {
	Success bool
	// Err is a *ConfigError, *IOError or *NotFoundError when Success is false.
	Err error
	// URI is the full path of the file the operation acted on.
	URI string
	// Data holds the content returned by reads.
	Data []byte
}

// ErrorMessage returns a human-readable description of the failure, or an
// empty string for successful results.
func (r OperationResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Text returns Data as a string.
func (r OperationResult) Text() string {
	return string(r.Data)
}

func succeeded(uri string, data []byte) OperationResult {
	return OperationResult{Success: true, URI: uri, Data: data}
}

// Failed converts any error into a failed result. Errors that are not already
// one of the package's error types are classified as an IOError for op on
// path.
func Failed(op, path string, err error) OperationResult {
	if err == nil {
		err = errors.New("unknown failure")
	}

	var (
		configErr   *ConfigError
		ioErr       *IOError
		notFoundErr *NotFoundError
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &ioErr), errors.As(err, &notFoundErr):
	case errors.Is(err, ErrNotFound):
		err = &NotFoundError{Path: path}
	default:
		err = &IOError{Op: op, Path: path, Err: err}
	}
	return OperationResult{Success: false, Err: err, URI: path}
}

// recovered turns a panic value into an error.
func recovered(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
