package locations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"storages.dev/storages/storage/objstore"
)

// ReadFile reads a whole file from a local path or an s3:// URI.
func ReadFile(path string) ([]byte, error) {
	if IsS3(path) {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}

		return ReadS3File(s3.NewFromConfig(cfg), path)
	}
	return ReadLocalFile(path)
}

func ReadLocalFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("opening file %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

func ReadS3File(s3Client objstore.S3Service, path string) ([]byte, error) {
	// Remove s3:// prefix if present
	path = strings.TrimPrefix(path, "s3://")

	// Split into bucket and key
	parts := strings.SplitN(path, "/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return nil, fmt.Errorf("invalid S3 path, must include bucket and key: %s", path)
	}

	loc, err := NewS3Location(s3Client, parts[0])
	if err != nil {
		return nil, err
	}
	return loc.Read(parts[1])
}
