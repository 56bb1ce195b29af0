package locations

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"storages.dev/storages/storage/objstore"
)

type options struct {
	s3      objstore.S3Service
	private bool
}

type Option func(*options)

// WithS3Service sets the client used for s3:// paths instead of one built
// from the default AWS configuration.
func WithS3Service(svc objstore.S3Service) Option {
	return func(o *options) {
		o.s3 = svc
	}
}

// Private restricts local directories to the current user. It has no effect
// on S3 locations.
func Private() Option {
	return func(o *options) {
		o.private = true
	}
}

// New creates a StorageLocation type from the given path. Returns an
// S3Location if the path is an S3 URI, otherwise returns a local file
// system location.
func New(path string, opts ...Option) (StorageLocation, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if IsS3(path) {
		client := o.s3
		if client == nil {
			cfg, err := config.LoadDefaultConfig(context.Background())
			if err != nil {
				return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
			}
			client = s3.NewFromConfig(cfg)
		}
		return NewS3Location(client, path)
	}

	if o.private {
		return NewPrivateDirectory(path), nil
	}
	return NewLocalDirectory(path), nil
}
