package config

import (
	"context"
	"errors"
	"fmt"

	"storages.dev/storages/logging"
	"storages.dev/storages/storage"
	"storages.dev/storages/storage/locations"
	"storages.dev/storages/storage/objstore"
	"storages.dev/storages/storage/photos"
)

// Config is the host configuration for the storages CLI. The zero values of
// Internal and Cache select persistent external storage.
type Config struct {
	AppName      string    `yaml:"app_name"`
	InternalRoot string    `yaml:"internal_root"`
	ExternalRoot string    `yaml:"external_root"`
	Internal     bool      `yaml:"internal"`
	Cache        bool      `yaml:"cache"`
	FileName     string    `yaml:"file_name"`
	Encoding     string    `yaml:"encoding"`
	PhotoNaming  string    `yaml:"photo_naming"`
	LogLevel     string    `yaml:"log_level"`
	S3           *S3Config `yaml:"s3"`
}

type S3Config struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UsePathStyle    bool   `yaml:"use_path_style"`
}

const (
	DefaultAppName  = "storages"
	DefaultFileName = "storage.txt"
	DefaultEncoding = "UTF-8"
)

func Default() *Config {
	return &Config{
		AppName:     DefaultAppName,
		FileName:    DefaultFileName,
		Encoding:    DefaultEncoding,
		PhotoNaming: "ksuid",
		LogLevel:    "info",
	}
}

func (c *Config) Validate() (err error) {
	if c.AppName == "" {
		err = errors.Join(err, fmt.Errorf("app_name is required"))
	}
	if c.FileName == "" {
		err = errors.Join(err, fmt.Errorf("file_name is required"))
	}
	if _, encErr := storage.LookupEncoding(c.Encoding); encErr != nil {
		err = errors.Join(err, encErr)
	}
	if _, nameErr := photos.NamerFor(c.PhotoNaming); nameErr != nil {
		err = errors.Join(err, nameErr)
	}
	if _, levelErr := logging.ParseLevel(c.LogLevel); levelErr != nil {
		err = errors.Join(err, levelErr)
	}
	if c.S3 != nil && (c.S3.AccessKeyID == "") != (c.S3.SecretAccessKey == "") {
		err = errors.Join(err, fmt.Errorf("s3 access_key_id and secret_access_key must be set together"))
	}
	return err
}

// StorageConfig returns the location selected by the Internal and Cache
// fields.
func (c *Config) StorageConfig() storage.StorageConfig {
	return storage.StorageConfig{
		Persistent: !c.Cache,
		Internal:   c.Internal,
	}
}

// Directories returns the host directories, defaulting the internal root to
// the user's config directory.
func (c *Config) Directories() (storage.HostDirectories, error) {
	if c.InternalRoot != "" {
		return storage.HostDirectories{
			InternalRoot: c.InternalRoot,
			ExternalRoot: c.ExternalRoot,
		}, nil
	}

	dirs, err := storage.DefaultHostDirectories(c.AppName)
	if err != nil {
		return storage.HostDirectories{}, err
	}
	dirs.ExternalRoot = c.ExternalRoot
	return dirs, nil
}

// UsesS3 reports whether any storage root is an S3 URI.
func (c *Config) UsesS3() bool {
	return locations.IsS3(c.InternalRoot) || locations.IsS3(c.ExternalRoot)
}

// NewS3Client creates a client from the s3 section, or from the default AWS
// configuration when the section is absent.
func (c *Config) NewS3Client(ctx context.Context) (objstore.S3Service, error) {
	var params objstore.ClientParams
	if c.S3 != nil {
		params = objstore.ClientParams{
			Region:          c.S3.Region,
			Endpoint:        c.S3.Endpoint,
			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
			UsePathStyle:    c.S3.UsePathStyle,
		}
	}
	return objstore.NewClient(ctx, params)
}
