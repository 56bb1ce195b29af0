package storage_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"storages.dev/storages/storage/objstore"
)

// panickingS3 simulates a backend that faults instead of returning errors.
type panickingS3 struct{}

func (panickingS3) GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	panic("connection reset")
}

func (panickingS3) HeadObject(context.Context, *s3.HeadObjectInput, ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	panic("connection reset")
}

func (panickingS3) PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	panic("connection reset")
}

func (panickingS3) DeleteObject(context.Context, *s3.DeleteObjectInput, ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	panic("connection reset")
}

var _ objstore.S3Service = panickingS3{}
