package objstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MeteredS3Service records every request made through the wrapped service in
// Usage. Deletes are free in S3 and are not counted.
type MeteredS3Service struct {
	wrapped S3Service
	Usage   *S3Usage
}

func NewMeteredS3Service(wrapped S3Service) *MeteredS3Service {
	return &MeteredS3Service{
		wrapped: wrapped,
		Usage:   &S3Usage{},
	}
}

func (m *MeteredS3Service) GetObject(ctx context.Context, input *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.Usage.AddCheapRequest()
	return m.wrapped.GetObject(ctx, input, optFns...)
}

func (m *MeteredS3Service) HeadObject(ctx context.Context, input *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	m.Usage.AddCheapRequest()
	return m.wrapped.HeadObject(ctx, input, optFns...)
}

func (m *MeteredS3Service) PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.Usage.AddExpensiveRequest()
	return m.wrapped.PutObject(ctx, input, optFns...)
}

func (m *MeteredS3Service) DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	return m.wrapped.DeleteObject(ctx, input, optFns...)
}

var _ S3Service = (*MeteredS3Service)(nil)
