// Package blob stores profile-image bytes in S3-compatible object storage.
// Only file metadata lives in PostgreSQL; the payload goes here.
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sunjoo-dev/movein-registry/internal/config"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
)

// ErrForeignObjectURL is returned by Delete for URLs that do not point into
// the configured bucket.
var ErrForeignObjectURL = errors.New("object URL does not belong to the configured bucket")

// StoredObject describes an uploaded object.
type StoredObject struct {
	// Key is the object key within the bucket, e.g.
	// "uploads/2026/08/27/3f1c...-e2.png".
	Key string
	// Name is the generated file name (last key segment).
	Name string
	// URL is the full endpoint-qualified object URL.
	URL string
	// Size is the payload length in bytes.
	Size int64
}

// ObjectStorage is the contract the user service depends on for profile
// images.
type ObjectStorage interface {
	// Upload stores data under a fresh date-partitioned key and returns the
	// stored object's coordinates. originalName is only used for its
	// extension.
	Upload(ctx context.Context, originalName string, data []byte) (StoredObject, error)

	// Delete removes a previously uploaded object by its URL.
	// Returns ErrForeignObjectURL for URLs outside the configured bucket.
	Delete(ctx context.Context, objectURL string) error
}

// s3Storage implements [ObjectStorage] on top of aws-sdk-go-v2. It works
// against AWS S3 as well as MinIO and other compatible stores via the base
// endpoint override.
type s3Storage struct {
	client    *s3.Client
	bucket    string
	urlPrefix string
	logger    *logger.Logger
}

// NewS3Storage builds the S3 client from static credentials and the
// configured endpoint.
func NewS3Storage(ctx context.Context, cfg config.S3, log *logger.Logger) (ObjectStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		log.Err(err).Str("func", "NewS3Storage").Msg("failed to load object storage config")
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &s3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		urlPrefix: strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket + "/",
		logger:    log,
	}, nil
}

func (s *s3Storage) Upload(ctx context.Context, originalName string, data []byte) (StoredObject, error) {
	log := logger.FromContext(ctx)

	name := uuid.NewString() + strings.ToLower(path.Ext(originalName))
	now := time.Now()
	key := fmt.Sprintf("uploads/%04d/%02d/%02d/%s", now.Year(), now.Month(), now.Day(), name)

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3Storage.Upload").Str("key", key).Msg("failed to upload object")
		return StoredObject{}, fmt.Errorf("failed to upload object: %w", err)
	}

	return StoredObject{
		Key:  key,
		Name: name,
		URL:  s.urlPrefix + key,
		Size: int64(len(data)),
	}, nil
}

func (s *s3Storage) Delete(ctx context.Context, objectURL string) error {
	log := logger.FromContext(ctx)

	key, ok := strings.CutPrefix(objectURL, s.urlPrefix)
	if !ok || key == "" {
		return ErrForeignObjectURL
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3Storage.Delete").Str("key", key).Msg("failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}
