package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/abhishek-0203/neural-thread-couture/internal/config"
)

var ErrNotConfigured = errors.New("storage: bucket not configured")

// Uploader pushes processed chat and portfolio images to S3 (or any
// S3-compatible endpoint) under uuid keys.
type Uploader struct {
	client   *s3.Client
	bucket   string
	endpoint string
	region   string
}

func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return &Uploader{}
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: strings.TrimSuffix(cfg.S3Endpoint, "/"),
		region:   cfg.S3Region,
	}
}

func (u *Uploader) Enabled() bool {
	return u.client != nil
}

// UploadImage converts the upload to webp and stores it under the given
// prefix ("chat-images", "portfolio"). Returns the public object URL.
func (u *Uploader) UploadImage(ctx context.Context, prefix string, r io.Reader) (string, error) {
	if u.client == nil {
		return "", ErrNotConfigured
	}

	body, err := processImage(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return u.objectURL(key), nil
}

func (u *Uploader) objectURL(key string) string {
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
