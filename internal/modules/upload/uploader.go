package upload

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/folio-space/core/internal/config"
)

const defaultKeyPrefix = "portfolio"

// Uploader stores project images in an S3 (or S3-compatible) bucket and
// hands back public URLs.
type Uploader struct {
	client *s3.Client
	cfg    config.S3Options
	prefix string
}

// NewUploader builds an uploader from static credentials. Returns nil when
// the bucket is not configured; the handler reports that as unavailable
// rather than failing at startup.
func NewUploader(cfg config.S3Options) *Uploader {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil
	}

	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		UsePathStyle: cfg.PathStyleAccess,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &Uploader{client: s3.New(opts), cfg: cfg, prefix: prefix}
}

// Put stores one object and returns its public URL.
func (u *Uploader) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return u.PublicURL(key), nil
}

// Delete removes one object by key.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

// Key builds a bucket key under the configured prefix.
func (u *Uploader) Key(name string) string {
	return u.prefix + "/" + name
}

// PublicURL resolves the browser-facing URL for a key.
func (u *Uploader) PublicURL(key string) string {
	if u.cfg.CustomDomain != "" {
		return fmt.Sprintf("https://%s/%s", strings.TrimSuffix(u.cfg.CustomDomain, "/"), key)
	}
	if u.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.cfg.Endpoint, "/"), u.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}
