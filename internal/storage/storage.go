// Package storage holds uploaded documents in an S3-compatible bucket and
// hands back public URLs the extractor can fetch.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	appconfig "forceskill/internal/config"
	"forceskill/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// Client wraps the S3 API for the uploads bucket.
type Client struct {
	s3Client  *s3.Client
	bucket    string
	publicURL string
}

// NewClient configures an S3 client against the storage endpoint. All
// settings come from config; static credentials, path-style addressing.
func NewClient(ctx context.Context, cfg appconfig.StorageConfig) (*Client, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("storage configuration is incomplete")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage SDK config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	logger.Get().Info("Storage client initialized", zap.String("bucket", cfg.Bucket))
	return &Client{
		s3Client:  s3Client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores the content under documents/<userID>/<courseID>/<filename>
// and returns the object's public URL.
func (c *Client) Upload(ctx context.Context, userID, courseID, filename string, content io.Reader) (string, error) {
	key := fmt.Sprintf("documents/%s/%s/%s", userID, courseID, filename)

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return c.PublicURL(key), nil
}

// PublicURL returns the publicly reachable URL for an object key.
func (c *Client) PublicURL(key string) string {
	return c.publicURL + "/" + key
}
