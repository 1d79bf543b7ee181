package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pg-management-backend/internal/config"
	"pg-management-backend/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the subset of the S3 client used by S3Store
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes documents to an S3 (or S3-compatible) bucket
type S3Store struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

// NewS3Store creates a store over an existing client. baseURL prefixes returned URLs.
func NewS3Store(client ObjectPutter, bucket, baseURL string) *S3Store {
	return &S3Store{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// New returns an S3Store when a bucket is configured and a DisabledStore otherwise
func New(ctx context.Context, cfg *config.Config) (DocumentStore, error) {
	if cfg.S3Bucket == "" {
		logger.New().Warn("AWS_S3_BUCKET_NAME not set; document uploads are disabled")
		return DisabledStore{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.DocumentPublicBaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL(cfg.S3Bucket, cfg.AWSRegion, cfg.S3Endpoint)
	}
	return NewS3Store(client, cfg.S3Bucket, baseURL), nil
}

func defaultBaseURL(bucket, region, endpoint string) string {
	if endpoint != "" {
		return strings.TrimRight(endpoint, "/") + "/" + bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
}

// Put uploads body under key and returns its URL
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bucket": s.bucket,
		"key":    key,
		"size":   size,
	}).Info("document stored")

	return s.baseURL + "/" + key, nil
}
