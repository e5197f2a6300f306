package s3_storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
)

const keyPrefix = "posts"

type Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

// ImageStore stores post cover images in an S3-compatible bucket and serves
// them through PublicBaseURL.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
	log     *logger.Logger
}

func New(cfg Config, log *logger.Logger) *ImageStore {
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &ImageStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		log:     log,
	}
}

// Upload writes the blob under posts/<uid>_<millis>_<uuid>_<name> so that
// concurrent uploads by different users never collide.
func (s *ImageStore) Upload(ctx context.Context, data []byte, suggestedName string, ownerUID string) (string, error) {
	key := fmt.Sprintf("%s/%s_%d_%s_%s",
		keyPrefix, ownerUID, time.Now().UnixMilli(), uuid.NewString(), path.Base(suggestedName))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		s.log.Error("Error uploading image",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return "", custom_errors.ErrImageUpload
	}

	return s.baseURL + "/" + key, nil
}

func (s *ImageStore) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		s.log.Warn("Image URL does not belong to this store", slog.String("url", url))
		return custom_errors.ErrImageDelete
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.log.Error("Error deleting image",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return custom_errors.ErrImageDelete
	}

	return nil
}

func (s *ImageStore) keyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return "", false
	}
	return strings.TrimPrefix(url, s.baseURL+"/"), true
}
