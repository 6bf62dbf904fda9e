package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"time"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/odroffice/odr-go/config"
)

// FileStore persists uploaded files and returns a durable reference string.
// The core never inspects file contents.
type FileStore interface {
	UploadChangeFile(ctx context.Context, trackingNumber, changeID, filename string, r io.Reader, size int64, contentType string) (string, error)
	UploadRequirementFile(ctx context.Context, trackingNumber, requirementID, filename string, r io.Reader, size int64, contentType string) (string, error)
}

type MinioStore struct {
	client *minioSDK.Client
	bucket string
}

func NewMinioStore() *MinioStore {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}

	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:     credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure:    config.MinioUseSSL,
		Transport: transport,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}

	return &MinioStore{client: client, bucket: config.MinioBucket}
}

func (s *MinioStore) UploadChangeFile(ctx context.Context, trackingNumber, changeID, filename string, r io.Reader, size int64, contentType string) (string, error) {
	object := fmt.Sprintf("changes/CHANGE%s_%s_%d%s",
		trackingNumber, changeID, time.Now().Unix(), filepath.Ext(filename))
	return s.put(ctx, object, r, size, contentType)
}

func (s *MinioStore) UploadRequirementFile(ctx context.Context, trackingNumber, requirementID, filename string, r io.Reader, size int64, contentType string) (string, error) {
	object := fmt.Sprintf("%s/%s_%s", trackingNumber, requirementID, filepath.Base(filename))
	return s.put(ctx, object, r, size, contentType)
}

func (s *MinioStore) put(ctx context.Context, object string, r io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, object, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	scheme := "http"
	if config.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.MinioEndpoint, s.bucket, object), nil
}
