package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/BubsLB/airdropbreakdown/conf"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStorage dataset documents in an Aliyun OSS bucket
type OSSStorage struct {
	bucket *oss.Bucket
}

// NewOSSStorage connect to the bucket named in cfg
func NewOSSStorage(cfg conf.OSSStorageConfig) (*OSSStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: oss endpoint, credentials and bucket are required", ErrInvalid)
	}

	client, err := oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create oss client for %s: %w", cfg.Endpoint, err)
	}
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open oss bucket %s: %w", cfg.Bucket, err)
	}
	return &OSSStorage{bucket: bucket}, nil
}

// Save publish the document as JSON, replacing any previous version
func (s *OSSStorage) Save(key string, data []byte) error {
	if err := s.bucket.PutObject(key, bytes.NewReader(data),
		oss.ContentType("application/json"),
		oss.CacheControl("no-cache"),
	); err != nil {
		return fmt.Errorf("failed to publish %s to oss: %w", key, err)
	}
	return nil
}

func (s *OSSStorage) Get(key string) ([]byte, error) {
	body, err := s.bucket.GetObject(key)
	if isOSSNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from oss: %w", key, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from oss: %w", key, err)
	}
	return data, nil
}

// Exists errors count as absent
func (s *OSSStorage) Exists(key string) bool {
	ok, err := s.bucket.IsObjectExist(key)
	return err == nil && ok
}

func isOSSNotFound(err error) bool {
	var serviceErr oss.ServiceError
	return errors.As(err, &serviceErr) && serviceErr.StatusCode == http.StatusNotFound
}
