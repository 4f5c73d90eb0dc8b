package storage

import (
	"errors"
	"fmt"

	"github.com/BubsLB/airdropbreakdown/conf"
)

// Storage where the published dataset documents live
type Storage interface {
	Save(key string, data []byte) error
	Get(key string) ([]byte, error)
	Exists(key string) bool
}

var (
	ErrNotFound = errors.New("file not found")
	ErrInvalid  = errors.New("invalid storage configuration")
	ErrReadOnly = errors.New("storage is read-only")
)

// NewStorage create storage instance by global configuration
func NewStorage() (Storage, error) {
	return NewStorageFromConfig(conf.Cfg.Storage)
}

// NewStorageFromConfig create storage instance by storage configuration
func NewStorageFromConfig(cfg conf.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg.Local.BasePath)
	case "http":
		return NewHTTPStorage(cfg.HTTP.BaseUrl)
	case "oss":
		return NewOSSStorage(cfg.OSS)
	case "s3":
		return NewS3Storage(cfg.S3.Region, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket)
	case "minio":
		return NewMinIOStorage(cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket)
	default:
		return nil, fmt.Errorf("%w: unknown storage type %q", ErrInvalid, cfg.Type)
	}
}
