package storage

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/imroc/req"
)

// HTTPStorage read-only storage backed by a static file origin (CDN, pages host)
type HTTPStorage struct {
	baseUrl string
	client  *req.Req
}

// NewHTTPStorage create HTTP storage instance
func NewHTTPStorage(baseUrl string) (*HTTPStorage, error) {
	if baseUrl == "" {
		return nil, ErrInvalid
	}

	return &HTTPStorage{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		client:  req.New(),
	}, nil
}

func (s *HTTPStorage) url(key string) string {
	return s.baseUrl + "/" + strings.TrimLeft(key, "/")
}

// Save documents are published out of band
func (s *HTTPStorage) Save(key string, data []byte) error {
	return ErrReadOnly
}

// Get fetch file, any non-2xx status is an error
func (s *HTTPStorage) Get(key string) ([]byte, error) {
	resp, err := s.client.Get(s.url(key))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
	}

	statusCode := resp.Response().StatusCode
	if statusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", key, statusCode)
	}

	data, err := resp.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// Exists check if file exists on the origin
func (s *HTTPStorage) Exists(key string) bool {
	resp, err := s.client.Head(s.url(key))
	if err != nil {
		return false
	}
	statusCode := resp.Response().StatusCode
	return statusCode >= 200 && statusCode < 300
}
