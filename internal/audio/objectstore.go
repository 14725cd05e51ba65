package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ObjectStore talks to the hosted bucket over its REST API.
type ObjectStore struct {
	baseURL string
	key     string
	bucket  string
	client  *http.Client
}

func NewObjectStore(baseURL, serviceKey, bucket string, client *http.Client) *ObjectStore {
	if client == nil {
		client = &http.Client{}
	}
	return &ObjectStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     serviceKey,
		bucket:  bucket,
		client:  client,
	}
}

func (s *ObjectStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(s.bucket), escapeKey(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("apikey", s.key)
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("object store returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return s.PublicURL(key), nil
}

func (s *ObjectStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, url.PathEscape(s.bucket), escapeKey(key))
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
