package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string, opts ...option.ClientOption) (*storage.Client, error) {
	if credsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credsPath))
	}
	return storage.NewClient(ctx, opts...)
}

// ImageStore uploads article images into one bucket.
type ImageStore struct {
	client *storage.Client
	bucket string
	// BaseURL replaces the public storage.googleapis.com host when set.
	BaseURL string
}

func NewImageStore(client *storage.Client, bucket string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket}
}

// Put stores r under a fresh object name and returns its public URL.
func (s *ImageStore) Put(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	objectPath := ObjectPath(uuid.NewString(), filename)
	wc := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return s.PublicURL(objectPath), nil
}

// ObjectPath builds articles/<id><ext> with a lowercased extension from filename.
func ObjectPath(id, filename string) string {
	return "articles/" + id + strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
}

// PublicURL builds a public URL for an object (assuming public read access or signed URLs)
func (s *ImageStore) PublicURL(objectPath string) string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/") + "/" + objectPath
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectPath)
}
