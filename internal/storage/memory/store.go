package memory

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"sionlog-blog-service/internal/custom_errors"
)

// ImageStore keeps blobs in memory, keyed by the URLs it hands out.
type ImageStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewImageStore() *ImageStore {
	return &ImageStore{objects: make(map[string][]byte)}
}

func (s *ImageStore) Upload(ctx context.Context, data []byte, suggestedName string, ownerUID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	url := fmt.Sprintf("memory://posts/%s_%d_%s_%s",
		ownerUID, time.Now().UnixMilli(), uuid.NewString(), path.Base(suggestedName))

	blob := make([]byte, len(data))
	copy(blob, data)
	s.objects[url] = blob

	return url, nil
}

func (s *ImageStore) Delete(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[url]; !exists {
		return custom_errors.ErrImageDelete
	}
	delete(s.objects, url)
	return nil
}

// Has reports whether a blob is still stored under the URL.
func (s *ImageStore) Has(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.objects[url]
	return exists
}
