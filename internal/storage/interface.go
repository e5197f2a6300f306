package storage

import "context"

// ImageStore persists binary image blobs and hands back durable public URLs.
// No retry policy is built in; callers decide whether a failed upload is
// retried.
//
//go:generate mockery --name ImageStore --dir . --output ../../mocks --outpkg mocks --with-expecter --filename ImageStore.go
type ImageStore interface {
	// Upload stores the blob under a collision-resistant key derived from
	// the owner, the current time and the suggested name, and returns the
	// public URL of the stored object.
	Upload(ctx context.Context, data []byte, suggestedName string, ownerUID string) (string, error)

	// Delete removes the object a previously returned URL points at.
	Delete(ctx context.Context, url string) error
}
