package cache

import (
	"context"

	"sionlog-blog-service/internal/model"
)

// PostCache is a read-through cache over single posts and category-keyed post
// lists. Get methods return custom_errors.ErrCacheMiss when the key is absent.
//
// List entries are keyed by category only (the category set is closed), so
// InvalidatePostLists can drop the full set of list keys on any write.
//
//go:generate mockery --name PostCache --dir . --output ../../mocks --outpkg mocks --with-expecter --filename PostCache.go
type PostCache interface {
	GetPost(ctx context.Context, id string) (*model.Post, error)
	SetPost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id string) error
	GetPostList(ctx context.Context, category *model.Category) ([]*model.Post, int, error)
	SetPostList(ctx context.Context, category *model.Category, posts []*model.Post, total int) error
	InvalidatePostLists(ctx context.Context) error
}
