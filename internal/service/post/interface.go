package post_service

import (
	"context"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, identity auth.Identity, post *model.CreatePostDTO) (*model.Post, error)
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.Post, int, error)
	UpdatePost(ctx context.Context, identity auth.Identity, id string, update *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, identity auth.Identity, id string) error
	UploadImage(ctx context.Context, identity auth.Identity, data []byte, suggestedName string) (string, error)
}
