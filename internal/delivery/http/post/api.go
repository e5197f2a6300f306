package post_http

import (
	"github.com/go-playground/validator/v10"

	"sionlog-blog-service/internal/logger"
	post_service "sionlog-blog-service/internal/service/post"
)

var validate = validator.New()

// PostHTTPApi bundles the per-operation handlers for post routes.
type PostHTTPApi struct {
	CreatePost  *CreatePostHandler
	GetPost     *GetPostHandler
	ListPosts   *ListPostsHandler
	UpdatePost  *UpdatePostHandler
	DeletePost  *DeletePostHandler
	UploadImage *UploadImageHandler
}

func NewPostHTTPApi(postService post_service.Service, log *logger.Logger) *PostHTTPApi {
	return &PostHTTPApi{
		CreatePost:  NewCreatePostHandler(postService, validate, log),
		GetPost:     NewGetPostHandler(postService, log),
		ListPosts:   NewListPostsHandler(postService, log),
		UpdatePost:  NewUpdatePostHandler(postService, validate, log),
		DeletePost:  NewDeletePostHandler(postService, log),
		UploadImage: NewUploadImageHandler(postService, log),
	}
}
