package post_http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/delivery/http/response"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, identity auth.Identity, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type createPostRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Content  string  `json:"content" validate:"required"`
	Category string  `json:"category" validate:"required,oneof=Daily Game Hobby Project"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

func (h *CreatePostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "bad_request",
			Message: "invalid request body",
		})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "validation_failed",
			Message: err.Error(),
		})
		return
	}

	dto := &model.CreatePostDTO{
		Title:    req.Title,
		Content:  req.Content,
		Category: model.Category(req.Category),
		ImageURL: req.ImageURL,
	}

	post, err := h.postService.CreatePost(r.Context(), auth.IdentityFrom(r.Context()), dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Payload{Success: true, Data: post})
}
