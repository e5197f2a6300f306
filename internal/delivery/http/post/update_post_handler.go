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

type PostUpdater interface {
	UpdatePost(ctx context.Context, identity auth.Identity, id string, update *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
	log         *logger.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate, log *logger.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type updatePostRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Content  *string `json:"content"`
	Category *string `json:"category" validate:"omitempty,oneof=Daily Game Hobby Project"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

func (h *UpdatePostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "bad_request",
			Message: "post id is required",
		})
		return
	}

	var req updatePostRequest
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

	dto := &model.UpdatePostDTO{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if req.Category != nil {
		category := model.Category(*req.Category)
		dto.Category = &category
	}

	post, err := h.postService.UpdatePost(r.Context(), auth.IdentityFrom(r.Context()), id, dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Payload{Success: true, Data: post})
}
