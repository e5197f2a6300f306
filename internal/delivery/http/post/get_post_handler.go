package post_http

import (
	"context"
	"net/http"

	"sionlog-blog-service/internal/delivery/http/response"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{postService: postService, log: log}
}

func (h *GetPostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "bad_request",
			Message: "post id is required",
		})
		return
	}

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Payload{Success: true, Data: post})
}
