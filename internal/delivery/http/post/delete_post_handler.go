package post_http

import (
	"context"
	"errors"
	"net/http"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/delivery/http/response"
	"sionlog-blog-service/internal/logger"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, identity auth.Identity, id string) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         *logger.Logger
}

func NewDeletePostHandler(postService PostDeleter, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{postService: postService, log: log}
}

func (h *DeletePostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "bad_request",
			Message: "post id is required",
		})
		return
	}

	err := h.postService.DeletePost(r.Context(), auth.IdentityFrom(r.Context()), id)
	if err != nil {
		// The post record is gone; only the stored image lingers. Report
		// success with a warning instead of failing the delete.
		if errors.Is(err, custom_errors.ErrImageCleanup) {
			response.JSON(w, http.StatusOK, response.Payload{
				Success: true,
				Code:    "image_cleanup_failed",
				Message: "post deleted, but its image could not be removed",
			})
			return
		}
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Payload{Success: true})
}
