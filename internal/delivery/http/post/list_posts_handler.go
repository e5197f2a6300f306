package post_http

import (
	"context"
	"net/http"
	"strconv"

	"sionlog-blog-service/internal/delivery/http/response"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.Post, int, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{postService: postService, log: log}
}

type listPostsResponse struct {
	Posts []*model.Post `json:"posts"`
	Total int           `json:"total"`
}

func (h *ListPostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filters := &model.PostFilters{}

	// An absent or empty category means all posts; anything else must be a
	// member of the closed category set.
	if raw := r.URL.Query().Get("category"); raw != "" {
		category := model.Category(raw)
		if err := category.IsValid(); err != nil {
			response.JSON(w, http.StatusBadRequest, response.Payload{
				Success: false,
				Code:    "validation_failed",
				Message: err.Error(),
			})
			return
		}
		filters.Category = &category
	}

	if raw := r.URL.Query().Get("author_id"); raw != "" {
		filters.AuthorID = &raw
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.JSON(w, http.StatusBadRequest, response.Payload{
				Success: false,
				Code:    "validation_failed",
				Message: "limit must be a non-negative integer",
			})
			return
		}
		filters.Limit = &limit
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			response.JSON(w, http.StatusBadRequest, response.Payload{
				Success: false,
				Code:    "validation_failed",
				Message: "offset must be a non-negative integer",
			})
			return
		}
		filters.Offset = &offset
	}

	posts, total, err := h.postService.ListPosts(r.Context(), filters)
	if err != nil {
		response.Error(w, err)
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}

	response.JSON(w, http.StatusOK, response.Payload{
		Success: true,
		Data:    listPostsResponse{Posts: posts, Total: total},
	})
}
