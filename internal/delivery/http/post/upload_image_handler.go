package post_http

import (
	"context"
	"io"
	"net/http"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/delivery/http/response"
	"sionlog-blog-service/internal/logger"
)

const maxImageSize = 10 << 20 // 10 MB

type ImageUploader interface {
	UploadImage(ctx context.Context, identity auth.Identity, data []byte, suggestedName string) (string, error)
}

type UploadImageHandler struct {
	postService ImageUploader
	log         *logger.Logger
}

func NewUploadImageHandler(postService ImageUploader, log *logger.Logger) *UploadImageHandler {
	return &UploadImageHandler{postService: postService, log: log}
}

type uploadImageResponse struct {
	URL string `json:"url"`
}

func (h *UploadImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "bad_request",
			Message: "invalid upload form",
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "bad_request",
			Message: "image file is required",
		})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "bad_request",
			Message: "failed to read image",
		})
		return
	}

	url, err := h.postService.UploadImage(r.Context(), auth.IdentityFrom(r.Context()), data, header.Filename)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Payload{
		Success: true,
		Data:    uploadImageResponse{URL: url},
	})
}
