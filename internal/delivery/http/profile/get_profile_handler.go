package profile_http

import (
	"context"
	"net/http"

	"sionlog-blog-service/internal/delivery/http/response"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
)

type ProfileGetter interface {
	GetProfile(ctx context.Context, uid string) (*model.UserProfile, error)
}

type GetProfileHandler struct {
	profileService ProfileGetter
	log            *logger.Logger
}

func NewGetProfileHandler(profileService ProfileGetter, log *logger.Logger) *GetProfileHandler {
	return &GetProfileHandler{profileService: profileService, log: log}
}

func (h *GetProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	if uid == "" {
		response.JSON(w, http.StatusBadRequest, response.Payload{
			Success: false,
			Code:    "bad_request",
			Message: "uid is required",
		})
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), uid)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Payload{Success: true, Data: profile})
}
