package profile_http

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

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, identity auth.Identity, update *model.UpdateProfileDTO) (*model.UserProfile, error)
}

type UpdateProfileHandler struct {
	profileService ProfileUpdater
	validate       *validator.Validate
	log            *logger.Logger
}

func NewUpdateProfileHandler(profileService ProfileUpdater, validate *validator.Validate, log *logger.Logger) *UpdateProfileHandler {
	return &UpdateProfileHandler{
		profileService: profileService,
		validate:       validate,
		log:            log,
	}
}

type updateProfileRequest struct {
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func (h *UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
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

	dto := &model.UpdateProfileDTO{
		Nickname: req.Nickname,
		Email:    req.Email,
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), auth.IdentityFrom(r.Context()), dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Payload{Success: true, Data: profile})
}
