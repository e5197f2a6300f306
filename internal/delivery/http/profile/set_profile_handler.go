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

type ProfileSetter interface {
	SetProfile(ctx context.Context, identity auth.Identity, nickname, email string) (*model.UserProfile, error)
}

type SetProfileHandler struct {
	profileService ProfileSetter
	validate       *validator.Validate
	log            *logger.Logger
}

func NewSetProfileHandler(profileService ProfileSetter, validate *validator.Validate, log *logger.Logger) *SetProfileHandler {
	return &SetProfileHandler{
		profileService: profileService,
		validate:       validate,
		log:            log,
	}
}

type setProfileRequest struct {
	Nickname string `json:"nickname" validate:"required,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (h *SetProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req setProfileRequest
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

	profile, err := h.profileService.SetProfile(r.Context(), auth.IdentityFrom(r.Context()), req.Nickname, req.Email)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Payload{Success: true, Data: profile})
}
