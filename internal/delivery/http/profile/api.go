package profile_http

import (
	"github.com/go-playground/validator/v10"

	"sionlog-blog-service/internal/logger"
	profile_service "sionlog-blog-service/internal/service/profile"
)

var validate = validator.New()

// ProfileHTTPApi bundles the per-operation handlers for profile routes.
type ProfileHTTPApi struct {
	GetProfile    *GetProfileHandler
	SetProfile    *SetProfileHandler
	UpdateProfile *UpdateProfileHandler
}

func NewProfileHTTPApi(profileService profile_service.Service, log *logger.Logger) *ProfileHTTPApi {
	return &ProfileHTTPApi{
		GetProfile:    NewGetProfileHandler(profileService, log),
		SetProfile:    NewSetProfileHandler(profileService, validate, log),
		UpdateProfile: NewUpdateProfileHandler(profileService, validate, log),
	}
}
