package profile_service

import (
	"context"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename ProfileService.go
type Service interface {
	GetProfile(ctx context.Context, uid string) (*model.UserProfile, error)
	SetProfile(ctx context.Context, identity auth.Identity, nickname, email string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, identity auth.Identity, update *model.UpdateProfileDTO) (*model.UserProfile, error)
}
