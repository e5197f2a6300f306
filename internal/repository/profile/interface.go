package profile_repository

import (
	"context"

	"sionlog-blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename ProfileRepository.go
type Repository interface {
	GetByUID(ctx context.Context, uid string) (*model.UserProfile, error)
	// Upsert creates the profile or overwrites nickname and email of an
	// existing one, preserving the original created_at.
	Upsert(ctx context.Context, profile *model.UserProfile) (*model.UserProfile, error)
	Update(ctx context.Context, uid string, update *model.UpdateProfileDTO) (*model.UserProfile, error)
}
