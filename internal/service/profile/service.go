package profile_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/metrics"
	"sionlog-blog-service/internal/model"
	profile_repository "sionlog-blog-service/internal/repository/profile"
)

// ProfileService owns the nickname policy: nicknames are trimmed and must be
// non-empty. Identity-to-profile ownership is structural, a caller can only
// ever write the profile of its own identity.
type ProfileService struct {
	profileRepo profile_repository.Repository
	log         *logger.Logger
	metrics     metrics.Provider
}

func NewProfileService(
	profileRepo profile_repository.Repository,
	log *logger.Logger,
	metrics metrics.Provider,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		log:         log,
		metrics:     metrics,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, uid string) (*model.UserProfile, error) {
	profile, err := s.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, custom_errors.ErrProfileNotFound) {
			s.log.Debug("Profile not found", slog.String("uid", uid))
			return nil, custom_errors.ErrProfileNotFound
		}
		s.log.Error("Failed to get profile", slog.String("uid", uid), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return profile, nil
}

func (s *ProfileService) SetProfile(ctx context.Context, identity auth.Identity, nickname, email string) (*model.UserProfile, error) {
	if err := auth.RequireAuthenticated(identity); err != nil {
		s.log.Debug("Set profile attempted without authentication")
		return nil, err
	}

	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, custom_errors.ErrNicknameEmpty
	}

	profile, err := s.profileRepo.Upsert(ctx, &model.UserProfile{
		UID:      string(identity),
		Nickname: nickname,
		Email:    email,
	})
	if err != nil {
		s.log.Error("Failed to set profile",
			slog.String("uid", string(identity)),
			slog.String("error", err.Error()))
		s.metrics.IncrementProfileOperations("set", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementProfileOperations("set", true)
	return profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, identity auth.Identity, update *model.UpdateProfileDTO) (*model.UserProfile, error) {
	if err := auth.RequireAuthenticated(identity); err != nil {
		s.log.Debug("Update profile attempted without authentication")
		return nil, err
	}

	if update.Nickname != nil {
		nickname := strings.TrimSpace(*update.Nickname)
		if nickname == "" {
			return nil, custom_errors.ErrNicknameEmpty
		}
		update.Nickname = &nickname
	}

	profile, err := s.profileRepo.Update(ctx, string(identity), update)
	if err != nil {
		if errors.Is(err, custom_errors.ErrProfileNotFound) {
			s.log.Debug("Profile not found for update", slog.String("uid", string(identity)))
			return nil, custom_errors.ErrProfileNotFound
		}
		s.log.Error("Failed to update profile",
			slog.String("uid", string(identity)),
			slog.String("error", err.Error()))
		s.metrics.IncrementProfileOperations("update", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementProfileOperations("update", true)
	return profile, nil
}
