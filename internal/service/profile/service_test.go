package profile_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/metrics/noop"
	"sionlog-blog-service/internal/model"
	profile_service "sionlog-blog-service/internal/service/profile"
	"sionlog-blog-service/mocks"
)

func setupProfileServiceTest(t *testing.T) (*profile_service.ProfileService, *mocks.ProfileRepository) {
	t.Helper()
	profileRepo := mocks.NewProfileRepository(t)
	log := logger.New("test")
	service := profile_service.NewProfileService(profileRepo, log, noop.NewProvider())
	return service, profileRepo
}

func TestProfileService_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		service, profileRepo := setupProfileServiceTest(t)

		profileRepo.On("GetByUID", mock.Anything, "u1").
			Return(&model.UserProfile{UID: "u1", Nickname: "Sion"}, nil)

		got, err := service.GetProfile(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, "Sion", got.Nickname)
	})

	t.Run("not found", func(t *testing.T) {
		service, profileRepo := setupProfileServiceTest(t)

		profileRepo.On("GetByUID", mock.Anything, "missing").
			Return(nil, custom_errors.ErrProfileNotFound)

		got, err := service.GetProfile(context.Background(), "missing")

		assert.ErrorIs(t, err, custom_errors.ErrProfileNotFound)
		assert.Nil(t, got)
	})
}

func TestProfileService_SetProfile(t *testing.T) {
	t.Run("nickname is trimmed and stored under own uid", func(t *testing.T) {
		service, profileRepo := setupProfileServiceTest(t)

		profileRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *model.UserProfile) bool {
			return p.UID == "u1" && p.Nickname == "Sion"
		})).Return(&model.UserProfile{UID: "u1", Nickname: "Sion"}, nil)

		got, err := service.SetProfile(context.Background(), "u1", "  Sion  ", "sion@example.com")

		require.NoError(t, err)
		assert.Equal(t, "Sion", got.Nickname)
	})

	t.Run("blank nickname is rejected", func(t *testing.T) {
		service, profileRepo := setupProfileServiceTest(t)

		_, err := service.SetProfile(context.Background(), "u1", "   ", "sion@example.com")

		assert.ErrorIs(t, err, custom_errors.ErrNicknameEmpty)
		profileRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("unauthenticated caller is rejected", func(t *testing.T) {
		service, profileRepo := setupProfileServiceTest(t)

		_, err := service.SetProfile(context.Background(), "", "Sion", "sion@example.com")

		assert.ErrorIs(t, err, custom_errors.ErrUnauthenticated)
		profileRepo.AssertNotCalled(t, "Upsert")
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	t.Run("partial update trims nickname", func(t *testing.T) {
		service, profileRepo := setupProfileServiceTest(t)

		profileRepo.On("Update", mock.Anything, "u1", mock.MatchedBy(func(u *model.UpdateProfileDTO) bool {
			return u.Nickname != nil && *u.Nickname == "Sion"
		})).Return(&model.UserProfile{UID: "u1", Nickname: "Sion"}, nil)

		nickname := "  Sion  "
		got, err := service.UpdateProfile(context.Background(), "u1", &model.UpdateProfileDTO{Nickname: &nickname})

		require.NoError(t, err)
		assert.Equal(t, "Sion", got.Nickname)
	})

	t.Run("blank nickname is rejected", func(t *testing.T) {
		service, profileRepo := setupProfileServiceTest(t)

		nickname := " "
		_, err := service.UpdateProfile(context.Background(), "u1", &model.UpdateProfileDTO{Nickname: &nickname})

		assert.ErrorIs(t, err, custom_errors.ErrNicknameEmpty)
		profileRepo.AssertNotCalled(t, "Update")
	})

	t.Run("missing profile", func(t *testing.T) {
		service, profileRepo := setupProfileServiceTest(t)

		nickname := "Sion"
		profileRepo.On("Update", mock.Anything, "u1", mock.Anything).
			Return(nil, custom_errors.ErrProfileNotFound)

		_, err := service.UpdateProfile(context.Background(), "u1", &model.UpdateProfileDTO{Nickname: &nickname})
		assert.ErrorIs(t, err, custom_errors.ErrProfileNotFound)
	})
}
