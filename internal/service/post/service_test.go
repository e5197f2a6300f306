package post_service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/metrics/noop"
	"sionlog-blog-service/internal/model"
	post_service "sionlog-blog-service/internal/service/post"
	"sionlog-blog-service/mocks"
)

func setupPostServiceTest(t *testing.T) (*post_service.PostService, *mocks.PostRepository, *mocks.ProfileRepository, *mocks.ImageStore) {
	t.Helper()
	postRepo := mocks.NewPostRepository(t)
	profileRepo := mocks.NewProfileRepository(t)
	images := mocks.NewImageStore(t)
	log := logger.New("test")
	service := post_service.NewPostService(postRepo, profileRepo, images, log, noop.NewProvider())
	return service, postRepo, profileRepo, images
}

func testProfile(uid, nickname string) *model.UserProfile {
	return &model.UserProfile{
		UID:      uid,
		Nickname: nickname,
		Email:    "sion@example.com",
	}
}

func testStoredPost(id, authorID string) *model.Post {
	return &model.Post{
		ID:        id,
		AuthorID:  authorID,
		Author:    "Sion",
		Title:     "Stored post",
		Content:   "Stored content",
		Excerpt:   "Stored content",
		Category:  model.CategoryDaily,
		CreatedAt: pgtype.Timestamptz{Valid: true},
		UpdatedAt: pgtype.Timestamptz{Valid: true},
	}
}

func TestPostService_CreatePost(t *testing.T) {
	longContent := strings.Repeat("a", 200)

	tests := []struct {
		name        string
		identity    auth.Identity
		dto         *model.CreatePostDTO
		setupMocks  func(postRepo *mocks.PostRepository, profileRepo *mocks.ProfileRepository)
		wantErr     error
		wantExcerpt string
		wantAuthor  string
	}{
		{
			name:     "successful create snapshots author and computes excerpt",
			identity: "u1",
			dto: &model.CreatePostDTO{
				Title:    "My post",
				Content:  "  " + longContent + "  ",
				Category: model.CategoryProject,
			},
			setupMocks: func(postRepo *mocks.PostRepository, profileRepo *mocks.ProfileRepository) {
				profileRepo.On("GetByUID", mock.Anything, "u1").Return(testProfile("u1", "Sion"), nil)
				postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
					return p.AuthorID == "u1" && p.Author == "Sion"
				})).Return(func(ctx context.Context, p *model.Post) *model.Post {
					created := *p
					created.ID = "p1"
					return &created
				}, nil)
			},
			wantExcerpt: strings.Repeat("a", 150),
			wantAuthor:  "Sion",
		},
		{
			name:     "unauthenticated caller is rejected",
			identity: "",
			dto: &model.CreatePostDTO{
				Title:    "My post",
				Content:  "Content",
				Category: model.CategoryDaily,
			},
			setupMocks: func(postRepo *mocks.PostRepository, profileRepo *mocks.ProfileRepository) {},
			wantErr:    custom_errors.ErrUnauthenticated,
		},
		{
			name:     "missing profile requires nickname first",
			identity: "u1",
			dto: &model.CreatePostDTO{
				Title:    "My post",
				Content:  "Content",
				Category: model.CategoryDaily,
			},
			setupMocks: func(postRepo *mocks.PostRepository, profileRepo *mocks.ProfileRepository) {
				profileRepo.On("GetByUID", mock.Anything, "u1").Return(nil, custom_errors.ErrProfileNotFound)
			},
			wantErr: custom_errors.ErrNicknameRequired,
		},
		{
			name:     "blank nickname requires nickname first",
			identity: "u1",
			dto: &model.CreatePostDTO{
				Title:    "My post",
				Content:  "Content",
				Category: model.CategoryDaily,
			},
			setupMocks: func(postRepo *mocks.PostRepository, profileRepo *mocks.ProfileRepository) {
				profileRepo.On("GetByUID", mock.Anything, "u1").Return(testProfile("u1", "   "), nil)
			},
			wantErr: custom_errors.ErrNicknameRequired,
		},
		{
			name:     "empty title is rejected",
			identity: "u1",
			dto: &model.CreatePostDTO{
				Title:    "   ",
				Content:  "Content",
				Category: model.CategoryDaily,
			},
			setupMocks: func(postRepo *mocks.PostRepository, profileRepo *mocks.ProfileRepository) {
				profileRepo.On("GetByUID", mock.Anything, "u1").Return(testProfile("u1", "Sion"), nil)
			},
			wantErr: custom_errors.ErrValidation,
		},
		{
			name:     "empty content is rejected",
			identity: "u1",
			dto: &model.CreatePostDTO{
				Title:    "My post",
				Content:  "",
				Category: model.CategoryDaily,
			},
			setupMocks: func(postRepo *mocks.PostRepository, profileRepo *mocks.ProfileRepository) {
				profileRepo.On("GetByUID", mock.Anything, "u1").Return(testProfile("u1", "Sion"), nil)
			},
			wantErr: custom_errors.ErrValidation,
		},
		{
			name:     "unknown category is rejected",
			identity: "u1",
			dto: &model.CreatePostDTO{
				Title:    "My post",
				Content:  "Content",
				Category: model.Category("Music"),
			},
			setupMocks: func(postRepo *mocks.PostRepository, profileRepo *mocks.ProfileRepository) {
				profileRepo.On("GetByUID", mock.Anything, "u1").Return(testProfile("u1", "Sion"), nil)
			},
			wantErr: custom_errors.ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, postRepo, profileRepo, _ := setupPostServiceTest(t)
			tt.setupMocks(postRepo, profileRepo)

			got, err := service.CreatePost(context.Background(), tt.identity, tt.dto)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				postRepo.AssertNotCalled(t, "Create")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantAuthor, got.Author)
			assert.Equal(t, tt.wantExcerpt, got.Excerpt)
			assert.Len(t, []rune(got.Excerpt), 150)
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)
		postRepo.On("GetByID", mock.Anything, "p1").Return(testStoredPost("p1", "u1"), nil)

		got, err := service.GetPostByID(context.Background(), "p1")

		require.NoError(t, err)
		assert.Equal(t, "p1", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)
		postRepo.On("GetByID", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)

		got, err := service.GetPostByID(context.Background(), "missing")

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Run("owner updates content and excerpt follows", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "p1").Return(testStoredPost("p1", "u1"), nil)

		newContent := "  Fresh content after edit  "
		wantExcerpt := "Fresh content after edit"
		postRepo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(u *model.UpdatePostDTO) bool {
			return u.Excerpt != nil && *u.Excerpt == wantExcerpt
		})).Return(testStoredPost("p1", "u1"), nil)

		_, err := service.UpdatePost(context.Background(), "u1", "p1", &model.UpdatePostDTO{Content: &newContent})
		require.NoError(t, err)
	})

	t.Run("excerpt from caller is discarded when content unchanged", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "p1").Return(testStoredPost("p1", "u1"), nil)

		newTitle := "New title"
		postRepo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(u *model.UpdatePostDTO) bool {
			return u.Excerpt == nil
		})).Return(testStoredPost("p1", "u1"), nil)

		stray := "smuggled excerpt"
		_, err := service.UpdatePost(context.Background(), "u1", "p1", &model.UpdatePostDTO{
			Title:   &newTitle,
			Excerpt: &stray,
		})
		require.NoError(t, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "p1").Return(testStoredPost("p1", "u1"), nil)

		newTitle := "Hijacked"
		_, err := service.UpdatePost(context.Background(), "u2", "p1", &model.UpdatePostDTO{Title: &newTitle})

		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		postRepo.AssertNotCalled(t, "Update")
	})

	t.Run("unauthenticated caller is rejected before lookup", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		newTitle := "Anonymous"
		_, err := service.UpdatePost(context.Background(), "", "p1", &model.UpdatePostDTO{Title: &newTitle})

		assert.ErrorIs(t, err, custom_errors.ErrUnauthenticated)
		postRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("missing post", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)

		newTitle := "New title"
		_, err := service.UpdatePost(context.Background(), "u1", "missing", &model.UpdatePostDTO{Title: &newTitle})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("invalid category", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "p1").Return(testStoredPost("p1", "u1"), nil)

		bad := model.Category("Music")
		_, err := service.UpdatePost(context.Background(), "u1", "p1", &model.UpdatePostDTO{Category: &bad})

		assert.ErrorIs(t, err, custom_errors.ErrInvalidCategory)
		postRepo.AssertNotCalled(t, "Update")
	})
}

func TestPostService_DeletePost(t *testing.T) {
	t.Run("owner deletes post", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "p1").Return(testStoredPost("p1", "u1"), nil)
		postRepo.On("Delete", mock.Anything, "p1").Return(nil)

		assert.NoError(t, service.DeletePost(context.Background(), "u1", "p1"))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "p1").Return(testStoredPost("p1", "u1"), nil)

		err := service.DeletePost(context.Background(), "u2", "p1")

		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		postRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("image cleanup failure surfaces as warning", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "p1").Return(testStoredPost("p1", "u1"), nil)
		postRepo.On("Delete", mock.Anything, "p1").Return(custom_errors.ErrImageCleanup)

		err := service.DeletePost(context.Background(), "u1", "p1")
		assert.ErrorIs(t, err, custom_errors.ErrImageCleanup)
	})

	t.Run("missing post", func(t *testing.T) {
		service, postRepo, _, _ := setupPostServiceTest(t)

		postRepo.On("GetByID", mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)

		err := service.DeletePost(context.Background(), "u1", "missing")
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostService_UploadImage(t *testing.T) {
	t.Run("authenticated upload", func(t *testing.T) {
		service, _, _, images := setupPostServiceTest(t)

		data := []byte("png bytes")
		images.On("Upload", mock.Anything, data, "cover.png", "u1").
			Return("https://cdn.example.com/posts/u1_cover.png", nil)

		url, err := service.UploadImage(context.Background(), "u1", data, "cover.png")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/posts/u1_cover.png", url)
	})

	t.Run("unauthenticated upload is rejected", func(t *testing.T) {
		service, _, _, images := setupPostServiceTest(t)

		_, err := service.UploadImage(context.Background(), "", []byte("png bytes"), "cover.png")

		assert.ErrorIs(t, err, custom_errors.ErrUnauthenticated)
		images.AssertNotCalled(t, "Upload")
	})

	t.Run("storage failure", func(t *testing.T) {
		service, _, _, images := setupPostServiceTest(t)

		images.On("Upload", mock.Anything, mock.Anything, "cover.png", "u1").
			Return("", custom_errors.ErrImageUpload)

		_, err := service.UploadImage(context.Background(), "u1", []byte("png bytes"), "cover.png")
		assert.ErrorIs(t, err, custom_errors.ErrImageUpload)
	})
}
