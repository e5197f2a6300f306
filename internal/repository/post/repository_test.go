package post_repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
	post_repository "sionlog-blog-service/internal/repository/post"
	"sionlog-blog-service/internal/repository/post/memory"
	storage_memory "sionlog-blog-service/internal/storage/memory"
)

func setupPostTest(t *testing.T) post_repository.Repository {
	log := logger.New("test")
	return memory.NewPostRepository(log)
}

func newTestPost(author, title string, category model.Category) *model.Post {
	return &model.Post{
		AuthorID: author,
		Author:   "Sion",
		Title:    title,
		Content:  "Some markdown content",
		Excerpt:  "Some markdown content",
		Category: category,
	}
}

func TestPostRepository_Create(t *testing.T) {
	repo := setupPostTest(t)

	got, err := repo.Create(context.Background(), newTestPost("u1", "Test Post", model.CategoryDaily))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "u1", got.AuthorID)
	assert.Equal(t, "Sion", got.Author)
	assert.Equal(t, "Test Post", got.Title)
	assert.Equal(t, model.CategoryDaily, got.Category)
	assert.True(t, got.CreatedAt.Valid)
	assert.True(t, got.UpdatedAt.Valid)
}

func TestPostRepository_GetByID(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), newTestPost("u1", "Test Post", model.CategoryDaily))
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{
			name:    "existing post",
			id:      created.ID,
			wantErr: nil,
		},
		{
			name:    "missing post",
			id:      "does-not-exist",
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, created.ID, got.ID)
				assert.Equal(t, created.Title, got.Title)
			}
		})
	}
}

func TestPostRepository_Update(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), newTestPost("u1", "Original", model.CategoryDaily))
	require.NoError(t, err)

	newTitle := "Updated"
	updated, err := repo.Update(context.Background(), created.ID, &model.UpdatePostDTO{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.False(t, updated.UpdatedAt.Time.Before(created.UpdatedAt.Time))

	// Identity fields survive any update untouched.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.AuthorID, updated.AuthorID)
	assert.Equal(t, created.Author, updated.Author)
	assert.Equal(t, created.CreatedAt.Time, updated.CreatedAt.Time)
}

func TestPostRepository_Update_NotFound(t *testing.T) {
	repo := setupPostTest(t)

	newTitle := "Updated"
	_, err := repo.Update(context.Background(), "does-not-exist", &model.UpdatePostDTO{Title: &newTitle})
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostRepository_Delete(t *testing.T) {
	repo := setupPostTest(t)

	created, err := repo.Create(context.Background(), newTestPost("u1", "Test Post", model.CategoryDaily))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), created.ID), custom_errors.ErrPostNotFound)
}

func TestPostRepository_List_OrderedNewestFirst(t *testing.T) {
	repo := setupPostTest(t)

	for i := 0; i < 5; i++ {
		_, err := repo.Create(context.Background(), newTestPost("u1", "Post", model.CategoryDaily))
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	posts, total, err := repo.List(context.Background(), model.PostFilters{})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, posts, 5)

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].CreatedAt.Time.Before(posts[i].CreatedAt.Time),
			"posts must be ordered newest first")
	}
}

func TestPostRepository_List_CategoryFilter(t *testing.T) {
	repo := setupPostTest(t)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(context.Background(), newTestPost("u1", "Daily post", model.CategoryDaily))
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := repo.Create(context.Background(), newTestPost("u1", "Game post", model.CategoryGame))
		require.NoError(t, err)
	}

	category := model.CategoryGame
	posts, total, err := repo.List(context.Background(), model.PostFilters{Category: &category})

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, posts, 2)
	for _, post := range posts {
		assert.Equal(t, model.CategoryGame, post.Category)
	}
}

func TestPostRepository_List_LimitOffset(t *testing.T) {
	repo := setupPostTest(t)

	for i := 0; i < 4; i++ {
		_, err := repo.Create(context.Background(), newTestPost("u1", "Post", model.CategoryHobby))
		require.NoError(t, err)
	}

	limit, offset := 2, 3
	posts, total, err := repo.List(context.Background(), model.PostFilters{Limit: &limit, Offset: &offset})

	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, posts, 1)
}

func TestImageCleanupRepository_Delete(t *testing.T) {
	log := logger.New("test")

	t.Run("image removed with post", func(t *testing.T) {
		images := storage_memory.NewImageStore()
		repo := post_repository.NewImageCleanupRepository(memory.NewPostRepository(log), images, log)

		url, err := images.Upload(context.Background(), []byte("img"), "cover.png", "u1")
		require.NoError(t, err)

		post := newTestPost("u1", "With image", model.CategoryDaily)
		post.ImageURL = &url
		created, err := repo.Create(context.Background(), post)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(context.Background(), created.ID))
		assert.False(t, images.Has(url))
	})

	t.Run("record delete survives image failure", func(t *testing.T) {
		images := storage_memory.NewImageStore()
		repo := post_repository.NewImageCleanupRepository(memory.NewPostRepository(log), images, log)

		// URL never uploaded, so the image delete fails.
		url := "memory://posts/u1_0_missing_cover.png"
		post := newTestPost("u1", "With broken image", model.CategoryDaily)
		post.ImageURL = &url
		created, err := repo.Create(context.Background(), post)
		require.NoError(t, err)

		err = repo.Delete(context.Background(), created.ID)
		assert.ErrorIs(t, err, custom_errors.ErrImageCleanup)

		_, err = repo.GetByID(context.Background(), created.ID)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("no image means plain delete", func(t *testing.T) {
		images := storage_memory.NewImageStore()
		repo := post_repository.NewImageCleanupRepository(memory.NewPostRepository(log), images, log)

		created, err := repo.Create(context.Background(), newTestPost("u1", "No image", model.CategoryDaily))
		require.NoError(t, err)

		assert.NoError(t, repo.Delete(context.Background(), created.ID))
	})
}
