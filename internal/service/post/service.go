package post_service

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
	post_repository "sionlog-blog-service/internal/repository/post"
	profile_repository "sionlog-blog-service/internal/repository/profile"
	"sionlog-blog-service/internal/storage"
)

// excerptLength is the maximum number of characters carried over from the
// trimmed content into the excerpt.
const excerptLength = 150

// PostService orchestrates the post lifecycle: authentication gate, nickname
// gate, field validation and ownership checks all run here before anything
// touches the repositories.
type PostService struct {
	postRepo    post_repository.Repository
	profileRepo profile_repository.Repository
	images      storage.ImageStore
	log         *logger.Logger
	metrics     metrics.Provider
}

func NewPostService(
	postRepo post_repository.Repository,
	profileRepo profile_repository.Repository,
	images storage.ImageStore,
	log *logger.Logger,
	metrics metrics.Provider,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		images:      images,
		log:         log,
		metrics:     metrics,
	}
}

// makeExcerpt computes the excerpt for the given content: the first
// excerptLength characters of the trimmed text.
func makeExcerpt(content string) string {
	trimmed := []rune(strings.TrimSpace(content))
	if len(trimmed) > excerptLength {
		trimmed = trimmed[:excerptLength]
	}
	return string(trimmed)
}

func (s *PostService) CreatePost(ctx context.Context, identity auth.Identity, post *model.CreatePostDTO) (*model.Post, error) {
	if err := auth.RequireAuthenticated(identity); err != nil {
		s.log.Debug("Create post attempted without authentication")
		return nil, err
	}

	profile, err := s.profileRepo.GetByUID(ctx, string(identity))
	if err != nil {
		if errors.Is(err, custom_errors.ErrProfileNotFound) {
			s.log.Debug("Create post attempted without nickname", slog.String("uid", string(identity)))
			return nil, custom_errors.ErrNicknameRequired
		}
		s.log.Error("Failed to load profile for nickname gate",
			slog.String("uid", string(identity)),
			slog.String("error", err.Error()))
		return nil, err
	}
	if strings.TrimSpace(profile.Nickname) == "" {
		s.log.Debug("Create post attempted with empty nickname", slog.String("uid", string(identity)))
		return nil, custom_errors.ErrNicknameRequired
	}

	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Content) == "" {
		return nil, custom_errors.ErrValidation
	}
	if err := post.Category.IsValid(); err != nil {
		s.log.Debug("Create post with invalid category", slog.String("category", string(post.Category)))
		return nil, custom_errors.ErrInvalidCategory
	}

	newPost := &model.Post{
		AuthorID: string(identity),
		Author:   profile.Nickname,
		Title:    post.Title,
		Content:  post.Content,
		Excerpt:  makeExcerpt(post.Content),
		Category: post.Category,
		ImageURL: post.ImageURL,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	s.metrics.IncrementPostOperations("create", true)
	return createdPost, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.String("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.Post, int, error) {
	posts, total, err := s.postRepo.List(ctx, *filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	return posts, total, nil
}

func (s *PostService) UpdatePost(ctx context.Context, identity auth.Identity, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	if err := auth.RequireAuthenticated(identity); err != nil {
		s.log.Debug("Update post attempted without authentication", slog.String("id", id))
		return nil, err
	}

	existingPost, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.String("error", err.Error()), slog.String("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if !auth.CanMutate(existingPost, identity) {
		s.log.Debug("User is not author of post",
			slog.String("uid", string(identity)),
			slog.String("author_id", existingPost.AuthorID))
		return nil, custom_errors.ErrForbidden
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, custom_errors.ErrValidation
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return nil, custom_errors.ErrValidation
	}
	if update.Category != nil {
		if err := update.Category.IsValid(); err != nil {
			s.log.Debug("Update post with invalid category", slog.String("category", string(*update.Category)))
			return nil, custom_errors.ErrInvalidCategory
		}
	}

	// The excerpt follows the content: recomputed here, never taken from
	// the caller.
	if update.Content != nil {
		excerpt := makeExcerpt(*update.Content)
		update.Excerpt = &excerpt
	} else {
		update.Excerpt = nil
	}

	updatedPost, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.String("id", id))
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("update", true)
	return updatedPost, nil
}

func (s *PostService) DeletePost(ctx context.Context, identity auth.Identity, id string) error {
	if err := auth.RequireAuthenticated(identity); err != nil {
		s.log.Debug("Delete post attempted without authentication", slog.String("id", id))
		return err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.String("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for delete", slog.String("error", err.Error()), slog.String("id", id))
		return custom_errors.ErrDatabaseQuery
	}
	if !auth.CanMutate(post, identity) {
		s.log.Debug("User is not author of post",
			slog.String("uid", string(identity)),
			slog.String("author_id", post.AuthorID))
		return custom_errors.ErrForbidden
	}

	err = s.postRepo.Delete(ctx, id)
	if err != nil {
		// The record is already gone when only the image cleanup failed;
		// that surfaces as a warning, not a failed delete.
		if errors.Is(err, custom_errors.ErrImageCleanup) {
			s.log.Warn("Post deleted but image cleanup failed",
				slog.String("id", id),
				slog.String("error", err.Error()))
			s.metrics.IncrementPostOperations("delete", true)
			return err
		}
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.String("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.String("id", id))
		s.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("delete", true)
	return nil
}

func (s *PostService) UploadImage(ctx context.Context, identity auth.Identity, data []byte, suggestedName string) (string, error) {
	if err := auth.RequireAuthenticated(identity); err != nil {
		s.log.Debug("Image upload attempted without authentication")
		return "", err
	}

	url, err := s.images.Upload(ctx, data, suggestedName, string(identity))
	if err != nil {
		s.log.Error("Failed to upload image",
			slog.String("uid", string(identity)),
			slog.String("name", suggestedName),
			slog.String("error", err.Error()))
		s.metrics.IncrementImageOperations("upload", false)
		return "", err
	}

	s.metrics.IncrementImageOperations("upload", true)
	return url, nil
}
