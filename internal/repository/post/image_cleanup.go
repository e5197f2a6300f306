package post_repository

import (
	"context"
	"fmt"
	"log/slog"

	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/storage"
)

// ImageCleanupRepository decorates a Repository so that deleting a post also
// removes its cover image from object storage. Image deletion is best-effort:
// a failure never rolls back the record delete, it surfaces as the
// ErrImageCleanup warning sentinel instead.
type ImageCleanupRepository struct {
	Repository
	images storage.ImageStore
	log    *logger.Logger
}

func NewImageCleanupRepository(repo Repository, images storage.ImageStore, log *logger.Logger) *ImageCleanupRepository {
	return &ImageCleanupRepository{
		Repository: repo,
		images:     images,
		log:        log,
	}
}

func (r *ImageCleanupRepository) Delete(ctx context.Context, id string) error {
	post, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}

	if post.ImageURL == nil || *post.ImageURL == "" {
		return nil
	}

	if err := r.images.Delete(ctx, *post.ImageURL); err != nil {
		r.log.Warn("Failed to delete image for removed post",
			slog.String("post_id", id),
			slog.String("image_url", *post.ImageURL),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s", custom_errors.ErrImageCleanup, err.Error())
	}

	return nil
}
