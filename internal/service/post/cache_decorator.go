package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/cache"
	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/metrics"
	"sionlog-blog-service/internal/model"
)

// PostServiceCacheDecorator keeps a read-through Redis cache of single posts
// in front of the service. Cache failures degrade to the wrapped service and
// never fail the request.
type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   metrics.Provider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metrics metrics.Provider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) cachePost(ctx context.Context, post *model.Post, operation string) {
	start := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.String("post_id", post.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration(operation, time.Since(start))
}

func (d *PostServiceCacheDecorator) invalidateLists(ctx context.Context) {
	start := time.Now()
	if err := d.postCache.InvalidatePostLists(ctx); err != nil {
		d.log.Warn("Failed to invalidate post list cache", slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_list_invalidate", time.Since(start))
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, identity auth.Identity, post *model.CreatePostDTO) (*model.Post, error) {
	result, err := d.service.CreatePost(ctx, identity, post)
	if err != nil {
		return nil, err
	}

	d.cachePost(ctx, result, "post_set")
	d.invalidateLists(ctx)
	return result, nil
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Post found in cache", slog.String("post_id", id))
		d.metrics.IncrementCacheHits()
		return cachedPost, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post from cache",
			slog.String("post_id", id),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.cachePost(ctx, post, "post_set")
	return post, nil
}

// ListPosts caches the common feed queries only: plain or category-filtered
// lists without author or paging filters.
func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, filters *model.PostFilters) ([]*model.Post, int, error) {
	cacheable := filters.AuthorID == nil && filters.Limit == nil && filters.Offset == nil

	if cacheable {
		start := time.Now()
		posts, total, err := d.postCache.GetPostList(ctx, filters.Category)
		d.metrics.RecordCacheOperationDuration("post_list_get", time.Since(start))
		if err == nil {
			d.metrics.IncrementCacheHits()
			return posts, total, nil
		}
		if !errors.Is(err, custom_errors.ErrCacheMiss) {
			d.log.Warn("Failed to get post list from cache", slog.String("error", err.Error()))
		} else {
			d.metrics.IncrementCacheMisses()
		}
	}

	posts, total, err := d.service.ListPosts(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		start := time.Now()
		if cacheErr := d.postCache.SetPostList(ctx, filters.Category, posts, total); cacheErr != nil {
			d.log.Warn("Failed to cache post list", slog.String("error", cacheErr.Error()))
		}
		d.metrics.RecordCacheOperationDuration("post_list_set", time.Since(start))
	}

	return posts, total, nil
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, identity auth.Identity, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	result, err := d.service.UpdatePost(ctx, identity, id, update)
	if err != nil {
		return nil, err
	}

	d.cachePost(ctx, result, "post_set")
	d.invalidateLists(ctx)
	return result, nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, identity auth.Identity, id string) error {
	err := d.service.DeletePost(ctx, identity, id)
	if err != nil && !errors.Is(err, custom_errors.ErrImageCleanup) {
		return err
	}

	start := time.Now()
	if cacheErr := d.postCache.DeletePost(ctx, id); cacheErr != nil {
		d.log.Warn("Failed to invalidate post cache after delete",
			slog.String("post_id", id),
			slog.String("error", cacheErr.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	d.invalidateLists(ctx)
	return err
}

func (d *PostServiceCacheDecorator) UploadImage(ctx context.Context, identity auth.Identity, data []byte, suggestedName string) (string, error) {
	return d.service.UploadImage(ctx, identity, data, suggestedName)
}
