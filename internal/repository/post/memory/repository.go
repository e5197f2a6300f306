package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
)

type PostRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	posts map[string]*model.Post
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:   log,
		posts: make(map[string]*model.Post),
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:        uuid.NewString(),
		AuthorID:  post.AuthorID,
		Author:    post.Author,
		Title:     post.Title,
		Content:   post.Content,
		Excerpt:   post.Excerpt,
		Category:  post.Category,
		ImageURL:  post.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.String("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.AuthorID == authorID {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Time.After(result[j].CreatedAt.Time)
	})

	return result, nil
}

func (p *PostRepository) Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Excerpt != nil {
		post.Excerpt = *update.Excerpt
	}
	if update.Category != nil {
		post.Category = *update.Category
	}
	if update.ImageURL != nil {
		post.ImageURL = update.ImageURL
	}

	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var filteredPosts []*model.Post
	for _, post := range p.posts {
		if filters.Category != nil && post.Category != *filters.Category {
			continue
		}
		if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
			continue
		}

		postCopy := *post
		filteredPosts = append(filteredPosts, &postCopy)
	}

	sort.Slice(filteredPosts, func(i, j int) bool {
		return filteredPosts[i].CreatedAt.Time.After(filteredPosts[j].CreatedAt.Time)
	})

	total := len(filteredPosts)

	if filters.Offset != nil {
		offset := *filters.Offset
		if offset >= len(filteredPosts) {
			return []*model.Post{}, total, nil
		}
		filteredPosts = filteredPosts[offset:]
	}

	if filters.Limit != nil {
		limit := *filters.Limit
		if limit < len(filteredPosts) {
			filteredPosts = filteredPosts[:limit]
		}
	}

	return filteredPosts, total, nil
}
