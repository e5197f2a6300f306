package redis

import (
	"context"
	"fmt"
	"time"

	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
)

const (
	postCacheTTL     = 10 * time.Minute
	postListCacheTTL = time.Minute
)

type PostCache struct {
	client *Client
	log    *logger.Logger
}

func NewPostCache(client *Client, log *logger.Logger) *PostCache {
	return &PostCache{client: client, log: log}
}

func postKey(id string) string {
	return fmt.Sprintf("post:%s", id)
}

func postListKey(category *model.Category) string {
	if category == nil {
		return "posts:list:all"
	}
	return fmt.Sprintf("posts:list:%s", *category)
}

// postListKeys enumerates every list key; the category set is closed, so
// invalidation is a fixed batch of deletes.
func postListKeys() []string {
	keys := []string{postListKey(nil)}
	for _, c := range []model.Category{
		model.CategoryDaily,
		model.CategoryGame,
		model.CategoryHobby,
		model.CategoryProject,
	} {
		keys = append(keys, postListKey(&c))
	}
	return keys
}

type cachedPostList struct {
	Posts []*model.Post `json:"posts"`
	Total int           `json:"total"`
}

func (c *PostCache) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := c.client.Get(ctx, postKey(id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *PostCache) SetPost(ctx context.Context, post *model.Post) error {
	return c.client.Set(ctx, postKey(post.ID), post, postCacheTTL)
}

func (c *PostCache) DeletePost(ctx context.Context, id string) error {
	return c.client.Delete(ctx, postKey(id))
}

func (c *PostCache) GetPostList(ctx context.Context, category *model.Category) ([]*model.Post, int, error) {
	var list cachedPostList
	if err := c.client.Get(ctx, postListKey(category), &list); err != nil {
		return nil, 0, err
	}
	return list.Posts, list.Total, nil
}

func (c *PostCache) SetPostList(ctx context.Context, category *model.Category, posts []*model.Post, total int) error {
	return c.client.Set(ctx, postListKey(category), cachedPostList{Posts: posts, Total: total}, postListCacheTTL)
}

func (c *PostCache) InvalidatePostLists(ctx context.Context) error {
	for _, key := range postListKeys() {
		if err := c.client.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
