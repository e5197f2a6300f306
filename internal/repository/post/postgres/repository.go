package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
	"sionlog-blog-service/internal/repository/postgres/db"
)

type PostRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewPostRepository(db db.PgDB, log *logger.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

const postColumns = `id, author_id, author, title, content, excerpt, category, image_url, created_at, updated_at`

func scanPost(row pgx.Row, post *model.Post) error {
	return row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Author,
		&post.Title,
		&post.Content,
		&post.Excerpt,
		&post.Category,
		&post.ImageURL,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"id":         uuid.NewString(),
		"author_id":  post.AuthorID,
		"author":     post.Author,
		"title":      post.Title,
		"content":    post.Content,
		"excerpt":    post.Excerpt,
		"category":   post.Category,
		"image_url":  post.ImageURL,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (id, author_id, author, title, content, excerpt, category, image_url, created_at, updated_at)
		VALUES (@id, @author_id, @author, @title, @content, @excerpt, @category, @image_url, @created_at, @updated_at)
		RETURNING ` + postColumns

	var createdPost model.Post
	err := scanPost(p.db.QueryRow(ctx, query, args), &createdPost)
	if err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post := &model.Post{}
	err := scanPost(p.db.QueryRow(ctx, query, args), post)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	args := pgx.NamedArgs{"author_id": authorID}
	query := `SELECT ` + postColumns + ` FROM posts WHERE author_id = @author_id ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error getting posts by author", slog.String("author_id", authorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := scanPost(rows, &post); err != nil {
			p.log.Error("Error scanning post during GetByAuthor", slog.String("author_id", authorID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during GetByAuthor", slog.String("author_id", authorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}

func (p *PostRepository) Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.Excerpt != nil {
		setClauses = append(setClauses, "excerpt = @excerpt")
		args["excerpt"] = *update.Excerpt
	}
	if update.Category != nil {
		setClauses = append(setClauses, "category = @category")
		args["category"] = *update.Category
	}
	if update.ImageURL != nil {
		setClauses = append(setClauses, "image_url = @image_url")
		args["image_url"] = *update.ImageURL
	}

	updatedAt := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = updatedAt

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + postColumns

	var updatedPost model.Post
	err := scanPost(p.db.QueryRow(ctx, query, args), &updatedPost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id string) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	args := pgx.NamedArgs{}
	baseQuery := `SELECT ` + postColumns + ` FROM posts`
	countQuery := `SELECT count(*) FROM posts`

	whereClauses := []string{}

	if filters.Category != nil {
		whereClauses = append(whereClauses, "category = @category")
		args["category"] = *filters.Category
	}
	if filters.AuthorID != nil {
		whereClauses = append(whereClauses, "author_id = @author_id")
		args["author_id"] = *filters.AuthorID
	}

	if len(whereClauses) > 0 {
		condition := " WHERE " + strings.Join(whereClauses, " AND ")
		baseQuery += condition
		countQuery += condition
	}

	var total int
	if err := p.db.QueryRow(ctx, countQuery, args).Scan(&total); err != nil {
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	baseQuery += " ORDER BY created_at DESC"

	if filters.Limit != nil {
		baseQuery += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		baseQuery += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, baseQuery, args)
	if err != nil {
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := scanPost(rows, &post); err != nil {
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	return posts, total, nil
}
