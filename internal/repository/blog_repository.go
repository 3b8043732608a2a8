package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"photofolio/internal/models"
)

type BlogRepositoryImpl struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) *BlogRepositoryImpl {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
        INSERT INTO blog_posts (id, title, slug, excerpt, content, featured_image_id, published, published_at, author_id, created_at, updated_at)
        VALUES (:id, :title, :slug, :excerpt, :content, :featured_image_id, :published, :published_at, :author_id, :created_at, :updated_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

func (r *BlogRepositoryImpl) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	query := `SELECT * FROM blog_posts WHERE id = $1`

	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return &post, nil
}

func (r *BlogRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT * FROM blog_posts WHERE slug = $1`

	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return &post, nil
}

func (r *BlogRepositoryImpl) List(ctx context.Context) ([]models.BlogPost, error) {
	query := `SELECT * FROM blog_posts ORDER BY created_at DESC`

	posts := []models.BlogPost{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return posts, nil
}

func (r *BlogRepositoryImpl) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	query := `SELECT * FROM blog_posts WHERE published = TRUE ORDER BY published_at DESC`

	posts := []models.BlogPost{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list published blog posts: %w", err)
	}

	return posts, nil
}

func (r *BlogRepositoryImpl) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts SET
			title = :title,
			slug = :slug,
			excerpt = :excerpt,
			content = :content,
			featured_image_id = :featured_image_id,
			published = :published,
			published_at = :published_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	post.UpdatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	return nil
}

func (r *BlogRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM blog_posts WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	return nil
}
