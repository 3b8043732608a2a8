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

type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepositoryImpl {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	query := `
        INSERT INTO categories (id, name, slug, description, created_at, updated_at)
        VALUES (:id, :name, :slug, :description, :created_at, :updated_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, category)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `SELECT * FROM categories WHERE id = $1`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `SELECT * FROM categories WHERE slug = $1`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) GetByIDs(ctx context.Context, ids []string) (map[string]models.Category, error) {
	if len(ids) == 0 {
		return map[string]models.Category{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM categories WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build categories query: %w", err)
	}

	var categories []models.Category
	err = r.db.SelectContext(ctx, &categories, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	result := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		result[c.ID] = c
	}

	return result, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT * FROM categories ORDER BY created_at DESC`

	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepositoryImpl) ListByName(ctx context.Context) ([]models.Category, error) {
	query := `SELECT * FROM categories ORDER BY name ASC`

	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// Delete removes the category; files referencing it go with it via the
// ON DELETE CASCADE constraint.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
