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

type PageRepositoryImpl struct {
	db *sqlx.DB
}

func NewPageRepository(db *sqlx.DB) *PageRepositoryImpl {
	return &PageRepositoryImpl{db: db}
}

func (r *PageRepositoryImpl) Create(ctx context.Context, page *models.Page) error {
	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	if page.PageType == "" {
		page.PageType = models.PageTypeStandard
	}
	if page.MenuOrder == "" {
		page.MenuOrder = "0"
	}

	now := time.Now()
	page.CreatedAt = now
	page.UpdatedAt = now

	query := `
        INSERT INTO pages (id, title, slug, content, page_type, featured_image_id, show_in_menu, menu_order, published, created_at, updated_at)
        VALUES (:id, :title, :slug, :content, :page_type, :featured_image_id, :show_in_menu, :menu_order, :published, :created_at, :updated_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, page)
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	return nil
}

func (r *PageRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Page, error) {
	query := `SELECT * FROM pages WHERE id = $1`

	var page models.Page
	err := r.db.GetContext(ctx, &page, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	return &page, nil
}

func (r *PageRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	query := `SELECT * FROM pages WHERE slug = $1`

	var page models.Page
	err := r.db.GetContext(ctx, &page, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	return &page, nil
}

func (r *PageRepositoryImpl) List(ctx context.Context) ([]models.Page, error) {
	query := `SELECT * FROM pages ORDER BY created_at DESC`

	pages := []models.Page{}
	err := r.db.SelectContext(ctx, &pages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	return pages, nil
}

func (r *PageRepositoryImpl) ListPublished(ctx context.Context) ([]models.Page, error) {
	query := `SELECT * FROM pages WHERE published = TRUE ORDER BY created_at DESC`

	pages := []models.Page{}
	err := r.db.SelectContext(ctx, &pages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list published pages: %w", err)
	}

	return pages, nil
}

// GetHome returns the published home page. Data hygiene is expected to
// keep that page unique; if several exist the first match wins.
func (r *PageRepositoryImpl) GetHome(ctx context.Context) (*models.Page, error) {
	query := `SELECT * FROM pages WHERE page_type = 'home' AND published = TRUE LIMIT 1`

	var page models.Page
	err := r.db.GetContext(ctx, &page, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get home page: %w", err)
	}

	return &page, nil
}

// ListMenu returns published standard pages sorted by menu_order, which
// is text and therefore compares lexicographically.
func (r *PageRepositoryImpl) ListMenu(ctx context.Context) ([]models.MenuPage, error) {
	query := `SELECT id, title, slug, menu_order FROM pages WHERE published = TRUE AND page_type = 'standard' ORDER BY menu_order ASC`

	pages := []models.MenuPage{}
	err := r.db.SelectContext(ctx, &pages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu pages: %w", err)
	}

	return pages, nil
}

func (r *PageRepositoryImpl) Update(ctx context.Context, page *models.Page) error {
	query := `
		UPDATE pages SET
			title = :title,
			slug = :slug,
			content = :content,
			page_type = :page_type,
			featured_image_id = :featured_image_id,
			show_in_menu = :show_in_menu,
			menu_order = :menu_order,
			published = :published,
			updated_at = :updated_at
		WHERE id = :id
	`

	page.UpdatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, page)
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}

	return nil
}

func (r *PageRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM pages WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	return nil
}
