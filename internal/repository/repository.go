package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"photofolio/internal/models"
)

// ErrNotFound is returned when a lookup resolves zero rows.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	GetAuthors(ctx context.Context, ids []string) (map[string]models.Author, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	ListByName(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id string) error
}

type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id string) (*models.File, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]models.File, error)
	List(ctx context.Context, categoryID string) ([]models.File, error)
	LatestByCategory(ctx context.Context, categoryID string) (*models.File, error)
	Update(ctx context.Context, file *models.File) error
	Delete(ctx context.Context, id string) error
}

type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id string) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	List(ctx context.Context) ([]models.Page, error)
	ListPublished(ctx context.Context) ([]models.Page, error)
	GetHome(ctx context.Context) (*models.Page, error)
	ListMenu(ctx context.Context) ([]models.MenuPage, error)
	Update(ctx context.Context, page *models.Page) error
	Delete(ctx context.Context, id string) error
}

type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context) ([]models.BlogPost, error)
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	File     FileRepository
	Page     PageRepository
	Blog     BlogRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Category: NewCategoryRepository(db),
		File:     NewFileRepository(db),
		Page:     NewPageRepository(db),
		Blog:     NewBlogRepository(db),
	}
}
