package service

import (
	"context"
	"fmt"
	"strings"

	"photofolio/internal/models"
	"photofolio/internal/repository"
)

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	PublicCategory(ctx context.Context, slug string) (*models.Category, []models.File, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	fileRepo     repository.FileRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, fileRepo repository.FileRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		fileRepo:     fileRepo,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Name)
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

// DeleteCategory removes the category row; files in it are removed by
// the cascade constraint. Their bucket objects are left behind, same as
// the admin dashboard this replaces.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *categoryService) PublicCategory(ctx context.Context, slug string) (*models.Category, []models.File, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	files, err := s.fileRepo.List(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}

	return category, files, nil
}
