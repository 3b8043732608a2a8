package service

import (
	"context"
	"errors"

	"photofolio/internal/models"
	"photofolio/internal/repository"
)

// HomeResponse is the composite payload for the public home route.
type HomeResponse struct {
	Page       *models.Page               `json:"page"`
	MenuPages  []models.MenuPage          `json:"menuPages"`
	Categories []models.CategoryWithImage `json:"categories"`
}

type HomeService interface {
	Home(ctx context.Context) (*HomeResponse, error)
}

type homeService struct {
	pageRepo     repository.PageRepository
	categoryRepo repository.CategoryRepository
	fileRepo     repository.FileRepository
}

func NewHomeService(pageRepo repository.PageRepository, categoryRepo repository.CategoryRepository, fileRepo repository.FileRepository) HomeService {
	return &homeService{
		pageRepo:     pageRepo,
		categoryRepo: categoryRepo,
		fileRepo:     fileRepo,
	}
}

// Home aggregates the published home page, the menu, and one
// representative file per category. The per-category lookup is a
// deliberate N+1: category counts stay small for a portfolio site.
func (s *homeService) Home(ctx context.Context) (*HomeResponse, error) {
	page, err := s.pageRepo.GetHome(ctx)
	if err != nil {
		return nil, err
	}

	if page.FeaturedImageID != nil {
		if file, err := s.fileRepo.GetByID(ctx, *page.FeaturedImageID); err == nil {
			page.FeaturedImage = file
		}
	}

	menuPages := []models.MenuPage{}
	if page.ShowInMenu {
		menuPages, err = s.pageRepo.ListMenu(ctx)
		if err != nil {
			return nil, err
		}
	}

	categories, err := s.categoryRepo.ListByName(ctx)
	if err != nil {
		return nil, err
	}

	withImages := make([]models.CategoryWithImage, 0, len(categories))
	for _, category := range categories {
		entry := models.CategoryWithImage{Category: category}

		file, err := s.fileRepo.LatestByCategory(ctx, category.ID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		entry.Image = file

		withImages = append(withImages, entry)
	}

	return &HomeResponse{
		Page:       page,
		MenuPages:  menuPages,
		Categories: withImages,
	}, nil
}
