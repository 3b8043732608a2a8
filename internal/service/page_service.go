package service

import (
	"context"
	"fmt"
	"strings"

	"photofolio/internal/models"
	"photofolio/internal/repository"
)

type PageRequest struct {
	ID              string  `json:"id"`
	Title           string  `json:"title" validate:"required"`
	Slug            string  `json:"slug"`
	Content         *string `json:"content"`
	PageType        string  `json:"pageType"`
	FeaturedImageID *string `json:"featuredImageId"`
	ShowInMenu      bool    `json:"showInMenu"`
	MenuOrder       string  `json:"menuOrder"`
	Published       bool    `json:"published"`
}

type PageService interface {
	CreatePage(ctx context.Context, req PageRequest) (*models.Page, error)
	UpdatePage(ctx context.Context, req PageRequest) (*models.Page, error)
	ListPages(ctx context.Context) ([]models.Page, error)
	DeletePage(ctx context.Context, id string) error
	ListPublishedPages(ctx context.Context) ([]models.Page, error)
	GetPublishedPage(ctx context.Context, slug string) (*models.Page, error)
}

type pageService struct {
	pageRepo repository.PageRepository
	fileRepo repository.FileRepository
}

func NewPageService(pageRepo repository.PageRepository, fileRepo repository.FileRepository) PageService {
	return &pageService{
		pageRepo: pageRepo,
		fileRepo: fileRepo,
	}
}

func (s *pageService) CreatePage(ctx context.Context, req PageRequest) (*models.Page, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	}

	pageType := req.PageType
	if pageType == "" {
		pageType = models.PageTypeStandard
	}
	menuOrder := req.MenuOrder
	if menuOrder == "" {
		menuOrder = "0"
	}

	page := &models.Page{
		Title:           req.Title,
		Slug:            slug,
		Content:         req.Content,
		PageType:        pageType,
		FeaturedImageID: normalizeID(req.FeaturedImageID),
		ShowInMenu:      req.ShowInMenu,
		MenuOrder:       menuOrder,
		Published:       req.Published,
	}

	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

// UpdatePage is a full-record replace keyed by the id in the body. An
// update matching zero rows is treated as success, same as the admin
// dashboard this replaces.
func (s *pageService) UpdatePage(ctx context.Context, req PageRequest) (*models.Page, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	}

	page := &models.Page{
		ID:              req.ID,
		Title:           req.Title,
		Slug:            slug,
		Content:         req.Content,
		PageType:        req.PageType,
		FeaturedImageID: normalizeID(req.FeaturedImageID),
		ShowInMenu:      req.ShowInMenu,
		MenuOrder:       req.MenuOrder,
		Published:       req.Published,
	}

	if err := s.pageRepo.Update(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

func (s *pageService) ListPages(ctx context.Context) ([]models.Page, error) {
	pages, err := s.pageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.attachFeaturedImages(ctx, pages); err != nil {
		return nil, err
	}

	return pages, nil
}

func (s *pageService) DeletePage(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	return s.pageRepo.Delete(ctx, id)
}

func (s *pageService) ListPublishedPages(ctx context.Context) ([]models.Page, error) {
	pages, err := s.pageRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.attachFeaturedImages(ctx, pages); err != nil {
		return nil, err
	}

	return pages, nil
}

// GetPublishedPage resolves a slug for the public site; an unpublished
// page is indistinguishable from a missing one.
func (s *pageService) GetPublishedPage(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !page.Published {
		return nil, repository.ErrNotFound
	}

	if page.FeaturedImageID != nil {
		if file, err := s.fileRepo.GetByID(ctx, *page.FeaturedImageID); err == nil {
			page.FeaturedImage = file
		}
	}

	return page, nil
}

func (s *pageService) attachFeaturedImages(ctx context.Context, pages []models.Page) error {
	ids := make([]string, 0, len(pages))
	seen := map[string]bool{}
	for _, p := range pages {
		if p.FeaturedImageID != nil && !seen[*p.FeaturedImageID] {
			seen[*p.FeaturedImageID] = true
			ids = append(ids, *p.FeaturedImageID)
		}
	}

	files, err := s.fileRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range pages {
		if pages[i].FeaturedImageID == nil {
			continue
		}
		if f, ok := files[*pages[i].FeaturedImageID]; ok {
			file := f
			pages[i].FeaturedImage = &file
		}
	}

	return nil
}
