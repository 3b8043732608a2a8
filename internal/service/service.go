package service

import (
	"errors"

	"photofolio/internal/config"
	"photofolio/internal/repository"
	"photofolio/internal/storage"
)

var (
	// ErrValidation marks a request rejected before touching storage.
	ErrValidation = errors.New("validation failed")
	// ErrUpstream marks a failed call to the object store or mail provider.
	ErrUpstream = errors.New("upstream failure")
)

type Service struct {
	Auth     AuthService
	Category CategoryService
	File     FileService
	Page     PageService
	Blog     BlogService
	Home     HomeService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, cfg),
		Category: NewCategoryService(repo.Category, repo.File),
		File:     NewFileService(repo.File, repo.Category, store),
		Page:     NewPageService(repo.Page, repo.File),
		Blog:     NewBlogService(repo.Blog, repo.File, repo.User),
		Home:     NewHomeService(repo.Page, repo.Category, repo.File),
	}
}
