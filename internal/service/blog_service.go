package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"photofolio/internal/models"
	"photofolio/internal/repository"
)

type BlogPostRequest struct {
	ID              string  `json:"id"`
	Title           string  `json:"title" validate:"required"`
	Slug            string  `json:"slug"`
	Excerpt         *string `json:"excerpt"`
	Content         *string `json:"content"`
	FeaturedImageID *string `json:"featuredImageId"`
	Published       bool    `json:"published"`
}

type BlogService interface {
	CreatePost(ctx context.Context, req BlogPostRequest, authorID string) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, req BlogPostRequest) (*models.BlogPost, error)
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
	ListPublishedPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPublishedPost(ctx context.Context, slug string) (*models.BlogPost, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
	fileRepo repository.FileRepository
	userRepo repository.UserRepository
}

func NewBlogService(blogRepo repository.BlogRepository, fileRepo repository.FileRepository, userRepo repository.UserRepository) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		fileRepo: fileRepo,
		userRepo: userRepo,
	}
}

func (s *blogService) CreatePost(ctx context.Context, req BlogPostRequest, authorID string) (*models.BlogPost, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	}

	post := &models.BlogPost{
		Title:           req.Title,
		Slug:            slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImageID: normalizeID(req.FeaturedImageID),
		Published:       req.Published,
	}
	if authorID != "" {
		post.AuthorID = &authorID
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost replaces the record. publishedAt is stamped only on the
// unpublished-to-published transition, kept while the post stays
// published, and nulled when it is unpublished; republishing stamps the
// toggle time, not the original date.
func (s *blogService) UpdatePost(ctx context.Context, req BlogPostRequest) (*models.BlogPost, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}

	existing, err := s.blogRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	}

	post := &models.BlogPost{
		ID:              req.ID,
		Title:           req.Title,
		Slug:            slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImageID: normalizeID(req.FeaturedImageID),
		Published:       req.Published,
		AuthorID:        existing.AuthorID,
		CreatedAt:       existing.CreatedAt,
	}

	switch {
	case req.Published && existing.Published:
		post.PublishedAt = existing.PublishedAt
	case req.Published:
		now := time.Now()
		post.PublishedAt = &now
	default:
		post.PublishedAt = nil
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *blogService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.attachRelations(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *blogService) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	return s.blogRepo.Delete(ctx, id)
}

func (s *blogService) ListPublishedPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.blogRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.attachRelations(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *blogService) GetPublishedPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !post.Published {
		return nil, repository.ErrNotFound
	}

	posts := []models.BlogPost{*post}
	if err := s.attachRelations(ctx, posts); err != nil {
		return nil, err
	}

	return &posts[0], nil
}

func (s *blogService) attachRelations(ctx context.Context, posts []models.BlogPost) error {
	fileIDs := make([]string, 0, len(posts))
	authorIDs := make([]string, 0, len(posts))
	seenFiles := map[string]bool{}
	seenAuthors := map[string]bool{}

	for _, p := range posts {
		if p.FeaturedImageID != nil && !seenFiles[*p.FeaturedImageID] {
			seenFiles[*p.FeaturedImageID] = true
			fileIDs = append(fileIDs, *p.FeaturedImageID)
		}
		if p.AuthorID != nil && !seenAuthors[*p.AuthorID] {
			seenAuthors[*p.AuthorID] = true
			authorIDs = append(authorIDs, *p.AuthorID)
		}
	}

	files, err := s.fileRepo.GetByIDs(ctx, fileIDs)
	if err != nil {
		return err
	}

	authors, err := s.userRepo.GetAuthors(ctx, authorIDs)
	if err != nil {
		return err
	}

	for i := range posts {
		if id := posts[i].FeaturedImageID; id != nil {
			if f, ok := files[*id]; ok {
				file := f
				posts[i].FeaturedImage = &file
			}
		}
		if id := posts[i].AuthorID; id != nil {
			if a, ok := authors[*id]; ok {
				author := a
				posts[i].Author = &author
			}
		}
	}

	return nil
}
