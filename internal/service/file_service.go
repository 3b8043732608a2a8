package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"photofolio/internal/models"
	"photofolio/internal/repository"
	"photofolio/internal/storage"
)

// UploadTicket is step one of the upload protocol: a signed write URL
// bound to a fresh key, plus the public URL the object will have once
// the client has written it.
type UploadTicket struct {
	PresignedURL string `json:"presignedUrl"`
	Key          string `json:"key"`
	PublicURL    string `json:"publicUrl"`
}

type CreateFileRequest struct {
	Name       string  `json:"name" validate:"required"`
	URL        string  `json:"url" validate:"required"`
	Key        string  `json:"key" validate:"required"`
	Size       *string `json:"size"`
	MimeType   *string `json:"mimeType"`
	CategoryID *string `json:"categoryId"`
}

type PatchFileRequest struct {
	Name       string     `json:"name" validate:"required"`
	Location   *string    `json:"location"`
	CapturedAt *time.Time `json:"capturedAt"`
	Metadata   *string    `json:"metadata"`
	CategoryID *string    `json:"categoryId"`
}

type FileService interface {
	PresignUpload(ctx context.Context, filename string) (*UploadTicket, error)
	CreateFile(ctx context.Context, req CreateFileRequest, uploadedBy string) (*models.File, error)
	GetFile(ctx context.Context, id string) (*models.File, error)
	ListFiles(ctx context.Context, categoryID string) ([]models.File, error)
	UpdateFile(ctx context.Context, id string, req PatchFileRequest) (*models.File, error)
	DeleteFile(ctx context.Context, id string) error
}

type fileService struct {
	fileRepo     repository.FileRepository
	categoryRepo repository.CategoryRepository
	storage      storage.Storage
}

func NewFileService(fileRepo repository.FileRepository, categoryRepo repository.CategoryRepository, store storage.Storage) FileService {
	return &fileService{
		fileRepo:     fileRepo,
		categoryRepo: categoryRepo,
		storage:      store,
	}
}

// PresignUpload generates a collision-free storage key (random id plus
// the original extension) and signs a write URL for it.
func (s *fileService) PresignUpload(ctx context.Context, filename string) (*UploadTicket, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrValidation)
	}

	key := xid.New().String() + strings.ToLower(filepath.Ext(filename))

	presignedURL, err := s.storage.PresignedPutURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &UploadTicket{
		PresignedURL: presignedURL,
		Key:          key,
		PublicURL:    s.storage.PublicURL(key),
	}, nil
}

func (s *fileService) CreateFile(ctx context.Context, req CreateFileRequest, uploadedBy string) (*models.File, error) {
	if req.Name == "" || req.URL == "" || req.Key == "" {
		return nil, fmt.Errorf("%w: name, url and key are required", ErrValidation)
	}

	file := &models.File{
		Name:       req.Name,
		URL:        req.URL,
		Key:        req.Key,
		Size:       req.Size,
		MimeType:   req.MimeType,
		CategoryID: normalizeID(req.CategoryID),
	}
	if uploadedBy != "" {
		file.UploadedBy = &uploadedBy
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	return file, nil
}

func (s *fileService) GetFile(ctx context.Context, id string) (*models.File, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if file.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *file.CategoryID)
		if err == nil {
			file.Category = category
		}
	}

	return file, nil
}

func (s *fileService) ListFiles(ctx context.Context, categoryID string) ([]models.File, error) {
	files, err := s.fileRepo.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(files))
	seen := map[string]bool{}
	for _, f := range files {
		if f.CategoryID != nil && !seen[*f.CategoryID] {
			seen[*f.CategoryID] = true
			ids = append(ids, *f.CategoryID)
		}
	}

	categories, err := s.categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range files {
		if files[i].CategoryID == nil {
			continue
		}
		if c, ok := categories[*files[i].CategoryID]; ok {
			category := c
			files[i].Category = &category
		}
	}

	return files, nil
}

func (s *fileService) UpdateFile(ctx context.Context, id string, req PatchFileRequest) (*models.File, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	file.Name = req.Name
	file.Location = req.Location
	file.CategoryID = normalizeID(req.CategoryID)
	if req.CapturedAt != nil {
		file.CapturedAt = req.CapturedAt
	}

	if req.Metadata != nil {
		normalized, err := normalizeMetadata(*req.Metadata)
		if err != nil {
			return nil, fmt.Errorf("%w: metadata must be valid JSON", ErrValidation)
		}
		file.Metadata = &normalized
	} else {
		file.Metadata = nil
	}

	if err := s.fileRepo.Update(ctx, file); err != nil {
		return nil, err
	}

	return file, nil
}

// DeleteFile removes the bucket object first and the row second, so a
// crash in between leaves an orphaned object rather than a row pointing
// at nothing.
func (s *fileService) DeleteFile(ctx context.Context, id string) error {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Remove(ctx, file.Key); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if err := s.fileRepo.Delete(ctx, id); err != nil {
		// The object is already gone; record the key so the row can be
		// reconciled by hand.
		log.Error().Str("key", file.Key).Str("fileId", id).Err(err).
			Msg("object deleted but row removal failed")
		return err
	}

	return nil
}

// normalizeMetadata re-serializes the free-form JSON blob so that the
// stored text is deterministic and round-trips cleanly.
func normalizeMetadata(raw string) (string, error) {
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return "", err
	}

	out, err := json.Marshal(m)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// normalizeID maps an absent or empty id to nil so the column is
// nulled, not set to "".
func normalizeID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
