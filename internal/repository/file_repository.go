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

type FileRepositoryImpl struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) *FileRepositoryImpl {
	return &FileRepositoryImpl{db: db}
}

func (r *FileRepositoryImpl) Create(ctx context.Context, file *models.File) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	file.CreatedAt = time.Now()

	query := `
        INSERT INTO files (id, category_id, name, url, key, size, mime_type, location, captured_at, metadata, uploaded_by, created_at)
        VALUES (:id, :category_id, :name, :url, :key, :size, :mime_type, :location, :captured_at, :metadata, :uploaded_by, :created_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, file)
	if err != nil {
		return fmt.Errorf("failed to create file record: %w", err)
	}

	return nil
}

func (r *FileRepositoryImpl) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := `SELECT * FROM files WHERE id = $1`

	var file models.File
	err := r.db.GetContext(ctx, &file, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return &file, nil
}

func (r *FileRepositoryImpl) GetByIDs(ctx context.Context, ids []string) (map[string]models.File, error) {
	if len(ids) == 0 {
		return map[string]models.File{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM files WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build files query: %w", err)
	}

	var files []models.File
	err = r.db.SelectContext(ctx, &files, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	result := make(map[string]models.File, len(files))
	for _, f := range files {
		result[f.ID] = f
	}

	return result, nil
}

// List returns all files newest first, optionally filtered by category.
func (r *FileRepositoryImpl) List(ctx context.Context, categoryID string) ([]models.File, error) {
	files := []models.File{}

	var err error
	if categoryID != "" {
		query := `SELECT * FROM files WHERE category_id = $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &files, query, categoryID)
	} else {
		query := `SELECT * FROM files ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &files, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return files, nil
}

func (r *FileRepositoryImpl) LatestByCategory(ctx context.Context, categoryID string) (*models.File, error) {
	query := `SELECT * FROM files WHERE category_id = $1 ORDER BY created_at DESC LIMIT 1`

	var file models.File
	err := r.db.GetContext(ctx, &file, query, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest file: %w", err)
	}

	return &file, nil
}

func (r *FileRepositoryImpl) Update(ctx context.Context, file *models.File) error {
	query := `
		UPDATE files SET
			name = :name,
			location = :location,
			captured_at = :captured_at,
			metadata = :metadata,
			category_id = :category_id
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, file)
	if err != nil {
		return fmt.Errorf("failed to update file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *FileRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM files WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
