package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photofolio/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCategoryRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCategoryRepository(sqlxDB)

	ctx := context.Background()

	t.Run("generates id and timestamps", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO categories").
			WillReturnResult(sqlmock.NewResult(0, 1))

		category := &models.Category{Name: "Landscapes", Slug: "landscapes"}
		err := repo.Create(ctx, category)

		require.NoError(t, err)
		assert.NotEmpty(t, category.ID)
		assert.False(t, category.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate slug surfaces the database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO categories").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		err := repo.Create(ctx, &models.Category{Name: "Landscapes", Slug: "landscapes"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create category")
	})
}

func TestCategoryRepository_GetBySlug(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCategoryRepository(sqlxDB)

	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "slug", "description", "created_at", "updated_at"}).
			AddRow("cat-1", "Landscapes", "landscapes", nil, now, now)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM categories WHERE slug = $1`)).
			WithArgs("landscapes").
			WillReturnRows(rows)

		category, err := repo.GetBySlug(ctx, "landscapes")

		require.NoError(t, err)
		assert.Equal(t, "cat-1", category.ID)
		assert.Nil(t, category.Description)
	})

	t.Run("missing slug maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM categories WHERE slug = $1`)).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		category, err := repo.GetBySlug(ctx, "nope")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, category)
	})
}

func TestCategoryRepository_List(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCategoryRepository(sqlxDB)

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "slug", "description", "created_at", "updated_at"}).
		AddRow("cat-2", "Portraits", "portraits", nil, now, now).
		AddRow("cat-1", "Landscapes", "landscapes", nil, now.Add(-time.Hour), now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM categories ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	categories, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "cat-2", categories[0].ID)
}

func TestCategoryRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewCategoryRepository(sqlxDB)

	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
		WithArgs("cat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(ctx, "cat-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
