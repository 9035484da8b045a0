package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresGenreStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sets generated fields", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresGenreStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO genres (name) VALUES ($1) RETURNING id, created_at")).
			WithArgs("Fantasy").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), fixedTime))

		genre := &domain.Genre{Name: "Fantasy"}
		require.NoError(t, s.Create(ctx, genre))
		assert.Equal(t, int64(3), genre.ID)
		assert.Equal(t, fixedTime, genre.CreatedAt)
	})

	t.Run("duplicate name", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresGenreStore(db, nil)

		mock.ExpectQuery("INSERT INTO genres").
			WithArgs("Fantasy").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "genres_name_key"})

		err := s.Create(ctx, &domain.Genre{Name: "Fantasy"})
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})
}

func TestPostgresGenreStore_GetByID(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	s := NewPostgresGenreStore(db, nil)

	mock.ExpectQuery("SELECT id, name, created_at FROM genres WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(int64(1), "Poetry", fixedTime))
	mock.ExpectQuery("SELECT id, name, created_at FROM genres WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	genre, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Poetry", genre.Name)

	_, err = s.GetByID(ctx, 2)
	assert.ErrorIs(t, err, store.ErrGenreNotFound)
}

func TestPostgresGenreStore_List(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	s := NewPostgresGenreStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM genres")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM genres ORDER BY name DESC, id ASC LIMIT $1 OFFSET $2")).
		WithArgs(2, int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(4), "History", fixedTime).
			AddRow(int64(2), "Drama", fixedTime))

	req := pagination.NewRequest(1, 2,
		pagination.Order{Property: "name", Direction: pagination.Desc},
		pagination.Order{Property: "secret", Direction: pagination.Asc},
	)
	page, err := s.List(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalElements())
	assert.Equal(t, 3, page.TotalPages())
	assert.False(t, page.IsLast())
	assert.Len(t, page.Content(), 2)
	assert.Equal(t, pagination.Sort{{Property: "name", Direction: pagination.Desc}}, page.Sort())
}

func TestPostgresGenreStore_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	s := NewPostgresGenreStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE genres SET name = $1 WHERE id = $2")).
		WithArgs("Sci-Fi", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM genres WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "books_genre_id_fkey"})
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM genres WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.ErrorIs(t, s.Update(ctx, &domain.Genre{ID: 8, Name: "Sci-Fi"}), store.ErrGenreNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 4), store.ErrInvalidEntity)
	assert.NoError(t, s.Delete(ctx, 5))
}

func TestNewPostgresGenreStore_NilDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresGenreStore(nil, nil) })
}
