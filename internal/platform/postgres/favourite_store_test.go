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

func TestPostgresFavouriteStore(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	s := NewPostgresFavouriteStore(db, nil)

	mock.ExpectQuery("INSERT INTO favourites").
		WithArgs(int64(42), int64(100)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), fixedTime))
	mock.ExpectQuery("INSERT INTO favourites").
		WithArgs(int64(42), int64(100)).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "favourites_user_book_key"})
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM favourites WHERE user_id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id ASC LIMIT $2 OFFSET $3")).
		WithArgs(int64(42), 10, int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "book_id", "created_at"}).
			AddRow(int64(5), int64(42), int64(100), fixedTime))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favourites WHERE id = $1")).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	fav := &domain.Favourite{UserID: 42, BookID: 100}
	require.NoError(t, s.Create(ctx, fav))
	assert.Equal(t, int64(5), fav.ID)

	err := s.Create(ctx, &domain.Favourite{UserID: 42, BookID: 100})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	page, err := s.ListByUser(ctx, 42, pagination.NewRequest(0, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(100), page.Content()[0].BookID)

	assert.ErrorIs(t, s.Delete(ctx, 6), store.ErrFavouriteNotFound)
}
