package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUserStore(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	s := NewPostgresUserStore(db, nil)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ada@example.com", "Ada", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), fixedTime, fixedTime))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ada@example.com", "Ada", "hash").
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"})
	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = LOWER($1)")).
		WithArgs("ADA@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "hashed_password", "created_at", "updated_at"}).
			AddRow(int64(1), "ada@example.com", "Ada", "hash", fixedTime, fixedTime))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "hashed_password", "created_at", "updated_at"}))

	user := &domain.User{Email: "ada@example.com", Name: "Ada", HashedPassword: "hash"}
	require.NoError(t, s.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)

	err := s.Create(ctx, &domain.User{Email: "ada@example.com", Name: "Ada", HashedPassword: "hash"})
	assert.ErrorIs(t, err, store.ErrEmailExists)

	found, err := s.GetByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.HashedPassword)

	_, err = s.GetByID(ctx, 2)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
