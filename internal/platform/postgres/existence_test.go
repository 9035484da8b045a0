package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistenceChecker_ExistsByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	checker := NewExistenceChecker(db, nil)
	ctx := context.Background()

	t.Run("one lookup per resource table", func(t *testing.T) {
		for i, resource := range domain.Resources {
			table := resourceTables[resource]
			require.NotEmpty(t, table, "resource %s has no table", resource)

			exists := i%2 == 0
			mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM " + table + " WHERE id = $1)")).
				WithArgs(int64(i + 1)).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))

			got, err := checker.ExistsByID(ctx, resource, int64(i+1))
			require.NoError(t, err)
			assert.Equal(t, exists, got, resource.String())
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error is returned", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(9)).
			WillReturnError(errors.New("connection refused"))

		got, err := checker.ExistsByID(ctx, domain.ResourceBook, 9)
		assert.Error(t, err)
		assert.False(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown resource does not query", func(t *testing.T) {
		_, err := checker.ExistsByID(ctx, domain.Resource(0), 1)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewExistenceChecker_NilDB(t *testing.T) {
	assert.Panics(t, func() { NewExistenceChecker(nil, nil) })
}
