package service_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTxDB returns a sqlmock database for services that open transactions.
// The stores themselves are mocks, so only BEGIN/COMMIT/ROLLBACK are expected.
func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

// assertDomainError asserts that err is a *domain.Error of the given resource and kind.
func assertDomainError(t *testing.T, err error, resource domain.Resource, kind domain.FailureKind) *domain.Error {
	t.Helper()

	de, ok := domain.AsError(err)
	require.True(t, ok, "expected *domain.Error, got %v", err)
	assert.Equal(t, resource, de.Resource)
	assert.Equal(t, kind, de.Kind)
	return de
}
