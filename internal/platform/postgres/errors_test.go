package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/bookstore-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
		same    bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", sql.ErrNoRows), wantIs: store.ErrNotFound},
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "books_isbn_key"},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation",
			err:    &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "books_genre_id_fkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "check violation",
			err:    &pgconn.PgError{Code: checkViolationCode, ConstraintName: "cart_items_quantity_check"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not null violation",
			err:    &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			wantIs: store.ErrInvalidEntity,
		},
		{name: "unmapped", err: plain, same: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			switch {
			case tt.wantNil:
				assert.NoError(t, got)
			case tt.same:
				assert.Same(t, tt.err, got)
			default:
				assert.ErrorIs(t, got, tt.wantIs)
				assert.ErrorIs(t, got, tt.err, "original error should stay in the chain")
			}
		})
	}
}

func TestViolationHelpers(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode})
	fk := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("other")))
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, checkRowsAffected(sqlmock.NewResult(0, 1), store.ErrBookNotFound))
	assert.ErrorIs(t, checkRowsAffected(sqlmock.NewResult(0, 0), store.ErrBookNotFound), store.ErrBookNotFound)

	failing := sqlmock.NewErrorResult(errors.New("driver cannot count"))
	assert.ErrorContains(t, checkRowsAffected(failing, store.ErrBookNotFound), "rows affected")
}
