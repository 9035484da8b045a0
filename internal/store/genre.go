package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
)

// GenreStore defines the interface for genre persistence.
type GenreStore interface {
	// Create saves a new genre and sets its ID and CreatedAt.
	// Returns ErrDuplicate if the name is already taken.
	Create(ctx context.Context, genre *domain.Genre) error

	// GetByID returns ErrGenreNotFound if the genre does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Genre, error)

	// List returns one page of genres. Unknown sort properties are ignored.
	List(ctx context.Context, req pagination.Request) (pagination.Page[domain.Genre], error)

	// Update renames a genre.
	// Returns ErrGenreNotFound if the genre does not exist and ErrDuplicate if
	// the new name is taken.
	Update(ctx context.Context, genre *domain.Genre) error

	// Delete removes a genre.
	// Returns ErrGenreNotFound if the genre does not exist and ErrInvalidEntity
	// if books still reference it.
	Delete(ctx context.Context, id int64) error

	WithTx(tx *sql.Tx) GenreStore
}
