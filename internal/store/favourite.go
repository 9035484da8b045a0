package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
)

// FavouriteStore defines the interface for favourite persistence.
type FavouriteStore interface {
	// Create saves a favourite and sets its ID and CreatedAt.
	// Returns ErrDuplicate if the user already favourited the book and
	// ErrInvalidEntity if the book or user does not exist.
	Create(ctx context.Context, favourite *domain.Favourite) error

	// GetByID returns ErrFavouriteNotFound if the favourite does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Favourite, error)

	// ListByUser returns one page of a user's favourites, newest first unless
	// req is sorted.
	ListByUser(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[domain.Favourite], error)

	// Delete returns ErrFavouriteNotFound if the favourite does not exist.
	Delete(ctx context.Context, id int64) error

	WithTx(tx *sql.Tx) FavouriteStore
}
