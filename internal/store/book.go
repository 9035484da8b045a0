package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
)

// BookFilter narrows a book listing. Nil fields do not filter.
type BookFilter struct {
	GenreID *int64
}

// BookStore defines the interface for book persistence.
type BookStore interface {
	// Create saves a new book and sets its ID and timestamps.
	// Returns ErrDuplicate if the ISBN is already taken and ErrInvalidEntity
	// if the genre does not exist.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// GetByIDs returns the books that exist among ids, keyed by ID.
	// Missing IDs are simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Book, error)

	// List returns one page of books matching filter.
	List(ctx context.Context, filter BookFilter, req pagination.Request) (pagination.Page[domain.Book], error)

	// Update replaces the mutable fields of a book and refreshes UpdatedAt.
	// Returns ErrBookNotFound, ErrDuplicate or ErrInvalidEntity.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book.
	// Returns ErrBookNotFound if the book does not exist and ErrInvalidEntity
	// if an order still references it.
	Delete(ctx context.Context, id int64) error

	WithTx(tx *sql.Tx) BookStore
}
