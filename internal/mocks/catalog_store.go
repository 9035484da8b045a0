package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// MockGenreStore implements store.GenreStore for testing.
// Unset function fields succeed with zero values, except GetByID which
// reports store.ErrGenreNotFound.
type MockGenreStore struct {
	CreateFn  func(ctx context.Context, genre *domain.Genre) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Genre, error)
	ListFn    func(ctx context.Context, req pagination.Request) (pagination.Page[domain.Genre], error)
	UpdateFn  func(ctx context.Context, genre *domain.Genre) error
	DeleteFn  func(ctx context.Context, id int64) error
}

var _ store.GenreStore = (*MockGenreStore)(nil)

// Create implements store.GenreStore.
func (m *MockGenreStore) Create(ctx context.Context, genre *domain.Genre) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, genre)
	}
	return nil
}

// GetByID implements store.GenreStore.
func (m *MockGenreStore) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrGenreNotFound
}

// List implements store.GenreStore.
func (m *MockGenreStore) List(ctx context.Context, req pagination.Request) (pagination.Page[domain.Genre], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}
	return pagination.Empty[domain.Genre](req), nil
}

// Update implements store.GenreStore.
func (m *MockGenreStore) Update(ctx context.Context, genre *domain.Genre) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, genre)
	}
	return nil
}

// Delete implements store.GenreStore.
func (m *MockGenreStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// WithTx implements store.GenreStore.
func (m *MockGenreStore) WithTx(tx *sql.Tx) store.GenreStore {
	return m
}

// MockBookStore implements store.BookStore for testing.
// Without function fields it serves the Books map.
type MockBookStore struct {
	CreateFn   func(ctx context.Context, book *domain.Book) error
	GetByIDFn  func(ctx context.Context, id int64) (*domain.Book, error)
	GetByIDsFn func(ctx context.Context, ids []int64) (map[int64]*domain.Book, error)
	ListFn     func(ctx context.Context, filter store.BookFilter, req pagination.Request) (pagination.Page[domain.Book], error)
	UpdateFn   func(ctx context.Context, book *domain.Book) error
	DeleteFn   func(ctx context.Context, id int64) error

	Books map[int64]*domain.Book
}

var _ store.BookStore = (*MockBookStore)(nil)

// Create implements store.BookStore.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}
	return nil
}

// GetByID implements store.BookStore.
func (m *MockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if book, ok := m.Books[id]; ok {
		return book, nil
	}
	return nil, store.ErrBookNotFound
}

// GetByIDs implements store.BookStore.
func (m *MockBookStore) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Book, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	found := make(map[int64]*domain.Book, len(ids))
	for _, id := range ids {
		if book, ok := m.Books[id]; ok {
			found[id] = book
		}
	}
	return found, nil
}

// List implements store.BookStore.
func (m *MockBookStore) List(
	ctx context.Context,
	filter store.BookFilter,
	req pagination.Request,
) (pagination.Page[domain.Book], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, req)
	}
	return pagination.Empty[domain.Book](req), nil
}

// Update implements store.BookStore.
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}
	return nil
}

// Delete implements store.BookStore.
func (m *MockBookStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// WithTx implements store.BookStore.
func (m *MockBookStore) WithTx(tx *sql.Tx) store.BookStore {
	return m
}

// MockFavouriteStore implements store.FavouriteStore for testing.
type MockFavouriteStore struct {
	CreateFn     func(ctx context.Context, favourite *domain.Favourite) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Favourite, error)
	ListByUserFn func(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[domain.Favourite], error)
	DeleteFn     func(ctx context.Context, id int64) error
}

var _ store.FavouriteStore = (*MockFavouriteStore)(nil)

// Create implements store.FavouriteStore.
func (m *MockFavouriteStore) Create(ctx context.Context, favourite *domain.Favourite) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, favourite)
	}
	return nil
}

// GetByID implements store.FavouriteStore.
func (m *MockFavouriteStore) GetByID(ctx context.Context, id int64) (*domain.Favourite, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrFavouriteNotFound
}

// ListByUser implements store.FavouriteStore.
func (m *MockFavouriteStore) ListByUser(
	ctx context.Context,
	userID int64,
	req pagination.Request,
) (pagination.Page[domain.Favourite], error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, req)
	}
	return pagination.Empty[domain.Favourite](req), nil
}

// Delete implements store.FavouriteStore.
func (m *MockFavouriteStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// WithTx implements store.FavouriteStore.
func (m *MockFavouriteStore) WithTx(tx *sql.Tx) store.FavouriteStore {
	return m
}
