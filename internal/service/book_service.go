package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// BookService manages the book catalogue.
type BookService interface {
	CreateBook(ctx context.Context, book *domain.Book) (*domain.Book, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
	ListBooks(ctx context.Context, filter store.BookFilter, req pagination.Request) (pagination.Page[domain.Book], error)
	UpdateBook(ctx context.Context, book *domain.Book) (*domain.Book, error)
	// DeleteBook fails with a book update error while orders reference the book.
	DeleteBook(ctx context.Context, id int64) error
}

// BookServiceImpl implements BookService.
type BookServiceImpl struct {
	books  store.BookStore
	logger *slog.Logger
}

var _ BookService = (*BookServiceImpl)(nil)

// NewBookService creates a BookService.
func NewBookService(books store.BookStore, logger *slog.Logger) *BookServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookServiceImpl{books: books, logger: logger.With("component", "book_service")}
}

// CreateBook implements BookService. The genre is re-checked by the database;
// a genre removed after validation is reported as not found.
func (s *BookServiceImpl) CreateBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if err := s.books.Create(ctx, book); err != nil {
		switch {
		case store.IsDuplicateError(err):
			return nil, domain.NewCreationError(domain.ResourceBook,
				fmt.Sprintf("a book with ISBN %s already exists", book.ISBN), err)
		case isInvalidEntity(err):
			return nil, domain.NotFoundByID(domain.ResourceGenre, book.GenreID)
		default:
			return nil, fmt.Errorf("failed to create book: %w", err)
		}
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("book created",
		"book_id", book.ID,
		"genre_id", book.GenreID)
	return book, nil
}

// GetBook implements BookService.
func (s *BookServiceImpl) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, domain.ResourceBook, id, "failed to retrieve book")
	}
	return book, nil
}

// ListBooks implements BookService.
func (s *BookServiceImpl) ListBooks(
	ctx context.Context,
	filter store.BookFilter,
	req pagination.Request,
) (pagination.Page[domain.Book], error) {
	page, err := s.books.List(ctx, filter, req)
	if err != nil {
		return pagination.Page[domain.Book]{}, fmt.Errorf("failed to list books: %w", err)
	}
	return page, nil
}

// UpdateBook implements BookService.
func (s *BookServiceImpl) UpdateBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if err := s.books.Update(ctx, book); err != nil {
		switch {
		case store.IsDuplicateError(err):
			return nil, domain.NewUpdateError(domain.ResourceBook,
				fmt.Sprintf("a book with ISBN %s already exists", book.ISBN), err)
		case isInvalidEntity(err):
			return nil, domain.NotFoundByID(domain.ResourceGenre, book.GenreID)
		default:
			return nil, notFoundOr(err, domain.ResourceBook, book.ID, "failed to update book")
		}
	}
	return book, nil
}

// DeleteBook implements BookService.
func (s *BookServiceImpl) DeleteBook(ctx context.Context, id int64) error {
	if err := s.books.Delete(ctx, id); err != nil {
		if isInvalidEntity(err) {
			return domain.NewUpdateError(domain.ResourceBook,
				fmt.Sprintf("book %d is part of placed orders", id), err)
		}
		return notFoundOr(err, domain.ResourceBook, id, "failed to delete book")
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("book deleted", "book_id", id)
	return nil
}
