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

// FavouriteEntry is a favourite together with the book it points at.
// Book is nil only if the book vanished between the two reads.
type FavouriteEntry struct {
	Favourite domain.Favourite
	Book      *domain.Book
}

// FavouriteService manages a user's favourite books.
type FavouriteService interface {
	AddFavourite(ctx context.Context, userID, bookID int64) (*FavouriteEntry, error)
	ListFavourites(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[FavouriteEntry], error)
	// RemoveFavourite deletes one of the user's favourites. A favourite owned by
	// someone else is reported as not found.
	RemoveFavourite(ctx context.Context, userID, favouriteID int64) error
}

// FavouriteServiceImpl implements FavouriteService.
type FavouriteServiceImpl struct {
	favourites store.FavouriteStore
	books      store.BookStore
	logger     *slog.Logger
}

var _ FavouriteService = (*FavouriteServiceImpl)(nil)

// NewFavouriteService creates a FavouriteService.
func NewFavouriteService(
	favourites store.FavouriteStore,
	books store.BookStore,
	logger *slog.Logger,
) *FavouriteServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavouriteServiceImpl{
		favourites: favourites,
		books:      books,
		logger:     logger.With("component", "favourite_service"),
	}
}

// AddFavourite implements FavouriteService.
func (s *FavouriteServiceImpl) AddFavourite(ctx context.Context, userID, bookID int64) (*FavouriteEntry, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, notFoundOr(err, domain.ResourceBook, bookID, "failed to retrieve book")
	}

	fav := &domain.Favourite{UserID: userID, BookID: bookID}
	if err := s.favourites.Create(ctx, fav); err != nil {
		switch {
		case store.IsDuplicateError(err):
			return nil, domain.NewCreationError(domain.ResourceFavourite,
				fmt.Sprintf("book %d is already a favourite", bookID), err)
		case isInvalidEntity(err):
			return nil, domain.NotFoundByID(domain.ResourceBook, bookID)
		default:
			return nil, fmt.Errorf("failed to add favourite: %w", err)
		}
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("favourite added",
		"favourite_id", fav.ID,
		"user_id", userID,
		"book_id", bookID)
	return &FavouriteEntry{Favourite: *fav, Book: book}, nil
}

// ListFavourites implements FavouriteService.
func (s *FavouriteServiceImpl) ListFavourites(
	ctx context.Context,
	userID int64,
	req pagination.Request,
) (pagination.Page[FavouriteEntry], error) {
	page, err := s.favourites.ListByUser(ctx, userID, req)
	if err != nil {
		return pagination.Page[FavouriteEntry]{}, fmt.Errorf("failed to list favourites: %w", err)
	}

	favs := page.Content()
	ids := make([]int64, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.BookID)
	}
	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return pagination.Page[FavouriteEntry]{}, fmt.Errorf("failed to load favourite books: %w", err)
	}

	return pagination.Map(page, func(f domain.Favourite) FavouriteEntry {
		return FavouriteEntry{Favourite: f, Book: books[f.BookID]}
	}), nil
}

// RemoveFavourite implements FavouriteService.
func (s *FavouriteServiceImpl) RemoveFavourite(ctx context.Context, userID, favouriteID int64) error {
	fav, err := s.favourites.GetByID(ctx, favouriteID)
	if err != nil {
		return notFoundOr(err, domain.ResourceFavourite, favouriteID, "failed to retrieve favourite")
	}
	if fav.UserID != userID {
		return domain.NotFoundByID(domain.ResourceFavourite, favouriteID)
	}

	if err := s.favourites.Delete(ctx, favouriteID); err != nil {
		return notFoundOr(err, domain.ResourceFavourite, favouriteID, "failed to delete favourite")
	}
	return nil
}
