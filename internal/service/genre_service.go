package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// GenreService manages the genre catalogue.
type GenreService interface {
	CreateGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetGenre(ctx context.Context, id int64) (*domain.Genre, error)
	ListGenres(ctx context.Context, req pagination.Request) (pagination.Page[domain.Genre], error)
	// RenameGenre fails with a genre update error when the name is taken.
	RenameGenre(ctx context.Context, id int64, name string) (*domain.Genre, error)
	// DeleteGenre fails with a genre update error while books reference the genre.
	DeleteGenre(ctx context.Context, id int64) error
}

// GenreServiceImpl implements GenreService.
type GenreServiceImpl struct {
	genres store.GenreStore
	logger *slog.Logger
}

var _ GenreService = (*GenreServiceImpl)(nil)

// NewGenreService creates a GenreService.
func NewGenreService(genres store.GenreStore, logger *slog.Logger) *GenreServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenreServiceImpl{genres: genres, logger: logger.With("component", "genre_service")}
}

// CreateGenre implements GenreService.
func (s *GenreServiceImpl) CreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	genre := &domain.Genre{Name: strings.TrimSpace(name)}
	if err := s.genres.Create(ctx, genre); err != nil {
		if store.IsDuplicateError(err) {
			return nil, domain.NewCreationError(domain.ResourceGenre,
				fmt.Sprintf("genre %q already exists", genre.Name), err)
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("genre created", "genre_id", genre.ID)
	return genre, nil
}

// GetGenre implements GenreService.
func (s *GenreServiceImpl) GetGenre(ctx context.Context, id int64) (*domain.Genre, error) {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, domain.ResourceGenre, id, "failed to retrieve genre")
	}
	return genre, nil
}

// ListGenres implements GenreService.
func (s *GenreServiceImpl) ListGenres(ctx context.Context, req pagination.Request) (pagination.Page[domain.Genre], error) {
	page, err := s.genres.List(ctx, req)
	if err != nil {
		return pagination.Page[domain.Genre]{}, fmt.Errorf("failed to list genres: %w", err)
	}
	return page, nil
}

// RenameGenre implements GenreService.
func (s *GenreServiceImpl) RenameGenre(ctx context.Context, id int64, name string) (*domain.Genre, error) {
	genre := &domain.Genre{ID: id, Name: strings.TrimSpace(name)}
	if err := s.genres.Update(ctx, genre); err != nil {
		if store.IsDuplicateError(err) {
			return nil, domain.NewUpdateError(domain.ResourceGenre,
				fmt.Sprintf("genre %q already exists", genre.Name), err)
		}
		return nil, notFoundOr(err, domain.ResourceGenre, id, "failed to update genre")
	}
	return genre, nil
}

// DeleteGenre implements GenreService.
func (s *GenreServiceImpl) DeleteGenre(ctx context.Context, id int64) error {
	if err := s.genres.Delete(ctx, id); err != nil {
		if isInvalidEntity(err) {
			return domain.NewUpdateError(domain.ResourceGenre,
				fmt.Sprintf("genre %d is still referenced by books", id), err)
		}
		return notFoundOr(err, domain.ResourceGenre, id, "failed to delete genre")
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("genre deleted", "genre_id", id)
	return nil
}
