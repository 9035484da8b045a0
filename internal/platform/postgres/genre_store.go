package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

var genreSortColumns = sortColumns{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
}

// PostgresGenreStore implements store.GenreStore.
type PostgresGenreStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGenreStore creates a PostgresGenreStore. It panics if db is nil.
func NewPostgresGenreStore(db store.DBTX, logger *slog.Logger) *PostgresGenreStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresGenreStore{
		db:     db,
		logger: logger.With(slog.String("component", "genre_store")),
	}
}

var _ store.GenreStore = (*PostgresGenreStore)(nil)

// Create implements store.GenreStore.Create
func (s *PostgresGenreStore) Create(ctx context.Context, genre *domain.Genre) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO genres (name) VALUES ($1) RETURNING id, created_at`,
		genre.Name,
	).Scan(&genre.ID, &genre.CreatedAt)
	if err != nil {
		log.Warn("failed to create genre", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("genre created", slog.Int64("genre_id", genre.ID))
	return nil
}

// GetByID implements store.GenreStore.GetByID
func (s *PostgresGenreStore) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var g domain.Genre
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM genres WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrGenreNotFound
		}
		return nil, MapError(err)
	}
	return &g, nil
}

// List implements store.GenreStore.List
func (s *PostgresGenreStore) List(ctx context.Context, req pagination.Request) (pagination.Page[domain.Genre], error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM genres`).Scan(&total); err != nil {
		return pagination.Page[domain.Genre]{}, fmt.Errorf("count genres: %w", MapError(err))
	}

	query := `SELECT id, name, created_at FROM genres ` +
		genreSortColumns.orderBy(req.Sort, "name ASC", "id") + ` ` + limitOffset(0)
	rows, err := s.db.QueryContext(ctx, query, req.Size, req.Offset())
	if err != nil {
		return pagination.Page[domain.Genre]{}, fmt.Errorf("list genres: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return pagination.Page[domain.Genre]{}, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Genre]{}, fmt.Errorf("iterate genres: %w", err)
	}

	req.Sort = genreSortColumns.allowedSort(req.Sort)
	return pagination.New(genres, req, total), nil
}

// Update implements store.GenreStore.Update
func (s *PostgresGenreStore) Update(ctx context.Context, genre *domain.Genre) error {
	result, err := s.db.ExecContext(ctx, `UPDATE genres SET name = $1 WHERE id = $2`, genre.Name, genre.ID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to update genre",
			slog.Int64("genre_id", genre.ID),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrGenreNotFound)
}

// Delete implements store.GenreStore.Delete
func (s *PostgresGenreStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to delete genre",
			slog.Int64("genre_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrGenreNotFound)
}

// WithTx implements store.GenreStore.WithTx
func (s *PostgresGenreStore) WithTx(tx *sql.Tx) store.GenreStore {
	return &PostgresGenreStore{db: tx, logger: s.logger}
}
