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

var favouriteSortColumns = sortColumns{
	"id":        "id",
	"createdAt": "created_at",
}

// PostgresFavouriteStore implements store.FavouriteStore.
type PostgresFavouriteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFavouriteStore creates a PostgresFavouriteStore. It panics if db is nil.
func NewPostgresFavouriteStore(db store.DBTX, logger *slog.Logger) *PostgresFavouriteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresFavouriteStore{
		db:     db,
		logger: logger.With(slog.String("component", "favourite_store")),
	}
}

var _ store.FavouriteStore = (*PostgresFavouriteStore)(nil)

// Create implements store.FavouriteStore.Create
func (s *PostgresFavouriteStore) Create(ctx context.Context, favourite *domain.Favourite) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO favourites (user_id, book_id) VALUES ($1, $2) RETURNING id, created_at`,
		favourite.UserID, favourite.BookID,
	).Scan(&favourite.ID, &favourite.CreatedAt)
	if err != nil {
		log.Warn("failed to create favourite",
			slog.Int64("user_id", favourite.UserID),
			slog.Int64("book_id", favourite.BookID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("favourite created",
		slog.Int64("favourite_id", favourite.ID),
		slog.Int64("user_id", favourite.UserID))
	return nil
}

// GetByID implements store.FavouriteStore.GetByID
func (s *PostgresFavouriteStore) GetByID(ctx context.Context, id int64) (*domain.Favourite, error) {
	var f domain.Favourite
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, book_id, created_at FROM favourites WHERE id = $1`, id,
	).Scan(&f.ID, &f.UserID, &f.BookID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrFavouriteNotFound
		}
		return nil, MapError(err)
	}
	return &f, nil
}

// ListByUser implements store.FavouriteStore.ListByUser
func (s *PostgresFavouriteStore) ListByUser(
	ctx context.Context,
	userID int64,
	req pagination.Request,
) (pagination.Page[domain.Favourite], error) {
	var total int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favourites WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return pagination.Page[domain.Favourite]{}, fmt.Errorf("count favourites: %w", MapError(err))
	}

	query := `SELECT id, user_id, book_id, created_at FROM favourites WHERE user_id = $1 ` +
		favouriteSortColumns.orderBy(req.Sort, "created_at DESC", "id") + ` ` + limitOffset(1)
	rows, err := s.db.QueryContext(ctx, query, userID, req.Size, req.Offset())
	if err != nil {
		return pagination.Page[domain.Favourite]{}, fmt.Errorf("list favourites: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var favourites []domain.Favourite
	for rows.Next() {
		var f domain.Favourite
		if err := rows.Scan(&f.ID, &f.UserID, &f.BookID, &f.CreatedAt); err != nil {
			return pagination.Page[domain.Favourite]{}, fmt.Errorf("scan favourite: %w", err)
		}
		favourites = append(favourites, f)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Favourite]{}, fmt.Errorf("iterate favourites: %w", err)
	}

	req.Sort = favouriteSortColumns.allowedSort(req.Sort)
	return pagination.New(favourites, req, total), nil
}

// Delete implements store.FavouriteStore.Delete
func (s *PostgresFavouriteStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM favourites WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrFavouriteNotFound)
}

// WithTx implements store.FavouriteStore.WithTx
func (s *PostgresFavouriteStore) WithTx(tx *sql.Tx) store.FavouriteStore {
	return &PostgresFavouriteStore{db: tx, logger: s.logger}
}
