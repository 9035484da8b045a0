package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// PostgresCartStore implements store.CartStore.
type PostgresCartStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCartStore creates a PostgresCartStore. It panics if db is nil.
func NewPostgresCartStore(db store.DBTX, logger *slog.Logger) *PostgresCartStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCartStore{
		db:     db,
		logger: logger.With(slog.String("component", "cart_store")),
	}
}

var _ store.CartStore = (*PostgresCartStore)(nil)

// GetOrCreateForUser implements store.CartStore.GetOrCreateForUser
func (s *PostgresCartStore) GetOrCreateForUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	// The no-op update makes RETURNING yield the existing row on conflict.
	query := `
		INSERT INTO carts (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, created_at, updated_at
	`
	var cart domain.Cart
	err := s.db.QueryRowContext(ctx, query, userID).
		Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get or create cart",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if err := s.loadItems(ctx, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetByID implements store.CartStore.GetByID
func (s *PostgresCartStore) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	var cart domain.Cart
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, created_at, updated_at FROM carts WHERE id = $1`, id,
	).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCartNotFound
		}
		return nil, MapError(err)
	}

	if err := s.loadItems(ctx, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *PostgresCartStore) loadItems(ctx context.Context, cart *domain.Cart) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, cart_id, book_id, quantity, created_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at, id
	`, cart.ID)
	if err != nil {
		return fmt.Errorf("load cart items: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	cart.Items = []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.BookID, &item.Quantity, &item.CreatedAt); err != nil {
			return fmt.Errorf("scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}
	return rows.Err()
}

// AddItem implements store.CartStore.AddItem
func (s *PostgresCartStore) AddItem(ctx context.Context, item *domain.CartItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO cart_items (cart_id, book_id, quantity) VALUES ($1, $2, $3) RETURNING id, created_at`,
		item.CartID, item.BookID, item.Quantity,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		log.Warn("failed to add cart item",
			slog.Int64("cart_id", item.CartID),
			slog.Int64("book_id", item.BookID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("cart item added", slog.Int64("cart_item_id", item.ID))
	return nil
}

// UpdateItemQuantity implements store.CartStore.UpdateItemQuantity
func (s *PostgresCartStore) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	result, err := s.db.ExecContext(ctx, `UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, itemID)
	if err != nil {
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrCartItemNotFound)
}

// DeleteItem implements store.CartStore.DeleteItem
func (s *PostgresCartStore) DeleteItem(ctx context.Context, itemID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrCartItemNotFound)
}

// Clear implements store.CartStore.Clear
func (s *PostgresCartStore) Clear(ctx context.Context, cartID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.CartStore.WithTx
func (s *PostgresCartStore) WithTx(tx *sql.Tx) store.CartStore {
	return &PostgresCartStore{db: tx, logger: s.logger}
}
