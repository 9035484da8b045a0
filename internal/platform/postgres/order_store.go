package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

var orderSortColumns = sortColumns{
	"id":         "id",
	"createdAt":  "created_at",
	"totalCents": "total_cents",
}

// PostgresOrderStore implements store.OrderStore.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a PostgresOrderStore. It panics if db is nil.
func NewPostgresOrderStore(db store.DBTX, logger *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresOrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

var _ store.OrderStore = (*PostgresOrderStore)(nil)

// Create implements store.OrderStore.Create
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, status, total_cents, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, order.UserID, string(order.Status), order.TotalCents, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		log.Error("failed to create order",
			slog.Int64("user_id", order.UserID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := s.db.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, book_id, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.BookID, item.Quantity, item.UnitPriceCents).Scan(&item.ID)
		if err != nil {
			log.Error("failed to create order item",
				slog.Int64("order_id", order.ID),
				slog.Int64("book_id", item.BookID),
				slog.String("error", err.Error()))
			return MapError(err)
		}
	}

	log.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", order.UserID),
		slog.Int("items", len(order.Items)))
	return nil
}

// GetByID implements store.OrderStore.GetByID
func (s *PostgresOrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, status, total_cents, created_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.UserID, &status, &o.TotalCents, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrOrderNotFound
		}
		return nil, MapError(err)
	}
	o.Status = domain.OrderStatus(status)

	items, err := s.loadItems(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	if o.Items == nil {
		o.Items = []domain.OrderItem{}
	}
	return &o, nil
}

// ListByUser implements store.OrderStore.ListByUser
func (s *PostgresOrderStore) ListByUser(
	ctx context.Context,
	userID int64,
	req pagination.Request,
) (pagination.Page[domain.Order], error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return pagination.Page[domain.Order]{}, fmt.Errorf("count orders: %w", MapError(err))
	}

	query := `SELECT id, user_id, status, total_cents, created_at FROM orders WHERE user_id = $1 ` +
		orderSortColumns.orderBy(req.Sort, "created_at DESC", "id") + ` ` + limitOffset(1)
	rows, err := s.db.QueryContext(ctx, query, userID, req.Size, req.Offset())
	if err != nil {
		return pagination.Page[domain.Order]{}, fmt.Errorf("list orders: %w", MapError(err))
	}

	var orders []domain.Order
	var ids []int64
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(&o.ID, &o.UserID, &status, &o.TotalCents, &o.CreatedAt); err != nil {
			_ = rows.Close()
			return pagination.Page[domain.Order]{}, fmt.Errorf("scan order: %w", err)
		}
		o.Status = domain.OrderStatus(status)
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	err = rows.Err()
	_ = rows.Close()
	if err != nil {
		return pagination.Page[domain.Order]{}, fmt.Errorf("iterate orders: %w", err)
	}

	items, err := s.loadItems(ctx, ids)
	if err != nil {
		return pagination.Page[domain.Order]{}, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderItem{}
		}
	}

	req.Sort = orderSortColumns.allowedSort(req.Sort)
	return pagination.New(orders, req, total), nil
}

// loadItems fetches the items of the given orders in one query, keyed by order ID.
func (s *PostgresOrderStore) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	items := make(map[int64][]domain.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	placeholders := make([]string, len(orderIDs))
	args := make([]any, len(orderIDs))
	for i, id := range orderIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, book_id, quantity, unit_price_cents
		FROM order_items
		WHERE order_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY order_id, id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.BookID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

// UpdateStatus implements store.OrderStore.UpdateStatus
func (s *PostgresOrderStore) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`, string(to), id, string(from))
	if err != nil {
		return MapError(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists); err != nil {
		return MapError(err)
	}
	if !exists {
		return store.ErrOrderNotFound
	}
	return store.ErrStaleStatus
}

// WithTx implements store.OrderStore.WithTx
func (s *PostgresOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return &PostgresOrderStore{db: tx, logger: s.logger}
}
