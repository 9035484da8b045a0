package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
)

// OrderStore defines the interface for order persistence. Returned orders
// always have their Items loaded.
//
// Create writes several rows and MUST run inside a transaction:
//
//	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
//	    return orderStore.WithTx(tx).Create(ctx, order)
//	})
type OrderStore interface {
	// Create saves an order with its items and sets all IDs and CreatedAt.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// ListByUser returns one page of a user's orders, newest first unless req is sorted.
	ListByUser(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[domain.Order], error)

	// UpdateStatus moves an order from status from to status to. It returns
	// ErrOrderNotFound if the order does not exist and ErrStaleStatus if the
	// order is no longer in status from.
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error

	WithTx(tx *sql.Tx) OrderStore
}
