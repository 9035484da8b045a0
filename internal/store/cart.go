package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bookstore-api/internal/domain"
)

// CartStore defines the interface for cart persistence. Returned carts always
// have their Items loaded.
type CartStore interface {
	// GetOrCreateForUser returns the user's cart, creating an empty one on first use.
	GetOrCreateForUser(ctx context.Context, userID int64) (*domain.Cart, error)

	// GetByID returns ErrCartNotFound if the cart does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)

	// AddItem inserts a line into a cart and sets its ID and CreatedAt.
	// Returns ErrDuplicate if the cart already holds the book and ErrInvalidEntity
	// if the cart or book does not exist.
	AddItem(ctx context.Context, item *domain.CartItem) error

	// UpdateItemQuantity returns ErrCartItemNotFound if the item does not exist.
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error

	// DeleteItem returns ErrCartItemNotFound if the item does not exist.
	DeleteItem(ctx context.Context, itemID int64) error

	// Clear removes every item from a cart.
	Clear(ctx context.Context, cartID int64) error

	WithTx(tx *sql.Tx) CartStore
}
