package service

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

// OrderService places and manages a user's orders.
type OrderService interface {
	// Checkout turns the cart into an order and empties the cart, atomically.
	// An empty cart or a cart owned by another user is an order creation failure.
	Checkout(ctx context.Context, userID, cartID int64) (*domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[domain.Order], error)
	// CancelOrder withdraws a placed order. Cancelling twice is an order update failure.
	CancelOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error)
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	orders store.OrderStore
	carts  store.CartStore
	books  store.BookStore
	db     store.TxBeginner
	logger *slog.Logger
}

var _ OrderService = (*OrderServiceImpl)(nil)

// NewOrderService creates an OrderService.
func NewOrderService(
	orders store.OrderStore,
	carts store.CartStore,
	books store.BookStore,
	db store.TxBeginner,
	logger *slog.Logger,
) *OrderServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderServiceImpl{
		orders: orders,
		carts:  carts,
		books:  books,
		db:     db,
		logger: logger.With("component", "order_service"),
	}
}

// Checkout implements OrderService.
func (s *OrderServiceImpl) Checkout(ctx context.Context, userID, cartID int64) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var order *domain.Order
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		carts := s.carts.WithTx(tx)

		cart, err := carts.GetByID(ctx, cartID)
		if err != nil {
			return notFoundOr(err, domain.ResourceCart, cartID, "failed to load cart")
		}
		if cart.UserID != userID {
			return domain.NewCreationError(domain.ResourceOrder,
				fmt.Sprintf("cart %d does not belong to the current user", cartID), nil)
		}

		ids := make([]int64, 0, len(cart.Items))
		for _, item := range cart.Items {
			ids = append(ids, item.BookID)
		}
		books, err := s.books.WithTx(tx).GetByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load ordered books: %w", err)
		}

		order, err = domain.NewOrderFromCart(cart, books)
		if err != nil {
			return err
		}
		if err := s.orders.WithTx(tx).Create(ctx, order); err != nil {
			if isInvalidEntity(err) {
				return domain.NewCreationError(domain.ResourceOrder, "ordered books are no longer available", err)
			}
			return fmt.Errorf("failed to save order: %w", err)
		}
		return carts.Clear(ctx, cart.ID)
	})
	if err != nil {
		if _, ok := domain.AsError(err); !ok {
			log.Error("checkout failed", "error", err, "cart_id", cartID)
		}
		return nil, err
	}

	log.Info("order placed",
		"order_id", order.ID,
		"user_id", userID,
		"total_cents", order.TotalCents)
	return order, nil
}

// GetOrder implements OrderService. Orders of other users are reported as not found.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, notFoundOr(err, domain.ResourceOrder, orderID, "failed to retrieve order")
	}
	if order.UserID != userID {
		return nil, domain.NotFoundByID(domain.ResourceOrder, orderID)
	}
	return order, nil
}

// ListOrders implements OrderService.
func (s *OrderServiceImpl) ListOrders(
	ctx context.Context,
	userID int64,
	req pagination.Request,
) (pagination.Page[domain.Order], error) {
	page, err := s.orders.ListByUser(ctx, userID, req)
	if err != nil {
		return pagination.Page[domain.Order]{}, fmt.Errorf("failed to list orders: %w", err)
	}
	return page, nil
}

// CancelOrder implements OrderService.
func (s *OrderServiceImpl) CancelOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, domain.NewUpdateError(domain.ResourceOrder,
			fmt.Sprintf("order %d is already cancelled", orderID), nil)
	}

	err = s.orders.UpdateStatus(ctx, orderID, domain.OrderStatusPlaced, domain.OrderStatusCancelled)
	if errors.Is(err, store.ErrStaleStatus) {
		return nil, domain.NewUpdateError(domain.ResourceOrder,
			fmt.Sprintf("order %d is already cancelled", orderID), nil)
	}
	if err != nil {
		return nil, notFoundOr(err, domain.ResourceOrder, orderID, "failed to cancel order")
	}
	order.Status = domain.OrderStatusCancelled

	logger.FromContextOrDefault(ctx, s.logger).Info("order cancelled", "order_id", orderID)
	return order, nil
}
