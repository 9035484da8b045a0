package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// MockCartStore implements store.CartStore for testing.
type MockCartStore struct {
	GetOrCreateForUserFn func(ctx context.Context, userID int64) (*domain.Cart, error)
	GetByIDFn            func(ctx context.Context, id int64) (*domain.Cart, error)
	AddItemFn            func(ctx context.Context, item *domain.CartItem) error
	UpdateItemQuantityFn func(ctx context.Context, itemID int64, quantity int) error
	DeleteItemFn         func(ctx context.Context, itemID int64) error
	ClearFn              func(ctx context.Context, cartID int64) error

	// ClearedCarts records the carts passed to Clear.
	ClearedCarts []int64
}

var _ store.CartStore = (*MockCartStore)(nil)

// GetOrCreateForUser implements store.CartStore.
func (m *MockCartStore) GetOrCreateForUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	if m.GetOrCreateForUserFn != nil {
		return m.GetOrCreateForUserFn(ctx, userID)
	}
	return &domain.Cart{ID: userID, UserID: userID, Items: []domain.CartItem{}}, nil
}

// GetByID implements store.CartStore.
func (m *MockCartStore) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCartNotFound
}

// AddItem implements store.CartStore.
func (m *MockCartStore) AddItem(ctx context.Context, item *domain.CartItem) error {
	if m.AddItemFn != nil {
		return m.AddItemFn(ctx, item)
	}
	return nil
}

// UpdateItemQuantity implements store.CartStore.
func (m *MockCartStore) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	if m.UpdateItemQuantityFn != nil {
		return m.UpdateItemQuantityFn(ctx, itemID, quantity)
	}
	return nil
}

// DeleteItem implements store.CartStore.
func (m *MockCartStore) DeleteItem(ctx context.Context, itemID int64) error {
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, itemID)
	}
	return nil
}

// Clear implements store.CartStore.
func (m *MockCartStore) Clear(ctx context.Context, cartID int64) error {
	m.ClearedCarts = append(m.ClearedCarts, cartID)
	if m.ClearFn != nil {
		return m.ClearFn(ctx, cartID)
	}
	return nil
}

// WithTx implements store.CartStore.
func (m *MockCartStore) WithTx(tx *sql.Tx) store.CartStore {
	return m
}

// MockOrderStore implements store.OrderStore for testing.
type MockOrderStore struct {
	CreateFn       func(ctx context.Context, order *domain.Order) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Order, error)
	ListByUserFn   func(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[domain.Order], error)
	UpdateStatusFn func(ctx context.Context, id int64, from, to domain.OrderStatus) error

	// Created records the orders passed to Create.
	Created []*domain.Order
}

var _ store.OrderStore = (*MockOrderStore)(nil)

// Create implements store.OrderStore.
func (m *MockOrderStore) Create(ctx context.Context, order *domain.Order) error {
	m.Created = append(m.Created, order)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, order)
	}
	return nil
}

// GetByID implements store.OrderStore.
func (m *MockOrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrOrderNotFound
}

// ListByUser implements store.OrderStore.
func (m *MockOrderStore) ListByUser(
	ctx context.Context,
	userID int64,
	req pagination.Request,
) (pagination.Page[domain.Order], error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, req)
	}
	return pagination.Empty[domain.Order](req), nil
}

// UpdateStatus implements store.OrderStore.
func (m *MockOrderStore) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, from, to)
	}
	return nil
}

// WithTx implements store.OrderStore.
func (m *MockOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return m
}
