package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/mocks"
	"github.com/phrazzld/bookstore-api/internal/service"
	"github.com/phrazzld/bookstore-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartWithItems(items ...domain.CartItem) *domain.Cart {
	return &domain.Cart{ID: 7, UserID: 42, Items: items}
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	books := &mocks.MockBookStore{Books: map[int64]*domain.Book{
		100: {ID: 100, PriceCents: 1250},
		101: {ID: 101, PriceCents: 800},
	}}

	t.Run("new book adds a line", func(t *testing.T) {
		var added *domain.CartItem
		carts := &mocks.MockCartStore{
			GetOrCreateForUserFn: func(context.Context, int64) (*domain.Cart, error) { return cartWithItems(), nil },
			AddItemFn: func(_ context.Context, item *domain.CartItem) error {
				added = item
				return nil
			},
			GetByIDFn: func(context.Context, int64) (*domain.Cart, error) {
				return cartWithItems(domain.CartItem{ID: 1, CartID: 7, BookID: 100, Quantity: 2}), nil
			},
		}

		view, err := service.NewCartService(carts, books, nil).AddItem(ctx, 42, 100, 2)
		require.NoError(t, err)
		require.NotNil(t, added)
		assert.Equal(t, int64(7), added.CartID)
		assert.Equal(t, int64(2500), view.TotalCents())
		assert.Contains(t, view.Books, int64(100))
	})

	t.Run("existing book raises quantity", func(t *testing.T) {
		var updatedTo int
		carts := &mocks.MockCartStore{
			GetOrCreateForUserFn: func(context.Context, int64) (*domain.Cart, error) {
				return cartWithItems(domain.CartItem{ID: 1, BookID: 100, Quantity: 2}), nil
			},
			UpdateItemQuantityFn: func(_ context.Context, itemID int64, q int) error {
				assert.Equal(t, int64(1), itemID)
				updatedTo = q
				return nil
			},
			GetByIDFn: func(context.Context, int64) (*domain.Cart, error) { return cartWithItems(), nil },
		}

		_, err := service.NewCartService(carts, books, nil).AddItem(ctx, 42, 100, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, updatedTo)
	})

	t.Run("quantity over the limit is a cart item update failure", func(t *testing.T) {
		carts := &mocks.MockCartStore{
			GetOrCreateForUserFn: func(context.Context, int64) (*domain.Cart, error) {
				return cartWithItems(domain.CartItem{ID: 1, BookID: 100, Quantity: 98}), nil
			},
		}

		_, err := service.NewCartService(carts, books, nil).AddItem(ctx, 42, 100, 2)
		assertDomainError(t, err, domain.ResourceCartItem, domain.FailureUpdate)
	})

	t.Run("book deleted concurrently", func(t *testing.T) {
		carts := &mocks.MockCartStore{
			GetOrCreateForUserFn: func(context.Context, int64) (*domain.Cart, error) { return cartWithItems(), nil },
			AddItemFn:            func(context.Context, *domain.CartItem) error { return store.ErrInvalidEntity },
		}

		_, err := service.NewCartService(carts, books, nil).AddItem(ctx, 42, 100, 1)
		assertDomainError(t, err, domain.ResourceBook, domain.FailureNotFound)
	})
}

func TestCartService_UpdateAndRemoveItem(t *testing.T) {
	ctx := context.Background()
	carts := &mocks.MockCartStore{
		GetOrCreateForUserFn: func(context.Context, int64) (*domain.Cart, error) {
			return cartWithItems(domain.CartItem{ID: 1, BookID: 100, Quantity: 1}), nil
		},
		GetByIDFn: func(context.Context, int64) (*domain.Cart, error) { return cartWithItems(), nil },
	}
	svc := service.NewCartService(carts, &mocks.MockBookStore{}, nil)

	_, err := svc.UpdateItem(ctx, 42, 1, 4)
	assert.NoError(t, err)

	_, err = svc.UpdateItem(ctx, 42, 99, 4)
	assertDomainError(t, err, domain.ResourceCartItem, domain.FailureUpdate)

	_, err = svc.RemoveItem(ctx, 42, 99)
	assertDomainError(t, err, domain.ResourceCartItem, domain.FailureNotFound)

	view, err := svc.RemoveItem(ctx, 42, 1)
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
}

func TestCartService_UpdateItemRace(t *testing.T) {
	carts := &mocks.MockCartStore{
		GetOrCreateForUserFn: func(context.Context, int64) (*domain.Cart, error) {
			return cartWithItems(domain.CartItem{ID: 1, BookID: 100, Quantity: 1}), nil
		},
		UpdateItemQuantityFn: func(context.Context, int64, int) error { return store.ErrCartItemNotFound },
	}

	_, err := service.NewCartService(carts, &mocks.MockBookStore{}, nil).UpdateItem(context.Background(), 42, 1, 3)
	assertDomainError(t, err, domain.ResourceCartItem, domain.FailureUpdate)
}
