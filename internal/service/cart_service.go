package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// CartView is a cart with the books its items reference.
type CartView struct {
	Cart  *domain.Cart
	Books map[int64]*domain.Book
}

// TotalCents is the current price of the cart's content.
func (v *CartView) TotalCents() int64 {
	var total int64
	for _, item := range v.Cart.Items {
		if book, ok := v.Books[item.BookID]; ok {
			total += int64(item.Quantity) * book.PriceCents
		}
	}
	return total
}

// CartService manages the calling user's cart.
type CartService interface {
	GetCart(ctx context.Context, userID int64) (*CartView, error)
	// AddItem puts a book in the cart. Adding a book already in the cart raises
	// its quantity; exceeding MaxItemQuantity is a cart item update failure.
	AddItem(ctx context.Context, userID, bookID int64, quantity int) (*CartView, error)
	// UpdateItem sets the quantity of a line. A line that is not in the user's
	// cart is a cart item update failure.
	UpdateItem(ctx context.Context, userID, itemID int64, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, userID, itemID int64) (*CartView, error)
}

// CartServiceImpl implements CartService.
type CartServiceImpl struct {
	carts  store.CartStore
	books  store.BookStore
	logger *slog.Logger
}

var _ CartService = (*CartServiceImpl)(nil)

// NewCartService creates a CartService.
func NewCartService(carts store.CartStore, books store.BookStore, logger *slog.Logger) *CartServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &CartServiceImpl{carts: carts, books: books, logger: logger.With("component", "cart_service")}
}

// GetCart implements CartService.
func (s *CartServiceImpl) GetCart(ctx context.Context, userID int64) (*CartView, error) {
	cart, err := s.carts.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return s.view(ctx, cart)
}

// AddItem implements CartService.
func (s *CartServiceImpl) AddItem(ctx context.Context, userID, bookID int64, quantity int) (*CartView, error) {
	cart, err := s.carts.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if existing, ok := cart.ItemForBook(bookID); ok {
		total := existing.Quantity + quantity
		if total > MaxItemQuantity {
			return nil, domain.NewUpdateError(domain.ResourceCartItem,
				fmt.Sprintf("quantity of book %d cannot exceed %d", bookID, MaxItemQuantity), nil)
		}
		if err := s.carts.UpdateItemQuantity(ctx, existing.ID, total); err != nil {
			return nil, s.itemUpdateError(err, existing.ID)
		}
	} else {
		item := &domain.CartItem{CartID: cart.ID, BookID: bookID, Quantity: quantity}
		if err := s.carts.AddItem(ctx, item); err != nil {
			switch {
			case store.IsDuplicateError(err):
				return nil, domain.NewCreationError(domain.ResourceCartItem,
					fmt.Sprintf("book %d is already in the cart", bookID), err)
			case isInvalidEntity(err):
				return nil, domain.NotFoundByID(domain.ResourceBook, bookID)
			default:
				return nil, fmt.Errorf("failed to add cart item: %w", err)
			}
		}
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("cart item added",
		"cart_id", cart.ID,
		"book_id", bookID,
		"quantity", quantity)
	return s.reload(ctx, cart.ID)
}

// UpdateItem implements CartService.
func (s *CartServiceImpl) UpdateItem(ctx context.Context, userID, itemID int64, quantity int) (*CartView, error) {
	cart, err := s.carts.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if _, ok := cart.Item(itemID); !ok {
		return nil, domain.NewUpdateError(domain.ResourceCartItem,
			fmt.Sprintf("cart item %d is not in the cart", itemID), nil)
	}

	if err := s.carts.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, s.itemUpdateError(err, itemID)
	}
	return s.reload(ctx, cart.ID)
}

// RemoveItem implements CartService.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, userID, itemID int64) (*CartView, error) {
	cart, err := s.carts.GetOrCreateForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if _, ok := cart.Item(itemID); !ok {
		return nil, domain.NotFoundByID(domain.ResourceCartItem, itemID)
	}

	if err := s.carts.DeleteItem(ctx, itemID); err != nil {
		return nil, notFoundOr(err, domain.ResourceCartItem, itemID, "failed to remove cart item")
	}
	return s.reload(ctx, cart.ID)
}

func (s *CartServiceImpl) itemUpdateError(err error, itemID int64) error {
	if store.IsNotFoundError(err) {
		return domain.NewUpdateError(domain.ResourceCartItem,
			fmt.Sprintf("cart item %d is not in the cart", itemID), err)
	}
	return fmt.Errorf("failed to update cart item: %w", err)
}

func (s *CartServiceImpl) reload(ctx context.Context, cartID int64) (*CartView, error) {
	cart, err := s.carts.GetByID(ctx, cartID)
	if err != nil {
		return nil, notFoundOr(err, domain.ResourceCart, cartID, "failed to reload cart")
	}
	return s.view(ctx, cart)
}

func (s *CartServiceImpl) view(ctx context.Context, cart *domain.Cart) (*CartView, error) {
	ids := make([]int64, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.BookID)
	}
	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart books: %w", err)
	}
	return &CartView{Cart: cart, Books: books}, nil
}
