package domain

import (
	"fmt"
	"time"
)

// OrderStatus describes where an order is in its lifecycle.
type OrderStatus string

const (
	// OrderStatusPlaced is the status of an order right after checkout.
	OrderStatusPlaced OrderStatus = "placed"
	// OrderStatusCancelled is the status of an order withdrawn by its owner.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a placed purchase of the books that were in a user's cart.
type Order struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"user_id"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderItem is one book line of an order. The unit price is captured at
// checkout so later price changes do not alter placed orders.
type OrderItem struct {
	ID             int64 `json:"id"`
	OrderID        int64 `json:"order_id"`
	BookID         int64 `json:"book_id"`
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unit_price_cents"`
}

// NewOrderFromCart builds an order from the cart's items, pricing each line with
// the current price of its book. books must contain every book referenced by the cart.
func NewOrderFromCart(cart *Cart, books map[int64]*Book) (*Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, NewCreationError(ResourceOrder, "cannot place an order for an empty cart", nil)
	}

	order := &Order{
		UserID:    cart.UserID,
		Status:    OrderStatusPlaced,
		Items:     make([]OrderItem, 0, len(cart.Items)),
		CreatedAt: time.Now().UTC(),
	}

	for _, item := range cart.Items {
		book, ok := books[item.BookID]
		if !ok || book == nil {
			return nil, NotFoundByID(ResourceBook, item.BookID)
		}
		if item.Quantity < 1 {
			return nil, NewCreationError(
				ResourceOrderItem,
				fmt.Sprintf("cart item %d has invalid quantity %d", item.ID, item.Quantity),
				nil,
			)
		}
		order.Items = append(order.Items, OrderItem{
			BookID:         item.BookID,
			Quantity:       item.Quantity,
			UnitPriceCents: book.PriceCents,
		})
		order.TotalCents += int64(item.Quantity) * book.PriceCents
	}

	return order, nil
}
