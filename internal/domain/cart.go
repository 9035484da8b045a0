package domain

import "time"

// Cart holds the books a user intends to order. Each user owns at most one cart.
type Cart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one book line in a cart. Quantity is always at least one.
type CartItem struct {
	ID        int64     `json:"id"`
	CartID    int64     `json:"cart_id"`
	BookID    int64     `json:"book_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// Item returns the cart item with the given ID.
func (c *Cart) Item(id int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return CartItem{}, false
}

// ItemForBook returns the cart item holding the given book.
func (c *Cart) ItemForBook(bookID int64) (CartItem, bool) {
	for _, item := range c.Items {
		if item.BookID == bookID {
			return item, true
		}
	}
	return CartItem{}, false
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
