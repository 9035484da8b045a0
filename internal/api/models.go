package api

import (
	"time"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/service"
)

// Write requests. Nullable fields are pointers so that an absent value can be
// told apart from zero and reported by the NotNull constraint.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GenreWrite is the payload for creating or renaming a genre.
type GenreWrite struct {
	Name string `json:"name"`
}

// BookWrite is the payload for creating or replacing a book.
type BookWrite struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	PriceCents  *int64 `json:"price_cents"`
	GenreID     *int64 `json:"genre_id"`
}

// FavouriteWrite is the payload for marking a book as favourite.
type FavouriteWrite struct {
	BookID *int64 `json:"book_id"`
}

// CartItemWrite is the payload for putting a book in the cart.
type CartItemWrite struct {
	BookID   *int64 `json:"book_id"`
	Quantity *int   `json:"quantity"`
}

// CartItemUpdate is the payload for changing the quantity of a cart line.
type CartItemUpdate struct {
	Quantity *int `json:"quantity"`
}

// OrderWrite is the payload for checking out a cart.
type OrderWrite struct {
	CartID *int64 `json:"cart_id"`
}

// toBook converts a validated write request. Only call it after validation
// succeeded: the nullable fields are known to be set.
func (b BookWrite) toBook(id int64) *domain.Book {
	return &domain.Book{
		ID:          id,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Description: b.Description,
		PriceCents:  *b.PriceCents,
		GenreID:     *b.GenreID,
	}
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID int64 `json:"user_id"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// Read representations, built per response.

// UserRead is the public view of a user.
type UserRead struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// GenreRead is the public view of a genre.
type GenreRead struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookRead is the public view of a book.
type BookRead struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	GenreID     int64     `json:"genre_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FavouriteRead is a favourite with its book.
type FavouriteRead struct {
	ID        int64     `json:"id"`
	Book      *BookRead `json:"book"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemRead is one line of a cart with its book.
type CartItemRead struct {
	ID       int64     `json:"id"`
	Book     *BookRead `json:"book"`
	Quantity int       `json:"quantity"`
}

// CartRead is the caller's cart.
type CartRead struct {
	ID         int64          `json:"id"`
	Items      []CartItemRead `json:"items"`
	TotalCents int64          `json:"total_cents"`
}

// OrderItemRead is one line of an order.
type OrderItemRead struct {
	ID             int64 `json:"id"`
	BookID         int64 `json:"book_id"`
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unit_price_cents"`
}

// OrderRead is a placed order.
type OrderRead struct {
	ID         int64           `json:"id"`
	Status     string          `json:"status"`
	TotalCents int64           `json:"total_cents"`
	Items      []OrderItemRead `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
}

func userToRead(u *domain.User) UserRead {
	return UserRead{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func genreToRead(g domain.Genre) GenreRead {
	return GenreRead{ID: g.ID, Name: g.Name}
}

func bookToRead(b domain.Book) BookRead {
	return BookRead{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		GenreID:     b.GenreID,
		UpdatedAt:   b.UpdatedAt,
	}
}

// bookRefToRead returns nil for a missing book.
func bookRefToRead(b *domain.Book) *BookRead {
	if b == nil {
		return nil
	}
	read := bookToRead(*b)
	return &read
}

func favouriteToRead(e service.FavouriteEntry) FavouriteRead {
	return FavouriteRead{
		ID:        e.Favourite.ID,
		Book:      bookRefToRead(e.Book),
		CreatedAt: e.Favourite.CreatedAt,
	}
}

func cartToRead(v *service.CartView) CartRead {
	items := make([]CartItemRead, 0, len(v.Cart.Items))
	for _, item := range v.Cart.Items {
		items = append(items, CartItemRead{
			ID:       item.ID,
			Book:     bookRefToRead(v.Books[item.BookID]),
			Quantity: item.Quantity,
		})
	}
	return CartRead{ID: v.Cart.ID, Items: items, TotalCents: v.TotalCents()}
}

func orderToRead(o domain.Order) OrderRead {
	items := make([]OrderItemRead, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemRead{
			ID:             item.ID,
			BookID:         item.BookID,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return OrderRead{
		ID:         o.ID,
		Status:     string(o.Status),
		TotalCents: o.TotalCents,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}
