package domain

import "time"

// Genre groups books by subject. Names are unique.
type Genre struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Book is a title offered by the store.
// PriceCents holds the unit price in the smallest currency unit to avoid
// floating point rounding.
type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	GenreID     int64     `json:"genre_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Favourite records that a user marked a book as a favourite.
// A user can favourite a given book at most once.
type Favourite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
}
