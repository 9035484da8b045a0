package api

import (
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/validation"
)

// Field limits of write requests.
const (
	maxNameLength        = 100
	maxTitleLength       = 255
	maxAuthorLength      = 255
	maxDescriptionLength = 2000
	minPasswordLength    = 12
	maxPasswordLength    = 72
	maxPasswordBytes     = 72 // bcrypt input limit
	minQuantity          = 1
	maxQuantity          = 99
)

// Validators holds the validation schema of every write request. Schemas that
// reference other resources use the injected Checker in their Extended group.
type Validators struct {
	Register       *validation.Schema[RegisterRequest]
	Login          *validation.Schema[LoginRequest]
	Genre          *validation.Schema[GenreWrite]
	Book           *validation.Schema[BookWrite]
	Favourite      *validation.Schema[FavouriteWrite]
	CartItem       *validation.Schema[CartItemWrite]
	CartItemUpdate *validation.Schema[CartItemUpdate]
	Order          *validation.Schema[OrderWrite]
}

// NewValidators builds the request schemas. It panics if checker is nil.
func NewValidators(checker validation.Checker) *Validators {
	return &Validators{
		Register: validation.NewSchema(
			validation.Field("email", func(r RegisterRequest) string { return r.Email },
				validation.NotBlank(), validation.Email()),
			validation.Field("name", func(r RegisterRequest) string { return r.Name },
				validation.NotBlank(), validation.Size(1, maxNameLength)),
			validation.Field("password", func(r RegisterRequest) string { return r.Password },
				validation.Size(minPasswordLength, maxPasswordLength), validation.MaxBytes(maxPasswordBytes)),
		),

		Login: validation.NewSchema(
			validation.Field("email", func(r LoginRequest) string { return r.Email },
				validation.NotBlank()),
			validation.Field("password", func(r LoginRequest) string { return r.Password },
				validation.NotBlank()),
		),

		Genre: validation.NewSchema(
			validation.Field("name", func(g GenreWrite) string { return g.Name },
				validation.NotBlank(), validation.Size(1, maxNameLength)),
		),

		Book: validation.NewSchema(
			validation.Field("title", func(b BookWrite) string { return b.Title },
				validation.NotBlank(), validation.Size(1, maxTitleLength)),
			validation.Field("author", func(b BookWrite) string { return b.Author },
				validation.NotBlank(), validation.Size(1, maxAuthorLength)),
			validation.Field("isbn", func(b BookWrite) string { return b.ISBN },
				validation.NotBlank(), validation.ISBN()),
			validation.Field("description", func(b BookWrite) string { return b.Description },
				validation.Size(0, maxDescriptionLength)),
			validation.Field("price_cents", func(b BookWrite) *int64 { return b.PriceCents },
				validation.NotNull[int64](), validation.PositiveOrZero[int64]()),
			validation.Field("genre_id", func(b BookWrite) *int64 { return b.GenreID },
				validation.NotNull[int64](), validation.Positive[int64](),
				validation.Exists(checker, domain.ResourceGenre)),
		),

		Favourite: validation.NewSchema(
			validation.Field("book_id", func(f FavouriteWrite) *int64 { return f.BookID },
				validation.NotNull[int64](), validation.Positive[int64](),
				validation.Exists(checker, domain.ResourceBook)),
		),

		CartItem: validation.NewSchema(
			validation.Field("book_id", func(c CartItemWrite) *int64 { return c.BookID },
				validation.NotNull[int64](), validation.Positive[int64](),
				validation.Exists(checker, domain.ResourceBook)),
			validation.Field("quantity", func(c CartItemWrite) *int { return c.Quantity },
				validation.NotNull[int](), validation.Between(minQuantity, maxQuantity)),
		),

		CartItemUpdate: validation.NewSchema(
			validation.Field("quantity", func(c CartItemUpdate) *int { return c.Quantity },
				validation.NotNull[int](), validation.Between(minQuantity, maxQuantity)),
		),

		Order: validation.NewSchema(
			validation.Field("cart_id", func(o OrderWrite) *int64 { return o.CartID },
				validation.NotNull[int64](), validation.Positive[int64](),
				validation.Exists(checker, domain.ResourceCart)),
		),
	}
}
