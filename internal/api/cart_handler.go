package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/service"
)

// CartHandler handles the caller's shopping cart.
type CartHandler struct {
	carts      service.CartService
	validators *Validators
	logger     *slog.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts service.CartService, validators *Validators, logger *slog.Logger) *CartHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CartHandler")
	}
	return &CartHandler{
		carts:      carts,
		validators: validators,
		logger:     logger.With(slog.String("component", "cart_handler")),
	}
}

// Get handles GET /cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	view, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cartToRead(view))
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	req, ok := decodeAndValidate(w, r, h.validators.CartItem)
	if !ok {
		return
	}

	view, err := h.carts.AddItem(r.Context(), userID, *req.BookID, *req.Quantity)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, cartToRead(view))
}

// UpdateItem handles PUT /cart/items/{id}.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	req, ok := decodeAndValidate(w, r, h.validators.CartItemUpdate)
	if !ok {
		return
	}

	view, err := h.carts.UpdateItem(r.Context(), userID, itemID, *req.Quantity)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cartToRead(view))
}

// RemoveItem handles DELETE /cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	view, err := h.carts.RemoveItem(r.Context(), userID, itemID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cartToRead(view))
}
