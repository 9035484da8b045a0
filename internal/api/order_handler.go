package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/service"
)

// OrderHandler handles checkout and the caller's order history.
type OrderHandler struct {
	orders     service.OrderService
	validators *Validators
	paging     pagination.Defaults
	logger     *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(
	orders service.OrderService,
	validators *Validators,
	paging pagination.Defaults,
	logger *slog.Logger,
) *OrderHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for OrderHandler")
	}
	return &OrderHandler{
		orders:     orders,
		validators: validators,
		paging:     paging,
		logger:     logger.With(slog.String("component", "order_handler")),
	}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	page, err := h.orders.ListOrders(r.Context(), userID, pagination.FromQuery(r.URL.Query(), h.paging))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pagination.Map(page, orderToRead))
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	order, err := h.orders.GetOrder(r.Context(), userID, id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, orderToRead(*order))
}

// Create handles POST /orders, checking out the cart named in the body.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	req, ok := decodeAndValidate(w, r, h.validators.Order)
	if !ok {
		return
	}

	order, err := h.orders.Checkout(r.Context(), userID, *req.CartID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("total_cents", order.TotalCents))
	shared.RespondWithJSON(w, r, http.StatusCreated, orderToRead(*order))
}

// Cancel handles POST /orders/{id}/cancel.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	order, err := h.orders.CancelOrder(r.Context(), userID, id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, orderToRead(*order))
}
