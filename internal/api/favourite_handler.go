package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/service"
)

// FavouriteHandler handles the caller's favourite books.
type FavouriteHandler struct {
	favourites service.FavouriteService
	validators *Validators
	paging     pagination.Defaults
	logger     *slog.Logger
}

// NewFavouriteHandler creates a new FavouriteHandler.
func NewFavouriteHandler(
	favourites service.FavouriteService,
	validators *Validators,
	paging pagination.Defaults,
	logger *slog.Logger,
) *FavouriteHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FavouriteHandler")
	}
	return &FavouriteHandler{
		favourites: favourites,
		validators: validators,
		paging:     paging,
		logger:     logger.With(slog.String("component", "favourite_handler")),
	}
}

// List handles GET /favourites.
func (h *FavouriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	page, err := h.favourites.ListFavourites(r.Context(), userID, pagination.FromQuery(r.URL.Query(), h.paging))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pagination.Map(page, favouriteToRead))
}

// Create handles POST /favourites.
func (h *FavouriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	req, ok := decodeAndValidate(w, r, h.validators.Favourite)
	if !ok {
		return
	}

	entry, err := h.favourites.AddFavourite(r.Context(), userID, *req.BookID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, favouriteToRead(*entry))
}

// Delete handles DELETE /favourites/{id}.
func (h *FavouriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.favourites.RemoveFavourite(r.Context(), userID, id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
