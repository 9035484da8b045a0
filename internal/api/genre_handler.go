package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/service"
)

// GenreHandler handles genre requests.
type GenreHandler struct {
	genres     service.GenreService
	validators *Validators
	paging     pagination.Defaults
	logger     *slog.Logger
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(
	genres service.GenreService,
	validators *Validators,
	paging pagination.Defaults,
	logger *slog.Logger,
) *GenreHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GenreHandler")
	}
	return &GenreHandler{
		genres:     genres,
		validators: validators,
		paging:     paging,
		logger:     logger.With(slog.String("component", "genre_handler")),
	}
}

// List handles GET /genres.
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.genres.ListGenres(r.Context(), pagination.FromQuery(r.URL.Query(), h.paging))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pagination.Map(page, genreToRead))
}

// Get handles GET /genres/{id}.
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	genre, err := h.genres.GetGenre(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, genreToRead(*genre))
}

// Create handles POST /genres.
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	req, ok := decodeAndValidate(w, r, h.validators.Genre)
	if !ok {
		return
	}

	genre, err := h.genres.CreateGenre(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("genre created", slog.Int64("genre_id", genre.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, genreToRead(*genre))
}

// Update handles PUT /genres/{id}.
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	req, ok := decodeAndValidate(w, r, h.validators.Genre)
	if !ok {
		return
	}

	genre, err := h.genres.RenameGenre(r.Context(), id, req.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, genreToRead(*genre))
}

// Delete handles DELETE /genres/{id}.
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.genres.DeleteGenre(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
