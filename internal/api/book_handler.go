package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/service"
	"github.com/phrazzld/bookstore-api/internal/store"
)

// BookHandler handles catalogue requests.
type BookHandler struct {
	books      service.BookService
	validators *Validators
	paging     pagination.Defaults
	logger     *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(
	books service.BookService,
	validators *Validators,
	paging pagination.Defaults,
	logger *slog.Logger,
) *BookHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookHandler")
	}
	return &BookHandler{
		books:      books,
		validators: validators,
		paging:     paging,
		logger:     logger.With(slog.String("component", "book_handler")),
	}
}

// List handles GET /books. The optional genre_id query parameter restricts the
// listing to one genre.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	genreID, err := queryID(r, "genre_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	filter := store.BookFilter{GenreID: genreID}
	page, err := h.books.ListBooks(r.Context(), filter, pagination.FromQuery(r.URL.Query(), h.paging))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pagination.Map(page, bookToRead))
}

// Get handles GET /books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	book, err := h.books.GetBook(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, bookToRead(*book))
}

// Create handles POST /books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	req, ok := decodeAndValidate(w, r, h.validators.Book)
	if !ok {
		return
	}

	book, err := h.books.CreateBook(r.Context(), req.toBook(0))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("book created", slog.Int64("book_id", book.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, bookToRead(*book))
}

// Update handles PUT /books/{id}. The body replaces every writable field.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	req, ok := decodeAndValidate(w, r, h.validators.Book)
	if !ok {
		return
	}

	book, err := h.books.UpdateBook(r.Context(), req.toBook(id))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, bookToRead(*book))
}

// Delete handles DELETE /books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.books.DeleteBook(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
