package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/mocks"
	"github.com/phrazzld/bookstore-api/internal/pagination"
	"github.com/phrazzld/bookstore-api/internal/service"
	"github.com/phrazzld/bookstore-api/internal/store"
	"github.com/phrazzld/bookstore-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavouriteHandler_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		checkerErr     error
		wantStatus     int
		wantViolations []validation.Violation
		wantLookups    int
	}{
		{
			name:           "null book",
			body:           `{"book_id":null}`,
			wantStatus:     http.StatusBadRequest,
			wantViolations: []validation.Violation{{Field: "book_id", Message: "must not be null"}},
		},
		{
			name:           "missing book",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantViolations: []validation.Violation{{Field: "book_id", Message: "must not be null"}},
		},
		{
			name:           "non-positive book",
			body:           `{"book_id":0}`,
			wantStatus:     http.StatusBadRequest,
			wantViolations: []validation.Violation{{Field: "book_id", Message: "must be greater than 0"}},
		},
		{
			name:           "unknown book",
			body:           `{"book_id":9}`,
			wantStatus:     http.StatusBadRequest,
			wantViolations: []validation.Violation{{Field: "book_id", Message: "book does not exist"}},
			wantLookups:    1,
		},
		{
			name:        "checker unavailable",
			body:        `{"book_id":4}`,
			checkerErr:  errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantLookups: 1,
		},
		{
			name:        "known book",
			body:        `{"book_id":4}`,
			wantStatus:  http.StatusCreated,
			wantLookups: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checker := &mocks.MockChecker{Existing: map[domain.Resource][]int64{domain.ResourceBook: {4}}}
			if tt.checkerErr != nil {
				checker.ExistsByIDFn = func(context.Context, domain.Resource, int64) (bool, error) {
					return false, tt.checkerErr
				}
			}
			var created int
			favourites := &mocks.MockFavouriteStore{
				CreateFn: func(_ context.Context, f *domain.Favourite) error {
					created++
					f.ID = 30
					return nil
				},
			}
			books := &mocks.MockBookStore{Books: map[int64]*domain.Book{4: {ID: 4, Title: "Dune"}}}
			h := NewFavouriteHandler(
				service.NewFavouriteService(favourites, books, discardLogger()),
				NewValidators(checker),
				testPaging,
				discardLogger(),
			)

			w := httptest.NewRecorder()
			h.Create(w, newRequest(http.MethodPost, "/api/favourites", tt.body, 1))

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantLookups, checker.CallCount())
			if tt.wantViolations != nil {
				body := decodeError(t, w)
				assert.Equal(t, "Validation failed", body.Error)
				assert.Equal(t, tt.wantViolations, body.Violations)
			}
			if tt.wantStatus != http.StatusCreated {
				assert.Zero(t, created)
			}
		})
	}
}

func TestFavouriteHandler(t *testing.T) {
	t.Parallel()

	books := &mocks.MockBookStore{Books: map[int64]*domain.Book{4: {ID: 4, Title: "Dune"}}}
	favourites := &mocks.MockFavouriteStore{
		CreateFn: func(_ context.Context, f *domain.Favourite) error {
			f.ID = 30
			return nil
		},
		GetByIDFn: func(_ context.Context, id int64) (*domain.Favourite, error) {
			if id == 30 {
				return &domain.Favourite{ID: 30, UserID: 1, BookID: 4}, nil
			}
			return nil, store.ErrFavouriteNotFound
		},
		ListByUserFn: func(_ context.Context, userID int64, req pagination.Request) (pagination.Page[domain.Favourite], error) {
			return pagination.New([]domain.Favourite{{ID: 30, UserID: userID, BookID: 4}}, req, 1), nil
		},
	}
	checker := &mocks.MockChecker{Existing: map[domain.Resource][]int64{domain.ResourceBook: {4}}}
	h := NewFavouriteHandler(
		service.NewFavouriteService(favourites, books, discardLogger()),
		NewValidators(checker),
		testPaging,
		discardLogger(),
	)

	t.Run("add", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Create(w, newRequest(http.MethodPost, "/api/favourites", `{"book_id":4}`, 1))

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeResponse(t, w)
		assert.EqualValues(t, 30, body["id"])
		assert.Equal(t, "Dune", body["book"].(map[string]any)["title"])
	})

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.List(w, newRequest(http.MethodGet, "/api/favourites", "", 1))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.EqualValues(t, 1, body["totalElements"])
	})

	t.Run("remove someone else's favourite", func(t *testing.T) {
		r := withURLParams(newRequest(http.MethodDelete, "/api/favourites/30", "", 2), "id", "30")
		w := httptest.NewRecorder()
		h.Delete(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "FAVOURITE_NOT_FOUND", decodeError(t, w).Code)
	})

	t.Run("remove own favourite", func(t *testing.T) {
		r := withURLParams(newRequest(http.MethodDelete, "/api/favourites/30", "", 1), "id", "30")
		w := httptest.NewRecorder()
		h.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
