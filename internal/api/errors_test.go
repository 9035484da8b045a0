package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
	"github.com/phrazzld/bookstore-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDomainError_Total(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, resource := range domain.Resources {
		for _, kind := range domain.FailureKinds {
			name := fmt.Sprintf("%s/%s", resource, kind)
			err := &domain.Error{Resource: resource, Kind: kind, Message: "msg " + name}

			out := MapDomainError(err)

			assert.NotEmpty(t, out.Code, name)
			assert.False(t, seen[out.Code], "duplicate code %s", out.Code)
			seen[out.Code] = true
			assert.Equal(t, "msg "+name, out.Message, name)

			if kind == domain.FailureNotFound {
				assert.Equal(t, http.StatusNotFound, out.Status, name)
				assert.Equal(t, CategoryNotFound, out.Category, name)
			} else {
				assert.Equal(t, http.StatusUnprocessableEntity, out.Status, name)
				assert.Equal(t, CategoryInvalidOperation, out.Category, name)
			}
		}
	}
	assert.Len(t, seen, len(domain.Resources)*len(domain.FailureKinds))
}

func TestMapDomainError_Codes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      *domain.Error
		wantCode string
	}{
		{domain.NewNotFoundError(domain.ResourceBook, "x"), "BOOK_NOT_FOUND"},
		{domain.NewUpdateError(domain.ResourceCartItem, "x", nil), "CART_ITEM_UPDATE_FAILED"},
		{domain.NewCreationError(domain.ResourceFavourite, "x", nil), "FAVOURITE_CREATION_FAILED"},
		{domain.NewCreationError(domain.ResourceOrder, "x", nil), "ORDER_CREATION_FAILED"},
		{domain.NewNotFoundError(domain.ResourceOrderItem, "x"), "ORDER_ITEM_NOT_FOUND"},
		{domain.NewUpdateError(domain.ResourceGenre, "x", nil), "GENRE_UPDATE_FAILED"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.wantCode, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, MapDomainError(tt.err).Code)
		})
	}
}

func TestMapDomainError_EmptyMessage(t *testing.T) {
	t.Parallel()

	out := MapDomainError(&domain.Error{Resource: domain.ResourceCart, Kind: domain.FailureNotFound})
	assert.Equal(t, "cart not found failure", out.Message)

	cause := errors.New(`ERROR: duplicate key value violates unique constraint "books_isbn_key" (SQLSTATE 23505)`)
	out = MapDomainError(domain.NewCreationError(domain.ResourceBook, "", cause))
	assert.Equal(t, "book creation failure", out.Message)
	assert.NotContains(t, out.Message, "SQLSTATE")
}

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantMessage  string
		wantCode     string
		wantCategory string
	}{
		{
			name:        "violations",
			err:         validation.Violations{{Field: "book_id", Message: "must not be null"}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:         "wrapped not found",
			err:          fmt.Errorf("lookup: %w", domain.NotFoundByID(domain.ResourceBook, 7)),
			wantStatus:   http.StatusNotFound,
			wantMessage:  "book with id 7 not found",
			wantCode:     "BOOK_NOT_FOUND",
			wantCategory: CategoryNotFound,
		},
		{
			name:         "update failure",
			err:          domain.NewUpdateError(domain.ResourceCartItem, "quantity of book 3 cannot exceed 99", nil),
			wantStatus:   http.StatusUnprocessableEntity,
			wantMessage:  "quantity of book 3 cannot exceed 99",
			wantCode:     "CART_ITEM_UPDATE_FAILED",
			wantCategory: CategoryInvalidOperation,
		},
		{
			name:        "invalid credential",
			err:         auth.ErrInvalidCredential,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "expired token",
			err:         auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
		{
			name:        "unclassified",
			err:         errors.New("pq: connection refused for user=admin password=secret"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: genericErrorMessage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, logBuf := logger.NewTestContext(t)
			r := httptest.NewRequest(http.MethodGet, "/api/test", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			HandleAPIError(w, r, tt.err)

			require.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantCategory, body.Category)
			assert.NotContains(t, w.Body.String(), "secret")
			assert.NotContains(t, logBuf.String(), "password=secret")
		})
	}
}

func TestHandleAPIError_ViolationsBody(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/books", nil)
	w := httptest.NewRecorder()

	HandleAPIError(w, r, fmt.Errorf("validate: %w", validation.Violations{
		{Field: "title", Message: "must not be blank"},
		{Field: "price_cents", Message: "must not be null"},
	}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, []validation.Violation{
		{Field: "title", Message: "must not be blank"},
		{Field: "price_cents", Message: "must not be null"},
	}, body.Violations)
}
