package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/platform/logger"
	"github.com/phrazzld/bookstore-api/internal/validation"
)

// pathID extracts a positive int64 from the URL path parameters. A missing or
// malformed value is reported as a validation violation on the parameter.
func pathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, validation.Violations{{Field: paramName, Message: "is required", Group: validation.Basic}}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validation.Violations{{Field: paramName, Message: "must be a number", Group: validation.Basic}}
	}
	if id <= 0 {
		return 0, validation.Violations{{Field: paramName, Message: "must be greater than 0", Group: validation.Basic}}
	}
	return id, nil
}

// queryID parses an optional positive int64 query parameter. It returns nil
// when the parameter is absent.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, validation.Violations{{Field: name, Message: "must be a positive number", Group: validation.Basic}}
	}
	return &id, nil
}

// decodeAndValidate decodes the JSON body into a T and runs schema over it,
// writing the error response itself when either step fails.
func decodeAndValidate[T any](
	w http.ResponseWriter,
	r *http.Request,
	schema *validation.Schema[T],
) (T, bool) {
	var req T
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		logger.FromContext(r.Context()).Debug("invalid request body", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := schema.Run(r.Context(), req); err != nil {
		HandleAPIError(w, r, err)
		return req, false
	}
	return req, true
}

// currentUser extracts the caller's identifier, writing a 401 response when the
// request carries no usable identity.
func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := shared.CurrentUserID(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, err)
		return 0, false
	}
	return userID, true
}
