package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/bookstore-api/internal/api/shared"
	"github.com/phrazzld/bookstore-api/internal/domain"
	"github.com/phrazzld/bookstore-api/internal/service/auth"
	"github.com/phrazzld/bookstore-api/internal/validation"
)

// Error categories exposed to clients.
const (
	CategoryNotFound         = "NOT_FOUND"
	CategoryInvalidOperation = "INVALID_OPERATION"
)

// genericErrorMessage is sent for every failure that is not classified.
const genericErrorMessage = "An unexpected error occurred"

// ErrorOutcome is the external contract of a classified domain failure.
type ErrorOutcome struct {
	Status   int
	Category string
	Code     string
	Message  string
}

// MapDomainError maps a domain failure to its HTTP status, category and stable
// error code. The mapping is total: not-found failures become 404 NOT_FOUND and
// creation and update failures become 422 INVALID_OPERATION. The message is
// passed through unchanged; an empty message is replaced by a generic one
// naming the resource and kind, never by the wrapped cause.
func MapDomainError(err *domain.Error) ErrorOutcome {
	out := ErrorOutcome{
		Message: err.Message,
		Code:    err.Resource.Code() + "_" + kindCode(err.Kind),
	}

	switch err.Kind {
	case domain.FailureNotFound:
		out.Status = http.StatusNotFound
		out.Category = CategoryNotFound
	default:
		out.Status = http.StatusUnprocessableEntity
		out.Category = CategoryInvalidOperation
	}

	if out.Message == "" {
		out.Message = fmt.Sprintf("%s %s failure", err.Resource, err.Kind)
	}
	return out
}

func kindCode(kind domain.FailureKind) string {
	switch kind {
	case domain.FailureCreation:
		return "CREATION_FAILED"
	case domain.FailureNotFound:
		return "NOT_FOUND"
	case domain.FailureUpdate:
		return "UPDATE_FAILED"
	default:
		return "FAILED"
	}
}

// HandleAPIError writes the response for err. Errors are routed by channel:
// validation violations get 400 with the violation list, domain failures go
// through MapDomainError, credential failures get 401, and anything else is
// logged and answered with a generic 500.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	if violations, ok := validation.AsViolations(err); ok {
		shared.RespondWithViolations(w, r, violations)
		return
	}

	var de *domain.Error
	if errors.As(err, &de) {
		out := MapDomainError(de)
		shared.RespondWithErrorAndLog(w, r, out.Status, out.Message, err,
			shared.WithErrorCode(out.Category, out.Code))
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredential):
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType):
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid token", err)
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, genericErrorMessage, err)
	}
}
