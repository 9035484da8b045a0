package shared

import (
	"context"
	"strconv"

	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

// CurrentUserID returns the identifier of the authenticated caller, taken from
// the "id" claim of the verified token stored by the auth middleware.
//
// It fails with auth.ErrInvalidCredential when the context carries no claims,
// carries something other than auth.VerifiedClaims, or the claim is missing or
// not a base-10 integer. The parse error itself is never returned.
func CurrentUserID(ctx context.Context) (int64, error) {
	if ctx == nil {
		return 0, auth.ErrInvalidCredential
	}
	claims, ok := ctx.Value(ClaimsContextKey).(auth.VerifiedClaims)
	if !ok || claims == nil {
		return 0, auth.ErrInvalidCredential
	}

	raw, ok := claims[auth.ClaimUserID].(string)
	if !ok {
		return 0, auth.ErrInvalidCredential
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, auth.ErrInvalidCredential
	}
	return id, nil
}
