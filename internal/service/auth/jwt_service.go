package auth

import (
	"context"
	"time"
)

// Claim names carried by access tokens.
const (
	ClaimUserID    = "id"
	ClaimSubject   = "sub"
	ClaimTokenType = "type"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
	ClaimTokenID   = "jti"
)

// TokenTypeAccess is the only token type this service issues.
const TokenTypeAccess = "access"

// VerifiedClaims is the claim set of a token whose signature and lifetime have
// been checked. Values keep their JSON types, so numeric claims are float64 and
// the user identifier is a decimal string under ClaimUserID.
type VerifiedClaims map[string]any

// String returns the claim as a string, or "" when it is absent or not a string.
func (c VerifiedClaims) String(name string) string {
	s, _ := c[name].(string)
	return s
}

// Token is a signed access token and the instant it stops being valid.
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, userID int64) (Token, error)

	// ValidateToken verifies the token and returns its claims. It fails with
	// ErrExpiredToken, ErrTokenNotYetValid, ErrWrongTokenType or ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (VerifiedClaims, error)
}
