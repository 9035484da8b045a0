package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/bookstore-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{JWTSecret: secret, TokenLifetimeMinutes: 60, BCryptCost: 4}
}

func newTestJWTService(t *testing.T, secret string, now time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(testAuthConfig(secret), func() time.Time { return now })
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(testAuthConfig("too-short"))
	assert.Error(t, err)

	cfg := testAuthConfig(testSecret)
	cfg.TokenLifetimeMinutes = 0
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	svc, err := NewJWTService(testAuthConfig(testSecret))
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, testSecret, fixedTime)

	token, err := svc.GenerateToken(context.Background(), 42)
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)
	assert.Equal(t, fixedTime.Add(time.Hour), token.ExpiresAt)

	claims, err := svc.ValidateToken(context.Background(), token.Value)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.String(ClaimUserID))
	assert.Equal(t, "42", claims.String(ClaimSubject))
	assert.Equal(t, TokenTypeAccess, claims.String(ClaimTokenType))
	assert.NotEmpty(t, claims.String(ClaimTokenID))
	assert.Equal(t, float64(fixedTime.Unix()), claims[ClaimIssuedAt])
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestJWTService(t, testSecret, fixedTime)

	valid, err := issuer.GenerateToken(context.Background(), 7)
	require.NoError(t, err)

	otherKey, err := newTestJWTService(t, "wrong-secret-that-is-long-enough-for-testing", fixedTime).
		GenerateToken(context.Background(), 7)
	require.NoError(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ClaimUserID:    "7",
		ClaimTokenType: "refresh",
		ClaimExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
	})
	wrongType, err := refresh.SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ClaimUserID:    "7",
		ClaimTokenType: TokenTypeAccess,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{name: "valid token", token: valid.Value, now: fixedTime.Add(30 * time.Minute)},
		{name: "within clock skew", token: valid.Value, now: fixedTime.Add(61 * time.Minute)},
		{name: "expired", token: valid.Value, now: fixedTime.Add(2 * time.Hour), wantErr: ErrExpiredToken},
		{name: "wrong signing key", token: otherKey.Value, now: fixedTime, wantErr: ErrInvalidToken},
		{name: "malformed", token: "not-a-jwt", now: fixedTime, wantErr: ErrInvalidToken},
		{name: "empty", token: "", now: fixedTime, wantErr: ErrInvalidToken},
		{name: "wrong token type", token: wrongType, now: fixedTime, wantErr: ErrWrongTokenType},
		{name: "missing expiry", token: noExpiry, now: fixedTime, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestJWTService(t, testSecret, tt.now)
			claims, err := svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "7", claims.String(ClaimUserID))
		})
	}
}
