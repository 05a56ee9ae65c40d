//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stay-client/internal/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// The upstream API signs its tokens; this client never verifies them, so any
// secret will do.
const upstreamSecret = "upstream-test-secret"

type JWTHelper struct {
	now func() time.Time
}

func NewJWTHelper(now func() time.Time) *JWTHelper {
	if now == nil {
		now = time.Now
	}
	return &JWTHelper{now: now}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string) string {
	t.Helper()
	return h.sign(t, jwt.MapClaims{
		"id":  userID,
		"iat": h.now().Unix(),
		"exp": h.now().Add(time.Hour).Unix(),
	})
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	return h.sign(t, jwt.MapClaims{
		"id":  userID,
		"iat": h.now().Add(-2 * time.Hour).Unix(),
		"exp": h.now().Add(-time.Hour).Unix(),
	})
}

func (h *JWTHelper) Session(t *testing.T, userID string) session.Session {
	t.Helper()
	return session.New(h.GenerateToken(t, userID))
}

func (h *JWTHelper) ExpiredSession(t *testing.T, userID string) session.Session {
	t.Helper()
	return session.New(h.CreateExpiredToken(t, userID))
}

func (h *JWTHelper) sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(upstreamSecret))
	require.NoError(t, err)
	return token
}
