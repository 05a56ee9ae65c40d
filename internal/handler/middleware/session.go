package middleware

import (
	"net/http"

	"stay-client/internal/handler/httperr"
	"stay-client/internal/pkg/clock"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionKey   = "session"
	accessCookieKey = "access_token"
)

var errSessionRequired = errs.New("session required")

// SessionMiddleware turns the upstream bearer token into a session.Session.
// Tokens are not verified here; the upstream API is the authority and
// rejects forged or revoked ones.
type SessionMiddleware struct {
	clock clock.Clock
}

func NewSessionMiddleware(clock clock.Clock) *SessionMiddleware {
	return &SessionMiddleware{clock: clock}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := fromRequest(c)
		if !sess.Authenticated(m.clock.Now()) {
			httperr.AbortWithError(c, http.StatusUnauthorized, errSessionRequired, "Access token required", nil)
			return
		}
		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// OptionalSession attaches the session when one is present and still valid.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := fromRequest(c); sess.Authenticated(m.clock.Now()) {
			c.Set(ctxSessionKey, sess)
		}
		c.Next()
	}
}

// DecodeSession attaches whatever credential the request carries, expired
// or not. Handlers behind it decide how to answer an expired session.
func (m *SessionMiddleware) DecodeSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := fromRequest(c); sess.Owner() != "" {
			c.Set(ctxSessionKey, sess)
		}
		c.Next()
	}
}

func fromRequest(c *gin.Context) session.Session {
	if header := c.GetHeader("Authorization"); header != "" {
		return session.FromAuthorizationHeader(header)
	}
	if token, err := c.Cookie(accessCookieKey); err == nil && token != "" {
		return session.New(token)
	}
	return session.Anonymous()
}

// GetSession returns the request's session, or an anonymous one.
func GetSession(c *gin.Context) session.Session {
	if v, ok := c.Get(ctxSessionKey); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Anonymous()
}
