package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session carries the bearer credential issued by the remote API. The token is
// verified upstream; claims are only read here to learn the subject and to
// detect an expired credential before a request is made.
type Session struct {
	token     string
	subject   string
	expiresAt *time.Time
}

func Anonymous() Session {
	return Session{}
}

func New(token string) Session {
	s := Session{token: strings.TrimSpace(token)}
	if s.token == "" {
		return s
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		// opaque credential
		return s
	}

	s.subject = subjectOf(claims)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		s.expiresAt = &t
	}
	return s
}

// FromAuthorizationHeader accepts "Bearer <token>" and returns an anonymous
// session for anything else.
func FromAuthorizationHeader(header string) Session {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return Anonymous()
	}
	return New(header[len(prefix):])
}

func subjectOf(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	for _, key := range []string{"id", "userId", "user_id"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func (s Session) Token() string   { return s.token }
func (s Session) Subject() string { return s.subject }

func (s Session) ExpiresAt() (time.Time, bool) {
	if s.expiresAt == nil {
		return time.Time{}, false
	}
	return *s.expiresAt, true
}

func (s Session) Expired(now time.Time) bool {
	return s.expiresAt != nil && !now.Before(*s.expiresAt)
}

func (s Session) Authenticated(now time.Time) bool {
	return s.token != "" && !s.Expired(now)
}

func (s Session) AuthorizationHeader() string {
	if s.token == "" {
		return ""
	}
	return "Bearer " + s.token
}

// Owner is the key drafts are scoped by; opaque tokens fall back to the token itself.
func (s Session) Owner() string {
	if s.subject != "" {
		return s.subject
	}
	return s.token
}
