// Package session holds the per-browser bearer token.
//
// A Session is loaded from its Store once per inbound request and attached to
// the request context; outbound backend calls read the token back from that
// context. Nothing in this package checks token expiry: an expired token is
// only discovered when the backend rejects a request.
package session

import (
	"context"
	"net/http"
)

// Session is a single token slot. The zero value is an unauthenticated session.
type Session struct {
	token   string
	changed bool
}

// New returns a session holding token. Passing "" yields an empty session.
func New(token string) *Session {
	return &Session{token: token}
}

func (s *Session) GetToken() string {
	if s == nil {
		return ""
	}
	return s.token
}

// SetToken overwrites the current token.
func (s *Session) SetToken(token string) {
	s.token = token
	s.changed = true
}

func (s *Session) ClearToken() {
	s.token = ""
	s.changed = true
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.GetToken() != ""
}

// Changed reports whether SetToken or ClearToken was called since loading.
func (s *Session) Changed() bool {
	return s != nil && s.changed
}

// Store loads and persists sessions for a browser context.
type Store interface {
	Load(r *http.Request) (*Session, error)
	Save(w http.ResponseWriter, r *http.Request, s *Session) error
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session, or an empty one when none is
// attached.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok && s != nil {
		return s
	}
	return &Session{}
}
