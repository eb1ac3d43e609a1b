package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenClaim = "access_token"

var ErrInvalidCookie = errors.New("invalid session cookie")

type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// CookieStore keeps the session in a signed HS256 cookie. The signature only
// protects the envelope; the bearer token inside is opaque to this process.
type CookieStore struct {
	tokenAuth *jwtauth.JWTAuth
	opts      CookieOptions
}

func NewCookieStore(secretKey string, opts CookieOptions) *CookieStore {
	if opts.Name == "" {
		opts.Name = "token"
	}
	return &CookieStore{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		opts:      opts,
	}
}

// Load returns an empty session when the cookie is missing. A cookie that
// fails verification also yields an empty session, together with
// ErrInvalidCookie.
func (c *CookieStore) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(c.opts.Name)
	if errors.Is(err, http.ErrNoCookie) {
		return &Session{}, nil
	}
	if err != nil {
		return &Session{}, fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}

	token, err := jwtauth.VerifyToken(c.tokenAuth, cookie.Value)
	if err != nil {
		return &Session{}, fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}

	value, ok := token.Get(tokenClaim)
	if !ok {
		return &Session{}, fmt.Errorf("%w: missing %s claim", ErrInvalidCookie, tokenClaim)
	}
	bearer, ok := value.(string)
	if !ok {
		return &Session{}, fmt.Errorf("%w: %s claim is not a string", ErrInvalidCookie, tokenClaim)
	}

	return New(bearer), nil
}

// Save writes the cookie only when the session changed. An empty token
// expires the cookie.
func (c *CookieStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	if !s.Changed() {
		return nil
	}

	if !s.Authenticated() {
		http.SetCookie(w, c.cookie("", -1))
		return nil
	}

	claims := map[string]interface{}{
		tokenClaim: s.GetToken(),
	}
	jwtauth.SetIssuedNow(claims)

	_, signed, err := c.tokenAuth.Encode(claims)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}

	http.SetCookie(w, c.cookie(signed, int(c.opts.MaxAge.Seconds())))
	s.changed = false
	return nil
}

func (c *CookieStore) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     c.opts.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
