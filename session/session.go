package session

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookieName is the auth cookie issued on login and checked on every
// protected navigation.
const CookieName = "auth_token"

// TTL is the absolute session lifetime. Expiry is enforced both by the
// cookie MaxAge and by the signed issue time, so a replayed cookie dies
// with the session it belonged to.
const TTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// token is the signed cookie payload.
type token struct {
	IssuedAt int64
}

// Gate is the session gate: it owns the shared operator password and the
// codec for the signed auth cookie. Validation is stateless; there is no
// server-side session store to consult.
type Gate struct {
	codec    *securecookie.SecureCookie
	password string
	secure   bool
}

// NewGate creates a gate. hashKey signs the auth cookie; secure marks the
// cookie Secure for production deployments.
func NewGate(password string, hashKey []byte, secure bool) *Gate {
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int(TTL.Seconds()))

	return &Gate{
		codec:    codec,
		password: password,
		secure:   secure,
	}
}

// Login checks the submitted password and, on success, returns the cookie
// that establishes the session. A wrong password returns
// ErrInvalidCredentials and leaves no session behind.
func (g *Gate) Login(password string) (*http.Cookie, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	encoded, err := g.codec.Encode(CookieName, token{IssuedAt: time.Now().Unix()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode session token: %w", err)
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   g.secure,
	}, nil
}

// Logout returns the cookie that clears the session. It always succeeds;
// the client is logged out regardless of anything else.
func (g *Gate) Logout() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   g.secure,
	}
}

// Check reports whether the request carries a valid session. A missing
// cookie, a cookie signed with a different key, and an expired issue time
// are all equally invalid: the gate fails closed.
func (g *Gate) Check(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}

	var tok token
	if err := g.codec.Decode(CookieName, c.Value, &tok); err != nil {
		return false
	}

	return time.Since(time.Unix(tok.IssuedAt, 0)) < TTL
}
