package utils // package utils provides helper functions for token creation and hashing

import (
	"errors" // sentinel error for failed verification
	"time"   // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed JWT session token along with its expiry.
// The Token field contains the JWT string. Exp stores the expiration
// timestamp as a time.Time. Session tokens are self-contained: nothing is
// persisted server-side, and they cannot be renewed or revoked before
// expiry.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Identity is the authenticated principal embedded in a session token.
// It is everything downstream handlers know about the caller; the
// credential store is not consulted again after login.
type Identity struct {
	UserID uint64
	Email  string
}

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, malformed claims or an expired token. Callers cannot
// tell these cases apart, only presence vs. rejection.
var ErrInvalidToken = errors.New("invalid or expired token")

// NewSessionToken builds and signs an HS256 JWT for a user. The claims
// carry the user's id and email plus the standard exp and iat timestamps.
func NewSessionToken(secret string, userID uint64, email string, ttl time.Duration) (SessionToken, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// VerifySessionToken parses raw, checks the HMAC signature and expiry, and
// returns the embedded identity. The parse callback asserts the signing
// method is HMAC so a token signed with a different algorithm is rejected
// rather than verified against the wrong key type.
func VerifySessionToken(secret, raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	// JSON numbers decode as float64.
	id, ok := claims["id"].(float64)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: uint64(id), Email: email}, nil
}
