package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for stretching the configured cookie secret into a
// signing key. The salt is a fixed application constant: the input is a
// server-side secret, not a user password, so per-value salting buys
// nothing and a stable key across restarts is required.
const (
	keyMemory      = 64 * 1024
	keyIterations  = 3
	keyParallelism = 2
	keyLength      = 32
)

var keySalt = []byte("neuroview.session.v1")

// CookieCodec signs and verifies the session cookie. The cookie carries
// only the session id; the backend token never leaves the server.
type CookieCodec struct {
	key      []byte
	duration time.Duration
}

func NewCookieCodec(secret string, duration time.Duration) *CookieCodec {
	key := argon2.IDKey([]byte(secret), keySalt, keyIterations, keyMemory, keyParallelism, keyLength)
	return &CookieCodec{key: key, duration: duration}
}

type cookieClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Encode produces the signed cookie value for a session id.
func (c *CookieCodec) Encode(id uuid.UUID) (string, error) {
	now := time.Now()
	claims := &cookieClaims{
		SessionID: id.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "neuroview",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Decode validates signature and expiry and returns the session id.
func (c *CookieCodec) Decode(value string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(value, &cookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		return c.key, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*cookieClaims)
	if !ok || !token.Valid {
		return uuid.Nil, jwt.ErrSignatureInvalid
	}
	return uuid.Parse(claims.SessionID)
}
