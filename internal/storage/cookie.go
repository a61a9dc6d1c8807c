package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const cookieIssuer = "art-market"

// ErrTokenInvalid is returned when the cookie fails signature or expiry checks
var ErrTokenInvalid = errors.New("storage: session cookie is invalid")

// CookieCodec signs and verifies the cookie payload. One codec is shared by
// every request; Bind attaches it to a single request/response pair.
type CookieCodec struct {
	Name   string
	Secret []byte
	TTL    time.Duration
	Secure bool
}

type cookieClaims struct {
	// Payload is the serialized value exactly as handed to Save
	Payload string `json:"payload"`
	jwt.RegisteredClaims
}

// Encode signs value into a token string
func (c CookieCodec) Encode(value []byte, now time.Time) (string, error) {
	claims := cookieClaims{
		Payload: string(value),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cookieIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
}

// Decode verifies token and returns the payload
func (c CookieCodec) Decode(token string) ([]byte, error) {
	claims := &cookieClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.Secret, nil
	}, jwt.WithIssuer(cookieIssuer))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	return []byte(claims.Payload), nil
}

// Bind returns a Storage that reads from r and writes Set-Cookie headers to w
func (c CookieCodec) Bind(w http.ResponseWriter, r *http.Request) *Cookie {
	return &Cookie{codec: c, w: w, r: r, now: time.Now}
}

// Cookie is a request-scoped Storage over a signed cookie
type Cookie struct {
	codec CookieCodec
	w     http.ResponseWriter
	r     *http.Request
	now   func() time.Time

	// written holds the value saved during this request so later loads
	// in the same request observe it
	written *[]byte
}

func (c *Cookie) Load(_ context.Context) ([]byte, error) {
	if c.written != nil {
		if *c.written == nil {
			return nil, ErrEmpty
		}
		return append([]byte(nil), (*c.written)...), nil
	}

	ck, err := c.r.Cookie(c.codec.Name)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && ck.Value == "") {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read cookie: %w", err)
	}
	return c.codec.Decode(ck.Value)
}

func (c *Cookie) Save(_ context.Context, value []byte) error {
	token, err := c.codec.Encode(value, c.now())
	if err != nil {
		return fmt.Errorf("storage: sign cookie: %w", err)
	}
	http.SetCookie(c.w, &http.Cookie{
		Name:     c.codec.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.codec.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.codec.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	saved := append([]byte(nil), value...)
	c.written = &saved
	return nil
}

func (c *Cookie) Clear(_ context.Context) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     c.codec.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.codec.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	var cleared []byte
	c.written = &cleared
	return nil
}
