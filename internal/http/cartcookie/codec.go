// Package cartcookie carries the cart ID across requests in an
// HMAC-signed cookie. The cart rows themselves live in the store; the
// cookie only proves the caller owns that cart ID.
package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid cart cookie")

const DefaultCookieName = "bb_cart"

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func New(secret []byte, name string, secure bool) *Codec {
	if name == "" {
		name = DefaultCookieName
	}
	return &Codec{Secret: secret, CookieName: name, Secure: secure, TTL: 30 * 24 * time.Hour}
}

// value format: cartID.base64(hmac(cartID))
func (c *Codec) Encode(cartID string) string {
	return cartID + "." + sign(c.Secret, cartID)
}

func (c *Codec) Decode(v string) (string, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return "", ErrInvalid
	}
	id := parts[0]
	if id == "" {
		return "", ErrInvalid
	}
	if !verify(c.Secret, id, parts[1]) {
		return "", ErrInvalid
	}
	return id, nil
}

// GetCartID returns the signed cart ID, dropping tampered cookies.
func (c *Codec) GetCartID(ctx *gin.Context) (string, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return "", false
	}
	id, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return "", false
	}
	return id, true
}

// EnsureCartID returns the existing cart ID or mints a new one and
// sets the cookie. Called on the mutation paths only, so browsing
// never hands out cookies.
func (c *Codec) EnsureCartID(ctx *gin.Context) string {
	if id, ok := c.GetCartID(ctx); ok {
		// refresh expiry
		c.Set(ctx, id)
		return id
	}
	id := uuid.NewString()
	c.Set(ctx, id)
	return id
}

func (c *Codec) Set(ctx *gin.Context, cartID string) {
	val := c.Encode(cartID)
	maxAge := int(c.TTL.Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
