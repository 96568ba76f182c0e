// Package session resolves the anonymous chat session identity carried by a
// cookie. Sessions have no server-side state of their own; the identifier is
// just the partition key for conversations.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// CookieName is the chat session cookie.
	CookieName = "chat_session_id"

	// MaxAge keeps returning visitors on the same conversation for a year.
	MaxAge = 365 * 24 * time.Hour
)

// Resolution is the outcome of looking at the incoming cookie.
type Resolution struct {
	Id     string
	Issued bool
}

// Resolve returns the session id for the request, minting a fresh one when
// the cookie is absent or empty. It never mutates the request or response.
func Resolve(existing string) Resolution {
	if existing != "" {
		return Resolution{Id: existing}
	}
	return Resolution{Id: uuid.NewString(), Issued: true}
}

// FromRequest reads the cookie off the fiber context and resolves it.
func FromRequest(c *fiber.Ctx) Resolution {
	return Resolve(c.Cookies(CookieName))
}

// SetCookie writes the session cookie on the response. Call only when the
// resolution was freshly issued so existing cookies keep their expiry.
func SetCookie(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		Expires:  time.Now().Add(MaxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
