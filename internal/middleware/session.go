// Package middleware provides the request processing middleware for the
// checkout gateway: session cookies and bearer-token authentication.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// SessionCookie names the cookie carrying the opaque session id.
	SessionCookie = "sid"
	// SessionIDKey is the fiber.Ctx local holding the session id.
	SessionIDKey = "sessionID"

	sessionCookieTTL = 7 * 24 * time.Hour
)

// Session assigns every request a session id, minting a cookie when the
// client has none yet. Checkout state, carts, and stored tokens all key
// off this id.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Expires:  time.Now().Add(sessionCookieTTL),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals(SessionIDKey, sid)
		return c.Next()
	}
}

// SessionID returns the session id assigned by Session.
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(SessionIDKey).(string)
	return sid
}
