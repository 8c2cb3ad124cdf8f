package auth

import "github.com/gofiber/fiber/v2"

const (
	SessionCookie  = "cafe_session"
	CtxUsernameKey = "username"
)

func currentSession(c *fiber.Ctx, store SessionStore) (Session, bool) {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return Session{}, false
	}
	return store.Get(token)
}

// RequirePage guards admin pages, anonymous requests go back to the login page.
func RequirePage(store SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := currentSession(c, store)
		if !ok {
			return c.Redirect("/login")
		}
		c.Locals(CtxUsernameKey, sess.Username)
		return c.Next()
	}
}

// RequireAPI guards JSON endpoints, anonymous requests get a 401.
func RequireAPI(store SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := currentSession(c, store)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		c.Locals(CtxUsernameKey, sess.Username)
		return c.Next()
	}
}
