package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const loginErrorMessage = "❌ Username หรือ Password ไม่ถูกต้อง"

// GET /login
func LoginPageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("login", fiber.Map{})
	}
}

// POST /login
func LoginHandler(store SessionStore, verifier CredentialVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := strings.TrimSpace(c.FormValue("username"))
		password := c.FormValue("password")

		if !verifier.Verify(username, password) {
			return c.Render("login", fiber.Map{"Error": loginErrorMessage})
		}

		token := store.Create(username)
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			HTTPOnly: true,
		})
		return c.Redirect("/dashboard")
	}
}

// GET /logout
func LogoutHandler(store SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(SessionCookie); token != "" {
			store.Destroy(token)
		}
		c.ClearCookie(SessionCookie)
		return c.Redirect("/login")
	}
}
