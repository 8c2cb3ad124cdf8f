package pages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cafe-backend/internal/auth"
	"cafe-backend/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

// GET /
func IndexHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := store.ListByFavorite()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load products")
		}
		return c.Render("index", fiber.Map{"Products": products})
	}
}

// GET /cart — placeholder, no checkout flow exists
func CartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("cart", fiber.Map{})
	}
}

// GET /qr
func QRPageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("qr", fiber.Map{})
	}
}

// GET /order — placeholder, orders are not persisted
func OrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("order", fiber.Map{})
	}
}

// GET /dashboard
func DashboardHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := store.List()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load products")
		}
		return c.Render("admin", fiber.Map{
			"Products": products,
			"Username": c.Locals(auth.CtxUsernameKey),
		})
	}
}

// GET /add-product
func AddProductPageHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := store.List()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load products")
		}
		return c.Render("admin", fiber.Map{
			"Products": products,
			"Username": c.Locals(auth.CtxUsernameKey),
		})
	}
}

// POST /add-product
func AddProductHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		renderError := func(msg string) error {
			products, _ := store.List()
			return c.Render("admin", fiber.Map{
				"Products": products,
				"Username": c.Locals(auth.CtxUsernameKey),
				"Error":    msg,
			})
		}

		name := strings.TrimSpace(c.FormValue("name"))
		price, err := strconv.ParseFloat(c.FormValue("price"), 64)
		if err != nil {
			return renderError("❌ เพิ่มสินค้าไม่สำเร็จ: ราคาไม่ถูกต้อง")
		}

		_, err = store.Create(catalog.CreateInput{
			Name:        name,
			Price:       price,
			ImageURL:    c.FormValue("image_url"),
			Description: c.FormValue("description"),
		})
		if err != nil {
			return renderError(fmt.Sprintf("❌ เพิ่มสินค้าไม่สำเร็จ: %v", err))
		}

		return c.Redirect("/dashboard")
	}
}

// POST /delete-product/:id
func DeleteProductHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return c.Status(fiber.StatusNotFound).SendString("❌ ไม่พบสินค้า")
		}

		if err := store.Delete(uint(id)); err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				return c.Status(fiber.StatusNotFound).SendString("❌ ไม่พบสินค้า")
			}
			return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("❌ เกิดข้อผิดพลาด: %v", err))
		}

		return c.Redirect("/dashboard")
	}
}

// GET /admin — convenience redirect by session state
func AdminHandler(sessions auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(auth.SessionCookie); token != "" {
			if _, ok := sessions.Get(token); ok {
				return c.Redirect("/dashboard")
			}
		}
		return c.Redirect("/login")
	}
}
