package pages

import (
	qrcode "github.com/skip2/go-qrcode"

	"github.com/gofiber/fiber/v2"
)

// GET /api/qr-code
//
// Encodes the ordering page URL resolved from the request's own host, so the
// same code works whether customers scan it from a phone on the shop wifi or
// from a public deployment.
func QRCodeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderURL := c.BaseURL() + "/order"

		png, err := qrcode.Encode(orderURL, qrcode.Medium, 256)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate QR code")
		}

		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(png)
	}
}
