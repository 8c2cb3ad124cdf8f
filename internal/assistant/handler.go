package assistant

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

const maxQuestionLength = 500

type AskAIRequest struct {
	Question string `json:"question"`
}

type GenerateDescriptionRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// POST /api/ask-ai
func AskAIHandler(a *Assistant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AskAIRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid request body",
				"success": false,
			})
		}

		question := strings.TrimSpace(body.Question)
		if question == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Question is required",
				"success": false,
			})
		}

		// Bounded before any matching or external call happens.
		if utf8.RuneCountInString(question) > maxQuestionLength {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Question is too long (max 500 characters)",
				"success": false,
			})
		}

		answer := a.Answer(c.UserContext(), question)
		return c.JSON(fiber.Map{
			"answer":  answer,
			"success": true,
		})
	}
}

// POST /api/generate-description (session required, enforced by route guard)
func GenerateDescriptionHandler(a *Assistant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body GenerateDescriptionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Product name is required")
		}

		description := a.Describe(c.UserContext(), body.Name, body.Price)
		return c.JSON(fiber.Map{
			"description": description,
			"success":     true,
		})
	}
}
