package catalog

import (
	"errors"
	"strings"

	"cafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	IsFavorite  bool    `json:"is_favorite"`
}

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
}

func toResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		IsFavorite:  p.IsFavorite,
	}
}

func parseProductID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}
	return uint(id), nil
}

// GET /api/products
func ListProductsHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := store.List()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to list products")
		}

		res := make([]ProductResponse, 0, len(products))
		for i := range products {
			res = append(res, toResponse(&products[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/products/:id
func GetProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseProductID(c)
		if err != nil {
			return err
		}

		p, err := store.Get(id)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load product")
		}
		return c.JSON(toResponse(p))
	}
}

// POST /api/products
func CreateProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Product name is required")
		}
		if body.Price == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Product price is required")
		}

		p, err := store.Create(CreateInput{
			Name:        body.Name,
			Price:       *body.Price,
			ImageURL:    body.ImageURL,
			Description: body.Description,
		})
		if err != nil {
			if errors.Is(err, ErrDuplicateName) {
				return fiber.NewError(fiber.StatusBadRequest, "Product name already exists")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Failed to add product: "+err.Error())
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Product added successfully",
			"product": toResponse(p),
		})
	}
}

// PUT /api/products/:id
func UpdateProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseProductID(c)
		if err != nil {
			return err
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		p, err := store.Update(id, UpdateInput{
			Name:        body.Name,
			Price:       body.Price,
			ImageURL:    body.ImageURL,
			Description: body.Description,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrProductNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			case errors.Is(err, ErrDuplicateName):
				return fiber.NewError(fiber.StatusBadRequest, "Product name already exists")
			case errors.Is(err, ErrNameRequired):
				return fiber.NewError(fiber.StatusBadRequest, "Product name is required")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Failed to update product: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Product updated successfully",
			"product": toResponse(p),
		})
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseProductID(c)
		if err != nil {
			return err
		}

		if err := store.Delete(id); err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Failed to delete product: "+err.Error())
		}

		return c.JSON(fiber.Map{"message": "Product deleted successfully"})
	}
}

// POST /toggle-favorite/:id
func ToggleFavoriteHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false})
		}

		isFavorite, err := store.ToggleFavorite(uint(id))
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false})
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success":     true,
			"is_favorite": isFavorite,
		})
	}
}
