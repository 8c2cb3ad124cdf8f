package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *Store) {
	t.Helper()

	store := newTestStore(t)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Post("/toggle-favorite/:id", ToggleFavoriteHandler(store))
	api := app.Group("/api")
	api.Get("/products", ListProductsHandler(store))
	api.Get("/products/:id", GetProductHandler(store))
	api.Post("/products", CreateProductHandler(store))
	api.Put("/products/:id", UpdateProductHandler(store))
	api.Delete("/products/:id", DeleteProductHandler(store))

	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestCreateProductHandler(t *testing.T) {
	t.Run("creates and returns 201", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, body := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
			"name":  "Arabica Premium",
			"price": 350.0,
		})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Product added successfully", body["message"])

		product := body["product"].(map[string]any)
		assert.Equal(t, "Arabica Premium", product["name"])
		assert.Equal(t, 350.0, product["price"])
		assert.Equal(t, false, product["is_favorite"])
	})

	t.Run("missing name", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, body := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"price": 350.0})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Product name is required", body["error"])
	})

	t.Run("missing price", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, body := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{"name": "Arabica"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Product price is required", body["error"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		app, store := newTestApp(t)
		mustCreate(t, store, "Arabica Premium", 350)

		resp, body := doJSON(t, app, http.MethodPost, "/api/products", fiber.Map{
			"name":  "Arabica Premium",
			"price": 400.0,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Product name already exists", body["error"])

		products, err := store.List()
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})
}

func TestGetProductHandler(t *testing.T) {
	app, store := newTestApp(t)
	p := mustCreate(t, store, "Espresso Blend", 320)

	t.Run("found", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/products/"+itoa(p.ID), nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Espresso Blend", body["name"])
	})

	t.Run("not found", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/products/999", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Product not found", body["error"])
	})
}

func TestListProductsHandler(t *testing.T) {
	app, store := newTestApp(t)
	mustCreate(t, store, "First", 100)
	mustCreate(t, store, "Second", 200)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var products []ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 2)
}

func TestUpdateProductHandler(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		app, store := newTestApp(t)
		p, err := store.Create(CreateInput{Name: "Kenyan AA", Price: 400, Description: "กาแฟเคนยา"})
		require.NoError(t, err)

		resp, body := doJSON(t, app, http.MethodPut, "/api/products/"+itoa(p.ID), fiber.Map{"price": 420.0})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])

		product := body["product"].(map[string]any)
		assert.Equal(t, 420.0, product["price"])
		assert.Equal(t, "Kenyan AA", product["name"])
		assert.Equal(t, "กาแฟเคนยา", product["description"])
	})

	t.Run("not found", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, body := doJSON(t, app, http.MethodPut, "/api/products/999", fiber.Map{"price": 1.0})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Product not found", body["error"])
	})
}

func TestDeleteProductHandler(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		app, store := newTestApp(t)
		p := mustCreate(t, store, "Vietnam Weasel", 450)

		resp, body := doJSON(t, app, http.MethodDelete, "/api/products/"+itoa(p.ID), nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Product deleted successfully", body["message"])
	})

	t.Run("not found", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, body := doJSON(t, app, http.MethodDelete, "/api/products/999", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Product not found", body["error"])
	})
}

func TestToggleFavoriteHandler(t *testing.T) {
	t.Run("reports the new value", func(t *testing.T) {
		app, store := newTestApp(t)
		p := mustCreate(t, store, "Colombian Geisha", 420)

		resp, body := doJSON(t, app, http.MethodPost, "/toggle-favorite/"+itoa(p.ID), nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, true, body["is_favorite"])

		resp, body = doJSON(t, app, http.MethodPost, "/toggle-favorite/"+itoa(p.ID), nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["is_favorite"])
	})

	t.Run("not found", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp, body := doJSON(t, app, http.MethodPost, "/toggle-favorite/999", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, false, body["success"])
	})
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}
