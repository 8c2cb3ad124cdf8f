package main

import (
	"log"
	"strings"
	"time"

	"cafe-backend/internal/assistant"
	"cafe-backend/internal/auth"
	"cafe-backend/internal/catalog"
	"cafe-backend/internal/config"
	"cafe-backend/internal/database"
	"cafe-backend/internal/pages"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	verifier, err := auth.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to set up admin credentials: %v", err)
	}
	sessions := auth.NewMemorySessionStore()
	store := catalog.NewStore(database.DB)

	var gen assistant.TextGenerator
	if cfg.OpenAIAPIKey != "" {
		gen = assistant.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, 10*time.Second)
	}
	ai := assistant.New(gen)

	app := fiber.New(fiber.Config{
		Views: pages.Engine(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Public pages
	app.Get("/", pages.IndexHandler(store))
	app.Get("/cart", pages.CartHandler())
	app.Get("/qr", pages.QRPageHandler())
	app.Get("/order", pages.OrderHandler())
	app.Post("/toggle-favorite/:id", catalog.ToggleFavoriteHandler(store))

	// Auth
	app.Get("/login", auth.LoginPageHandler())
	app.Post("/login", auth.LoginHandler(sessions, verifier))
	app.Get("/logout", auth.LogoutHandler(sessions))

	// Admin pages
	app.Get("/admin", pages.AdminHandler(sessions))
	adminPages := app.Group("", auth.RequirePage(sessions))
	adminPages.Get("/dashboard", pages.DashboardHandler(store))
	adminPages.Get("/add-product", pages.AddProductPageHandler(store))
	adminPages.Post("/add-product", pages.AddProductHandler(store))
	adminPages.Post("/delete-product/:id", pages.DeleteProductHandler(store))

	// JSON API
	api := app.Group("/api")
	api.Get("/products", catalog.ListProductsHandler(store))
	api.Get("/products/:id", catalog.GetProductHandler(store))
	api.Post("/products", catalog.CreateProductHandler(store))
	api.Put("/products/:id", catalog.UpdateProductHandler(store))
	api.Delete("/products/:id", catalog.DeleteProductHandler(store))
	api.Post("/ask-ai", assistant.AskAIHandler(ai))
	api.Post("/generate-description", auth.RequireAPI(sessions), assistant.GenerateDescriptionHandler(ai))
	api.Get("/qr-code", pages.QRCodeHandler())

	log.Println("Server running on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
