package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	DatabaseDSN   string
	AdminUsername string
	AdminPassword string
	OpenAIAPIKey  string
	OpenAIModel   string
	CORSOrigins   string
}

func Load() *Config {
	// .env is optional, production uses real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "shop.db"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "1234"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.AdminPassword == "1234" {
		log.Println("[WARN] ADMIN_PASSWORD is using the default value, set a real password for production.")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("[WARN] OPENAI_API_KEY is not set, AI features will fall back to canned answers.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
